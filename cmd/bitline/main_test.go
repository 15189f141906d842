package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bittersweet/internal/cpu"
)

func runCLI(t *testing.T, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(context.Background(), "bitline", args, &out, &errOut)
	return out.String(), errOut.String(), code
}

func TestEval(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"first index", []string{"eval", "first-index", "00011110"}, "3"},
		{"last index", []string{"eval", "last-index", "0b0001_1110"}, "6"},
		{"first index of empty", []string{"eval", "first-index", "0"}, "none"},
		{"first bit", []string{"eval", "first-bit", "00011110"}, "00010000"},
		{"filled", []string{"eval", "filled-first-bit-to-last-bit", "01000010"}, "01111110"},
		{"ones", []string{"eval", "ones", "10000001"}, "0 7"},
		{"radius", []string{"eval", "radius", "00010000", "2"}, "01000100"},
		{"num bits", []string{"eval", "num-bits", "00011110"}, "4"},
		{"includes", []string{"eval", "includes", "00011110", "00001100"}, "true"},
		{"range", []string{"eval", "range", "11111111", "2", "5"}, "00111000"},
		{"xor", []string{"eval", "xor", "1100", "1010"}, "00000110"},
		{"left rotate", []string{"eval", "left-rotate", "10000001", "1"}, "00000011"},
		{"negative rotate", []string{"eval", "right-rotate", "10000001", "--", "-1"}, "00000011"},
		{"gray code", []string{"eval", "bin-to-gray-code", "00000011"}, "00000010"},
		{"two-bit rotation", []string{"eval", "two-bits-gray-code-rotation", "00011011"}, "01110010"},
		{"rank", []string{"eval", "rank", "00011110", "5", "1"}, "2"},
		{"rank range zero", []string{"eval", "rank-range0", "00011110", "0", "8"}, "4"},
		{"select", []string{"eval", "select1", "00011110", "0"}, "3"},
		{"select absent", []string{"eval", "select1", "00011110", "4"}, "none"},
		{"select zero", []string{"eval", "select", "00011110", "3", "false"}, "7"},
		{"width 16", []string{"eval", "--width=16", "left-rotate", "0b1", "1"}, "0000000000000010"},
		{"width 128", []string{"eval", "-w", "128", "last-index", "1"}, "127"},
		{"access", []string{"eval", "access", "00011110", "3"}, "true"},
		{"access clear", []string{"eval", "access", "00011110", "2"}, "false"},
		{"access out of range", []string{"eval", "access", "11111111", "8"}, "false"},
		{"by range", []string{"eval", "by-range", "3", "4"}, "00010000"},
		{"by range clamped", []string{"eval", "-w", "16", "by-range", "12", "99"}, "0000000000001111"},
		{"empty", []string{"eval", "empty"}, "00000000"},
		{"full", []string{"eval", "full"}, "11111111"},
		{"mask01", []string{"eval", "mask01"}, "01010101"},
		{"mask10", []string{"eval", "-w", "16", "mask10"}, "1010101010101010"},
		{"len", []string{"eval", "-w", "64", "len"}, "64"},
		{"byte len", []string{"eval", "-w", "128", "byte-len"}, "16"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, code := runCLI(t, tt.args...)
			require.Equal(t, 0, code, stderr)
			assert.Equal(t, tt.want+"\n", stdout)
		})
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown op", []string{"eval", "frobnicate", "1"}, "unknown operation \"frobnicate\""},
		{"unknown width", []string{"eval", "--width=24", "not", "1"}, "unsupported word width: 24"},
		{"missing argument", []string{"eval", "radius", "1"}, "radius takes 1 argument(s)"},
		{"bad integer", []string{"eval", "radius", "1", "x"}, "argument 1"},
		{"bad bit", []string{"eval", "rank", "1", "3", "maybe"}, "argument 2"},
		{"bad word", []string{"eval", "not", "0b102"}, "invalid binary digit"},
		{"overflow", []string{"eval", "not", "111111111"}, "value exceeds word width"},
		{"missing value", []string{"eval", "not"}, "not requires a word"},
		{"missing op", []string{"eval"}, "required argument 'op' not provided"},
		{"constructor arity", []string{"eval", "by-range", "2"}, "by-range takes 2 argument(s)"},
		{"constructor extra", []string{"eval", "full", "1"}, "full takes 0 argument(s)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, code := runCLI(t, tt.args...)
			assert.Equal(t, 1, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, tt.want)
		})
	}
}

func TestVerify(t *testing.T) {
	stdout, stderr, code := runCLI(t, "verify", "--width=8", "--width=64", "--samples=20", "--concurrency=2")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "rotate-inverse")
	assert.Contains(t, stdout, "exhaustive")
	assert.Contains(t, stdout, "sampled/bijection")
	assert.Contains(t, stdout, "0 failed")
	assert.Contains(t, stderr, "verification completed")
}

func TestVerifyUnknownWidth(t *testing.T) {
	stdout, stderr, code := runCLI(t, "verify", "--width=12")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "unsupported word width: 12")
}

func TestInfo(t *testing.T) {
	stdout, _, code := runCLI(t, "info")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "arch")
	assert.Contains(t, stdout, "level")
	assert.Contains(t, stdout, "8 16 32 64 128")
}

func TestLogFlags(t *testing.T) {
	t.Setenv(envPrefix+"LOG_FORMAT", "json")

	_, stderr, code := runCLI(t, "--log-level=debug", "eval", "not", "0")
	require.Equal(t, 0, code)
	assert.Contains(t, stderr, `"msg":"evaluated operation"`)
	assert.Contains(t, stderr, `"result":"11111111"`)

	_, stderr, code = runCLI(t, "--log-level=loud", "info")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "invalid log level")

	_, stderr, code = runCLI(t, "--log-format=xml", "info")
	assert.Equal(t, 1, code)
	assert.True(t, strings.HasPrefix(stderr, "error:"), stderr)
}

func TestVerifyMetricsLog(t *testing.T) {
	_, stderr, code := runCLI(t, "--log-level=debug", "verify", "-w", "8", "--progress-interval=0s")
	require.Equal(t, 0, code)
	assert.Contains(t, stderr, "verification metrics")
	assert.NotContains(t, stderr, "law check progress")
}

func TestInfoReportsOverride(t *testing.T) {
	stdout, _, code := runCLI(t, "info")
	require.Equal(t, 0, code)
	if cpu.IsOverridden() {
		assert.Contains(t, stdout, "set by "+cpu.EnvOverride)
	} else {
		assert.Regexp(t, `level\s+`+cpu.Active().String()+`\n`, stdout)
	}
}
