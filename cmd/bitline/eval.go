package main

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/hupe1980/bittersweet/bitline"
	"github.com/hupe1980/bittersweet/verify"
)

type evalParams struct {
	width int
	op    string
	value string
	args  []string
}

func addEvalParams(cmd *kingpin.CmdClause) *evalParams {
	p := &evalParams{}
	cmd.Flag("width", "Word width in bits (8, 16, 32, 64 or 128).").Short('w').Default("8").Envar(envPrefix + "WIDTH").IntVar(&p.width)
	cmd.Arg("op", "Operation name, e.g. first-index, left-rotate or select1.").Required().StringVar(&p.op)
	cmd.Arg("value", "Word in bit form, most-significant bit first, e.g. 0b0001_1110. Omitted for constructors such as by-range or full.").StringVar(&p.value)
	cmd.Arg("args", "Operation arguments: integers, words in bit form or bits (0/1).").StringsVar(&p.args)
	return p
}

func eval(ctx context.Context, p *evalParams) error {
	switch p.width {
	case 8:
		return evalWidth[bitline.Line8](ctx, p)
	case 16:
		return evalWidth[bitline.Line16](ctx, p)
	case 32:
		return evalWidth[bitline.Line32](ctx, p)
	case 64:
		return evalWidth[bitline.Line64](ctx, p)
	case 128:
		return evalWidth[bitline.Line128](ctx, p)
	default:
		return &verify.WidthError{Width: p.width}
	}
}

func evalWidth[T bitline.Word[T]](ctx context.Context, p *evalParams) error {
	ops := operations[T]()
	op, ok := ops[p.op]
	if !ok {
		return fmt.Errorf("%w %q (known: %s)", ErrUnknownOp, p.op, strings.Join(slices.Sorted(maps.Keys(ops)), ", "))
	}

	var v T
	raw := p.args
	if op.constructor {
		// Constructors take no word; the value slot holds their first argument.
		if p.value != "" {
			raw = append([]string{p.value}, p.args...)
		}
	} else {
		if p.value == "" {
			return fmt.Errorf("%w: %s requires a word", ErrArgs, p.op)
		}
		var err error
		if v, err = bitline.Parse[T](p.value); err != nil {
			return err
		}
	}
	if len(raw) != len(op.params) {
		return fmt.Errorf("%w: %s takes %d argument(s) %v, got %d", ErrArgs, p.op, len(op.params), op.params, len(raw))
	}

	a := &argList[T]{raw: raw}
	result := op.run(v, a)
	if a.err != nil {
		return a.err
	}

	loggerFrom(ctx).DebugContext(ctx, "evaluated operation",
		"op", p.op,
		"width", p.width,
		"value", bitline.Repr(v),
		"result", result,
	)

	_, err := fmt.Fprintln(output(ctx), result)
	return err
}

// operation is one bitline function exposed on the command line. params
// names the arguments following the word. Constructors take no word and
// receive the zero value.
type operation[T bitline.Word[T]] struct {
	params      []string
	constructor bool
	run         func(v T, a *argList[T]) string
}

func constant[T bitline.Word[T]](fn func() T) operation[T] {
	return operation[T]{
		constructor: true,
		run:         func(T, *argList[T]) string { return bitline.Repr(fn()) },
	}
}

func unary[T bitline.Word[T]](fn func(T) T) operation[T] {
	return operation[T]{run: func(v T, _ *argList[T]) string { return bitline.Repr(fn(v)) }}
}

func predicate[T bitline.Word[T]](fn func(T) bool) operation[T] {
	return operation[T]{run: func(v T, _ *argList[T]) string { return strconv.FormatBool(fn(v)) }}
}

func byCount[T bitline.Word[T]](param string, fn func(T, int) T) operation[T] {
	return operation[T]{
		params: []string{param},
		run:    func(v T, a *argList[T]) string { return bitline.Repr(fn(v, a.int(0))) },
	}
}

func byWord[T bitline.Word[T]](fn func(v, other T) T) operation[T] {
	return operation[T]{
		params: []string{"word"},
		run:    func(v T, a *argList[T]) string { return bitline.Repr(fn(v, a.word(0))) },
	}
}

func relation[T bitline.Word[T]](fn func(v, other T) bool) operation[T] {
	return operation[T]{
		params: []string{"word"},
		run:    func(v T, a *argList[T]) string { return strconv.FormatBool(fn(v, a.word(0))) },
	}
}

func position[T bitline.Word[T]](fn func(T) (int, bool)) operation[T] {
	return operation[T]{run: func(v T, _ *argList[T]) string { return formatIndex(fn(v)) }}
}

func operations[T bitline.Word[T]]() map[string]operation[T] {
	return map[string]operation[T]{
		"empty":  constant(bitline.Empty[T]),
		"full":   constant(bitline.Full[T]),
		"mask01": constant(bitline.Mask01[T]),
		"mask10": constant(bitline.Mask10[T]),
		"by-range": {
			params:      []string{"begin", "end"},
			constructor: true,
			run:         func(_ T, a *argList[T]) string { return bitline.Repr(bitline.ByRange[T](a.int(0), a.int(1))) },
		},
		"len": {
			constructor: true,
			run:         func(T, *argList[T]) string { return strconv.Itoa(bitline.Len[T]()) },
		},
		"byte-len": {
			constructor: true,
			run:         func(T, *argList[T]) string { return strconv.Itoa(bitline.ByteLen[T]()) },
		},

		"is-empty":     predicate(bitline.IsEmpty[T]),
		"is-not-empty": predicate(bitline.IsNotEmpty[T]),
		"is-full":      predicate(bitline.IsFull[T]),
		"is-not-full":  predicate(bitline.IsNotFull[T]),

		"first-index":                  position(bitline.FirstIndex[T]),
		"last-index":                   position(bitline.LastIndex[T]),
		"first-bit":                    unary(bitline.FirstBit[T]),
		"last-bit":                     unary(bitline.LastBit[T]),
		"first-bits":                   unary(bitline.FirstBits[T]),
		"last-bits":                    unary(bitline.LastBits[T]),
		"filled-first-bit-to-last-bit": unary(bitline.FilledFirstBitToLastBit[T]),
		"ones": {run: func(v T, _ *argList[T]) string {
			var positions []string
			for i := range bitline.Ones(v) {
				positions = append(positions, strconv.Itoa(i))
			}
			if len(positions) == 0 {
				return "none"
			}
			return strings.Join(positions, " ")
		}},

		"radius":      byCount("n", bitline.Radius[T]),
		"around":      byCount("n", bitline.Around[T]),
		"with-around": byCount("n", bitline.WithAround[T]),

		"num-bits": {run: func(v T, _ *argList[T]) string { return strconv.Itoa(bitline.NumBits(v)) }},
		"includes": relation(bitline.Includes[T]),
		"overlaps": relation(bitline.Overlaps[T]),
		"remove":   byWord(bitline.Remove[T]),
		"range": {
			params: []string{"begin", "end"},
			run:    func(v T, a *argList[T]) string { return bitline.Repr(bitline.Range(v, a.int(0), a.int(1))) },
		},
		"and": byWord(func(v, o T) T { return v.And(o) }),
		"or":  byWord(func(v, o T) T { return v.Or(o) }),
		"xor": byWord(func(v, o T) T { return v.Xor(o) }),
		"not": unary(func(v T) T { return v.Not() }),

		"left-rotate":  byCount("n", bitline.LeftRotate[T]),
		"right-rotate": byCount("n", bitline.RightRotate[T]),

		"bin-to-gray-code":                unary(bitline.BinToGrayCode[T]),
		"gray-code-to-bin":                unary(bitline.GrayCodeToBin[T]),
		"bin-to-bit-reversal-permutation": unary(bitline.BinToBitReversalPermutation[T]),
		"bit-reversal-permutation-to-bin": unary(bitline.BitReversalPermutationToBin[T]),
		"two-bits-gray-code-rotation":     unary(bitline.TwoBitsGrayCodeRotation[T]),

		"access": {
			params: []string{"index"},
			run:    func(v T, a *argList[T]) string { return strconv.FormatBool(bitline.Access(v, a.int(0))) },
		},
		"rank0": {
			params: []string{"index"},
			run:    func(v T, a *argList[T]) string { return strconv.Itoa(bitline.Rank0(v, a.int(0))) },
		},
		"rank1": {
			params: []string{"index"},
			run:    func(v T, a *argList[T]) string { return strconv.Itoa(bitline.Rank1(v, a.int(0))) },
		},
		"rank": {
			params: []string{"index", "bit"},
			run:    func(v T, a *argList[T]) string { return strconv.Itoa(bitline.Rank(v, a.int(0), a.bit(1))) },
		},
		"rank-range0": {
			params: []string{"begin", "end"},
			run:    func(v T, a *argList[T]) string { return strconv.Itoa(bitline.RankRange0(v, a.int(0), a.int(1))) },
		},
		"rank-range1": {
			params: []string{"begin", "end"},
			run:    func(v T, a *argList[T]) string { return strconv.Itoa(bitline.RankRange1(v, a.int(0), a.int(1))) },
		},
		"rank-range": {
			params: []string{"begin", "end", "bit"},
			run: func(v T, a *argList[T]) string {
				return strconv.Itoa(bitline.RankRange(v, a.int(0), a.int(1), a.bit(2)))
			},
		},
		"select0": {
			params: []string{"nth"},
			run:    func(v T, a *argList[T]) string { return formatIndex(bitline.Select0(v, a.int(0))) },
		},
		"select1": {
			params: []string{"nth"},
			run:    func(v T, a *argList[T]) string { return formatIndex(bitline.Select1(v, a.int(0))) },
		},
		"select": {
			params: []string{"nth", "bit"},
			run:    func(v T, a *argList[T]) string { return formatIndex(bitline.Select(v, a.int(0), a.bit(1))) },
		},
	}
}

func formatIndex(i int, ok bool) string {
	if !ok {
		return "none"
	}
	return strconv.Itoa(i)
}

// argList parses operation arguments on demand. The first failure is kept
// in err and later accessors return zero values.
type argList[T bitline.Word[T]] struct {
	raw []string
	err error
}

func (a *argList[T]) int(i int) int {
	if a.err != nil {
		return 0
	}
	n, err := strconv.Atoi(a.raw[i])
	if err != nil {
		a.err = fmt.Errorf("%w: argument %d: %v", ErrArgs, i+1, err)
	}
	return n
}

func (a *argList[T]) word(i int) T {
	if a.err != nil {
		return bitline.Empty[T]()
	}
	v, err := bitline.Parse[T](a.raw[i])
	if err != nil {
		a.err = fmt.Errorf("%w: argument %d: %w", ErrArgs, i+1, err)
	}
	return v
}

func (a *argList[T]) bit(i int) bool {
	if a.err != nil {
		return false
	}
	b, err := strconv.ParseBool(a.raw[i])
	if err != nil {
		a.err = fmt.Errorf("%w: argument %d: %v", ErrArgs, i+1, err)
	}
	return b
}
