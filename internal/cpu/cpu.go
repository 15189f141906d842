// Package cpu reports which hardware bit-manipulation instructions back the
// word primitives of package bitline on the running machine.
//
// The primitives themselves are math/bits intrinsics selected by the
// compiler and runtime; this package only makes that selection visible.
package cpu

import (
	"os"
	"runtime"
	"strings"
)

// EnvOverride names the environment variable that pins the reported level,
// e.g. BITLINE_CPU_LEVEL=generic. Levels the CPU lacks are ignored.
const EnvOverride = "BITLINE_CPU_LEVEL"

// Level is the class of bit-manipulation instructions available.
type Level uint8

const (
	// Generic represents the portable math/bits fallbacks.
	Generic Level = iota
	// POPCNT represents x86-64 with a hardware population count.
	POPCNT
	// BMI represents x86-64 with POPCNT and BMI1 (TZCNT, ANDN, BLSI).
	BMI
	// ASIMD represents ARM64 with NEON, which adds a vector population count
	// to the base CLZ and RBIT instructions.
	ASIMD
)

// String returns the string representation of a Level.
func (l Level) String() string {
	switch l {
	case Generic:
		return "generic"
	case POPCNT:
		return "popcnt"
	case BMI:
		return "bmi"
	case ASIMD:
		return "asimd"
	default:
		return "unknown"
	}
}

// ParseLevel parses a string into a Level value.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "popcnt":
		return POPCNT, true
	case "bmi":
		return BMI, true
	case "asimd":
		return ASIMD, true
	default:
		return Generic, false
	}
}

// Feature is a single instruction family and the operations it backs.
type Feature struct {
	Name      string
	Available bool
	Backs     string
}

// Package-level state, initialized once by the platform-specific init.
var (
	// active is the selected level.
	active Level

	// hasOverride is true if EnvOverride selected the level.
	hasOverride bool

	// CPU feature flags
	hasPOPCNT bool // x86-64 POPCNT
	hasBMI1   bool // x86-64 BMI1
	hasBMI2   bool // x86-64 BMI2
	hasASIMD  bool // ARM64 NEON
)

// initLevel is called from platform-specific init functions after CPU
// features are detected.
func initLevel() {
	hasOverride = false
	if override := os.Getenv(EnvOverride); override != "" {
		if l, ok := ParseLevel(override); ok && isLevelAvailable(l) {
			hasOverride = true
			active = l
			return
		}
	}
	active = selectBestLevel()
}

// isLevelAvailable checks if a level is supported on this CPU.
func isLevelAvailable(l Level) bool {
	switch l {
	case Generic:
		return true
	case POPCNT:
		return hasPOPCNT
	case BMI:
		return hasPOPCNT && hasBMI1
	case ASIMD:
		return hasASIMD
	default:
		return false
	}
}

func selectBestLevel() Level {
	switch runtime.GOARCH {
	case "amd64":
		switch {
		case hasPOPCNT && hasBMI1:
			return BMI
		case hasPOPCNT:
			return POPCNT
		}
	case "arm64":
		if hasASIMD {
			return ASIMD
		}
	}
	return Generic
}

// Active returns the selected level: the best one supported by this CPU
// unless EnvOverride pins a lower one.
func Active() Level {
	return active
}

// IsOverridden returns true if EnvOverride selected the active level.
func IsOverridden() bool {
	return hasOverride
}

// Features lists the instruction families relevant to this architecture.
// It is empty on architectures without a dedicated probe.
func Features() []Feature {
	switch runtime.GOARCH {
	case "amd64":
		return []Feature{
			{Name: "popcnt", Available: hasPOPCNT, Backs: "OnesCount NumBits Rank Select"},
			{Name: "bmi1", Available: hasBMI1, Backs: "TrailingZeros LastIndex LastBit"},
			{Name: "bmi2", Available: hasBMI2, Backs: "Lsh Rsh (SHLX, SHRX)"},
		}
	case "arm64":
		return []Feature{
			{Name: "clz", Available: true, Backs: "LeadingZeros FirstIndex FirstBit"},
			{Name: "rbit", Available: true, Backs: "Reverse TrailingZeros LastIndex"},
			{Name: "asimd", Available: hasASIMD, Backs: "OnesCount NumBits Rank Select"},
		}
	default:
		return nil
	}
}

// HasPOPCNT returns true if x86-64 POPCNT is available.
func HasPOPCNT() bool {
	return hasPOPCNT
}

// HasBMI1 returns true if x86-64 BMI1 is available.
func HasBMI1() bool {
	return hasBMI1
}

// HasBMI2 returns true if x86-64 BMI2 is available.
func HasBMI2() bool {
	return hasBMI2
}

// HasASIMD returns true if ARM64 NEON is available.
func HasASIMD() bool {
	return hasASIMD
}
