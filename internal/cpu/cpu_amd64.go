//go:build amd64

package cpu

import "golang.org/x/sys/cpu"

func init() {
	hasPOPCNT = cpu.X86.HasPOPCNT
	hasBMI1 = cpu.X86.HasBMI1
	hasBMI2 = cpu.X86.HasBMI2
	initLevel()
}
