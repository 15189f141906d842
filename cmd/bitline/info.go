package main

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"text/tabwriter"

	"github.com/hupe1980/bittersweet"
	"github.com/hupe1980/bittersweet/internal/cpu"
)

func info(ctx context.Context) error {
	tw := tabwriter.NewWriter(output(ctx), 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "version\t%s\n", bittersweet.Version)
	fmt.Fprintf(tw, "go\t%s\n", runtime.Version())
	fmt.Fprintf(tw, "arch\t%s/%s\n", runtime.GOOS, runtime.GOARCH)
	level := cpu.Active().String()
	if cpu.IsOverridden() {
		level += " (set by " + cpu.EnvOverride + ")"
	}
	fmt.Fprintf(tw, "level\t%s\n", level)
	fmt.Fprintf(tw, "widths\t%s\n", strings.Join([]string{"8", "16", "32", "64", "128"}, " "))

	features := cpu.Features()
	if len(features) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "FEATURE\tAVAILABLE\tBACKS")
	}
	for _, f := range features {
		available := "no"
		if f.Available {
			available = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", f.Name, available, f.Backs)
	}
	return tw.Flush()
}
