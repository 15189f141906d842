package verify

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
)

// Result is the outcome of checking one law at one width.
type Result struct {
	Width      int
	Law        string
	Bijection  bool
	Exhaustive bool
	Checked    uint64
	Elapsed    time.Duration
	Err        error
}

// Passed reports whether the law held for every checked word.
func (r Result) Passed() bool { return r.Err == nil }

// Violated reports whether the law was disproved, as opposed to cancelled.
func (r Result) Violated() bool { return errors.Is(r.Err, ErrLawViolated) }

// Report collects the results of a run.
type Report struct {
	Results []Result
	Elapsed time.Duration
}

// Failed returns the number of violated laws.
func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Violated() {
			n++
		}
	}
	return n
}

// Passed reports whether every law held.
func (r *Report) Passed() bool {
	for _, res := range r.Results {
		if !res.Passed() {
			return false
		}
	}
	return true
}

// Checked returns the total number of law evaluations.
func (r *Report) Checked() uint64 {
	var n uint64
	for _, res := range r.Results {
		n += res.Checked
	}
	return n
}

// WriteTo writes the report as an aligned table followed by a summary line.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer

	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "WIDTH\tLAW\tDOMAIN\tCHECKED\tELAPSED\tSTATUS")
	for _, res := range r.Results {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			res.Width,
			res.Law,
			domainName(res),
			humanize.Comma(int64(res.Checked)),
			res.Elapsed.Round(time.Microsecond),
			status(res),
		)
	}
	if err := tw.Flush(); err != nil {
		return 0, err
	}

	fmt.Fprintf(&buf, "\n%d laws, %d failed, %s evaluations in %s\n",
		len(r.Results),
		r.Failed(),
		humanize.Comma(int64(r.Checked())),
		r.Elapsed.Round(time.Millisecond),
	)

	return buf.WriteTo(w)
}

func (r *Report) String() string {
	var sb strings.Builder
	_, _ = r.WriteTo(&sb)
	return sb.String()
}

func domainName(res Result) string {
	kind := "sampled"
	if res.Exhaustive {
		kind = "exhaustive"
	}
	if res.Bijection {
		kind += "/bijection"
	}
	return kind
}

func status(res Result) string {
	switch {
	case res.Err == nil:
		return "ok"
	case res.Violated():
		return "FAIL: " + res.Err.Error()
	case errors.Is(res.Err, context.Canceled), errors.Is(res.Err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "error: " + res.Err.Error()
	}
}
