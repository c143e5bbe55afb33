package util

import (
	"fmt"
	"io"
	"log"
	"time"
)

// Log logs a message if verbose is true.
func Log(verbose bool, format string, args ...any) {
	if verbose {
		log.Printf(format, args...)
	}
}

// ProgressLogger reports how far a pass over a range has got, in percent
// steps, to an io.Writer.
type ProgressLogger struct {
	out         io.Writer
	total       uint64
	prefix      string
	done        uint64
	step        uint64
	next        uint64
	enabled     bool
	startTime   time.Time
	lastPercent uint64
}

// NewProgressLogger creates a progress logger for total events.
// A disabled logger ignores every call.
func NewProgressLogger(out io.Writer, total uint64, prefix string, enable bool) *ProgressLogger {
	pl := &ProgressLogger{
		out:       out,
		total:     total,
		prefix:    prefix,
		enabled:   enable && total > 0,
		startTime: time.Now(),
	}

	fraction := uint64(20) // 5% steps
	if total >= 100_000_000 {
		fraction = 100
	}
	pl.step = (total + fraction - 1) / fraction
	if pl.step == 0 {
		pl.step = 1
	}
	pl.next = pl.step
	return pl
}

// Add records n more completed events.
func (pl *ProgressLogger) Add(n uint64) {
	if !pl.enabled {
		return
	}
	pl.done += n
	if pl.done > pl.total {
		pl.done = pl.total
	}
	if pl.done >= pl.next {
		pl.report()
		for pl.next <= pl.done {
			pl.next += pl.step
		}
	}
}

// Finalize reports 100% and the elapsed time.
func (pl *ProgressLogger) Finalize() time.Duration {
	elapsed := time.Since(pl.startTime)
	if !pl.enabled {
		return elapsed
	}
	pl.done = pl.total
	pl.report()
	fmt.Fprintf(pl.out, "%sdone in %.2fs\n", pl.prefix, elapsed.Seconds())
	return elapsed
}

func (pl *ProgressLogger) report() {
	perc := (100 * pl.done) / pl.total
	if perc == pl.lastPercent {
		return
	}
	pl.lastPercent = perc
	fmt.Fprintf(pl.out, "%s%d%%\n", pl.prefix, perc)
}
