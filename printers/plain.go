package printers

import (
	"fmt"

	"github.com/tcping-ru/tcping/option"
	"github.com/tcping-ru/tcping/statistics"
)

// PlainPrinter prints the TCPing results as plain text.
type PlainPrinter struct {
	opt options
}

type PlainPrinterOption = option.Option[PlainPrinter]

func (p *PlainPrinter) options() *options {
	return &p.opt
}

// NewPlainPrinter creates a new PlainPrinter writing to os.Stdout and os.Stderr.
func NewPlainPrinter(opts ...PlainPrinterOption) *PlainPrinter {
	p := &PlainPrinter{opt: defaultOptions()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PrintStart prints the banner with the target, its display address and port.
func (p *PlainPrinter) PrintStart(s *statistics.Statistics) {
	fmt.Fprintln(p.opt.out, startMessage(s))
}

// PrintProbeSuccess prints the display address and the connect time.
func (p *PlainPrinter) PrintProbeSuccess(s *statistics.Statistics) {
	fmt.Fprintln(p.opt.out, successMessage(s))
}

// PrintProbeFailure prints the host as given and the time spent trying.
func (p *PlainPrinter) PrintProbeFailure(s *statistics.Statistics) {
	fmt.Fprintln(p.opt.out, failureMessage(s))
}

// PrintStatistics prints the session summary if any attempt succeeded.
func (p *PlainPrinter) PrintStatistics(s *statistics.Statistics) {
	if !s.HasLatency() {
		return
	}

	fmt.Fprintf(p.opt.out, "\n%s\n", statisticsHeader)
	fmt.Fprintln(p.opt.out, packetsMessage(s))
	fmt.Fprintln(p.opt.out, rttHeader)
	fmt.Fprintln(p.opt.out, rttMessage(s))
}

// PrintDone prints the closing message.
func (p *PlainPrinter) PrintDone() {
	fmt.Fprintf(p.opt.out, "\n%s\n", doneMessage)
}

// PrintError prints error messages.
func (p *PlainPrinter) PrintError(format string, args ...any) {
	fmt.Fprintf(p.opt.errOut, format+"\n", args...)
}
