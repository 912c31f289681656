package printers

import (
	"fmt"

	"github.com/gookit/color"

	"github.com/tcping-ru/tcping/option"
	"github.com/tcping-ru/tcping/statistics"
)

// ColorPrinter prints the same text as PlainPrinter, colorized.
type ColorPrinter struct {
	opt options
}

type ColorPrinterOption = option.Option[ColorPrinter]

func (p *ColorPrinter) options() *options {
	return &p.opt
}

// NewColorPrinter creates a new ColorPrinter instance.
func NewColorPrinter(opts ...ColorPrinterOption) *ColorPrinter {
	p := &ColorPrinter{opt: defaultOptions()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *ColorPrinter) println(c color.Color, msg string) {
	fmt.Fprintln(p.opt.out, c.Sprint(msg))
}

// PrintStart prints the banner in light cyan.
func (p *ColorPrinter) PrintStart(s *statistics.Statistics) {
	p.println(color.LightCyan, startMessage(s))
}

// PrintProbeSuccess prints the reply line in light green.
func (p *ColorPrinter) PrintProbeSuccess(s *statistics.Statistics) {
	p.println(color.LightGreen, successMessage(s))
}

// PrintProbeFailure prints the failure line in red.
func (p *ColorPrinter) PrintProbeFailure(s *statistics.Statistics) {
	p.println(color.Red, failureMessage(s))
}

// PrintStatistics prints a summary of the session. The loss figure is
// green when nothing was lost, light yellow up to 30% and red above.
func (p *ColorPrinter) PrintStatistics(s *statistics.Statistics) {
	if !s.HasLatency() {
		return
	}

	fmt.Fprintln(p.opt.out)
	p.println(color.Yellow, statisticsHeader)

	lossColor := color.Red
	switch loss := s.LossPercent(); {
	case loss == 0:
		lossColor = color.Green
	case loss <= 30:
		lossColor = color.LightYellow
	}
	p.println(lossColor, packetsMessage(s))

	p.println(color.Yellow, rttHeader)
	p.println(color.Cyan, rttMessage(s))
}

// PrintDone prints the closing message.
func (p *ColorPrinter) PrintDone() {
	fmt.Fprintln(p.opt.out)
	p.println(color.LightCyan, doneMessage)
}

// PrintError prints an error message in red.
func (p *ColorPrinter) PrintError(format string, args ...any) {
	fmt.Fprintln(p.opt.errOut, color.Red.Sprintf(format, args...))
}
