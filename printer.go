package tcping

import (
	"errors"
	"io"

	"github.com/tcping-ru/tcping/printers"
	"github.com/tcping-ru/tcping/statistics"
)

var (
	_ Printer = (*printers.ColorPrinter)(nil)
	_ Printer = (*printers.JSONPrinter)(nil)
	_ Printer = (*printers.PlainPrinter)(nil)
)

var ErrPrettyWithoutJSON = errors.New("--pretty has no effect without the -j flag")

// Printer defines a set of methods that any printer implementation must provide.
// Printers are responsible for outputting information, but should not modify data or perform calculations.
type Printer interface {
	// PrintStart prints the banner with the target, its display address and port.
	// This message is printed only once, at the very beginning.
	PrintStart(s *statistics.Statistics)

	// PrintProbeSuccess prints one line for a successful attempt,
	// using the display address.
	PrintProbeSuccess(s *statistics.Statistics)

	// PrintProbeFailure prints one line for a failed attempt,
	// using the host as the user typed it.
	PrintProbeFailure(s *statistics.Statistics)

	// PrintStatistics prints the session summary. Nothing is printed
	// unless at least one attempt succeeded.
	PrintStatistics(s *statistics.Statistics)

	// PrintDone prints the closing message after an interruption.
	PrintDone()

	// PrintError should print an error message.
	// Printer should also apply \n to the given string, if needed.
	PrintError(format string, args ...any)
}

// PrinterConfig holds all configuration options for Printer creation
type PrinterConfig struct {
	OutputJSON bool
	PrettyJSON bool
	NoColor    bool

	// Out and Err default to os.Stdout and os.Stderr.
	Out io.Writer
	Err io.Writer
}

// NewPrinter creates and returns an appropriate printer based on configuration
func NewPrinter(cfg PrinterConfig) (Printer, error) {
	if cfg.PrettyJSON && !cfg.OutputJSON {
		return nil, ErrPrettyWithoutJSON
	}

	switch {
	case cfg.OutputJSON:
		opts := []printers.JSONPrinterOption{}
		if cfg.PrettyJSON {
			opts = append(opts, printers.WithPrettyJSON())
		}
		if cfg.Out != nil {
			opts = append(opts, printers.WithWriter[*printers.JSONPrinter](cfg.Out))
		}
		return printers.NewJSONPrinter(opts...), nil

	case cfg.NoColor:
		opts := []printers.PlainPrinterOption{}
		if cfg.Out != nil {
			opts = append(opts, printers.WithWriter[*printers.PlainPrinter](cfg.Out))
		}
		if cfg.Err != nil {
			opts = append(opts, printers.WithErrorWriter[*printers.PlainPrinter](cfg.Err))
		}
		return printers.NewPlainPrinter(opts...), nil

	default:
		opts := []printers.ColorPrinterOption{}
		if cfg.Out != nil {
			opts = append(opts, printers.WithWriter[*printers.ColorPrinter](cfg.Out))
		}
		if cfg.Err != nil {
			opts = append(opts, printers.WithErrorWriter[*printers.ColorPrinter](cfg.Err))
		}
		return printers.NewColorPrinter(opts...), nil
	}
}
