// Package app wires the command line to the prober.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/tcping-ru/tcping"
	"github.com/tcping-ru/tcping/dns"
	"github.com/tcping-ru/tcping/pingers"
)

// env is what a run needs from the process.
type env struct {
	stdout  io.Writer
	stderr  io.Writer
	signals <-chan os.Signal
	config  tcping.Config
}

// Run executes the tcping application and returns an exit code
func Run() int {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)

	return run(os.Args[1:], env{
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		signals: signals,
		config:  tcping.DefaultConfig(),
	})
}

func run(args []string, e env) int {
	config, err := ParseArgs(args)
	if err != nil {
		return handleError(err, e)
	}

	log := NewLogger(config.Debug)
	log.SetOutput(e.stderr)

	config.PrinterConfig.Out = e.stdout
	config.PrinterConfig.Err = e.stderr
	if !isTerminal(e.stdout) {
		config.PrinterConfig.NoColor = true
	}

	printer, err := tcping.NewPrinter(config.PrinterConfig)
	if err != nil {
		return handleError(err, e)
	}

	prober := buildProber(config, e.config, printer, log)

	log.WithFields(logrus.Fields{
		"host":    config.Hostname,
		"port":    config.Port,
		"timeout": e.config.Timeout,
		"count":   e.config.Count,
	}).Debug("starting probes")

	sup := &supervisor{
		signals: e.signals,
		grace:   e.config.GracePeriod,
		printer: printer,
		log:     log,
	}

	return sup.run(func(ctx context.Context) int {
		stats, err := prober.Probe(ctx)
		if err != nil {
			printer.PrintError("%v", err)
			return 1
		}

		printer.PrintStatistics(&stats)
		return 0
	})
}

func buildProber(config ProberConfig, cfg tcping.Config, printer tcping.Printer, log logrus.FieldLogger) *tcping.Prober {
	pinger := pingers.NewTCPPinger(config.Hostname, config.Port,
		pingers.WithTimeout(cfg.Timeout),
		pingers.WithLogger(log))

	return tcping.NewProber(pinger,
		tcping.WithConfig(cfg),
		tcping.WithPrinter(printer),
		tcping.WithResolver(dns.NewResolver(dns.WithLogger(log))),
		tcping.WithLogger(log))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func handleError(err error, e env) int {
	if err == nil {
		return 0
	}

	switch {
	case errors.Is(err, ErrHelpRequested):
		PrintUsage(e.stdout)
		return 0

	case errors.Is(err, ErrUsageRequested):
		// a bare ErrUsageRequested means wrong positional arguments
		if errors.Unwrap(err) != nil {
			fmt.Fprintln(e.stderr, err)
		}
		PrintUsage(e.stdout)
		return 2

	case errors.Is(err, ErrVersionRequested):
		PrintVersion(e.stdout)
		return 0

	case errors.Is(err, ErrUpdateCheckRequested):
		msg, checkErr := CheckForUpdates(context.Background(), nil)
		if checkErr != nil {
			fmt.Fprintf(e.stderr, "ошибка: %v\n", checkErr)
			return 1
		}
		fmt.Fprintln(e.stdout, msg)
		return 0

	case errors.Is(err, ErrInvalidPortFormat),
		errors.Is(err, ErrPortOutOfRange),
		errors.Is(err, tcping.ErrPrettyWithoutJSON):
		fmt.Fprintln(e.stderr, err)
		return 2
	}

	fmt.Fprintf(e.stderr, "ошибка: %v\n", err)
	return 1
}
