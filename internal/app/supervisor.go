package app

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tcping-ru/tcping"
)

// supervisor runs the probe loop in its own goroutine and turns the first
// signal into a cancellation. The loop then gets grace to finish printing
// before the closing message is shown.
type supervisor struct {
	signals <-chan os.Signal
	grace   time.Duration
	printer tcping.Printer
	log     logrus.FieldLogger
}

// run returns the loop's exit code, or 1 if the loop was interrupted and
// did not finish within the grace period.
func (s *supervisor) run(loop func(ctx context.Context) int) int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan int, 1)
	go func() {
		done <- loop(ctx)
	}()

	select {
	case code := <-done:
		return code
	case sig := <-s.signals:
		s.log.WithField("signal", sig).Debug("interrupt received, stopping probes")
		cancel()
	}

	grace := time.NewTimer(s.grace)
	defer grace.Stop()

	code := 0
	select {
	case code = <-done:
	case <-grace.C:
		s.log.WithField("grace", s.grace).Debug("probe loop did not stop in time")
		code = 1
	}

	s.printer.PrintDone()

	return code
}
