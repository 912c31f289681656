package tcping

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tcping-ru/tcping/dns"
	"github.com/tcping-ru/tcping/option"
	"github.com/tcping-ru/tcping/printers"
	"github.com/tcping-ru/tcping/statistics"
)

// Prober runs a fixed number of connection attempts against one target and
// reports each of them through its printer.
type Prober struct {
	pinger     Pinger
	printer    Printer
	resolver   AddressResolver
	log        logrus.FieldLogger
	Config     Config
	Statistics statistics.Statistics
}

type ProberOption = option.Option[Prober]

// WithPrinter configures the printer for probe output formatting.
func WithPrinter(printer Printer) ProberOption {
	return func(p *Prober) {
		p.printer = printer
	}
}

// WithResolver configures how the display address is obtained.
func WithResolver(r AddressResolver) ProberOption {
	return func(p *Prober) {
		p.resolver = r
	}
}

// WithLogger sets the logger for debug diagnostics.
func WithLogger(l logrus.FieldLogger) ProberOption {
	return func(p *Prober) {
		p.log = l
	}
}

// WithConfig replaces the whole session configuration.
func WithConfig(c Config) ProberOption {
	return func(p *Prober) {
		p.Config = c
	}
}

// WithInterval configures the wait between probe attempts.
func WithInterval(interval time.Duration) ProberOption {
	return func(p *Prober) {
		p.Config.Interval = interval
	}
}

// WithProbeCount configures the attempt budget.
func WithProbeCount(count int) ProberOption {
	return func(p *Prober) {
		p.Config.Count = count
	}
}

// NewProber creates a new prober with the given pinger and optional configuration.
func NewProber(p Pinger, opts ...ProberOption) *Prober {
	pr := Prober{
		pinger: p,
		Config: DefaultConfig(),
	}

	for _, opt := range opts {
		opt(&pr)
	}

	if pr.log == nil {
		l := logrus.New()
		l.SetLevel(logrus.WarnLevel)
		pr.log = l
	}
	if pr.printer == nil {
		pr.printer = printers.NewColorPrinter()
	}
	if pr.resolver == nil {
		pr.resolver = dns.NewResolver(dns.WithLogger(pr.log))
	}

	return &pr
}

// Probe spends the attempt budget, printing a line per attempt, and returns
// the collected statistics. Cancelling ctx stops the loop early; the
// statistics are then marked as interrupted. The only error returned is an
// invalid configuration.
func (p *Prober) Probe(ctx context.Context) (statistics.Statistics, error) {
	if err := p.Config.Validate(); err != nil {
		return statistics.Statistics{}, err
	}

	host := p.pinger.Host()
	log := p.log.WithFields(logrus.Fields{"host": host, "port": p.pinger.Port()})

	p.Statistics = statistics.New(host, p.resolver.DisplayAddress(ctx, host), p.pinger.Port(), p.Config.Count)
	p.Statistics.StartTime = time.Now()
	p.printer.PrintStart(&p.Statistics)

	timer := time.NewTimer(p.Config.Interval)
	defer timer.Stop()

	for attempt := 1; attempt <= p.Config.Count; attempt++ {
		if ctx.Err() != nil {
			p.Statistics.Interrupted = true
			break
		}

		pingTime := time.Now()
		err := p.pinger.Ping(ctx)
		elapsed := time.Since(pingTime)

		p.Statistics.LatestAttempt = pingTime
		p.Statistics.Record(statistics.AttemptResult{Succeeded: err == nil, Elapsed: elapsed})

		if err == nil {
			p.Statistics.Address = p.resolver.DisplayAddress(ctx, host)
			p.printer.PrintProbeSuccess(&p.Statistics)
		} else {
			log.WithError(err).WithField("attempt", attempt).Debug("probe failed")
			p.printer.PrintProbeFailure(&p.Statistics)
		}

		if attempt == p.Config.Count {
			break
		}

		if !p.wait(ctx, timer) {
			log.WithField("attempt", attempt).Debug("probing interrupted")
			p.Statistics.Interrupted = true
			break
		}
	}

	p.Statistics.EndTime = time.Now()

	return p.Statistics, nil
}

// wait blocks for the configured interval. It reports false if ctx was
// cancelled first.
func (p *Prober) wait(ctx context.Context, timer *time.Timer) bool {
	timer.Reset(p.Config.Interval)

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
