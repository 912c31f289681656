// Package statistics accumulates the outcome of TCPing probe attempts
// and derives the summary values printed at the end of a session.
package statistics

import (
	"fmt"
	"math"
	"time"
)

type protocol string

const (
	TCP protocol = "TCP"
)

// UnboundedDuration is the starting value of MinTime, so that the first
// successful attempt always becomes the minimum.
const UnboundedDuration = time.Duration(math.MaxInt64)

// AttemptResult is the outcome of a single probe attempt.
type AttemptResult struct {
	Succeeded bool
	Elapsed   time.Duration
}

// Statistics holds the state of one probing session.
type Statistics struct {
	// Target information
	Hostname string
	Address  string // display address, may be the unknown-address sentinel
	Port     uint16
	Protocol protocol

	// Time tracking
	StartTime     time.Time
	EndTime       time.Time
	LatestAttempt time.Time

	// Probe counters
	Budget    int
	Sent      int
	Successes int
	Failures  int

	// RTT tracking
	TotalSuccessTime time.Duration
	MinTime          time.Duration
	MaxTime          time.Duration
	LatestElapsed    time.Duration

	// Interrupted is set when the session stopped before the budget was spent.
	Interrupted bool
}

// New returns Statistics ready to record attempts against the given budget.
func New(hostname, address string, port uint16, budget int) Statistics {
	return Statistics{
		Hostname: hostname,
		Address:  address,
		Port:     port,
		Protocol: TCP,
		Budget:   budget,
		MinTime:  UnboundedDuration,
	}
}

// Record folds one attempt into the statistics. Elapsed time is kept at
// millisecond precision, which is the precision every printer shows.
func (s *Statistics) Record(r AttemptResult) {
	elapsed := r.Elapsed.Truncate(time.Millisecond)

	s.Sent++
	s.LatestElapsed = elapsed

	if !r.Succeeded {
		s.Failures++
		return
	}

	s.Successes++
	s.TotalSuccessTime += elapsed
	s.MinTime = min(s.MinTime, elapsed)
	s.MaxTime = max(s.MaxTime, elapsed)
}

// HasLatency reports whether at least one attempt succeeded, which is
// required before any latency figure can be printed.
func (s *Statistics) HasLatency() bool {
	return s.Successes > 0
}

// LossPercent returns failures as a percentage of the full attempt budget,
// not of the attempts actually sent.
func (s *Statistics) LossPercent() float64 {
	if s.Budget <= 0 {
		return 0
	}

	return float64(s.Failures) * 100 / float64(s.Budget)
}

// AverageMillis returns the mean successful RTT in milliseconds.
func (s *Statistics) AverageMillis() float64 {
	if s.Successes == 0 {
		return 0
	}

	return DurationToMillisecond(s.TotalSuccessTime) / float64(s.Successes)
}

func (s *Statistics) MinMillis() int64 {
	if !s.HasLatency() {
		return 0
	}
	return s.MinTime.Milliseconds()
}

func (s *Statistics) MaxMillis() int64 {
	return s.MaxTime.Milliseconds()
}

func (s *Statistics) LatestMillis() int64 {
	return s.LatestElapsed.Milliseconds()
}

func (s *Statistics) PortStr() string {
	return fmt.Sprint(s.Port)
}

func (s *Statistics) ProtocolStr() string {
	return string(s.Protocol)
}

func (s *Statistics) StartTimeFormatted() string {
	return s.StartTime.Format(time.DateTime)
}

func (s *Statistics) LatestAttemptFormatted() string {
	return s.LatestAttempt.Format(time.DateTime)
}

// DurationToMillisecond returns the amount of milliseconds in d.
// Using d.Milliseconds() is not an option, because it drops
// decimal points, returning an int.
func DurationToMillisecond(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// RoundHalfUp rounds half away from zero, so 12.5 is shown as 13.
func RoundHalfUp(x float64) int64 {
	return int64(math.Round(x))
}
