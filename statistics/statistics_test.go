package statistics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tcping-ru/tcping/statistics"
)

func TestNew(t *testing.T) {
	s := statistics.New("example.com", "93.184.216.34", 443, 4)

	assert.Equal(t, "example.com", s.Hostname)
	assert.Equal(t, "93.184.216.34", s.Address)
	assert.Equal(t, uint16(443), s.Port)
	assert.Equal(t, 4, s.Budget)
	assert.Equal(t, statistics.UnboundedDuration, s.MinTime)
	assert.Equal(t, time.Duration(0), s.MaxTime)
	assert.Equal(t, "TCP", s.ProtocolStr())
	assert.False(t, s.HasLatency())
}

func TestRecord(t *testing.T) {
	tests := []struct {
		name          string
		attempts      []statistics.AttemptResult
		wantSuccesses int
		wantFailures  int
		wantTotal     time.Duration
		wantMin       int64
		wantMax       int64
	}{
		{
			name: "all successful",
			attempts: []statistics.AttemptResult{
				{Succeeded: true, Elapsed: 12 * time.Millisecond},
				{Succeeded: true, Elapsed: 7 * time.Millisecond},
				{Succeeded: true, Elapsed: 30 * time.Millisecond},
				{Succeeded: true, Elapsed: 11 * time.Millisecond},
			},
			wantSuccesses: 4,
			wantTotal:     60 * time.Millisecond,
			wantMin:       7,
			wantMax:       30,
		},
		{
			name: "all failed",
			attempts: []statistics.AttemptResult{
				{Elapsed: 5 * time.Second},
				{Elapsed: time.Millisecond},
				{Elapsed: 2 * time.Millisecond},
				{Elapsed: 3 * time.Millisecond},
			},
			wantFailures: 4,
		},
		{
			name: "mixed, failures do not touch latency",
			attempts: []statistics.AttemptResult{
				{Succeeded: true, Elapsed: 20 * time.Millisecond},
				{Elapsed: 5000 * time.Millisecond},
				{Succeeded: true, Elapsed: 10 * time.Millisecond},
			},
			wantSuccesses: 2,
			wantFailures:  1,
			wantTotal:     30 * time.Millisecond,
			wantMin:       10,
			wantMax:       20,
		},
		{
			name: "sub-millisecond precision is dropped",
			attempts: []statistics.AttemptResult{
				{Succeeded: true, Elapsed: 1*time.Millisecond + 999*time.Microsecond},
				{Succeeded: true, Elapsed: 400 * time.Microsecond},
			},
			wantSuccesses: 2,
			wantTotal:     time.Millisecond,
			wantMin:       0,
			wantMax:       1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := statistics.New("localhost", "127.0.0.1", 80, 4)

			for _, a := range tt.attempts {
				s.Record(a)
				assert.Equal(t, s.Sent, s.Successes+s.Failures)
			}

			assert.Equal(t, len(tt.attempts), s.Sent)
			assert.Equal(t, tt.wantSuccesses, s.Successes)
			assert.Equal(t, tt.wantFailures, s.Failures)
			assert.Equal(t, tt.wantTotal, s.TotalSuccessTime)
			assert.Equal(t, tt.wantMin, s.MinMillis())
			assert.Equal(t, tt.wantMax, s.MaxMillis())
			if s.HasLatency() {
				assert.LessOrEqual(t, s.MinTime, s.MaxTime)
			}
		})
	}
}

func TestLossPercentUsesBudget(t *testing.T) {
	s := statistics.New("localhost", "127.0.0.1", 80, 4)
	s.Record(statistics.AttemptResult{Succeeded: true, Elapsed: time.Millisecond})
	s.Record(statistics.AttemptResult{Elapsed: time.Millisecond})

	// two of four attempts were sent before an interruption
	assert.Equal(t, 2, s.Sent)
	assert.InDelta(t, 25.0, s.LossPercent(), 0.0001)
}

func TestLossPercentZeroBudget(t *testing.T) {
	s := statistics.Statistics{Failures: 3}
	assert.Zero(t, s.LossPercent())
}

func TestAverageMillis(t *testing.T) {
	s := statistics.New("localhost", "127.0.0.1", 80, 4)
	assert.Zero(t, s.AverageMillis())

	s.Record(statistics.AttemptResult{Succeeded: true, Elapsed: 12 * time.Millisecond})
	s.Record(statistics.AttemptResult{Succeeded: true, Elapsed: 13 * time.Millisecond})

	want := statistics.DurationToMillisecond(s.TotalSuccessTime) / float64(s.Successes)
	assert.Equal(t, want, s.AverageMillis())
	assert.Equal(t, 12.5, s.AverageMillis())
}

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in   float64
		want int64
	}{
		{in: 0, want: 0},
		{in: 12.49, want: 12},
		{in: 12.5, want: 13},
		{in: 33.333, want: 33},
		{in: 66.666, want: 67},
		{in: 75, want: 75},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, statistics.RoundHalfUp(tt.in), "RoundHalfUp(%v)", tt.in)
	}
}

func TestDurationToMillisecond(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want float64
	}{
		{name: "zero", d: 0, want: 0},
		{name: "one millisecond", d: time.Millisecond, want: 1},
		{name: "half millisecond", d: 500 * time.Microsecond, want: 0.5},
		{name: "one second", d: time.Second, want: 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statistics.DurationToMillisecond(tt.d))
		})
	}
}
