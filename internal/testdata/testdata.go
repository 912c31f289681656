// Package testdata provides shared test helpers and fixtures.
package testdata

import (
	"bufio"
	"bytes"
	"encoding/json"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/tcping-ru/tcping/printers"
	"github.com/tcping-ru/tcping/statistics"
)

// Common test fixture values
const (
	TestHostname = "example.com"
	TestAddress  = "93.184.216.34"
	TestPort     = uint16(443)
	TestBudget   = 4
)

var TestTimestamp = time.Date(2024, 1, 15, 10, 30, 45, 0, time.UTC)

// NewStatistics returns statistics for TestHostname with the given
// attempts already recorded.
func NewStatistics(attempts ...statistics.AttemptResult) *statistics.Statistics {
	s := statistics.New(TestHostname, TestAddress, TestPort, TestBudget)
	s.StartTime = TestTimestamp
	s.LatestAttempt = TestTimestamp

	for _, a := range attempts {
		s.Record(a)
	}

	return &s
}

// Success is a successful attempt that took ms milliseconds.
func Success(ms int) statistics.AttemptResult {
	return statistics.AttemptResult{Succeeded: true, Elapsed: time.Duration(ms) * time.Millisecond}
}

// Failure is a failed attempt that took ms milliseconds.
func Failure(ms int) statistics.AttemptResult {
	return statistics.AttemptResult{Elapsed: time.Duration(ms) * time.Millisecond}
}

// DecodeJSONLines parses every JSON event written to buf.
func DecodeJSONLines(t *testing.T, buf *bytes.Buffer) []printers.JSONData {
	t.Helper()

	var events []printers.JSONData

	dec := json.NewDecoder(buf)
	for dec.More() {
		var data printers.JSONData
		if err := dec.Decode(&data); err != nil {
			t.Fatalf("parse JSON: %v\nOutput: %s", err, buf.String())
		}
		events = append(events, data)
	}

	return events
}

// Lines splits output into lines without the trailing newline.
func Lines(output string) []string {
	var lines []string

	sc := bufio.NewScanner(strings.NewReader(output))
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}

	return lines
}

// ServerListen starts a loopback listener that accepts and immediately
// closes connections. It is closed when the test ends.
func ServerListen(t *testing.T) (net.Listener, uint16) {
	t.Helper()

	srv, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("test server: %v", err)
	}
	t.Cleanup(func() { srv.Close() })

	go func() {
		for {
			c, err := srv.Accept()
			if err != nil {
				return
			}
			c.Close()
		}
	}()

	return srv, uint16(srv.Addr().(*net.TCPAddr).Port)
}

// ClosedPort returns a loopback port with no listener.
func ClosedPort(t *testing.T) uint16 {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("reserve port: %v", err)
	}
	port := uint16(l.Addr().(*net.TCPAddr).Port)
	l.Close()

	return port
}
