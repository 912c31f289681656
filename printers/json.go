package printers

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tcping-ru/tcping/option"
	"github.com/tcping-ru/tcping/statistics"
)

// JSONEventType is a special type for each method
// in the printer interface so that automatic tools
// can understand what kind of an event they've received.
type JSONEventType string

const (
	startEvent      JSONEventType = "start"      // Event type for `PrintStart` method.
	probeEvent      JSONEventType = "probe"      // Event type for both `PrintProbeSuccess` and `PrintProbeFailure`.
	statisticsEvent JSONEventType = "statistics" // Event type for `PrintStatistics` method.
	doneEvent       JSONEventType = "done"       // Event type for `PrintDone` method.
	errorEvent      JSONEventType = "error"      // Event type for `PrintError` method.
)

// JSONData contains all possible fields for JSON output.
// Because one event usually contains only a subset of fields,
// other fields will be omitted in the output.
type JSONData struct {
	Type JSONEventType `json:"type"` // Specifies type of a message/event.
	// Success is a pointer on purpose, otherwise success=false would be
	// omitted, but it still has to be omitted for non-probe messages.
	Success     *bool  `json:"success,omitempty"`
	Timestamp   string `json:"timestamp,omitempty"`
	Message     string `json:"message"` // Message contains the same text the plain printer shows.
	Hostname    string `json:"hostname,omitempty"`
	Address     string `json:"address,omitempty"`
	Port        uint16 `json:"port,omitempty"`
	Protocol    string `json:"protocol,omitempty"`
	ElapsedMs   *int64 `json:"elapsedMs,omitempty"`
	Sent        int    `json:"sent,omitempty"`
	Budget      int    `json:"budget,omitempty"`
	Received    *int   `json:"received,omitempty"`
	Lost        *int   `json:"lost,omitempty"`
	LossPercent *int64 `json:"lossPercent,omitempty"`
	MinMs       *int64 `json:"minMs,omitempty"`
	MaxMs       *int64 `json:"maxMs,omitempty"`
	AvgMs       *int64 `json:"avgMs,omitempty"`
	Interrupted bool   `json:"interrupted,omitempty"`
}

// JSONPrinter is a struct that holds a JSON encoder to print structured JSON output.
type JSONPrinter struct {
	opt    options
	pretty bool
}

type JSONPrinterOption = option.Option[JSONPrinter]

func (p *JSONPrinter) options() *options {
	return &p.opt
}

// WithPrettyJSON indents every event.
func WithPrettyJSON() JSONPrinterOption {
	return func(p *JSONPrinter) {
		p.pretty = true
	}
}

// NewJSONPrinter creates a new JSONPrinter instance.
func NewJSONPrinter(opts ...JSONPrinterOption) *JSONPrinter {
	p := &JSONPrinter{opt: defaultOptions()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *JSONPrinter) encode(data JSONData) {
	encoder := json.NewEncoder(p.opt.out)
	if p.pretty {
		encoder.SetIndent("", "\t")
	}
	encoder.Encode(data)
}

func ptr[T any](v T) *T {
	return &v
}

// PrintStart prints the initial message before doing probes.
func (p *JSONPrinter) PrintStart(s *statistics.Statistics) {
	p.encode(JSONData{
		Type:      startEvent,
		Message:   startMessage(s),
		Timestamp: s.StartTimeFormatted(),
		Hostname:  s.Hostname,
		Address:   s.Address,
		Port:      s.Port,
		Protocol:  s.ProtocolStr(),
		Budget:    s.Budget,
	})
}

// PrintProbeSuccess prints successful TCP probe replies in JSON format.
func (p *JSONPrinter) PrintProbeSuccess(s *statistics.Statistics) {
	p.encode(JSONData{
		Type:      probeEvent,
		Success:   ptr(true),
		Message:   successMessage(s),
		Timestamp: s.LatestAttemptFormatted(),
		Hostname:  s.Hostname,
		Address:   s.Address,
		Port:      s.Port,
		ElapsedMs: ptr(s.LatestMillis()),
		Sent:      s.Sent,
	})
}

// PrintProbeFailure prints a JSON message when a TCP probe fails.
func (p *JSONPrinter) PrintProbeFailure(s *statistics.Statistics) {
	p.encode(JSONData{
		Type:      probeEvent,
		Success:   ptr(false),
		Message:   failureMessage(s),
		Timestamp: s.LatestAttemptFormatted(),
		Hostname:  s.Hostname,
		Port:      s.Port,
		ElapsedMs: ptr(s.LatestMillis()),
		Sent:      s.Sent,
	})
}

// PrintStatistics prints the gathered stats, only when a probe succeeded.
func (p *JSONPrinter) PrintStatistics(s *statistics.Statistics) {
	if !s.HasLatency() {
		return
	}

	p.encode(JSONData{
		Type:        statisticsEvent,
		Message:     fmt.Sprintf("%s %s", statisticsHeader, strings.TrimSpace(packetsMessage(s))),
		Hostname:    s.Hostname,
		Address:     s.Address,
		Port:        s.Port,
		Sent:        s.Sent,
		Budget:      s.Budget,
		Received:    ptr(s.Successes),
		Lost:        ptr(s.Failures),
		LossPercent: ptr(lossPercent(s)),
		MinMs:       ptr(s.MinMillis()),
		MaxMs:       ptr(s.MaxMillis()),
		AvgMs:       ptr(averageMillis(s)),
		Interrupted: s.Interrupted,
	})
}

// PrintDone prints the closing event.
func (p *JSONPrinter) PrintDone() {
	p.encode(JSONData{
		Type:    doneEvent,
		Message: doneMessage,
	})
}

// PrintError formats and prints an error message in JSON format.
func (p *JSONPrinter) PrintError(format string, args ...any) {
	p.encode(JSONData{
		Type:    errorEvent,
		Message: fmt.Sprintf(format, args...),
	})
}
