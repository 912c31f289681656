// Package pingers implements protocol-specific ping functionality for network connectivity testing.
package pingers

import (
	"context"
	"io"
	"net"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tcping-ru/tcping/option"
)

// DefaultTimeout bounds a single connect attempt.
const DefaultTimeout = 5 * time.Second

const tcp = "tcp"

// TCPPinger implements the Pinger interface for TCP connectivity testing.
// It dials the host string as given; name resolution for the connection
// is left to the dialer.
type TCPPinger struct {
	dialer *net.Dialer
	host   string
	port   uint16
	log    logrus.FieldLogger
}

type TCPOptions = option.Option[TCPPinger]

// NewTCPPinger creates a new TCP pinger for the specified host and port with optional configuration.
func NewTCPPinger(host string, port uint16, opts ...TCPOptions) *TCPPinger {
	t := &TCPPinger{
		host: host,
		port: port,
		dialer: &net.Dialer{
			Timeout: DefaultTimeout,
		},
		log: discardLogger(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// WithDialer configures a custom net.Dialer for TCP connections.
func WithDialer(dialer *net.Dialer) TCPOptions {
	return func(t *TCPPinger) {
		t.dialer = dialer
	}
}

// WithTimeout configures the connection timeout for TCP dial operations.
func WithTimeout(timeout time.Duration) TCPOptions {
	return func(t *TCPPinger) {
		if t.dialer == nil {
			t.dialer = &net.Dialer{}
		}
		t.dialer.Timeout = timeout
	}
}

// WithLogger sets the logger used for dial diagnostics.
func WithLogger(l logrus.FieldLogger) TCPOptions {
	return func(t *TCPPinger) {
		t.log = l
	}
}

// Host implements Pinger.
func (t *TCPPinger) Host() string {
	return t.host
}

// Port implements Pinger.
func (t *TCPPinger) Port() uint16 {
	return t.port
}

// Timeout returns the dial timeout in effect.
func (t *TCPPinger) Timeout() time.Duration {
	return t.dialer.Timeout
}

func (t *TCPPinger) address() string {
	return net.JoinHostPort(t.host, strconv.Itoa(int(t.port)))
}

// Ping implements Pinger. The connection is closed as soon as it is
// established; a nil error means the handshake completed in time.
func (t *TCPPinger) Ping(ctx context.Context) error {
	conn, err := t.dialer.DialContext(ctx, tcp, t.address())
	if err != nil {
		t.log.WithFields(logrus.Fields{
			"address": t.address(),
			"timeout": t.dialer.Timeout,
		}).WithError(err).Debug("dial failed")
		return err
	}
	defer conn.Close()

	t.log.WithFields(logrus.Fields{
		"local":  conn.LocalAddr().String(),
		"remote": conn.RemoteAddr().String(),
	}).Debug("connected")

	return nil
}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
