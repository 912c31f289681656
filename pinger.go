// Package tcping measures TCP connect latency to a host and port the way
// ping measures ICMP echo latency.
package tcping

import (
	"context"

	"github.com/tcping-ru/tcping/dns"
	"github.com/tcping-ru/tcping/pingers"
)

var (
	// List of compile time checks for all pingers
	_ Pinger = (*pingers.TCPPinger)(nil)

	_ AddressResolver = (*dns.Resolver)(nil)
)

// Pinger performs one connection attempt. A nil error is a success;
// any error, including a timeout, is a failure.
type Pinger interface {
	Ping(ctx context.Context) error
	Host() string
	Port() uint16
}

// AddressResolver supplies the address shown in output. It must not fail:
// unresolvable hosts get a placeholder.
type AddressResolver interface {
	DisplayAddress(ctx context.Context, host string) string
}
