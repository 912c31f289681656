// Package dns turns the user supplied host into the address shown in
// TCPing output.
package dns

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/netip"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/sirupsen/logrus"

	"github.com/tcping-ru/tcping/option"
)

// UnknownAddress is displayed in place of an address the host could not be resolved to.
const UnknownAddress = "неизвестный адрес"

var (
	ErrNoIPAddresses = errors.New("no ip addresses")
	ErrResolve       = errors.New("resolve hostname")
)

const (
	defaultCacheTTL = time.Minute
	ipv4OrIPv6      = "ip" // allows LookupNetIP to use both IPv4 and IPv6
)

// LookupFunc matches net.Resolver.LookupNetIP.
type LookupFunc func(ctx context.Context, network, host string) ([]netip.Addr, error)

// Resolver produces display addresses. Failures are never fatal: the
// caller keeps probing the original host string.
type Resolver struct {
	lookup   LookupFunc
	cache    *ttlcache.Cache[string, string]
	cacheTTL time.Duration
	log      logrus.FieldLogger
}

type ResolverOption = option.Option[Resolver]

// WithCacheTTL sets how long a display address is reused. Zero disables caching.
func WithCacheTTL(ttl time.Duration) ResolverOption {
	return func(r *Resolver) {
		r.cacheTTL = ttl
	}
}

// WithLookup replaces the system resolver.
func WithLookup(lookup LookupFunc) ResolverOption {
	return func(r *Resolver) {
		r.lookup = lookup
	}
}

// WithLogger sets the logger used for resolution diagnostics.
func WithLogger(l logrus.FieldLogger) ResolverOption {
	return func(r *Resolver) {
		r.log = l
	}
}

// NewResolver creates a new resolver with optional configuration
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{
		lookup:   net.DefaultResolver.LookupNetIP,
		cacheTTL: defaultCacheTTL,
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		r.log = l
	}

	if r.cacheTTL > 0 {
		r.cache = ttlcache.New[string, string](
			ttlcache.WithTTL[string, string](r.cacheTTL),
			ttlcache.WithDisableTouchOnHit[string, string](),
		)
	}

	return r
}

// DisplayAddress returns the numeric address of host, or UnknownAddress if
// it cannot be resolved. Only the deadline carried by ctx bounds the lookup.
func (r *Resolver) DisplayAddress(ctx context.Context, host string) string {
	if r.cache != nil {
		if item := r.cache.Get(host); item != nil {
			return item.Value()
		}
	}

	addr := UnknownAddress

	ip, err := r.Resolve(ctx, host)
	if err != nil {
		r.log.WithField("host", host).WithError(err).Debug("address unknown")
	} else {
		addr = ip.String()
	}

	if r.cache != nil {
		r.cache.Set(host, addr, ttlcache.DefaultTTL)
	}

	return addr
}

// Resolve resolves host to a single address. Literal addresses are
// returned without a lookup.
func (r *Resolver) Resolve(ctx context.Context, host string) (netip.Addr, error) {
	if ip, err := netip.ParseAddr(host); err == nil {
		return ip.Unmap(), nil
	}

	ipAddrs, err := r.lookup(ctx, ipv4OrIPv6, host)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: %s: %w", ErrResolve, host, err)
	}

	if len(ipAddrs) == 0 {
		return netip.Addr{}, fmt.Errorf("%w: %s", ErrNoIPAddresses, host)
	}

	// static builds (CGO=0) return IPv4-mapped IPv6 addresses
	return ipAddrs[0].Unmap(), nil
}
