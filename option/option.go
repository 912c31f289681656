// Package option holds the functional option type shared by the prober,
// pingers, printers and resolver.
package option

// Option configures a value of type T during construction.
type Option[T any] func(*T)
