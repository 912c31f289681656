package printers

import (
	"io"
	"os"
)

// options contains common output settings shared by all printers
type options struct {
	out    io.Writer
	errOut io.Writer
}

func defaultOptions() options {
	return options{
		out:    os.Stdout,
		errOut: os.Stderr,
	}
}

type hasOptions interface {
	options() *options
}

// WithWriter redirects regular printer output, os.Stdout by default
func WithWriter[T hasOptions](w io.Writer) func(T) {
	return func(p T) {
		p.options().out = w
	}
}

// WithErrorWriter redirects error messages, os.Stderr by default
func WithErrorWriter[T hasOptions](w io.Writer) func(T) {
	return func(p T) {
		p.options().errOut = w
	}
}
