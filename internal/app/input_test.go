package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcping-ru/tcping"
	"github.com/tcping-ru/tcping/internal/app"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want app.ProberConfig
	}{
		{
			name: "host only uses default port",
			args: []string{"example.ru"},
			want: app.ProberConfig{Hostname: "example.ru", Port: 80},
		},
		{
			name: "host and port",
			args: []string{"example.ru", "443"},
			want: app.ProberConfig{Hostname: "example.ru", Port: 443},
		},
		{
			name: "lowest port",
			args: []string{"10.0.0.1", "1"},
			want: app.ProberConfig{Hostname: "10.0.0.1", Port: 1},
		},
		{
			name: "highest port",
			args: []string{"10.0.0.1", "65535"},
			want: app.ProberConfig{Hostname: "10.0.0.1", Port: 65535},
		},
		{
			name: "flags after positionals",
			args: []string{"example.ru", "443", "-j", "--pretty", "-d"},
			want: app.ProberConfig{
				Hostname:      "example.ru",
				Port:          443,
				Debug:         true,
				PrinterConfig: tcping.PrinterConfig{OutputJSON: true, PrettyJSON: true},
			},
		},
		{
			name: "explicit terminator",
			args: []string{"-d", "--", "example.ru", "8080"},
			want: app.ProberConfig{Hostname: "example.ru", Port: 8080, Debug: true},
		},
		{
			name: "no color",
			args: []string{"--no-color", "example.ru"},
			want: app.ProberConfig{
				Hostname:      "example.ru",
				Port:          80,
				PrinterConfig: tcping.PrinterConfig{NoColor: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := app.ParseArgs(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseArgs_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{name: "no arguments", args: nil, want: app.ErrUsageRequested},
		{name: "too many arguments", args: []string{"a", "80", "extra"}, want: app.ErrUsageRequested},
		{name: "unknown flag", args: []string{"--count", "5", "example.ru"}, want: app.ErrUsageRequested},
		{name: "short help", args: []string{"-h"}, want: app.ErrHelpRequested},
		{name: "long help", args: []string{"--help"}, want: app.ErrHelpRequested},
		{name: "double dash h", args: []string{"--h"}, want: app.ErrHelpRequested},
		{name: "help with a host", args: []string{"example.ru", "--h"}, want: app.ErrHelpRequested},
		{name: "version", args: []string{"-v"}, want: app.ErrVersionRequested},
		{name: "update", args: []string{"--update"}, want: app.ErrUpdateCheckRequested},
		{name: "non numeric port", args: []string{"example.ru", "http"}, want: app.ErrInvalidPortFormat},
		{name: "fractional port", args: []string{"example.ru", "80.5"}, want: app.ErrInvalidPortFormat},
		{name: "port zero", args: []string{"example.ru", "0"}, want: app.ErrPortOutOfRange},
		{name: "port too large", args: []string{"example.ru", "65536"}, want: app.ErrPortOutOfRange},
		{name: "negative port", args: []string{"example.ru", "-5"}, want: app.ErrPortOutOfRange},
		{name: "negative port before a flag", args: []string{"example.ru", "-80", "-j"}, want: app.ErrPortOutOfRange},
		{name: "negative port after terminator", args: []string{"--", "example.ru", "-1"}, want: app.ErrPortOutOfRange},
		{name: "pretty without json", args: []string{"--pretty", "example.ru"}, want: tcping.ErrPrettyWithoutJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := app.ParseArgs(tt.args)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestPortErrorMessages(t *testing.T) {
	assert.EqualError(t, app.ErrInvalidPortFormat, "Неверный формат порта")
	assert.EqualError(t, app.ErrPortOutOfRange, "Порт должен быть в диапазоне 1-65535")
}
