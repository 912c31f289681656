package app

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strconv"

	flag "github.com/spf13/pflag"

	"github.com/tcping-ru/tcping"
)

var (
	// ErrUsageRequested indicates the arguments could not be used and usage should be shown
	ErrUsageRequested = errors.New("usage requested")

	// ErrHelpRequested indicates -h, --help or --h was given
	ErrHelpRequested = errors.New("help requested")

	// ErrVersionRequested indicates version display was requested
	ErrVersionRequested = errors.New("version requested")

	// ErrUpdateCheckRequested indicates update check was requested
	ErrUpdateCheckRequested = errors.New("update check requested")

	ErrInvalidPortFormat = errors.New("Неверный формат порта")
	ErrPortOutOfRange    = errors.New("Порт должен быть в диапазоне 1-65535")
)

// ProberConfig contains everything the command line decides about a run.
type ProberConfig struct {
	Hostname string
	Port     uint16

	Debug bool

	PrinterConfig tcping.PrinterConfig
}

type flags struct {
	help      bool
	shortHelp bool
	version   bool
	update    bool
	json      bool
	pretty    bool
	noColor   bool
	debug     bool
}

func newFlagSet() (*flag.FlagSet, *flags) {
	var f flags

	fs := flag.NewFlagSet("tcping", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {
		// no-op, usage is printed by handleError
	}
	fs.SortFlags = false

	fs.BoolVarP(&f.help, "help", "h", false, "показать справку")
	fs.BoolVar(&f.shortHelp, "h", false, "показать справку")
	_ = fs.MarkHidden("h")
	fs.BoolVarP(&f.version, "version", "v", false, "показать версию")
	fs.BoolVarP(&f.update, "update", "u", false, "проверить наличие обновлений")
	fs.BoolVarP(&f.json, "json", "j", false, "вывод в формате JSON")
	fs.BoolVar(&f.pretty, "pretty", false, "форматировать JSON с отступами, только вместе с -j")
	fs.BoolVar(&f.noColor, "no-color", false, "не раскрашивать вывод")
	fs.BoolVarP(&f.debug, "debug", "d", false, "выводить отладочные сообщения в stderr")

	return fs, &f
}

var negativeNumber = regexp.MustCompile(`^-\d+$`)

// permuteArgs moves flags in front of positional arguments and ends them
// with "--", so a negative port such as -5 reaches port validation instead
// of being read as a shorthand flag. Every flag is boolean, so no flag takes
// the following argument as its value.
func permuteArgs(args []string) []string {
	var flagArgs, positional []string

	for i, arg := range args {
		if arg == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}

		if len(arg) > 1 && arg[0] == '-' && !negativeNumber.MatchString(arg) {
			flagArgs = append(flagArgs, arg)
			continue
		}
		positional = append(positional, arg)
	}

	return slices.Concat(flagArgs, []string{"--"}, positional)
}

// ParseArgs turns the command line (without the program name) into a
// ProberConfig. Help, version and update requests are returned as the
// matching sentinel errors so the caller can act on them.
func ParseArgs(args []string) (ProberConfig, error) {
	fs, f := newFlagSet()

	if err := fs.Parse(permuteArgs(args)); err != nil {
		return ProberConfig{}, fmt.Errorf("%w: %v", ErrUsageRequested, err)
	}

	switch {
	case f.help || f.shortHelp:
		return ProberConfig{}, ErrHelpRequested
	case f.version:
		return ProberConfig{}, ErrVersionRequested
	case f.update:
		return ProberConfig{}, ErrUpdateCheckRequested
	}

	positional := fs.Args()
	if len(positional) < 1 || len(positional) > 2 {
		return ProberConfig{}, ErrUsageRequested
	}

	if f.pretty && !f.json {
		return ProberConfig{}, tcping.ErrPrettyWithoutJSON
	}

	port := uint16(tcping.DefaultPort)
	if len(positional) == 2 {
		p, err := parsePort(positional[1])
		if err != nil {
			return ProberConfig{}, err
		}
		port = p
	}

	return ProberConfig{
		Hostname: positional[0],
		Port:     port,
		Debug:    f.debug,
		PrinterConfig: tcping.PrinterConfig{
			OutputJSON: f.json,
			PrettyJSON: f.pretty,
			NoColor:    f.noColor,
		},
	}, nil
}

// parsePort accepts a base 10 port number in the 1..65535 range.
func parsePort(s string) (uint16, error) {
	port, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrInvalidPortFormat
	}

	if port < 1 || port > 65535 {
		return 0, ErrPortOutOfRange
	}

	return uint16(port), nil
}
