// Package argparse provides declarative command-line option parsing. Callers
// register typed destinations with short and long aliases, then feed the
// argument vector to Parse; values are written to the destinations in place
// and all parse failures are reported together without halting the process.
package argparse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/stratakit/strata/common"
)

const (
	// ErrMissingValue is returned when an option that takes a value is the
	// last token of the argument vector.
	ErrMissingValue = common.ConstError("missing option value")
	// ErrMalformedValue is returned when an option value does not parse as
	// the declared type.
	ErrMalformedValue = common.ConstError("malformed option value")
	// ErrMissingRequired is returned when a required option never appeared.
	ErrMissingRequired = common.ConstError("missing required option")
)

type argKind int

const (
	kindBool argKind = iota
	kindInt
	kindFloat
	kindString
)

type argSpec struct {
	short    string // set of single-character aliases, e.g. "vV"
	long     string // comma-separated long aliases, e.g. "verbose,verbose_output"
	help     string
	required bool
	kind     argKind
	seen     bool

	boolDest   *bool
	intDest    *int
	floatDest  *float64
	stringDest *string
}

// ArgSet is an ordered collection of option specifications. Options are
// matched in registration order; tokens matching no option are ignored.
type ArgSet struct {
	specs []*argSpec
}

// New creates an empty option set.
func New() *ArgSet {
	return &ArgSet{}
}

// Bool registers a flag option. The destination is set to true when the
// flag appears; flags take no value.
func (s *ArgSet) Bool(dest *bool, short, long, help string, required bool) {
	s.specs = append(s.specs, &argSpec{
		short: short, long: long, help: help, required: required,
		kind: kindBool, boolDest: dest,
	})
}

// Int registers an integer option.
func (s *ArgSet) Int(dest *int, short, long, help string, required bool) {
	s.specs = append(s.specs, &argSpec{
		short: short, long: long, help: help, required: required,
		kind: kindInt, intDest: dest,
	})
}

// Float registers a floating-point option.
func (s *ArgSet) Float(dest *float64, short, long, help string, required bool) {
	s.specs = append(s.specs, &argSpec{
		short: short, long: long, help: help, required: required,
		kind: kindFloat, floatDest: dest,
	})
}

// String registers a string option.
func (s *ArgSet) String(dest *string, short, long, help string, required bool) {
	s.specs = append(s.specs, &argSpec{
		short: short, long: long, help: help, required: required,
		kind: kindString, stringDest: dest,
	})
}

// Parse walks the given argument vector (without the program name) and
// populates the registered destinations. Option values are taken from the
// `--name=value` form or from the following token. All failures (missing
// values, malformed values, and absent required options) are collected
// and returned joined; parsing always runs to completion.
func (s *ArgSet) Parse(args []string) error {
	var errs []error

	for i := 0; i < len(args); i++ {
		arg := args[i]
		for _, spec := range s.specs {
			if !spec.matches(arg) {
				continue
			}
			spec.seen = true

			if spec.kind == kindBool {
				if spec.boolDest != nil {
					*spec.boolDest = true
				}
				continue
			}

			value, ok := inlineValue(arg)
			if !ok {
				if i+1 >= len(args) {
					errs = append(errs, fmt.Errorf("%w: expected %s value after %s",
						ErrMissingValue, spec.kind.name(), arg))
					continue
				}
				i++
				value = args[i]
			}
			if err := spec.assign(value, arg); err != nil {
				errs = append(errs, err)
			}
		}
	}

	for _, spec := range s.specs {
		if spec.required && !spec.seen {
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingRequired, spec.displayName()))
		}
	}

	return errors.Join(errs...)
}

// Usage renders a help listing of all registered options.
func (s *ArgSet) Usage() string {
	var b strings.Builder
	b.WriteString("Options:\n")
	for _, spec := range s.specs {
		b.WriteString("  ")
		b.WriteString(spec.displayName())
		if spec.kind != kindBool {
			b.WriteString(" <")
			b.WriteString(spec.kind.name())
			b.WriteString(">")
		}
		if spec.help != "" {
			b.WriteString("\n        ")
			b.WriteString(spec.help)
		}
		if spec.required {
			b.WriteString(" (required)")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (k argKind) name() string {
	switch k {
	case kindBool:
		return "flag"
	case kindInt:
		return "integer"
	case kindFloat:
		return "float"
	default:
		return "string"
	}
}

// matches reports whether the token selects this option: `-x` with x in the
// short alias set, `--name` or `--name=value` with name among the long
// aliases, or the bare long alias itself.
func (spec *argSpec) matches(arg string) bool {
	if strings.HasPrefix(arg, "--") && spec.long != "" {
		name := arg[2:]
		for _, alias := range strings.Split(spec.long, ",") {
			if name == alias || strings.HasPrefix(name, alias+"=") {
				return true
			}
		}
		return false
	}
	if strings.HasPrefix(arg, "-") && len(arg) == 2 && spec.short != "" {
		return strings.ContainsRune(spec.short, rune(arg[1]))
	}
	if spec.long != "" {
		for _, alias := range strings.Split(spec.long, ",") {
			if arg == alias {
				return true
			}
		}
	}
	return false
}

func (spec *argSpec) assign(value, arg string) error {
	switch spec.kind {
	case kindInt:
		if spec.intDest == nil {
			return nil
		}
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %q is not an integer for %s", ErrMalformedValue, value, arg)
		}
		*spec.intDest = parsed
	case kindFloat:
		if spec.floatDest == nil {
			return nil
		}
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%w: %q is not a float for %s", ErrMalformedValue, value, arg)
		}
		*spec.floatDest = parsed
	case kindString:
		if spec.stringDest == nil {
			return nil
		}
		*spec.stringDest = value
	}
	return nil
}

func (spec *argSpec) displayName() string {
	var names []string
	for _, c := range spec.short {
		names = append(names, "-"+string(c))
	}
	for _, alias := range strings.Split(spec.long, ",") {
		if alias != "" {
			names = append(names, "--"+alias)
		}
	}
	return strings.Join(names, ", ")
}

func inlineValue(arg string) (string, bool) {
	if idx := strings.IndexByte(arg, '='); idx >= 0 {
		return arg[idx+1:], true
	}
	return "", false
}
