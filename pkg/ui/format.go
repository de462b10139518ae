package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects how command results are written
type Format int

const (
	// FormatAuto picks FormatTerminal on a color terminal and FormatText
	// otherwise
	FormatAuto Format = iota
	// FormatTerminal styles card lists and card details and draws the pack
	// table
	FormatTerminal
	// FormatText writes one card or pack per line, for grep and shell loops
	FormatText
	// FormatJSON writes results and coded errors as indented JSON
	FormatJSON
)

// formatNames holds the canonical name of each format, in flag help order
var formatNames = []struct {
	format  Format
	name    string
	aliases []string
}{
	{FormatAuto, "auto", []string{""}},
	{FormatTerminal, "term", []string{"terminal"}},
	{FormatText, "text", []string{"plain"}},
	{FormatJSON, "json", nil},
}

// String returns the canonical name accepted by --format
func (f Format) String() string {
	for _, entry := range formatNames {
		if entry.format == f {
			return entry.name
		}
	}
	return "unknown"
}

// Set parses s into f, so a Format can back a command-line flag
func (f *Format) Set(s string) error {
	parsed, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Type names the flag value type in usage output
func (f *Format) Type() string {
	return "format"
}

// FormatNames lists the accepted format names, for help and completion
func FormatNames() []string {
	names := make([]string, 0, len(formatNames))
	for _, entry := range formatNames {
		names = append(names, entry.name)
	}
	return names
}

// ParseFormat parses a --format value, case-insensitively. Aliases such as
// "terminal" and "plain" are accepted.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(s)
	for _, entry := range formatNames {
		if s == entry.name {
			return entry.format, nil
		}
		for _, alias := range entry.aliases {
			if s == alias {
				return entry.format, nil
			}
		}
	}
	return FormatAuto, fmt.Errorf("unknown format: %s (want one of %s)", s, strings.Join(FormatNames(), ", "))
}

// DetectFormat resolves FormatAuto for output: NO_COLOR, a pipe or a
// terminal without color support get plain text.
func DetectFormat(output *os.File) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return FormatText
	}

	if termenv.NewOutput(output).ColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
