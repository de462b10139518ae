// Package ui renders registry results (card lists, counts, card details,
// pack lists) and errors as styled terminal output, plain text or JSON.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/hashdo/pkg/ui/json"
	"github.com/arthur-debert/hashdo/pkg/ui/terminal"
	"github.com/arthur-debert/hashdo/pkg/ui/text"
)

// Renderer is the common interface for all output renderers.
// It provides methods for rendering different types of data and messages.
type Renderer interface {
	// RenderResult renders a result from pkg/types (counts, card and pack
	// lists, a card, version info); other values are printed as-is
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// It automatically detects terminal capabilities when format is Auto.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		// Detect terminal capabilities and choose appropriate format
		if file, ok := output.(*os.File); ok {
			detectedFormat := DetectFormat(file)
			return NewRenderer(detectedFormat, output)
		}
		// If not a file, default to terminal format
		return NewRenderer(FormatTerminal, output)
	case FormatTerminal:
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return json.New(output)
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}

// Render renders a single result in the given format
func Render(format Format, output io.Writer, result interface{}) error {
	renderer, err := NewRenderer(format, output)
	if err != nil {
		return err
	}
	return renderer.RenderResult(result)
}
