// Package output renders parse results and diagnostics for the CLI.
//
// A Renderer owns the stdout and stderr writers of a command. Statements go
// to stdout in the configured Format; diagnostics and status lines go to
// stderr, styled with lipgloss when color is enabled.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Format selects how statements are written.
type Format string

// Output formats.
const (
	FormatTree Format = "tree"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatSQL  Format = "sql"
)

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatTree, FormatJSON, FormatYAML, FormatSQL}
}

// ParseFormat validates s as a Format, ignoring case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (want tree, json, yaml or sql)", s)
}

// Color modes accepted by NewRenderer.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Renderer writes command output.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	format Format
	color  bool
	styles styles
}

type styles struct {
	err   lipgloss.Style
	caret lipgloss.Style
	ok    lipgloss.Style
	dim   lipgloss.Style
}

// NewRenderer creates a renderer, detecting whether errOut is a terminal.
func NewRenderer(out, errOut io.Writer, format Format, colorMode string) *Renderer {
	return NewRendererWithTTY(out, errOut, IsTerminal(errOut), format, colorMode)
}

// NewRendererWithTTY creates a renderer with an explicit TTY state.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, format Format, colorMode string) *Renderer {
	if format == "" {
		format = FormatTree
	}
	r := &Renderer{
		out:    out,
		errOut: errOut,
		format: format,
		color:  colorEnabled(errOut, colorMode, isTTY),
	}

	lr := lipgloss.NewRenderer(errOut)
	if r.color {
		lr.SetColorProfile(termenv.ANSI256)
	} else {
		lr.SetColorProfile(termenv.Ascii)
	}
	r.styles = styles{
		err:   lr.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		caret: lr.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		ok:    lr.NewStyle().Foreground(lipgloss.Color("10")),
		dim:   lr.NewStyle().Faint(true),
	}
	return r
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// colorEnabled resolves a color mode. Auto honours NO_COLOR and the
// terminal's color profile.
func colorEnabled(w io.Writer, mode string, isTTY bool) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if !isTTY || termenv.EnvNoColor() {
		return false
	}
	return termenv.NewOutput(w).EnvColorProfile() != termenv.Ascii
}

// Format returns the current output format.
func (r *Renderer) Format() Format { return r.format }

// SetFormat changes the output format.
func (r *Renderer) SetFormat(s string) error {
	f, err := ParseFormat(s)
	if err != nil {
		return err
	}
	r.format = f
	return nil
}

// Color reports whether styled output is enabled.
func (r *Renderer) Color() bool { return r.color }

// Out returns the stdout writer.
func (r *Renderer) Out() io.Writer { return r.out }

// ErrOut returns the stderr writer.
func (r *Renderer) ErrOut() io.Writer { return r.errOut }

// Println writes a plain line to stdout.
func (r *Renderer) Println(a ...any) {
	_, _ = fmt.Fprintln(r.out, a...)
}

// Printf writes formatted text to stdout.
func (r *Renderer) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.out, format, a...)
}
