// Package format renders core ASTs: as canonical SQL text, as an indented
// tree for humans, and as a generic map for JSON and YAML encoders.
package format

import (
	"bytes"
	"strings"

	"github.com/leapstack-labs/silisk/pkg/token"
)

const indentSize = 2

// Printer handles SQL formatting with proper indentation and style.
// In compact mode every statement is one line; in pretty mode each clause
// starts a line and list items are indented beneath it.
type Printer struct {
	output      *bytes.Buffer
	depth       int
	atLineStart bool
	pretty      bool
}

func newPrinter(pretty bool) *Printer {
	return &Printer{
		output:      &bytes.Buffer{},
		atLineStart: true,
		pretty:      pretty,
	}
}

// String returns the formatted output. Pretty output ends with a newline.
func (p *Printer) String() string {
	if p.pretty {
		return strings.TrimRight(p.output.String(), "\n") + "\n"
	}
	return p.output.String()
}

func (p *Printer) write(s string) {
	if p.atLineStart && len(s) > 0 && s[0] != '\n' {
		p.writeIndent()
	}
	p.output.WriteString(s)
	p.atLineStart = false
}

func (p *Printer) writeln() {
	p.output.WriteByte('\n')
	p.atLineStart = true
}

func (p *Printer) writeIndent() {
	for i := 0; i < p.depth*indentSize; i++ {
		p.output.WriteByte(' ')
	}
	p.atLineStart = false
}

func (p *Printer) indent() {
	p.depth++
}

func (p *Printer) dedent() {
	if p.depth > 0 {
		p.depth--
	}
}

func (p *Printer) space() {
	p.output.WriteByte(' ')
}

// kw prints keywords from their token types, separated by spaces.
func (p *Printer) kw(tokens ...token.TokenType) {
	for i, t := range tokens {
		if i > 0 {
			p.space()
		}
		p.write(t.String())
	}
}

// clause starts a new clause: a line break in pretty mode, a space otherwise.
func (p *Printer) clause(tokens ...token.TokenType) {
	if p.pretty {
		p.writeln()
	} else {
		p.space()
	}
	p.kw(tokens...)
}

// block prints the item list that follows a clause keyword.
func (p *Printer) block(count int, format func(i int)) {
	if !p.pretty {
		p.space()
		p.formatList(count, format, ", ", false)
		return
	}
	p.writeln()
	p.indent()
	p.formatList(count, format, ",", true)
	p.dedent()
}

// formatList prints a list of items with separators.
// count is the number of items, format is called for each index,
// sep is the separator string, multiline adds newlines after separators.
func (p *Printer) formatList(count int, format func(i int), sep string, multiline bool) {
	for i := 0; i < count; i++ {
		format(i)
		if i < count-1 {
			p.write(sep)
			if multiline {
				p.writeln()
			}
		}
	}
}
