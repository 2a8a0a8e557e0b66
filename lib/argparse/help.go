// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package argparse

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

const (
	// helpOuterMargin is the left margin of every help-text line.
	helpOuterMargin = 2

	// helpIndent is the extra indentation of content under a section
	// heading.
	helpIndent = 2

	// helpUsageMaxWidth is the column the usage synopsis wraps at.
	helpUsageMaxWidth = 75

	// helpOptionsMinSeparation is the minimum gap between the longest
	// option fragment and the description column.
	helpOptionsMinSeparation = 10
)

// headingStyle renders help section headings in bold. The renderer
// pins an ANSI profile: whether styling applies at all is the parser's
// interactivity decision, not output auto-detection.
var headingStyle = func() lipgloss.Style {
	r := lipgloss.NewRenderer(os.Stdout)
	r.SetColorProfile(termenv.ANSI)
	return r.NewStyle().Bold(true)
}()

// Help renders the full help text: header, usage synopsis, optional
// synopsis paragraph, the aligned options table, and an optional
// example block. Section headings are bold when stdout is an
// interactive terminal.
func (p *Parser) Help() string {
	p.ensureDefaults()

	outerMargin := strings.Repeat(" ", helpOuterMargin)
	indent := strings.Repeat(" ", helpIndent)
	heading := func(text string) string {
		if p.interactive {
			return headingStyle.Render(text)
		}
		return text
	}

	var b strings.Builder

	// Header
	name := p.programName
	if p.displayName != "" {
		name = p.displayName
	}
	b.WriteString(outerMargin + heading(name))
	if p.description != "" {
		b.WriteString(" - " + p.description)
	}
	b.WriteString("\n\n")

	// Usage
	b.WriteString(outerMargin + heading("Usage: ") + "\n")
	usagePrefix := outerMargin + indent + p.programName + " "
	b.WriteString(usagePrefix)
	b.WriteString(wrapUsage(p.usageLine(),
		helpUsageMaxWidth-len(usagePrefix), len(usagePrefix), false))
	b.WriteString("\n")

	if p.synopsis != "" {
		b.WriteString(outerMargin + heading("Synopsis: ") + "\n")
		b.WriteString(indentLines(p.synopsis, helpOuterMargin+helpIndent))
		b.WriteString("\n\n")
	}

	// Options table: descriptions left-aligned past the widest fragment.
	b.WriteString(outerMargin + heading("Options: ") + "\n")
	fragments := make([]string, len(p.order))
	maxWidth := 0
	for i, param := range p.order {
		fragments[i] = param.Help()
		if width := ansi.StringWidth(fragments[i]); width > maxWidth {
			maxWidth = width
		}
	}
	offset := maxWidth + helpOptionsMinSeparation
	for i, param := range p.order {
		padding := strings.Repeat(" ", offset-ansi.StringWidth(fragments[i]))
		b.WriteString(outerMargin + indent + fragments[i] + padding + param.Description() + "\n")
	}
	b.WriteString("\n")

	if p.example != "" {
		b.WriteString(outerMargin + heading("Example: ") + "\n")
		b.WriteString(indentLines(p.example, helpOuterMargin+helpIndent))
		b.WriteString("\n")
	}

	return b.String()
}

// usageLine builds the unwrapped synopsis from the registration order.
// The first member of a mutex group renders the whole group as its
// alternatives joined by " | ", wrapped in "[ ]" if the group is
// optional or "( )" if required, and the remaining members are
// skipped. A lone required parameter renders bare, a lone optional one
// in "[ ]". The positional placeholder is appended last.
func (p *Parser) usageLine() string {
	var b strings.Builder
	rendered := make(map[*group]bool)

	for _, param := range p.order {
		if g := p.groups[param]; g != nil && g.mutex {
			if rendered[g] {
				continue
			}
			rendered[g] = true
			left, right := "[", "]"
			if g.required {
				left, right = "(", ")"
			}
			b.WriteString(left)
			for j, member := range g.members {
				if j > 0 {
					b.WriteString(" | ")
				}
				b.WriteString(member.Usage())
			}
			b.WriteString(right)
		} else if param.Required() {
			b.WriteString(param.Usage())
		} else {
			b.WriteString("[" + param.Usage() + "]")
		}
		b.WriteString(" ")
	}

	b.WriteString(p.posMetaVar)
	return b.String()
}

// wrapUsage wraps the synopsis at the given width without splitting
// bracketed alternatives. Nesting depth is tracked across "([<" and
// ")]>"; only a space at depth zero is an eligible break point. When a
// line reaches the width, the break goes to the last eligible space if
// that space falls in the second half of the line, otherwise the line
// is cut at the current position (even mid-token) to avoid
// pathologically long lines. Continuation lines are indented by
// indent; the final text ends with a newline.
func wrapUsage(text string, width, indent int, indentFirstLine bool) string {
	var b strings.Builder
	indentStr := strings.Repeat(" ", indent)

	if indentFirstLine {
		b.WriteString(indentStr)
	}

	depth := 0
	lineStart := 0
	lastSpace := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case ' ':
			if depth == 0 {
				lastSpace = i
			}
		case '(', '[', '<':
			depth++
		case ')', ']', '>':
			depth--
		}
		if i-lineStart >= width {
			if lastSpace >= lineStart+width/2 {
				b.WriteString(text[lineStart:lastSpace])
				lineStart = lastSpace + 1
			} else {
				b.WriteString(text[lineStart:i])
				lineStart = i
			}
			b.WriteString("\n" + indentStr)
		}
	}
	b.WriteString(text[lineStart:])
	b.WriteString("\n")

	return b.String()
}

// indentLines prefixes every line of text with indent spaces.
func indentLines(text string, indent int) string {
	prefix := strings.Repeat(" ", indent)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
