package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/lvbalance/core"
)

// Palette keyed by meaning: positive ties, negative ties and chrome.
var (
	tonePositive = lipgloss.Color("42")
	toneNegative = lipgloss.Color("203")
	toneAccent   = lipgloss.Color("39")
	toneCaution  = lipgloss.Color("214")
	toneLabel    = lipgloss.Color("244")
	toneFaint    = lipgloss.Color("238")
	toneText     = lipgloss.Color("252")
)

var (
	graphName  = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(toneAccent)
	fieldLabel = lipgloss.NewStyle().Foreground(toneLabel)
	fieldText  = lipgloss.NewStyle().Foreground(toneText)
	faint      = lipgloss.NewStyle().Foreground(toneFaint)
	caution    = lipgloss.NewStyle().Foreground(toneCaution)
	friendly   = lipgloss.NewStyle().Foreground(tonePositive)
	hostile    = lipgloss.NewStyle().Foreground(toneNegative)
)

// Verdict marks.
const (
	markBalanced   = "⚖"
	markUnbalanced = "≠"
	markCaution    = "?"
	markSeparator  = " | "
)

// printer writes one command's report to w.
type printer struct {
	w io.Writer
}

func (p printer) line(s string) { fmt.Fprintln(p.w, s) }

// graph opens the section for one graph.
func (p printer) graph(name string) { p.line(graphName.Render(name)) }

// verdict closes a section: "⚖ <msg>" when balanced, "≠ <msg>" otherwise.
func (p printer) verdict(balanced bool, format string, args ...any) {
	mark := hostile.Render(markUnbalanced)
	if balanced {
		mark = friendly.Render(markBalanced)
	}
	p.line(mark + " " + fmt.Sprintf(format, args...))
}

// caveat flags a result that needs a second look.
func (p printer) caveat(format string, args ...any) {
	p.line(caution.Render(markCaution + " " + fmt.Sprintf(format, args...)))
}

// field prints an indented "label value" row with the label in a fixed column.
func (p printer) field(label, value string) {
	p.line("  " + fieldLabel.Render(fmt.Sprintf("%-12s", label)) + " " + fieldText.Render(value))
}

// aside prints a dimmed indented remark.
func (p printer) aside(format string, args ...any) {
	p.line("  " + faint.Render(fmt.Sprintf(format, args...)))
}

// counts prints size facts separated by bars, e.g. "4 nodes | 6 edges".
func (p printer) counts(parts ...string) {
	p.line("  " + faint.Render(strings.Join(parts, markSeparator)))
}

// balanceWord renders balanced/unbalanced in the tie colors.
func balanceWord(balanced bool) string {
	if balanced {
		return friendly.Render("balanced")
	}
	return hostile.Render("unbalanced")
}

// signs renders a polarity sequence, negative ties highlighted.
func signs(ps []core.Polarity) string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = sign(p)
	}
	return strings.Join(out, " ")
}

func sign(p core.Polarity) string {
	if p == core.Negative {
		return hostile.Render(p.String())
	}
	return friendly.Render(p.String())
}
