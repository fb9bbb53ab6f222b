package session

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hiraku/calq/internal/calc"
)

// Styles groups the lipgloss styles used by the session output.
type Styles struct {
	Banner    lipgloss.Style
	Prompt    lipgloss.Style
	Result    lipgloss.Style
	Error     lipgloss.Style
	Separator lipgloss.Style
	HelpTitle lipgloss.Style
	HelpOp    lipgloss.Style
}

// DefaultStyles returns the styled terminal palette.
func DefaultStyles() Styles {
	return Styles{
		Banner: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")),
		Prompt:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Result:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Separator: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		HelpTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")),
		HelpOp: lipgloss.NewStyle().Bold(true),
	}
}

// PlainStyles returns styles that render text unmodified, for non-terminal
// output and for no_color configurations.
func PlainStyles() Styles {
	return Styles{
		Banner:    lipgloss.NewStyle(),
		Prompt:    lipgloss.NewStyle(),
		Result:    lipgloss.NewStyle(),
		Error:     lipgloss.NewStyle(),
		Separator: lipgloss.NewStyle(),
		HelpTitle: lipgloss.NewStyle(),
		HelpOp:    lipgloss.NewStyle(),
	}
}

// HelpTable renders the operation guide shown for the "help" token.
func HelpTable(styles Styles) string {
	var b strings.Builder
	b.WriteString(styles.HelpTitle.Render("Available operations"))
	b.WriteString("\n")
	for _, op := range calc.Ops() {
		fmt.Fprintf(&b, "  %s  %s\n",
			styles.HelpOp.Render(fmt.Sprintf("%-6s", op.String())),
			op.Description())
	}
	b.WriteString("  ")
	b.WriteString(styles.HelpOp.Render(fmt.Sprintf("%-6s", "help")))
	b.WriteString("  show this table")
	return b.String()
}

// FormatCalculation renders the result line for a completed calculation.
// Binary arithmetic renders infix; pow and log render in call form with the
// base first; unary operations render in call form.
func FormatCalculation(op calc.Op, operands []float64, result float64) string {
	res := calc.Format(result)
	switch {
	case op.Arity() == 1:
		return fmt.Sprintf("%s(%s) = %s", op, calc.Format(operands[0]), res)
	case op == calc.OpPow || op == calc.OpLog:
		return fmt.Sprintf("%s(%s, %s) = %s", op, calc.Format(operands[0]), calc.Format(operands[1]), res)
	default:
		return fmt.Sprintf("%s %s %s = %s", calc.Format(operands[0]), op, calc.Format(operands[1]), res)
	}
}
