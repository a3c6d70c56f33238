package preview

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"examgen/internal/exam"
)

// renderQuestion renders one question page.
func renderQuestion(q exam.Question, number, total int, opts Options) string {
	var b strings.Builder
	header := fmt.Sprintf("Question %d of %d (id %d)", number, total, q.ID)
	b.WriteString(stylize(header, opts.NoColor, lipgloss.Color("33")))
	b.WriteString("\n\n")
	b.WriteString(q.Question)
	b.WriteString("\n")
	if q.Notes != "" {
		b.WriteString(stylize(q.Notes, opts.NoColor, lipgloss.Color("242")))
		b.WriteString("\n")
	}
	if q.Format == exam.FormatOpen {
		b.WriteString("\n" + stylize("(open response)", opts.NoColor, lipgloss.Color("240")) + "\n")
		return b.String()
	}
	correct := correctSet(q)
	b.WriteString("\n")
	for i, answer := range q.Answers {
		line := fmt.Sprintf("  %s. %s", answerLetter(i), answer)
		if opts.ShowKey && correct[i] {
			line = stylize(line+"  ✓", opts.NoColor, lipgloss.Color("35"))
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

// renderHelp renders the key hints line.
func renderHelp(noColor bool) string {
	return stylize("h/l ←/→ page • q: quit", noColor, lipgloss.Color("244"))
}

// WritePlain writes the whole exam as plain text, one question after
// another. The preview command uses it when stdout is not a terminal.
func WritePlain(w io.Writer, examModel exam.Model, opts Options) {
	if title := examModel.Metadata.Text("title"); title != "" {
		fmt.Fprintln(w, title)
		fmt.Fprintln(w)
	}
	for i, q := range examModel.Questions {
		fmt.Fprintf(w, "%d. %s\n", i+1, q.Question)
		if q.Notes != "" {
			fmt.Fprintf(w, "   %s\n", q.Notes)
		}
		if q.Format == exam.FormatOpen {
			fmt.Fprintln(w, "   (open response)")
		} else {
			correct := correctSet(q)
			for j, answer := range q.Answers {
				marker := " "
				if opts.ShowKey && correct[j] {
					marker = "*"
				}
				fmt.Fprintf(w, "  %s%s. %s\n", marker, answerLetter(j), answer)
			}
		}
		fmt.Fprintln(w)
	}
}

func correctSet(q exam.Question) map[int]bool {
	correct := make(map[int]bool, len(q.Correct))
	for _, index := range q.Correct {
		correct[index] = true
	}
	return correct
}

// answerLetter labels answers A, B, ... Z, AA, AB, ...
func answerLetter(index int) string {
	if index < 26 {
		return string(rune('A' + index))
	}
	return answerLetter(index/26-1) + string(rune('A'+index%26))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
