package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type faqEntry struct {
	question string
	answer   string
}

var faqEntries = []faqEntry{
	{
		question: "How long does a warranty claim take?",
		answer:   "Most claims are reviewed within 5 business days. You will be notified by email whenever the status of your case changes.",
	},
	{
		question: "What do I need before submitting?",
		answer:   "Your order number, the email address used for the purchase, and a short description of the problem.",
	},
	{
		question: "Can I submit a return instead of a claim?",
		answer:   "Returns for unwanted items are handled separately. This form is for defective products covered by warranty.",
	},
	{
		question: "Will the manufacturer be contacted?",
		answer:   "Depending on the brand you select, the claim details may be forwarded to the manufacturer to process the repair or replacement.",
	},
}

// faqModel is the gate in front of the intake form: the form is not reachable
// until the user acknowledges having seen the FAQ.
type faqModel struct {
	cursor int
	open   map[int]bool
}

func newFAQModel() faqModel {
	return faqModel{open: make(map[int]bool)}
}

// Update returns true once the user acknowledges the gate.
func (m *faqModel) Update(msg tea.Msg) bool {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return false
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(faqEntries)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.open[m.cursor] = !m.open[m.cursor]
	case "a":
		return true
	}
	return false
}

func (m faqModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Before you start: frequently asked questions"))
	b.WriteString("\n")

	for i, entry := range faqEntries {
		marker := "  "
		if i == m.cursor {
			marker = focusedStyle.Render("> ")
		}
		b.WriteString(marker + entry.question + "\n")
		if m.open[i] {
			b.WriteString(faqOpenStyle.Render(entry.answer) + "\n")
		}
	}

	b.WriteString(helpStyle.Render("up/down: browse • enter: expand • a: acknowledge and continue • q: quit"))
	return b.String()
}
