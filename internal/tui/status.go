package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var statusLabels = map[string]string{
	"Pending":  "Received, pending review",
	"InReview": "In review",
	"Resolved": "Resolved",
	"Rejected": "Rejected",
}

// statusModel renders a single case, fetched either by id (right after a
// submission) or by manual orderNumber + email lookup.
type statusModel struct {
	orderInput textinput.Model
	emailInput textinput.Model
	focus      int
	found      *Case
	errMsg     string
	loading    bool
}

func newStatusModel() statusModel {
	order := textinput.New()
	order.Placeholder = "Order number"
	order.CharLimit = 60
	order.Width = 40
	order.Focus()

	email := textinput.New()
	email.Placeholder = "Email"
	email.CharLimit = 120
	email.Width = 40

	return statusModel{orderInput: order, emailInput: email}
}

// Update returns true when the user requested a lookup with both fields set.
func (m *statusModel) Update(msg tea.Msg) (lookup bool, cmd tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "tab", "down", "up", "shift+tab":
			m.toggleFocus()
			return false, nil
		case "enter":
			if m.orderNumber() != "" && m.email() != "" {
				return true, nil
			}
			m.errMsg = "Enter both order number and email"
			return false, nil
		}
	}

	if m.focus == 0 {
		m.orderInput, cmd = m.orderInput.Update(msg)
	} else {
		m.emailInput, cmd = m.emailInput.Update(msg)
	}
	return false, cmd
}

func (m *statusModel) toggleFocus() {
	if m.focus == 0 {
		m.focus = 1
		m.orderInput.Blur()
		m.emailInput.Focus()
	} else {
		m.focus = 0
		m.emailInput.Blur()
		m.orderInput.Focus()
	}
}

func (m statusModel) orderNumber() string { return strings.TrimSpace(m.orderInput.Value()) }
func (m statusModel) email() string       { return strings.TrimSpace(m.emailInput.Value()) }

func (m statusModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Case status"))
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString("Looking up your case...\n")
	case m.found != nil:
		b.WriteString(boxStyle.Render(renderCase(m.found)) + "\n")
	default:
		b.WriteString(labelStyle.Render("Order number") + m.orderInput.View() + "\n")
		b.WriteString(labelStyle.Render("Email") + m.emailInput.View() + "\n")
	}

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg) + "\n")
	}
	if m.found != nil {
		b.WriteString(helpStyle.Render("n: new lookup • esc: quit"))
	} else {
		b.WriteString(helpStyle.Render("tab: switch field • enter: look up • esc: quit"))
	}
	return b.String()
}

func renderCase(c *Case) string {
	status := statusLabels[c.Status]
	if status == "" {
		status = c.Status
	}

	var b strings.Builder
	b.WriteString("Order number:  " + c.OrderNumber + "\n")
	b.WriteString("Name:          " + c.Name + "\n")
	b.WriteString("Status:        " + status + "\n")
	b.WriteString("Submitted:     " + c.SubmissionDate.Local().Format("2 Jan 2006 15:04"))
	return b.String()
}
