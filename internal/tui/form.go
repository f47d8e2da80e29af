package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/veloria/warranty-portal/internal/storage"
)

var brands = []string{"Arlo", "Eufy", "Ring", "Netatmo", "Other"}

const (
	fieldOrderNumber = iota
	fieldEmail
	fieldName
	fieldStreet
	fieldPostalCode
	fieldCity
	fieldPhoneNumber
	fieldProblem
	fieldCount
)

// Focus positions past the text inputs.
const (
	focusBrand = fieldCount + iota
	focusAcknowledge
	focusSubmit
)

var fieldLabels = [fieldCount]string{
	"Order number",
	"Email",
	"Name",
	"Street",
	"Postal code",
	"City",
	"Phone number",
	"Problem description",
}

type formModel struct {
	inputs       [fieldCount]textinput.Model
	focus        int
	brandIdx     int
	acknowledged bool
	errMsg       string
}

func newFormModel() formModel {
	var m formModel
	for i := range m.inputs {
		in := textinput.New()
		in.Placeholder = fieldLabels[i]
		in.CharLimit = 120
		in.Width = 40
		m.inputs[i] = in
	}
	m.inputs[fieldProblem].CharLimit = 500
	m.inputs[fieldProblem].Width = 60
	m.brandIdx = -1
	m.inputs[0].Focus()
	return m
}

func (m formModel) Update(msg tea.Msg) (formModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateFocusedInput(msg)
	}

	switch keyMsg.String() {
	case "tab", "down":
		m.setFocus(m.focus + 1)
		return m, nil
	case "shift+tab", "up":
		m.setFocus(m.focus - 1)
		return m, nil
	case "left":
		if m.focus == focusBrand && m.brandIdx > 0 {
			m.brandIdx--
			m.acknowledged = false
		}
		return m, nil
	case "right":
		if m.focus == focusBrand && m.brandIdx < len(brands)-1 {
			m.brandIdx++
			m.acknowledged = false
		}
		return m, nil
	case " ":
		if m.focus == focusAcknowledge {
			m.acknowledged = !m.acknowledged
			return m, nil
		}
	case "enter":
		if m.focus == focusBrand {
			if m.brandIdx < 0 {
				m.brandIdx = 0
				m.acknowledged = false
			}
			return m, nil
		}
		if m.focus == focusAcknowledge {
			m.acknowledged = !m.acknowledged
			return m, nil
		}
		if m.focus < fieldCount {
			m.setFocus(m.focus + 1)
			return m, nil
		}
	}

	return m.updateFocusedInput(msg)
}

func (m formModel) updateFocusedInput(msg tea.Msg) (formModel, tea.Cmd) {
	if m.focus >= fieldCount {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *formModel) setFocus(focus int) {
	if focus < 0 {
		focus = 0
	}
	if focus > focusSubmit {
		focus = focusSubmit
	}
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.focus = focus
	if focus < fieldCount {
		m.inputs[focus].Focus()
	}
}

func (m formModel) brand() string {
	if m.brandIdx < 0 {
		return ""
	}
	return brands[m.brandIdx]
}

// validate reports the first missing required field, or "".
func (m formModel) validate() string {
	for i := range m.inputs {
		if strings.TrimSpace(m.inputs[i].Value()) == "" {
			return fieldLabels[i] + " is required"
		}
	}
	if m.brand() == "" {
		return "Please select a brand"
	}
	return ""
}

func (m formModel) claim() storage.Claim {
	return storage.Claim{
		OrderNumber:              strings.TrimSpace(m.inputs[fieldOrderNumber].Value()),
		Email:                    strings.TrimSpace(m.inputs[fieldEmail].Value()),
		Name:                     strings.TrimSpace(m.inputs[fieldName].Value()),
		Street:                   strings.TrimSpace(m.inputs[fieldStreet].Value()),
		PostalCode:               strings.TrimSpace(m.inputs[fieldPostalCode].Value()),
		City:                     strings.TrimSpace(m.inputs[fieldCity].Value()),
		PhoneNumber:              strings.TrimSpace(m.inputs[fieldPhoneNumber].Value()),
		Brand:                    m.brand(),
		ProblemDescription:       strings.TrimSpace(m.inputs[fieldProblem].Value()),
		NotificationAcknowledged: m.acknowledged,
	}
}

func (m formModel) View(submitting bool) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Submit a warranty claim"))
	b.WriteString("\n")

	for i := range m.inputs {
		b.WriteString(labelStyle.Render(fieldLabels[i]) + m.inputs[i].View() + "\n")
	}

	b.WriteString(labelStyle.Render("Brand") + m.brandView() + "\n")
	b.WriteString(labelStyle.Render("") + m.acknowledgeView() + "\n\n")

	submit := "[ Submit claim ]"
	switch {
	case submitting:
		submit = "[ Submitting... ]"
	case m.focus == focusSubmit && m.acknowledged:
		submit = focusedStyle.Render(submit)
	case m.focus == focusSubmit:
		submit = helpStyle.Render(submit + " (acknowledge the disclosure first)")
	default:
		submit = helpStyle.Render(submit)
	}
	b.WriteString(submit + "\n")

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg) + "\n")
	}
	b.WriteString(helpStyle.Render("tab/arrows: move • left/right: pick brand • space: acknowledge • enter on submit: send • esc: quit"))
	return b.String()
}

func (m formModel) brandView() string {
	var parts []string
	for i, brand := range brands {
		label := "  " + brand + "  "
		if i == m.brandIdx {
			label = "[" + brand + "]"
		}
		if m.focus == focusBrand && i == m.brandIdx {
			label = focusedStyle.Render(label)
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, " ")
}

func (m formModel) acknowledgeView() string {
	box := "[ ]"
	if m.acknowledged {
		box = "[x]"
	}
	brand := m.brand()
	if brand == "" {
		brand = "the manufacturer"
	}
	line := box + " I understand that " + brand + " will be notified about this claim and may contact me directly."
	if m.focus == focusAcknowledge {
		return focusedStyle.Render(line)
	}
	return line
}
