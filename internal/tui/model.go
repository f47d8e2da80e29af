package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/veloria/warranty-portal/internal/storage"
)

const genericErrMsg = "Something went wrong. Please try again."

type state int

const (
	stateFAQ state = iota
	stateForm
	stateSubmitting
	stateStatus
)

type submitDoneMsg struct {
	claim *storage.Claim
	err   error
}

type caseDoneMsg struct {
	found *Case
	err   error
}

// Model is the root intake program: FAQ gate, claim form, then status view.
type Model struct {
	client *Client
	state  state

	faq    faqModel
	form   formModel
	status statusModel
	caseID string
}

func NewModel(client *Client) Model {
	return Model{
		client: client,
		state:  stateFAQ,
		faq:    newFAQModel(),
		form:   newFormModel(),
		status: newStatusModel(),
	}
}

// NewStatusModel opens the status view directly. With a non-empty id the case
// is fetched immediately, otherwise the manual lookup form is shown.
func NewStatusModel(client *Client, caseID string) Model {
	m := NewModel(client)
	m.state = stateStatus
	m.caseID = caseID
	if caseID != "" {
		m.status.loading = true
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.state == stateStatus && m.caseID != "" {
		return m.fetchByID(m.caseID)
	}
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "q":
			if m.state == stateFAQ {
				return m, tea.Quit
			}
		}
	}

	switch m.state {
	case stateFAQ:
		if m.faq.Update(msg) {
			m.state = stateForm
		}
		return m, nil

	case stateForm:
		return m.updateForm(msg)

	case stateSubmitting:
		if done, ok := msg.(submitDoneMsg); ok {
			if done.err != nil {
				m.state = stateForm
				m.form.errMsg = errorMessage(done.err)
				return m, nil
			}
			m.state = stateStatus
			m.caseID = done.claim.ID
			m.status.loading = true
			return m, m.fetchByID(done.claim.ID)
		}
		return m, nil

	case stateStatus:
		return m.updateStatus(msg)
	}

	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "enter" && m.form.focus == focusSubmit {
		if errMsg := m.form.validate(); errMsg != "" {
			m.form.errMsg = errMsg
			return m, nil
		}
		if !m.form.acknowledged {
			// The gate: nothing leaves the terminal until the disclosure
			// is acknowledged.
			m.form.errMsg = "Please acknowledge the notification disclosure"
			return m, nil
		}
		m.form.errMsg = ""
		m.state = stateSubmitting
		return m, m.submit(m.form.claim())
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m Model) updateStatus(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case caseDoneMsg:
		m.status.loading = false
		if msg.err != nil {
			m.status.found = nil
			m.status.errMsg = errorMessage(msg.err)
			return m, nil
		}
		m.status.errMsg = ""
		m.status.found = msg.found
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "n" && m.status.found != nil {
			m.caseID = ""
			m.status = newStatusModel()
			return m, nil
		}
	}

	lookup, cmd := m.status.Update(msg)
	if lookup {
		m.status.loading = true
		m.status.errMsg = ""
		return m, m.fetchByQuery(m.status.orderNumber(), m.status.email())
	}
	return m, cmd
}

func (m Model) View() string {
	switch m.state {
	case stateFAQ:
		return m.faq.View()
	case stateForm:
		return m.form.View(false)
	case stateSubmitting:
		return m.form.View(true)
	case stateStatus:
		return m.status.View()
	}
	return ""
}

func (m Model) submit(claim storage.Claim) tea.Cmd {
	return func() tea.Msg {
		created, err := m.client.SubmitClaim(claim)
		return submitDoneMsg{claim: created, err: err}
	}
}

func (m Model) fetchByID(id string) tea.Cmd {
	return func() tea.Msg {
		found, err := m.client.FindCaseByID(id)
		return caseDoneMsg{found: found, err: err}
	}
}

func (m Model) fetchByQuery(orderNumber, email string) tea.Cmd {
	return func() tea.Msg {
		found, err := m.client.FindCase(orderNumber, email)
		return caseDoneMsg{found: found, err: err}
	}
}

func errorMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return genericErrMsg
}
