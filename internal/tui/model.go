// Package tui renders a live dashboard over a running instance's HTTP API.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vigil-sh/vigil/internal/api"
)

// refreshInterval is how often the dashboard polls the API
const refreshInterval = time.Second

// Client fetches monitor state from a running vigil instance
type Client interface {
	GetStatus() (api.StatusResponse, error)
	GetSites() (api.SiteListResponse, error)
	GetEvents(limit int) (api.EventsResponse, error)
}

// Model is the bubbletea model for the dashboard
type Model struct {
	client Client

	table  table.Model
	status api.StatusResponse
	events []api.EventResponse

	// connectionError is the last API error, nil while connected
	connectionError error

	width  int
	height int
}

// NewModel creates a dashboard model polling client
func NewModel(client Client) Model {
	columns := []table.Column{
		{Title: "URL", Width: 40},
		{Title: "STATUS", Width: 14},
		{Title: "FAILURES", Width: 10},
		{Title: "LAST CHECKED", Width: 20},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
	)

	return Model{
		client: client,
		table:  t,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetch(), tickCmd())
}

// tickMsg triggers a periodic refresh
type tickMsg time.Time

// refreshMsg carries one polled snapshot of the API state
type refreshMsg struct {
	status api.StatusResponse
	sites  api.SiteListResponse
	events api.EventsResponse
}

// errMsg is sent when an API request fails
type errMsg struct {
	err error
}

func tickCmd() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// fetch polls the API for status, sites, and recent events
func (m Model) fetch() tea.Cmd {
	return func() tea.Msg {
		status, err := m.client.GetStatus()
		if err != nil {
			return errMsg{err}
		}
		sites, err := m.client.GetSites()
		if err != nil {
			return errMsg{err}
		}
		events, err := m.client.GetEvents(eventPaneSize)
		if err != nil {
			return errMsg{err}
		}
		return refreshMsg{status: status, sites: sites, events: events}
	}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			return m, m.fetch()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(m.tableHeight())

	case tickMsg:
		return m, tea.Batch(m.fetch(), tickCmd())

	case refreshMsg:
		m.connectionError = nil
		m.status = msg.status
		m.events = msg.events.Events
		m.table.SetRows(siteRows(msg.sites))

	case errMsg:
		m.connectionError = msg.err
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// siteRows converts a site list response to table rows
func siteRows(sites api.SiteListResponse) []table.Row {
	rows := make([]table.Row, len(sites.Sites))
	for i, s := range sites.Sites {
		rows[i] = table.Row{
			s.URL,
			s.Status,
			fmt.Sprintf("%d/%d", s.Failures, s.Threshold),
			formatLastChecked(s.LastChecked),
		}
	}
	return rows
}

func formatLastChecked(rfc3339 string) string {
	if rfc3339 == "" {
		return "never"
	}
	ts, err := time.Parse(time.RFC3339Nano, rfc3339)
	if err != nil {
		return "never"
	}
	return ts.Format("15:04:05")
}

// Run starts the dashboard and blocks until quit
func Run(client Client) error {
	p := tea.NewProgram(NewModel(client), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
