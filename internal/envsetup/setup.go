// envsetup provides a lightweight .env configuration wizard.
// It runs automatically on first server startup when no .env file exists,
// collecting the database location, admin API key, and retention policy.
package envsetup

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type step int

const (
	stepWelcome step = iota
	stepDatabase
	stepAPIKey
	stepRetention
	stepConfirm
)

const defaultDatabaseURL = "./romanurdu.db"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type model struct {
	step          step
	textInput     textinput.Model
	databaseURL   string
	apiKey        string
	retentionDays int
	err           error
	done          bool
	width         int
	height        int
}

func New() model {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60

	return model{
		step:      stepWelcome,
		textInput: ti,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.handleEnter()
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m model) handleEnter() (tea.Model, tea.Cmd) {
	m.err = nil
	value := strings.TrimSpace(m.textInput.Value())

	switch m.step {
	case stepWelcome:
		m.step = stepDatabase
		m.textInput.SetValue("")

	case stepDatabase:
		if value == "" {
			value = defaultDatabaseURL
		}
		m.databaseURL = value
		m.step = stepAPIKey
		m.textInput.SetValue("")
		m.textInput.EchoMode = textinput.EchoPassword

	case stepAPIKey:
		if value == "" {
			m.err = fmt.Errorf("admin API key is required")
			return m, nil
		}
		m.apiKey = value
		m.step = stepRetention
		m.textInput.SetValue("")
		m.textInput.EchoMode = textinput.EchoNormal

	case stepRetention:
		days := 30
		if value != "" {
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				m.err = fmt.Errorf("retention must be a non-negative number of days")
				return m, nil
			}
			days = n
		}
		m.retentionDays = days
		m.step = stepConfirm
		m.textInput.SetValue("")

	case stepConfirm:
		choice := strings.ToLower(value)
		if choice == "y" || choice == "yes" || choice == "" {
			if err := m.writeEnvFile(); err != nil {
				m.err = err
				return m, nil
			}
			m.done = true
			return m, tea.Quit
		} else if choice == "n" || choice == "no" {
			m.step = stepWelcome
			m.textInput.SetValue("")
			m.databaseURL = ""
			m.apiKey = ""
			m.retentionDays = 0
		}
	}

	return m, nil
}

func (m model) writeEnvFile() error {
	content := fmt.Sprintf(`DATABASE_URL=%s
ADMIN_API_KEY=%s
RETENTION_DAYS=%d
API_PORT=8080
OPS_PORT=9090
LOG_FORMAT=pretty
`, m.databaseURL, m.apiKey, m.retentionDays)

	return os.WriteFile(".env", []byte(content), 0600)
}

func (m model) View() string {
	var s strings.Builder

	switch m.step {
	case stepWelcome:
		s.WriteString(titleStyle.Render("Roman Urdu - Server Setup"))
		s.WriteString("\n\n")
		s.WriteString("This wizard will configure the transcription server.\n")
		s.WriteString("You'll pick:\n\n")
		s.WriteString("  - Where transcripts are stored (SQLite file or PostgreSQL URL)\n")
		s.WriteString("  - An admin API key for deleting transcripts\n")
		s.WriteString("  - How long transcripts are kept\n")
		s.WriteString("\n")
		s.WriteString(dimStyle.Render("Press Enter to continue, Ctrl+C to exit"))

	case stepDatabase:
		s.WriteString(titleStyle.Render("Step 1: Database"))
		s.WriteString("\n\n")
		s.WriteString("Transcripts are stored in SQLite by default.\n")
		s.WriteString("For PostgreSQL, paste a postgres:// connection URL instead.\n")
		s.WriteString("\n")
		s.WriteString(labelStyle.Render(fmt.Sprintf("Database (Enter for %s):", defaultDatabaseURL)))
		s.WriteString("\n")
		s.WriteString(m.textInput.View())
		if m.err != nil {
			s.WriteString("\n" + errorStyle.Render(m.err.Error()))
		}

	case stepAPIKey:
		s.WriteString(titleStyle.Render("Step 2: Admin API Key"))
		s.WriteString("\n\n")
		s.WriteString("Deleting transcripts over the API requires this key\n")
		s.WriteString("(sent as the X-API-Key header). Pick any long random string.\n")
		s.WriteString("\n")
		s.WriteString(labelStyle.Render("Enter an admin API key:"))
		s.WriteString("\n")
		s.WriteString(m.textInput.View())
		if m.err != nil {
			s.WriteString("\n" + errorStyle.Render(m.err.Error()))
		}

	case stepRetention:
		s.WriteString(titleStyle.Render("Step 3: Retention"))
		s.WriteString("\n\n")
		s.WriteString("Transcripts older than this many days are purged daily.\n")
		s.WriteString("Use 0 to keep transcripts forever.\n")
		s.WriteString("\n")
		s.WriteString(labelStyle.Render("Retention in days (Enter for 30):"))
		s.WriteString("\n")
		s.WriteString(m.textInput.View())
		if m.err != nil {
			s.WriteString("\n" + errorStyle.Render(m.err.Error()))
		}

	case stepConfirm:
		retention := fmt.Sprintf("%d days", m.retentionDays)
		if m.retentionDays == 0 {
			retention = "forever"
		}
		s.WriteString(titleStyle.Render("Configuration Complete"))
		s.WriteString("\n\n")
		s.WriteString("Your configuration:\n\n")
		s.WriteString("  Database:  " + successStyle.Render(m.databaseURL) + "\n")
		s.WriteString("  API Key:   " + successStyle.Render(maskToken(m.apiKey)) + "\n")
		s.WriteString("  Retention: " + successStyle.Render(retention) + "\n")
		s.WriteString("\n")
		s.WriteString(labelStyle.Render("Save this configuration? [Y/n]:"))
		s.WriteString("\n")
		s.WriteString(m.textInput.View())
		if m.err != nil {
			s.WriteString("\n" + errorStyle.Render(m.err.Error()))
		}
	}

	s.WriteString("\n")
	return s.String()
}

func maskToken(token string) string {
	if len(token) <= 8 {
		return strings.Repeat("*", len(token))
	}
	return token[:4] + strings.Repeat("*", len(token)-8) + token[len(token)-4:]
}

// Run starts the setup wizard and returns true if a config was written
func Run() (bool, error) {
	p := tea.NewProgram(New())
	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m := finalModel.(model)
	return m.done, nil
}

// NeedsSetup checks if .env file exists
func NeedsSetup() bool {
	_, err := os.Stat(".env")
	return os.IsNotExist(err)
}
