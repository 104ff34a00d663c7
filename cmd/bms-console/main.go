package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Admin terminal console for the building management server: log in with an
// admin account, then inspect stats, vacant flats and post notices without
// leaving the shell.

const defaultBaseURL = "http://localhost:8080"

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true).
			PaddingLeft(2)

	normalStyle = lipgloss.NewStyle().
			PaddingLeft(4)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

type step int

const (
	stepEnteringEmail step = iota
	stepEnteringPassword
	stepLoggingIn
	stepMenu
	stepViewingStats
	stepViewingVacant
	stepEnteringNoticeTitle
	stepEnteringNoticeContent
	stepPostingNotice
)

var menuItems = []string{
	"Building stats",
	"Vacant flats",
	"Post notice",
	"Quit",
}

type model struct {
	baseURL      string
	step         step
	cursor       int
	email        string
	password     string
	token        string
	noticeTitle  string
	currentInput string
	stats        map[string]int64
	vacant       []string
	message      string
	quitting     bool
}

type loginSuccessMsg struct{ token string }
type statsMsg map[string]int64
type vacantMsg []string
type noticePostedMsg struct{}
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel() model {
	baseURL := os.Getenv("BMS_API")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return model{
		baseURL: baseURL,
		step:    stepEnteringEmail,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func login(baseURL, email, password string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		payload := map[string]string{
			"email":    email,
			"password": password,
		}
		jsonData, _ := json.Marshal(payload)

		req, _ := http.NewRequest("POST", baseURL+"/login", bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("cannot reach server at %s: %w", baseURL, err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return errMsg{fmt.Errorf("login failed: check email and password")}
		}

		var result map[string]interface{}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return errMsg{fmt.Errorf("unexpected login response")}
		}

		token, _ := result["token"].(string)
		if token == "" {
			return errMsg{fmt.Errorf("unexpected login response")}
		}
		if role, _ := result["role"].(string); role != "admin" {
			return errMsg{fmt.Errorf("this console requires an admin account")}
		}

		return loginSuccessMsg{token: token}
	}
}

func fetchStats(baseURL, token string) tea.Cmd {
	return func() tea.Msg {
		var body struct {
			Stats map[string]int64 `json:"stats"`
		}
		if err := getJSON(baseURL+"/api/v1/stats", token, &body); err != nil {
			return errMsg{err}
		}
		return statsMsg(body.Stats)
	}
}

func fetchVacant(baseURL, token string) tea.Cmd {
	return func() tea.Msg {
		var body struct {
			Vacant []string `json:"vacant_apartments"`
		}
		if err := getJSON(baseURL+"/api/v1/apartments/vacant", token, &body); err != nil {
			return errMsg{err}
		}
		return vacantMsg(body.Vacant)
	}
}

func postNotice(baseURL, token, title, content string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		payload := map[string]string{"title": title, "content": content}
		jsonData, _ := json.Marshal(payload)

		req, _ := http.NewRequest("POST", baseURL+"/api/v1/notices", bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{err}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusCreated {
			return errMsg{fmt.Errorf("server rejected the notice (status %d)", resp.StatusCode)}
		}
		return noticePostedMsg{}
	}
}

func getJSON(url, token string, out interface{}) error {
	client := &http.Client{Timeout: 10 * time.Second}

	req, _ := http.NewRequest("GET", url, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("request failed (status %d)", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case loginSuccessMsg:
		m.token = msg.token
		m.step = stepMenu
		m.message = successStyle.Render("Logged in.")
		return m, nil

	case statsMsg:
		m.stats = msg
		m.step = stepViewingStats
		return m, nil

	case vacantMsg:
		m.vacant = msg
		m.step = stepViewingVacant
		return m, nil

	case noticePostedMsg:
		m.step = stepMenu
		m.message = successStyle.Render("Notice posted.")
		return m, nil

	case errMsg:
		m.message = errorStyle.Render(msg.Error())
		if m.token == "" {
			m.step = stepEnteringEmail
			m.currentInput = ""
		} else {
			m.step = stepMenu
		}
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		if m.step == stepMenu || m.step == stepViewingStats || m.step == stepViewingVacant {
			m.quitting = true
			return m, tea.Quit
		}
	}

	switch m.step {
	case stepEnteringEmail, stepEnteringPassword, stepEnteringNoticeTitle, stepEnteringNoticeContent:
		return m.handleTextInput(msg)

	case stepMenu:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(menuItems)-1 {
				m.cursor++
			}
		case "enter":
			m.message = ""
			switch m.cursor {
			case 0:
				return m, fetchStats(m.baseURL, m.token)
			case 1:
				return m, fetchVacant(m.baseURL, m.token)
			case 2:
				m.step = stepEnteringNoticeTitle
				m.currentInput = ""
			case 3:
				m.quitting = true
				return m, tea.Quit
			}
		}

	case stepViewingStats, stepViewingVacant:
		if msg.String() == "enter" || msg.String() == "esc" {
			m.step = stepMenu
		}
	}
	return m, nil
}

func (m model) handleTextInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		input := m.currentInput
		m.currentInput = ""
		switch m.step {
		case stepEnteringEmail:
			if input == "" {
				return m, nil
			}
			m.email = input
			m.step = stepEnteringPassword
		case stepEnteringPassword:
			m.password = input
			m.step = stepLoggingIn
			return m, login(m.baseURL, m.email, m.password)
		case stepEnteringNoticeTitle:
			if input == "" {
				return m, nil
			}
			m.noticeTitle = input
			m.step = stepEnteringNoticeContent
		case stepEnteringNoticeContent:
			if input == "" {
				return m, nil
			}
			m.step = stepPostingNotice
			return m, postNotice(m.baseURL, m.token, m.noticeTitle, input)
		}
	case "esc":
		if m.token != "" {
			m.step = stepMenu
			m.currentInput = ""
		}
	case "backspace":
		if len(m.currentInput) > 0 {
			m.currentInput = m.currentInput[:len(m.currentInput)-1]
		}
	default:
		if len(msg.Runes) > 0 {
			m.currentInput += string(msg.Runes)
		}
	}
	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	s := titleStyle.Render("BMS Admin Console") + "\n"

	switch m.step {
	case stepEnteringEmail:
		s += promptStyle.Render("Admin email: ") + inputStyle.Render(m.currentInput) + "\n"
	case stepEnteringPassword:
		s += promptStyle.Render("Password: ") + inputStyle.Render(masked(m.currentInput)) + "\n"
	case stepLoggingIn:
		s += "Logging in...\n"
	case stepMenu:
		for i, item := range menuItems {
			if i == m.cursor {
				s += selectedStyle.Render("> "+item) + "\n"
			} else {
				s += normalStyle.Render(item) + "\n"
			}
		}
	case stepViewingStats:
		s += promptStyle.Render("Building stats") + "\n"
		for _, key := range []string{"total_apartments", "occupied", "vacant", "residents", "notices", "pending_complaints"} {
			s += normalStyle.Render(fmt.Sprintf("%-20s %d", key, m.stats[key])) + "\n"
		}
		s += "\n" + normalStyle.Render("(enter to go back)") + "\n"
	case stepViewingVacant:
		s += promptStyle.Render("Vacant flats") + "\n"
		if len(m.vacant) == 0 {
			s += normalStyle.Render("none") + "\n"
		}
		for _, unit := range m.vacant {
			s += normalStyle.Render(unit) + "\n"
		}
		s += "\n" + normalStyle.Render("(enter to go back)") + "\n"
	case stepEnteringNoticeTitle:
		s += promptStyle.Render("Notice title: ") + inputStyle.Render(m.currentInput) + "\n"
	case stepEnteringNoticeContent:
		s += promptStyle.Render("Notice content: ") + inputStyle.Render(m.currentInput) + "\n"
	case stepPostingNotice:
		s += "Posting notice...\n"
	}

	if m.message != "" {
		s += "\n" + m.message + "\n"
	}
	return s
}

func masked(s string) string {
	out := ""
	for range s {
		out += "*"
	}
	return out
}

func main() {
	if _, err := tea.NewProgram(initialModel()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
