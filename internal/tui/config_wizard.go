package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/user/promptpack/internal/config"
)

// Step represents a configuration step
type Step int

const (
	StepFormat Step = iota
	StepExcludes
	StepGitignore
	StepConfirm
	StepComplete
)

func (s Step) String() string {
	switch s {
	case StepFormat:
		return "Output Format"
	case StepExcludes:
		return "Default Excludes"
	case StepGitignore:
		return "Gitignore Handling"
	case StepConfirm:
		return "Confirm"
	case StepComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// Model holds the wizard state
type Model struct {
	Step         Step
	Format       string
	Excludes     []string
	UseGitignore bool
	Quitting     bool
	ConfigPath   string
	SavedConfig  bool
	Err          error

	ExcludesInput textinput.Model
}

// NewWizardModel creates a wizard model with the inputs initialized
func NewWizardModel() Model {
	excludesInput := textinput.New()
	excludesInput.Placeholder = "*.lock, dist/**"
	excludesInput.CharLimit = 256

	return Model{
		Format:        "default",
		UseGitignore:  true,
		ExcludesInput: excludesInput,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Step == StepComplete {
			m.Quitting = true
			return m, tea.Quit
		}

		switch msg.String() {
		case "ctrl+c", "q":
			if m.Step != StepExcludes || msg.String() == "ctrl+c" {
				m.Quitting = true
				return m, tea.Quit
			}
		case "enter":
			switch m.Step {
			case StepFormat:
				m.Step = StepExcludes
				m.ExcludesInput.Focus()
			case StepExcludes:
				m.Excludes = parseExcludes(m.ExcludesInput.Value())
				m.Step = StepGitignore
				m.ExcludesInput.Blur()
			case StepGitignore:
				m.Step = StepConfirm
			}
		case "1":
			if m.Step == StepFormat {
				m.Format = "default"
			}
		case "2":
			if m.Step == StepFormat {
				m.Format = "cxml"
			}
		case "3":
			if m.Step == StepFormat {
				m.Format = "markdown"
			}
		case "y", "Y":
			switch m.Step {
			case StepGitignore:
				m.UseGitignore = true
				m.Step = StepConfirm
			case StepConfirm:
				configPath, err := m.saveConfig()
				m.ConfigPath = configPath
				m.Err = err
				m.SavedConfig = err == nil
				m.Step = StepComplete
			}
		case "n", "N":
			switch m.Step {
			case StepGitignore:
				m.UseGitignore = false
				m.Step = StepConfirm
			case StepConfirm:
				m.Step = StepFormat
			}
		case "esc":
			switch m.Step {
			case StepExcludes:
				m.Step = StepFormat
				m.ExcludesInput.Blur()
			case StepGitignore:
				m.Step = StepExcludes
				m.ExcludesInput.Focus()
			case StepConfirm:
				m.Step = StepGitignore
			}
		}
	}

	var cmd tea.Cmd
	if m.Step == StepExcludes {
		m.ExcludesInput, cmd = m.ExcludesInput.Update(msg)
	}

	return m, cmd
}

// View renders the UI
func (m Model) View() string {
	if m.Quitting && m.Step != StepComplete {
		return "Exiting...\n"
	}

	if m.Step == StepComplete {
		if m.Err != nil {
			return fmt.Sprintf("\n%s\n\nError saving configuration: %v\n\nPress any key to exit...",
				StyleError.Render("Configuration Failed"), m.Err)
		}
		return fmt.Sprintf("\n%s\n\nConfiguration saved to: %s\n\nPress any key to exit...",
			StyleSuccess.Render("Configuration Saved Successfully!"), m.ConfigPath)
	}

	var s string

	s += StyleTitle.Render(" promptpack Configuration Wizard ") + "\n\n"

	stepNum := int(m.Step) + 1
	s += fmt.Sprintf("Step %d/4: %s\n\n", stepNum, m.Step.String())

	switch m.Step {
	case StepFormat:
		s += m.renderFormatSelection()
	case StepExcludes:
		s += m.renderExcludesInput()
	case StepGitignore:
		s += m.renderGitignoreChoice()
	case StepConfirm:
		s += m.renderConfirm()
	}

	s += "\n\n"
	switch m.Step {
	case StepFormat:
		s += "1-3: Select format  |  Enter: Continue  |  q: Quit"
	case StepExcludes:
		s += "Type patterns  |  Enter: Continue  |  Esc: Go back"
	case StepGitignore:
		s += "y: Respect  |  n: Ignore  |  Enter: Keep current  |  Esc: Go back"
	case StepConfirm:
		s += "y: Yes (save)  |  n: No (start over)  |  q: Quit"
	}

	return s + "\n"
}

func (m Model) renderFormatSelection() string {
	s := "Select the default output format:\n\n"

	formats := []struct {
		key  string
		name string
		desc string
	}{
		{"1", "default", "path, separators, numbered lines"},
		{"2", "cxml", "XML document blocks for Claude prompts"},
		{"3", "markdown", "fenced code blocks with language hints"},
	}

	for _, f := range formats {
		prefix := " "
		if m.Format == f.name {
			prefix = StyleHighlight.Render(IconSuccess)
		}
		s += fmt.Sprintf("%s %s. %s (%s)\n", prefix, f.key, f.name, f.desc)
	}

	return s
}

func (m Model) renderExcludesInput() string {
	s := fmt.Sprintf("Enter default exclude patterns, comma separated (optional):\n\n%s\n\n",
		m.ExcludesInput.View())
	s += "(Press Enter when done)"
	return s
}

func (m Model) renderGitignoreChoice() string {
	current := "respected"
	if !m.UseGitignore {
		current = "ignored"
	}
	return fmt.Sprintf("Should .gitignore files be respected by default?\n\nCurrently: %s",
		StyleHighlight.Render(current))
}

func (m Model) renderConfirm() string {
	s := "Review your configuration:\n\n"
	s += fmt.Sprintf("  Format:     %s\n", StyleHighlight.Render(m.Format))
	if len(m.Excludes) > 0 {
		s += fmt.Sprintf("  Excludes:   %s\n", StyleHighlight.Render(strings.Join(m.Excludes, ", ")))
	}
	gitignore := "respected"
	if !m.UseGitignore {
		gitignore = "ignored"
	}
	s += fmt.Sprintf("  Gitignore:  %s\n", StyleHighlight.Render(gitignore))
	s += "\nSave this configuration?"
	return s
}

func (m Model) saveConfig() (string, error) {
	settings := map[string]interface{}{
		"output": map[string]interface{}{
			"format": m.Format,
		},
		"selection": map[string]interface{}{
			"no_gitignore": !m.UseGitignore,
		},
	}
	if len(m.Excludes) > 0 {
		settings["selection"].(map[string]interface{})["exclude"] = m.Excludes
	}

	return config.SaveGlobal(settings)
}

// parseExcludes splits a comma separated pattern list, dropping empties.
func parseExcludes(value string) []string {
	var patterns []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			patterns = append(patterns, p)
		}
	}
	return patterns
}

// GetConfigPath returns the path where config was saved
func (m Model) GetConfigPath() string {
	return m.ConfigPath
}
