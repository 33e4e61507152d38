package cli

import (
	"github.com/alexanderramin/tempo/internal/cli/formatter"
	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// tempoHuhTheme returns a custom huh theme using the formatter palette.
func tempoHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// addProjectForm collects a new project name.
func addProjectForm(value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Placeholder("Client work").
				Value(value).
				Validate(validateProjectName),
		),
	).WithTheme(tempoHuhTheme()).WithShowHelp(false)
}

// stopNoteForm collects the note to attach to the entry being created.
func stopNoteForm(value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Note (optional)").
				Placeholder("what did you do?").
				Value(value),
		),
	).WithTheme(tempoHuhTheme()).WithShowHelp(false)
}

// exportPathForm collects the CSV destination path.
func exportPathForm(value *string, placeholder string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Export to").
				Placeholder(placeholder).
				Value(value),
		),
	).WithTheme(tempoHuhTheme()).WithShowHelp(false)
}

// validateProjectName applies the domain rule so the form rejects exactly
// what the service would reject.
func validateProjectName(s string) error {
	return domain.ValidateProjectName(s)
}
