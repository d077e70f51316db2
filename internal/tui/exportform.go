// ABOUTME: Interactive TUI wizard for configuring and running an export.
// ABOUTME: 4-step bubbletea model collecting format, date range, and filename.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/2389-research/worklog/internal/models"
)

// Step represents the current wizard step.
type Step int

const (
	StepFormat Step = iota
	StepFromDate
	StepToDate
	StepFilename
	StepExporting
	StepDone
	StepFailed
)

// exportResultMsg carries the result of an async export attempt.
type exportResultMsg struct {
	path string
	err  error
}

// ExportFn runs the export and saves the result, returning the written path.
type ExportFn func(ctx context.Context, opts models.ExportOptions) (string, error)

// cancelHolder shares a cancel function across bubbletea model copies.
// This MUST be stored as a pointer field on ExportModel so that value-receiver
// methods (required by tea.Model) can store the cancel func and have it
// visible to all copies of the model.
type cancelHolder struct {
	cancel context.CancelFunc
}

// ExportModel is the bubbletea model for the export wizard.
type ExportModel struct {
	step          Step
	inputs        [4]textinput.Model
	spinner       spinner.Model
	exportFn      ExportFn
	defaultFormat string
	cancelCtx     *cancelHolder
	fieldErr      error
	exportErr     error
	savedPath     string
	quitting      bool
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	brandStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// NewExportModel creates a new export wizard model.
func NewExportModel(defaultFormat string, exportFn ExportFn) ExportModel {
	formatInput := textinput.New()
	formatInput.Placeholder = defaultFormat
	formatInput.Focus()
	formatInput.Width = 30

	fromInput := textinput.New()
	fromInput.Placeholder = "YYYY-MM-DD (empty for no lower bound)"
	fromInput.Width = 40

	toInput := textinput.New()
	toInput.Placeholder = "YYYY-MM-DD (empty for no upper bound)"
	toInput.Width = 40

	nameInput := textinput.New()
	nameInput.Placeholder = "empty for a generated name"
	nameInput.Width = 40

	s := spinner.New()
	s.Spinner = spinner.Dot

	return ExportModel{
		step:          StepFormat,
		inputs:        [4]textinput.Model{formatInput, fromInput, toInput, nameInput},
		spinner:       s,
		exportFn:      exportFn,
		defaultFormat: defaultFormat,
		cancelCtx:     &cancelHolder{},
	}
}

// Init implements tea.Model.
func (m ExportModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m ExportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEscape:
			m.quitting = true
			if m.cancelCtx.cancel != nil {
				m.cancelCtx.cancel()
			}
			return m, tea.Quit
		}

		switch m.step {
		case StepFormat, StepFromDate, StepToDate, StepFilename:
			return m.updateInput(msg)
		case StepFailed:
			return m.updateFailed(msg)
		}

	case exportResultMsg:
		m.cancelCtx.cancel = nil
		if msg.err == nil {
			m.savedPath = msg.path
			m.step = StepDone
			return m, tea.Quit
		}
		m.exportErr = msg.err
		m.step = StepFailed
		return m, nil

	case spinner.TickMsg:
		if m.step == StepExporting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m ExportModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		idx := int(m.step)

		// Validate the field; stay on the step when it fails.
		switch m.step {
		case StepFormat:
			if m.inputs[0].Value() == "" {
				m.inputs[0].SetValue(m.defaultFormat)
			}
			m.fieldErr = ValidateFormat(m.inputs[0].Value())
		case StepFromDate:
			m.fieldErr = ValidateDate(m.inputs[1].Value())
		case StepToDate:
			m.fieldErr = ValidateDate(m.inputs[2].Value())
			if m.fieldErr == nil {
				m.fieldErr = ValidateRange(m.inputs[1].Value(), m.inputs[2].Value())
			}
		}
		if m.fieldErr != nil {
			return m, nil
		}

		m.inputs[idx].Blur()

		switch m.step {
		case StepFormat:
			m.step = StepFromDate
			m.inputs[1].Focus()
			return m, textinput.Blink
		case StepFromDate:
			m.step = StepToDate
			m.inputs[2].Focus()
			return m, textinput.Blink
		case StepToDate:
			m.step = StepFilename
			m.inputs[3].Focus()
			return m, textinput.Blink
		case StepFilename:
			m.step = StepExporting
			return m, tea.Batch(m.startExport(), m.spinner.Tick)
		}
	}

	// Forward to the active input
	idx := int(m.step)
	var cmd tea.Cmd
	m.inputs[idx], cmd = m.inputs[idx].Update(msg)
	return m, cmd
}

func (m ExportModel) updateFailed(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyRunes {
		switch msg.Runes[0] {
		case 'r':
			m.step = StepExporting
			m.exportErr = nil
			return m, tea.Batch(m.startExport(), m.spinner.Tick)
		case 'q':
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ExportModel) startExport() tea.Cmd {
	opts, err := m.Options()
	if err != nil {
		return func() tea.Msg {
			return exportResultMsg{err: err}
		}
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.cancelCtx.cancel = cancel
	fn := m.exportFn
	return func() tea.Msg {
		path, err := fn(ctx, opts)
		return exportResultMsg{path: path, err: err}
	}
}

// Options assembles the export options from the entered values. The format
// field is validated at StepFormat, so a parse error here means the wizard
// was driven out of order; it is surfaced rather than papered over.
func (m ExportModel) Options() (models.ExportOptions, error) {
	format, err := models.ParseFormat(m.inputs[0].Value())
	if err != nil {
		return models.ExportOptions{}, err
	}
	return models.ExportOptions{
		Format:   format,
		FromDate: m.inputs[1].Value(),
		ToDate:   m.inputs[2].Value(),
		Filename: m.inputs[3].Value(),
	}, nil
}

// View implements tea.Model.
func (m ExportModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(brandStyle.Render("   WORKLOG"))
	b.WriteString(titleStyle.Render(" - Export"))
	b.WriteString("\n\n")
	b.WriteString("Export your career log to a document.\n\n")

	switch m.step {
	case StepFormat:
		b.WriteString(stepStyle.Render("Step 1 of 4: Format (csv, json, txt, pdf, docx)"))
		b.WriteString("\n")
		b.WriteString(promptStyle.Render(fmt.Sprintf("(press Enter for %s)", m.defaultFormat)))
		b.WriteString("\n")
		b.WriteString(m.inputs[0].View())
		b.WriteString("\n")

	case StepFromDate:
		b.WriteString(fmt.Sprintf("  Format: %s\n\n", m.inputs[0].Value()))
		b.WriteString(stepStyle.Render("Step 2 of 4: From date"))
		b.WriteString("\n")
		b.WriteString(m.inputs[1].View())
		b.WriteString("\n")

	case StepToDate:
		b.WriteString(fmt.Sprintf("  Format: %s\n", m.inputs[0].Value()))
		b.WriteString(fmt.Sprintf("  From:   %s\n\n", orAny(m.inputs[1].Value())))
		b.WriteString(stepStyle.Render("Step 3 of 4: To date"))
		b.WriteString("\n")
		b.WriteString(m.inputs[2].View())
		b.WriteString("\n")

	case StepFilename:
		b.WriteString(fmt.Sprintf("  Format: %s\n", m.inputs[0].Value()))
		b.WriteString(fmt.Sprintf("  From:   %s\n", orAny(m.inputs[1].Value())))
		b.WriteString(fmt.Sprintf("  To:     %s\n\n", orAny(m.inputs[2].Value())))
		b.WriteString(stepStyle.Render("Step 4 of 4: Filename"))
		b.WriteString("\n")
		b.WriteString(m.inputs[3].View())
		b.WriteString("\n")

	case StepExporting:
		b.WriteString(m.spinner.View())
		b.WriteString(" Exporting...")
		b.WriteString("\n")

	case StepDone:
		b.WriteString(successStyle.Render(fmt.Sprintf("✓ Exported to %s", m.savedPath)))
		b.WriteString("\n")

	case StepFailed:
		errMsg := "unknown error"
		if m.exportErr != nil {
			errMsg = m.exportErr.Error()
		}
		b.WriteString(errorStyle.Render(fmt.Sprintf("✗ Export failed: %s", errMsg)))
		b.WriteString("\n\n")
		b.WriteString(promptStyle.Render("[r]etry  [q]uit"))
		b.WriteString("\n")
	}

	if m.fieldErr != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("  %v", m.fieldErr)))
		b.WriteString("\n")
	}

	return b.String()
}

func orAny(value string) string {
	if value == "" {
		return "(any)"
	}
	return value
}

// SavedPath returns the path the export was written to.
func (m ExportModel) SavedPath() string {
	return m.savedPath
}

// Completed returns true if the wizard finished an export and the user did
// not cancel with Ctrl+C, Escape, or 'q'.
func (m ExportModel) Completed() bool {
	return m.step == StepDone && !m.quitting
}
