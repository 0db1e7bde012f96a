package services

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"colorpicker/internal/logger"
)

// ReportService renders batch results as a markdown report.
// On color-capable terminals the markdown is rendered through glamour.
type ReportService struct {
	initialized bool
	renderer    *glamour.TermRenderer
}

// NewReportService creates a new ReportService instance.
func NewReportService() *ReportService {
	return &ReportService{
		initialized: false,
		renderer:    nil,
	}
}

// Name returns the service name "report" for registration.
func (r *ReportService) Name() string {
	return "report"
}

// Initialize sets up the glamour renderer.
func (r *ReportService) Initialize() error {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	r.renderer = renderer
	r.initialized = true
	logger.Debug("ReportService initialized successfully")
	return nil
}

// Markdown builds the markdown report for results.
func (r *ReportService) Markdown(results []BatchResult) string {
	var sb strings.Builder
	invalid, changed := 0, 0

	sb.WriteString("# Color field report\n\n")
	sb.WriteString("| Field | Mode | Stored value | Result | Canonical |\n")
	sb.WriteString("|---|---|---|---|---|\n")
	for _, result := range results {
		status := "valid"
		if !result.Outcome.IsValid {
			invalid++
			status = result.Outcome.Kind.String()
			if result.Outcome.Channel != "" {
				status += " (" + result.Outcome.Channel + ")"
			}
		}
		canonical := "unchanged"
		if result.Changed {
			changed++
			canonical = codeSpan(result.Canonical)
		}
		fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s |\n",
			escapeCell(result.Entry.Name), result.Entry.Mode, codeSpan(result.Entry.Value), status, canonical)
	}

	fmt.Fprintf(&sb, "\n%d fields, %d invalid, %d not canonical.\n", len(results), invalid, changed)
	for _, result := range results {
		if result.Message != "" {
			fmt.Fprintf(&sb, "\n- **%s**: %s", escapeCell(result.Entry.Name), result.Message)
		}
	}
	if invalid > 0 {
		sb.WriteString("\n")
	}
	return sb.String()
}

// Render renders the report for the terminal. Plain markdown is returned when the
// terminal has no color support.
func (r *ReportService) Render(results []BatchResult) (string, error) {
	if !r.initialized {
		return "", fmt.Errorf("report service not initialized")
	}

	markdown := r.Markdown(results)
	if lipgloss.ColorProfile() == termenv.Ascii {
		return markdown, nil
	}

	rendered, err := r.renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return rendered, nil
}

// RenderPlain renders the report and strips any terminal escape sequences, for files.
func (r *ReportService) RenderPlain(results []BatchResult) (string, error) {
	rendered, err := r.Render(results)
	if err != nil {
		return "", err
	}
	return ansi.Strip(rendered), nil
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

// codeSpan wraps s in an inline code span inside a table cell. The fence is one
// backtick longer than the longest backtick run in s.
func codeSpan(s string) string {
	if s == "" {
		return "*empty*"
	}

	longest, run := 0, 0
	for _, r := range s {
		if r == '`' {
			run++
			longest = max(longest, run)
			continue
		}
		run = 0
	}

	fence := strings.Repeat("`", longest+1)
	cell := escapeCell(s)
	if longest > 0 {
		cell = " " + cell + " "
	}
	return fence + cell + fence
}
