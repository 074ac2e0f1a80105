package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/bryan-cox/reportledger/internal/model"
)

// Status badge colors, matching the list and detail views.
var (
	approvedColor = lipgloss.AdaptiveColor{Light: "#166534", Dark: "#86EFAC"}
	pendingColor  = lipgloss.AdaptiveColor{Light: "#854D0E", Dark: "#FDE047"}
	reviewColor   = lipgloss.AdaptiveColor{Light: "#1E40AF", Dark: "#93C5FD"}
	neutralColor  = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#E5E7EB"}
	mutedColor    = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
)

// styles holds the lipgloss styles bound to one output renderer.
type styles struct {
	title    lipgloss.Style
	heading1 lipgloss.Style
	heading2 lipgloss.Style
	heading3 lipgloss.Style
	bold     lipgloss.Style
	body     lipgloss.Style
	muted    lipgloss.Style
	badges   map[model.Status]lipgloss.Style
	badge    lipgloss.Style
}

// newStyles builds styles for out. Color support is detected from the
// writer, so buffers and pipes get plain text.
func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	badge := r.NewStyle().Bold(true).Foreground(neutralColor)
	return styles{
		title:    r.NewStyle().Bold(true).Foreground(neutralColor),
		heading1: r.NewStyle().Bold(true).Underline(true),
		heading2: r.NewStyle().Bold(true),
		heading3: r.NewStyle().Bold(true).Foreground(mutedColor),
		bold:     r.NewStyle().Bold(true),
		body:     r.NewStyle(),
		muted:    r.NewStyle().Foreground(mutedColor),
		badge:    badge,
		badges: map[model.Status]lipgloss.Style{
			model.StatusApproved: badge.Foreground(approvedColor),
			model.StatusPending:  badge.Foreground(pendingColor),
			model.StatusInReview: badge.Foreground(reviewColor),
		},
	}
}

func (s styles) statusBadge(status model.Status) string {
	style, ok := s.badges[status]
	if !ok {
		style = s.badge
	}
	return style.Render("[" + string(status) + "]")
}
