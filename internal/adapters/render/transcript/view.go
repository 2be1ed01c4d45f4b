package transcript

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/bnema/glkpilot/internal/application"
	"github.com/bnema/glkpilot/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	// MaxTurns draws a turn budget bar when positive.
	MaxTurns int
	// Brief omits the turn-by-turn history.
	Brief bool
}

const (
	barWidth       = 24
	timeLayout     = "2006-01-02 15:04:05 MST"
	noOutputMarker = "(no output)"
)

func renderSession(result domain.SessionResult, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render(sessionTitle(result)),
		s.header.Render(sessionHeader(result)),
		outcomeLine(result, s),
	}

	if opts.MaxTurns > 0 {
		lines = append(lines, budgetLine(result.Turns, opts.MaxTurns, s))
	}
	for _, warning := range result.Warnings {
		lines = append(lines, s.warning.Render("warning: "+warning))
	}

	if !opts.Brief {
		lines = append(lines, s.section.Render(renderTurns(result.History, s)))
	}
	if len(result.Metrics) > 0 {
		lines = append(lines, s.section.Render(renderMetrics(result.Metrics, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func sessionTitle(result domain.SessionResult) string {
	title := fmt.Sprintf("Session %s", result.ID)
	if story := result.Metadata[application.MetadataStory]; story != "" {
		title += " · " + story
	}
	return title
}

func sessionHeader(result domain.SessionResult) string {
	parts := make([]string, 0, 4)
	if !result.StartedAt.IsZero() {
		parts = append(parts, "started "+result.StartedAt.UTC().Format(timeLayout))
	}
	if d := result.Duration(); d > 0 {
		parts = append(parts, formatDuration(d))
	}
	parts = append(parts, pluralTurns(result.Turns))
	if decision := result.Metadata[application.MetadataDecision]; decision != "" {
		parts = append(parts, "decision: "+decision)
	}

	return strings.Join(parts, " | ")
}

func outcomeLine(result domain.SessionResult, s styles) string {
	if result.Success {
		return s.success.Render("finished: " + stopLabel(result.StopReason))
	}

	message := result.Error
	if message == "" {
		message = "unknown error"
	}
	return s.failure.Render("failed: " + message)
}

func stopLabel(reason domain.StopReason) string {
	switch reason {
	case domain.StopReasonGameEnded:
		return "game ended"
	case domain.StopReasonMaxTurns:
		return "turn limit reached"
	case "":
		return "stopped"
	default:
		return string(reason)
	}
}

func budgetLine(turns, maxTurns int, s styles) string {
	used := 100 * float64(turns) / float64(maxTurns)
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		renderProgressBar(used, barWidth, s),
		" ",
		s.header.Render(fmt.Sprintf("%d/%d turns", turns, maxTurns)),
	)
}

func renderProgressBar(usedPercent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	used := math.Min(math.Max(usedPercent, 0), 100)
	filled := int(math.Round(float64(width) * used / 100))
	fillSegment := s.barFill.Render(strings.Repeat("=", filled))
	emptySegment := s.barEmpty.Render(strings.Repeat("-", width-filled))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		fillSegment,
		emptySegment,
		s.barBracket.Render("]"),
	)
}

func renderTurns(history []domain.GameTurn, s styles) string {
	if len(history) == 0 {
		return s.empty.Render("No turns played.")
	}

	blocks := make([]string, 0, len(history))
	for _, turn := range history {
		response := strings.TrimSpace(turn.Response)
		if response == "" {
			response = noOutputMarker
		}

		blocks = append(blocks, lipgloss.JoinVertical(
			lipgloss.Left,
			s.turnNumber.Render(fmt.Sprintf("#%d ", turn.Number))+s.command.Render("> "+turn.Command),
			s.response.Render(response),
		))
	}

	return strings.Join(blocks, "\n")
}

func renderMetrics(metrics domain.Metrics, s styles) string {
	keys := slices.Sorted(maps.Keys(metrics))

	lines := make([]string, 0, len(keys)+1)
	lines = append(lines, s.title.Render("metrics"))
	for _, key := range keys {
		lines = append(lines, s.metricKey.Render(key+": ")+s.metricVal.Render(fmt.Sprint(metrics[key])))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderSummaries(summaries []application.TranscriptSummary, s styles) string {
	lines := []string{
		s.title.Render("Transcripts"),
		s.header.Render(fmt.Sprintf("sessions: %d", len(summaries))),
	}

	if len(summaries) == 0 {
		lines = append(lines, s.empty.Render("No transcripts saved."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, summary := range summaries {
		outcome := s.success.Render(stopLabel(summary.StopReason))
		if !summary.Success {
			outcome = s.failure.Render("failed")
		}

		row := fmt.Sprintf("%-20s %-20s %9s ", summary.ID, formatStarted(summary.StartedAt), pluralTurns(summary.Turns))
		if summary.Story != "" {
			outcome += " " + s.header.Render(summary.Story)
		}
		lines = append(lines, row+outcome)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func formatStarted(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format("2006-01-02 15:04")
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(time.Second).String()
}

func pluralTurns(n int) string {
	if n == 1 {
		return "1 turn"
	}
	return fmt.Sprintf("%d turns", n)
}
