package assessscreen

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/rsahni/topiq/internal/assess"
	"github.com/rsahni/topiq/internal/ui/components"
	"github.com/rsahni/topiq/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (s *AssessScreen) View(width, height int) string {
	if s.quitConfirm {
		return s.renderQuitConfirm(width, height)
	}

	switch s.phase {
	case phaseError:
		return s.renderError(width, height)
	case phaseLoading, phaseEvaluating:
		return s.renderWaiting(width, height)
	case phaseFeedback:
		return s.renderFeedback(width, height)
	default:
		return s.renderQuestion(width, height)
	}
}

func (s *AssessScreen) renderWaiting(width, height int) string {
	frame := spinnerFrames[s.spinnerFrame%len(spinnerFrames)]
	label := "Preparing your first question..."
	if s.phase == phaseEvaluating {
		label = "Thinking..."
	}
	content := lipgloss.NewStyle().Foreground(theme.Primary).Render(frame) + "  " +
		theme.Hint.Render(label)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *AssessScreen) renderError(width, height int) string {
	content := lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("Something went wrong") +
		"\n\n" + theme.Body.Render(s.errMsg) +
		"\n\n" + theme.Hint.Render("R to retry, Esc to go back")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *AssessScreen) renderQuitConfirm(width, height int) string {
	content := theme.Body.Render("Abandon this session?") + "\n\n" +
		theme.Hint.Render("Progress so far is saved; the session won't count as completed.") + "\n\n" +
		theme.Body.Render("Y / N")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Card.Render(content))
}

// renderStatus shows round progress and the live mastery estimate.
func (s *AssessScreen) renderStatus(width int) string {
	sess := s.ctrl.Session()
	if sess == nil {
		return ""
	}

	round := sess.QuestionsAnswered + 1
	if round > assess.RoundLimit {
		round = assess.RoundLimit
	}
	left := theme.Body.Render(fmt.Sprintf("Question %d of %d", round, assess.RoundLimit))
	if sess.Level != "" {
		left += theme.Hint.Render(fmt.Sprintf("  [%s]", sess.Level))
	}

	barWidth := width / 3
	if barWidth < 20 {
		barWidth = 20
	}
	bar := components.NewProgressBar("Mastery", sess.Mastery, true, barWidth)

	return left + "\n" + bar.View()
}

func (s *AssessScreen) renderQuestion(width, height int) string {
	var sections []string

	sections = append(sections, s.renderStatus(width))
	sections = append(sections, "")
	sections = append(sections, s.mc.View())

	if s.transientErr != "" {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Error).
			Render(s.transientErr))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *AssessScreen) renderFeedback(width, height int) string {
	eval := s.ctrl.Evaluation()

	var sections []string
	sections = append(sections, s.renderStatus(width))
	sections = append(sections, "")
	sections = append(sections, s.mc.View())

	if eval != nil {
		verdict := theme.Incorrect.Render(fmt.Sprintf("✗  Score %.1f", eval.Score))
		if eval.Score >= 0.5 {
			verdict = theme.Correct.Render(fmt.Sprintf("✓  Score %.1f", eval.Score))
		}
		sections = append(sections, verdict)
		sections = append(sections, "")
		sections = append(sections, theme.Body.Width(width*2/3).Render(eval.Feedback))

		if eval.HasCorrection() {
			sections = append(sections, "")
			sections = append(sections, lipgloss.NewStyle().
				Foreground(theme.Accent).
				Width(width*2/3).
				Render("Remember: "+eval.Correction))
		}
	}

	if s.transientErr != "" {
		sections = append(sections, "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Error).
			Render(s.transientErr))
	}

	sections = append(sections, "")
	sections = append(sections, theme.Hint.Render("press any key to continue"))

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
