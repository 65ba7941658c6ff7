package score

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/creditwise/creditwise-cli/internal/domain"
)

// The scoring engine works on the standard 300-850 scale.
const (
	scaleFloor   = 300
	scaleCeiling = 850
)

func renderView(result domain.ScoreResult, s styles) string {
	if result.Empty() {
		return s.empty.Render("No score available.")
	}

	lines := []string{
		s.title.Render("Credit Score"),
		scoreLine(result, s),
		renderScaleBar(result.Score, 32, s),
	}

	if result.ScoreRange != "" {
		lines = append(lines, s.detail.Render(fmt.Sprintf("Range: %s", result.ScoreRange)))
	}
	if result.PointsToNextLevel > 0 {
		lines = append(lines, s.detail.Render(fmt.Sprintf("Points to next level: %d", result.PointsToNextLevel)))
	}

	if len(result.Recommendations) > 0 {
		lines = append(lines, s.title.Render("Recommendations"))
		for _, recommendation := range result.Recommendations {
			lines = append(lines, s.bullet.Render("  - "+recommendation))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func scoreLine(result domain.ScoreResult, s styles) string {
	score := s.score.Render(fmt.Sprintf("%d", result.Score))
	badge := s.risk(string(result.RiskCategory)).Render(result.RiskCategory.Label())

	return lipgloss.JoinHorizontal(lipgloss.Top, score, " ", badge)
}

func renderScaleBar(score, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	fraction := float64(score-scaleFloor) / float64(scaleCeiling-scaleFloor)
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	filled := int(math.Round(float64(width) * fraction))
	if filled > width {
		filled = width
	}

	empty := width - filled
	fillSegment := s.barFill.Render(strings.Repeat("=", filled))
	emptySegment := s.barEmpty.Render(strings.Repeat("-", empty))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barText.Render(fmt.Sprintf("%d ", scaleFloor)),
		s.barBracket.Render("["),
		fillSegment,
		emptySegment,
		s.barBracket.Render("]"),
		s.barText.Render(fmt.Sprintf(" %d", scaleCeiling)),
	)
}
