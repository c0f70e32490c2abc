package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/bnema/careerhub/internal/application"
	"github.com/bnema/careerhub/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const barWidth = 24

func Pools(statuses []application.PoolStatus) (string, error) {
	return render(func(s styles) string { return poolsView(statuses, s) })
}

func Profile(profile domain.Profile) (string, error) {
	return render(func(s styles) string { return profileView(profile, s) })
}

func Branding(result application.BrandingResult) (string, error) {
	return render(func(s styles) string { return brandingView(result, s) })
}

func SkillGap(result application.SkillGapResult) (string, error) {
	return render(func(s styles) string { return skillGapView(result, s) })
}

func Scorecard(result application.ScorecardResult) (string, error) {
	return render(func(s styles) string { return scorecardView(result, s) })
}

func Network(result application.NetworkResult) (string, error) {
	return render(func(s styles) string { return networkView(result, s) })
}

func poolsView(statuses []application.PoolStatus, s styles) string {
	lines := []string{
		s.title.Render("Key Pools"),
		s.header.Render(fmt.Sprintf("pools: %d", len(statuses))),
	}

	if len(statuses) == 0 {
		lines = append(lines, s.empty.Render("No key pools configured."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, status := range statuses {
		lines = append(lines, s.section.Render(poolBlock(status, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func poolBlock(status application.PoolStatus, s styles) string {
	suffix := "keys"
	if status.Size == 1 {
		suffix = "key"
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.name.Render(fmt.Sprintf("%s (%d %s)", status.Name, status.Size, suffix)),
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.label.Render("next:"),
			" ",
			renderRotation(status.Size, status.NextIndex, s),
			" ",
			s.meta.Render(fmt.Sprintf("key #%d, %d draws this session", status.NextIndex+1, status.Cursor)),
		),
	)
}

// renderRotation draws one slot per key with the next slot marked.
func renderRotation(size, next int, s styles) string {
	if size <= 0 {
		return ""
	}

	slots := make([]string, 0, size+2)
	slots = append(slots, s.barBracket.Render("["))
	for i := 0; i < size; i++ {
		if i == next {
			slots = append(slots, s.barCursor.Render("*"))
			continue
		}
		slots = append(slots, s.barEmpty.Render("-"))
	}
	slots = append(slots, s.barBracket.Render("]"))

	return lipgloss.JoinHorizontal(lipgloss.Top, slots...)
}

func profileView(profile domain.Profile, s styles) string {
	lines := []string{
		s.title.Render("Profile: " + string(profile.ID)),
		s.detail.Render(fmt.Sprintf("target: %s at %s", profile.TargetRole, profile.TargetEcosystem)),
		s.detail.Render("tone: " + valueOr(profile.VoiceTone, "n/a")),
	}
	if profile.Email != "" {
		lines = append(lines, s.detail.Render("email: "+profile.Email))
	}

	skills := []string{s.header.Render("skills")}
	for i, value := range profile.Skills.Values() {
		skills = append(skills, levelLine(domain.SkillCategories[i], value, s))
	}
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, skills...)))

	readiness := profile.Skills.CoreReadiness()
	lines = append(lines, s.section.Render(percentLine("core match", readiness, fmt.Sprintf("%.1f%%", readiness), s)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func brandingView(result application.BrandingResult, s styles) string {
	lines := []string{
		s.title.Render("LinkedIn Profile Optimizer"),
		s.section.Render(s.header.Render("recruiter critique")),
		s.body.Render(valueOr(result.Critique, "n/a")),
	}

	if result.Rewrite.Headline == "" && result.Rewrite.About == "" {
		lines = append(lines,
			s.section.Render(s.header.Render("rewrite")),
			s.body.Render(valueOr(result.Rewrite.Raw, "n/a")),
		)
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines,
		s.section.Render(s.header.Render("new headline")),
		s.body.Render(valueOr(result.Rewrite.Headline, "n/a")),
		s.section.Render(s.header.Render("new about")),
		s.body.Render(valueOr(result.Rewrite.About, "n/a")),
	)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func skillGapView(result application.SkillGapResult, s styles) string {
	lines := []string{
		s.title.Render("Skill Gap: " + result.TargetJob),
	}

	current := result.Current.Values()
	target := result.Target.Values()
	matrix := []string{s.header.Render("current vs target")}
	for i, category := range domain.SkillCategories {
		matrix = append(matrix, lipgloss.JoinHorizontal(
			lipgloss.Top,
			levelLine(category, current[i], s),
			" ",
			s.meta.Render(fmt.Sprintf("target %d", target[i])),
		))
	}
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, matrix...)))

	if result.Cluster != nil {
		lines = append(lines, s.section.Render(s.detail.Render(fmt.Sprintf("skill cohort: #%d", *result.Cluster))))
	} else {
		lines = append(lines, s.section.Render(s.empty.Render("skill cohort: unavailable (model offline)")))
	}

	if len(result.Gaps) == 0 {
		lines = append(lines, s.section.Render(s.detail.Render("Fundamentals meet the target. No roadmap needed.")))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	gaps := []string{s.header.Render("gaps")}
	for _, gap := range result.Gaps {
		gaps = append(gaps, s.warning.Render(fmt.Sprintf("%s: -%d", gap.Category, gap.Shortfall)))
	}
	lines = append(lines,
		s.section.Render(lipgloss.JoinVertical(lipgloss.Left, gaps...)),
		s.section.Render(s.header.Render("roadmap")),
		s.body.Render(valueOr(result.Roadmap, "n/a")),
	)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func scorecardView(result application.ScorecardResult, s styles) string {
	engagement := fmt.Sprintf("%.1f/100", result.Engagement)
	if !result.EngagementPredicted {
		engagement += " " + s.warning.Render("[fallback]")
	}

	lines := []string{
		s.title.Render("Post Scorecard"),
		s.section.Render(lipgloss.JoinVertical(
			lipgloss.Left,
			percentLine("engagement", result.Engagement, engagement, s),
			percentLine("clarity", float64(result.Clarity), fmt.Sprintf("%d/100", result.Clarity), s),
		)),
		s.section.Render(s.header.Render("critique")),
		s.body.Render(valueOr(result.Critique, "n/a")),
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func networkView(result application.NetworkResult, s styles) string {
	lines := []string{
		s.title.Render("Mentor Outreach"),
		s.header.Render("query: " + result.Query),
	}

	if len(result.Mentors) == 0 {
		lines = append(lines, s.empty.Render("No mentors found."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, mentor := range result.Mentors {
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(
			lipgloss.Left,
			s.name.Render(mentor.Name),
			s.meta.Render(mentor.Link),
			s.detail.Render(mentor.Snippet),
			s.body.Render(mentor.Pitch),
		)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func levelLine(category string, level int, s styles) string {
	percent := float64(level) / float64(domain.MaxSkillLevel) * 100
	return percentLine(category, percent, fmt.Sprintf("%d/%d", level, domain.MaxSkillLevel), s)
}

func percentLine(label string, percent float64, meta string, s styles) string {
	metaStyle := lipgloss.NewStyle().Foreground(interpolateColor(clampPercent(percent), 0, 100))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.label.Render(fmt.Sprintf("%-13s", label)),
		" ",
		renderProgressBar(percent, barWidth, s),
		" ",
		metaStyle.Render(meta),
	)
}

func renderProgressBar(percent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	fraction := clampPercent(percent) / 100.0
	filled := int(math.Round(float64(width) * fraction))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	empty := width - filled
	fillSegment := s.barFill.Render(strings.Repeat("=", filled))
	emptySegment := s.barEmpty.Render(strings.Repeat("-", empty))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		fillSegment,
		emptySegment,
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func valueOr(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	// 240 (faded grey) at min up to 255 (bright white) at max.
	interpolated := 240.0 + 15.0*normalized

	return lipgloss.Color(fmt.Sprintf("%d", int(interpolated)))
}
