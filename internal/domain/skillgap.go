package domain

import (
	"fmt"
	"strings"
)

var (
	topTierRequirements  = SkillMatrix{DSA: 5, OOPS: 4, DBMS: 4, OS: 4, SystemDesign: 5}
	baselineRequirements = SkillMatrix{DSA: 4, OOPS: 4, DBMS: 4, OS: 3, SystemDesign: 3}
)

type SkillGap struct {
	Category  string
	Shortfall int
}

// TargetRequirements estimates the skill bar for a target job title.
func TargetRequirements(targetJob string) SkillMatrix {
	upper := strings.ToUpper(targetJob)
	if strings.Contains(upper, "SDE") || strings.Contains(upper, "GOOGLE") {
		return topTierRequirements
	}

	return baselineRequirements
}

// Gaps lists categories where target exceeds current, in category order.
func Gaps(current, target SkillMatrix) []SkillGap {
	currentValues := current.Values()
	targetValues := target.Values()

	gaps := make([]SkillGap, 0, len(SkillCategories))
	for i, category := range SkillCategories {
		if targetValues[i] > currentValues[i] {
			gaps = append(gaps, SkillGap{Category: category, Shortfall: targetValues[i] - currentValues[i]})
		}
	}

	return gaps
}

func FormatGaps(gaps []SkillGap) string {
	parts := make([]string, 0, len(gaps))
	for _, gap := range gaps {
		parts = append(parts, fmt.Sprintf("%s (Shortfall: %d points)", gap.Category, gap.Shortfall))
	}

	return strings.Join(parts, ", ")
}
