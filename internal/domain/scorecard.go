package domain

import "strings"

const (
	MinPostWords            = 5
	FallbackEngagementScore = 50.0
	maxClarityScore         = 100
	clarityPointsPerWord    = 1.5
)

func WordCount(text string) int {
	return len(strings.Fields(text))
}

func ValidatePost(post string) error {
	if WordCount(post) < MinPostWords {
		return &ValidationError{Field: "post", Reason: "write a real post, a few words cannot be analyzed"}
	}

	return nil
}

// ClarityScore is a length heuristic capped at 100.
func ClarityScore(post string) int {
	score := int(float64(WordCount(post)) * clarityPointsPerWord)
	if score > maxClarityScore {
		return maxClarityScore
	}

	return score
}
