package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetRequirements(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		targetJob string
		want      SkillMatrix
	}{
		{name: "sde title", targetJob: "SDE at Amazon", want: topTierRequirements},
		{name: "google lowercase", targetJob: "backend at google", want: topTierRequirements},
		{name: "other", targetJob: "Data Analyst at Infosys", want: baselineRequirements},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, TargetRequirements(tc.targetJob))
		})
	}
}

func TestGapsOnlyWhereTargetExceedsCurrent(t *testing.T) {
	t.Parallel()

	current := SkillMatrix{DSA: 3, OOPS: 4, DBMS: 5, OS: 2, SystemDesign: 1}
	gaps := Gaps(current, topTierRequirements)

	assert.Equal(t, []SkillGap{
		{Category: "DSA", Shortfall: 2},
		{Category: "OS", Shortfall: 2},
		{Category: "System Design", Shortfall: 4},
	}, gaps)
	assert.Equal(t, "DSA (Shortfall: 2 points), OS (Shortfall: 2 points), System Design (Shortfall: 4 points)", FormatGaps(gaps))
}

func TestGapsEmptyWhenFundamentalsMatch(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Gaps(topTierRequirements, baselineRequirements))
}

func TestSkillMatrixValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, SkillMatrix{DSA: 5}.Validate())

	err := SkillMatrix{OS: 6}.Validate()
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "OS", validationErr.Field)
}

func TestSkillMatrixFromValues(t *testing.T) {
	t.Parallel()

	matrix, err := SkillMatrixFromValues([]int{1, 2, 3, 4, 5})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, matrix.Values())

	_, err = SkillMatrixFromValues([]int{1, 2})
	assert.ErrorContains(t, err, "expected 5 skill values")
}

func TestSkillMatrixCoreReadiness(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 64.0, SkillMatrix{DSA: 3, OOPS: 3, DBMS: 3, OS: 3, SystemDesign: 4}.CoreReadiness(), 0.001)
	assert.InDelta(t, 100.0, SkillMatrix{DSA: 5, OOPS: 5, DBMS: 5, OS: 5, SystemDesign: 5}.CoreReadiness(), 0.001)
	assert.Zero(t, SkillMatrix{}.CoreReadiness())
}

func TestProfileValidate(t *testing.T) {
	t.Parallel()

	valid := Profile{ID: "u-1", TargetRole: "SDE", TargetEcosystem: "FAANG"}
	assert.NoError(t, valid.Validate())

	missingRole := valid
	missingRole.TargetRole = " "
	assert.ErrorContains(t, missingRole.Validate(), "target_role")
}

func TestScorecardHeuristics(t *testing.T) {
	t.Parallel()

	assert.Error(t, ValidatePost("too short post"))
	assert.NoError(t, ValidatePost("shipped a cache layer today"))

	assert.Equal(t, 7, ClarityScore("shipped a cache layer today"))
	assert.Equal(t, 100, ClarityScore(repeatWords(80)))
}

func TestMentorFromResult(t *testing.T) {
	t.Parallel()

	mentor := MentorFromResult(SearchResult{Title: "Jane Doe - Staff Engineer - Google - LinkedIn", Link: "https://linkedin.com/in/jane"})
	assert.Equal(t, "Jane Doe - Staff Engineer - Google", mentor.Name)
	assert.Equal(t, "No snippet available.", mentor.Snippet)

	blank := MentorFromResult(SearchResult{})
	assert.Equal(t, Mentor{Name: "LinkedIn Member", Link: "#", Snippet: "No snippet available."}, blank)
}

func TestCleanSearchQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain", raw: "site:linkedin.com/in/ 'Senior SRE' 'Google'", want: "site:linkedin.com/in/ 'Senior SRE' 'Google'"},
		{name: "double quoted", raw: "\"site:linkedin.com/in/ SRE\"\n", want: "site:linkedin.com/in/ SRE"},
		{name: "fenced", raw: "```\nsite:linkedin.com/in/ SRE\n```", want: "site:linkedin.com/in/ SRE"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, CleanSearchQuery(tc.raw))
		})
	}
}

func TestStripFencesDropsLanguageTag(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "- [ ] graphs", StripFences("```markdown\n- [ ] graphs\n```"))
	assert.Equal(t, "no fences", StripFences("  no fences "))
}

func TestParseRewrite(t *testing.T) {
	t.Parallel()

	text := "[NEW HEADLINE]\nBackend Engineer | Go | Distributed Systems\n\n[NEW ABOUT]\nI build reliable services.\n"
	rewrite := ParseRewrite(text)

	assert.Equal(t, "Backend Engineer | Go | Distributed Systems", rewrite.Headline)
	assert.Equal(t, "I build reliable services.", rewrite.About)
	assert.Equal(t, "[NEW HEADLINE]\nBackend Engineer | Go | Distributed Systems\n\n[NEW ABOUT]\nI build reliable services.", rewrite.Raw)
}

func TestParseRewriteWithoutMarkersKeepsRaw(t *testing.T) {
	t.Parallel()

	rewrite := ParseRewrite("just some text")
	assert.Empty(t, rewrite.Headline)
	assert.Empty(t, rewrite.About)
	assert.Equal(t, "just some text", rewrite.Raw)
}

func TestProviderErrorRetryable(t *testing.T) {
	t.Parallel()

	assert.True(t, IsRetryable(&ProviderError{Provider: "gemini", StatusCode: 429, Retryable: true}))
	assert.False(t, IsRetryable(&ProviderError{Provider: "gemini", StatusCode: 400}))
	assert.False(t, IsRetryable(&ConfigurationError{Pool: PoolSearch}))

	assert.True(t, RetryableStatus(503))
	assert.False(t, RetryableStatus(401))
}

func repeatWords(n int) string {
	words := make([]byte, 0, n*2)
	for i := 0; i < n; i++ {
		words = append(words, 'w', ' ')
	}
	return string(words)
}
