package report

import (
	"strings"
	"testing"

	"github.com/bnema/careerhub/internal/application"
	"github.com/bnema/careerhub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPoolStatus(t *testing.T) {
	output, err := Pools([]application.PoolStatus{
		{Name: domain.PoolGeneration, Size: 3, Cursor: 4, NextIndex: 1},
		{Name: domain.PoolSearch, Size: 1, Cursor: 0, NextIndex: 0},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "pools: 2")
	assert.Contains(t, output, "generation (3 keys)")
	assert.Contains(t, output, "[-*-]")
	assert.Contains(t, output, "key #2, 4 draws this session")
	assert.Contains(t, output, "search (1 key)")
	assert.Contains(t, output, "[*]")
}

func TestRenderPoolStatusEmpty(t *testing.T) {
	output, err := Pools(nil)

	require.NoError(t, err)
	assert.Contains(t, output, "No key pools configured.")
}

func TestRenderProfileShowsCoreMatch(t *testing.T) {
	output, err := Profile(domain.Profile{
		ID:              "default",
		TargetRole:      "SDE",
		TargetEcosystem: "FAANG/Big Tech",
		VoiceTone:       "Witty",
		Skills:          domain.SkillMatrix{DSA: 5, OOPS: 4, DBMS: 3, OS: 2, SystemDesign: 1},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "target: SDE at FAANG/Big Tech")
	assert.Contains(t, output, "tone: Witty")
	assert.Contains(t, output, "5/5")
	assert.Contains(t, output, "1/5")
	assert.Contains(t, output, "60.0%")
	assert.NotContains(t, output, "email:")
}

func TestRenderBrandingFallsBackToRawRewrite(t *testing.T) {
	output, err := Branding(application.BrandingResult{
		Critique: "- too generic",
		Rewrite:  domain.ProfileRewrite{Raw: "A free-form rewrite"},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "- too generic")
	assert.Contains(t, output, "A free-form rewrite")
	assert.NotContains(t, output, "new headline")
}

func TestRenderBrandingSections(t *testing.T) {
	output, err := Branding(application.BrandingResult{
		Critique: "- vague",
		Rewrite:  domain.ProfileRewrite{Headline: "Backend Engineer | Go", About: "I ship services."},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "new headline")
	assert.Contains(t, output, "Backend Engineer | Go")
	assert.Contains(t, output, "I ship services.")
}

func TestRenderSkillGap(t *testing.T) {
	cluster := 2
	output, err := SkillGap(application.SkillGapResult{
		TargetJob: "SDE at Google",
		Current:   domain.SkillMatrix{DSA: 3, OOPS: 4, DBMS: 4, OS: 4, SystemDesign: 2},
		Target:    domain.SkillMatrix{DSA: 5, OOPS: 4, DBMS: 4, OS: 4, SystemDesign: 5},
		Gaps: []domain.SkillGap{
			{Category: "DSA", Shortfall: 2},
			{Category: "System Design", Shortfall: 3},
		},
		Cluster: &cluster,
		Roadmap: "Week 1: graphs",
	})

	require.NoError(t, err)
	assert.Contains(t, output, "Skill Gap: SDE at Google")
	assert.Contains(t, output, "skill cohort: #2")
	assert.Contains(t, output, "DSA: -2")
	assert.Contains(t, output, "System Design: -3")
	assert.Contains(t, output, "target 5")
	assert.Contains(t, output, "Week 1: graphs")
}

func TestRenderSkillGapWithoutGapsOrCluster(t *testing.T) {
	output, err := SkillGap(application.SkillGapResult{TargetJob: "Analyst"})

	require.NoError(t, err)
	assert.Contains(t, output, "unavailable (model offline)")
	assert.Contains(t, output, "No roadmap needed.")
	assert.NotContains(t, output, "roadmap\n")
}

func TestRenderScorecardMarksFallbackEngagement(t *testing.T) {
	output, err := Scorecard(application.ScorecardResult{
		Engagement: domain.FallbackEngagementScore,
		Clarity:    12,
		Critique:   "Needs a hook.",
	})

	require.NoError(t, err)
	assert.Contains(t, output, "50.0/100")
	assert.Contains(t, output, "[fallback]")
	assert.Contains(t, output, "12/100")
	assert.Contains(t, output, "Needs a hook.")
}

func TestRenderScorecardPredicted(t *testing.T) {
	output, err := Scorecard(application.ScorecardResult{Engagement: 81.5, EngagementPredicted: true, Clarity: 100})

	require.NoError(t, err)
	assert.Contains(t, output, "81.5/100")
	assert.NotContains(t, output, "fallback")
}

func TestRenderNetwork(t *testing.T) {
	output, err := Network(application.NetworkResult{
		Query: "site:linkedin.com/in/ SDE",
		Mentors: []domain.Mentor{
			{Name: "Ada Lovelace", Link: "https://linkedin.com/in/ada", Snippet: "Staff engineer", Pitch: "Hi Ada"},
		},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "query: site:linkedin.com/in/ SDE")
	assert.Contains(t, output, "Ada Lovelace")
	assert.Contains(t, output, "https://linkedin.com/in/ada")
	assert.Contains(t, output, "Hi Ada")
}

func TestRenderNetworkEmpty(t *testing.T) {
	output, err := Network(application.NetworkResult{Query: "q"})

	require.NoError(t, err)
	assert.Contains(t, output, "No mentors found.")
}

func TestRenderProgressBarFill(t *testing.T) {
	s := newStyles()

	assert.Equal(t, "["+strings.Repeat("=", 10)+"]", renderProgressBar(100, 10, s))
	assert.Equal(t, "["+strings.Repeat("=", 5)+strings.Repeat("-", 5)+"]", renderProgressBar(50, 10, s))
	assert.Equal(t, "["+strings.Repeat("-", 10)+"]", renderProgressBar(-20, 10, s))
	assert.Empty(t, renderProgressBar(50, 0, s))
}

func TestClampPercent(t *testing.T) {
	assert.Equal(t, 0.0, clampPercent(-1))
	assert.Equal(t, 100.0, clampPercent(140))
	assert.Equal(t, 42.0, clampPercent(42))
}

func TestRenderWrapsLongGeneratedText(t *testing.T) {
	output, err := Scorecard(application.ScorecardResult{
		Engagement: 70,
		Clarity:    90,
		Critique:   strings.Repeat("word ", 60),
	})

	require.NoError(t, err)
	for _, line := range strings.Split(output, "\n") {
		assert.LessOrEqual(t, len([]rune(line)), defaultWrapWidth+2)
	}
}
