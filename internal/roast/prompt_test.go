package roast

import (
	"strconv"
	"testing"

	"github.com/mikey/clearbox/internal/core"
	"github.com/stretchr/testify/assert"
)

func TestConfigFor(t *testing.T) {
	assert.InDelta(t, 0.7, float64(ConfigFor(core.SeverityMild).Temperature), 0.001)
	assert.InDelta(t, 0.8, float64(ConfigFor(core.SeverityMedium).Temperature), 0.001)
	assert.InDelta(t, 0.95, float64(ConfigFor(core.SeveritySavage).Temperature), 0.001)

	// Unknown severities get the medium settings
	assert.Equal(t, ConfigFor(core.SeverityMedium), ConfigFor(core.RoastSeverity("nuclear")))
}

func TestBuildPromptInlinesStats(t *testing.T) {
	stats := core.EmailStats{
		Total:             4321,
		Newsletters:       1200,
		Social:            300,
		Receipts:          150,
		Other:             2671,
		NewsletterDomains: []string{"substack.com", "beehiiv.com"},
		SocialBreakdown:   []core.PlatformCount{{Platform: "LinkedIn", Count: 250}},
		TopSenders:        []core.SenderCount{{Name: "LinkedIn", Count: 250}},
	}

	prompt := BuildPrompt(stats, core.SeverityMedium)

	for _, want := range []string{
		strconv.Itoa(stats.Total),
		strconv.Itoa(stats.Newsletters),
		"substack.com",
		"LinkedIn: 250",
	} {
		assert.Contains(t, prompt, want)
	}
}

func TestBuildPromptHandlesEmptyStats(t *testing.T) {
	prompt := BuildPrompt(core.EmailStats{}, core.SeveritySavage)
	assert.Contains(t, prompt, "various platforms")
	assert.Contains(t, prompt, "backhanded compliment")
	assert.NotContains(t, prompt, "%!")
}
