package categorize

import (
	"fmt"
	"testing"
	"time"

	"github.com/mikey/clearbox/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateStatsCounts(t *testing.T) {
	emails := []core.EmailMetadata{
		{ID: "1", From: "LinkedIn", FromDomain: "linkedin.com", Subject: "Connections", Date: "Mon, 02 Jan 2023 15:04:05 -0700"},
		{ID: "2", From: "Amazon", FromDomain: "amazon.com", Subject: "Your order", Date: "Tue, 03 Jan 2023 10:00:00 -0700"},
		{ID: "3", From: "Writer", FromDomain: "substack.com", Subject: "A post", Date: "not a date"},
		{ID: "4", From: "Alice", FromDomain: "example.org", Subject: "Hi", Date: ""},
	}
	categorized := CategorizeEmails(emails)

	stats := GenerateStats(emails, categorized)

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 1, stats.Newsletters)
	assert.Equal(t, 1, stats.Social)
	assert.Equal(t, 1, stats.Receipts)
	assert.Equal(t, 1, stats.Other)

	// Oldest comes from the parseable dates only
	oldest, err := time.Parse(time.RFC3339, stats.OldestDate)
	require.NoError(t, err)
	assert.Equal(t, 2023, oldest.Year())
	assert.Equal(t, time.January, oldest.Month())
	assert.Equal(t, 2, oldest.Day())
}

func TestGenerateStatsNoParseableDates(t *testing.T) {
	emails := []core.EmailMetadata{
		{ID: "1", From: "Alice", FromDomain: "example.org", Date: "garbage"},
		{ID: "2", From: "Bob", FromDomain: "example.org", Date: ""},
	}
	stats := GenerateStats(emails, CategorizeEmails(emails))
	assert.Equal(t, "", stats.OldestDate)
}

func TestGenerateStatsTopSendersCapAndOrder(t *testing.T) {
	var emails []core.EmailMetadata
	// Seven senders: sender-0 appears 8 times, sender-1 seven times, etc.
	for i := 0; i < 7; i++ {
		for j := 0; j <= 7-i; j++ {
			emails = append(emails, core.EmailMetadata{
				From:       fmt.Sprintf("sender-%d", i),
				FromDomain: fmt.Sprintf("domain-%d.com", i),
			})
		}
	}

	stats := GenerateStats(emails, CategorizeEmails(emails))

	require.Len(t, stats.TopSenders, 5)
	assert.Equal(t, "sender-0", stats.TopSenders[0].Name)
	assert.Equal(t, 8, stats.TopSenders[0].Count)
	assert.Equal(t, "sender-4", stats.TopSenders[4].Name)
	require.Len(t, stats.TopDomains, 5)
	assert.Equal(t, "domain-0.com", stats.TopDomains[0].Domain)
}

func TestGenerateStatsTieBreakIsFirstSeen(t *testing.T) {
	emails := []core.EmailMetadata{
		{From: "zeta", FromDomain: "zeta.com"},
		{From: "alpha", FromDomain: "alpha.com"},
	}
	stats := GenerateStats(emails, CategorizeEmails(emails))

	// Both have count 1; scan order wins, not alphabetical order
	require.Len(t, stats.TopSenders, 2)
	assert.Equal(t, "zeta", stats.TopSenders[0].Name)
	assert.Equal(t, "alpha", stats.TopSenders[1].Name)
}

func TestGenerateStatsSocialBreakdown(t *testing.T) {
	emails := []core.EmailMetadata{
		{From: "LinkedIn", FromDomain: "linkedin.com"},
		{From: "LinkedIn", FromDomain: "news.linkedin.com"},
		{From: "GitHub", FromDomain: "github.com"},
		{From: "Slack", FromDomain: "slack.com"},
	}
	stats := GenerateStats(emails, CategorizeEmails(emails))

	require.NotEmpty(t, stats.SocialBreakdown)
	assert.Equal(t, "LinkedIn", stats.SocialBreakdown[0].Platform)
	assert.Equal(t, 2, stats.SocialBreakdown[0].Count)

	platforms := make(map[string]int)
	for _, p := range stats.SocialBreakdown {
		platforms[p.Platform] = p.Count
	}
	assert.Equal(t, 1, platforms["GitHub"])
	// Domains with no platform rule group under Other
	assert.Equal(t, 1, platforms["Other"])
}

func TestGenerateStatsNewsletterDomainsCap(t *testing.T) {
	emails := []core.EmailMetadata{
		{From: "a", FromDomain: "substack.com"},
		{From: "b", FromDomain: "beehiiv.com"},
		{From: "c", FromDomain: "mailchimp.com"},
		{From: "d", FromDomain: "klaviyo.com"},
	}
	stats := GenerateStats(emails, CategorizeEmails(emails))
	assert.Len(t, stats.NewsletterDomains, 3)
}
