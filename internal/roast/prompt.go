// Package roast builds the prompt shared by every roast-generator adapter.
package roast

import (
	"fmt"
	"strings"
	"time"

	"github.com/mikey/clearbox/internal/core"
)

// SeverityConfig tunes generation per severity tier
type SeverityConfig struct {
	Temperature float32
	ToneGuide   string
}

var severityConfigs = map[core.RoastSeverity]SeverityConfig{
	core.SeverityMild: {
		Temperature: 0.7,
		ToneGuide:   "Be gently teasing and encouraging. Think friendly coworker ribbing. Light humor, mostly supportive.",
	},
	core.SeverityMedium: {
		Temperature: 0.8,
		ToneGuide:   "Be witty and pointed but not cruel. Think best friend roast at a dinner party. Clever observations that sting a bit but make everyone laugh.",
	},
	core.SeveritySavage: {
		Temperature: 0.95,
		ToneGuide:   "Be brutally honest and hilariously savage. Think Comedy Central roast. Pull no punches. Make it so devastating they have to share it. Use creative metaphors and exaggerated comparisons.",
	},
}

// ConfigFor returns the generation settings for a severity, defaulting to medium
func ConfigFor(severity core.RoastSeverity) SeverityConfig {
	if cfg, ok := severityConfigs[severity]; ok {
		return cfg
	}
	return severityConfigs[core.SeverityMedium]
}

// BuildPrompt renders the roast prompt from scan statistics. The numbers are
// inlined so the model roasts this inbox rather than a generic one.
func BuildPrompt(stats core.EmailStats, severity core.RoastSeverity) string {
	cfg := ConfigFor(severity)

	daysOld := 0
	if oldest, ok := core.ParseEmailDate(stats.OldestDate); ok {
		daysOld = int(time.Since(oldest).Hours() / 24)
	}

	socialDetails := make([]string, 0, len(stats.SocialBreakdown))
	for _, p := range stats.SocialBreakdown {
		socialDetails = append(socialDetails, fmt.Sprintf("%s: %d", p.Platform, p.Count))
	}
	socialText := strings.Join(socialDetails, ", ")
	if socialText == "" {
		socialText = "various platforms"
	}

	nlDomains := strings.Join(stats.NewsletterDomains, ", ")
	if nlDomains == "" {
		nlDomains = "various"
	}

	topSenders := make([]string, 0, len(stats.TopSenders))
	for _, s := range stats.TopSenders {
		topSenders = append(topSenders, fmt.Sprintf("%s (%d)", s.Name, s.Count))
	}

	wordTarget := "100"
	closingNote := "genuinely encouraging note"
	if severity == core.SeveritySavage {
		wordTarget = "120"
		closingNote = "backhanded compliment"
	}

	ageText := "weeks"
	if daysOld > 365 {
		ageText = "over a year"
	} else if daysOld > 30 {
		ageText = "months"
	}

	return fmt.Sprintf(`You are a witty AI that roasts people's email habits. %s

Here are this person's email stats:
- Total unread emails: %d
- Newsletters they'll never read: %d (top domains: %s)
- Social media notifications: %d (%s)
- Receipts & orders: %d
- Other/personal: %d
- Oldest unread email: %d days ago
- Top senders: %s

Write a %s-word roast that:
1. Opens with a devastating zinger about the total count
2. Makes fun of specific patterns you see (newsletters they'll never read, social media they're ignoring, shopping habits)
3. References the oldest email date for comedic effect (%d days is %s)
4. Ends on a %s ("but we got you" energy)

Rules:
- Be specific to THEIR numbers. Generic roasts are boring.
- Make it shareable. They should want to screenshot this.
- No markdown formatting, just plain text, 3-4 short paragraphs.
- Don't use the word "roast" in the roast itself.
- Don't start with "Oh" or "So" or "Well".`,
		cfg.ToneGuide,
		stats.Total,
		stats.Newsletters, nlDomains,
		stats.Social, socialText,
		stats.Receipts,
		stats.Other,
		daysOld,
		strings.Join(topSenders, ", "),
		wordTarget,
		daysOld, ageText,
		closingNote,
	)
}
