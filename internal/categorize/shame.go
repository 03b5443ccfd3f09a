package categorize

import (
	"math"
	"time"

	"github.com/mikey/clearbox/internal/core"
)

// scoreBand maps a minimum score to its label and description
type scoreBand struct {
	min         int
	label       string
	description string
}

// Highest qualifying threshold wins; the order here is the contract.
var scoreBands = []scoreBand{
	{90, "Clinically Unhinged", "Your inbox is a war crime. Seek professional help."},
	{75, "Email Hoarder Deluxe", "You collect unread emails like they're Pokémon."},
	{60, "Serial Ignorer", "The 'I'll read that later' type. Spoiler: you won't."},
	{45, "Casual Disaster", "Not great, not terrible. But mostly terrible."},
	{30, "Mild Mess", "You're trying, but your inbox has other plans."},
	{15, "Almost Human", "A few emails slipped through. It happens. Barely."},
	{0, "Inbox Saint", "Why are you even here? Go flex on Twitter."},
}

// CalculateShameScore derives the 0-100 hygiene metric from scan stats.
// Each factor contributes an independently capped number of points; the sum
// is clamped to [0,100]. Deterministic, so scores are comparable across scans.
func CalculateShameScore(stats core.EmailStats) core.ShameScore {
	score := 0

	// Total unread volume, up to 40 points
	switch {
	case stats.Total > 5000:
		score += 40
	case stats.Total > 2000:
		score += 32
	case stats.Total > 1000:
		score += 24
	case stats.Total > 500:
		score += 18
	case stats.Total > 100:
		score += 12
	case stats.Total > 50:
		score += 6
	}

	// Newsletter ratio, up to 20 points
	if stats.Total > 0 {
		ratio := float64(stats.Newsletters) / float64(stats.Total)
		score += int(math.Round(ratio * 20))
	}

	// Age of the oldest unread email, up to 20 points
	if oldest, ok := core.ParseEmailDate(stats.OldestDate); ok {
		daysOld := int(time.Since(oldest).Hours() / 24)
		switch {
		case daysOld > 365:
			score += 20
		case daysOld > 180:
			score += 16
		case daysOld > 90:
			score += 12
		case daysOld > 30:
			score += 8
		case daysOld > 7:
			score += 4
		}
	}

	// Social notification hoarding, up to 10 points
	switch {
	case stats.Social > 500:
		score += 10
	case stats.Social > 200:
		score += 7
	case stats.Social > 50:
		score += 4
	}

	// Receipt hoarding, up to 10 points
	switch {
	case stats.Receipts > 200:
		score += 10
	case stats.Receipts > 100:
		score += 7
	case stats.Receipts > 30:
		score += 4
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	for _, band := range scoreBands {
		if score >= band.min {
			return core.ShameScore{Score: score, Label: band.label, Description: band.description}
		}
	}

	// Unreachable: the last band has min 0
	return core.ShameScore{Score: score}
}
