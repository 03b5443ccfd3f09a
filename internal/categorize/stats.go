package categorize

import (
	"sort"
	"strings"
	"time"

	"github.com/mikey/clearbox/internal/core"
)

const (
	topSendersCap        = 5
	topDomainsCap        = 5
	newsletterDomainsCap = 3
)

// frequencyTable counts keys while remembering first-seen order, so that
// count ties rank in scan order instead of map-iteration order.
type frequencyTable struct {
	counts map[string]int
	order  []string
}

func newFrequencyTable() *frequencyTable {
	return &frequencyTable{counts: make(map[string]int)}
}

func (t *frequencyTable) add(key string) {
	if _, seen := t.counts[key]; !seen {
		t.order = append(t.order, key)
	}
	t.counts[key]++
}

// ranked returns keys sorted by count descending, first-seen order on ties,
// truncated to limit. limit <= 0 means no cap.
func (t *frequencyTable) ranked(limit int) []string {
	keys := make([]string, len(t.order))
	copy(keys, t.order)
	sort.SliceStable(keys, func(i, j int) bool {
		return t.counts[keys[i]] > t.counts[keys[j]]
	})
	if limit > 0 && len(keys) > limit {
		keys = keys[:limit]
	}
	return keys
}

// GenerateStats derives the aggregate view of a scan. It is a pure function
// of the emails and their categorization; unparseable dates are excluded from
// the oldest-email calculation rather than treated as zero.
func GenerateStats(emails []core.EmailMetadata, categorized core.CategorizedEmails) core.EmailStats {
	var oldest time.Time
	var haveOldest bool
	for _, email := range emails {
		t, ok := core.ParseEmailDate(email.Date)
		if !ok {
			continue
		}
		if !haveOldest || t.Before(oldest) {
			oldest = t
			haveOldest = true
		}
	}

	oldestDate := ""
	if haveOldest {
		oldestDate = oldest.UTC().Format(time.RFC3339)
	}

	senders := newFrequencyTable()
	domains := newFrequencyTable()
	for _, email := range emails {
		senders.add(email.From)
		if email.FromDomain != "" {
			domains.add(email.FromDomain)
		}
	}

	topSenders := make([]core.SenderCount, 0, topSendersCap)
	for _, name := range senders.ranked(topSendersCap) {
		topSenders = append(topSenders, core.SenderCount{Name: name, Count: senders.counts[name]})
	}

	topDomains := make([]core.DomainCount, 0, topDomainsCap)
	for _, domain := range domains.ranked(topDomainsCap) {
		topDomains = append(topDomains, core.DomainCount{Domain: domain, Count: domains.counts[domain]})
	}

	nlDomains := newFrequencyTable()
	for _, email := range categorized.Newsletters {
		nlDomains.add(email.FromDomain)
	}

	platforms := newFrequencyTable()
	for _, email := range categorized.Social {
		platforms.add(socialPlatform(email.FromDomain))
	}
	breakdown := make([]core.PlatformCount, 0, len(platforms.order))
	for _, platform := range platforms.ranked(0) {
		breakdown = append(breakdown, core.PlatformCount{Platform: platform, Count: platforms.counts[platform]})
	}

	return core.EmailStats{
		Total:             len(emails),
		Newsletters:       len(categorized.Newsletters),
		Social:            len(categorized.Social),
		Receipts:          len(categorized.Receipts),
		Other:             len(categorized.Other),
		OldestDate:        oldestDate,
		TopSenders:        topSenders,
		TopDomains:        topDomains,
		NewsletterDomains: nlDomains.ranked(newsletterDomainsCap),
		SocialBreakdown:   breakdown,
	}
}

func socialPlatform(domain string) string {
	for _, rule := range socialPlatformRules {
		if strings.Contains(domain, rule.keyword) {
			return rule.platform
		}
	}
	return "Other"
}
