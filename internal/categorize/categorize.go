// Package categorize buckets unread-email metadata into newsletters, social,
// receipts and other, and derives aggregate statistics and the shame score.
package categorize

import (
	"regexp"
	"strings"

	"github.com/mikey/clearbox/internal/core"
)

// matchesDomain reports whether the domain, or its registrable parent
// (e.g. "mail.linkedin.com" -> "linkedin.com"), is in the set.
func matchesDomain(domain string, set map[string]struct{}) bool {
	if _, ok := set[domain]; ok {
		return true
	}
	parts := strings.Split(domain, ".")
	if len(parts) > 2 {
		parent := strings.Join(parts[len(parts)-2:], ".")
		_, ok := set[parent]
		return ok
	}
	return false
}

func matchesAny(text string, patterns []*regexp.Regexp) bool {
	for _, p := range patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// Classify assigns an email to exactly one category. Rules run in a fixed
// precedence order and the first match wins; there is no scoring.
func Classify(email core.EmailMetadata) core.EmailCategory {
	if matchesDomain(email.FromDomain, socialDomains) {
		return core.CategorySocial
	}
	if matchesDomain(email.FromDomain, receiptDomains) {
		return core.CategoryReceipts
	}
	if matchesDomain(email.FromDomain, newsletterDomains) {
		return core.CategoryNewsletters
	}

	if matchesAny(email.Subject, socialSubjectPatterns) {
		return core.CategorySocial
	}
	if matchesAny(email.Subject, receiptSubjectPatterns) {
		return core.CategoryReceipts
	}
	if matchesAny(email.Subject, newsletterSubjectPatterns) {
		return core.CategoryNewsletters
	}

	if matchesAny(email.From, newsletterSenderPatterns) {
		return core.CategoryNewsletters
	}

	return core.CategoryOther
}

// CategorizeEmails partitions a scan into the four buckets. Every input email
// lands in exactly one bucket and input order is preserved per bucket.
func CategorizeEmails(emails []core.EmailMetadata) core.CategorizedEmails {
	var result core.CategorizedEmails
	for _, email := range emails {
		switch Classify(email) {
		case core.CategoryNewsletters:
			result.Newsletters = append(result.Newsletters, email)
		case core.CategorySocial:
			result.Social = append(result.Social, email)
		case core.CategoryReceipts:
			result.Receipts = append(result.Receipts, email)
		default:
			result.Other = append(result.Other, email)
		}
	}
	return result
}
