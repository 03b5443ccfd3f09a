package finance

import (
	"strings"
	"unicode"

	"github.com/mikey/clearbox/internal/core"
)

const defaultProvider = "Other"

const maxLabelTokens = 4

// noiseTokens are subdomains and sender-name words that carry no identity:
// "alerts.nayapay.com" and "NayaPay Alerts" must both resolve to NayaPay.
var noiseTokens = stringSet(
	"www", "mail", "email", "alert", "alerts", "notify",
	"notification", "notifications", "noreply", "no-reply", "donotreply",
	"info", "news", "update", "updates", "team", "support", "service",
)

// genericSLDParts are second-level labels that are part of the TLD for all
// practical purposes, e.g. the "co" in "hsbc.co.uk".
var genericSLDParts = stringSet("co", "com", "net", "org", "gov", "edu", "ac")

// joinWords stay lowercase inside a label unless they lead it
var joinWords = stringSet("and", "of", "the", "for")

func stringSet(values ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// normalizeToken lower-cases and strips everything non-alphanumeric, giving
// the comparable form used for overlap checks and grouping.
func normalizeToken(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// rootLabel finds the registrable root of a domain: the rightmost label that
// is neither the TLD nor a generic second-level part.
func rootLabel(domain string) string {
	normalized := strings.ToLower(strings.TrimSpace(domain))
	normalized = strings.TrimPrefix(normalized, "www.")
	if normalized == "" {
		return ""
	}

	labels := strings.Split(normalized, ".")
	if len(labels) == 1 {
		return labels[0]
	}

	for i := len(labels) - 2; i >= 0; i-- {
		if _, generic := genericSLDParts[labels[i]]; generic {
			continue
		}
		return labels[i]
	}
	return ""
}

// senderTokens extracts identity-bearing words from the From field. Display
// names are preferred; bare addresses fall back to the mailbox part.
func senderTokens(from string) []string {
	name := from
	if idx := strings.Index(name, "<"); idx >= 0 {
		name = name[:idx]
	}
	name = strings.TrimSpace(name)

	if name == "" {
		addr := strings.Trim(from, "<> \t")
		if at := strings.Index(addr, "@"); at > 0 {
			name = strings.NewReplacer(".", " ", "-", " ", "_", " ", "+", " ").Replace(addr[:at])
		}
	}

	var tokens []string
	for _, field := range strings.Fields(name) {
		norm := normalizeToken(field)
		if norm == "" {
			continue
		}
		if _, noisy := noiseTokens[norm]; noisy {
			continue
		}
		tokens = append(tokens, field)
	}
	return tokens
}

func subjectTokens(subject string) []string {
	var tokens []string
	for _, field := range strings.Fields(subject) {
		norm := normalizeToken(field)
		if norm == "" {
			continue
		}
		if _, noisy := noiseTokens[norm]; noisy {
			continue
		}
		tokens = append(tokens, field)
		if len(tokens) == maxLabelTokens {
			break
		}
	}
	return tokens
}

// formatLabel renders tokens as a human-readable provider label. Short
// alphabetic tokens are treated as acronyms ("ubl" -> "UBL"), longer ones
// are capitalized, joining words stay lowercase when not leading. Formatting
// always starts from the normalized lowercase form so that the same provider
// reached via domain and via display name yields an identical label.
func formatLabel(tokens []string) string {
	out := make([]string, 0, maxLabelTokens)
	for _, tok := range tokens {
		t := normalizeToken(tok)
		if t == "" {
			continue
		}
		if len(out) > 0 {
			if _, joining := joinWords[t]; joining {
				out = append(out, t)
				continue
			}
		}
		if len(t) <= 4 && isAlpha(t) {
			out = append(out, strings.ToUpper(t))
		} else {
			runes := []rune(t)
			out = append(out, string(unicode.ToUpper(runes[0]))+string(runes[1:]))
		}
		if len(out) == maxLabelTokens {
			break
		}
	}
	if len(out) == 0 {
		return defaultProvider
	}
	return strings.Join(out, " ")
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return len(s) > 0
}

// DetectProvider derives a short institution label for a transaction email.
// The domain root is the trusted signal; when the sender display name
// overlaps it (one contains the other after normalization), the longer and
// therefore more specific of the two wins.
func DetectProvider(email core.EmailMetadata) string {
	domainTok := rootLabel(email.FromDomain)
	nameToks := senderTokens(email.From)

	domNorm := normalizeToken(domainTok)
	nameNorm := ""
	for _, tok := range nameToks {
		nameNorm += normalizeToken(tok)
	}

	switch {
	case domNorm != "" && nameNorm != "":
		if strings.Contains(nameNorm, domNorm) || strings.Contains(domNorm, nameNorm) {
			if len(nameNorm) > len(domNorm) {
				return formatLabel(nameToks)
			}
			return formatLabel([]string{domainTok})
		}
		return formatLabel([]string{domainTok})
	case domNorm != "":
		return formatLabel([]string{domainTok})
	case nameNorm != "":
		return formatLabel(nameToks)
	}

	if toks := subjectTokens(email.Subject); len(toks) > 0 {
		return formatLabel(toks)
	}
	return defaultProvider
}
