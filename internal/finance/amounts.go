package finance

import (
	"regexp"
	"strconv"
	"strings"
)

// amountPattern matches numeric tokens with optional currency symbol/code
// prefixes, thousands separators and up to two decimals. The capture group
// is the bare number.
var amountPattern = regexp.MustCompile(
	`(?i)(?:₨|₹|€|£|A\$|C\$|HK\$|S\$|\$|pkr|usd|eur|gbp|inr|aed|aud|cad|hkd|sgd|jpy|cny|rs\.?)?\s?(\d{1,3}(?:,\d{3})*(?:\.\d{1,2})?|\d+(?:\.\d{1,2})?)`)

// ExtractLargestAmount scans text for monetary figures and returns the
// largest positive one. In a transactional email the largest figure is
// almost always the total, dominating line items and fees.
//
// There is no upper-bound sanity check, so a stray large number (an order
// ID, say) can masquerade as an amount. Known false-positive source; kept
// as-is pending a confidence flag.
func ExtractLargestAmount(text string) (float64, bool) {
	matches := amountPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return 0, false
	}

	best := 0.0
	found := false
	for _, match := range matches {
		raw := strings.ReplaceAll(match[1], ",", "")
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil || value <= 0 {
			continue
		}
		if !found || value > best {
			best = value
			found = true
		}
	}
	return best, found
}
