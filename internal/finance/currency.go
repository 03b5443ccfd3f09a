package finance

import (
	"regexp"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/mikey/clearbox/internal/core"
)

// supportedCurrencies is the minimal set this product recognizes. Anything
// else resolves to OTHER; this is deliberately not a general locale library.
var supportedCurrencies = map[string]core.FinanceCurrency{
	"PKR": "PKR",
	"USD": "USD",
	"EUR": "EUR",
	"GBP": "GBP",
	"INR": "INR",
	"AED": "AED",
	"AUD": "AUD",
	"CAD": "CAD",
	"HKD": "HKD",
	"SGD": "SGD",
	"JPY": "JPY",
	"CNY": "CNY",
}

// symbolRules map currency symbols to ISO codes. Multi-character symbols
// must come before "$", otherwise "A$50" would read as USD.
var symbolRules = []struct {
	symbol string
	code   core.FinanceCurrency
}{
	{"A$", "AUD"},
	{"C$", "CAD"},
	{"HK$", "HKD"},
	{"S$", "SGD"},
	{"₨", "PKR"},
	{"₹", "INR"},
	{"€", "EUR"},
	{"£", "GBP"},
	{"¥", "JPY"},
	{"$", "USD"},
}

var (
	isoPrefixPattern = regexp.MustCompile(`(?i)\b([a-z]{3})\.?\s?\d`)
	isoSuffixPattern = regexp.MustCompile(`(?i)\d[\d,]*(?:\.\d+)?\s?([a-z]{3})\b`)
	rupeeMarker      = regexp.MustCompile(`(?i)\brs\.?`)
)

// DetectCurrency resolves the currency of an email's text. An explicit ISO
// code adjacent to a number is trusted over a symbol guess, which avoids
// mismatches like "USD 50" in a message that also mentions "$".
func DetectCurrency(text string) core.FinanceCurrency {
	for _, pattern := range []*regexp.Regexp{isoPrefixPattern, isoSuffixPattern} {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			code := strings.ToUpper(match[1])
			if cur, ok := supportedCurrencies[code]; ok {
				return cur
			}
		}
	}

	for _, rule := range symbolRules {
		if strings.Contains(text, rule.symbol) {
			return rule.code
		}
	}

	// Loose "Rs 500" / "rs." marker common in Pakistani bank alerts
	if rupeeMarker.MatchString(text) {
		return "PKR"
	}

	return core.CurrencyOther
}

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount renders an amount for display. Recognized ISO codes format
// as localized currency with the narrow symbol; everything else falls back
// to a grouped decimal. Never panics, whatever the currency value.
func FormatAmount(value float64, cur core.FinanceCurrency) string {
	unit, err := currency.ParseISO(string(cur))
	if err != nil {
		return amountPrinter.Sprintf("%v", number.Decimal(value, number.MaxFractionDigits(2)))
	}
	return amountPrinter.Sprintf("%v", currency.NarrowSymbol(unit.Amount(value)))
}
