// Package finance infers transactions from unread-email subject and snippet
// text: amount, currency, direction and provider, plus the grouping and
// aggregation the finance dashboard renders. Everything here is heuristic by
// design and recomputed in full on every call; nothing is persisted.
package finance

import (
	"sort"
	"strings"
	"time"

	"github.com/mikey/clearbox/internal/core"
)

// incomingHints and outgoingHints drive direction inference; first list to
// match wins, and emails matching neither default to outgoing since most
// financial notifications confirm spending.
var incomingHints = []string{
	"refund",
	"credited",
	"payment received",
	"deposit",
	"cashback",
	"payout",
	"income",
	"salary",
	"received",
	"transfer in",
	"amount added",
}

var outgoingHints = []string{
	"charged",
	"payment due",
	"invoice",
	"order",
	"subscription",
	"debited",
	"receipt",
	"purchase",
	"spent",
	"pay now",
	"renewed",
	"bill",
	"transfer sent",
	"withdrawal",
	"deducted",
}

// financeHints gate transaction creation so that a lone number in an
// unrelated email doesn't become a transaction.
var financeHints = buildFinanceHints()

func buildFinanceHints() []string {
	hints := make([]string, 0, len(incomingHints)+len(outgoingHints)+16)
	hints = append(hints, incomingHints...)
	hints = append(hints, outgoingHints...)
	hints = append(hints,
		"usd", "dollar", "pkr", "rs", "eur", "gbp", "inr", "aed",
		"balance", "total", "amount", "bank", "wallet", "transaction",
	)
	return hints
}

func containsAny(haystack string, hints []string) bool {
	for _, hint := range hints {
		if strings.Contains(haystack, hint) {
			return true
		}
	}
	return false
}

func inferDirection(haystack string) core.FinanceDirection {
	if containsAny(haystack, incomingHints) {
		return core.DirectionIncoming
	}
	return core.DirectionOutgoing
}

// isLikelyFinanceEmail keeps emails that carry a finance keyword, or whose
// amount is at least one whole unit of currency.
func isLikelyFinanceEmail(haystack string, amount float64, found bool) bool {
	if !found {
		return false
	}
	if containsAny(haystack, financeHints) {
		return true
	}
	return amount >= 1
}

func transactionDateKey(raw string) string {
	if t, ok := core.ParseEmailDate(raw); ok {
		return core.DateKey(t)
	}
	return core.DateKey(time.Now())
}

// ExtractTransactions derives at most one transaction per email. The result
// is sorted most recent day first; within a day, input order is kept.
func ExtractTransactions(emails []core.EmailMetadata) []core.FinanceTransaction {
	var transactions []core.FinanceTransaction

	for _, email := range emails {
		text := email.Subject + " " + email.Snippet
		haystack := strings.ToLower(text)

		amount, found := ExtractLargestAmount(text)
		if !isLikelyFinanceEmail(haystack, amount, found) {
			continue
		}

		transactions = append(transactions, core.FinanceTransaction{
			ID:         email.ID,
			DateKey:    transactionDateKey(email.Date),
			Direction:  inferDirection(haystack),
			Amount:     amount,
			Currency:   DetectCurrency(text),
			Provider:   DetectProvider(email),
			Subject:    email.Subject,
			From:       email.From,
			FromDomain: email.FromDomain,
		})
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].DateKey > transactions[j].DateKey
	})
	return transactions
}
