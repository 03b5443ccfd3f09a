package finance

import (
	"sort"
	"strings"

	"github.com/mikey/clearbox/internal/core"
)

// Filter narrows a transaction list. Empty or "ALL"/"all" values leave that
// dimension unconstrained; the dimensions combine conjunctively.
type Filter struct {
	Currency  string
	Provider  string
	Direction string
}

func unconstrained(value string) bool {
	return value == "" || strings.EqualFold(value, "all")
}

// FilterTransactions returns the transactions matching every constrained
// dimension. Pure; the input list is never mutated.
func FilterTransactions(transactions []core.FinanceTransaction, filter Filter) []core.FinanceTransaction {
	result := make([]core.FinanceTransaction, 0, len(transactions))
	for _, t := range transactions {
		if !unconstrained(filter.Currency) && string(t.Currency) != filter.Currency {
			continue
		}
		if !unconstrained(filter.Provider) && t.Provider != filter.Provider {
			continue
		}
		if !unconstrained(filter.Direction) && string(t.Direction) != filter.Direction {
			continue
		}
		result = append(result, t)
	}
	return result
}

// CurrencyGroups lists distinct currencies by descending frequency, with
// ties keeping first-seen order.
func CurrencyGroups(transactions []core.FinanceTransaction) []core.FinanceCurrency {
	counts := make(map[core.FinanceCurrency]int)
	var order []core.FinanceCurrency
	for _, t := range transactions {
		if _, seen := counts[t.Currency]; !seen {
			order = append(order, t.Currency)
		}
		counts[t.Currency]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	return order
}

// ProviderGroups lists distinct providers by descending frequency, ties
// broken alphabetically so the grouping is deterministic.
func ProviderGroups(transactions []core.FinanceTransaction) []string {
	counts := make(map[string]int)
	var order []string
	for _, t := range transactions {
		if _, seen := counts[t.Provider]; !seen {
			order = append(order, t.Provider)
		}
		counts[t.Provider]++
	}
	sort.Slice(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return order[i] < order[j]
	})
	return order
}

// SummarizeByDay aggregates per UTC calendar day, most recent first.
func SummarizeByDay(transactions []core.FinanceTransaction) []core.DailyFinanceSummary {
	byDay := make(map[string]*core.DailyFinanceSummary)
	for _, t := range transactions {
		day := byDay[t.DateKey]
		if day == nil {
			day = &core.DailyFinanceSummary{DateKey: t.DateKey}
			byDay[t.DateKey] = day
		}
		if t.Direction == core.DirectionIncoming {
			day.Incoming += t.Amount
		} else {
			day.Outgoing += t.Amount
		}
		day.Count++
	}

	summaries := make([]core.DailyFinanceSummary, 0, len(byDay))
	for _, day := range byDay {
		summaries = append(summaries, *day)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].DateKey > summaries[j].DateKey
	})
	return summaries
}

// SummarizeByProvider aggregates per provider label, ordered by descending
// count then alphabetically. Net is incoming minus outgoing.
func SummarizeByProvider(transactions []core.FinanceTransaction) []core.ProviderFinanceSummary {
	byProvider := make(map[string]*core.ProviderFinanceSummary)
	for _, t := range transactions {
		p := byProvider[t.Provider]
		if p == nil {
			p = &core.ProviderFinanceSummary{Provider: t.Provider}
			byProvider[t.Provider] = p
		}
		if t.Direction == core.DirectionIncoming {
			p.Incoming += t.Amount
		} else {
			p.Outgoing += t.Amount
		}
		p.Count++
		p.Net = p.Incoming - p.Outgoing
	}

	summaries := make([]core.ProviderFinanceSummary, 0, len(byProvider))
	for _, p := range byProvider {
		summaries = append(summaries, *p)
	}
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Count != summaries[j].Count {
			return summaries[i].Count > summaries[j].Count
		}
		return summaries[i].Provider < summaries[j].Provider
	})
	return summaries
}

// Totals folds the whole list into incoming/outgoing/net sums.
func Totals(transactions []core.FinanceTransaction) core.FinanceTotals {
	var totals core.FinanceTotals
	for _, t := range transactions {
		if t.Direction == core.DirectionIncoming {
			totals.IncomingTotal += t.Amount
		} else {
			totals.OutgoingTotal += t.Amount
		}
	}
	totals.NetTotal = totals.IncomingTotal - totals.OutgoingTotal
	return totals
}
