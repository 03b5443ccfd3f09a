package finance

import (
	"testing"

	"github.com/mikey/clearbox/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTransactions() []core.FinanceTransaction {
	return []core.FinanceTransaction{
		{ID: "1", DateKey: "2023-01-04", Direction: core.DirectionIncoming, Amount: 250, Currency: "USD", Provider: "Stripe"},
		{ID: "2", DateKey: "2023-01-04", Direction: core.DirectionOutgoing, Amount: 40, Currency: "USD", Provider: "Amazon"},
		{ID: "3", DateKey: "2023-01-03", Direction: core.DirectionOutgoing, Amount: 1500, Currency: "PKR", Provider: "Nayapay"},
		{ID: "4", DateKey: "2023-01-03", Direction: core.DirectionOutgoing, Amount: 500, Currency: "PKR", Provider: "Nayapay"},
		{ID: "5", DateKey: "2023-01-02", Direction: core.DirectionIncoming, Amount: 100, Currency: "USD", Provider: "Stripe"},
	}
}

func TestFilterTransactions(t *testing.T) {
	txns := sampleTransactions()

	usd := FilterTransactions(txns, Filter{Currency: "USD"})
	assert.Len(t, usd, 3)

	// Sentinel values leave the dimension unconstrained
	all := FilterTransactions(txns, Filter{Currency: "all", Provider: "ALL", Direction: ""})
	assert.Len(t, all, len(txns))

	incoming := FilterTransactions(txns, Filter{Direction: "incoming"})
	assert.Len(t, incoming, 2)

	combined := FilterTransactions(txns, Filter{Currency: "USD", Provider: "Stripe", Direction: "incoming"})
	assert.Len(t, combined, 2)

	none := FilterTransactions(txns, Filter{Provider: "Unknown"})
	assert.Empty(t, none)
}

func TestCurrencyGroups(t *testing.T) {
	groups := CurrencyGroups(sampleTransactions())
	// USD appears three times, PKR twice
	assert.Equal(t, []core.FinanceCurrency{"USD", "PKR"}, groups)
}

func TestProviderGroups(t *testing.T) {
	groups := ProviderGroups(sampleTransactions())
	require.Len(t, groups, 3)
	// Stripe and Nayapay both have two; the tie breaks alphabetically
	assert.Equal(t, "Nayapay", groups[0])
	assert.Equal(t, "Stripe", groups[1])
	assert.Equal(t, "Amazon", groups[2])
}

func TestSummarizeByDay(t *testing.T) {
	days := SummarizeByDay(sampleTransactions())
	require.Len(t, days, 3)

	// Most recent day first
	assert.Equal(t, "2023-01-04", days[0].DateKey)
	assert.InDelta(t, 250.0, days[0].Incoming, 0.001)
	assert.InDelta(t, 40.0, days[0].Outgoing, 0.001)
	assert.Equal(t, 2, days[0].Count)

	assert.Equal(t, "2023-01-03", days[1].DateKey)
	assert.InDelta(t, 2000.0, days[1].Outgoing, 0.001)

	assert.Equal(t, "2023-01-02", days[2].DateKey)
	assert.InDelta(t, 100.0, days[2].Incoming, 0.001)
}

func TestSummarizeByProvider(t *testing.T) {
	providers := SummarizeByProvider(sampleTransactions())
	require.Len(t, providers, 3)

	// Count descending, alphabetical on ties
	assert.Equal(t, "Nayapay", providers[0].Provider)
	assert.Equal(t, "Stripe", providers[1].Provider)
	assert.Equal(t, "Amazon", providers[2].Provider)

	assert.InDelta(t, -2000.0, providers[0].Net, 0.001)
	assert.InDelta(t, 350.0, providers[1].Net, 0.001)
	assert.InDelta(t, -40.0, providers[2].Net, 0.001)
}

// The grand totals must agree with the per-provider breakdown, whatever the
// transaction mix.
func TestTotalsMatchProviderBreakdown(t *testing.T) {
	txns := sampleTransactions()
	totals := Totals(txns)

	var in, out float64
	for _, p := range SummarizeByProvider(txns) {
		in += p.Incoming
		out += p.Outgoing
	}

	assert.InDelta(t, in, totals.IncomingTotal, 0.001)
	assert.InDelta(t, out, totals.OutgoingTotal, 0.001)
	assert.InDelta(t, totals.IncomingTotal-totals.OutgoingTotal, totals.NetTotal, 0.001)
}

func TestTotalsEmpty(t *testing.T) {
	totals := Totals(nil)
	assert.Zero(t, totals.IncomingTotal)
	assert.Zero(t, totals.OutgoingTotal)
	assert.Zero(t, totals.NetTotal)
}
