package finance

import (
	"testing"

	"github.com/mikey/clearbox/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLargestAmount(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  float64
		found bool
	}{
		{
			name:  "largest of several amounts wins",
			text:  "Invoice total $1,204.50, previous balance $12.00",
			want:  1204.50,
			found: true,
		},
		{
			name:  "plain number",
			text:  "You spent 42.75 today",
			want:  42.75,
			found: true,
		},
		{
			name:  "thousands separators",
			text:  "PKR 25,000 was debited",
			want:  25000,
			found: true,
		},
		{
			name:  "no amount",
			text:  "See you at lunch",
			found: false,
		},
		{
			name:  "empty text",
			text:  "",
			found: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ExtractLargestAmount(tt.text)
			assert.Equal(t, tt.found, found)
			if tt.found {
				assert.InDelta(t, tt.want, got, 0.001)
			}
		})
	}
}

func TestDetectCurrency(t *testing.T) {
	tests := []struct {
		name string
		text string
		want core.FinanceCurrency
	}{
		{"iso prefix", "USD 50 was charged", "USD"},
		{"iso prefix with dot", "PKR. 500 debited", "PKR"},
		{"iso suffix", "You paid 120 EUR", "EUR"},
		{"iso code beats dollar symbol", "USD 50 charged to your $ account", "USD"},
		{"aud before dollar", "A$20 charged", "AUD"},
		{"hkd before dollar", "HK$99 charged", "HKD"},
		{"sgd before dollar", "S$15 charged", "SGD"},
		{"plain dollar", "$9.99 receipt", "USD"},
		{"euro symbol", "Total €45", "EUR"},
		{"pound symbol", "You spent £12", "GBP"},
		{"rupee symbol", "₹2,500 debited", "INR"},
		{"rs marker", "Rs. 1,500 debited from your account", "PKR"},
		{"lowercase rs marker", "rs 300 sent", "PKR"},
		{"unsupported iso falls through", "Paid 50 XYZ", core.CurrencyOther},
		{"nothing", "hello world", core.CurrencyOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectCurrency(tt.text))
		})
	}
}

func TestFormatAmountNeverPanics(t *testing.T) {
	assert.NotEmpty(t, FormatAmount(1204.50, "USD"))
	assert.NotEmpty(t, FormatAmount(500, "PKR"))
	assert.NotEmpty(t, FormatAmount(42.123, core.CurrencyOther))
	assert.NotEmpty(t, FormatAmount(0, ""))
	assert.NotEmpty(t, FormatAmount(-15.5, "EUR"))
}

func TestInferDirection(t *testing.T) {
	assert.Equal(t, core.DirectionIncoming, inferDirection("your refund of 50 has been processed"))
	assert.Equal(t, core.DirectionIncoming, inferDirection("salary credited"))
	assert.Equal(t, core.DirectionOutgoing, inferDirection("you were charged 50"))
	// No hint at all defaults to outgoing
	assert.Equal(t, core.DirectionOutgoing, inferDirection("50 something happened"))
}

func TestExtractTransactions(t *testing.T) {
	emails := []core.EmailMetadata{
		{
			ID:         "1",
			From:       "NayaPay Alerts",
			FromDomain: "nayapay.com",
			Subject:    "Rs. 1,500 debited from your wallet",
			Date:       "Mon, 02 Jan 2023 15:04:05 +0000",
		},
		{
			ID:         "2",
			From:       "Alice",
			FromDomain: "example.org",
			Subject:    "Lunch tomorrow?",
			Date:       "Tue, 03 Jan 2023 10:00:00 +0000",
		},
		{
			ID:         "3",
			From:       "Stripe",
			FromDomain: "stripe.com",
			Subject:    "Payment received",
			Snippet:    "You received a payment of $250.00",
			Date:       "Wed, 04 Jan 2023 10:00:00 +0000",
		},
	}

	transactions := ExtractTransactions(emails)
	require.Len(t, transactions, 2)

	// Sorted most recent day first
	assert.Equal(t, "3", transactions[0].ID)
	assert.Equal(t, "2023-01-04", transactions[0].DateKey)
	assert.Equal(t, core.DirectionIncoming, transactions[0].Direction)
	assert.Equal(t, core.FinanceCurrency("USD"), transactions[0].Currency)
	assert.InDelta(t, 250.0, transactions[0].Amount, 0.001)

	assert.Equal(t, "1", transactions[1].ID)
	assert.Equal(t, core.DirectionOutgoing, transactions[1].Direction)
	assert.Equal(t, core.FinanceCurrency("PKR"), transactions[1].Currency)
	assert.InDelta(t, 1500.0, transactions[1].Amount, 0.001)
}

func TestExtractTransactionsGate(t *testing.T) {
	// A small amount with no finance keyword is not a transaction
	noHint := []core.EmailMetadata{
		{ID: "1", From: "App", FromDomain: "example.org", Subject: "Version 0.50 released"},
	}
	assert.Empty(t, ExtractTransactions(noHint))

	// The same small amount with a finance keyword is kept
	withHint := []core.EmailMetadata{
		{ID: "1", From: "Bank", FromDomain: "example.org", Subject: "0.50 debited from your account"},
	}
	assert.Len(t, ExtractTransactions(withHint), 1)

	// A whole-unit amount passes even without a keyword
	wholeUnit := []core.EmailMetadata{
		{ID: "1", From: "App", FromDomain: "example.org", Subject: "You hit 5 streaks this week"},
	}
	assert.Len(t, ExtractTransactions(wholeUnit), 1)
}
