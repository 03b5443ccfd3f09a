package finance

import (
	"testing"

	"github.com/mikey/clearbox/internal/core"
	"github.com/stretchr/testify/assert"
)

func TestDetectProvider(t *testing.T) {
	tests := []struct {
		name  string
		email core.EmailMetadata
		want  string
	}{
		{
			name:  "domain root label",
			email: core.EmailMetadata{From: "Stripe", FromDomain: "stripe.com"},
			want:  "Stripe",
		},
		{
			name:  "subdomain collapses to root",
			email: core.EmailMetadata{From: "Billing", FromDomain: "billing.nayapay.com"},
			want:  "Nayapay",
		},
		{
			name:  "generic second level is skipped",
			email: core.EmailMetadata{From: "HSBC", FromDomain: "hsbc.co.uk"},
			want:  "HSBC",
		},
		{
			name:  "short root label becomes acronym",
			email: core.EmailMetadata{From: "United Bank", FromDomain: "ubl.com.pk"},
			want:  "UBL",
		},
		{
			name:  "longer display name wins on overlap",
			email: core.EmailMetadata{From: "NayaPay Wallet", FromDomain: "nayapay.com"},
			want:  "Nayapay Wallet",
		},
		{
			name:  "noise tokens in display name are dropped",
			email: core.EmailMetadata{From: "NayaPay Alerts", FromDomain: "alerts.nayapay.com"},
			want:  "Nayapay",
		},
		{
			name:  "unrelated display name defers to domain",
			email: core.EmailMetadata{From: "Your Statement", FromDomain: "meezanbank.com"},
			want:  "Meezanbank",
		},
		{
			name:  "no domain falls back to display name",
			email: core.EmailMetadata{From: "Easypaisa"},
			want:  "Easypaisa",
		},
		{
			name:  "no domain or name falls back to subject",
			email: core.EmailMetadata{Subject: "Telenor Easypaisa statement"},
			want:  "Telenor Easypaisa Statement",
		},
		{
			name:  "nothing at all",
			email: core.EmailMetadata{},
			want:  "Other",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectProvider(tt.email))
		})
	}
}

// The same institution reached through its domain and through its display
// name must produce a single label so that summaries group correctly.
func TestDetectProviderDeduplicates(t *testing.T) {
	viaDomain := DetectProvider(core.EmailMetadata{
		From:       "Billing",
		FromDomain: "billing.nayapay.com",
	})
	viaName := DetectProvider(core.EmailMetadata{
		From: "NayaPay Alerts <no-reply@nayapay.com>",
	})
	assert.Equal(t, viaDomain, viaName)
}
