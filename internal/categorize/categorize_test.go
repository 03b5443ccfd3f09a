package categorize

import (
	"testing"

	"github.com/mikey/clearbox/internal/core"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		email core.EmailMetadata
		want  core.EmailCategory
	}{
		{
			name:  "social domain",
			email: core.EmailMetadata{From: "LinkedIn", FromDomain: "linkedin.com", Subject: "Jobs for you"},
			want:  core.CategorySocial,
		},
		{
			name:  "social subdomain matches parent",
			email: core.EmailMetadata{From: "LinkedIn", FromDomain: "news.linkedin.com", Subject: "Jobs for you"},
			want:  core.CategorySocial,
		},
		{
			name:  "receipt domain",
			email: core.EmailMetadata{From: "Amazon", FromDomain: "amazon.com", Subject: "Hello"},
			want:  core.CategoryReceipts,
		},
		{
			name:  "newsletter domain",
			email: core.EmailMetadata{From: "Some Writer", FromDomain: "substack.com", Subject: "A post"},
			want:  core.CategoryNewsletters,
		},
		{
			name:  "social domain beats newsletter subject",
			email: core.EmailMetadata{From: "LinkedIn", FromDomain: "linkedin.com", Subject: "Your weekly digest"},
			want:  core.CategorySocial,
		},
		{
			name:  "receipt domain beats social subject",
			email: core.EmailMetadata{From: "Amazon", FromDomain: "amazon.com", Subject: "Someone liked your review"},
			want:  core.CategoryReceipts,
		},
		{
			name:  "social subject on unknown domain",
			email: core.EmailMetadata{From: "Forum", FromDomain: "example.org", Subject: "Alice mentioned you in a thread"},
			want:  core.CategorySocial,
		},
		{
			name:  "receipt subject on unknown domain",
			email: core.EmailMetadata{From: "Shop", FromDomain: "example.org", Subject: "Your order confirmation"},
			want:  core.CategoryReceipts,
		},
		{
			name:  "receipt subject beats newsletter subject",
			email: core.EmailMetadata{From: "Shop", FromDomain: "example.org", Subject: "Weekly invoice summary"},
			want:  core.CategoryReceipts,
		},
		{
			name:  "newsletter subject on unknown domain",
			email: core.EmailMetadata{From: "Someone", FromDomain: "example.org", Subject: "Click unsubscribe to stop"},
			want:  core.CategoryNewsletters,
		},
		{
			name:  "newsletter sender pattern as last resort",
			email: core.EmailMetadata{From: "noreply@example.org", FromDomain: "example.org", Subject: "Hello there"},
			want:  core.CategoryNewsletters,
		},
		{
			name:  "personal mail is other",
			email: core.EmailMetadata{From: "Alice Smith", FromDomain: "example.org", Subject: "Lunch tomorrow?"},
			want:  core.CategoryOther,
		},
		{
			name:  "empty email is other",
			email: core.EmailMetadata{},
			want:  core.CategoryOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.email))
		})
	}
}

func TestCategorizeEmailsPartition(t *testing.T) {
	emails := []core.EmailMetadata{
		{ID: "1", From: "LinkedIn", FromDomain: "linkedin.com", Subject: "New connection"},
		{ID: "2", From: "Amazon", FromDomain: "amazon.com", Subject: "Order shipped"},
		{ID: "3", From: "Writer", FromDomain: "substack.com", Subject: "New post"},
		{ID: "4", From: "Alice", FromDomain: "example.org", Subject: "Hi"},
		{ID: "5", From: "GitHub", FromDomain: "github.com", Subject: "PR review"},
	}

	result := CategorizeEmails(emails)

	total := len(result.Newsletters) + len(result.Social) + len(result.Receipts) + len(result.Other)
	assert.Equal(t, len(emails), total, "every email lands in exactly one bucket")

	// Input order is preserved within each bucket
	assert.Equal(t, "1", result.Social[0].ID)
	assert.Equal(t, "5", result.Social[1].ID)
	assert.Equal(t, "2", result.Receipts[0].ID)
	assert.Equal(t, "3", result.Newsletters[0].ID)
	assert.Equal(t, "4", result.Other[0].ID)
}

func TestCategorizeEmailsEmpty(t *testing.T) {
	result := CategorizeEmails(nil)
	assert.Empty(t, result.Newsletters)
	assert.Empty(t, result.Social)
	assert.Empty(t, result.Receipts)
	assert.Empty(t, result.Other)
}
