package core

// EmailMetadata is the provider-assigned view of a single unread email.
// Only headers and the snippet are ever read; bodies stay with the provider.
type EmailMetadata struct {
	ID         string `json:"id"`
	From       string `json:"from"`
	FromDomain string `json:"fromDomain"`
	Subject    string `json:"subject"`
	Date       string `json:"date"`
	Snippet    string `json:"snippet"`
}

// EmailCategory is one of the four mutually exclusive buckets
type EmailCategory string

const (
	CategoryNewsletters EmailCategory = "newsletters"
	CategorySocial      EmailCategory = "social"
	CategoryReceipts    EmailCategory = "receipts"
	CategoryOther       EmailCategory = "other"
)

// CategorizedEmails holds a scan partitioned into buckets, input order preserved
type CategorizedEmails struct {
	Newsletters []EmailMetadata `json:"newsletters"`
	Social      []EmailMetadata `json:"social"`
	Receipts    []EmailMetadata `json:"receipts"`
	Other       []EmailMetadata `json:"other"`
}

// SenderCount is a frequency-table row keyed by sender name
type SenderCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DomainCount is a frequency-table row keyed by sender domain
type DomainCount struct {
	Domain string `json:"domain"`
	Count  int    `json:"count"`
}

// PlatformCount is a social-platform breakdown row
type PlatformCount struct {
	Platform string `json:"platform"`
	Count    int    `json:"count"`
}

// EmailStats is the aggregate view of a scan, consumed by the dashboard and the roast
type EmailStats struct {
	Total             int             `json:"total"`
	Newsletters       int             `json:"newsletters"`
	Social            int             `json:"social"`
	Receipts          int             `json:"receipts"`
	Other             int             `json:"other"`
	OldestDate        string          `json:"oldestDate"`
	TopSenders        []SenderCount   `json:"topSenders"`
	TopDomains        []DomainCount   `json:"topDomains"`
	NewsletterDomains []string        `json:"newsletterDomains"`
	SocialBreakdown   []PlatformCount `json:"socialBreakdown"`
}

// ShameScore is the 0-100 inbox-hygiene metric with its label band
type ShameScore struct {
	Score       int    `json:"score"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// FinanceDirection marks money moving toward or away from the user
type FinanceDirection string

const (
	DirectionIncoming FinanceDirection = "incoming"
	DirectionOutgoing FinanceDirection = "outgoing"
)

// FinanceCurrency is an ISO 4217 code, or CurrencyOther when nothing matched
type FinanceCurrency string

// CurrencyOther is the catch-all for amounts with no recognizable currency
const CurrencyOther FinanceCurrency = "OTHER"

// FinanceTransaction is derived from one email; an email yields at most one
type FinanceTransaction struct {
	ID         string           `json:"id"`
	DateKey    string           `json:"dateKey"`
	Direction  FinanceDirection `json:"direction"`
	Amount     float64          `json:"amount"`
	Currency   FinanceCurrency  `json:"currency"`
	Provider   string           `json:"provider"`
	Subject    string           `json:"subject"`
	From       string           `json:"from"`
	FromDomain string           `json:"fromDomain"`
}

// DailyFinanceSummary aggregates transactions for one UTC calendar day
type DailyFinanceSummary struct {
	DateKey  string  `json:"dateKey"`
	Incoming float64 `json:"incoming"`
	Outgoing float64 `json:"outgoing"`
	Count    int     `json:"count"`
}

// ProviderFinanceSummary aggregates transactions for one provider label
type ProviderFinanceSummary struct {
	Provider string  `json:"provider"`
	Incoming float64 `json:"incoming"`
	Outgoing float64 `json:"outgoing"`
	Net      float64 `json:"net"`
	Count    int     `json:"count"`
}

// FinanceTotals is the fold over a whole transaction list
type FinanceTotals struct {
	IncomingTotal float64 `json:"incomingTotal"`
	OutgoingTotal float64 `json:"outgoingTotal"`
	NetTotal      float64 `json:"netTotal"`
}

// PricingPlan is the user's tier
type PricingPlan string

const (
	PlanFree PricingPlan = "free"
	PlanPro  PricingPlan = "pro"
)

// PricingUsage is the clear-quota snapshot for one identity.
// Pro accounts carry nil limits and never report limitReached.
type PricingUsage struct {
	Plan            PricingPlan `json:"plan"`
	ClearedEmails   int64       `json:"clearedEmails"`
	ClearLimit      *int64      `json:"clearLimit"`
	RemainingClears *int64      `json:"remainingClears"`
	LimitReached    bool        `json:"limitReached"`
	UpgradeURL      string      `json:"upgradeUrl,omitempty"`
}

// ScanRateUsage is the per-UTC-day scan-quota snapshot for one identity
type ScanRateUsage struct {
	ScansUsedToday      int64  `json:"scansUsedToday"`
	ScansRemainingToday int64  `json:"scansRemainingToday"`
	ScanLimitPerDay     int64  `json:"scanLimitPerDay"`
	LimitReached        bool   `json:"limitReached"`
	ResetAt             string `json:"resetAt"`
}

// ClearDecision is the allowance engine's answer to a clear request.
// A denial is a normal result the caller renders, not an error.
type ClearDecision struct {
	Allowed bool         `json:"allowed"`
	Message string       `json:"message,omitempty"`
	Usage   PricingUsage `json:"usage"`
}

// ScanDecision is the allowance engine's answer to a scan attempt
type ScanDecision struct {
	Allowed  bool          `json:"allowed"`
	Message  string        `json:"message,omitempty"`
	ScanRate ScanRateUsage `json:"scanRate"`
}

// BulkAction is a state-changing operation applied to a set of message IDs
type BulkAction string

const (
	ActionArchive  BulkAction = "archive"
	ActionMarkRead BulkAction = "markRead"
	ActionSpam     BulkAction = "spam"
	ActionTrash    BulkAction = "trash"
)

// BulkActionResult reports how many messages a bulk action touched
type BulkActionResult struct {
	Action    BulkAction `json:"action"`
	Processed int        `json:"processed"`
	Failed    int        `json:"failed"`
}

// RoastSeverity selects the tone of the generated roast
type RoastSeverity string

const (
	SeverityMild   RoastSeverity = "mild"
	SeverityMedium RoastSeverity = "medium"
	SeveritySavage RoastSeverity = "savage"
)
