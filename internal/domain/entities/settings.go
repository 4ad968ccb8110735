package entities

// BillingSettings is the shop configuration read at call time by the
// lifecycle policies. There is no caching contract: every operation asks the
// settings provider again.

type BillingSettings struct {
	TaxRate                    float64
	NotificationReminderDays   int
	QuoteValidDays             int
	QuoteReminderFrequencyDays int
	QuoteMaxReminders          int
}
