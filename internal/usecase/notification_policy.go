package usecase

import (
	"time"

	"reparotec/internal/domain/entities"
)

// NeedsAttention reports whether a job has gone too long without a
// customer-facing notification. Pure function, evaluated per job per view.
//
//   - closed/cancelled jobs never need attention
//   - a job that was never notified always does
//   - otherwise the configured reminder window decides
func NeedsAttention(job entities.Job, settings entities.BillingSettings, now time.Time) bool {
	if job.Status.Terminal() {
		return false
	}
	if job.LastNotificationSent == nil {
		return true
	}
	return daysSince(*job.LastNotificationSent, now) >= settings.NotificationReminderDays
}

// QuoteReminderDue reports whether a sent quote is eligible for another
// reminder right now, per the configured cadence.
func QuoteReminderDue(q entities.Quote, settings entities.BillingSettings, now time.Time) bool {
	if q.Status != entities.QuoteStatusSent {
		return false
	}
	if !now.Before(q.ValidUntil) {
		return false
	}
	if q.ReminderCount >= settings.QuoteMaxReminders {
		return false
	}
	last := q.IssueDate
	if q.LastReminderSent != nil {
		last = *q.LastReminderSent
	}
	return daysSince(last, now) >= settings.QuoteReminderFrequencyDays
}

func daysSince(t, now time.Time) int {
	if now.Before(t) {
		return 0
	}
	return int(now.Sub(t).Hours() / 24)
}
