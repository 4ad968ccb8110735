package usecase

import (
	"testing"
	"time"

	"reparotec/internal/domain/entities"
)

func TestNeedsAttention(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	settings := entities.BillingSettings{NotificationReminderDays: 3}

	daysAgo := func(d int) *time.Time {
		ts := now.AddDate(0, 0, -d)
		return &ts
	}

	cases := []struct {
		name string
		job  entities.Job
		want bool
	}{
		{
			name: "never notified",
			job:  entities.Job{Status: entities.JobStatusOpen},
			want: true,
		},
		{
			name: "notified long ago",
			job:  entities.Job{Status: entities.JobStatusInProgress, LastNotificationSent: daysAgo(5)},
			want: true,
		},
		{
			name: "notified exactly at the threshold",
			job:  entities.Job{Status: entities.JobStatusAwaitingParts, LastNotificationSent: daysAgo(3)},
			want: true,
		},
		{
			name: "notified recently",
			job:  entities.Job{Status: entities.JobStatusOpen, LastNotificationSent: daysAgo(1)},
			want: false,
		},
		{
			name: "closed job never needs attention",
			job:  entities.Job{Status: entities.JobStatusClosed},
			want: false,
		},
		{
			name: "cancelled job never needs attention",
			job:  entities.Job{Status: entities.JobStatusCancelled, LastNotificationSent: daysAgo(30)},
			want: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NeedsAttention(tc.job, settings, now); got != tc.want {
				t.Fatalf("expected %t, got %t", tc.want, got)
			}
		})
	}
}

func TestQuoteReminderDue(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	settings := entities.BillingSettings{QuoteReminderFrequencyDays: 3, QuoteMaxReminders: 3}

	base := entities.Quote{
		Status:     entities.QuoteStatusSent,
		IssueDate:  now.AddDate(0, 0, -4),
		ValidUntil: now.AddDate(0, 0, 10),
	}

	t.Run("due after the cadence elapses", func(t *testing.T) {
		if !QuoteReminderDue(base, settings, now) {
			t.Fatalf("expected reminder due")
		}
	})

	t.Run("not due right after issue", func(t *testing.T) {
		q := base
		q.IssueDate = now.AddDate(0, 0, -1)
		if QuoteReminderDue(q, settings, now) {
			t.Fatalf("expected reminder not due")
		}
	})

	t.Run("cadence counts from the last reminder", func(t *testing.T) {
		q := base
		last := now.AddDate(0, 0, -1)
		q.LastReminderSent = &last
		q.ReminderCount = 1
		if QuoteReminderDue(q, settings, now) {
			t.Fatalf("expected reminder not due")
		}
	})

	t.Run("reminder limit reached", func(t *testing.T) {
		q := base
		q.ReminderCount = 3
		if QuoteReminderDue(q, settings, now) {
			t.Fatalf("expected reminder not due")
		}
	})

	t.Run("expired quote", func(t *testing.T) {
		q := base
		q.ValidUntil = now.AddDate(0, 0, -1)
		if QuoteReminderDue(q, settings, now) {
			t.Fatalf("expected reminder not due")
		}
	})

	t.Run("non-sent status", func(t *testing.T) {
		q := base
		q.Status = entities.QuoteStatusAccepted
		if QuoteReminderDue(q, settings, now) {
			t.Fatalf("expected reminder not due")
		}
	})
}
