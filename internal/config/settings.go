package config

import (
	"context"
	"log"

	"reparotec/internal/domain/entities"
	"reparotec/internal/usecase/interfaces"

	"github.com/kelseyhightower/envconfig"
)

// billingEnv is the environment shape of the shop settings, prefixed BILLING_
// (e.g. BILLING_TAX_RATE, BILLING_QUOTE_VALID_DAYS).
type billingEnv struct {
	TaxRate                    float64 `split_words:"true" default:"15"`
	NotificationReminderDays   int     `split_words:"true" default:"3"`
	QuoteValidDays             int     `split_words:"true" default:"30"`
	QuoteReminderFrequencyDays int     `split_words:"true" default:"3"`
	QuoteMaxReminders          int     `split_words:"true" default:"3"`
}

// EnvSettingsProvider reads BillingSettings from the environment on every
// call, so a restarted process (or a changed container env) takes effect
// without a settings table.
type EnvSettingsProvider struct{}

var _ interfaces.ISettingsProvider = (*EnvSettingsProvider)(nil)

func NewEnvSettingsProvider() *EnvSettingsProvider {
	return &EnvSettingsProvider{}
}

func (p *EnvSettingsProvider) Get(_ context.Context) (entities.BillingSettings, error) {
	var env billingEnv
	if err := envconfig.Process("billing", &env); err != nil {
		log.Printf("[config][settings] failed reading billing settings err=%v", err)
		return entities.BillingSettings{}, err
	}
	return entities.BillingSettings{
		TaxRate:                    env.TaxRate,
		NotificationReminderDays:   env.NotificationReminderDays,
		QuoteValidDays:             env.QuoteValidDays,
		QuoteReminderFrequencyDays: env.QuoteReminderFrequencyDays,
		QuoteMaxReminders:          env.QuoteMaxReminders,
	}, nil
}
