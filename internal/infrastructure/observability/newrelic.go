package observability

import (
	"log"

	"geds_checkout/internal/config"

	"github.com/newrelic/go-agent/v3/newrelic"
)

// NewRelicApp starts the New Relic agent when enabled and licensed. It returns
// nil otherwise; every consumer treats a nil app as "tracing off".
func NewRelicApp(cfg config.NewRelicConfig) *newrelic.Application {
	if !cfg.Enabled || cfg.LicenseKey == "" {
		return nil
	}
	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.AppName),
		newrelic.ConfigLicense(cfg.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(true),
		newrelic.ConfigAppLogForwardingEnabled(true),
	)
	if err != nil {
		log.Printf("[checkout][newrelic] failed to initialize: %v", err)
		return nil
	}
	log.Printf("[checkout][newrelic] enabled app=%s", cfg.AppName)
	return app
}
