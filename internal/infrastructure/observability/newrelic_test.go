package observability

import (
	"testing"

	"geds_checkout/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestNewRelicApp_Disabled(t *testing.T) {
	assert.Nil(t, NewRelicApp(config.NewRelicConfig{Enabled: false, LicenseKey: "x"}))
	assert.Nil(t, NewRelicApp(config.NewRelicConfig{Enabled: true}))
}
