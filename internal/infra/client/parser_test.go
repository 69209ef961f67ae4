package client

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"passport/internal/domain/entity"
)

const chromeOnMacUA = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

func TestParser_ParseBrowser(t *testing.T) {
	parser := NewParser()

	info := parser.Parse(chromeOnMacUA, "203.0.113.7")

	assert.Equal(t, "Chrome", info.ClientName)
	assert.Equal(t, "chrome", info.ClientCode)
	assert.Equal(t, "browser", info.ClientType)
	assert.Equal(t, "Blink", info.ClientEngine)
	assert.Equal(t, "macOS", info.OSName)
	assert.Equal(t, "desktop", info.DeviceName)
	assert.Equal(t, "203.0.113.7", info.IP)
}

func TestParser_ParseUnknownAgent(t *testing.T) {
	parser := NewParser()

	info := parser.Parse("", "198.51.100.1")

	assert.Empty(t, info.ClientName)
	assert.Empty(t, info.ClientType)
	assert.Equal(t, "198.51.100.1", info.IP)

	// Geolocation is never resolved here.
	assert.Equal(t, entity.UnknownCountryCode, info.CountryCode)
	assert.Equal(t, entity.UnknownCountryName, info.CountryName)
}

func TestParser_ParseMobile(t *testing.T) {
	parser := NewParser()

	iphoneUA := "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"
	info := parser.Parse(iphoneUA, "192.0.2.9")

	assert.Equal(t, "smartphone", info.DeviceName)
	assert.Equal(t, "iOS", info.OSName)
}
