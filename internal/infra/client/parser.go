// Package client derives structured client metadata from raw request attributes.
package client

import (
	"strings"

	"github.com/mileusna/useragent"

	"passport/internal/domain/entity"
	"passport/internal/domain/service"
)

// uaParser implements service.ClientParser with user-agent sniffing.
// Geolocation is not resolved here; entries carry the unknown-country
// placeholders until a resolver is wired in front of this parser.
type uaParser struct{}

// NewParser is the constructor for uaParser.
func NewParser() service.ClientParser {
	return &uaParser{}
}

// Parse turns a raw user-agent string and client IP into structured client info.
func (p *uaParser) Parse(userAgent, ip string) entity.ClientInfo {
	ua := useragent.Parse(userAgent)

	info := entity.ClientInfo{
		OSName:        ua.OS,
		OSCode:        codeOf(ua.OS),
		OSVersion:     ua.OSVersion,
		ClientName:    ua.Name,
		ClientCode:    codeOf(ua.Name),
		ClientVersion: ua.Version,
		ClientEngine:  engineOf(ua),
		DeviceName:    deviceTypeOf(ua),
		DeviceModel:   ua.Device,
		IP:            ip,
		CountryCode:   entity.UnknownCountryCode,
		CountryName:   entity.UnknownCountryName,
	}

	switch {
	case ua.Bot:
		info.ClientType = "bot"
	case ua.Name != "":
		info.ClientType = "browser"
	}

	return info
}

func codeOf(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", ""))
}

func engineOf(ua useragent.UserAgent) string {
	switch {
	case ua.IsChrome(), ua.IsOpera(), ua.IsEdge():
		return "Blink"
	case ua.IsSafari():
		return "WebKit"
	case ua.IsFirefox():
		return "Gecko"
	default:
		return ""
	}
}

func deviceTypeOf(ua useragent.UserAgent) string {
	switch {
	case ua.Mobile:
		return "smartphone"
	case ua.Tablet:
		return "tablet"
	case ua.Desktop:
		return "desktop"
	default:
		return ""
	}
}
