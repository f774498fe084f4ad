// ABOUTME: Event stream path construction and base URL normalization for the Particle Cloud API
// ABOUTME: Picks the narrowest server-side filter the API offers for device and event

package particle

import (
	"net/url"
	"strings"
)

// DefaultBaseURL is the public Particle Cloud API.
const DefaultBaseURL = "https://api.particle.io"

// Filter selects which events the stream delivers. Both fields are optional.
type Filter struct {
	Device string
	Event  string
}

// EventsPath returns the API path for f. The server treats the event
// segment as a prefix, so callers still need to compare names exactly.
func EventsPath(f Filter) string {
	device := url.PathEscape(f.Device)
	event := url.PathEscape(f.Event)

	switch {
	case f.Device != "" && f.Event != "":
		return "/v1/devices/" + device + "/events/" + event
	case f.Device != "":
		return "/v1/devices/" + device + "/events"
	case f.Event != "":
		return "/v1/events/" + event
	default:
		return "/v1/events"
	}
}

// NormalizeBaseURL strips trailing slashes and a trailing "/v1" path so
// EventsPath can be appended verbatim. Nested paths such as
// "http://host/api/v1" keep their suffix.
func NormalizeBaseURL(baseURL string) string {
	if baseURL == "" {
		return DefaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	u, err := url.Parse(baseURL)
	if err != nil {
		return baseURL
	}

	if u.Path == "/v1" {
		u.Path = ""
		return strings.TrimRight(u.String(), "/")
	}

	return baseURL
}
