// Package registry defines the static catalog of mission tools: the six
// operations the bridge exposes over MCP and the portal forwards over REST.
// The table is immutable and shared by both binaries.
package registry

import (
	"fmt"
	"net/url"
	"strings"
)

// Parameter locations on the wire.
const (
	InPath = "path"
	InBody = "body"
)

// Param describes one parameter for a tool.
type Param struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"` // string, number
	Description string   `json:"description"`
	Required    bool     `json:"required"`
	In          string   `json:"in"`
	Default     *float64 `json:"default,omitempty"`

	// Validation bounds for string params. Not part of the catalog payload.
	MinLen int  `json:"-"`
	IsURL  bool `json:"-"`
}

// Tool describes one mission operation: its MCP name, the remote route it
// maps to, and its declared input shape.
type Tool struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Method      string  `json:"method"`
	Path        string  `json:"path"`
	Params      []Param `json:"params"`

	// SendEmptyBody forces an explicit {} body on POST tools with no params.
	SendEmptyBody bool `json:"-"`
}

func floatPtr(v float64) *float64 { return &v }

// Default origin/destination used when alt_route and set_geofence_alert are
// called without coordinates (Kuala Lumpur city centre / KLCC).
var (
	defaultLat     = floatPtr(3.139)
	defaultLon     = floatPtr(101.6869)
	defaultDestLat = floatPtr(3.1579)
	defaultDestLon = floatPtr(101.7123)
)

// tools is the static dispatch table. Order matters only for catalog display.
var tools = []Tool{
	{
		Name:        "ingest_event",
		Description: "Ingest a field report into the mission feed. The backend scores severity and trust and returns the new event ID.",
		Method:      "POST",
		Path:        "/ingest",
		Params: []Param{
			{Name: "text", Type: "string", Description: "Free-text report (minimum 3 characters)", Required: true, In: InBody, MinLen: 3},
			{Name: "lat", Type: "number", Description: "Latitude of the report location", In: InBody},
			{Name: "lon", Type: "number", Description: "Longitude of the report location", In: InBody},
			{Name: "mediaUrl", Type: "string", Description: "URL of an attached photo or video", In: InBody, IsURL: true},
		},
	},
	{
		Name:        "list_events",
		Description: "List all mission events with their severity, trust score, and location.",
		Method:      "GET",
		Path:        "/events",
	},
	{
		Name:        "explain_event",
		Description: "Explain why an event was scored the way it was: rationale, cues, trust score, and tool trace.",
		Method:      "GET",
		Path:        "/events/{eventId}/explain",
		Params: []Param{
			{Name: "eventId", Type: "string", Description: "Event ID returned by ingest_event or list_events", Required: true, In: InPath, MinLen: 1},
		},
	},
	{
		Name:        "alt_route",
		Description: "Compute an alternative route between two points, avoiding active incident zones. Returns distance, ETA, and an encoded polyline.",
		Method:      "POST",
		Path:        "/routes/alt",
		Params: []Param{
			{Name: "originLat", Type: "number", Description: "Origin latitude (default: KL city centre)", In: InBody, Default: defaultLat},
			{Name: "originLon", Type: "number", Description: "Origin longitude (default: KL city centre)", In: InBody, Default: defaultLon},
			{Name: "destLat", Type: "number", Description: "Destination latitude (default: KLCC)", In: InBody, Default: defaultDestLat},
			{Name: "destLon", Type: "number", Description: "Destination longitude (default: KLCC)", In: InBody, Default: defaultDestLon},
		},
	},
	{
		Name:        "set_geofence_alert",
		Description: "Deliver a geofence alert to subscribers within a radius of a point. Returns the delivered count.",
		Method:      "POST",
		Path:        "/alerts/geofence",
		Params: []Param{
			{Name: "lat", Type: "number", Description: "Geofence centre latitude (default: KL city centre)", In: InBody, Default: defaultLat},
			{Name: "lon", Type: "number", Description: "Geofence centre longitude (default: KL city centre)", In: InBody, Default: defaultLon},
			{Name: "radiusKm", Type: "number", Description: "Geofence radius in kilometres (default: 5)", In: InBody, Default: floatPtr(5)},
		},
	},
	{
		Name:          "simulate_replay",
		Description:   "Replay the recorded demo event sequence into the feed. Returns whether the replay started and the event count.",
		Method:        "POST",
		Path:          "/simulate/replay",
		SendEmptyBody: true,
	},
}

// Tools returns a copy of the static tool catalog.
func Tools() []Tool {
	out := make([]Tool, len(tools))
	copy(out, tools)
	return out
}

// Lookup finds a tool descriptor by name.
func Lookup(name string) (Tool, bool) {
	for _, t := range tools {
		if t.Name == name {
			return t, true
		}
	}
	return Tool{}, false
}

// ValidateString checks a string argument against the param's declared bounds.
// An absent optional value (empty string) passes.
func (p Param) ValidateString(v string) error {
	if v == "" {
		if p.Required {
			return fmt.Errorf("%s parameter is required", p.Name)
		}
		return nil
	}
	if p.MinLen > 0 && len(v) < p.MinLen {
		return fmt.Errorf("%s must be at least %d characters", p.Name, p.MinLen)
	}
	if p.IsURL {
		u, err := url.ParseRequestURI(v)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s must be a valid URL", p.Name)
		}
	}
	return nil
}

// ResolvePath substitutes a {placeholder} in the tool's path template with the
// URL-encoded value.
func (t Tool) ResolvePath(name, value string) string {
	return strings.ReplaceAll(t.Path, "{"+name+"}", url.PathEscape(value))
}
