// Package models holds the JSON shapes exchanged with the mission API.
package models

import "encoding/json"

// Event is one mission feed entry as returned by the mission API.
type Event struct {
	EventID   string   `json:"eventId"`
	Text      string   `json:"text"`
	Lat       *float64 `json:"lat,omitempty"`
	Lon       *float64 `json:"lon,omitempty"`
	CreatedAt string   `json:"createdAt,omitempty"`
	MediaURL  string   `json:"mediaUrl,omitempty"`
	Severity  string   `json:"severity,omitempty"`
	Trust     *float64 `json:"trust,omitempty"`
	Rationale string   `json:"rationale,omitempty"`
}

// EventList is the response of GET /events.
type EventList struct {
	Events []Event `json:"events"`
}

// IngestRequest is the body of POST /ingest.
type IngestRequest struct {
	Text     string   `json:"text"`
	Lat      *float64 `json:"lat,omitempty"`
	Lon      *float64 `json:"lon,omitempty"`
	MediaURL string   `json:"mediaUrl,omitempty"`
}

// IngestResult is the response of POST /ingest.
type IngestResult struct {
	EventID string `json:"eventId"`
}

// TraceStep is one entry of an explanation's tool trace.
type TraceStep struct {
	Tool string  `json:"tool"`
	Ms   float64 `json:"ms"`
}

// Explanation is the response of GET /events/{id}/explain.
type Explanation struct {
	EventID    string      `json:"eventId"`
	Rationale  string      `json:"rationale"`
	Cues       []string    `json:"cues,omitempty"`
	TrustScore *float64    `json:"trustScore,omitempty"`
	Trace      []TraceStep `json:"trace,omitempty"`
}

// RouteRequest is the body of POST /routes/alt.
type RouteRequest struct {
	OriginLat float64 `json:"originLat"`
	OriginLon float64 `json:"originLon"`
	DestLat   float64 `json:"destLat"`
	DestLon   float64 `json:"destLon"`
}

// RouteResult is the response of POST /routes/alt. Legs passes through
// untouched; the mission API owns its shape.
type RouteResult struct {
	DistanceKm float64         `json:"distanceKm"`
	EtaMin     float64         `json:"etaMin"`
	Polyline   string          `json:"polyline,omitempty"`
	Legs       json.RawMessage `json:"legs,omitempty"`
}

// GeofenceRequest is the body of POST /alerts/geofence.
type GeofenceRequest struct {
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	RadiusKm float64 `json:"radiusKm"`
}

// GeofenceResult is the response of POST /alerts/geofence.
type GeofenceResult struct {
	Delivered int `json:"delivered"`
}

// ReplayResult is the response of POST /simulate/replay.
type ReplayResult struct {
	Started bool `json:"started"`
	Count   int  `json:"count"`
}
