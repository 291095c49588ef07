package models

import "time"

const (
	QueryAverageHitsPerSession     = "averageHitsPerSession"
	QueryAverageSessionDuration    = "averageSessionDuration"
	QueryAverageDistinctPerSession = "averageDistinctPerSession"
	QueryMostEngagedClients        = "mostEngagedClients"
)

// SessionReport is the outcome of one analysis run.
//
// Example JSON:
//
//	{
//	  "analysisId": "01J2Z3NDEKTSV4RRFFQ69G5FAV",
//	  "startedAt": "2026-01-05T10:00:00Z",
//	  "sessionPeriodSeconds": 1800,
//	  "recordCount": 1158500,
//	  "clientCount": 404391,
//	  "sessionCount": 437543,
//	  "averageHitsPerSession": 2.65,
//	  "averageSessionDurationSeconds": 171.6,
//	  "averageDistinctPerSession": 2.4,
//	  "mostEngagedClients": {
//	    "totalSeconds": 2069.16,
//	    "clients": [
//	      {"clientKey": "52.74.219.71:40120", "userAgentFamily": "Chrome", "country": "SG"}
//	    ]
//	  }
//	}
//
// A query with no qualifying sessions leaves its field nil and records its error code in Unavailable.
type SessionReport struct {
	AnalysisID                    string            `json:"analysisId" yaml:"analysisId"`
	StartedAt                     time.Time         `json:"startedAt" yaml:"startedAt"`
	SessionPeriodSeconds          float64           `json:"sessionPeriodSeconds" yaml:"sessionPeriodSeconds"`
	RecordCount                   int               `json:"recordCount" yaml:"recordCount"`
	ExcludedBotRecords            int               `json:"excludedBotRecords,omitempty" yaml:"excludedBotRecords,omitempty"`
	ClientCount                   int               `json:"clientCount" yaml:"clientCount"`
	SessionCount                  int               `json:"sessionCount" yaml:"sessionCount"`
	AverageHitsPerSession         *float64          `json:"averageHitsPerSession,omitempty" yaml:"averageHitsPerSession,omitempty"`
	AverageSessionDurationSeconds *float64          `json:"averageSessionDurationSeconds,omitempty" yaml:"averageSessionDurationSeconds,omitempty"`
	AverageDistinctPerSession     *float64          `json:"averageDistinctPerSession,omitempty" yaml:"averageDistinctPerSession,omitempty"`
	MostEngagedClients            *EngagedClients   `json:"mostEngagedClients,omitempty" yaml:"mostEngagedClients,omitempty"`
	Unavailable                   map[string]string `json:"unavailable,omitempty" yaml:"unavailable,omitempty"`
}

// EngagedClients is the set of clients tied for the largest engagement total.
type EngagedClients struct {
	TotalSeconds float64         `json:"totalSeconds" yaml:"totalSeconds"`
	Clients      []EngagedClient `json:"clients" yaml:"clients"`
}

// ClientKeys returns the keys of the tied clients in report order.
func (e *EngagedClients) ClientKeys() []string {
	keys := make([]string, 0, len(e.Clients))
	for _, c := range e.Clients {
		keys = append(keys, c.ClientKey)
	}
	return keys
}

type EngagedClient struct {
	ClientKey       string `json:"clientKey" yaml:"clientKey"`
	UserAgentFamily string `json:"userAgentFamily,omitempty" yaml:"userAgentFamily,omitempty"`
	Country         string `json:"country,omitempty" yaml:"country,omitempty"`
}
