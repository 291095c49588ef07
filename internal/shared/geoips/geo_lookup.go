package geoips

import (
	"net"

	"github.com/oschwald/maxminddb-golang"
)

// GeoLookup resolves client addresses to ISO country codes from a MaxMind database.
// A nil *GeoLookup is valid and resolves nothing.
type GeoLookup struct {
	db *maxminddb.Reader
}

// Open returns nil without error when path is empty.
func Open(path string) (*GeoLookup, error) {
	if path == "" {
		return nil, nil
	}
	db, err := maxminddb.Open(path)
	if err != nil {
		return nil, err
	}
	return &GeoLookup{db: db}, nil
}

// Country returns the ISO country code for a client key ("ip:port" or a bare IP), or "" when unknown.
func (g *GeoLookup) Country(clientKey string) string {
	if g == nil || g.db == nil {
		return ""
	}
	parsed := net.ParseIP(hostOf(clientKey))
	if parsed == nil {
		return ""
	}
	var record struct {
		Country struct {
			ISO string `maxminddb:"iso_code"`
		} `maxminddb:"country"`
	}
	if err := g.db.Lookup(parsed, &record); err != nil {
		return ""
	}
	return record.Country.ISO
}

func (g *GeoLookup) Close() error {
	if g == nil || g.db == nil {
		return nil
	}
	return g.db.Close()
}

func hostOf(clientKey string) string {
	host, _, err := net.SplitHostPort(clientKey)
	if err != nil {
		return clientKey
	}
	return host
}
