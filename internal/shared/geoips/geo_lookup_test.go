package geoips

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_EmptyPathDisablesLookup(t *testing.T) {
	t.Parallel()

	geo, err := Open("")
	require.NoError(t, err)
	assert.Nil(t, geo)
	assert.Equal(t, "", geo.Country("52.74.219.71:40120"))
	assert.NoError(t, geo.Close())
}

func TestOpen_MissingDatabase(t *testing.T) {
	t.Parallel()

	geo, err := Open(filepath.Join(t.TempDir(), "missing.mmdb"))
	assert.Error(t, err)
	assert.Nil(t, geo)
}

func TestHostOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		clientKey string
		expected  string
	}{
		{clientKey: "52.74.219.71:40120", expected: "52.74.219.71"},
		{clientKey: "[2001:db8::1]:443", expected: "2001:db8::1"},
		{clientKey: "52.74.219.71", expected: "52.74.219.71"},
		{clientKey: "not-an-address", expected: "not-an-address"},
	}

	for _, tt := range tests {
		t.Run(tt.clientKey, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, hostOf(tt.clientKey))
		})
	}
}
