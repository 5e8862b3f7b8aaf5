package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/decentraestate/marketd/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(seed.Properties())
	}))
	defer server.Close()

	source := NewSource(server.URL)

	properties, err := source.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, properties, 6)
	assert.Equal(t, "Sunset Villa", properties[0].Name)
	assert.Equal(t, 1250000.0, properties[0].Price)
}

func TestSource_FetchBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer server.Close()

	source := NewSource(server.URL)

	_, err := source.Fetch(context.Background())
	assert.Error(t, err)
}

func TestSource_FetchBadBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	source := NewSource(server.URL)

	_, err := source.Fetch(context.Background())
	assert.Error(t, err)
}
