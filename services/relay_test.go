package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactRelay_Forward(t *testing.T) {
	var received map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	relay := NewContactRelay(server.URL)
	err := relay.Forward(context.Background(), "Thandi", "thandi@example.com", "Pricing please")

	require.NoError(t, err)
	assert.Equal(t, "Thandi", received["name"])
	assert.Equal(t, "thandi@example.com", received["_replyto"])
	assert.Equal(t, "Pricing please", received["message"])
}

func TestContactRelay_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "form disabled", http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	relay := NewContactRelay(server.URL)
	err := relay.Forward(context.Background(), "Thandi", "thandi@example.com", "hi")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "form disabled")
}

func TestContactRelay_NoURL(t *testing.T) {
	relay := NewContactRelay("")
	err := relay.Forward(context.Background(), "a", "b", "c")
	require.Error(t, err)
}
