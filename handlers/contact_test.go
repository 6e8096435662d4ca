package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contactRouter(store ContactStore, relay ContactRelay) *gin.Engine {
	handler := NewContactHandler(store, relay)
	r := gin.New()
	r.POST("/api/contact", handler.SubmitContact)
	return r
}

func TestSubmitContact_Success(t *testing.T) {
	store := &mockStore{}
	relay := &mockRelay{}
	r := contactRouter(store, relay)

	w := doJSON(t, r, http.MethodPost, "/api/contact", gin.H{
		"name":    "Thandi",
		"email":   "thandi@example.com",
		"subject": "Quote",
		"message": "Please send pricing for photography.",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, store.insertedContact)
	assert.Equal(t, "Thandi", store.insertedContact.Name)
	assert.True(t, relay.called)
	assert.Contains(t, w.Body.String(), "true")
}

func TestSubmitContact_BlankField(t *testing.T) {
	store := &mockStore{}
	relay := &mockRelay{}
	r := contactRouter(store, relay)

	w := doJSON(t, r, http.MethodPost, "/api/contact", gin.H{
		"name":    "Thandi",
		"email":   "thandi@example.com",
		"subject": "",
		"message": "hello",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, store.insertedContact)
	assert.False(t, relay.called)
}

func TestSubmitContact_RelayFailureKeepsRow(t *testing.T) {
	store := &mockStore{}
	relay := &mockRelay{err: errors.New("relay down")}
	r := contactRouter(store, relay)

	w := doJSON(t, r, http.MethodPost, "/api/contact", gin.H{
		"name":    "Thandi",
		"email":   "thandi@example.com",
		"subject": "Quote",
		"message": "Please send pricing.",
	})

	// The caller sees the relay failure, but the contact row stays saved.
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.NotNil(t, store.insertedContact)
}

func TestSubmitContact_StoreFailure(t *testing.T) {
	store := &mockStore{contactErr: errors.New("db down")}
	relay := &mockRelay{}
	r := contactRouter(store, relay)

	w := doJSON(t, r, http.MethodPost, "/api/contact", gin.H{
		"name":    "Thandi",
		"email":   "thandi@example.com",
		"subject": "Quote",
		"message": "Please send pricing.",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.False(t, relay.called)
}
