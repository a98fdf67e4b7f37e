package controller

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventCreateRequiresName(t *testing.T) {
	app := newTestApp(t)
	cookie := app.login(t)

	w := app.request(t, http.MethodPost, "/api/events", `{"eventLoc":"Dayton"}`, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "eventName is required", decodeMsg(t, w).Error)
}

func TestEventCreateStampsModUser(t *testing.T) {
	app := newTestApp(t)
	cookie := app.login(t)

	w := app.request(t, http.MethodPost, "/api/events",
		`{"eventName":"Reunion","eventDatebeg":"2030-06-15"}`, cookie)
	require.Equal(t, http.StatusCreated, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"eventModuser":"jdoe"`)
	assert.Contains(t, body, `"eventDatebeg":"2030-06-15"`)

	// An explicit mod user wins over the session identity.
	w = app.request(t, http.MethodPost, "/api/events",
		`{"eventName":"Picnic","eventModuser":"importer"}`, cookie)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"eventModuser":"importer"`)
}

func TestEventUnknownIdIs404(t *testing.T) {
	app := newTestApp(t)
	cookie := app.login(t)

	w := app.request(t, http.MethodGet, "/api/events/42", "", cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Event not found", decodeMsg(t, w).Error)

	w = app.request(t, http.MethodDelete, "/api/events/42", "", cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
