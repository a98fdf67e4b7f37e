package controller

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryCreateRequiresName(t *testing.T) {
	app := newTestApp(t)
	cookie := app.login(t)

	w := app.request(t, http.MethodPost, "/api/directories", `{"category":"Faculty"}`, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "name is required", decodeMsg(t, w).Error)
}

func TestDirectoryCategoriesEndpoint(t *testing.T) {
	app := newTestApp(t)
	cookie := app.login(t)

	for _, body := range []string{
		`{"name":"Jane Doe","category":"Faculty"}`,
		`{"name":"John Roe","category":"Student"}`,
		`{"name":"Max Poe","category":"Faculty"}`,
	} {
		w := app.request(t, http.MethodPost, "/api/directories", body, cookie)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	// The static route wins over the :id parameter.
	w := app.request(t, http.MethodGet, "/api/directories/categories", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	var msg struct {
		Success bool     `json:"success"`
		Data    []string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &msg))
	assert.True(t, msg.Success)
	assert.Equal(t, []string{"Faculty", "Student"}, msg.Data)
}

func TestDirectoryListFiltersByCategoryParam(t *testing.T) {
	app := newTestApp(t)
	cookie := app.login(t)

	for _, body := range []string{
		`{"name":"Jane Doe","category":"Faculty"}`,
		`{"name":"John Roe","category":"Student"}`,
	} {
		w := app.request(t, http.MethodPost, "/api/directories", body, cookie)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := app.request(t, http.MethodGet, "/api/directories?category=Faculty", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	msg := decodeMsg(t, w)
	require.NotNil(t, msg.Pagination)
	assert.Equal(t, int64(1), msg.Pagination.TotalCount)
	assert.Contains(t, w.Body.String(), "Jane Doe")
	assert.NotContains(t, w.Body.String(), "John Roe")
}
