package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberAPIRequiresAuth(t *testing.T) {
	app := newTestApp(t)

	w := app.request(t, http.MethodGet, "/api/members", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	msg := decodeMsg(t, w)
	assert.False(t, msg.Success)
	assert.Equal(t, "Unauthorized", msg.Error)

	// A tampered cookie counts as no cookie.
	w = app.request(t, http.MethodGet, "/api/members", "",
		&http.Cookie{Name: "auth", Value: "garbage"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedPageRedirectsToLogin(t *testing.T) {
	app := newTestApp(t)

	w := app.request(t, http.MethodGet, "/members", "", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login?redirectTo=%2Fmembers", w.Header().Get("Location"))

	cookie := app.login(t)
	w = app.request(t, http.MethodGet, "/members", "", cookie)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMemberCRUDLifecycle(t *testing.T) {
	app := newTestApp(t)
	cookie := app.login(t)

	// Create.
	w := app.request(t, http.MethodPost, "/api/members",
		`{"firstName":"Alice","lastName":"Young","city":"Rabat"}`, cookie)
	require.Equal(t, http.StatusCreated, w.Code)
	created := struct {
		Data struct {
			Id int `json:"id"`
		} `json:"data"`
	}{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotZero(t, created.Data.Id)
	path := fmt.Sprintf("/api/members/%d", created.Data.Id)

	// Read.
	w = app.request(t, http.MethodGet, path, "", cookie)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"firstName":"Alice"`)

	// Partial update keeps the untouched fields.
	w = app.request(t, http.MethodPut, path, `{"city":"Casablanca"}`, cookie)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"city":"Casablanca"`)
	assert.Contains(t, w.Body.String(), `"lastName":"Young"`)

	// Delete, then the record is gone.
	w = app.request(t, http.MethodDelete, path, "", cookie)
	assert.Equal(t, http.StatusOK, w.Code)
	w = app.request(t, http.MethodGet, path, "", cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Member not found", decodeMsg(t, w).Error)
}

func TestMemberListEnvelope(t *testing.T) {
	app := newTestApp(t)
	cookie := app.login(t)

	for i := 0; i < 3; i++ {
		w := app.request(t, http.MethodPost, "/api/members",
			fmt.Sprintf(`{"firstName":"M%d","lastName":"Test"}`, i), cookie)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := app.request(t, http.MethodGet, "/api/members?page=2&pageSize=2", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	msg := decodeMsg(t, w)
	assert.True(t, msg.Success)
	require.NotNil(t, msg.Pagination)
	assert.Equal(t, 2, msg.Pagination.Page)
	assert.Equal(t, 2, msg.Pagination.PageSize)
	assert.Equal(t, int64(3), msg.Pagination.TotalCount)
	assert.Equal(t, 2, msg.Pagination.TotalPages)
}

func TestMemberInvalidId(t *testing.T) {
	app := newTestApp(t)
	cookie := app.login(t)

	w := app.request(t, http.MethodGet, "/api/members/abc", "", cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid id", decodeMsg(t, w).Error)
}
