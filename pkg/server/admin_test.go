package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/energyadvisor/energyadvisor/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListSessions(t *testing.T) {
	t.Run("Returns Sessions", func(t *testing.T) {
		now := time.Now().UTC().Truncate(time.Second)
		sessions := []types.Session{
			{ID: "newer", CreatedAt: now},
			{ID: "older", CreatedAt: now.Add(-time.Hour)},
		}
		mockS := &mockStorage{}
		mockS.On("ListSessions", mock.Anything).Return(sessions, nil)
		handler := newTestServer(mockS).setupHandler()

		req := httptest.NewRequest("GET", "/api/admin/sessions", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Result().StatusCode, w.Body.String())
		var resp struct {
			Sessions []types.Session `json:"sessions"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		require.Len(t, resp.Sessions, 2)
		assert.Equal(t, "newer", resp.Sessions[0].ID)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockS := &mockStorage{}
		mockS.On("ListSessions", mock.Anything).Return([]types.Session(nil), errors.New("boom"))
		handler := newTestServer(mockS).setupHandler()

		req := httptest.NewRequest("GET", "/api/admin/sessions", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Result().StatusCode)
	})
}
