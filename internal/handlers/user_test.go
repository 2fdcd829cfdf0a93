package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billalcoom/bistro-gobackend/internal/auth"
	"github.com/billalcoom/bistro-gobackend/internal/models"
)

type fakeUserStore struct {
	users    map[string]*models.User // keyed by email
	promoted []string
}

func (f *fakeUserStore) CreateUser(_ context.Context, user *models.User) (string, bool, error) {
	if _, ok := f.users[user.Email]; ok {
		return "", true, nil
	}
	f.users[user.Email] = user
	return "64e000000000000000000001", false, nil
}

func (f *fakeUserStore) UserList(_ context.Context) ([]models.User, error) {
	list := []models.User{}
	for _, u := range f.users {
		list = append(list, *u)
	}
	return list, nil
}

func (f *fakeUserStore) IsAdmin(_ context.Context, email string) (bool, error) {
	u, ok := f.users[email]
	return ok && u.IsAdmin(), nil
}

func (f *fakeUserStore) PromoteToAdmin(_ context.Context, id string) (int64, error) {
	f.promoted = append(f.promoted, id)
	return 1, nil
}

func TestCreateUserDeduplicatesByEmail(t *testing.T) {
	store := &fakeUserStore{users: map[string]*models.User{}}
	handler := NewUserHandler(store)

	body := `{"name":"Ada","email":"ada@example.com"}`

	rec := httptest.NewRecorder()
	handler.CreateUser(rec, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body)))
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	handler.CreateUser(rec, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "user has already existed")
}

func TestCheckAdmin(t *testing.T) {
	store := &fakeUserStore{users: map[string]*models.User{
		"boss@example.com":  {Email: "boss@example.com", Role: models.RoleAdmin},
		"guest@example.com": {Email: "guest@example.com"},
	}}
	handler := NewUserHandler(store)

	tests := []struct {
		name       string
		tokenEmail string
		pathEmail  string
		wantAdmin  bool
	}{
		{"admin asks about themself", "boss@example.com", "boss@example.com", true},
		{"regular user asks about themself", "guest@example.com", "guest@example.com", false},
		{"identity mismatch", "guest@example.com", "boss@example.com", false},
		{"unknown user", "nobody@example.com", "nobody@example.com", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/users/admin/"+tt.pathEmail, nil)
			req = mux.SetURLVars(req, map[string]string{"email": tt.pathEmail})
			rec := httptest.NewRecorder()

			handler.CheckAdmin(rec, req, &auth.Claims{Email: tt.tokenEmail})

			require.Equal(t, http.StatusOK, rec.Code)
			var got map[string]bool
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			assert.Equal(t, tt.wantAdmin, got["admin"])
		})
	}
}

func TestPromoteUser(t *testing.T) {
	store := &fakeUserStore{users: map[string]*models.User{}}
	handler := NewUserHandler(store)

	req := httptest.NewRequest(http.MethodPatch, "/users/admin/64e000000000000000000002", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "64e000000000000000000002"})
	rec := httptest.NewRecorder()

	handler.PromoteUser(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"modifiedCount":1`)
	assert.Equal(t, []string{"64e000000000000000000002"}, store.promoted)
}
