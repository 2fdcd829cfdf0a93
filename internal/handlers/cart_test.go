package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/billalcoom/bistro-gobackend/internal/auth"
	"github.com/billalcoom/bistro-gobackend/internal/models"
)

type fakeCartStore struct {
	entries map[string][]models.CartEntry
}

func (f *fakeCartStore) AddEntry(_ context.Context, entry *models.CartEntry) (string, error) {
	entry.ID = primitive.NewObjectID()
	f.entries[entry.Email] = append(f.entries[entry.Email], *entry)
	return entry.ID.Hex(), nil
}

func (f *fakeCartStore) EntriesByEmail(_ context.Context, email string) ([]models.CartEntry, error) {
	entries := f.entries[email]
	if entries == nil {
		entries = []models.CartEntry{}
	}
	return entries, nil
}

func (f *fakeCartStore) DeleteEntry(_ context.Context, id string) (int64, error) {
	for email, entries := range f.entries {
		for i, e := range entries {
			if e.ID.Hex() == id {
				f.entries[email] = append(entries[:i], entries[i+1:]...)
				return 1, nil
			}
		}
	}
	return 0, nil
}

func TestGetEntriesOwnership(t *testing.T) {
	store := &fakeCartStore{entries: map[string][]models.CartEntry{
		"ada@example.com": {{ID: primitive.NewObjectID(), Email: "ada@example.com", Name: "pizza", Price: 12.5}},
	}}
	handler := NewCartHandler(store)
	claims := &auth.Claims{Email: "ada@example.com"}

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantLen    int
	}{
		{"own cart", "?email=ada@example.com", http.StatusOK, 1},
		{"someone else's cart", "?email=eve@example.com", http.StatusForbidden, 0},
		{"no email param", "", http.StatusOK, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/carts"+tt.query, nil)
			rec := httptest.NewRecorder()

			handler.GetEntries(rec, req, claims)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				var got []models.CartEntry
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
				assert.Len(t, got, tt.wantLen)
			}
		})
	}
}

func TestGetEntriesEmptyWithoutEmailEvenForOwner(t *testing.T) {
	// No email parameter means an empty list, token or not.
	handler := NewCartHandler(&fakeCartStore{entries: map[string][]models.CartEntry{
		"ada@example.com": {{ID: primitive.NewObjectID(), Email: "ada@example.com"}},
	}})

	req := httptest.NewRequest(http.MethodGet, "/carts", nil)
	rec := httptest.NewRecorder()
	handler.GetEntries(rec, req, &auth.Claims{Email: "ada@example.com"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}
