package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-talent-directory/internal/domain"
	"go-talent-directory/pkg/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchTalentsBareArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/talents/public/", r.URL.Path)
		assert.Equal(t, "budi", r.URL.Query().Get("search"))
		json.NewEncoder(w).Encode([]domain.TalentProfile{{ID: 1, UserFullName: "Budi Santoso"}})
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	talents, err := c.SearchTalents(context.Background(), "budi")
	require.NoError(t, err)
	require.Len(t, talents, 1)
	assert.Equal(t, "Budi Santoso", talents[0].UserFullName)
}

func TestSearchTalentsPaginatedEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"count":   1,
			"results": []domain.TalentProfile{{ID: 2, UserFullName: "Ana Pertiwi"}},
		})
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	talents, err := c.SearchTalents(context.Background(), "ana")
	require.NoError(t, err)
	require.Len(t, talents, 1)
	assert.Equal(t, "Ana Pertiwi", talents[0].UserFullName)
}

func TestSearchTalentsEmptyEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"count": 0, "results": []}`))
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	talents, err := c.SearchTalents(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, talents)
	assert.Empty(t, talents)
}

func TestLoginStoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/accounts/auth/login/":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "ana@example.com", body["email"])
			json.NewEncoder(w).Encode(map[string]string{"access": "acc-token", "refresh": "ref-token"})
		case "/api/talents/me/profile/":
			assert.Equal(t, "Bearer acc-token", r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode(domain.TalentProfile{ID: 3, UserFullName: "Ana Pertiwi"})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	pair, err := c.Login(context.Background(), "ana@example.com", "rahasia123")
	require.NoError(t, err)
	assert.Equal(t, "acc-token", pair.Access)

	profile, err := c.MyProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ana Pertiwi", profile.UserFullName)
}

func TestAPIErrorCarriesEnvelopeMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"message":"Email atau password salah"}`))
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	_, err := c.Login(context.Background(), "ana@example.com", "wrong")
	require.Error(t, err)

	apiErr, ok := err.(*client.APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Email atau password salah", apiErr.Message)
}

func TestStatistics(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/talents/statistics/", r.URL.Path)
		w.Write([]byte(`{"total_talents": 12, "total_skills": 34, "total_experiences": 5}`))
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	stats, err := c.Statistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalTalents)
	assert.Equal(t, int64(34), stats.TotalSkills)
	assert.Equal(t, int64(5), stats.TotalExperiences)
}

func TestFetchPhotoRelativeURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/media/photos/3.jpg", r.URL.Path)
		w.Write([]byte{0xFF, 0xD8, 0xFF})
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	data, err := c.FetchPhoto(context.Background(), "/media/photos/3.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xD8, 0xFF}, data)
}
