package feed

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"podhost/internal/models"
)

func TestGenerateRSS(t *testing.T) {
	podcasts := []models.Podcast{
		{ID: uuid.New(), Title: "First Episode", URL: "/audio/a.mpeg", CreatedAt: time.Now().Add(-time.Hour)},
		{ID: uuid.New(), Title: "Second Episode", URL: "/audio/b.ogg", CreatedAt: time.Now()},
	}

	req := httptest.NewRequest(http.MethodGet, "/feed", nil)
	req.Host = "podcasts.example.com"

	rss, err := GenerateRSS(podcasts, req)
	require.NoError(t, err)

	assert.Contains(t, rss, "<rss")
	assert.Contains(t, rss, "First Episode")
	assert.Contains(t, rss, "Second Episode")
	assert.Contains(t, rss, "https://podcasts.example.com/audio/a.mpeg")
}

func TestGenerateRSSEmpty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/feed", nil)

	rss, err := GenerateRSS(nil, req)
	require.NoError(t, err)
	assert.Contains(t, rss, "<rss")
}

func TestGetBaseURLPrefersForwardedProto(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/feed", nil)
	req.Host = "podcasts.example.com"
	req.Header.Set("X-Forwarded-Proto", "https")

	assert.Equal(t, "https://podcasts.example.com", getBaseURL(req))
}
