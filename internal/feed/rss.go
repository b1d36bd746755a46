package feed

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/eduncan911/podcast"

	"podhost/internal/models"
)

func getBaseURL(r *http.Request) string {
	if baseURL := os.Getenv("BASE_URL"); baseURL != "" {
		return baseURL
	}

	scheme := r.URL.Scheme
	if scheme == "" {
		scheme = "https"
		if r.Header.Get("X-Forwarded-Proto") != "" {
			scheme = r.Header.Get("X-Forwarded-Proto")
		}
	}

	return fmt.Sprintf("%s://%s", scheme, r.Host)
}

// GenerateRSS renders all stored podcasts as one RSS feed, newest metadata
// taken straight from the records.
func GenerateRSS(podcasts []models.Podcast, r *http.Request) (string, error) {
	baseURL := getBaseURL(r)

	now := time.Now()
	p := podcast.New(
		"Uploaded Podcasts",
		baseURL+"/podcasts",
		"Audio files hosted by this service.",
		&now, &now,
	)

	for _, pc := range podcasts {
		item := podcast.Item{
			Title:       pc.Title,
			Description: pc.Title,
			PubDate:     &pc.CreatedAt,
		}
		// Enclosure length is unknown; the record does not store file size.
		item.AddEnclosure(baseURL+pc.URL, podcast.MP3, 0)
		if _, err := p.AddItem(item); err != nil {
			return "", err
		}
	}

	return p.String(), nil
}
