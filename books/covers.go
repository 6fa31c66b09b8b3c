package books

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// coverProvider attempts one source for a cover image URL. An empty string
// means no result from this source.
type coverProvider func(title, author, genre string) (string, error)

// CoverService resolves cover images through an ordered provider chain:
// Google Books, then OpenLibrary, then a deterministic placeholder that
// cannot fail.
type CoverService struct {
	httpClient *http.Client
	providers  []coverProvider
}

func NewCoverService() *CoverService {
	s := &CoverService{
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	s.providers = []coverProvider{
		s.googleBooksCover,
		s.openLibraryCover,
	}
	return s
}

// CoverURL returns the first cover the chain produces. Provider errors are
// skipped; the placeholder guarantees a URL.
func (s *CoverService) CoverURL(title, author, genre string) string {
	for _, provider := range s.providers {
		coverURL, err := provider(title, author, genre)
		if err == nil && coverURL != "" {
			return coverURL
		}
	}
	return placeholderCover(title, genre)
}

type googleBooksResponse struct {
	Items []struct {
		VolumeInfo struct {
			ImageLinks struct {
				Thumbnail string `json:"thumbnail"`
			} `json:"imageLinks"`
		} `json:"volumeInfo"`
	} `json:"items"`
}

func (s *CoverService) googleBooksCover(title, author, genre string) (string, error) {
	// Exact title+author first, then a looser title-only query.
	queries := []struct {
		q   string
		max int
	}{
		{title + " " + author, 1},
		{title, 3},
	}

	for _, query := range queries {
		searchURL := fmt.Sprintf("https://www.googleapis.com/books/v1/volumes?q=%s&maxResults=%d",
			url.QueryEscape(query.q), query.max)

		resp, err := s.httpClient.Get(searchURL)
		if err != nil {
			return "", err
		}

		var data googleBooksResponse
		decodeErr := json.NewDecoder(resp.Body).Decode(&data)
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK || decodeErr != nil {
			continue
		}

		for _, item := range data.Items {
			if thumbnail := item.VolumeInfo.ImageLinks.Thumbnail; thumbnail != "" {
				return strings.ReplaceAll(thumbnail, "zoom=1", "zoom=3"), nil
			}
		}
	}

	return "", nil
}

type openLibraryResponse struct {
	Docs []struct {
		CoverID int64 `json:"cover_i"`
	} `json:"docs"`
}

func (s *CoverService) openLibraryCover(title, author, genre string) (string, error) {
	queries := []string{title + " " + author, title}

	for _, query := range queries {
		searchURL := fmt.Sprintf("https://openlibrary.org/search.json?title=%s&limit=3",
			url.QueryEscape(query))

		resp, err := s.httpClient.Get(searchURL)
		if err != nil {
			return "", err
		}

		var data openLibraryResponse
		decodeErr := json.NewDecoder(resp.Body).Decode(&data)
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK || decodeErr != nil {
			continue
		}

		for _, doc := range data.Docs {
			if doc.CoverID != 0 {
				return fmt.Sprintf("https://covers.openlibrary.org/b/id/%d-L.jpg", doc.CoverID), nil
			}
		}
	}

	return "", nil
}

var genreCoverColors = map[string]string{
	"Business & Management": "1f2937",
	"Psychology":            "7c3aed",
	"Self-Help":             "059669",
	"Finance":               "dc2626",
	"Investment":            "ea580c",
	"Leadership":            "2563eb",
	"Entrepreneurship":      "0891b2",
	"Personal Finance":      "16a34a",
	"Mindset":               "9333ea",
	"Behavioral Economics":  "be185d",
	"Behavioral Science":    "a855f7",
	"Success":               "f59e0b",
	"Productivity":          "0d9488",
	"Personal Development":  "059669",
	"Company Analysis":      "1e40af",
	"Startup Strategy":      "0891b2",
	"Innovation":            "7c2d12",
	"Business Model":        "1e293b",
}

// placeholderCover is the total last provider: a text placeholder keyed by
// genre color and the first three title words.
func placeholderCover(title, genre string) string {
	color, ok := genreCoverColors[genre]
	if !ok {
		color = "1f2937"
	}

	words := strings.Fields(title)
	if len(words) > 3 {
		words = words[:3]
	}

	return fmt.Sprintf("https://placehold.co/400x600/%s/ffffff?text=%s&font=montserrat",
		color, strings.Join(words, "+"))
}
