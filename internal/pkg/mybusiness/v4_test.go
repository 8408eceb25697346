package mybusiness

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListReviews(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/accounts/123/locations/456/reviews", r.URL.Path)
		assert.Equal(t, "20", r.URL.Query().Get("pageSize"))
		assert.Equal(t, "tok-1", r.URL.Query().Get("pageToken"))

		_ = json.NewEncoder(w).Encode(ReviewsPage{
			Reviews: []Review{
				{
					ReviewID:   "rev-1",
					Reviewer:   Reviewer{DisplayName: "Ana"},
					StarRating: "FIVE",
					Comment:    "Excelente servicio",
					CreateTime: "2026-01-10T08:30:00Z",
				},
			},
			NextPageToken: "tok-2",
		})
	}))
	defer srv.Close()

	client := NewV4ClientWithBase(srv.URL, nil)
	page, err := client.ListReviews(context.Background(), "123", "456", 0, "tok-1")
	require.NoError(t, err)
	require.Len(t, page.Reviews, 1)
	assert.Equal(t, "rev-1", page.Reviews[0].ReviewID)
	assert.Equal(t, 5, page.Reviews[0].Stars())
	assert.Equal(t, "tok-2", page.NextPageToken)
}

func TestListReviewsAcceptsPrefixedIDs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/123/locations/456/reviews", r.URL.Path)
		_ = json.NewEncoder(w).Encode(ReviewsPage{})
	}))
	defer srv.Close()

	client := NewV4ClientWithBase(srv.URL, nil)
	_, err := client.ListReviews(context.Background(), "accounts/123", "locations/456", 10, "")
	require.NoError(t, err)
}

func TestReplyToReview(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/accounts/123/locations/456/reviews/rev-1/reply", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Gracias por tu visita", body["comment"])

		_ = json.NewEncoder(w).Encode(ReviewReply{
			Comment:    body["comment"],
			UpdateTime: "2026-01-11T09:00:00Z",
		})
	}))
	defer srv.Close()

	client := NewV4ClientWithBase(srv.URL, nil)
	reply, err := client.ReplyToReview(context.Background(), "123", "456", "rev-1", "Gracias por tu visita")
	require.NoError(t, err)
	assert.Equal(t, "Gracias por tu visita", reply.Comment)
	assert.Equal(t, "2026-01-11T09:00:00Z", reply.UpdateTime)
}

func TestCreateLocalPost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/accounts/123/locations/456/localPosts", r.URL.Path)

		var body LocalPost
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "STANDARD", body.TopicType)
		assert.Equal(t, "es", body.LanguageCode)
		require.Len(t, body.Media, 1)
		assert.Equal(t, "PHOTO", body.Media[0].MediaFormat)
		require.NotNil(t, body.CallToAction)
		assert.Equal(t, "LEARN_MORE", body.CallToAction.ActionType)

		body.Name = "accounts/123/locations/456/localPosts/p-1"
		body.State = "LIVE"
		_ = json.NewEncoder(w).Encode(body)
	}))
	defer srv.Close()

	client := NewV4ClientWithBase(srv.URL, nil)
	created, err := client.CreateLocalPost(context.Background(), "123", "456", NewLocalPost{
		Summary:  "Nueva promo de temporada",
		MediaURL: "https://cdn.example.com/promo.jpg",
		CTAType:  "LEARN_MORE",
		CTAURL:   "https://example.com/promo",
	})
	require.NoError(t, err)
	assert.Equal(t, "LIVE", created.State)
	assert.Equal(t, "accounts/123/locations/456/localPosts/p-1", created.Name)
}

func TestAttachPhoto(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/accounts/123/locations/456/media", r.URL.Path)

		var body MediaItem
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "PHOTO", body.MediaFormat)
		assert.Equal(t, "https://cdn.example.com/interior.jpg", body.SourceURL)
		require.NotNil(t, body.LocationAssociation)
		assert.Equal(t, "INTERIOR", body.LocationAssociation.Category)

		body.Name = "accounts/123/locations/456/media/m-1"
		body.GoogleURL = "https://lh3.googleusercontent.com/m-1"
		_ = json.NewEncoder(w).Encode(body)
	}))
	defer srv.Close()

	client := NewV4ClientWithBase(srv.URL, nil)
	item, err := client.AttachPhoto(context.Background(), "123", "456", "https://cdn.example.com/interior.jpg", "Sala principal")
	require.NoError(t, err)
	assert.Equal(t, "accounts/123/locations/456/media/m-1", item.Name)
	assert.Equal(t, "https://lh3.googleusercontent.com/m-1", item.GoogleURL)
}

func TestAPIErrorOnNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"status":"PERMISSION_DENIED"}}`))
	}))
	defer srv.Close()

	client := NewV4ClientWithBase(srv.URL, nil)
	_, err := client.ListReviews(context.Background(), "123", "456", 10, "")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "PERMISSION_DENIED")
}

func TestReviewStars(t *testing.T) {
	tests := []struct {
		rating string
		want   int
	}{
		{"ONE", 1},
		{"TWO", 2},
		{"THREE", 3},
		{"FOUR", 4},
		{"FIVE", 5},
		{"STAR_RATING_UNSPECIFIED", 0},
		{"", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Review{StarRating: tt.rating}.Stars(), tt.rating)
	}
}

func TestNormalizeResourceNames(t *testing.T) {
	assert.Equal(t, "accounts/1", NormalizeAccountName("1"))
	assert.Equal(t, "accounts/1", NormalizeAccountName("accounts/1"))
	assert.Equal(t, "locations/2", NormalizeLocationName("2"))
	assert.Equal(t, "locations/2", NormalizeLocationName("locations/2"))
	assert.Equal(t, "reviews/3", NormalizeReviewName("3"))
	assert.Equal(t, "reviews/3", NormalizeReviewName("reviews/3"))
}
