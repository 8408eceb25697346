package mybusiness

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Review mirrors the v4 review resource.
type Review struct {
	ReviewID   string       `json:"reviewId"`
	Reviewer   Reviewer     `json:"reviewer"`
	StarRating string       `json:"starRating"`
	Comment    string       `json:"comment"`
	CreateTime string       `json:"createTime"`
	UpdateTime string       `json:"updateTime"`
	Reply      *ReviewReply `json:"reviewReply,omitempty"`
}

type Reviewer struct {
	DisplayName string `json:"displayName"`
}

type ReviewReply struct {
	Comment    string `json:"comment"`
	UpdateTime string `json:"updateTime"`
}

// ReviewsPage is one page of reviews plus the continuation token.
type ReviewsPage struct {
	Reviews       []Review `json:"reviews"`
	NextPageToken string   `json:"nextPageToken"`
}

// Stars converts the v4 enum rating ("ONE".."FIVE") to a number. Unknown
// values map to 0.
func (r Review) Stars() int {
	switch r.StarRating {
	case "ONE":
		return 1
	case "TWO":
		return 2
	case "THREE":
		return 3
	case "FOUR":
		return 4
	case "FIVE":
		return 5
	}
	return 0
}

// ListReviews lists reviews of a location with pagination passthrough.
func (c *V4Client) ListReviews(ctx context.Context, accountID, locationID string, pageSize int, pageToken string) (*ReviewsPage, error) {
	if pageSize <= 0 {
		pageSize = 20
	}
	query := url.Values{"pageSize": {strconv.Itoa(pageSize)}}
	if pageToken != "" {
		query.Set("pageToken", pageToken)
	}

	path := fmt.Sprintf("/%s/%s/reviews", NormalizeAccountName(accountID), NormalizeLocationName(locationID))
	var page ReviewsPage
	if err := c.do(ctx, "GET", path, query, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ReplyToReview creates or replaces the owner reply on a review.
func (c *V4Client) ReplyToReview(ctx context.Context, accountID, locationID, reviewID, comment string) (*ReviewReply, error) {
	path := fmt.Sprintf("/%s/%s/%s/reply",
		NormalizeAccountName(accountID),
		NormalizeLocationName(locationID),
		NormalizeReviewName(reviewID),
	)
	var reply ReviewReply
	if err := c.do(ctx, "PUT", path, nil, map[string]string{"comment": comment}, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}
