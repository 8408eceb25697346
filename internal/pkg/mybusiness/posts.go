package mybusiness

import (
	"context"
	"fmt"
)

// LocalPost mirrors the v4 local post resource.
type LocalPost struct {
	Name         string        `json:"name,omitempty"`
	LanguageCode string        `json:"languageCode,omitempty"`
	Summary      string        `json:"summary"`
	CallToAction *CallToAction `json:"callToAction,omitempty"`
	Media        []PostMedia   `json:"media,omitempty"`
	TopicType    string        `json:"topicType,omitempty"`
	State        string        `json:"state,omitempty"`
	SearchURL    string        `json:"searchUrl,omitempty"`
	CreateTime   string        `json:"createTime,omitempty"`
	UpdateTime   string        `json:"updateTime,omitempty"`
}

type CallToAction struct {
	ActionType string `json:"actionType"`
	URL        string `json:"url,omitempty"`
}

type PostMedia struct {
	MediaFormat string `json:"mediaFormat"`
	SourceURL   string `json:"sourceUrl"`
}

// NewLocalPost describes a post to publish.
type NewLocalPost struct {
	Summary      string
	LanguageCode string
	MediaURL     string
	CTAType      string
	CTAURL       string
}

// CreateLocalPost publishes a standard local post on a location.
func (c *V4Client) CreateLocalPost(ctx context.Context, accountID, locationID string, post NewLocalPost) (*LocalPost, error) {
	body := LocalPost{
		LanguageCode: post.LanguageCode,
		Summary:      post.Summary,
		TopicType:    "STANDARD",
	}
	if body.LanguageCode == "" {
		body.LanguageCode = "es"
	}
	if post.CTAType != "" {
		body.CallToAction = &CallToAction{ActionType: post.CTAType, URL: post.CTAURL}
	}
	if post.MediaURL != "" {
		body.Media = []PostMedia{{MediaFormat: "PHOTO", SourceURL: post.MediaURL}}
	}

	path := fmt.Sprintf("/%s/%s/localPosts", NormalizeAccountName(accountID), NormalizeLocationName(locationID))
	var created LocalPost
	if err := c.do(ctx, "POST", path, nil, body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
