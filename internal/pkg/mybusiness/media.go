package mybusiness

import (
	"context"
	"fmt"
)

// MediaItem mirrors the v4 media resource.
type MediaItem struct {
	Name                string               `json:"name,omitempty"`
	MediaFormat         string               `json:"mediaFormat"`
	SourceURL           string               `json:"sourceUrl,omitempty"`
	GoogleURL           string               `json:"googleUrl,omitempty"`
	Description         string               `json:"description,omitempty"`
	LocationAssociation *LocationAssociation `json:"locationAssociation,omitempty"`
	CreateTime          string               `json:"createTime,omitempty"`
}

type LocationAssociation struct {
	Category string `json:"category"`
}

// AttachPhoto attaches an externally hosted photo to a location.
func (c *V4Client) AttachPhoto(ctx context.Context, accountID, locationID, sourceURL, description string) (*MediaItem, error) {
	body := MediaItem{
		MediaFormat:         "PHOTO",
		SourceURL:           sourceURL,
		Description:         description,
		LocationAssociation: &LocationAssociation{Category: "INTERIOR"},
	}

	path := fmt.Sprintf("/%s/%s/media", NormalizeAccountName(accountID), NormalizeLocationName(locationID))
	var created MediaItem
	if err := c.do(ctx, "POST", path, nil, body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
