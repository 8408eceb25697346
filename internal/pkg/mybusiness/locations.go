package mybusiness

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/mybusinessbusinessinformation/v1"
	"google.golang.org/api/option"

	"github.com/Jacobisaldana/nativoseo-app/internal/pkg/googleauth"
)

const locationReadMask = "name,title,storefrontAddress,phoneNumbers,websiteUri,openInfo"

// Location is the slice of the Business Information resource the app caches.
type Location struct {
	LocationID     string `json:"location_id"`
	Title          string `json:"title"`
	Address        string `json:"address"`
	PhoneNumber    string `json:"phone_number"`
	Website        string `json:"website"`
	BusinessStatus string `json:"business_status"`
}

// ListLocations lists the locations of one account. accountID may be the
// bare ID or the full "accounts/..." resource name.
func ListLocations(ctx context.Context, cred *googleauth.Credential, accountID string) ([]Location, error) {
	svc, err := mybusinessbusinessinformation.NewService(ctx, option.WithTokenSource(cred.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("business information service: %w", err)
	}

	parent := NormalizeAccountName(accountID)
	var locations []Location
	pageToken := ""
	for {
		call := svc.Accounts.Locations.List(parent).Context(ctx).ReadMask(locationReadMask).PageSize(100)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("list locations for %s: %w", parent, err)
		}
		for _, l := range resp.Locations {
			loc := Location{
				LocationID: trimResourcePrefix(l.Name, "locations/"),
				Title:      l.Title,
				Address:    formatAddress(l),
				Website:    l.WebsiteUri,
			}
			if l.PhoneNumbers != nil {
				loc.PhoneNumber = l.PhoneNumbers.PrimaryPhone
			}
			if l.OpenInfo != nil {
				loc.BusinessStatus = l.OpenInfo.Status
			}
			locations = append(locations, loc)
		}
		if resp.NextPageToken == "" {
			break
		}
		pageToken = resp.NextPageToken
	}
	return locations, nil
}

func formatAddress(l *mybusinessbusinessinformation.Location) string {
	if l.StorefrontAddress == nil {
		return ""
	}
	parts := append([]string{}, l.StorefrontAddress.AddressLines...)
	if l.StorefrontAddress.Locality != "" {
		parts = append(parts, l.StorefrontAddress.Locality)
	}
	if l.StorefrontAddress.AdministrativeArea != "" {
		parts = append(parts, l.StorefrontAddress.AdministrativeArea)
	}
	return strings.Join(parts, ", ")
}
