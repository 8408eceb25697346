package mybusiness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/mybusinessbusinessinformation/v1"
)

func TestTrimResourcePrefix(t *testing.T) {
	assert.Equal(t, "123", trimResourcePrefix("accounts/123", "accounts/"))
	assert.Equal(t, "456", trimResourcePrefix("locations/456", "locations/"))
	assert.Equal(t, "789", trimResourcePrefix("789", "accounts/"))
	assert.Equal(t, "accounts/1", trimResourcePrefix("accounts/1", "locations/"))
}

func TestFormatAddress(t *testing.T) {
	loc := &mybusinessbusinessinformation.Location{
		StorefrontAddress: &mybusinessbusinessinformation.PostalAddress{
			AddressLines:       []string{"Av. Reforma 123", "Piso 2"},
			Locality:           "Ciudad de México",
			AdministrativeArea: "CDMX",
		},
	}
	assert.Equal(t, "Av. Reforma 123, Piso 2, Ciudad de México, CDMX", formatAddress(loc))
}

func TestFormatAddressWithoutStorefront(t *testing.T) {
	assert.Equal(t, "", formatAddress(&mybusinessbusinessinformation.Location{}))
}
