package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListingCacheKeys(t *testing.T) {
	assert.Equal(t, "gmb:accounts:42", accountCacheKey(42))
	assert.Equal(t, "gmb:locations:42:106", locationCacheKey(42, "106"))

	// Keys are scoped per user and per account, never shared.
	assert.NotEqual(t, accountCacheKey(42), accountCacheKey(7))
	assert.NotEqual(t, locationCacheKey(42, "106"), locationCacheKey(42, "107"))
	assert.NotEqual(t, locationCacheKey(42, "106"), locationCacheKey(7, "106"))
}
