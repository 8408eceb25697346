package storage

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigIsEnabled(t *testing.T) {
	full := &Config{Endpoint: "http://minio:9000", AccessKeyID: "key", SecretAccessKey: "secret"}
	assert.True(t, full.IsEnabled())

	assert.False(t, (&Config{}).IsEnabled())
	assert.False(t, (&Config{Endpoint: "http://minio:9000"}).IsEnabled())
}

func TestObjectURL(t *testing.T) {
	cfg := &Config{Endpoint: "http://minio:9000", Bucket: "temp-images"}
	assert.Equal(t, "http://minio:9000/temp-images/a.jpg", cfg.ObjectURL("a.jpg"))

	// A public base URL wins over the raw endpoint.
	cfg.PublicBaseURL = "https://media.example.com"
	assert.Equal(t, "https://media.example.com/temp-images/a.jpg", cfg.ObjectURL("a.jpg"))
}

func TestObjectKeyKeepsExtension(t *testing.T) {
	key := ObjectKey("Fachada Principal.JPG")
	assert.True(t, strings.HasSuffix(key, ".jpg"), key)

	id := strings.TrimSuffix(key, ".jpg")
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	assert.NotEqual(t, ObjectKey("a.png"), ObjectKey("a.png"), "keys are unique per upload")
}

func TestObjectKeyWithoutExtension(t *testing.T) {
	key := ObjectKey("photo")
	_, err := uuid.Parse(key)
	require.NoError(t, err)
}
