package storage

import (
	"strings"

	"github.com/Jacobisaldana/nativoseo-app/internal/pkg/env"
)

// Config describes the S3-compatible bucket that holds uploaded media
// before it is attached to a location. A MinIO deployment is the usual
// target, any S3 endpoint works.
type Config struct {
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicBaseURL   string
}

// LoadConfig reads the storage configuration from the environment.
func LoadConfig() *Config {
	return &Config{
		Endpoint:        env.GetEnv("STORAGE_ENDPOINT", ""),
		Region:          env.GetEnv("STORAGE_REGION", "us-east-1"),
		AccessKeyID:     env.GetEnv("STORAGE_ACCESS_KEY", ""),
		SecretAccessKey: env.GetEnv("STORAGE_SECRET_KEY", ""),
		Bucket:          env.GetEnv("STORAGE_BUCKET", "temp-images"),
		PublicBaseURL:   strings.TrimRight(env.GetEnv("STORAGE_PUBLIC_BASE_URL", ""), "/"),
	}
}

// IsEnabled reports whether enough configuration exists to upload.
func (c *Config) IsEnabled() bool {
	return c.Endpoint != "" && c.AccessKeyID != "" && c.SecretAccessKey != ""
}

// ObjectURL builds the public URL of an uploaded object.
func (c *Config) ObjectURL(key string) string {
	base := c.PublicBaseURL
	if base == "" {
		base = strings.TrimRight(c.Endpoint, "/")
	}
	return base + "/" + c.Bucket + "/" + key
}
