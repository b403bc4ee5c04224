package client

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-admin-api/internal/config"
)

func newTestClient(t *testing.T, endpoint string) *S3Client {
	t.Helper()

	cfg := &config.S3Config{
		Bucket:    "test-bucket",
		Region:    "ap-northeast-2",
		Endpoint:  endpoint,
		AccessKey: "test-access-key",
		SecretKey: "test-secret-key",
	}
	if endpoint == "" {
		cfg.AccessKey = ""
		cfg.SecretKey = ""
	}

	client, err := NewS3Client(cfg)
	require.NoError(t, err)
	return client
}

func TestNewS3Client(t *testing.T) {
	t.Run("fails without bucket", func(t *testing.T) {
		_, err := NewS3Client(&config.S3Config{Region: "ap-northeast-2"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "bucket")
	})

	t.Run("fails without region", func(t *testing.T) {
		_, err := NewS3Client(&config.S3Config{Bucket: "test-bucket"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "region")
	})

	t.Run("fails for MinIO endpoint without credentials", func(t *testing.T) {
		_, err := NewS3Client(&config.S3Config{
			Bucket:   "test-bucket",
			Region:   "ap-northeast-2",
			Endpoint: "http://localhost:9000",
		})
		assert.Error(t, err)
	})
}

func TestGenerateFileKey(t *testing.T) {
	client := newTestClient(t, "")

	tests := []struct {
		name       string
		entityType string
		fileName   string
		wantExt    string
	}{
		{
			name:       "project image",
			entityType: "project",
			fileName:   "hero.png",
			wantExt:    ".png",
		},
		{
			name:       "category image",
			entityType: "category",
			fileName:   "thumbnail.jpg",
			wantExt:    ".jpg",
		},
		{
			name:       "file without extension",
			entityType: "project",
			fileName:   "raw",
			wantExt:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := time.Now()
			key := client.GenerateFileKey(tt.entityType, tt.fileName)

			wantPrefix := fmt.Sprintf("content/%s/%s/%s/", tt.entityType, now.Format("2006"), now.Format("01"))
			assert.True(t, strings.HasPrefix(key, wantPrefix),
				"key %q should start with %q", key, wantPrefix)
			assert.True(t, strings.HasSuffix(key, tt.wantExt))

			// {uuid}_{timestamp}{ext}
			base := strings.TrimPrefix(key, wantPrefix)
			parts := strings.SplitN(base, "_", 2)
			require.Len(t, parts, 2)
			assert.Len(t, parts[0], 36, "expected a UUID before the underscore")
		})
	}

	t.Run("keys are unique", func(t *testing.T) {
		first := client.GenerateFileKey("project", "hero.png")
		second := client.GenerateFileKey("project", "hero.png")
		assert.NotEqual(t, first, second)
	})
}

func TestGetFileURL(t *testing.T) {
	t.Run("AWS URL", func(t *testing.T) {
		client := newTestClient(t, "")

		url := client.GetFileURL("content/project/2025/01/abc_123.png")

		assert.Equal(t, "https://test-bucket.s3.ap-northeast-2.amazonaws.com/content/project/2025/01/abc_123.png", url)
	})

	t.Run("MinIO URL is path style", func(t *testing.T) {
		client := newTestClient(t, "http://localhost:9000")

		url := client.GetFileURL("content/project/2025/01/abc_123.png")

		assert.Equal(t, "http://localhost:9000/test-bucket/content/project/2025/01/abc_123.png", url)
	})

	t.Run("MinIO endpoint trailing slash is trimmed", func(t *testing.T) {
		client := newTestClient(t, "http://localhost:9000/")

		url := client.GetFileURL("key.png")

		assert.Equal(t, "http://localhost:9000/test-bucket/key.png", url)
	})
}

func TestKeyFromURL(t *testing.T) {
	t.Run("round trips AWS URLs", func(t *testing.T) {
		client := newTestClient(t, "")
		wantKey := "content/category/2025/01/abc_123.webp"

		key, ok := client.KeyFromURL(client.GetFileURL(wantKey))

		assert.True(t, ok)
		assert.Equal(t, wantKey, key)
	})

	t.Run("round trips MinIO URLs", func(t *testing.T) {
		client := newTestClient(t, "http://localhost:9000")
		wantKey := "content/project/2025/01/abc_123.png"

		key, ok := client.KeyFromURL(client.GetFileURL(wantKey))

		assert.True(t, ok)
		assert.Equal(t, wantKey, key)
	})

	t.Run("rejects URLs outside the bucket", func(t *testing.T) {
		client := newTestClient(t, "")

		tests := []string{
			"https://other-bucket.s3.ap-northeast-2.amazonaws.com/key.png",
			"https://example.com/image.png",
			"",
		}
		for _, url := range tests {
			key, ok := client.KeyFromURL(url)
			assert.False(t, ok, "url %q should not resolve", url)
			assert.Empty(t, key)
		}
	})

	t.Run("rejects the bare prefix", func(t *testing.T) {
		client := newTestClient(t, "")

		_, ok := client.KeyFromURL("https://test-bucket.s3.ap-northeast-2.amazonaws.com/")

		assert.False(t, ok)
	})
}

func TestMockS3Client(t *testing.T) {
	t.Run("default key round trips through default URL", func(t *testing.T) {
		mock := NewMockS3Client()
		wantKey := mock.GenerateFileKey("project", "hero.png")

		key, ok := mock.KeyFromURL(mock.GetFileURL(wantKey))

		assert.True(t, ok)
		assert.Equal(t, wantKey, key)
	})

	t.Run("records uploaded and deleted keys", func(t *testing.T) {
		mock := NewMockS3Client()

		_, err := mock.UploadFile(context.Background(), "a.png", strings.NewReader("data"), "image/png")
		require.NoError(t, err)
		require.NoError(t, mock.DeleteFile(context.Background(), "b.png"))

		assert.Equal(t, []string{"a.png"}, mock.UploadedKeys)
		assert.Equal(t, []string{"b.png"}, mock.DeletedKeys)
	})
}
