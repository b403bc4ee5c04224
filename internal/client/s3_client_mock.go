package client

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// MockS3Client is a mock implementation of S3ClientInterface for testing
type MockS3Client struct {
	GenerateFileKeyFunc func(entityType, fileName string) string
	UploadFileFunc      func(ctx context.Context, key string, file io.Reader, contentType string) (string, error)
	DeleteFileFunc      func(ctx context.Context, key string) error
	GetFileURLFunc      func(key string) string
	KeyFromURLFunc      func(url string) (string, bool)

	// UploadedKeys and DeletedKeys record calls for assertions
	UploadedKeys []string
	DeletedKeys  []string
}

// NewMockS3Client creates a new mock S3 client with default behaviors
func NewMockS3Client() *MockS3Client {
	return &MockS3Client{}
}

func (m *MockS3Client) GenerateFileKey(entityType, fileName string) string {
	if m.GenerateFileKeyFunc != nil {
		return m.GenerateFileKeyFunc(entityType, fileName)
	}
	return fmt.Sprintf("content/%s/2025/01/mock-uuid_1700000000_%s", entityType, fileName)
}

func (m *MockS3Client) UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error) {
	m.UploadedKeys = append(m.UploadedKeys, key)
	if m.UploadFileFunc != nil {
		return m.UploadFileFunc(ctx, key, file, contentType)
	}
	return m.GetFileURL(key), nil
}

func (m *MockS3Client) DeleteFile(ctx context.Context, key string) error {
	m.DeletedKeys = append(m.DeletedKeys, key)
	if m.DeleteFileFunc != nil {
		return m.DeleteFileFunc(ctx, key)
	}
	return nil
}

func (m *MockS3Client) GetFileURL(key string) string {
	if m.GetFileURLFunc != nil {
		return m.GetFileURLFunc(key)
	}
	return "https://mock-bucket.s3.ap-northeast-2.amazonaws.com/" + key
}

func (m *MockS3Client) KeyFromURL(url string) (string, bool) {
	if m.KeyFromURLFunc != nil {
		return m.KeyFromURLFunc(url)
	}
	prefix := "https://mock-bucket.s3.ap-northeast-2.amazonaws.com/"
	if strings.HasPrefix(url, prefix) && url != prefix {
		return strings.TrimPrefix(url, prefix), true
	}
	return "", false
}

var _ S3ClientInterface = (*MockS3Client)(nil)
