package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockArchiveStore stands in for the S3 recommendation archive
type MockArchiveStore struct {
	mock.Mock
}

func (m *MockArchiveStore) PutJSON(ctx context.Context, objectKey string, body []byte) error {
	args := m.Called(ctx, objectKey, body)
	return args.Error(0)
}

func (m *MockArchiveStore) GeneratePresignedURL(ctx context.Context, objectKey string, expiration time.Duration) (string, error) {
	args := m.Called(ctx, objectKey, expiration)
	return args.String(0), args.Error(1)
}
