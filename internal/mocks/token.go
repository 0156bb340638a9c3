package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/fitplan/backend/internal/types"
)

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateToken(subject string, ttl time.Duration) (string, error) {
	args := m.Called(subject, ttl)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) ValidateToken(token string) (*types.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.TokenClaims), args.Error(1)
}
