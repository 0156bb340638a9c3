package service

import "errors"

var (
	ErrUserExists      = errors.New("user already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrPlanNotFound    = errors.New("plan not found")
	ErrArchiveDisabled = errors.New("recommendation archive is not configured")
	ErrInvalidToken    = errors.New("invalid token")
	ErrTokenExpired    = errors.New("token has expired")
)
