package repository

import (
	"context"

	"gamebuy/internal/domain/model"
)

type RefreshTokenRepository interface {
	Create(ctx context.Context, token *model.RefreshToken) error
	// 該当なしはErrNotFound
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
}
