package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"gamebuy/internal/repository"
)

// refresh tokenを失効させるだけの処理。
// 既に失効済み・存在しないトークンでも成功扱い（ログアウトは冪等でよい）。
type LogoutUsecase struct {
	rtRepo repository.RefreshTokenRepository
}

func NewLogoutUsecase(rtRepo repository.RefreshTokenRepository) *LogoutUsecase {
	return &LogoutUsecase{rtRepo: rtRepo}
}

func (u *LogoutUsecase) Execute(ctx context.Context, plainRefreshToken string) error {
	if plainRefreshToken == "" {
		return nil
	}

	hash := sha256.Sum256([]byte(plainRefreshToken))
	refreshHash := hex.EncodeToString(hash[:])

	err := u.rtRepo.RevokeByTokenHash(ctx, refreshHash)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	return err
}
