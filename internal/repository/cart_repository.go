package repository

import (
	"context"

	"gamebuy/internal/domain/model"
)

type CartRepository interface {
	GetOrCreateByUserID(ctx context.Context, userID int64) (model.Cart, error)
	// checkout用。行ロックを取ってから返す（同一ユーザーの同時checkout防止）。
	LockByUserID(ctx context.Context, userID int64) (model.Cart, error)
	// 明細を全削除する。カート行自体は残す。
	Clear(ctx context.Context, cartID int64) error
}
