package repository

import (
	"context"

	"gamebuy/internal/domain/model"
)

type CartItemRepository interface {
	ListByCartID(ctx context.Context, cartID int64) ([]model.CartItem, error)
	FindByCartAndGame(ctx context.Context, cartID int64, gameID int64) (model.CartItem, error)
	// 所有者スコープの単一クエリ。他人の明細はErrNotFound（存在を漏らさない）。
	FindForUser(ctx context.Context, cartItemID int64, userID int64) (model.CartItem, error)

	Create(ctx context.Context, item model.CartItem) (model.CartItem, error)
	UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error
	DeleteByID(ctx context.Context, cartItemID int64) error
}
