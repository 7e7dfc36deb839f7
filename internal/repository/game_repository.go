package repository

import (
	"context"
	"errors"

	"gamebuy/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 一覧検索
type GameListQuery struct {
	Page  int
	Limit int
	Q     string
}

// ゲームの永続化（保存・取得）だけを約束。
type GameRepository interface {
	ListInStock(ctx context.Context, q GameListQuery) ([]model.Game, int64, error)
	FindByID(ctx context.Context, id int64) (model.Game, error)

	Create(ctx context.Context, g model.Game) (model.Game, error)
	Update(ctx context.Context, g model.Game) error
}
