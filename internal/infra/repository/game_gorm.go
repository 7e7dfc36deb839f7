package repository

import (
	"context"
	"errors"
	"strings"

	"gamebuy/internal/domain/model"
	repo "gamebuy/internal/repository"

	"gorm.io/gorm"
)

type GameGormRepository struct {
	db *gorm.DB
}

// DI
func NewGameGormRepository(db *gorm.DB) *GameGormRepository {
	return &GameGormRepository{db: db}
}

// 在庫あり（in_stock=true）のゲームを、タイトル検索とページング付きで返す。
// 並びは新着順。
func (r *GameGormRepository) ListInStock(ctx context.Context, q repo.GameListQuery) ([]model.Game, int64, error) {
	var games []model.Game
	var total int64

	tx := r.db.WithContext(ctx).Model(&model.Game{}).
		Where("in_stock = ?", true)

	if strings.TrimSpace(q.Q) != "" {
		like := "%" + strings.TrimSpace(q.Q) + "%"
		tx = tx.Where("title ILIKE ?", like)
	}

	if err := tx.Count(&total).Error; err != nil {
		return []model.Game{}, 0, err
	}

	offset := (q.Page - 1) * q.Limit
	if err := tx.Order("created_at desc").Limit(q.Limit).Offset(offset).Find(&games).Error; err != nil {
		return []model.Game{}, 0, err
	}

	return games, total, nil
}

func (r *GameGormRepository) FindByID(ctx context.Context, id int64) (model.Game, error) {
	var g model.Game
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&g).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Game{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Game{}, err
	}
	return g, nil
}

func (r *GameGormRepository) Create(ctx context.Context, g model.Game) (model.Game, error) {
	if err := r.db.WithContext(ctx).Create(&g).Error; err != nil {
		return model.Game{}, err
	}
	return g, nil
}

// ゼロ値（false、nil price）も反映したいのでSelectで列を固定する
func (r *GameGormRepository) Update(ctx context.Context, g model.Game) error {
	res := r.db.WithContext(ctx).Model(&model.Game{}).
		Where("id = ?", g.ID).
		Select("title", "description", "platform", "genre", "release_date",
			"price", "discount_percentage", "is_free", "in_stock").
		Updates(&g)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
