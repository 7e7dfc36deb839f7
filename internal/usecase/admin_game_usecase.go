package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"gamebuy/internal/domain/model"
	repo "gamebuy/internal/repository"

	"github.com/shopspring/decimal"
)

// ゲーム台帳の管理（登録・更新）。ストア側からは読み取り専用。
type AdminGameUsecase struct {
	gameRepo repo.GameRepository
}

// DI
func NewAdminGameUsecase(gameRepo repo.GameRepository) *AdminGameUsecase {
	return &AdminGameUsecase{gameRepo: gameRepo}
}

type SaveGameInput struct {
	Title              string
	Description        string
	Platform           string
	Genre              string
	ReleaseDate        *time.Time
	Price              *decimal.Decimal
	DiscountPercentage int
	IsFree             bool
	InStock            bool
}

func validateSaveGameInput(in SaveGameInput) error {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if len(title) > 200 {
		return NewHTTPError(http.StatusBadRequest, "title too long")
	}
	if in.DiscountPercentage < 0 || in.DiscountPercentage > 100 {
		return NewHTTPError(http.StatusBadRequest, "discount_percentage must be 0-100")
	}
	if in.Price != nil && in.Price.IsNegative() {
		return NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	return nil
}

func (u *AdminGameUsecase) CreateGame(ctx context.Context, in SaveGameInput) (GameOutput, error) {
	if err := validateSaveGameInput(in); err != nil {
		return GameOutput{}, err
	}

	g, err := u.gameRepo.Create(ctx, model.Game{
		Title:              strings.TrimSpace(in.Title),
		Description:        in.Description,
		Platform:           in.Platform,
		Genre:              in.Genre,
		ReleaseDate:        in.ReleaseDate,
		Price:              in.Price,
		DiscountPercentage: in.DiscountPercentage,
		IsFree:             in.IsFree,
		InStock:            in.InStock,
	})
	if err != nil {
		return GameOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toGameOutput(g), nil
}

func (u *AdminGameUsecase) UpdateGame(ctx context.Context, gameID int64, in SaveGameInput) (GameOutput, error) {
	if gameID <= 0 {
		return GameOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := validateSaveGameInput(in); err != nil {
		return GameOutput{}, err
	}

	g, err := u.gameRepo.FindByID(ctx, gameID)
	if err == repo.ErrNotFound {
		return GameOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return GameOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	g.Title = strings.TrimSpace(in.Title)
	g.Description = in.Description
	g.Platform = in.Platform
	g.Genre = in.Genre
	g.ReleaseDate = in.ReleaseDate
	g.Price = in.Price
	g.DiscountPercentage = in.DiscountPercentage
	g.IsFree = in.IsFree
	g.InStock = in.InStock

	if err := u.gameRepo.Update(ctx, g); err != nil {
		if err == repo.ErrNotFound {
			return GameOutput{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return GameOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toGameOutput(g), nil
}
