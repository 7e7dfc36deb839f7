package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"gamebuy/internal/domain/model"
	repo "gamebuy/internal/repository"

	"github.com/shopspring/decimal"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

type CatalogUsecase struct {
	gameRepo repo.GameRepository
}

// DI
func NewCatalogUsecase(gameRepo repo.GameRepository) *CatalogUsecase {
	return &CatalogUsecase{gameRepo: gameRepo}
}

// GET /gamesの入力DTO
type ListGamesInput struct {
	Page  int
	Limit int
	Q     string
}

// 価格の派生値（割引後価格と表示ラベル）も一緒に返す
type GameOutput struct {
	ID                 int64            `json:"id"`
	Title              string           `json:"title"`
	Description        string           `json:"description"`
	Platform           string           `json:"platform"`
	Genre              string           `json:"genre"`
	ReleaseDate        *time.Time       `json:"release_date"`
	Price              *decimal.Decimal `json:"price"`
	DiscountPercentage int              `json:"discount_percentage"`
	IsFree             bool             `json:"is_free"`
	InStock            bool             `json:"in_stock"`
	DiscountedPrice    decimal.Decimal  `json:"discounted_price"`
	DisplayPrice       string           `json:"display_price"`
}

type GameListOutput struct {
	Items []GameOutput `json:"items"`
	Total int64        `json:"total"`
	Page  int          `json:"page"`
	Limit int          `json:"limit"`
}

func toGameOutput(g model.Game) GameOutput {
	return GameOutput{
		ID:                 g.ID,
		Title:              g.Title,
		Description:        g.Description,
		Platform:           g.Platform,
		Genre:              g.Genre,
		ReleaseDate:        g.ReleaseDate,
		Price:              g.Price,
		DiscountPercentage: g.DiscountPercentage,
		IsFree:             g.IsFree,
		InStock:            g.InStock,
		DiscountedPrice:    g.DiscountedPrice(),
		DisplayPrice:       g.DisplayPrice(),
	}
}

// 在庫ありのゲーム一覧
func (u *CatalogUsecase) ListGames(ctx context.Context, in ListGamesInput) (GameListOutput, error) {
	if in.Page < 1 {
		return GameListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return GameListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}
	if len(in.Q) > 100 {
		return GameListOutput{}, NewHTTPError(http.StatusBadRequest, "q too long")
	}

	games, total, err := u.gameRepo.ListInStock(ctx, repo.GameListQuery{
		Page:  in.Page,
		Limit: in.Limit,
		Q:     strings.TrimSpace(in.Q),
	})
	if err != nil {
		return GameListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items := make([]GameOutput, 0, len(games))
	for _, g := range games {
		items = append(items, toGameOutput(g))
	}

	return GameListOutput{
		Items: items,
		Total: total,
		Page:  in.Page,
		Limit: in.Limit,
	}, nil
}

// 詳細ページは在庫切れでも見せる
func (u *CatalogUsecase) GetGameDetail(ctx context.Context, gameID int64) (GameOutput, error) {
	if gameID <= 0 {
		return GameOutput{}, NewHTTPError(http.StatusBadRequest, "invalid game id")
	}

	g, err := u.gameRepo.FindByID(ctx, gameID)
	if err == repo.ErrNotFound {
		return GameOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return GameOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toGameOutput(g), nil
}
