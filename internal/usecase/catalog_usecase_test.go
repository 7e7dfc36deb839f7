package usecase_test

import (
	"context"
	"testing"

	"gamebuy/internal/domain/model"
	repo "gamebuy/internal/repository"
	"gamebuy/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCatalogUsecase_ListGames_InvalidPage(t *testing.T) {
	uc := usecase.NewCatalogUsecase(new(GameRepoMock))

	_, err := uc.ListGames(context.Background(), usecase.ListGamesInput{Page: 0, Limit: 20})
	assertErrContains(t, err, "invalid page")
}

func TestCatalogUsecase_ListGames_InvalidLimit(t *testing.T) {
	uc := usecase.NewCatalogUsecase(new(GameRepoMock))

	_, err := uc.ListGames(context.Background(), usecase.ListGamesInput{Page: 1, Limit: 101})
	assertErrContains(t, err, "invalid limit")
}

func TestCatalogUsecase_ListGames_Success_TrimsQuery(t *testing.T) {
	gameRepo := new(GameRepoMock)

	gameRepo.On("ListInStock", mock.Anything, repo.GameListQuery{Page: 1, Limit: 20, Q: "elden"}).
		Return([]model.Game{
			{ID: 10, Title: "Elden Throne", Price: gamePrice("1000"), DiscountPercentage: 10, InStock: true},
		}, int64(1), nil)

	uc := usecase.NewCatalogUsecase(gameRepo)

	out, err := uc.ListGames(context.Background(), usecase.ListGamesInput{Page: 1, Limit: 20, Q: "  elden  "})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), out.Total)
	assert.Len(t, out.Items, 1)

	// 割引後価格と表示ラベルは一覧にも載せる
	assert.True(t, out.Items[0].DiscountedPrice.Equal(decimal.RequireFromString("900")))
	assert.Equal(t, "1,000 KZT", out.Items[0].DisplayPrice)
}

func TestCatalogUsecase_GetGameDetail_NotFound(t *testing.T) {
	gameRepo := new(GameRepoMock)
	gameRepo.On("FindByID", mock.Anything, int64(99)).Return(model.Game{}, repo.ErrNotFound)

	uc := usecase.NewCatalogUsecase(gameRepo)

	_, err := uc.GetGameDetail(context.Background(), 99)
	assertErrContains(t, err, "not found")
}

func TestCatalogUsecase_GetGameDetail_OutOfStockStillVisible(t *testing.T) {
	gameRepo := new(GameRepoMock)
	gameRepo.On("FindByID", mock.Anything, int64(10)).
		Return(model.Game{ID: 10, Title: "Elden Throne", IsFree: true, InStock: false}, nil)

	uc := usecase.NewCatalogUsecase(gameRepo)

	out, err := uc.GetGameDetail(context.Background(), 10)
	assert.NoError(t, err)
	assert.False(t, out.InStock)
	assert.Equal(t, "FREE", out.DisplayPrice)
}

// =====================
// AdminGameUsecase
// =====================

func TestAdminGameUsecase_CreateGame_Validation(t *testing.T) {
	uc := usecase.NewAdminGameUsecase(new(GameRepoMock))

	_, err := uc.CreateGame(context.Background(), usecase.SaveGameInput{Title: "  "})
	assertErrContains(t, err, "title is required")

	_, err = uc.CreateGame(context.Background(), usecase.SaveGameInput{Title: "X", DiscountPercentage: 101})
	assertErrContains(t, err, "discount_percentage")

	neg := decimal.RequireFromString("-1")
	_, err = uc.CreateGame(context.Background(), usecase.SaveGameInput{Title: "X", Price: &neg})
	assertErrContains(t, err, "price must be >= 0")
}

func TestAdminGameUsecase_CreateGame_Success(t *testing.T) {
	gameRepo := new(GameRepoMock)

	gameRepo.On("Create", mock.Anything, mock.MatchedBy(func(g model.Game) bool {
		return g.Title == "Elden Throne" && g.DiscountPercentage == 10
	})).Return(model.Game{ID: 10, Title: "Elden Throne", Price: gamePrice("1000"), DiscountPercentage: 10, InStock: true}, nil)

	uc := usecase.NewAdminGameUsecase(gameRepo)

	out, err := uc.CreateGame(context.Background(), usecase.SaveGameInput{
		Title:              "  Elden Throne  ",
		Price:              gamePrice("1000"),
		DiscountPercentage: 10,
		InStock:            true,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(10), out.ID)
	assert.True(t, out.DiscountedPrice.Equal(decimal.RequireFromString("900")))
}

func TestAdminGameUsecase_UpdateGame_NotFound(t *testing.T) {
	gameRepo := new(GameRepoMock)
	gameRepo.On("FindByID", mock.Anything, int64(99)).Return(model.Game{}, repo.ErrNotFound)

	uc := usecase.NewAdminGameUsecase(gameRepo)

	_, err := uc.UpdateGame(context.Background(), 99, usecase.SaveGameInput{Title: "X"})
	assertErrContains(t, err, "not found")
}

func TestAdminGameUsecase_UpdateGame_CanClearPrice(t *testing.T) {
	gameRepo := new(GameRepoMock)

	gameRepo.On("FindByID", mock.Anything, int64(10)).
		Return(model.Game{ID: 10, Title: "Elden Throne", Price: gamePrice("1000")}, nil)
	gameRepo.On("Update", mock.Anything, mock.MatchedBy(func(g model.Game) bool {
		return g.ID == 10 && g.Price == nil && g.IsFree
	})).Return(nil)

	uc := usecase.NewAdminGameUsecase(gameRepo)

	out, err := uc.UpdateGame(context.Background(), 10, usecase.SaveGameInput{
		Title:  "Elden Throne",
		Price:  nil,
		IsFree: true,
	})
	assert.NoError(t, err)
	assert.Nil(t, out.Price)
	assert.Equal(t, "FREE", out.DisplayPrice)

	gameRepo.AssertExpectations(t)
}
