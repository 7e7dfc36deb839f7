package handler

import (
	"net/http"
	"strconv"
	"time"

	"gamebuy/internal/config"
	"gamebuy/internal/middleware"
	"gamebuy/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// ゲーム台帳は管理者だけが触れる
type AdminGameHandler struct {
	uc *usecase.AdminGameUsecase
}

// DI
func NewAdminGameHandler(uc *usecase.AdminGameUsecase) *AdminGameHandler {
	return &AdminGameHandler{uc: uc}
}

// priceはnull可（価格未設定）、release_dateはYYYY-MM-DD
type SaveGameRequest struct {
	Title              string           `json:"title"`
	Description        string           `json:"description"`
	Platform           string           `json:"platform"`
	Genre              string           `json:"genre"`
	ReleaseDate        *string          `json:"release_date"`
	Price              *decimal.Decimal `json:"price"`
	DiscountPercentage int              `json:"discount_percentage"`
	IsFree             bool             `json:"is_free"`
	InStock            bool             `json:"in_stock"`
}

func (h *AdminGameHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/admin/games")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.AdminRoleGuard())

	g.POST("", h.create)
	g.PATCH("/:id", h.update)
}

func toSaveGameInput(req SaveGameRequest) (usecase.SaveGameInput, error) {
	var releaseDate *time.Time
	if req.ReleaseDate != nil && *req.ReleaseDate != "" {
		t, err := time.Parse("2006-01-02", *req.ReleaseDate)
		if err != nil {
			return usecase.SaveGameInput{}, err
		}
		releaseDate = &t
	}

	return usecase.SaveGameInput{
		Title:              req.Title,
		Description:        req.Description,
		Platform:           req.Platform,
		Genre:              req.Genre,
		ReleaseDate:        releaseDate,
		Price:              req.Price,
		DiscountPercentage: req.DiscountPercentage,
		IsFree:             req.IsFree,
		InStock:            req.InStock,
	}, nil
}

func (h *AdminGameHandler) create(c echo.Context) error {
	var req SaveGameRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	in, err := toSaveGameInput(req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid release_date"})
	}

	out, err := h.uc.CreateGame(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *AdminGameHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req SaveGameRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	in, err := toSaveGameInput(req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid release_date"})
	}

	out, err := h.uc.UpdateGame(c.Request().Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
