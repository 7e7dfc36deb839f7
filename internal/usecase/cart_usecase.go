package usecase

import (
	"context"
	"fmt"
	"net/http"

	"gamebuy/internal/domain/model"
	repo "gamebuy/internal/repository"

	"github.com/shopspring/decimal"
)

func newCartItem(cartID int64, gameID int64) model.CartItem {
	return model.CartItem{
		CartID:   cartID,
		GameID:   gameID,
		Quantity: 1,
	}
}

// CartUsecase は /cart の業務ロジックです。
// カートの金額は保存せず、毎回ライブ価格から計算し直します。
type CartUsecase struct {
	cartRepo     repo.CartRepository
	cartItemRepo repo.CartItemRepository
	gameRepo     repo.GameRepository
}

func NewCartUsecase(
	cartRepo repo.CartRepository,
	cartItemRepo repo.CartItemRepository,
	gameRepo repo.GameRepository,
) *CartUsecase {
	return &CartUsecase{
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		gameRepo:     gameRepo,
	}
}

// unit_priceはこの瞬間の割引後価格
type CartItemResponse struct {
	ID        int64           `json:"id"`
	GameID    int64           `json:"game_id"`
	Title     string          `json:"title"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int64           `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

type CartResponse struct {
	Items      []CartItemResponse `json:"items"`
	TotalItems int64              `json:"total_items"`
	TotalPrice decimal.Decimal    `json:"total_price"`
}

// バッジ更新用にカート内件数も返す
type AddToCartResponse struct {
	Message   string `json:"message"`
	CartTotal int64  `json:"cart_total"`
}

// OAS: UpdateCartItemRequest
type UpdateCartItemInput struct {
	Quantity int64
}

// GetCart はカート取得（無ければ作って空を返す）。
func (u *CartUsecase) GetCart(ctx context.Context, userID int64) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	cart, err := u.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, cart.ID)
}

// AddToCart はカートに追加。
// 初回は数量1で作成、既にあれば数量を+1する（同じゲームで行は増やさない）。
func (u *CartUsecase) AddToCart(ctx context.Context, userID int64, gameID int64) (AddToCartResponse, error) {
	if userID <= 0 {
		return AddToCartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if gameID <= 0 {
		return AddToCartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid game id")
	}

	// ゲームの存在チェック
	g, err := u.gameRepo.FindByID(ctx, gameID)
	if err == repo.ErrNotFound {
		return AddToCartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return AddToCartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// カート取得（無ければ作成）
	cart, err := u.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return AddToCartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	var message string

	item, err := u.cartItemRepo.FindByCartAndGame(ctx, cart.ID, gameID)
	switch {
	case err == repo.ErrNotFound:
		// 新規は数量1
		if _, err := u.cartItemRepo.Create(ctx, newCartItem(cart.ID, gameID)); err != nil {
			return AddToCartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		message = fmt.Sprintf("%s added to cart", g.Title)
	case err != nil:
		return AddToCartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	default:
		// 既存は数量加算
		if err := u.cartItemRepo.UpdateQuantity(ctx, item.ID, item.Quantity+1); err != nil {
			return AddToCartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		message = fmt.Sprintf("%s quantity increased", g.Title)
	}

	resp, err := u.buildCartResponse(ctx, cart.ID)
	if err != nil {
		return AddToCartResponse{}, err
	}

	return AddToCartResponse{
		Message:   message,
		CartTotal: resp.TotalItems,
	}, nil
}

// 数量変更。0以下は「削除」に倒す（エラーにしない方針）。
func (u *CartUsecase) UpdateCartItem(ctx context.Context, userID int64, cartItemID int64, in UpdateCartItemInput) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if cartItemID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	// 所有者スコープの1クエリ。他人の明細はnot found。
	item, err := u.cartItemRepo.FindForUser(ctx, cartItemID, userID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if in.Quantity > 0 {
		if err := u.cartItemRepo.UpdateQuantity(ctx, item.ID, in.Quantity); err != nil {
			if err == repo.ErrNotFound {
				return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
			}
			return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
	} else {
		// 数量0は永続化しない
		if err := u.cartItemRepo.DeleteByID(ctx, item.ID); err != nil {
			if err == repo.ErrNotFound {
				return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
			}
			return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
	}

	return u.buildCartResponse(ctx, item.CartID)
}

// 明細削除
func (u *CartUsecase) RemoveCartItem(ctx context.Context, userID int64, cartItemID int64) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if cartItemID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	item, err := u.cartItemRepo.FindForUser(ctx, cartItemID, userID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.cartItemRepo.DeleteByID(ctx, item.ID); err != nil {
		if err == repo.ErrNotFound {
			return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, item.CartID)
}

// cartIDの明細をまとめてCartResponseを作る。
// 合計は保存値ではなく、呼ばれるたびに計算し直す。
// ゲームが消えている明細は件数にも金額にも入れない。
func (u *CartUsecase) buildCartResponse(ctx context.Context, cartID int64) (CartResponse, error) {
	items, err := u.cartItemRepo.ListByCartID(ctx, cartID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	respItems := make([]CartItemResponse, 0, len(items))
	var totalItems int64 = 0
	totalPrice := decimal.Zero

	for _, it := range items {
		g, err := u.gameRepo.FindByID(ctx, it.GameID)
		if err == repo.ErrNotFound {
			// 消えたゲームの明細だけ落とす
			continue
		}
		if err != nil {
			return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}

		unit := g.DiscountedPrice()
		lineTotal := unit.Mul(decimal.NewFromInt(it.Quantity))

		respItems = append(respItems, CartItemResponse{
			ID:        it.ID,
			GameID:    it.GameID,
			Title:     g.Title,
			UnitPrice: unit,
			Quantity:  it.Quantity,
			LineTotal: lineTotal,
		})

		totalItems += it.Quantity
		totalPrice = totalPrice.Add(lineTotal)
	}

	return CartResponse{
		Items:      respItems,
		TotalItems: totalItems,
		TotalPrice: totalPrice,
	}, nil
}
