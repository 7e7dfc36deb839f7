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

// =====================
// TxManager / TxRepos mocks
// =====================

// TxManagerMock は WithinTx の中で渡す repos を固定して unit テストを回す
type TxManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	m.Called(ctx)
	return fn(m.Repos)
}

type TxReposMock struct {
	games      repo.GameRepository
	carts      repo.CartRepository
	cartItems  repo.CartItemRepository
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
}

func (r *TxReposMock) Games() repo.GameRepository           { return r.games }
func (r *TxReposMock) Carts() repo.CartRepository           { return r.carts }
func (r *TxReposMock) CartItems() repo.CartItemRepository   { return r.cartItems }
func (r *TxReposMock) Orders() repo.OrderRepository         { return r.orders }
func (r *TxReposMock) OrderItems() repo.OrderItemRepository { return r.orderItems }

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) FindByIDForUser(ctx context.Context, orderID int64, userID int64) (model.Order, error) {
	args := m.Called(ctx, orderID, userID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) ListByUserID(ctx context.Context, userID int64, page int, limit int) ([]model.Order, int64, error) {
	args := m.Called(ctx, userID, page, limit)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Get(1).(int64), args.Error(2)
}

func (m *OrderRepoMock) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *OrderItemRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

// =====================
// Checkout
// =====================

func TestOrderUsecase_Checkout_SnapshotsDiscountedPrice(t *testing.T) {
	ctx := context.Background()

	cartRepo := new(CartRepoMock)
	itemRepo := new(CartItemRepoMock)
	gameRepo := new(GameRepoMock)
	orderRepo := new(OrderRepoMock)
	orderItemRepo := new(OrderItemRepoMock)

	tx := new(TxManagerMock)
	tx.Repos = &TxReposMock{
		games:      gameRepo,
		carts:      cartRepo,
		cartItems:  itemRepo,
		orders:     orderRepo,
		orderItems: orderItemRepo,
	}
	tx.On("WithinTx", mock.Anything).Return(nil)

	cartRepo.On("LockByUserID", mock.Anything, int64(1)).Return(model.Cart{ID: 5, UserID: 1}, nil)
	itemRepo.On("ListByCartID", mock.Anything, int64(5)).Return([]model.CartItem{
		{ID: 1, CartID: 5, GameID: 10, Quantity: 2},
	}, nil)

	// 1000の10%引き → 注文には900が焼き付く
	gameRepo.On("FindByID", mock.Anything, int64(10)).
		Return(model.Game{ID: 10, Title: "Elden Throne", Price: gamePrice("1000"), DiscountPercentage: 10}, nil)

	orderRepo.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.UserID == 1 &&
			o.Status == model.OrderStatusPending &&
			o.TotalPrice.Equal(decimal.RequireFromString("1800"))
	})).Return(int64(77), nil)

	orderItemRepo.On("CreateBulk", mock.Anything, int64(77), mock.MatchedBy(func(items []model.OrderItem) bool {
		return len(items) == 1 &&
			items[0].GameID == 10 &&
			items[0].TitleSnapshot == "Elden Throne" &&
			items[0].Price.Equal(decimal.RequireFromString("900")) &&
			items[0].Quantity == 2
	})).Return(nil)

	cartRepo.On("Clear", mock.Anything, int64(5)).Return(nil)

	uc := usecase.NewOrderUsecase(tx)

	out, err := uc.Checkout(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(77), out.ID)
	assert.Equal(t, "PENDING", out.Status)
	assert.True(t, out.TotalPrice.Equal(decimal.RequireFromString("1800")))
	assert.Len(t, out.Items, 1)
	assert.True(t, out.Items[0].Price.Equal(decimal.RequireFromString("900")))

	orderRepo.AssertExpectations(t)
	orderItemRepo.AssertExpectations(t)
	cartRepo.AssertExpectations(t)
}

func TestOrderUsecase_Checkout_EmptyCart(t *testing.T) {
	cartRepo := new(CartRepoMock)
	itemRepo := new(CartItemRepoMock)
	orderRepo := new(OrderRepoMock)

	tx := new(TxManagerMock)
	tx.Repos = &TxReposMock{carts: cartRepo, cartItems: itemRepo, orders: orderRepo}
	tx.On("WithinTx", mock.Anything).Return(nil)

	cartRepo.On("LockByUserID", mock.Anything, int64(1)).Return(model.Cart{ID: 5, UserID: 1}, nil)
	itemRepo.On("ListByCartID", mock.Anything, int64(5)).Return([]model.CartItem{}, nil)

	uc := usecase.NewOrderUsecase(tx)

	_, err := uc.Checkout(context.Background(), 1)
	assertErrContains(t, err, "cart is empty")

	orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderUsecase_Checkout_NoCartRow(t *testing.T) {
	cartRepo := new(CartRepoMock)

	tx := new(TxManagerMock)
	tx.Repos = &TxReposMock{carts: cartRepo}
	tx.On("WithinTx", mock.Anything).Return(nil)

	cartRepo.On("LockByUserID", mock.Anything, int64(1)).Return(model.Cart{}, repo.ErrNotFound)

	uc := usecase.NewOrderUsecase(tx)

	_, err := uc.Checkout(context.Background(), 1)
	assertErrContains(t, err, "cart is empty")
}

func TestOrderUsecase_Checkout_AllGamesGone_EmptyCart(t *testing.T) {
	cartRepo := new(CartRepoMock)
	itemRepo := new(CartItemRepoMock)
	gameRepo := new(GameRepoMock)
	orderRepo := new(OrderRepoMock)

	tx := new(TxManagerMock)
	tx.Repos = &TxReposMock{games: gameRepo, carts: cartRepo, cartItems: itemRepo, orders: orderRepo}
	tx.On("WithinTx", mock.Anything).Return(nil)

	cartRepo.On("LockByUserID", mock.Anything, int64(1)).Return(model.Cart{ID: 5, UserID: 1}, nil)
	itemRepo.On("ListByCartID", mock.Anything, int64(5)).Return([]model.CartItem{
		{ID: 1, CartID: 5, GameID: 404, Quantity: 1},
	}, nil)
	gameRepo.On("FindByID", mock.Anything, int64(404)).Return(model.Game{}, repo.ErrNotFound)

	uc := usecase.NewOrderUsecase(tx)

	_, err := uc.Checkout(context.Background(), 1)
	assertErrContains(t, err, "cart is empty")

	orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderUsecase_Checkout_CreateBulkFails_DoesNotClearCart(t *testing.T) {
	cartRepo := new(CartRepoMock)
	itemRepo := new(CartItemRepoMock)
	gameRepo := new(GameRepoMock)
	orderRepo := new(OrderRepoMock)
	orderItemRepo := new(OrderItemRepoMock)

	tx := new(TxManagerMock)
	tx.Repos = &TxReposMock{
		games:      gameRepo,
		carts:      cartRepo,
		cartItems:  itemRepo,
		orders:     orderRepo,
		orderItems: orderItemRepo,
	}
	tx.On("WithinTx", mock.Anything).Return(nil)

	cartRepo.On("LockByUserID", mock.Anything, int64(1)).Return(model.Cart{ID: 5, UserID: 1}, nil)
	itemRepo.On("ListByCartID", mock.Anything, int64(5)).Return([]model.CartItem{
		{ID: 1, CartID: 5, GameID: 10, Quantity: 1},
	}, nil)
	gameRepo.On("FindByID", mock.Anything, int64(10)).
		Return(model.Game{ID: 10, Title: "Elden Throne", Price: gamePrice("1000")}, nil)

	orderRepo.On("Create", mock.Anything, mock.Anything).Return(int64(77), nil)
	orderItemRepo.On("CreateBulk", mock.Anything, int64(77), mock.Anything).
		Return(assert.AnError)

	uc := usecase.NewOrderUsecase(tx)

	_, err := uc.Checkout(context.Background(), 1)
	assertErrContains(t, err, "db error")

	// fnがエラーを返せばTxごとロールバックされるので、Clearまで到達してはいけない
	cartRepo.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
}

// =====================
// ListMyOrders / GetMyOrderDetail
// =====================

func TestOrderUsecase_ListMyOrders_InvalidPage(t *testing.T) {
	tx := new(TxManagerMock)
	uc := usecase.NewOrderUsecase(tx)

	_, err := uc.ListMyOrders(context.Background(), 1, 0, 20)
	assertErrContains(t, err, "invalid page")
}

func TestOrderUsecase_ListMyOrders_Success(t *testing.T) {
	orderRepo := new(OrderRepoMock)
	orderItemRepo := new(OrderItemRepoMock)

	tx := new(TxManagerMock)
	tx.Repos = &TxReposMock{orders: orderRepo, orderItems: orderItemRepo}
	tx.On("WithinTx", mock.Anything).Return(nil)

	orderRepo.On("ListByUserID", mock.Anything, int64(1), 1, 20).Return([]model.Order{
		{ID: 77, UserID: 1, Status: model.OrderStatusPending, TotalPrice: decimal.RequireFromString("900")},
	}, int64(1), nil)
	orderItemRepo.On("ListByOrderID", mock.Anything, int64(77)).Return([]model.OrderItem{
		{OrderID: 77, GameID: 10, TitleSnapshot: "Elden Throne", Price: decimal.RequireFromString("900"), Quantity: 1},
	}, nil)

	uc := usecase.NewOrderUsecase(tx)

	out, err := uc.ListMyOrders(context.Background(), 1, 1, 20)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), out.Total)
	assert.Len(t, out.Items, 1)
	assert.Equal(t, "Elden Throne", out.Items[0].Items[0].Title)
}

func TestOrderUsecase_GetMyOrderDetail_OtherUsersOrder_NotFound(t *testing.T) {
	orderRepo := new(OrderRepoMock)
	orderItemRepo := new(OrderItemRepoMock)

	tx := new(TxManagerMock)
	tx.Repos = &TxReposMock{orders: orderRepo, orderItems: orderItemRepo}
	tx.On("WithinTx", mock.Anything).Return(nil)

	// 他人の注文は所有者スコープの1クエリで弾く
	orderRepo.On("FindByIDForUser", mock.Anything, int64(77), int64(2)).
		Return(model.Order{}, repo.ErrNotFound)

	uc := usecase.NewOrderUsecase(tx)

	_, err := uc.GetMyOrderDetail(context.Background(), 2, 77)
	assertErrContains(t, err, "not found")

	orderItemRepo.AssertNotCalled(t, "ListByOrderID", mock.Anything, mock.Anything)
}
