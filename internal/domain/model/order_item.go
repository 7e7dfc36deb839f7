package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 注文明細
// Priceはcheckout時点の割引後単価のコピー。ゲーム側の価格が後で変わっても動かない。
type OrderItem struct {
	ID            int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID       int64           `gorm:"not null;index" json:"order_id"`
	Order         *Order          `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`
	GameID        int64           `gorm:"not null;index" json:"game_id"`
	Game          *Game           `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE" json:"-"`
	TitleSnapshot string          `gorm:"type:varchar(200);not null" json:"title_snapshot"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity      int64           `gorm:"not null;default:1" json:"quantity"`
	CreatedAt     time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
}
