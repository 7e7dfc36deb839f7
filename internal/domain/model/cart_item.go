package model

import "time"

// カートの明細
// (cart_id, game_id)は一意。同じゲームは数量加算で1行にまとめる。
// 価格は持たない（カートは常にライブ価格で計算する）。
type CartItem struct {
	ID       int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID   int64     `gorm:"not null;uniqueIndex:uq_cart_items_cart_game" json:"cart_id"`
	Cart     *Cart     `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"-"`
	GameID   int64     `gorm:"not null;uniqueIndex:uq_cart_items_cart_game;index" json:"game_id"`
	Game     *Game     `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE" json:"-"`
	Quantity int64     `gorm:"not null;default:1" json:"quantity"`
	AddedAt  time.Time `gorm:"not null;autoCreateTime" json:"added_at"`
}
