package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ストアで販売するゲーム
// Priceがnilのときは「価格未設定」
type Game struct {
	ID                 int64            `gorm:"primaryKey;autoIncrement" json:"id"`
	Title              string           `gorm:"type:varchar(200);not null" json:"title"`
	Description        string           `gorm:"type:text" json:"description"`
	Platform           string           `gorm:"type:varchar(100)" json:"platform"`
	Genre              string           `gorm:"type:varchar(100)" json:"genre"`
	ReleaseDate        *time.Time       `json:"release_date"`
	Price              *decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	DiscountPercentage int              `gorm:"not null;default:0" json:"discount_percentage"`
	IsFree             bool             `gorm:"not null;default:false" json:"is_free"`
	InStock            bool             `gorm:"not null;default:true" json:"in_stock"`
	CreatedAt          time.Time        `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time        `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// 割引適用後の単価。is_freeなら他のフィールドに関わらず0
func (g *Game) DiscountedPrice() decimal.Decimal {
	if g.IsFree {
		return decimal.Zero
	}
	if g.Price == nil {
		return decimal.Zero
	}
	if g.DiscountPercentage > 0 {
		discount := g.Price.Mul(decimal.NewFromInt(int64(g.DiscountPercentage))).Div(decimal.NewFromInt(100))
		return g.Price.Sub(discount)
	}
	return *g.Price
}

// 表示用の価格ラベル
func (g *Game) DisplayPrice() string {
	if g.IsFree {
		return "FREE"
	}
	if g.Price != nil {
		return groupDigits(g.Price.StringFixed(0)) + " KZT"
	}
	return "Скоро"
}

// 3桁区切り（1000 → 1,000）
func groupDigits(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}
