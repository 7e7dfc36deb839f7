package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func priceOf(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestGame_DiscountedPrice_NoDiscount(t *testing.T) {
	g := Game{Price: priceOf("5990")}
	assert.True(t, g.DiscountedPrice().Equal(decimal.RequireFromString("5990")))
}

func TestGame_DiscountedPrice_Exact(t *testing.T) {
	// 1000の10%引きはちょうど900（浮動小数の誤差なし）
	g := Game{Price: priceOf("1000"), DiscountPercentage: 10}
	assert.True(t, g.DiscountedPrice().Equal(decimal.RequireFromString("900")))
}

func TestGame_DiscountedPrice_FractionalBase(t *testing.T) {
	g := Game{Price: priceOf("19.99"), DiscountPercentage: 25}
	assert.True(t, g.DiscountedPrice().Equal(decimal.RequireFromString("14.9925")))
}

func TestGame_DiscountedPrice_FreeIgnoresPriceAndDiscount(t *testing.T) {
	g := Game{Price: priceOf("5990"), DiscountPercentage: 50, IsFree: true}
	assert.True(t, g.DiscountedPrice().IsZero())
}

func TestGame_DiscountedPrice_NilPrice(t *testing.T) {
	g := Game{DiscountPercentage: 30}
	assert.True(t, g.DiscountedPrice().IsZero())
}

func TestGame_DisplayPrice_Free(t *testing.T) {
	g := Game{IsFree: true, Price: priceOf("100")}
	assert.Equal(t, "FREE", g.DisplayPrice())
}

func TestGame_DisplayPrice_NilPrice(t *testing.T) {
	g := Game{}
	assert.Equal(t, "Скоро", g.DisplayPrice())
}

func TestGame_DisplayPrice_Grouping(t *testing.T) {
	assert.Equal(t, "1,000 KZT", (&Game{Price: priceOf("1000")}).DisplayPrice())
	assert.Equal(t, "999 KZT", (&Game{Price: priceOf("999")}).DisplayPrice())
	assert.Equal(t, "1,234,567 KZT", (&Game{Price: priceOf("1234567")}).DisplayPrice())
}
