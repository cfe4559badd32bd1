package domain

import (
	"errors"
	"time"
)

var (
	ErrItemNotFound      = errors.New("shop item not found")
	ErrInsufficientFunds = errors.New("not enough coins for this purchase")
)

// Item is a decorative garden item offered in the shop.
type Item struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
	Cost int    `json:"cost" db:"cost"`
}

// Purchase records one item bought for the garden. The cost is frozen at
// purchase time so later catalog changes do not rewrite the spend history.
type Purchase struct {
	ID             int64     `json:"id" db:"id"`
	ItemID         int64     `json:"item_id" db:"item_id"`
	CostAtPurchase int       `json:"cost_at_purchase" db:"cost_at_purchase"`
	PurchasedAt    time.Time `json:"purchased_at" db:"purchased_at"`
}
