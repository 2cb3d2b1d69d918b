package models

import "github.com/shopspring/decimal"

// OrderItem is a single line within an order. Name and UnitPrice are copied
// from the catalog at order time so later catalog changes cannot rewrite
// history.
type OrderItem struct {
	ItemSeq   int64           `json:"-" gorm:"primaryKey;autoIncrement"`
	OrderRef  int64           `json:"-" gorm:"index"`
	ProductID string          `json:"product_id" gorm:"type:varchar(36)"`
	Name      string          `json:"name" gorm:"type:varchar(255)"`
	UnitPrice decimal.Decimal `json:"unit_price" gorm:"type:numeric(12,2)"`
	Qty       int             `json:"qty"`
	LineTotal decimal.Decimal `json:"line_total" gorm:"type:numeric(12,2)"`
}

// Order is create-once and immutable. User holds the owner's username and is
// the sole authorization key: no other principal may read or list the order.
type Order struct {
	Seq     int64           `json:"-" gorm:"primaryKey;autoIncrement"`
	OrderID string          `json:"order_id" gorm:"uniqueIndex;type:varchar(36)"`
	User    string          `json:"user" gorm:"column:owner;index;type:varchar(100)"`
	Items   []OrderItem     `json:"items" gorm:"foreignKey:OrderRef;references:Seq"`
	Total   decimal.Decimal `json:"total" gorm:"type:numeric(12,2)"`
}
