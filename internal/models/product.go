package models

import "github.com/shopspring/decimal"

func init() {
	// Monetary amounts are serialized as JSON numbers, matching the wire
	// format clients already consume.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product is a fixed catalog entry: preloaded at startup, never mutated by
// any operation. Prices carry two decimal places.
type Product struct {
	ID    string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name  string          `json:"name" gorm:"type:varchar(255)"`
	Price decimal.Decimal `json:"price" gorm:"type:numeric(12,2)"`
}

// Catalog returns the fixed product set both deployments seed.
func Catalog() []Product {
	return []Product{
		{ID: "p1", Name: "Wireless Mouse", Price: decimal.NewFromFloat(19.99)},
		{ID: "p2", Name: "Mechanical Keyboard", Price: decimal.NewFromFloat(59.49)},
		{ID: "p3", Name: "USB-C Hub", Price: decimal.NewFromFloat(24.90)},
	}
}
