package domain

import "time"

// DailyRecord é o lançamento diário de estoque e vendas de um produto
type DailyRecord struct {
	ID               int64     `json:"id"`
	Date             time.Time `json:"date"`
	ProductID        int64     `json:"product_id"`
	ProductName      string    `json:"product_name"`
	OpeningStock     float64   `json:"opening_stock"`
	ClosingStock     float64   `json:"closing_stock"`
	SalesQuantity    float64   `json:"sales_quantity"`
	UnitPrice        float64   `json:"unit_price"`
	DeliveryQuantity float64   `json:"delivery_quantity"`
	Temperature      *float64  `json:"temperature,omitempty"`
	Notes            *string   `json:"notes,omitempty"`
}

// Revenue é sempre derivada de quantidade e preço, nunca lida do banco
func (r DailyRecord) Revenue() float64 {
	return r.SalesQuantity * r.UnitPrice
}

// Consumption pode ser negativo quando a entrega supera as vendas do dia
func (r DailyRecord) Consumption() float64 {
	return r.OpeningStock - r.ClosingStock
}
