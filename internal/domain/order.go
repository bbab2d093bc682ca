package domain

import "time"

// Status de pedido aceitos em orderStatuses
const (
	OrderStatusPending        = "pending"
	OrderStatusCompleted      = "completed"
	OrderStatusArchived       = "archived"
	OrderStatusCanceled       = "canceled"
	OrderStatusRequiresAction = "requires_action"
)

// OrderRecord é o pedido lido do store. Valores monetários em unidades menores da moeda.
type OrderRecord struct {
	ID            string
	CreatedAt     time.Time
	Status        string
	CurrencyCode  string
	Total         int64
	ShippingTotal int64
	TaxTotal      int64
}

type RefundRecord struct {
	ID           string
	OrderID      string
	CreatedAt    time.Time
	Amount       int64
	CurrencyCode string
}

// Dimension identifica a entidade associada ao pedido usada nas métricas de popularidade
type Dimension string

const (
	DimensionPaymentProvider Dimension = "payment_provider"
	DimensionRegion          Dimension = "region"
	DimensionSalesChannel    Dimension = "sales_channel"
	DimensionDiscount        Dimension = "discount"
)

// DimensionRecord associa um pedido a um provedor de pagamento, região, canal de venda ou desconto.
// Um pedido pode gerar mais de um registro (ex: vários descontos).
type DimensionRecord struct {
	OrderID       string
	CreatedAt     time.Time
	DimensionID   string
	DimensionName string
}

func (o OrderRecord) Timestamp() time.Time     { return o.CreatedAt }
func (r RefundRecord) Timestamp() time.Time    { return r.CreatedAt }
func (d DimensionRecord) Timestamp() time.Time { return d.CreatedAt }
