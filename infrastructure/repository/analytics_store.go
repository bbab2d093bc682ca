// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

const (
	ordersTable  = `"order" o`
	refundsTable = "refund r"
)

// dimensionJoin descreve como chegar na entidade associada ao pedido
type dimensionJoin struct {
	idColumn   string
	nameColumn string
	joins      []string

	// optional mantém pedidos sem a entidade, com id e nome vazios
	optional bool
}

var dimensionJoins = map[domain.Dimension]dimensionJoin{
	domain.DimensionPaymentProvider: {
		idColumn:   "p.provider_id",
		nameColumn: "p.provider_id",
		joins:      []string{"payment p ON p.order_id = o.id"},
	},
	domain.DimensionRegion: {
		idColumn:   "rg.id",
		nameColumn: "rg.name",
		joins:      []string{"region rg ON rg.id = o.region_id"},
		optional:   true,
	},
	domain.DimensionSalesChannel: {
		idColumn:   "sc.id",
		nameColumn: "sc.name",
		joins:      []string{"sales_channel sc ON sc.id = o.sales_channel_id"},
		optional:   true,
	},
	domain.DimensionDiscount: {
		idColumn:   "d.id",
		nameColumn: "d.code",
		joins: []string{
			"order_discounts od ON od.order_id = o.id",
			"discount d ON d.id = od.discount_id",
		},
	},
}

// AnalyticsStore implementa a leitura de pedidos e reembolsos usada pelas métricas
type AnalyticsStore interface {
	EarliestOrder(ctx context.Context, query domain.RecordQuery) (*time.Time, error)
	EarliestRefund(ctx context.Context, query domain.RecordQuery) (*time.Time, error)
	ListOrders(ctx context.Context, query domain.RecordQuery) ([]domain.OrderRecord, error)
	ListRefunds(ctx context.Context, query domain.RecordQuery) ([]domain.RefundRecord, error)
	ListOrderDimensions(ctx context.Context, dimension domain.Dimension, query domain.RecordQuery) ([]domain.DimensionRecord, error)
}

type analyticsStore struct {
	conn postgres.Queryer
}

func NewAnalyticsStore(conn postgres.Queryer) AnalyticsStore {
	return &analyticsStore{
		conn: conn,
	}
}

// applyFilters traduz o RecordQuery para condições sobre as colunas informadas
func applyFilters(builder squirrel.SelectBuilder, query domain.RecordQuery, createdColumn string) squirrel.SelectBuilder {
	if query.CreatedFrom != nil {
		builder = builder.Where(squirrel.GtOrEq{createdColumn: query.CreatedFrom.UTC()})
	}
	if query.CreatedBefore != nil {
		builder = builder.Where(squirrel.Lt{createdColumn: query.CreatedBefore.UTC()})
	}
	if len(query.Statuses) > 0 {
		builder = builder.Where(squirrel.Eq{"o.status": query.Statuses})
	}
	if query.CurrencyCode != "" {
		builder = builder.Where(squirrel.Eq{"o.currency_code": query.CurrencyCode})
	}
	return builder
}

func (r *analyticsStore) EarliestOrder(ctx context.Context, query domain.RecordQuery) (*time.Time, error) {
	builder := squirrel.
		Select("MIN(o.created_at)").
		From(ordersTable)

	return r.earliest(ctx, applyFilters(builder, query, "o.created_at"))
}

func (r *analyticsStore) EarliestRefund(ctx context.Context, query domain.RecordQuery) (*time.Time, error) {
	builder := squirrel.
		Select("MIN(r.created_at)").
		From(refundsTable).
		Join(`"order" o ON o.id = r.order_id`)

	return r.earliest(ctx, applyFilters(builder, query, "r.created_at"))
}

func (r *analyticsStore) earliest(ctx context.Context, builder squirrel.SelectBuilder) (*time.Time, error) {
	sqlQuery, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var earliest sql.NullTime
	if err := r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&earliest); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, wrapQueryError(err)
	}

	if !earliest.Valid {
		return nil, nil
	}

	value := earliest.Time.UTC()
	return &value, nil
}

func (r *analyticsStore) ListOrders(ctx context.Context, query domain.RecordQuery) ([]domain.OrderRecord, error) {
	builder := squirrel.
		Select(
			"o.id",
			"o.created_at",
			"o.status",
			"o.currency_code",
			"o.total",
			"o.shipping_total",
			"o.tax_total",
		).
		From(ordersTable).
		OrderBy("o.created_at ASC")

	sqlQuery, args, err := applyFilters(builder, query, "o.created_at").PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, wrapQueryError(err)
	}
	defer rows.Close()

	orders := make([]domain.OrderRecord, 0)
	for rows.Next() {
		var order domain.OrderRecord
		if err := rows.Scan(
			&order.ID,
			&order.CreatedAt,
			&order.Status,
			&order.CurrencyCode,
			&order.Total,
			&order.ShippingTotal,
			&order.TaxTotal,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear pedido: %w", err)
		}
		order.CreatedAt = order.CreatedAt.UTC()
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return orders, nil
}

func (r *analyticsStore) ListRefunds(ctx context.Context, query domain.RecordQuery) ([]domain.RefundRecord, error) {
	builder := squirrel.
		Select(
			"r.id",
			"r.order_id",
			"r.created_at",
			"r.amount",
			"o.currency_code",
		).
		From(refundsTable).
		Join(`"order" o ON o.id = r.order_id`).
		OrderBy("r.created_at ASC")

	sqlQuery, args, err := applyFilters(builder, query, "r.created_at").PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, wrapQueryError(err)
	}
	defer rows.Close()

	refunds := make([]domain.RefundRecord, 0)
	for rows.Next() {
		var refund domain.RefundRecord
		if err := rows.Scan(&refund.ID, &refund.OrderID, &refund.CreatedAt, &refund.Amount, &refund.CurrencyCode); err != nil {
			return nil, fmt.Errorf("erro ao escanear reembolso: %w", err)
		}
		refund.CreatedAt = refund.CreatedAt.UTC()
		refunds = append(refunds, refund)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return refunds, nil
}

func (r *analyticsStore) ListOrderDimensions(ctx context.Context, dimension domain.Dimension, query domain.RecordQuery) ([]domain.DimensionRecord, error) {
	join, ok := dimensionJoins[dimension]
	if !ok {
		return nil, fmt.Errorf("dimensão desconhecida: %s", dimension)
	}

	builder := squirrel.
		Select("o.id", "o.created_at", join.idColumn, join.nameColumn).
		From(ordersTable)
	for _, clause := range join.joins {
		if join.optional {
			builder = builder.LeftJoin(clause)
			continue
		}
		builder = builder.Join(clause)
	}
	builder = builder.OrderBy("o.created_at ASC")

	sqlQuery, args, err := applyFilters(builder, query, "o.created_at").PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, wrapQueryError(err)
	}
	defer rows.Close()

	records := make([]domain.DimensionRecord, 0)
	for rows.Next() {
		var record domain.DimensionRecord
		var id, name sql.NullString
		if err := rows.Scan(&record.OrderID, &record.CreatedAt, &id, &name); err != nil {
			return nil, fmt.Errorf("erro ao escanear %s: %w", dimension, err)
		}
		record.CreatedAt = record.CreatedAt.UTC()
		record.DimensionID = id.String
		record.DimensionName = name.String
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func wrapQueryError(err error) error {
	if pqErr, ok := err.(*pq.Error); ok {
		return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
	}
	return fmt.Errorf("failed to execute query: %w", err)
}
