// Script de desenvolvimento: cria o schema lido pelo AnalyticsStore e insere pedidos de demonstração.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

const (
	seedDays   = 120
	seedOrders = 600
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS region (
		id   TEXT PRIMARY KEY,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sales_channel (
		id   TEXT PRIMARY KEY,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS discount (
		id   TEXT PRIMARY KEY,
		code TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS "order" (
		id               TEXT PRIMARY KEY,
		created_at       TIMESTAMPTZ NOT NULL,
		status           TEXT NOT NULL,
		currency_code    TEXT NOT NULL,
		total            BIGINT NOT NULL DEFAULT 0,
		shipping_total   BIGINT NOT NULL DEFAULT 0,
		tax_total        BIGINT NOT NULL DEFAULT 0,
		region_id        TEXT REFERENCES region (id),
		sales_channel_id TEXT REFERENCES sales_channel (id)
	)`,
	`CREATE INDEX IF NOT EXISTS order_created_at_idx ON "order" (created_at)`,
	`CREATE TABLE IF NOT EXISTS payment (
		id          TEXT PRIMARY KEY,
		order_id    TEXT NOT NULL REFERENCES "order" (id),
		provider_id TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS order_discounts (
		order_id    TEXT NOT NULL REFERENCES "order" (id),
		discount_id TEXT NOT NULL REFERENCES discount (id),
		PRIMARY KEY (order_id, discount_id)
	)`,
	`CREATE TABLE IF NOT EXISTS refund (
		id         TEXT PRIMARY KEY,
		order_id   TEXT NOT NULL REFERENCES "order" (id),
		created_at TIMESTAMPTZ NOT NULL,
		amount     BIGINT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS refund_created_at_idx ON refund (created_at)`,
}

var (
	regions          = []string{"Europe", "North America", "South America", "Asia"}
	salesChannels    = []string{"Default Sales Channel", "Mobile App", "Marketplace"}
	discountCodes    = []string{"WELCOME10", "SUMMER20", "VIP"}
	paymentProviders = []string{"pp_system_default", "pp_stripe", "pp_paypal"}
	currencies       = []string{"usd", "usd", "usd", "eur"}
	statuses         = []string{
		domain.OrderStatusCompleted,
		domain.OrderStatusCompleted,
		domain.OrderStatusPending,
		domain.OrderStatusCanceled,
		domain.OrderStatusArchived,
	}
)

func main() {
	log.Setup("info")

	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	ctx := context.Background()
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	start := time.Now()
	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, stmt := range schema {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("erro ao criar schema: %w", err)
			}
		}
		return seed(ctx, tx, time.Now().UTC())
	})
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao popular o banco")
	}

	log.L.WithField("duration_ms", time.Since(start).Milliseconds()).Info("Banco populado com sucesso")

	token, err := authenticating.NewService(cfg.Auth.Secret).GenerateToken(domain.Claims{
		UserID:     "usr_dev",
		UserEmail:  "admin@localhost",
		UserRoleID: 1,
	})
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao gerar token de desenvolvimento")
	}
	log.L.Infof("Token de administrador para desenvolvimento: %s", token)
}

func insert(ctx context.Context, tx *sql.Tx, builder squirrel.InsertBuilder) error {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}
	_, err = tx.ExecContext(ctx, query, args...)
	return err
}

// lookup insere uma linha por nome em table e retorna os ids gerados
func lookup(ctx context.Context, tx *sql.Tx, table, column, prefix string, names []string) ([]string, error) {
	ids := make([]string, 0, len(names))
	builder := squirrel.Insert(table).Columns("id", column)
	for _, name := range names {
		id, err := utils.GenerateID(prefix)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
		builder = builder.Values(id, name)
	}

	if err := insert(ctx, tx, builder); err != nil {
		return nil, fmt.Errorf("erro ao inserir %s: %w", table, err)
	}
	return ids, nil
}

func pick[T any](values []T) T {
	return values[rand.IntN(len(values))]
}

func seed(ctx context.Context, tx *sql.Tx, now time.Time) error {
	regionIDs, err := lookup(ctx, tx, "region", "name", "reg", regions)
	if err != nil {
		return err
	}
	channelIDs, err := lookup(ctx, tx, "sales_channel", "name", "sc", salesChannels)
	if err != nil {
		return err
	}
	discountIDs, err := lookup(ctx, tx, "discount", "code", "disc", discountCodes)
	if err != nil {
		return err
	}

	refunds := 0
	for i := 0; i < seedOrders; i++ {
		orderID, err := utils.GenerateID("order")
		if err != nil {
			return err
		}

		createdAt := now.Add(-time.Duration(rand.Int64N(int64(seedDays * 24 * time.Hour))))
		total := 1000 + rand.Int64N(20000)
		shipping := 500 + rand.Int64N(1000)

		err = insert(ctx, tx, squirrel.Insert(`"order"`).
			Columns("id", "created_at", "status", "currency_code", "total", "shipping_total", "tax_total", "region_id", "sales_channel_id").
			Values(orderID, createdAt, pick(statuses), pick(currencies), total+shipping, shipping, total/10, pick(regionIDs), pick(channelIDs)))
		if err != nil {
			return fmt.Errorf("erro ao inserir pedido: %w", err)
		}

		paymentID, err := utils.GenerateID("pay")
		if err != nil {
			return err
		}
		if err := insert(ctx, tx, squirrel.Insert("payment").
			Columns("id", "order_id", "provider_id").
			Values(paymentID, orderID, pick(paymentProviders))); err != nil {
			return fmt.Errorf("erro ao inserir pagamento: %w", err)
		}

		if rand.IntN(4) == 0 {
			if err := insert(ctx, tx, squirrel.Insert("order_discounts").
				Columns("order_id", "discount_id").
				Values(orderID, pick(discountIDs))); err != nil {
				return fmt.Errorf("erro ao inserir desconto: %w", err)
			}
		}

		if rand.IntN(10) == 0 {
			refundID, err := utils.GenerateID("ref")
			if err != nil {
				return err
			}
			if err := insert(ctx, tx, squirrel.Insert("refund").
				Columns("id", "order_id", "created_at", "amount").
				Values(refundID, orderID, createdAt.Add(48*time.Hour), total/2)); err != nil {
				return fmt.Errorf("erro ao inserir reembolso: %w", err)
			}
			refunds++
		}
	}

	log.L.WithFields(log.Fields{
		"orders":  seedOrders,
		"refunds": refunds,
	}).Info("Pedidos de demonstração inseridos")

	return nil
}
