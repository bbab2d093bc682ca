package analyzing

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/analyzing/mocks"
	"go.uber.org/mock/gomock"
)

var (
	statuses = []string{domain.OrderStatusPending, domain.OrderStatusCompleted}
	fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
)

func ptr(t time.Time) *time.Time {
	return &t
}

// inQuery reproduz no teste o filtro que o repositório aplica em SQL
func inQuery(q domain.RecordQuery, createdAt time.Time, status, currency string) bool {
	if q.CreatedFrom != nil && createdAt.Before(*q.CreatedFrom) {
		return false
	}
	if q.CreatedBefore != nil && !createdAt.Before(*q.CreatedBefore) {
		return false
	}
	if len(q.Statuses) > 0 && status != "" && !slices.Contains(q.Statuses, status) {
		return false
	}
	if q.CurrencyCode != "" && currency != q.CurrencyCode {
		return false
	}
	return true
}

// newOrderStore cria um store em memória sobre o mock do RecordStore
func newOrderStore(ctrl *gomock.Controller, orders []domain.OrderRecord) *mocks.MockRecordStore {
	store := mocks.NewMockRecordStore(ctrl)

	store.EXPECT().EarliestOrder(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q domain.RecordQuery) (*time.Time, error) {
			var earliest *time.Time
			for _, order := range orders {
				if inQuery(q, order.CreatedAt, order.Status, order.CurrencyCode) &&
					(earliest == nil || order.CreatedAt.Before(*earliest)) {
					earliest = ptr(order.CreatedAt)
				}
			}
			return earliest, nil
		}).AnyTimes()

	store.EXPECT().ListOrders(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q domain.RecordQuery) ([]domain.OrderRecord, error) {
			result := make([]domain.OrderRecord, 0)
			for _, order := range orders {
				if inQuery(q, order.CreatedAt, order.Status, order.CurrencyCode) {
					result = append(result, order)
				}
			}
			return result, nil
		}).AnyTimes()

	return store
}

func scenarioOrders() []domain.OrderRecord {
	return []domain.OrderRecord{
		{ID: "order_1", CreatedAt: day(2024, 1, 1).Add(9 * time.Hour), Status: domain.OrderStatusCompleted, CurrencyCode: "usd", Total: 1000, ShippingTotal: 100, TaxTotal: 80},
		{ID: "order_2", CreatedAt: day(2024, 1, 2).Add(15 * time.Hour), Status: domain.OrderStatusPending, CurrencyCode: "usd", Total: 2000, ShippingTotal: 0, TaxTotal: 160},
		{ID: "order_3", CreatedAt: day(2024, 2, 15).Add(11 * time.Hour), Status: domain.OrderStatusCompleted, CurrencyCode: "usd", Total: 500, ShippingTotal: 50, TaxTotal: 40},
	}
}

func TestService_OrdersHistory(t *testing.T) {
	tests := []struct {
		name     string
		orders   []domain.OrderRecord
		filters  *domain.AnalyticsFilters
		validate func(t *testing.T, envelope *domain.Envelope[[]domain.OrdersBucket])
	}{
		{
			name:   "período único sem comparação",
			orders: scenarioOrders(),
			filters: &domain.AnalyticsFilters{
				OrderStatuses: statuses,
				From:          ptr(day(2024, 1, 1)),
				To:            ptr(day(2024, 1, 31)),
			},
			validate: func(t *testing.T, envelope *domain.Envelope[[]domain.OrdersBucket]) {
				assert.Equal(t, []domain.OrdersBucket{
					{Date: day(2024, 1, 1), OrderCount: 1},
					{Date: day(2024, 1, 2), OrderCount: 1},
				}, envelope.Current)
				assert.Empty(t, envelope.Previous)
				assert.Equal(t, day(2024, 1, 1).UnixMilli(), *envelope.DateRangeFrom)
				assert.Equal(t, day(2024, 1, 31).UnixMilli(), *envelope.DateRangeTo)
				assert.Nil(t, envelope.DateRangeFromCompareTo)
				assert.Nil(t, envelope.DateRangeToCompareTo)
			},
		},
		{
			name:   "comparação separa atual e anterior",
			orders: scenarioOrders(),
			filters: &domain.AnalyticsFilters{
				OrderStatuses: statuses,
				From:          ptr(day(2024, 2, 1)),
				To:            ptr(day(2024, 2, 29)),
				CompareFrom:   ptr(day(2024, 1, 1)),
				CompareTo:     ptr(day(2024, 2, 1)),
			},
			validate: func(t *testing.T, envelope *domain.Envelope[[]domain.OrdersBucket]) {
				assert.Equal(t, []domain.OrdersBucket{{Date: day(2024, 2, 15), OrderCount: 1}}, envelope.Current)
				assert.Equal(t, []domain.OrdersBucket{
					{Date: day(2024, 1, 1), OrderCount: 1},
					{Date: day(2024, 1, 2), OrderCount: 1},
				}, envelope.Previous)
				assert.Equal(t, day(2024, 1, 1).UnixMilli(), *envelope.DateRangeFromCompareTo)
				assert.Equal(t, day(2024, 2, 1).UnixMilli(), *envelope.DateRangeToCompareTo)
			},
		},
		{
			name:   "store vazio retorna envelope vazio",
			orders: nil,
			filters: &domain.AnalyticsFilters{
				OrderStatuses: statuses,
				From:          ptr(day(2024, 2, 1)),
				To:            ptr(day(2024, 2, 29)),
				CompareFrom:   ptr(day(2024, 1, 1)),
				CompareTo:     ptr(day(2024, 2, 1)),
			},
			validate: func(t *testing.T, envelope *domain.Envelope[[]domain.OrdersBucket]) {
				assert.Nil(t, envelope.DateRangeFrom)
				assert.Nil(t, envelope.DateRangeTo)
				assert.Nil(t, envelope.DateRangeFromCompareTo)
				assert.Nil(t, envelope.DateRangeToCompareTo)
				assert.NotNil(t, envelope.Current)
				assert.NotNil(t, envelope.Previous)
				assert.Empty(t, envelope.Current)
				assert.Empty(t, envelope.Previous)
			},
		},
		{
			name: "all-time começa no primeiro pedido",
			orders: []domain.OrderRecord{
				{ID: "order_1", CreatedAt: day(2023, 6, 1).Add(14 * time.Hour), Status: domain.OrderStatusCompleted},
				{ID: "order_2", CreatedAt: day(2023, 8, 10), Status: domain.OrderStatusCompleted},
				{ID: "order_3", CreatedAt: day(2023, 8, 20), Status: domain.OrderStatusCompleted},
			},
			filters: &domain.AnalyticsFilters{OrderStatuses: statuses},
			validate: func(t *testing.T, envelope *domain.Envelope[[]domain.OrdersBucket]) {
				assert.Equal(t, day(2023, 6, 1).Add(14*time.Hour).UnixMilli(), *envelope.DateRangeFrom)
				assert.Equal(t, fixedNow.UnixMilli(), *envelope.DateRangeTo)
				// intervalo até agora passa de 60 dias: agrupado por mês
				assert.Equal(t, []domain.OrdersBucket{
					{Date: day(2023, 6, 1), OrderCount: 1},
					{Date: day(2023, 8, 1), OrderCount: 2},
				}, envelope.Current)
				assert.Empty(t, envelope.Previous)
			},
		},
		{
			name: "all-time respeita os status",
			orders: []domain.OrderRecord{
				{ID: "order_1", CreatedAt: day(2023, 6, 1), Status: domain.OrderStatusCanceled},
				{ID: "order_2", CreatedAt: day(2024, 2, 20), Status: domain.OrderStatusCompleted},
			},
			filters: &domain.AnalyticsFilters{OrderStatuses: statuses},
			validate: func(t *testing.T, envelope *domain.Envelope[[]domain.OrdersBucket]) {
				assert.Equal(t, day(2024, 2, 20).UnixMilli(), *envelope.DateRangeFrom)
				assert.Equal(t, []domain.OrdersBucket{{Date: day(2024, 2, 20), OrderCount: 1}}, envelope.Current)
			},
		},
		{
			name:    "sem status retorna envelope vazio",
			orders:  scenarioOrders(),
			filters: &domain.AnalyticsFilters{From: ptr(day(2024, 1, 1))},
			validate: func(t *testing.T, envelope *domain.Envelope[[]domain.OrdersBucket]) {
				assert.Nil(t, envelope.DateRangeFrom)
				assert.Empty(t, envelope.Current)
			},
		},
		{
			name: "all-time curto usa o relógio do serviço para a resolução",
			orders: []domain.OrderRecord{
				{ID: "order_1", CreatedAt: day(2024, 2, 10).Add(8 * time.Hour), Status: domain.OrderStatusCompleted},
				{ID: "order_2", CreatedAt: day(2024, 2, 20), Status: domain.OrderStatusPending},
			},
			filters: &domain.AnalyticsFilters{OrderStatuses: statuses},
			validate: func(t *testing.T, envelope *domain.Envelope[[]domain.OrdersBucket]) {
				assert.Equal(t, day(2024, 2, 10).Add(8*time.Hour).UnixMilli(), *envelope.DateRangeFrom)
				assert.Equal(t, fixedNow.UnixMilli(), *envelope.DateRangeTo)
				assert.Equal(t, []domain.OrdersBucket{
					{Date: day(2024, 2, 10), OrderCount: 1},
					{Date: day(2024, 2, 20), OrderCount: 1},
				}, envelope.Current)
			},
		},
		{
			name:   "from e to no mesmo dia com horário depois de to",
			orders: scenarioOrders(),
			filters: &domain.AnalyticsFilters{
				OrderStatuses: statuses,
				From:          ptr(day(2024, 1, 1).Add(8 * time.Hour)),
				To:            ptr(day(2024, 1, 1)),
			},
			validate: func(t *testing.T, envelope *domain.Envelope[[]domain.OrdersBucket]) {
				assert.Equal(t, day(2024, 1, 1).Add(8*time.Hour).UnixMilli(), *envelope.DateRangeFrom)
				assert.Equal(t, day(2024, 1, 1).UnixMilli(), *envelope.DateRangeTo)
				assert.Equal(t, []domain.OrdersBucket{{Date: day(2024, 1, 1), OrderCount: 1}}, envelope.Current)
			},
		},
		{
			name:   "comparação com from e to no mesmo dia",
			orders: scenarioOrders(),
			filters: &domain.AnalyticsFilters{
				OrderStatuses: statuses,
				From:          ptr(day(2024, 1, 2).Add(10 * time.Hour)),
				To:            ptr(day(2024, 1, 2)),
				CompareFrom:   ptr(day(2024, 1, 1)),
				CompareTo:     ptr(day(2024, 1, 2).Add(10 * time.Hour)),
			},
			validate: func(t *testing.T, envelope *domain.Envelope[[]domain.OrdersBucket]) {
				require.NotNil(t, envelope.DateRangeFromCompareTo)
				assert.Equal(t, []domain.OrdersBucket{{Date: day(2024, 1, 2), OrderCount: 1}}, envelope.Current)
				assert.Equal(t, []domain.OrdersBucket{{Date: day(2024, 1, 1), OrderCount: 1}}, envelope.Previous)
			},
		},
		{
			name:   "from depois de to retorna envelope vazio",
			orders: scenarioOrders(),
			filters: &domain.AnalyticsFilters{
				OrderStatuses: statuses,
				From:          ptr(day(2024, 2, 1)),
				To:            ptr(day(2024, 1, 1)),
			},
			validate: func(t *testing.T, envelope *domain.Envelope[[]domain.OrdersBucket]) {
				assert.Nil(t, envelope.DateRangeFrom)
				assert.Empty(t, envelope.Current)
				assert.Empty(t, envelope.Previous)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewService(newOrderStore(ctrl, tt.orders), nil).WithClock(func() time.Time { return fixedNow })

			envelope, err := service.OrdersHistory(context.Background(), tt.filters)
			require.NoError(t, err)
			tt.validate(t, envelope)
		})
	}
}

func TestService_FetchQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockRecordStore(ctrl)
	store.EXPECT().
		ListOrders(gomock.Any(), domain.RecordQuery{
			CreatedFrom:   ptr(day(2024, 1, 1)),
			CreatedBefore: ptr(day(2024, 3, 1)),
			Statuses:      statuses,
			CurrencyCode:  "eur",
		}).
		Return([]domain.OrderRecord{}, nil)
	store.EXPECT().
		EarliestOrder(gomock.Any(), domain.RecordQuery{Statuses: statuses, CurrencyCode: "eur"}).
		Return(nil, nil)

	service := NewService(store, nil)
	_, err := service.SalesHistory(context.Background(), &domain.AnalyticsFilters{
		OrderStatuses: statuses,
		CurrencyCode:  "eur",
		From:          ptr(day(2024, 2, 1)),
		To:            ptr(day(2024, 2, 29)),
		CompareFrom:   ptr(day(2024, 1, 1)),
		CompareTo:     ptr(day(2024, 2, 1)),
	})
	assert.NoError(t, err)
}

func TestService_Idempotence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(newOrderStore(ctrl, scenarioOrders()), nil).WithClock(func() time.Time { return fixedNow })
	filters := &domain.AnalyticsFilters{
		OrderStatuses: statuses,
		From:          ptr(day(2024, 2, 1)),
		To:            ptr(day(2024, 2, 29)),
		CompareFrom:   ptr(day(2024, 1, 1)),
		CompareTo:     ptr(day(2024, 2, 1)),
	}

	first, err := service.TotalsHistory(context.Background(), filters)
	require.NoError(t, err)
	second, err := service.TotalsHistory(context.Background(), filters)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestService_StoreFailure(t *testing.T) {
	storeErr := errors.New("connection refused")

	t.Run("falha na busca", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mocks.NewMockRecordStore(ctrl)
		store.EXPECT().ListOrders(gomock.Any(), gomock.Any()).Return(nil, storeErr)

		service := NewService(store, nil)
		envelope, err := service.OrdersCount(context.Background(), &domain.AnalyticsFilters{
			OrderStatuses: statuses,
			From:          ptr(day(2024, 1, 1)),
		})

		assert.Nil(t, envelope)
		var analyticsErr *AnalyticsError
		require.ErrorAs(t, err, &analyticsErr)
		assert.Equal(t, MetricOrdersCount, analyticsErr.Metric)
		assert.Equal(t, StageFetch, analyticsErr.Stage)
		assert.ErrorIs(t, err, storeErr)
		assert.ErrorIs(t, err, ErrStoreFailure)
	})

	t.Run("falha ao buscar o primeiro registro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mocks.NewMockRecordStore(ctrl)
		store.EXPECT().EarliestRefund(gomock.Any(), gomock.Any()).Return(nil, storeErr)

		service := NewService(store, nil)
		_, err := service.Refunds(context.Background(), &domain.AnalyticsFilters{CurrencyCode: "usd"})

		var analyticsErr *AnalyticsError
		require.ErrorAs(t, err, &analyticsErr)
		assert.Equal(t, MetricRefunds, analyticsErr.Metric)
		assert.Equal(t, StageResolveStart, analyticsErr.Stage)
	})

	t.Run("falha nas dimensões", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mocks.NewMockRecordStore(ctrl)
		store.EXPECT().ListOrderDimensions(gomock.Any(), domain.DimensionRegion, gomock.Any()).Return(nil, storeErr)

		service := NewService(store, nil)
		_, err := service.RegionsPopularity(context.Background(), &domain.AnalyticsFilters{
			OrderStatuses: statuses,
			From:          ptr(day(2024, 1, 1)),
		})

		var analyticsErr *AnalyticsError
		require.ErrorAs(t, err, &analyticsErr)
		assert.Equal(t, MetricRegionsPopularity, analyticsErr.Metric)
	})
}

func TestService_Totals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	currency := mocks.NewMockCurrencyMetadata(ctrl)
	currency.EXPECT().DecimalDigits("usd").Return(2)

	service := NewService(newOrderStore(ctrl, scenarioOrders()), currency)
	envelope, err := service.Totals(context.Background(), &domain.AnalyticsFilters{
		OrderStatuses: statuses,
		CurrencyCode:  "usd",
		From:          ptr(day(2024, 2, 1)),
		To:            ptr(day(2024, 2, 29)),
		CompareFrom:   ptr(day(2024, 1, 1)),
		CompareTo:     ptr(day(2024, 2, 1)),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.Totals{RevenuePreShipping: 450, Shipping: 50, Taxes: 40}, envelope.Current)
	assert.Equal(t, domain.Totals{RevenuePreShipping: 2900, Shipping: 100, Taxes: 240}, envelope.Previous)
	assert.Equal(t, "usd", envelope.CurrencyCode)
	assert.Equal(t, 2, *envelope.CurrencyDecimalDigits)
}

func TestService_Refunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockRecordStore(ctrl)
	store.EXPECT().EarliestRefund(gomock.Any(), domain.RecordQuery{CurrencyCode: "usd"}).Return(ptr(day(2024, 2, 10)), nil)
	store.EXPECT().
		ListRefunds(gomock.Any(), domain.RecordQuery{CreatedFrom: ptr(day(2024, 2, 10)), CurrencyCode: "usd"}).
		Return([]domain.RefundRecord{
			{ID: "ref_1", CreatedAt: day(2024, 2, 10), Amount: 300, CurrencyCode: "usd"},
			{ID: "ref_2", CreatedAt: day(2024, 2, 20), Amount: 200, CurrencyCode: "usd"},
		}, nil)

	currency := mocks.NewMockCurrencyMetadata(ctrl)
	currency.EXPECT().DecimalDigits("usd").Return(2)

	service := NewService(store, currency).WithClock(func() time.Time { return fixedNow })
	envelope, err := service.Refunds(context.Background(), &domain.AnalyticsFilters{CurrencyCode: "usd"})

	require.NoError(t, err)
	assert.Equal(t, int64(500), envelope.Current)
	assert.Equal(t, int64(0), envelope.Previous)
	assert.Equal(t, day(2024, 2, 10).UnixMilli(), *envelope.DateRangeFrom)
	assert.Equal(t, fixedNow.UnixMilli(), *envelope.DateRangeTo)
}

func TestService_PaymentProviderPopularity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockRecordStore(ctrl)
	store.EXPECT().
		ListOrderDimensions(gomock.Any(), domain.DimensionPaymentProvider, gomock.Any()).
		Return([]domain.DimensionRecord{
			{OrderID: "order_1", CreatedAt: day(2024, 1, 10), DimensionID: "stripe"},
			{OrderID: "order_2", CreatedAt: day(2024, 2, 5), DimensionID: "stripe"},
			{OrderID: "order_3", CreatedAt: day(2024, 2, 6), DimensionID: "manual"},
			{OrderID: "order_4", CreatedAt: day(2024, 2, 7), DimensionID: "stripe"},
			{OrderID: "order_5", CreatedAt: day(2024, 2, 8), DimensionID: "stripe"},
		}, nil)

	service := NewService(store, nil)
	envelope, err := service.PaymentProviderPopularity(context.Background(), &domain.AnalyticsFilters{
		OrderStatuses: statuses,
		From:          ptr(day(2024, 2, 1)),
		To:            ptr(day(2024, 2, 29)),
		CompareFrom:   ptr(day(2024, 1, 1)),
		CompareTo:     ptr(day(2024, 2, 1)),
	})

	require.NoError(t, err)
	require.Len(t, envelope.Current, 2)
	assert.Equal(t, "manual", envelope.Current[0].PaymentProviderID)
	assert.Equal(t, int64(1), envelope.Current[0].OrderCount)
	assert.True(t, decimal.NewFromInt(25).Equal(envelope.Current[0].Percentage))
	assert.Equal(t, "stripe", envelope.Current[1].PaymentProviderID)
	assert.Equal(t, int64(3), envelope.Current[1].OrderCount)
	assert.True(t, decimal.NewFromInt(75).Equal(envelope.Current[1].Percentage))
	require.Len(t, envelope.Previous, 1)
	assert.Equal(t, "stripe", envelope.Previous[0].PaymentProviderID)
	assert.True(t, decimal.NewFromInt(100).Equal(envelope.Previous[0].Percentage))
}

func TestService_DiscountsByCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	records := []domain.DimensionRecord{}
	for i, code := range []string{"SUMMER", "SUMMER", "SUMMER", "WELCOME", "WELCOME", "VIP"} {
		records = append(records, domain.DimensionRecord{
			OrderID:       string(rune('a' + i)),
			CreatedAt:     day(2024, 1, 1+i),
			DimensionID:   "disc_" + code,
			DimensionName: code,
		})
	}

	store := mocks.NewMockRecordStore(ctrl)
	store.EXPECT().ListOrderDimensions(gomock.Any(), domain.DimensionDiscount, gomock.Any()).Return(records, nil)

	service := NewService(store, nil)
	envelope, err := service.DiscountsByCount(context.Background(), &domain.AnalyticsFilters{
		OrderStatuses: statuses,
		From:          ptr(day(2024, 1, 1)),
		Limit:         2,
	})

	require.NoError(t, err)
	require.Len(t, envelope.Current, 2)
	assert.Equal(t, "SUMMER", envelope.Current[0].DiscountCode)
	assert.Equal(t, int64(3), envelope.Current[0].Sum)
	assert.True(t, decimal.NewFromInt(50).Equal(envelope.Current[0].Percentage))
	assert.Equal(t, "WELCOME", envelope.Current[1].DiscountCode)
	assert.Empty(t, envelope.Previous)
}

func TestService_SalesChannelPopularity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockRecordStore(ctrl)
	store.EXPECT().
		ListOrderDimensions(gomock.Any(), domain.DimensionSalesChannel, gomock.Any()).
		Return([]domain.DimensionRecord{
			{OrderID: "order_1", CreatedAt: day(2024, 1, 2).Add(3 * time.Hour), DimensionID: "sc_web", DimensionName: "Web"},
			{OrderID: "order_2", CreatedAt: day(2024, 1, 1), DimensionID: "sc_app", DimensionName: "App"},
		}, nil)

	service := NewService(store, nil)
	envelope, err := service.SalesChannelPopularity(context.Background(), &domain.AnalyticsFilters{
		OrderStatuses: statuses,
		From:          ptr(day(2024, 1, 1)),
		To:            ptr(day(2024, 1, 31)),
	})

	require.NoError(t, err)
	require.Len(t, envelope.Current, 2)
	assert.Equal(t, day(2024, 1, 1), envelope.Current[0].Date)
	assert.Equal(t, "App", envelope.Current[0].SalesChannelName)
	assert.Equal(t, day(2024, 1, 2), envelope.Current[1].Date)
	assert.Equal(t, "sc_web", envelope.Current[1].SalesChannelID)
}

func TestService_OrdersCount_WindowWithoutOrders(t *testing.T) {
	oldOrder := []domain.OrderRecord{
		{ID: "order_1", CreatedAt: day(2023, 6, 1), Status: domain.OrderStatusCompleted},
	}

	tests := []struct {
		name     string
		orders   []domain.OrderRecord
		filters  *domain.AnalyticsFilters
		validate func(t *testing.T, envelope *domain.Envelope[int64])
	}{
		{
			name:   "comparação sem pedidos mantém as quatro datas",
			orders: oldOrder,
			filters: &domain.AnalyticsFilters{
				OrderStatuses: statuses,
				From:          ptr(day(2024, 2, 1)),
				To:            ptr(day(2024, 2, 29)),
				CompareFrom:   ptr(day(2024, 1, 1)),
				CompareTo:     ptr(day(2024, 2, 1)),
			},
			validate: func(t *testing.T, envelope *domain.Envelope[int64]) {
				require.NotNil(t, envelope.DateRangeFrom)
				require.NotNil(t, envelope.DateRangeTo)
				require.NotNil(t, envelope.DateRangeFromCompareTo)
				require.NotNil(t, envelope.DateRangeToCompareTo)
				assert.Equal(t, day(2024, 2, 1).UnixMilli(), *envelope.DateRangeFrom)
				assert.Equal(t, day(2024, 2, 29).UnixMilli(), *envelope.DateRangeTo)
				assert.Equal(t, day(2024, 1, 1).UnixMilli(), *envelope.DateRangeFromCompareTo)
				assert.Equal(t, day(2024, 2, 1).UnixMilli(), *envelope.DateRangeToCompareTo)
				assert.Equal(t, int64(0), envelope.Current)
				assert.Equal(t, int64(0), envelope.Previous)
			},
		},
		{
			name:   "período único sem pedidos mantém as datas",
			orders: oldOrder,
			filters: &domain.AnalyticsFilters{
				OrderStatuses: statuses,
				From:          ptr(day(2024, 2, 1)),
				To:            ptr(day(2024, 2, 29)),
			},
			validate: func(t *testing.T, envelope *domain.Envelope[int64]) {
				require.NotNil(t, envelope.DateRangeFrom)
				assert.Equal(t, day(2024, 2, 1).UnixMilli(), *envelope.DateRangeFrom)
				assert.Equal(t, day(2024, 2, 29).UnixMilli(), *envelope.DateRangeTo)
				assert.Nil(t, envelope.DateRangeFromCompareTo)
				assert.Equal(t, int64(0), envelope.Current)
			},
		},
		{
			name:   "pedidos com outros status contam como store vazio",
			orders: []domain.OrderRecord{{ID: "order_1", CreatedAt: day(2024, 2, 10), Status: domain.OrderStatusCanceled}},
			filters: &domain.AnalyticsFilters{
				OrderStatuses: statuses,
				From:          ptr(day(2024, 2, 1)),
				To:            ptr(day(2024, 2, 29)),
			},
			validate: func(t *testing.T, envelope *domain.Envelope[int64]) {
				assert.Nil(t, envelope.DateRangeFrom)
				assert.Nil(t, envelope.DateRangeTo)
			},
		},
		{
			name:   "store vazio remove as datas",
			orders: nil,
			filters: &domain.AnalyticsFilters{
				OrderStatuses: statuses,
				From:          ptr(day(2024, 2, 1)),
				To:            ptr(day(2024, 2, 29)),
				CompareFrom:   ptr(day(2024, 1, 1)),
				CompareTo:     ptr(day(2024, 2, 1)),
			},
			validate: func(t *testing.T, envelope *domain.Envelope[int64]) {
				assert.Nil(t, envelope.DateRangeFrom)
				assert.Nil(t, envelope.DateRangeTo)
				assert.Nil(t, envelope.DateRangeFromCompareTo)
				assert.Nil(t, envelope.DateRangeToCompareTo)
				assert.Equal(t, int64(0), envelope.Current)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewService(newOrderStore(ctrl, tt.orders), nil).WithClock(func() time.Time { return fixedNow })

			envelope, err := service.OrdersCount(context.Background(), tt.filters)
			require.NoError(t, err)
			tt.validate(t, envelope)
		})
	}
}

func TestService_EmptyStoreCheckFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeErr := errors.New("connection reset")
	store := mocks.NewMockRecordStore(ctrl)
	store.EXPECT().ListOrders(gomock.Any(), gomock.Any()).Return([]domain.OrderRecord{}, nil)
	store.EXPECT().EarliestOrder(gomock.Any(), gomock.Any()).Return(nil, storeErr)

	service := NewService(store, nil)
	envelope, err := service.OrdersHistory(context.Background(), &domain.AnalyticsFilters{
		OrderStatuses: statuses,
		From:          ptr(day(2024, 1, 1)),
	})

	assert.Nil(t, envelope)
	var analyticsErr *AnalyticsError
	require.ErrorAs(t, err, &analyticsErr)
	assert.Equal(t, MetricOrdersHistory, analyticsErr.Metric)
	assert.Equal(t, StageResolveStart, analyticsErr.Stage)
	assert.ErrorIs(t, err, storeErr)
}

var comparisonFilters = domain.AnalyticsFilters{
	OrderStatuses: statuses,
	CurrencyCode:  "usd",
	From:          ptr(day(2024, 2, 1)),
	To:            ptr(day(2024, 2, 29)),
	CompareFrom:   ptr(day(2024, 1, 1)),
	CompareTo:     ptr(day(2024, 2, 1)),
}

func TestService_SalesHistory(t *testing.T) {
	january := []domain.SalesBucket{
		{Date: day(2024, 1, 1), Total: 1000},
		{Date: day(2024, 1, 2), Total: 2000},
	}

	tests := []struct {
		name             string
		filters          domain.AnalyticsFilters
		expectedCurrent  []domain.SalesBucket
		expectedPrevious []domain.SalesBucket
	}{
		{
			name: "período único por dia",
			filters: domain.AnalyticsFilters{
				OrderStatuses: statuses,
				CurrencyCode:  "usd",
				From:          ptr(day(2024, 1, 1)),
				To:            ptr(day(2024, 1, 31)),
			},
			expectedCurrent:  january,
			expectedPrevious: []domain.SalesBucket{},
		},
		{
			name: "período único longo agrupa por mês",
			filters: domain.AnalyticsFilters{
				OrderStatuses: statuses,
				CurrencyCode:  "usd",
				From:          ptr(day(2024, 1, 1)),
				To:            ptr(day(2024, 3, 31)),
			},
			expectedCurrent: []domain.SalesBucket{
				{Date: day(2024, 1, 1), Total: 3000},
				{Date: day(2024, 2, 1), Total: 500},
			},
			expectedPrevious: []domain.SalesBucket{},
		},
		{
			name:             "comparação",
			filters:          comparisonFilters,
			expectedCurrent:  []domain.SalesBucket{{Date: day(2024, 2, 15), Total: 500}},
			expectedPrevious: january,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewService(newOrderStore(ctrl, scenarioOrders()), nil).WithClock(func() time.Time { return fixedNow })

			envelope, err := service.SalesHistory(context.Background(), &tt.filters)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedCurrent, envelope.Current)
			assert.Equal(t, tt.expectedPrevious, envelope.Previous)
		})
	}
}

func TestService_TotalsHistory(t *testing.T) {
	january := []domain.TotalsBucket{
		{Date: day(2024, 1, 1), Totals: domain.Totals{RevenuePreShipping: 900, Shipping: 100, Taxes: 80}},
		{Date: day(2024, 1, 2), Totals: domain.Totals{RevenuePreShipping: 2000, Shipping: 0, Taxes: 160}},
	}

	tests := []struct {
		name             string
		filters          domain.AnalyticsFilters
		expectedCurrent  []domain.TotalsBucket
		expectedPrevious []domain.TotalsBucket
	}{
		{
			name: "período único",
			filters: domain.AnalyticsFilters{
				OrderStatuses: statuses,
				CurrencyCode:  "usd",
				From:          ptr(day(2024, 1, 1)),
				To:            ptr(day(2024, 1, 31)),
			},
			expectedCurrent:  january,
			expectedPrevious: []domain.TotalsBucket{},
		},
		{
			name:    "comparação",
			filters: comparisonFilters,
			expectedCurrent: []domain.TotalsBucket{
				{Date: day(2024, 2, 15), Totals: domain.Totals{RevenuePreShipping: 450, Shipping: 50, Taxes: 40}},
			},
			expectedPrevious: january,
		},
		{
			name: "outra moeda não soma",
			filters: domain.AnalyticsFilters{
				OrderStatuses: statuses,
				CurrencyCode:  "eur",
				From:          ptr(day(2024, 1, 1)),
				To:            ptr(day(2024, 1, 31)),
			},
			expectedCurrent:  []domain.TotalsBucket{},
			expectedPrevious: []domain.TotalsBucket{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewService(newOrderStore(ctrl, scenarioOrders()), nil).WithClock(func() time.Time { return fixedNow })

			envelope, err := service.TotalsHistory(context.Background(), &tt.filters)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedCurrent, envelope.Current)
			assert.Equal(t, tt.expectedPrevious, envelope.Previous)
		})
	}
}

func TestService_RegionsPopularity(t *testing.T) {
	// order_4 não tem região
	regions := []domain.DimensionRecord{
		{OrderID: "order_1", CreatedAt: day(2024, 1, 1).Add(9 * time.Hour), DimensionID: "reg_eu", DimensionName: "Europa"},
		{OrderID: "order_2", CreatedAt: day(2024, 1, 2).Add(15 * time.Hour), DimensionID: "reg_na", DimensionName: "América do Norte"},
		{OrderID: "order_3", CreatedAt: day(2024, 2, 15).Add(11 * time.Hour), DimensionID: "reg_eu", DimensionName: "Europa"},
		{OrderID: "order_4", CreatedAt: day(2024, 2, 15).Add(18 * time.Hour)},
	}

	january := []domain.RegionPopularity{
		{Date: day(2024, 1, 1), RegionID: "reg_eu", RegionName: "Europa", OrderCount: 1, Percentage: decimal.NewFromInt(50)},
		{Date: day(2024, 1, 2), RegionID: "reg_na", RegionName: "América do Norte", OrderCount: 1, Percentage: decimal.NewFromInt(50)},
	}

	tests := []struct {
		name             string
		filters          domain.AnalyticsFilters
		expectedCurrent  []domain.RegionPopularity
		expectedPrevious []domain.RegionPopularity
	}{
		{
			name: "período único por dia",
			filters: domain.AnalyticsFilters{
				OrderStatuses: statuses,
				From:          ptr(day(2024, 1, 1)),
				To:            ptr(day(2024, 1, 31)),
			},
			expectedCurrent:  january,
			expectedPrevious: []domain.RegionPopularity{},
		},
		{
			name:    "comparação com pedido sem região",
			filters: comparisonFilters,
			expectedCurrent: []domain.RegionPopularity{
				{Date: day(2024, 2, 15), RegionID: "", RegionName: "", OrderCount: 1, Percentage: decimal.NewFromInt(50)},
				{Date: day(2024, 2, 15), RegionID: "reg_eu", RegionName: "Europa", OrderCount: 1, Percentage: decimal.NewFromInt(50)},
			},
			expectedPrevious: january,
		},
	}

	assertRows := func(t *testing.T, expected, actual []domain.RegionPopularity) {
		require.Len(t, actual, len(expected))
		for i := range expected {
			assert.Equal(t, expected[i].Date, actual[i].Date)
			assert.Equal(t, expected[i].RegionID, actual[i].RegionID)
			assert.Equal(t, expected[i].RegionName, actual[i].RegionName)
			assert.Equal(t, expected[i].OrderCount, actual[i].OrderCount)
			assert.True(t, expected[i].Percentage.Equal(actual[i].Percentage), "percentual %s, esperado %s", actual[i].Percentage, expected[i].Percentage)
		}
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := newOrderStore(ctrl, scenarioOrders())
			store.EXPECT().ListOrderDimensions(gomock.Any(), domain.DimensionRegion, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ domain.Dimension, q domain.RecordQuery) ([]domain.DimensionRecord, error) {
					result := make([]domain.DimensionRecord, 0)
					for _, record := range regions {
						if inQuery(q, record.CreatedAt, "", "") {
							result = append(result, record)
						}
					}
					return result, nil
				})

			service := NewService(store, nil).WithClock(func() time.Time { return fixedNow })

			envelope, err := service.RegionsPopularity(context.Background(), &tt.filters)
			require.NoError(t, err)
			assertRows(t, tt.expectedCurrent, envelope.Current)
			assertRows(t, tt.expectedPrevious, envelope.Previous)
		})
	}
}
