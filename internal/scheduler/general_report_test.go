package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/analyzing/mocks"
	"go.uber.org/mock/gomock"
)

func reportConfig() *config.Config {
	return &config.Config{
		GeneralReport: config.GeneralReport{
			CronSchedule:  "0 7 * * 1",
			Enabled:       false,
			DateLasts:     "last-week",
			CurrencyCode:  "usd",
			OrderStatuses: []string{"pending", "completed"},
			TopLimit:      3,
		},
	}
}

func TestGeneralReportService_Generate(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(m *mocks.MockAnalyzer)
		wantErr   bool
		wantLast  bool
		wantError string
	}{
		{
			name: "gera relatório com a configuração do agendador",
			setup: func(m *mocks.MockAnalyzer) {
				m.EXPECT().
					GeneralReport(gomock.Any(), &domain.GeneralReportRequest{
						DateLasts:     domain.DateLastsLastWeek,
						CurrencyCode:  "usd",
						OrderStatuses: []string{"pending", "completed"},
						TopLimit:      3,
					}).
					Return(&domain.GeneralReport{ID: "report_abc", DateLasts: domain.DateLastsLastWeek}, nil)
			},
			wantLast: true,
		},
		{
			name: "erro do analyzer fica registrado no status",
			setup: func(m *mocks.MockAnalyzer) {
				m.EXPECT().
					GeneralReport(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("banco fora do ar"))
			},
			wantErr:   true,
			wantError: "banco fora do ar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			analyzer := mocks.NewMockAnalyzer(ctrl)
			tt.setup(analyzer)

			service := NewGeneralReportService(analyzer, reportConfig())

			report, err := service.Generate(context.Background())
			status := service.GetStatus()

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, report)
				assert.Equal(t, tt.wantError, status["last_error"])
			} else {
				require.NoError(t, err)
				assert.Equal(t, "report_abc", report.ID)
				assert.Equal(t, "report_abc", status["last_report_id"])
			}

			assert.Equal(t, tt.wantLast, service.LastReport() != nil)
			assert.Equal(t, false, status["running"])
		})
	}
}

func TestGeneralReportService_GenerateWhileRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyzer := mocks.NewMockAnalyzer(ctrl)

	service := NewGeneralReportService(analyzer, reportConfig())
	service.running = true

	_, err := service.Generate(context.Background())

	assert.ErrorIs(t, err, ErrReportRunning)
}

func TestGeneralReportService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewGeneralReportService(mocks.NewMockAnalyzer(ctrl), reportConfig())

	require.NoError(t, service.Start(context.Background()))
	assert.Equal(t, 0, len(service.scheduler.Jobs()))
}

func TestGeneralReportService_TriggerManualRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyzer := mocks.NewMockAnalyzer(ctrl)

	done := make(chan struct{})
	analyzer.EXPECT().
		GeneralReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req *domain.GeneralReportRequest) (*domain.GeneralReport, error) {
			defer close(done)
			return &domain.GeneralReport{ID: "report_manual"}, nil
		})

	service := NewGeneralReportService(analyzer, reportConfig())
	service.TriggerManualRun()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("geração manual não foi executada")
	}

	assert.Eventually(t, func() bool {
		return service.LastReport() != nil
	}, 2*time.Second, 10*time.Millisecond)
}
