// Package scheduler contém os agendadores de tarefas periódicas da API
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
	"github.com/vfg2006/sales-analytics-api/pkg/metrics"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

const jobGeneralReport = "general_report"

var ErrReportRunning = errors.New("geração do relatório geral já está em execução")

// ReportGenerator gera o relatório geral de um período pré-definido
type ReportGenerator interface {
	GeneralReport(ctx context.Context, request *domain.GeneralReportRequest) (*domain.GeneralReport, error)
}

type GeneralReportConfig struct {
	CronSchedule string
	Enabled      bool
	Request      domain.GeneralReportRequest
}

// GeneralReportService gera o relatório geral periodicamente e guarda o último resultado
type GeneralReportService struct {
	scheduler *gocron.Scheduler
	generator ReportGenerator
	config    GeneralReportConfig

	mu              sync.Mutex
	running         bool
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastError       string
	lastReport      *domain.GeneralReport
}

func NewGeneralReportService(generator ReportGenerator, cfg *config.Config) *GeneralReportService {
	reportConfig := GeneralReportConfig{
		CronSchedule: cfg.GeneralReport.CronSchedule,
		Enabled:      cfg.GeneralReport.Enabled,
		Request: domain.GeneralReportRequest{
			DateLasts:     domain.DateLasts(cfg.GeneralReport.DateLasts),
			CurrencyCode:  cfg.GeneralReport.CurrencyCode,
			OrderStatuses: cfg.GeneralReport.OrderStatuses,
			TopLimit:      cfg.GeneralReport.TopLimit,
		},
	}

	log.L.WithFields(log.Fields{
		"job":           jobGeneralReport,
		"cron_schedule": reportConfig.CronSchedule,
		"date_lasts":    reportConfig.Request.DateLasts,
	}).Info("Configuração do agendador do relatório geral carregada")

	return &GeneralReportService{
		scheduler: gocron.NewScheduler(time.UTC),
		generator: generator,
		config:    reportConfig,
	}
}

func (s *GeneralReportService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		log.L.WithField("job", jobGeneralReport).Info("Cron do relatório geral desabilitada por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.Generate(ctx); err != nil && !errors.Is(err, ErrReportRunning) {
			log.L.WithField("job", jobGeneralReport).WithError(err).Error("Erro na geração do relatório geral")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar relatório geral: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.WithField("job", jobGeneralReport).Info("Parando cron do relatório geral")
		s.scheduler.Stop()
	}()

	return nil
}

// Generate gera o relatório com a configuração do agendador.
// Retorna ErrReportRunning se já houver uma geração em andamento.
func (s *GeneralReportService) Generate(ctx context.Context) (*domain.GeneralReport, error) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil, ErrReportRunning
	}
	s.running = true
	s.lastStartedAt = time.Now()
	s.mu.Unlock()

	logger := log.ForContext(ctx).WithField("job", jobGeneralReport)
	logger.Info("Iniciando geração do relatório geral")

	request := s.config.Request
	report, err := s.generator.GeneralReport(ctx, &request)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.running = false
	s.lastCompletedAt = time.Now()
	metrics.RecordReportRun(err, s.lastCompletedAt.Sub(s.lastStartedAt))

	if err != nil {
		s.lastError = err.Error()
		return nil, err
	}

	s.lastError = ""
	s.lastReport = report
	logger.WithField("report_id", report.ID).Info("Relatório geral gerado")
	logger.Debugf("Relatório geral: %s", utils.PrettyJSON(report))

	return report, nil
}

// TriggerManualRun inicia a geração em background
func (s *GeneralReportService) TriggerManualRun() {
	s.mu.Lock()
	running := s.running
	s.mu.Unlock()

	if running {
		log.L.WithField("job", jobGeneralReport).Info("Relatório geral já em andamento, ignorando solicitação manual")
		return
	}

	go func() {
		ctx, _ := log.WithCorrelationID(context.Background())
		if _, err := s.Generate(ctx); err != nil && !errors.Is(err, ErrReportRunning) {
			log.ForContext(ctx).WithField("job", jobGeneralReport).WithError(err).Error("Erro na geração manual do relatório geral")
		}
	}()
}

// LastReport retorna o último relatório gerado com sucesso, ou nil
func (s *GeneralReportService) LastReport() *domain.GeneralReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastReport
}

// GetStatus retorna o status atual do agendador
func (s *GeneralReportService) GetStatus() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := map[string]any{
		"enabled":           s.config.Enabled,
		"cron":              s.config.CronSchedule,
		"date_lasts":        s.config.Request.DateLasts,
		"running":           s.running,
		"last_started_at":   s.lastStartedAt,
		"last_completed_at": s.lastCompletedAt,
		"last_error":        s.lastError,
	}
	if s.lastReport != nil {
		status["last_report_id"] = s.lastReport.ID
	}

	return status
}
