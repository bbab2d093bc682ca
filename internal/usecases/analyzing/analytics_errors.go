package analyzing

import (
	"errors"
	"fmt"
)

// Etapas em que uma métrica consulta o store
const (
	StageResolveStart = "resolve_start"
	StageFetch        = "fetch"
)

var ErrStoreFailure = errors.New("falha ao consultar o store de registros")

// AnalyticsError carrega a métrica e a etapa em que o store falhou
type AnalyticsError struct {
	Err    error  // Erro retornado pelo store
	Metric string // Métrica em cálculo
	Stage  string // Etapa (resolve_start, fetch)
}

// Error implementa a interface error
func (e *AnalyticsError) Error() string {
	return fmt.Sprintf("%s: métrica %s, etapa %s: %v", ErrStoreFailure, e.Metric, e.Stage, e.Err)
}

// Unwrap retorna o erro subjacente
func (e *AnalyticsError) Unwrap() error {
	return e.Err
}

// Is permite errors.Is(err, ErrStoreFailure)
func (e *AnalyticsError) Is(target error) bool {
	return target == ErrStoreFailure
}

func newAnalyticsError(metric, stage string, err error) *AnalyticsError {
	return &AnalyticsError{Err: err, Metric: metric, Stage: stage}
}
