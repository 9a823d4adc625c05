// Package insight adapta el endpoint de narrativa generativa a la UI: pase lo
// que pase con la llamada, el caller recibe un texto.
package insight

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/bizflow-client/internal/application/ports"
	"github.com/jhoicas/bizflow-client/internal/domain/entity"
	"github.com/jhoicas/bizflow-client/pkg/logger"
)

// Frases sustitutas fijas. Este endpoint jamás muestra un error crudo:
// ante cualquier fallo se degrada a Unavailable; ante una respuesta vacía
// exitosa, a StableGrowth.
const (
	Unavailable  = "AI Analyst is currently unavailable. Review your revenue stream manually for optimizations."
	StableGrowth = "Analyzed metrics suggest stable growth; monitor customer acquisition costs to ensure scalability."
)

// defaultTimeout acota la espera de la llamada generativa, que puede ser
// lenta. El contrato de fallback convierte el timeout en la frase sustituta.
const defaultTimeout = 10 * time.Second

// UseCase genera el resumen narrativo del dashboard.
type UseCase struct {
	api     ports.DataAccess
	timeout time.Duration
	log     *logger.Logger
}

// New construye el caso de uso. timeout <= 0 usa el default de 10s.
func New(api ports.DataAccess, timeout time.Duration, log *logger.Logger) *UseCase {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{api: api, timeout: timeout, log: log}
}

// Summary devuelve el resumen narrativo para el snapshot. Siempre resuelve:
// errores de red, respuestas malformadas y timeouts degradan a la frase fija
// en lugar de propagarse.
func (uc *UseCase) Summary(ctx context.Context, stats *entity.DashboardStats) string {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	text, err := uc.api.GetAIInsights(ctx, stats)
	if err != nil {
		uc.log.Warn().Err(err).Msg("insight no disponible, se usa el texto de respaldo")
		return Unavailable
	}
	if strings.TrimSpace(text) == "" {
		return StableGrowth
	}
	return text
}
