package insight_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/bizflow-client/internal/application/insight"
	"github.com/jhoicas/bizflow-client/internal/application/ports"
	"github.com/jhoicas/bizflow-client/internal/domain/entity"
)

type fakeInsightAPI struct {
	ports.DataAccess

	fn func(ctx context.Context, stats *entity.DashboardStats) (string, error)
}

func (f *fakeInsightAPI) GetAIInsights(ctx context.Context, stats *entity.DashboardStats) (string, error) {
	return f.fn(ctx, stats)
}

func TestSummary_PropagaElTextoDelBackend(t *testing.T) {
	api := &fakeInsightAPI{fn: func(context.Context, *entity.DashboardStats) (string, error) {
		return "Revenue is trending up.", nil
	}}
	uc := insight.New(api, 0, nil)

	got := uc.Summary(context.Background(), &entity.DashboardStats{})
	assert.Equal(t, "Revenue is trending up.", got)
}

func TestSummary_ErrorDegradaAFraseFija(t *testing.T) {
	api := &fakeInsightAPI{fn: func(context.Context, *entity.DashboardStats) (string, error) {
		return "", errors.New("upstream 503")
	}}
	uc := insight.New(api, 0, nil)

	got := uc.Summary(context.Background(), &entity.DashboardStats{})
	assert.Equal(t, insight.Unavailable, got)
}

func TestSummary_RespuestaVaciaExitosaDegradaAEstable(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t"} {
		api := &fakeInsightAPI{fn: func(context.Context, *entity.DashboardStats) (string, error) {
			return text, nil
		}}
		uc := insight.New(api, 0, nil)
		assert.Equal(t, insight.StableGrowth, uc.Summary(context.Background(), &entity.DashboardStats{}))
	}
}

func TestSummary_TimeoutDegradaAFraseFija(t *testing.T) {
	api := &fakeInsightAPI{fn: func(ctx context.Context, _ *entity.DashboardStats) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	}}
	uc := insight.New(api, 20*time.Millisecond, nil)

	start := time.Now()
	got := uc.Summary(context.Background(), &entity.DashboardStats{})
	assert.Equal(t, insight.Unavailable, got)
	assert.Less(t, time.Since(start), 2*time.Second, "el timeout corto debe cortar la espera")
}
