package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/bizflow-client/internal/domain/entity"
)

func TestGenerateInsight_SinAPIKeyDevuelveError(t *testing.T) {
	svc := NewGeminiService("", "gemini-1.5-flash")
	_, err := svc.GenerateInsight(context.Background(), &entity.DashboardStats{})
	assert.Error(t, err)
}

func TestGenerateInsight_StatsNulo(t *testing.T) {
	svc := NewGeminiService("clave", "gemini-1.5-flash")
	_, err := svc.GenerateInsight(context.Background(), nil)
	assert.Error(t, err)
}

func TestStatsPrompt_IncluyeMetricasYRecorta(t *testing.T) {
	stats := &entity.DashboardStats{
		TotalRevenue:   5850,
		TotalCustomers: 5,
		MonthlyGrowth:  12.5,
		RecentTransactions: []entity.Transaction{
			{CustomerName: "Acme Corp", Category: "Subscription", Amount: 1500},
			{CustomerName: "Globex", Category: "Consulting", Amount: 850},
			{CustomerName: "Initech", Category: "License", Amount: 2400},
			{CustomerName: "Umbrella", Category: "Subscription", Amount: 1100},
		},
	}

	prompt := statsPrompt(stats)
	assert.Contains(t, prompt, "$5850.00")
	assert.Contains(t, prompt, "Monthly Growth: 12.5%")
	assert.Contains(t, prompt, "Acme Corp")
	assert.NotContains(t, prompt, "Umbrella", "solo se incluyen las tres transacciones más recientes")
}
