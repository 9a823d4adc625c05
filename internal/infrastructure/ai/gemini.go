// Package ai contiene el adaptador directo a la API REST de Google Gemini.
// Solo lo consume el cliente mock (modo demo sin backend): en producción los
// insights viajan por el proxy del backend y la API key jamás se distribuye
// con el cliente.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/bizflow-client/internal/application/ports"
	"github.com/jhoicas/bizflow-client/internal/domain/entity"
)

// Verificar en tiempo de compilación que GeminiService implementa el puerto.
var _ ports.InsightGenerator = (*GeminiService)(nil)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

	// systemPrompt define el rol del modelo: analista de negocio senior que
	// resume el dashboard en dos frases. Se mantiene en inglés porque el
	// producto entrega los insights en inglés.
	systemPrompt = `You are a senior business analyst for a high-growth SaaS platform called BizFlow.
Task: Provide a 2-sentence executive summary highlighting one strength and one opportunity for optimization.
Tone: Professional, data-driven, and encouraging. Return plain text, no markdown.`
)

// GeminiService adaptador que implementa InsightGenerator llamando a la API
// REST de Gemini. Usa únicamente net/http para no añadir dependencias.
type GeminiService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGeminiService construye el adaptador. model suele ser "gemini-1.5-flash".
// Con apiKey vacío las llamadas devuelven error descriptivo en lugar de panic.
func NewGeminiService(apiKey, model string) *GeminiService {
	return &GeminiService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: 20 * time.Second, // timeout de red; el caller también pone WithTimeout
		},
	}
}

// ── Estructuras internas para la API de Gemini ────────────────────────────────

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type genConfig struct {
	Temperature     float32 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// GenerateInsight llama a Gemini con las métricas del dashboard y devuelve el
// resumen narrativo. Propaga errores: el fallback lo resuelve el caso de uso.
func (s *GeminiService) GenerateInsight(ctx context.Context, stats *entity.DashboardStats) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("ai: GEMINI_API_KEY no configurado")
	}
	if stats == nil {
		return "", fmt.Errorf("ai: stats nulo")
	}

	payload := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: systemPrompt}},
		},
		Contents: []geminiContent{
			{
				Role:  "user",
				Parts: []geminiPart{{Text: statsPrompt(stats)}},
			},
		},
		GenerationConfig: genConfig{
			Temperature:     0.4,
			MaxOutputTokens: 256,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("ai: serializar request: %w", err)
	}

	url := fmt.Sprintf(geminiBaseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("ai: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("ai: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("ai: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("ai: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// Intentar extraer el mensaje de error de Gemini
		var errResp geminiResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("ai: Gemini error %d: %s", errResp.Error.Code, errResp.Error.Message)
		}
		return "", fmt.Errorf("ai: Gemini HTTP %d", resp.StatusCode)
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(rawBody, &gemResp); err != nil {
		return "", fmt.Errorf("ai: deserializar respuesta Gemini: %w", err)
	}
	if len(gemResp.Candidates) == 0 || len(gemResp.Candidates[0].Content.Parts) == 0 {
		return "", nil // respuesta vacía; el caso de uso pone la frase sustituta
	}
	return strings.TrimSpace(gemResp.Candidates[0].Content.Parts[0].Text), nil
}

// statsPrompt serializa el snapshot en el prompt de usuario.
func statsPrompt(stats *entity.DashboardStats) string {
	var highlights []string
	for i, tx := range stats.RecentTransactions {
		if i == 3 {
			break
		}
		highlights = append(highlights, fmt.Sprintf("%s (%s: $%.0f)", tx.CustomerName, tx.Category, tx.Amount))
	}
	return fmt.Sprintf(
		"Analyze these metrics:\n- Total Revenue: $%.2f\n- Total Customers: %d\n- Monthly Growth: %.1f%%\n- Recent Activity Highlights: %s",
		stats.TotalRevenue, stats.TotalCustomers, stats.MonthlyGrowth, strings.Join(highlights, ", "),
	)
}
