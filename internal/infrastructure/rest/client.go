// Package rest implementa la variante en red del puerto DataAccess: construye
// las peticiones HTTP contra el backend BizFlow, inyecta el bearer token de la
// sesión, desenvuelve la doble forma de respuesta del backend y normaliza las
// entidades a las formas canónicas del cliente.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jhoicas/bizflow-client/internal/application/ports"
	"github.com/jhoicas/bizflow-client/internal/domain/entity"
	"github.com/jhoicas/bizflow-client/pkg/logger"
)

// Verificar en tiempo de compilación que Client implementa DataAccess.
var _ ports.DataAccess = (*Client)(nil)

// maxBodyBytes limita la lectura de cuerpos de respuesta.
const maxBodyBytes = 4 << 20

// genericFailure es el mensaje sustituto cuando un cuerpo de error no trae
// un campo message legible. La UI lo muestra tal cual, sin traducir.
const genericFailure = "API Request Failed"

// APIError es el rechazo de una operación contra el backend. Error() devuelve
// exactamente el message del cuerpo (o el genérico), porque la UI lo muestra
// sin retocar.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string { return e.Message }

// Client es el cliente REST del backend BizFlow.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  ports.TokenSource
	log     *logger.Logger
}

// Config opciones del cliente REST.
type Config struct {
	BaseURL string        // ej. http://localhost:5000/api (sin slash final)
	Timeout time.Duration // timeout de red por petición; 0 = 15s
}

// New construye el cliente. tokens puede ser nil si nunca habrá sesión
// (peticiones siempre anónimas); el backend es la autoridad para rechazarlas.
func New(cfg Config, tokens ports.TokenSource, log *logger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}
}

// request ejecuta method sobre baseURL+path con body serializado a JSON (nil
// para peticiones sin cuerpo) y deserializa el payload desenvuelto en out
// (nil si no interesa la respuesta).
//
// Contrato de fallo: un status no-2xx rechaza con *APIError cuyo Message sale
// del campo message del cuerpo si se pudo parsear, o el genérico si no; un
// cuerpo de error ilegible jamás tumba la llamada. Un cuerpo 2xx que no
// parsea como JSON sí es error fatal de la operación.
func (c *Client) request(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("rest: serializar petición %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("rest: crear petición %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	// Sin sesión almacenada la petición sale igualmente sin Authorization:
	// el backend decide si la rechaza.
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("rest: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("rest: leer respuesta de %s %s: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Debug().Int("status", resp.StatusCode).Str("path", path).Msg("petición rechazada por el backend")
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(raw)}
	}

	if out == nil {
		return nil
	}
	payload, err := unwrap(raw)
	if err != nil {
		return fmt.Errorf("rest: respuesta de %s %s: %w", method, path, err)
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("rest: deserializar respuesta de %s %s: %w", method, path, err)
	}
	return nil
}

// errorMessage extrae el message del cuerpo de error; si el cuerpo no es JSON
// o no trae message, devuelve el genérico. Los errores de parseo se tragan.
func errorMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		return body.Message
	}
	return genericFailure
}

// unwrap aplica la tolerancia a la doble forma de respuesta del backend:
// `{success:true, data:...}` entrega data; cualquier otra forma (objeto pelado,
// success:false, sin envelope) entrega el payload completo. Es la única
// función de desenvelopado: nunca se especializa por endpoint.
func unwrap(raw []byte) (json.RawMessage, error) {
	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		// No era un objeto JSON: puede ser un array o un escalar válido.
		var anything json.RawMessage
		if err2 := json.Unmarshal(raw, &anything); err2 != nil {
			return nil, fmt.Errorf("cuerpo no es JSON válido: %w", err2)
		}
		return anything, nil
	}
	if envelope.Success && envelope.Data != nil {
		return envelope.Data, nil
	}
	return raw, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

// Login POST /auth/login. Devuelve el User con token incluido.
func (c *Client) Login(ctx context.Context, email, password string) (*entity.User, error) {
	var user entity.User
	payload := map[string]string{"email": email, "password": password}
	if err := c.request(ctx, http.MethodPost, "/auth/login", payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Signup POST /auth/register.
func (c *Client) Signup(ctx context.Context, name, email, password, company string) (*entity.User, error) {
	var user entity.User
	payload := map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
		"company":  company,
	}
	if err := c.request(ctx, http.MethodPost, "/auth/register", payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetMe GET /auth/me.
func (c *Client) GetMe(ctx context.Context) (*entity.User, error) {
	var user entity.User
	if err := c.request(ctx, http.MethodGet, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile PUT /auth/me.
func (c *Client) UpdateProfile(ctx context.Context, name, email string) error {
	payload := map[string]string{"name": name, "email": email}
	return c.request(ctx, http.MethodPut, "/auth/me", payload, nil)
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard
// ──────────────────────────────────────────────────────────────────────────────

// GetDashboardStats GET /dashboard/stats. Pasa el agregado tal cual.
func (c *Client) GetDashboardStats(ctx context.Context) (*entity.DashboardStats, error) {
	var stats entity.DashboardStats
	if err := c.request(ctx, http.MethodGet, "/dashboard/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Customers
// ──────────────────────────────────────────────────────────────────────────────

// GetCustomers GET /customers, normalizando cada registro.
func (c *Client) GetCustomers(ctx context.Context) ([]entity.Customer, error) {
	var wire []wireCustomer
	if err := c.request(ctx, http.MethodGet, "/customers", nil, &wire); err != nil {
		return nil, err
	}
	customers := make([]entity.Customer, 0, len(wire))
	for _, w := range wire {
		customers = append(customers, w.toEntity())
	}
	return customers, nil
}

// AddCustomer POST /customers. El servidor asigna id y created_at.
func (c *Client) AddCustomer(ctx context.Context, in entity.NewCustomer) (*entity.Customer, error) {
	var w wireCustomer
	if err := c.request(ctx, http.MethodPost, "/customers", in, &w); err != nil {
		return nil, err
	}
	customer := w.toEntity()
	return &customer, nil
}

// UpdateCustomer PUT /customers/:id con actualización parcial.
func (c *Client) UpdateCustomer(ctx context.Context, id string, updates entity.CustomerUpdate) (*entity.Customer, error) {
	var w wireCustomer
	if err := c.request(ctx, http.MethodPut, "/customers/"+id, updates, &w); err != nil {
		return nil, err
	}
	customer := w.toEntity()
	return &customer, nil
}

// DeleteCustomer DELETE /customers/:id.
func (c *Client) DeleteCustomer(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodDelete, "/customers/"+id, nil, nil)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transactions
// ──────────────────────────────────────────────────────────────────────────────

// GetTransactions GET /transactions, normalizando ids, fecha y estado.
func (c *Client) GetTransactions(ctx context.Context) ([]entity.Transaction, error) {
	var wire []wireTransaction
	if err := c.request(ctx, http.MethodGet, "/transactions", nil, &wire); err != nil {
		return nil, err
	}
	txs := make([]entity.Transaction, 0, len(wire))
	for _, w := range wire {
		txs = append(txs, w.toEntity())
	}
	return txs, nil
}

// AddTransaction POST /transactions. El estado viaja en vocabulario del
// backend y el valor devuelto se sintetiza con la entrada más el id asignado,
// de vuelta en vocabulario del cliente.
func (c *Client) AddTransaction(ctx context.Context, in entity.NewTransaction) (*entity.Transaction, error) {
	payload := map[string]any{
		"customer_id": in.CustomerID,
		"amount":      in.Amount,
		"status":      statusToWire(in.Status),
		"category":    in.Category,
	}
	var created struct {
		ID flexID `json:"id"`
	}
	if err := c.request(ctx, http.MethodPost, "/transactions", payload, &created); err != nil {
		return nil, err
	}
	return &entity.Transaction{
		ID:           created.ID.String(),
		CustomerID:   in.CustomerID,
		CustomerName: in.CustomerName,
		Amount:       in.Amount,
		Date:         in.Date,
		Status:       in.Status,
		Category:     in.Category,
	}, nil
}

// DeleteTransaction DELETE /transactions/:id.
func (c *Client) DeleteTransaction(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodDelete, "/transactions/"+id, nil, nil)
}

// ──────────────────────────────────────────────────────────────────────────────
// Market reports y settings
// ──────────────────────────────────────────────────────────────────────────────

// GetMarketReports GET /market-reports. Sin normalización.
func (c *Client) GetMarketReports(ctx context.Context) ([]entity.MarketReport, error) {
	var reports []entity.MarketReport
	if err := c.request(ctx, http.MethodGet, "/market-reports", nil, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// GetSettings GET /settings.
func (c *Client) GetSettings(ctx context.Context) (entity.Settings, error) {
	var settings entity.Settings
	if err := c.request(ctx, http.MethodGet, "/settings", nil, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// UpdateSettings POST /settings.
func (c *Client) UpdateSettings(ctx context.Context, settings entity.Settings) error {
	return c.request(ctx, http.MethodPost, "/settings", settings, nil)
}

// ──────────────────────────────────────────────────────────────────────────────
// Admin
// ──────────────────────────────────────────────────────────────────────────────

// GetAdminStats GET /admin/stats. La autorización la impone el backend.
func (c *Client) GetAdminStats(ctx context.Context) (*entity.AdminStats, error) {
	var stats entity.AdminStats
	if err := c.request(ctx, http.MethodGet, "/admin/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetAllUsers GET /admin/users.
func (c *Client) GetAllUsers(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := c.request(ctx, http.MethodGet, "/admin/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// AI
// ──────────────────────────────────────────────────────────────────────────────

// GetAIInsights POST /ai/analyze. Devuelve el texto narrativo generado por el
// backend a partir del snapshot. El manejo del fallback vive en el caso de
// uso de insights, no aquí: esta llamada sí propaga errores.
func (c *Client) GetAIInsights(ctx context.Context, stats *entity.DashboardStats) (string, error) {
	var text string
	payload := map[string]any{"stats": stats}
	if err := c.request(ctx, http.MethodPost, "/ai/analyze", payload, &text); err != nil {
		return "", err
	}
	return text, nil
}
