// Package mock implementa la variante sin backend del puerto DataAccess:
// arrays en memoria sembrados con fixtures fijos y espejados al almacenamiento
// local tras cada mutación, con latencia artificial opcional para aproximar la
// sensación de red.
//
// El login/signup de esta variante NUNCA valida credenciales: siempre tiene
// éxito y fabrica el usuario a partir del email. Por eso la selección del modo
// es de configuración al arranque y pkg/config rechaza el mock con
// APP_ENV=production.
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bizflow-client/internal/application/ports"
	"github.com/jhoicas/bizflow-client/internal/domain"
	"github.com/jhoicas/bizflow-client/internal/domain/entity"
	"github.com/jhoicas/bizflow-client/pkg/logger"
)

// Verificar en tiempo de compilación que Service implementa DataAccess.
var _ ports.DataAccess = (*Service)(nil)

// Claves de los arrays espejados en el almacenamiento local.
const (
	customersKey    = "bizflow_customers"
	transactionsKey = "bizflow_transactions"
	settingsKey     = "bizflow_settings"
)

// Service es el cliente de datos mock.
type Service struct {
	mu           sync.Mutex
	customers    []entity.Customer
	transactions []entity.Transaction
	store        ports.LocalStorage
	latency      time.Duration
	insights     ports.InsightGenerator // opcional: camino directo a Gemini
	log          *logger.Logger
}

// New construye el servicio cargando los arrays persistidos, o sembrando los
// fixtures iniciales la primera vez.
func New(store ports.LocalStorage, latency time.Duration, insights ports.InsightGenerator, log *logger.Logger) (*Service, error) {
	if log == nil {
		log = logger.Nop()
	}
	s := &Service{
		store:    store,
		latency:  latency,
		insights: insights,
		log:      log,
	}

	found, err := store.Get(customersKey, &s.customers)
	if err != nil {
		return nil, fmt.Errorf("mock: cargar customers: %w", err)
	}
	if !found {
		s.customers = seedCustomers()
	}
	found, err = store.Get(transactionsKey, &s.transactions)
	if err != nil {
		return nil, fmt.Errorf("mock: cargar transactions: %w", err)
	}
	if !found {
		s.transactions = seedTransactions()
	}
	return s, nil
}

// delay simula latencia de red respetando la cancelación del contexto.
func (s *Service) delay(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// persist espeja los arrays al almacenamiento local. Se invoca con el mutex
// tomado, tras cada mutación.
func (s *Service) persist() {
	if err := s.store.Set(customersKey, s.customers); err != nil {
		s.log.Error().Err(err).Msg("mock: persistir customers")
	}
	if err := s.store.Set(transactionsKey, s.transactions); err != nil {
		s.log.Error().Err(err).Msg("mock: persistir transactions")
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth (siempre exitoso, solo para builds de demo)
// ──────────────────────────────────────────────────────────────────────────────

// Login fabrica el usuario demo fijo con el email recibido. No valida nada.
func (s *Service) Login(ctx context.Context, email, password string) (*entity.User, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	return &entity.User{
		ID:     "admin-1",
		Name:   "Alex Johnson",
		Email:  email,
		Role:   entity.RoleAdmin,
		Avatar: avatarFor(email),
	}, nil
}

// Signup fabrica un usuario nuevo con id aleatorio. No persiste nada.
func (s *Service) Signup(ctx context.Context, name, email, password, company string) (*entity.User, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	return &entity.User{
		ID:     uuid.NewString(),
		Name:   name,
		Email:  email,
		Role:   entity.RoleAdmin,
		Avatar: avatarFor(email),
	}, nil
}

// GetMe devuelve el usuario demo.
func (s *Service) GetMe(ctx context.Context) (*entity.User, error) {
	return s.Login(ctx, "alex@bizflow.io", "")
}

// UpdateProfile acepta la actualización sin almacenarla.
func (s *Service) UpdateProfile(ctx context.Context, name, email string) error {
	return s.delay(ctx)
}

func avatarFor(email string) string {
	return "https://picsum.photos/seed/" + email + "/200"
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard
// ──────────────────────────────────────────────────────────────────────────────

// GetDashboardStats recalcula el snapshot en cada llamada. El ingreso total
// suma únicamente transacciones Completed, con aritmética decimal para no
// acumular error de coma flotante.
func (s *Service) GetDashboardStats(ctx context.Context) (*entity.DashboardStats, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	revenue := decimal.Zero
	for _, tx := range s.transactions {
		if tx.Status == entity.TxCompleted {
			revenue = revenue.Add(decimal.NewFromFloat(tx.Amount))
		}
	}

	// Recientes: las últimas cinco, de la más nueva a la más vieja.
	recent := make([]entity.Transaction, 0, 5)
	for i := len(s.transactions) - 1; i >= 0 && len(recent) < 5; i-- {
		recent = append(recent, s.transactions[i])
	}

	totalRevenue, _ := revenue.Float64()
	return &entity.DashboardStats{
		TotalCustomers:     len(s.customers),
		TotalTransactions:  len(s.transactions),
		TotalRevenue:       totalRevenue,
		MonthlyGrowth:      12.5,
		RevenueChart:       seedRevenueChart(),
		RecentTransactions: recent,
	}, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Customers
// ──────────────────────────────────────────────────────────────────────────────

// GetCustomers devuelve una copia de la lista.
func (s *Service) GetCustomers(ctx context.Context) ([]entity.Customer, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Customer, len(s.customers))
	copy(out, s.customers)
	return out, nil
}

// AddCustomer asigna id y fecha de creación y espeja al disco.
func (s *Service) AddCustomer(ctx context.Context, in entity.NewCustomer) (*entity.Customer, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	status := in.Status
	if status == "" {
		status = entity.CustomerActive
	}
	customer := entity.Customer{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Company:   in.Company,
		Status:    status,
		CreatedAt: time.Now().Format("2006-01-02"),
	}
	s.customers = append(s.customers, customer)
	s.persist()
	return &customer, nil
}

// UpdateCustomer aplica la actualización parcial campo a campo.
func (s *Service) UpdateCustomer(ctx context.Context, id string, updates entity.CustomerUpdate) (*entity.Customer, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].ID != id {
			continue
		}
		if updates.Name != "" {
			s.customers[i].Name = updates.Name
		}
		if updates.Email != "" {
			s.customers[i].Email = updates.Email
		}
		if updates.Company != "" {
			s.customers[i].Company = updates.Company
		}
		if updates.Status != "" {
			s.customers[i].Status = updates.Status
		}
		s.persist()
		customer := s.customers[i]
		return &customer, nil
	}
	return nil, domain.ErrNotFound
}

// DeleteCustomer elimina por id. Borrar un id inexistente no es error:
// el resultado final es el mismo, el cliente ya no existe.
func (s *Service) DeleteCustomer(ctx context.Context, id string) error {
	if err := s.delay(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.customers[:0]
	for _, c := range s.customers {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.customers = kept
	s.persist()
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Transactions
// ──────────────────────────────────────────────────────────────────────────────

// GetTransactions devuelve una copia de la lista.
func (s *Service) GetTransactions(ctx context.Context) ([]entity.Transaction, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out, nil
}

// AddTransaction asigna id y espeja al disco. El estado ya viene en
// vocabulario del cliente: en esta variante no hay wire que traducir.
func (s *Service) AddTransaction(ctx context.Context, in entity.NewTransaction) (*entity.Transaction, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := entity.Transaction{
		ID:           "t" + uuid.NewString(),
		CustomerID:   in.CustomerID,
		CustomerName: in.CustomerName,
		Amount:       in.Amount,
		Date:         in.Date,
		Status:       in.Status,
		Category:     in.Category,
	}
	s.transactions = append(s.transactions, tx)
	s.persist()
	return &tx, nil
}

// DeleteTransaction elimina por id.
func (s *Service) DeleteTransaction(ctx context.Context, id string) error {
	if err := s.delay(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.transactions[:0]
	for _, tx := range s.transactions {
		if tx.ID != id {
			kept = append(kept, tx)
		}
	}
	s.transactions = kept
	s.persist()
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Market reports y settings
// ──────────────────────────────────────────────────────────────────────────────

// GetMarketReports devuelve los informes de demo.
func (s *Service) GetMarketReports(ctx context.Context) ([]entity.MarketReport, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	return seedMarketReports(), nil
}

// GetSettings lee las preferencias persistidas; vacías si nunca se guardaron.
func (s *Service) GetSettings(ctx context.Context) (entity.Settings, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	settings := entity.Settings{}
	if _, err := s.store.Get(settingsKey, &settings); err != nil {
		return nil, fmt.Errorf("mock: cargar settings: %w", err)
	}
	return settings, nil
}

// UpdateSettings persiste las preferencias.
func (s *Service) UpdateSettings(ctx context.Context, settings entity.Settings) error {
	if err := s.delay(ctx); err != nil {
		return err
	}
	return s.store.Set(settingsKey, settings)
}

// ──────────────────────────────────────────────────────────────────────────────
// Admin
// ──────────────────────────────────────────────────────────────────────────────

// GetAdminStats fabrica el agregado de administración con los datos locales.
func (s *Service) GetAdminStats(ctx context.Context) (*entity.AdminStats, error) {
	stats, err := s.GetDashboardStats(ctx)
	if err != nil {
		return nil, err
	}
	return &entity.AdminStats{
		TotalUsers:     len(seedUsers()),
		ActiveSessions: 1,
		TotalRevenue:   stats.TotalRevenue,
		SystemHealth:   "operational",
	}, nil
}

// GetAllUsers devuelve la plantilla de usuarios demo.
func (s *Service) GetAllUsers(ctx context.Context) ([]entity.User, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	return seedUsers(), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// AI
// ──────────────────────────────────────────────────────────────────────────────

// GetAIInsights delega en el generador directo (Gemini) si está configurado;
// sin generador compone un resumen determinista con los propios datos. Los
// errores del generador se propagan: el fallback es asunto del caso de uso.
func (s *Service) GetAIInsights(ctx context.Context, stats *entity.DashboardStats) (string, error) {
	if s.insights != nil {
		return s.insights.GenerateInsight(ctx, stats)
	}
	if err := s.delay(ctx); err != nil {
		return "", err
	}
	if stats == nil {
		return "", domain.ErrInvalidInput
	}
	return fmt.Sprintf(
		"Revenue stands at $%.2f across %d customers with %.1f%% monthly growth; double down on your top recurring categories to sustain the trend.",
		stats.TotalRevenue, stats.TotalCustomers, stats.MonthlyGrowth,
	), nil
}
