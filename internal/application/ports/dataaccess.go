// Package ports define los puertos de salida de la aplicación.
// Siguiendo el principio de inversión de dependencias (DIP), los casos de uso
// y la capa de presentación solo conocen estos contratos, nunca el adaptador
// concreto (REST o mock).
package ports

import (
	"context"

	"github.com/jhoicas/bizflow-client/internal/domain/entity"
)

// DataAccess es el punto único de contacto entre la aplicación y el backend.
// Tiene dos variantes intercambiables seleccionadas al arranque por
// configuración: el cliente REST y el cliente mock en memoria. Los call sites
// nunca preguntan cuál de las dos tienen delante.
//
// Todos los resultados llegan ya normalizados a las formas canónicas de
// entity: IDs string y estados en vocabulario del cliente.
type DataAccess interface {
	// Auth
	Login(ctx context.Context, email, password string) (*entity.User, error)
	Signup(ctx context.Context, name, email, password, company string) (*entity.User, error)
	GetMe(ctx context.Context) (*entity.User, error)
	UpdateProfile(ctx context.Context, name, email string) error

	// Dashboard
	GetDashboardStats(ctx context.Context) (*entity.DashboardStats, error)

	// Customers
	GetCustomers(ctx context.Context) ([]entity.Customer, error)
	AddCustomer(ctx context.Context, in entity.NewCustomer) (*entity.Customer, error)
	UpdateCustomer(ctx context.Context, id string, updates entity.CustomerUpdate) (*entity.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error

	// Transactions
	GetTransactions(ctx context.Context) ([]entity.Transaction, error)
	AddTransaction(ctx context.Context, in entity.NewTransaction) (*entity.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error

	// Market reports y settings
	GetMarketReports(ctx context.Context) ([]entity.MarketReport, error)
	GetSettings(ctx context.Context) (entity.Settings, error)
	UpdateSettings(ctx context.Context, settings entity.Settings) error

	// Admin (la autorización la impone el backend)
	GetAdminStats(ctx context.Context) (*entity.AdminStats, error)
	GetAllUsers(ctx context.Context) ([]entity.User, error)

	// AI
	GetAIInsights(ctx context.Context, stats *entity.DashboardStats) (string, error)
}

// TokenSource entrega el bearer token de la sesión vigente, o "" si no hay
// sesión. Lo implementa el session store; el cliente REST lo consulta en cada
// petición sin tocar el almacenamiento local directamente.
type TokenSource interface {
	Token() string
}

// InsightGenerator genera un resumen narrativo a partir de un snapshot del
// dashboard. Lo implementa el adaptador directo de Gemini (solo modo mock);
// en producción los insights van siempre por el proxy del backend.
type InsightGenerator interface {
	GenerateInsight(ctx context.Context, stats *entity.DashboardStats) (string, error)
}
