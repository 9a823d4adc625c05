package entity

// RevenuePoint es un punto del gráfico de ingresos mensuales.
type RevenuePoint struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

// DashboardStats es el snapshot agregado del dashboard. Es de solo lectura:
// lo recalcula el backend (o el mock) en cada consulta y el cliente nunca lo muta.
type DashboardStats struct {
	TotalCustomers     int            `json:"totalCustomers"`
	TotalTransactions  int            `json:"totalTransactions"`
	TotalRevenue       float64        `json:"totalRevenue"`
	MonthlyGrowth      float64        `json:"monthlyGrowth"`
	RevenueChart       []RevenuePoint `json:"revenueChart"`
	RecentTransactions []Transaction  `json:"recentTransactions"`
}

// AdminStats es el agregado del panel de administración (solo rol ADMIN;
// la autorización la impone el backend).
type AdminStats struct {
	TotalUsers     int     `json:"totalUsers"`
	ActiveSessions int     `json:"activeSessions"`
	TotalRevenue   float64 `json:"totalRevenue"`
	SystemHealth   string  `json:"systemHealth"`
}

// MarketReport es un informe de mercado tal cual lo entrega el backend,
// sin normalización de por medio.
type MarketReport struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Sector  string `json:"sector"`
	Summary string `json:"summary"`
	Date    string `json:"date"`
}

// Settings son las preferencias del sistema; el cliente las trata como un
// documento opaco clave→valor.
type Settings map[string]any
