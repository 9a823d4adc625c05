package mock

import "github.com/jhoicas/bizflow-client/internal/domain/entity"

// Datos iniciales del modo demo. Se cargan la primera vez que el Store local
// no tiene arrays persistidos; a partir de ahí la verdad vive en disco.

func seedCustomers() []entity.Customer {
	return []entity.Customer{
		{ID: "1", Name: "John Doe", Email: "john@techcorp.com", Company: "TechCorp", Status: entity.CustomerActive, CreatedAt: "2023-10-01"},
		{ID: "2", Name: "Jane Smith", Email: "jane@designhub.io", Company: "DesignHub", Status: entity.CustomerActive, CreatedAt: "2023-11-15"},
		{ID: "3", Name: "Robert Brown", Email: "robert@builders.net", Company: "Build-It", Status: entity.CustomerInactive, CreatedAt: "2024-01-20"},
		{ID: "4", Name: "Alice Wilson", Email: "alice@marketing.co", Company: "MarketMasters", Status: entity.CustomerLead, CreatedAt: "2024-02-10"},
		{ID: "5", Name: "Charlie Davis", Email: "charlie@logistics.com", Company: "Davis Trans", Status: entity.CustomerActive, CreatedAt: "2024-03-05"},
	}
}

func seedTransactions() []entity.Transaction {
	return []entity.Transaction{
		{ID: "t1", CustomerID: "1", CustomerName: "John Doe", Amount: 1500, Date: "2024-03-01", Status: entity.TxCompleted, Category: "Software"},
		{ID: "t2", CustomerID: "2", CustomerName: "Jane Smith", Amount: 850, Date: "2024-03-02", Status: entity.TxCompleted, Category: "Design"},
		{ID: "t3", CustomerID: "1", CustomerName: "John Doe", Amount: 1200, Date: "2024-03-05", Status: entity.TxPending, Category: "Consulting"},
		{ID: "t4", CustomerID: "5", CustomerName: "Charlie Davis", Amount: 2400, Date: "2024-03-10", Status: entity.TxCompleted, Category: "Logistics"},
		{ID: "t5", CustomerID: "3", CustomerName: "Robert Brown", Amount: 500, Date: "2024-03-12", Status: entity.TxCancelled, Category: "Repair"},
		{ID: "t6", CustomerID: "2", CustomerName: "Jane Smith", Amount: 1100, Date: "2024-03-15", Status: entity.TxCompleted, Category: "Design"},
	}
}

func seedRevenueChart() []entity.RevenuePoint {
	return []entity.RevenuePoint{
		{Month: "Oct", Amount: 12000},
		{Month: "Nov", Amount: 15000},
		{Month: "Dec", Amount: 13500},
		{Month: "Jan", Amount: 18000},
		{Month: "Feb", Amount: 22000},
		{Month: "Mar", Amount: 24500},
	}
}

func seedMarketReports() []entity.MarketReport {
	return []entity.MarketReport{
		{ID: "r1", Title: "SaaS Quarterly Outlook", Sector: "Software", Summary: "Recurring revenue keeps outpacing services across mid-market accounts.", Date: "2024-03-01"},
		{ID: "r2", Title: "Design Services Pulse", Sector: "Design", Summary: "Branding engagements grow while one-off retainers flatten.", Date: "2024-02-15"},
		{ID: "r3", Title: "Logistics Cost Index", Sector: "Logistics", Summary: "Freight costs stabilize after two volatile quarters.", Date: "2024-01-30"},
	}
}
