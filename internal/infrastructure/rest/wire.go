package rest

import (
	"bytes"
	"encoding/json"

	"github.com/jhoicas/bizflow-client/internal/domain/entity"
)

// flexID acepta identificadores numéricos o string en el wire y los expone
// siempre como string, que es la forma canónica del cliente.
type flexID string

// UnmarshalJSON tolera `42`, `"42"` y null.
func (f *flexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

func (f flexID) String() string { return string(f) }

// wireCustomer es la forma del customer en el wire del backend
// (snake_case, id posiblemente numérico, status opcional).
type wireCustomer struct {
	ID        flexID `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Company   string `json:"company"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// toEntity normaliza a la forma canónica: id string y status con fallback
// Active cuando el backend lo omite.
func (w wireCustomer) toEntity() entity.Customer {
	status := w.Status
	if status == "" {
		status = entity.CustomerActive
	}
	return entity.Customer{
		ID:        w.ID.String(),
		Name:      w.Name,
		Email:     w.Email,
		Company:   w.Company,
		Status:    status,
		CreatedAt: w.CreatedAt,
	}
}

// wireTransaction es la forma de la transacción en el wire del backend.
type wireTransaction struct {
	ID           flexID  `json:"id"`
	CustomerID   flexID  `json:"customer_id"`
	CustomerName string  `json:"customer_name"`
	Amount       float64 `json:"amount"`
	Status       string  `json:"status"`
	Category     string  `json:"category"`
	CreatedAt    string  `json:"created_at"`
}

// toEntity normaliza ids, fecha y vocabulario de estado.
func (w wireTransaction) toEntity() entity.Transaction {
	return entity.Transaction{
		ID:           w.ID.String(),
		CustomerID:   w.CustomerID.String(),
		CustomerName: w.CustomerName,
		Amount:       w.Amount,
		Date:         w.CreatedAt,
		Status:       statusFromWire(w.Status),
		Category:     w.Category,
	}
}

// statusFromWire traduce el vocabulario del backend al del cliente.
// paid/pending/cancelled ↔ Completed/Pending/Cancelled es una biyección
// total; cualquier otro valor del backend cae en Pending como default seguro.
func statusFromWire(s string) string {
	switch s {
	case "paid":
		return entity.TxCompleted
	case "cancelled":
		return entity.TxCancelled
	default:
		return entity.TxPending
	}
}

// statusToWire traduce el vocabulario del cliente al del backend.
func statusToWire(s string) string {
	switch s {
	case entity.TxCompleted:
		return "paid"
	case entity.TxCancelled:
		return "cancelled"
	default:
		return "pending"
	}
}
