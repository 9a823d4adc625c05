package entity

// Estados válidos para Transaction (vocabulario del cliente).
// El vocabulario del backend (paid/pending/cancelled) nunca llega a la UI:
// la traducción ocurre en la frontera del data-access client.
const (
	TxCompleted = "Completed"
	TxPending   = "Pending"
	TxCancelled = "Cancelled"
)

// Transaction representa una transacción en su forma canónica.
// ID y CustomerID siempre son string; Status siempre es uno de los tres
// valores del vocabulario del cliente.
type Transaction struct {
	ID           string  `json:"id"`
	CustomerID   string  `json:"customerId"`
	CustomerName string  `json:"customerName"`
	Amount       float64 `json:"amount"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	Category     string  `json:"category"`
}

// NewTransaction son los campos que aporta el cliente al crear una
// Transaction (vocabulario del cliente); el servidor asigna el ID.
type NewTransaction struct {
	CustomerID   string  `json:"customerId"`
	CustomerName string  `json:"customerName"`
	Amount       float64 `json:"amount"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	Category     string  `json:"category"`
}
