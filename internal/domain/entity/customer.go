package entity

// Estados válidos para Customer (vocabulario del cliente).
const (
	CustomerActive   = "Active"
	CustomerInactive = "Inactive"
	CustomerLead     = "Lead"
)

// Customer representa un cliente del CRM en su forma canónica.
// ID siempre es string aunque el backend emita identificadores numéricos.
type Customer struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Company   string `json:"company"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"` // fecha en formato string, la asigna el servidor
}

// NewCustomer son los campos que aporta el cliente al crear un Customer;
// el servidor asigna ID y CreatedAt.
type NewCustomer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Status  string `json:"status"`
}

// CustomerUpdate es una actualización parcial: los campos vacíos no se envían.
type CustomerUpdate struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Company string `json:"company,omitempty"`
	Status  string `json:"status,omitempty"`
}
