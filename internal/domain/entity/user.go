package entity

// Roles válidos para User (vocabulario del backend BizFlow).
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// User representa al usuario autenticado tal como lo entrega el backend.
// El objeto completo (incluido Token, si existe) es la unidad que se persiste
// en el almacenamiento local bajo la clave de sesión.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"`
	Token  string `json:"token,omitempty"`
}

// IsAdmin indica si el usuario tiene rol de administrador.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
