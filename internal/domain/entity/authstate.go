package entity

// AuthState es el estado de autenticación del proceso.
//
// Invariante: IsAuthenticated == (User != nil) en todo punto observable.
// Ciclo de vida: arranca con IsLoading=true; se resuelve exactamente una vez
// al leer la sesión del almacenamiento local; después solo transiciona por
// login/signup (→ autenticado) o logout (→ no autenticado).
type AuthState struct {
	User            *User
	IsAuthenticated bool
	IsLoading       bool
}
