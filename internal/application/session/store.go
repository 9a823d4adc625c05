// Package session implementa el session store: la única fuente de verdad del
// estado de autenticación y el único componente con acceso al registro de
// sesión del almacenamiento local. Todo lo demás (route guard, cliente REST)
// depende de sus accessors públicos.
package session

import (
	"sync"

	"github.com/jhoicas/bizflow-client/internal/application/ports"
	"github.com/jhoicas/bizflow-client/internal/domain/entity"
	"github.com/jhoicas/bizflow-client/pkg/jwt"
	"github.com/jhoicas/bizflow-client/pkg/logger"
)

// Verificar en tiempo de compilación que Store implementa TokenSource.
var _ ports.TokenSource = (*Store)(nil)

// UserKey es la clave del registro de sesión en el almacenamiento local.
const UserKey = "bizflow_user"

// Store mantiene el AuthState en memoria y lo respalda en localstore.
//
// Máquina de estados: loading → {authenticated, unauthenticated}.
// Load ocurre exactamente una vez por proceso; las llamadas posteriores son
// no-ops. Invariante: IsAuthenticated == (User != nil) siempre.
type Store struct {
	mu     sync.RWMutex
	back   ports.LocalStorage
	state  entity.AuthState
	loaded bool
	log    *logger.Logger
}

// New construye el Store en estado loading (aún sin resolver).
func New(back ports.LocalStorage, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{
		back:  back,
		state: entity.AuthState{IsLoading: true},
		log:   log,
	}
}

// Load resuelve el estado inicial leyendo el registro de sesión una sola vez.
// Registro presente y bien formado → autenticado; ausente, corrupto o con un
// JWT vencido → no autenticado (los registros inservibles se limpian).
// Nunca devuelve error al caller: un almacenamiento ilegible equivale a no
// tener sesión.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return
	}
	s.loaded = true

	var user entity.User
	found, err := s.back.Get(UserKey, &user)
	if err != nil {
		s.log.Warn().Err(err).Msg("sesión almacenada ilegible, se descarta")
		_ = s.back.Delete(UserKey)
		s.state = entity.AuthState{}
		return
	}
	if !found || user.ID == "" {
		s.state = entity.AuthState{}
		return
	}
	if user.Token != "" && jwt.Expired(user.Token) {
		s.log.Info().Str("user_id", user.ID).Msg("token de sesión vencido, se descarta")
		_ = s.back.Delete(UserKey)
		s.state = entity.AuthState{}
		return
	}

	s.state = entity.AuthState{User: &user, IsAuthenticated: true}
	s.log.Debug().Str("user_id", user.ID).Msg("sesión restaurada")
}

// Save persiste el usuario tal cual (token incluido) y transiciona a
// autenticado. Si la escritura falla, el estado en memoria no cambia: un
// login fallido a medias no debe corromper ni el estado ni el disco.
func (s *Store) Save(user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.back.Set(UserKey, user); err != nil {
		return err
	}
	s.state = entity.AuthState{User: user, IsAuthenticated: true}
	return nil
}

// Clear borra el registro duradero y transiciona a no autenticado de forma
// síncrona. Nunca falla: un error de borrado se registra y el estado en
// memoria queda limpio igualmente.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.back.Delete(UserKey); err != nil {
		s.log.Error().Err(err).Msg("no se pudo borrar la sesión almacenada")
	}
	s.state = entity.AuthState{}
}

// State devuelve una copia del AuthState vigente.
func (s *Store) State() entity.AuthState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// User devuelve el usuario autenticado o nil.
func (s *Store) User() *entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.User
}

// IsAuthenticated indica si hay sesión activa.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsAuthenticated
}

// Token devuelve el bearer token de la sesión vigente, o "" si no hay.
// Implementa ports.TokenSource para el cliente REST.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.User == nil {
		return ""
	}
	return s.state.User.Token
}
