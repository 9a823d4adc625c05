// Package auth orquesta el ciclo de vida de autenticación sobre el session
// store: login y signup contra el DataAccess, logout local.
package auth

import (
	"context"
	"strings"

	"github.com/jhoicas/bizflow-client/internal/application/ports"
	"github.com/jhoicas/bizflow-client/internal/application/session"
	"github.com/jhoicas/bizflow-client/internal/domain"
	"github.com/jhoicas/bizflow-client/internal/domain/entity"
	"github.com/jhoicas/bizflow-client/pkg/logger"
)

// UseCase casos de uso de autenticación.
type UseCase struct {
	api      ports.DataAccess
	sessions *session.Store
	log      *logger.Logger
}

// New construye el caso de uso.
func New(api ports.DataAccess, sessions *session.Store, log *logger.Logger) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{api: api, sessions: sessions, log: log}
}

// Login valida la entrada, llama al backend y persiste el User devuelto tal
// cual. Un login fallido deja el estado y el almacenamiento intactos; el
// error sube al caller para que la UI lo muestre.
func (uc *UseCase) Login(ctx context.Context, email, password string) (*entity.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}

	user, err := uc.api.Login(ctx, email, password)
	if err != nil {
		uc.log.Debug().Err(err).Str("email", email).Msg("login rechazado")
		return nil, err
	}
	if err := uc.sessions.Save(user); err != nil {
		return nil, err
	}
	uc.log.Info().Str("user_id", user.ID).Msg("sesión iniciada")
	return user, nil
}

// Signup valida la entrada (incluida la confirmación de contraseña, que se
// comprueba ANTES de tocar la red) y persiste la sesión del usuario creado.
func (uc *UseCase) Signup(ctx context.Context, name, email, password, confirm, company string) (*entity.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}
	if password != confirm {
		return nil, domain.ErrPasswordMismatch
	}

	user, err := uc.api.Signup(ctx, name, email, password, company)
	if err != nil {
		uc.log.Debug().Err(err).Str("email", email).Msg("signup rechazado")
		return nil, err
	}
	if err := uc.sessions.Save(user); err != nil {
		return nil, err
	}
	uc.log.Info().Str("user_id", user.ID).Msg("cuenta creada, sesión iniciada")
	return user, nil
}

// Logout limpia la sesión duradera y el estado en memoria. Síncrono y nunca
// falla.
func (uc *UseCase) Logout() {
	uc.sessions.Clear()
	uc.log.Info().Msg("sesión cerrada")
}
