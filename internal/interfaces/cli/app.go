// Package cli es la capa de presentación: traduce comandos de terminal a
// llamadas sobre los casos de uso y el puerto DataAccess, y hace de route
// guard: los comandos protegidos exigen AuthState autenticado, leído siempre
// del estado en memoria (nunca del disco) una vez hecha la carga inicial.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/jhoicas/bizflow-client/internal/application/auth"
	"github.com/jhoicas/bizflow-client/internal/application/insight"
	"github.com/jhoicas/bizflow-client/internal/application/ports"
	"github.com/jhoicas/bizflow-client/internal/application/session"
	"github.com/jhoicas/bizflow-client/internal/domain"
	"github.com/jhoicas/bizflow-client/pkg/logger"
)

// Version del cliente; se sobreescribe con -ldflags en release.
var Version = "dev"

// Deps dependencias de la aplicación CLI.
type Deps struct {
	API      ports.DataAccess
	Sessions *session.Store
	Auth     *auth.UseCase
	Insights *insight.UseCase
	Log      *logger.Logger
	Out      io.Writer
}

// App despacha los comandos.
type App struct {
	api      ports.DataAccess
	sessions *session.Store
	auth     *auth.UseCase
	insights *insight.UseCase
	log      *logger.Logger
	out      io.Writer
}

// New construye la aplicación.
func New(deps Deps) *App {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	return &App{
		api:      deps.API,
		sessions: deps.Sessions,
		auth:     deps.Auth,
		insights: deps.Insights,
		log:      log,
		out:      deps.Out,
	}
}

// Run resuelve la sesión inicial (una sola vez) y despacha el comando.
func (a *App) Run(ctx context.Context, args []string) error {
	a.sessions.Load()

	if len(args) == 0 {
		a.printUsage()
		return nil
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	// Públicos
	case "login":
		return a.cmdLogin(ctx, rest)
	case "signup":
		return a.cmdSignup(ctx, rest)
	case "version":
		fmt.Fprintf(a.out, "bizflow %s\n", Version)
		return nil
	case "help":
		a.printUsage()
		return nil
	}

	// Todo lo demás requiere sesión: el análogo del redirect a /login.
	if !a.sessions.IsAuthenticated() {
		return fmt.Errorf("%w: ejecuta `bizflow login` primero", domain.ErrNotAuthenticated)
	}

	switch cmd {
	case "logout":
		a.auth.Logout()
		fmt.Fprintln(a.out, "Sesión cerrada.")
		return nil
	case "me":
		return a.cmdMe(ctx, rest)
	case "dashboard":
		return a.cmdDashboard(ctx, rest)
	case "customers":
		return a.cmdCustomers(ctx, rest)
	case "transactions":
		return a.cmdTransactions(ctx, rest)
	case "reports":
		return a.cmdReports(ctx)
	case "settings":
		return a.cmdSettings(ctx, rest)
	case "admin":
		return a.cmdAdmin(ctx, rest)
	default:
		a.printUsage()
		return fmt.Errorf("comando desconocido: %q", cmd)
	}
}

func (a *App) printUsage() {
	fmt.Fprint(a.out, `bizflow - cliente del CRM BizFlow

Uso: bizflow <comando> [flags]

Comandos públicos:
  login        iniciar sesión (--email, --password)
  signup       crear cuenta (--name, --email, --password, --confirm, --company)
  version      versión del cliente

Comandos con sesión:
  logout       cerrar sesión
  me           ver o actualizar el perfil
  dashboard    estadísticas del negocio (--insight añade el análisis de IA)
  customers    list | add | update | rm
  transactions list | add | rm
  reports      informes de mercado
  settings     show | set
  admin        stats | users
`)
}
