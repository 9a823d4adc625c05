package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
)

// cmdAdmin despacha el panel de administración. El guard local solo exige
// sesión; la autorización por rol la impone el backend, que es la autoridad.
func (a *App) cmdAdmin(ctx context.Context, args []string) error {
	sub := "stats"
	if len(args) > 0 {
		sub = args[0]
	}
	switch sub {
	case "stats":
		stats, err := a.api.GetAdminStats(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Usuarios: %d   Sesiones activas: %d   Ingresos: $%.2f   Salud: %s\n",
			stats.TotalUsers, stats.ActiveSessions, stats.TotalRevenue, stats.SystemHealth)
		return nil
	case "users":
		users, err := a.api.GetAllUsers(ctx)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNOMBRE\tEMAIL\tROL")
		for _, u := range users {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role)
		}
		return w.Flush()
	default:
		return fmt.Errorf("admin: subcomando desconocido %q", sub)
	}
}
