package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"text/tabwriter"
)

// cmdDashboard muestra el snapshot del negocio. Con --insight añade el
// resumen narrativo; ambas llamadas son independientes y el insight jamás
// hace fallar el comando.
func (a *App) cmdDashboard(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	fs.SetOutput(a.out)
	withInsight := fs.Bool("insight", false, "añadir análisis generado por IA")
	if err := fs.Parse(args); err != nil {
		return err
	}

	stats, err := a.api.GetDashboardStats(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Clientes: %d   Transacciones: %d   Ingresos: $%.2f   Crecimiento mensual: %.1f%%\n\n",
		stats.TotalCustomers, stats.TotalTransactions, stats.TotalRevenue, stats.MonthlyGrowth)

	if len(stats.RecentTransactions) > 0 {
		fmt.Fprintln(a.out, "Últimas transacciones:")
		w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
		for _, tx := range stats.RecentTransactions {
			fmt.Fprintf(w, "  %s\t%s\t$%.2f\t%s\n", tx.CustomerName, tx.Category, tx.Amount, tx.Status)
		}
		w.Flush()
	}

	if *withInsight {
		fmt.Fprintf(a.out, "\nAnálisis: %s\n", a.insights.Summary(ctx, stats))
	}
	return nil
}

// cmdReports lista los informes de mercado.
func (a *App) cmdReports(ctx context.Context) error {
	reports, err := a.api.GetMarketReports(ctx)
	if err != nil {
		return err
	}
	for _, r := range reports {
		fmt.Fprintf(a.out, "[%s] %s (%s)\n  %s\n", r.Date, r.Title, r.Sector, r.Summary)
	}
	return nil
}

// cmdSettings muestra o actualiza las preferencias del sistema.
func (a *App) cmdSettings(ctx context.Context, args []string) error {
	sub := "show"
	if len(args) > 0 {
		sub, args = args[0], args[1:]
	}
	switch sub {
	case "show":
		settings, err := a.api.GetSettings(ctx)
		if err != nil {
			return err
		}
		data, err := json.MarshalIndent(settings, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, string(data))
		return nil
	case "set":
		fs := flag.NewFlagSet("settings set", flag.ContinueOnError)
		fs.SetOutput(a.out)
		key := fs.String("key", "", "clave")
		value := fs.String("value", "", "valor")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if *key == "" {
			return fmt.Errorf("settings set: falta --key")
		}
		settings, err := a.api.GetSettings(ctx)
		if err != nil {
			return err
		}
		if settings == nil {
			settings = map[string]any{}
		}
		settings[*key] = *value
		if err := a.api.UpdateSettings(ctx, settings); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Preferencias guardadas.")
		return nil
	default:
		return fmt.Errorf("settings: subcomando desconocido %q", sub)
	}
}
