package cli

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/jhoicas/bizflow-client/internal/domain/entity"
)

// cmdCustomers despacha los subcomandos de clientes.
func (a *App) cmdCustomers(ctx context.Context, args []string) error {
	sub := "list"
	if len(args) > 0 {
		sub, args = args[0], args[1:]
	}
	switch sub {
	case "list":
		return a.customersList(ctx)
	case "add":
		return a.customersAdd(ctx, args)
	case "update":
		return a.customersUpdate(ctx, args)
	case "rm":
		return a.customersRemove(ctx, args)
	default:
		return fmt.Errorf("customers: subcomando desconocido %q", sub)
	}
}

func (a *App) customersList(ctx context.Context) error {
	customers, err := a.api.GetCustomers(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOMBRE\tEMAIL\tEMPRESA\tESTADO\tALTA")
	for _, c := range customers {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Email, c.Company, c.Status, c.CreatedAt)
	}
	return w.Flush()
}

func (a *App) customersAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("customers add", flag.ContinueOnError)
	fs.SetOutput(a.out)
	name := fs.String("name", "", "nombre del cliente")
	email := fs.String("email", "", "email")
	company := fs.String("company", "", "empresa")
	status := fs.String("status", entity.CustomerActive, "Active | Inactive | Lead")
	if err := fs.Parse(args); err != nil {
		return err
	}

	customer, err := a.api.AddCustomer(ctx, entity.NewCustomer{
		Name:    *name,
		Email:   *email,
		Company: *company,
		Status:  *status,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Cliente creado con id %s.\n", customer.ID)
	return nil
}

func (a *App) customersUpdate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("customers update", flag.ContinueOnError)
	fs.SetOutput(a.out)
	id := fs.String("id", "", "id del cliente")
	name := fs.String("name", "", "nuevo nombre")
	email := fs.String("email", "", "nuevo email")
	company := fs.String("company", "", "nueva empresa")
	status := fs.String("status", "", "nuevo estado")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("customers update: falta --id")
	}

	customer, err := a.api.UpdateCustomer(ctx, *id, entity.CustomerUpdate{
		Name:    *name,
		Email:   *email,
		Company: *company,
		Status:  *status,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Cliente %s actualizado.\n", customer.ID)
	return nil
}

func (a *App) customersRemove(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("customers rm", flag.ContinueOnError)
	fs.SetOutput(a.out)
	id := fs.String("id", "", "id del cliente")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("customers rm: falta --id")
	}
	if err := a.api.DeleteCustomer(ctx, *id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Cliente %s eliminado.\n", *id)
	return nil
}
