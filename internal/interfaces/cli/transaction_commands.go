package cli

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/jhoicas/bizflow-client/internal/domain/entity"
)

// cmdTransactions despacha los subcomandos de transacciones.
func (a *App) cmdTransactions(ctx context.Context, args []string) error {
	sub := "list"
	if len(args) > 0 {
		sub, args = args[0], args[1:]
	}
	switch sub {
	case "list":
		return a.transactionsList(ctx)
	case "add":
		return a.transactionsAdd(ctx, args)
	case "rm":
		return a.transactionsRemove(ctx, args)
	default:
		return fmt.Errorf("transactions: subcomando desconocido %q", sub)
	}
}

func (a *App) transactionsList(ctx context.Context) error {
	txs, err := a.api.GetTransactions(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCLIENTE\tMONTO\tFECHA\tESTADO\tCATEGORÍA")
	for _, tx := range txs {
		fmt.Fprintf(w, "%s\t%s\t$%.2f\t%s\t%s\t%s\n", tx.ID, tx.CustomerName, tx.Amount, tx.Date, tx.Status, tx.Category)
	}
	return w.Flush()
}

func (a *App) transactionsAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("transactions add", flag.ContinueOnError)
	fs.SetOutput(a.out)
	customerID := fs.String("customer-id", "", "id del cliente")
	customerName := fs.String("customer-name", "", "nombre del cliente")
	amount := fs.Float64("amount", 0, "monto")
	date := fs.String("date", "", "fecha (YYYY-MM-DD)")
	status := fs.String("status", entity.TxPending, "Completed | Pending | Cancelled")
	category := fs.String("category", "", "categoría")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *customerID == "" {
		return fmt.Errorf("transactions add: falta --customer-id")
	}

	tx, err := a.api.AddTransaction(ctx, entity.NewTransaction{
		CustomerID:   *customerID,
		CustomerName: *customerName,
		Amount:       *amount,
		Date:         *date,
		Status:       *status,
		Category:     *category,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Transacción creada con id %s.\n", tx.ID)
	return nil
}

func (a *App) transactionsRemove(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("transactions rm", flag.ContinueOnError)
	fs.SetOutput(a.out)
	id := fs.String("id", "", "id de la transacción")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("transactions rm: falta --id")
	}
	if err := a.api.DeleteTransaction(ctx, *id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Transacción %s eliminada.\n", *id)
	return nil
}
