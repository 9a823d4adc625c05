package cli

import (
	"context"
	"flag"
	"fmt"
)

// cmdLogin inicia sesión y persiste el User devuelto.
func (a *App) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(a.out)
	email := fs.String("email", "", "email de la cuenta")
	password := fs.String("password", "", "contraseña")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.auth.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Hola, %s. Sesión iniciada como %s.\n", user.Name, user.Email)
	return nil
}

// cmdSignup crea la cuenta e inicia sesión.
func (a *App) cmdSignup(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("signup", flag.ContinueOnError)
	fs.SetOutput(a.out)
	name := fs.String("name", "", "nombre completo")
	email := fs.String("email", "", "email de la cuenta")
	password := fs.String("password", "", "contraseña")
	confirm := fs.String("confirm", "", "confirmación de la contraseña")
	company := fs.String("company", "", "empresa")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.auth.Signup(ctx, *name, *email, *password, *confirm, *company)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Cuenta creada. Bienvenido, %s.\n", user.Name)
	return nil
}

// cmdMe muestra el perfil, o lo actualiza con `me update`.
func (a *App) cmdMe(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] == "update" {
		fs := flag.NewFlagSet("me update", flag.ContinueOnError)
		fs.SetOutput(a.out)
		name := fs.String("name", "", "nuevo nombre")
		email := fs.String("email", "", "nuevo email")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if err := a.api.UpdateProfile(ctx, *name, *email); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Perfil actualizado.")
		return nil
	}

	user, err := a.api.GetMe(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s <%s> (rol %s)\n", user.Name, user.Email, user.Role)
	return nil
}
