package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/carebook/carebook/internal/client/models"
	"github.com/carebook/carebook/internal/client/services"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and runs the login chain. On success the
// user lands on their role's home: doctors see their schedule hint, patients
// the booking hint.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	if username == "" || password == "" {
		fmt.Fprintln(a.out, "Please enter both username and password")
		return nil
	}

	user, err := a.auth.Login(ctx, username, password)
	if err != nil {
		a.handleServiceError(ctx, err)
		return nil
	}

	fmt.Fprintf(a.out, "Login successful! Welcome, %s.\n", user.FullName())
	switch user.Role {
	case models.RoleDoctor:
		fmt.Fprintln(a.out, "Type 'appointments' to see your schedule.")
	case models.RoleAdmin:
		fmt.Fprintln(a.out, "Type 'appointments' to review bookings.")
	default:
		fmt.Fprintln(a.out, "Type 'doctors' to browse practitioners or 'book' to book a visit.")
	}
	return nil
}

// Register walks the registration form, including password confirmation.
// Field-level rejections are rendered inline, one field per line.
func (a *App) Register(ctx context.Context) error {
	form := models.RegistrationForm{}

	var err error
	if form.Username, err = getSimpleText(a.reader, "Choose a username", a.out); err != nil {
		return err
	}
	if form.Email, err = getSimpleText(a.reader, "Email address", a.out); err != nil {
		return err
	}
	if form.FirstName, err = getSimpleText(a.reader, "First name", a.out); err != nil {
		return err
	}
	if form.LastName, err = getSimpleText(a.reader, "Last name", a.out); err != nil {
		return err
	}
	if form.Phone, err = getSimpleText(a.reader, "Phone (optional)", a.out); err != nil {
		return err
	}
	if form.Password, err = getPassword(a.out); err != nil {
		return err
	}
	if form.Password2, err = getPassword(a.out); err != nil {
		return err
	}
	if form.Password != form.Password2 {
		fmt.Fprintln(a.out, "Passwords do not match")
		return nil
	}

	if err := a.auth.Register(ctx, form); err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			for field, msg := range verr.Fields {
				fmt.Fprintf(a.out, "  %s: %s\n", field, msg)
			}
			return nil
		}
		a.handleServiceError(ctx, err)
		return nil
	}

	fmt.Fprintln(a.out, "Account created. You can now login.")
	return nil
}

// ResetPassword requests the reset email.
func (a *App) ResetPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Account email", a.out)
	if err != nil {
		return err
	}
	if err := a.auth.RequestPasswordReset(ctx, email); err != nil {
		a.handleServiceError(ctx, err)
		return nil
	}
	fmt.Fprintln(a.out, "If the address exists, a reset email is on its way.")
	return nil
}

// WhoAmI prints the in-memory profile. It never blocks on the network.
func (a *App) WhoAmI(ctx context.Context) error {
	user := a.session.CurrentUser()
	if user == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	fmt.Fprintf(a.out, "%s (%s)\n", user.FullName(), user.Role)
	fmt.Fprintf(a.out, "  username: %s\n  email: %s\n", user.Username, user.Email)
	if user.Phone != "" {
		fmt.Fprintf(a.out, "  phone: %s\n", user.Phone)
	}
	return nil
}

// Logout clears the session and the stored credentials.
func (a *App) Logout(ctx context.Context) error {
	return a.session.Logout(ctx)
}
