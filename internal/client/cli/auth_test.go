package cli

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carebook/carebook/internal/client/models"
	"github.com/carebook/carebook/internal/client/services"
)

// stubPasswords replaces the password prompt with a scripted queue.
func stubPasswords(t *testing.T, passwords ...string) {
	t.Helper()
	orig := getPassword
	t.Cleanup(func() { getPassword = orig })
	getPassword = func(w io.Writer) (string, error) {
		if len(passwords) == 0 {
			return "", io.EOF
		}
		pw := passwords[0]
		passwords = passwords[1:]
		return pw, nil
	}
}

func TestLoginScreen(t *testing.T) {
	app, out := newTestApp("alice\n")
	stubPasswords(t, "secret")

	auth := app.auth.(*fakeAuth)
	auth.loginUser = &models.User{Username: "alice", FirstName: "Alice", LastName: "Smith", Role: models.RoleDoctor}

	require.NoError(t, app.Login(context.Background()))

	require.Len(t, auth.loginCalls, 1)
	assert.Equal(t, [2]string{"alice", "secret"}, auth.loginCalls[0])
	assert.Contains(t, out.String(), "Welcome, Alice Smith")
	assert.Contains(t, out.String(), "see your schedule")
}

func TestLoginScreenPatientHint(t *testing.T) {
	app, out := newTestApp("bob\n")
	stubPasswords(t, "secret")
	app.auth.(*fakeAuth).loginUser = &models.User{Username: "bob", FirstName: "Bob", Role: models.RolePatient}

	require.NoError(t, app.Login(context.Background()))
	assert.Contains(t, out.String(), "browse practitioners")
}

func TestLoginScreenEmptyInput(t *testing.T) {
	app, out := newTestApp("alice\n")
	stubPasswords(t, "")

	require.NoError(t, app.Login(context.Background()))
	assert.Contains(t, out.String(), "both username and password")
	assert.Empty(t, app.auth.(*fakeAuth).loginCalls)
}

func TestLoginScreenError(t *testing.T) {
	app, out := newTestApp("alice\n")
	stubPasswords(t, "wrong")
	app.auth.(*fakeAuth).loginErr = errors.New("No active account found with the given credentials")

	require.NoError(t, app.Login(context.Background()))
	assert.Contains(t, out.String(), "Error: No active account found")
}

func TestRegisterScreen(t *testing.T) {
	app, out := newTestApp("carol\ncarol@example.com\nCarol\nJones\n555-0100\n")
	stubPasswords(t, "pw12345", "pw12345")

	require.NoError(t, app.Register(context.Background()))

	auth := app.auth.(*fakeAuth)
	require.Len(t, auth.regForms, 1)
	form := auth.regForms[0]
	assert.Equal(t, "carol", form.Username)
	assert.Equal(t, "carol@example.com", form.Email)
	assert.Equal(t, "pw12345", form.Password)
	assert.Contains(t, out.String(), "Account created")
}

func TestRegisterScreenPasswordMismatch(t *testing.T) {
	app, out := newTestApp("carol\ncarol@example.com\nCarol\nJones\n\n")
	stubPasswords(t, "pw12345", "different")

	require.NoError(t, app.Register(context.Background()))
	assert.Contains(t, out.String(), "Passwords do not match")
	assert.Empty(t, app.auth.(*fakeAuth).regForms)
}

func TestRegisterScreenFieldErrors(t *testing.T) {
	app, out := newTestApp("carol\nbad\nCarol\nJones\n\n")
	stubPasswords(t, "pw12345", "pw12345")
	app.auth.(*fakeAuth).regErr = &services.ValidationError{Fields: map[string]string{
		"email": "Enter a valid email address.",
	}}

	require.NoError(t, app.Register(context.Background()))
	assert.Contains(t, out.String(), "email: Enter a valid email address.")
}

func TestResetPasswordScreen(t *testing.T) {
	app, out := newTestApp("carol@example.com\n")

	require.NoError(t, app.ResetPassword(context.Background()))
	assert.Equal(t, []string{"carol@example.com"}, app.auth.(*fakeAuth).resetMails)
	assert.Contains(t, out.String(), "reset email")
}

func TestWhoAmIScreen(t *testing.T) {
	app, out := newTestApp("")
	require.NoError(t, app.WhoAmI(context.Background()))
	assert.Contains(t, out.String(), "Not logged in")

	err := app.session.Login(context.Background(), &models.User{
		Username: "alice", FirstName: "Alice", LastName: "Smith",
		Email: "alice@example.com", Role: models.RolePatient,
	}, "tok")
	require.NoError(t, err)

	out.Reset()
	require.NoError(t, app.WhoAmI(context.Background()))
	assert.Contains(t, out.String(), "Alice Smith (patient)")
	assert.Contains(t, out.String(), "alice@example.com")
}

func TestSessionExpiredForcesLogout(t *testing.T) {
	app, out := newTestApp("")
	require.NoError(t, app.session.Login(context.Background(), &models.User{Username: "alice"}, "tok"))

	app.appointments.(*fakeAppointments).listErr = services.ErrSessionExpired
	require.NoError(t, app.Appointments(context.Background()))

	assert.Contains(t, out.String(), "Session expired. Please login again.")
	assert.False(t, app.session.IsAuthenticated())
}
