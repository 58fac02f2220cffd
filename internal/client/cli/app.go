package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/carebook/carebook/internal/client/api"
	"github.com/carebook/carebook/internal/client/config"
	"github.com/carebook/carebook/internal/client/repositories/credentials"
	"github.com/carebook/carebook/internal/client/services"
	"github.com/carebook/carebook/internal/client/session"
	"github.com/carebook/carebook/internal/logging"
)

// App wires the Carebook screens to the services, the session manager and
// the credential store. One instance lives for the whole process.
type App struct {
	config  *config.Config
	session *session.Manager

	auth         services.AuthService
	doctors      services.DoctorService
	appointments services.AppointmentService
	video        services.VideoCallService

	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer

	// submit guard for the booking flow: while a creation request is in
	// flight, another submit is refused
	booking bool
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := credentials.OpenDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing credential database", "error", err)
		return nil, err
	}
	repo := credentials.NewSQLiteRepository(db)

	sess := session.NewManager(repo, log)
	sess.Bootstrap(ctx)

	opts := []api.Option{}
	if c.HTTPTimeout > 0 {
		opts = append(opts, api.WithTimeout(c.HTTPTimeout))
	}
	apiClient := api.New(c.BaseURL, repo, log, opts...)

	app := &App{
		config:       c,
		session:      sess,
		auth:         services.NewAuthService(apiClient, sess, log),
		doctors:      services.NewDoctorService(apiClient),
		appointments: services.NewAppointmentService(apiClient, log),
		video:        services.NewVideoCallService(apiClient),
		log:          log,
		reader:       bufio.NewReader(os.Stdin),
		out:          os.Stdout,
	}
	sess.SetLogoutHandler(func() {
		fmt.Fprintln(app.out, "You are now logged out.")
	})
	return app, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// handleServiceError renders a service failure. A session expiry forces the
// logout-and-back-to-login behavior every screen owes on a 401; everything
// else surfaces as a blocking message, the CLI stand-in for a modal alert.
func (a *App) handleServiceError(ctx context.Context, err error) {
	if errors.Is(err, services.ErrSessionExpired) {
		fmt.Fprintln(a.out, "Session expired. Please login again.")
		_ = a.session.Logout(ctx)
		return
	}
	fmt.Fprintf(a.out, "Error: %s\n", err)
}
