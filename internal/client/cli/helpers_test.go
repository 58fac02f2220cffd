package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/carebook/carebook/internal/client/models"
	"github.com/carebook/carebook/internal/client/services"
	"github.com/carebook/carebook/internal/client/session"
	"github.com/carebook/carebook/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, slog.LevelError)
}

// memStore is an in-memory session.Store for screen tests.
type memStore struct {
	token   string
	profile *models.User
}

func (s *memStore) Token(ctx context.Context) (string, error)        { return s.token, nil }
func (s *memStore) Profile(ctx context.Context) (*models.User, error) { return s.profile, nil }
func (s *memStore) Save(ctx context.Context, token string, profile *models.User) error {
	s.token, s.profile = token, profile
	return nil
}
func (s *memStore) Clear(ctx context.Context) error {
	s.token, s.profile = "", nil
	return nil
}

type fakeAuth struct {
	loginUser *models.User
	loginErr  error
	regErr    error
	resetErr  error

	loginCalls [][2]string
	regForms   []models.RegistrationForm
	resetMails []string
}

func (f *fakeAuth) Login(ctx context.Context, username, password string) (*models.User, error) {
	f.loginCalls = append(f.loginCalls, [2]string{username, password})
	return f.loginUser, f.loginErr
}

func (f *fakeAuth) Register(ctx context.Context, form models.RegistrationForm) error {
	f.regForms = append(f.regForms, form)
	return f.regErr
}

func (f *fakeAuth) RequestPasswordReset(ctx context.Context, email string) error {
	f.resetMails = append(f.resetMails, email)
	return f.resetErr
}

type fakeDoctors struct {
	list         []models.Doctor
	doctor       *models.Doctor
	availability *models.Availability
	slots        []string
	err          error
}

func (f *fakeDoctors) List(ctx context.Context) ([]models.Doctor, error) { return f.list, f.err }
func (f *fakeDoctors) Get(ctx context.Context, id int) (*models.Doctor, error) {
	return f.doctor, f.err
}
func (f *fakeDoctors) Availability(ctx context.Context, id int) (*models.Availability, error) {
	return f.availability, f.err
}
func (f *fakeDoctors) Slots(ctx context.Context, id int) ([]string, error) { return f.slots, f.err }

type fakeAppointments struct {
	list    []models.Appointment
	booked  *models.Appointment
	listErr error
	bookErr error
	err     error

	bookings  []models.BookingRequest
	cancelled []int
	paid      []int
}

func (f *fakeAppointments) List(ctx context.Context) ([]models.Appointment, error) {
	return f.list, f.listErr
}

func (f *fakeAppointments) Book(ctx context.Context, req models.BookingRequest) (*models.Appointment, error) {
	f.bookings = append(f.bookings, req)
	return f.booked, f.bookErr
}

func (f *fakeAppointments) Cancel(ctx context.Context, id int) error {
	f.cancelled = append(f.cancelled, id)
	return f.err
}

func (f *fakeAppointments) Pay(ctx context.Context, id int) error {
	f.paid = append(f.paid, id)
	return f.err
}

type fakeVideo struct {
	handoff *models.VideoCallHandoff
	err     error

	started []int
	ended   []int
}

func (f *fakeVideo) Handoff(ctx context.Context, id int) (*models.VideoCallHandoff, error) {
	return f.handoff, f.err
}
func (f *fakeVideo) StartCall(ctx context.Context, id int) error {
	f.started = append(f.started, id)
	return f.err
}
func (f *fakeVideo) EndCall(ctx context.Context, id int) error {
	f.ended = append(f.ended, id)
	return f.err
}

// newTestApp builds an App whose reader is fed with the given scripted input
// and whose output lands in the returned buffer.
func newTestApp(input string) (*App, *bytes.Buffer) {
	log := testLogger()
	sess := session.NewManager(&memStore{}, log)
	sess.Bootstrap(context.Background())

	out := &bytes.Buffer{}
	app := &App{
		session:      sess,
		auth:         &fakeAuth{},
		doctors:      &fakeDoctors{},
		appointments: &fakeAppointments{},
		video:        &fakeVideo{},
		log:          log,
		reader:       bufio.NewReader(strings.NewReader(input)),
		out:          out,
	}
	return app, out
}

var _ services.AuthService = (*fakeAuth)(nil)
var _ services.DoctorService = (*fakeDoctors)(nil)
var _ services.AppointmentService = (*fakeAppointments)(nil)
var _ services.VideoCallService = (*fakeVideo)(nil)
