package mockapi

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Role codes as carried in token claims and profile payloads.
const (
	RolePatient = 1
	RoleDoctor  = 2
	RoleAdmin   = 3
)

// Appointment statuses and their allowed PATCH transitions.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusPaid      = "paid"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicate      = errors.New("already exists")
	ErrBadCredentials = errors.New("invalid credentials")
	ErrBadTransition  = errors.New("invalid status transition")
)

// User is a registered account. The password is stored as a bcrypt hash.
type User struct {
	ID           int
	Username     string
	Email        string
	FirstName    string
	LastName     string
	Phone        string
	UserType     int
	PasswordHash string
}

// Doctor is a bookable practitioner backed by a User account.
type Doctor struct {
	ID                 int
	UserID             int
	Specialization     string
	Experience         int
	ConsultationFee    string
	Bio                string
	AvailableDays      string
	AvailableTimeStart string
	AvailableTimeEnd   string
	Available          bool
}

// Appointment links a patient to a doctor for a slot.
type Appointment struct {
	ID        int
	DoctorID  int
	PatientID int
	Date      string
	Time      string
	Reason    string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store is the in-memory data set behind the mock backend. All access goes
// through the mutex; the store survives only for the process lifetime.
type Store struct {
	mu           sync.RWMutex
	users        map[int]*User
	doctors      map[int]*Doctor
	appointments map[int]*Appointment

	nextUserID        int
	nextDoctorID      int
	nextAppointmentID int

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		users:        map[int]*User{},
		doctors:      map[int]*Doctor{},
		appointments: map[int]*Appointment{},

		nextUserID:        1,
		nextDoctorID:      1,
		nextAppointmentID: 1,

		now: time.Now,
	}
}

// CreateUser registers an account, hashing the password with bcrypt.
func (s *Store) CreateUser(username, email, firstName, lastName, phone, password string, userType int) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			return nil, fmt.Errorf("username: %w", ErrDuplicate)
		}
		if email != "" && u.Email == email {
			return nil, fmt.Errorf("email: %w", ErrDuplicate)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &User{
		ID:           s.nextUserID,
		Username:     username,
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		Phone:        phone,
		UserType:     userType,
		PasswordHash: string(hash),
	}
	s.users[u.ID] = u
	s.nextUserID++
	return u, nil
}

// Authenticate checks a username/password pair.
func (s *Store) Authenticate(username, password string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
				return nil, ErrBadCredentials
			}
			return u, nil
		}
	}
	return nil, ErrBadCredentials
}

func (s *Store) UserByID(id int) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return u, nil
}

// AddDoctor registers a practitioner profile for an existing user.
func (s *Store) AddDoctor(d *Doctor) *Doctor {
	s.mu.Lock()
	defer s.mu.Unlock()

	d.ID = s.nextDoctorID
	s.nextDoctorID++
	s.doctors[d.ID] = d
	return d
}

func (s *Store) Doctors() []*Doctor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Doctor, 0, len(s.doctors))
	for id := 1; id < s.nextDoctorID; id++ {
		if d, ok := s.doctors[id]; ok {
			out = append(out, d)
		}
	}
	return out
}

func (s *Store) DoctorByID(id int) (*Doctor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.doctors[id]
	if !ok {
		return nil, ErrNotFound
	}
	return d, nil
}

// Slots generates the doctor's open "YYYY-MM-DD HH:MM" slots for the next
// seven days: every 30 minutes inside the working window, minus the slots an
// active appointment already holds.
func (s *Store) Slots(doctorID int) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.doctors[doctorID]
	if !ok {
		return nil, ErrNotFound
	}
	if !d.Available {
		return []string{}, nil
	}

	taken := map[string]bool{}
	for _, a := range s.appointments {
		if a.DoctorID == doctorID && a.Status != StatusCancelled {
			taken[a.Date+" "+a.Time] = true
		}
	}

	start, err := time.Parse("15:04", d.AvailableTimeStart)
	if err != nil {
		return nil, fmt.Errorf("bad working window start: %w", err)
	}
	end, err := time.Parse("15:04", d.AvailableTimeEnd)
	if err != nil {
		return nil, fmt.Errorf("bad working window end: %w", err)
	}

	slots := []string{}
	day := s.now().AddDate(0, 0, 1)
	for i := 0; i < 7; i++ {
		date := day.AddDate(0, 0, i).Format("2006-01-02")
		for t := start; t.Before(end); t = t.Add(30 * time.Minute) {
			slot := date + " " + t.Format("15:04")
			if !taken[slot] {
				slots = append(slots, slot)
			}
		}
	}
	return slots, nil
}

// CreateAppointment books a slot for a patient. The slot must still be open.
func (s *Store) CreateAppointment(doctorID, patientID int, date, timeOfDay, reason string) (*Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.doctors[doctorID]; !ok {
		return nil, ErrNotFound
	}
	for _, a := range s.appointments {
		if a.DoctorID == doctorID && a.Date == date && a.Time == timeOfDay && a.Status != StatusCancelled {
			return nil, fmt.Errorf("slot: %w", ErrDuplicate)
		}
	}

	now := s.now()
	a := &Appointment{
		ID:        s.nextAppointmentID,
		DoctorID:  doctorID,
		PatientID: patientID,
		Date:      date,
		Time:      timeOfDay,
		Reason:    reason,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.appointments[a.ID] = a
	s.nextAppointmentID++
	return a, nil
}

// AppointmentsFor lists the appointments visible to a user: patients see
// their own bookings, doctors their schedule, admins everything.
func (s *Store) AppointmentsFor(u *User) []*Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var doctorID int
	if u.UserType == RoleDoctor {
		for _, d := range s.doctors {
			if d.UserID == u.ID {
				doctorID = d.ID
			}
		}
	}

	out := []*Appointment{}
	for id := 1; id < s.nextAppointmentID; id++ {
		a, ok := s.appointments[id]
		if !ok {
			continue
		}
		switch {
		case u.UserType == RoleAdmin:
			out = append(out, a)
		case u.UserType == RoleDoctor && a.DoctorID == doctorID:
			out = append(out, a)
		case a.PatientID == u.ID:
			out = append(out, a)
		}
	}
	return out
}

func (s *Store) AppointmentByID(id int) (*Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.appointments[id]
	if !ok {
		return nil, ErrNotFound
	}
	return a, nil
}

// allowedTransitions guards the status PATCH: pending and confirmed can be
// paid or cancelled, paid can complete or cancel, terminal states are frozen.
var allowedTransitions = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusPaid, StatusCancelled},
	StatusConfirmed: {StatusPaid, StatusCancelled},
	StatusPaid:      {StatusCompleted, StatusCancelled},
}

// SetAppointmentStatus applies a status transition.
func (s *Store) SetAppointmentStatus(id int, status string) (*Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.appointments[id]
	if !ok {
		return nil, ErrNotFound
	}

	for _, allowed := range allowedTransitions[a.Status] {
		if status == allowed {
			a.Status = status
			a.UpdatedAt = s.now()
			return a, nil
		}
	}
	return nil, fmt.Errorf("%s -> %s: %w", a.Status, status, ErrBadTransition)
}
