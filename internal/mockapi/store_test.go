package mockapi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	// pin the clock so slot dates are stable
	s.now = func() time.Time {
		return time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)
	}
	require.NoError(t, SeedDemo(s))
	return s
}

func TestAuthenticate(t *testing.T) {
	s := testStore(t)

	u, err := s.Authenticate("patient", "patient123")
	require.NoError(t, err)
	assert.Equal(t, "patient", u.Username)
	assert.Equal(t, RolePatient, u.UserType)

	_, err = s.Authenticate("patient", "wrong")
	assert.ErrorIs(t, err, ErrBadCredentials)

	_, err = s.Authenticate("nobody", "patient123")
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestCreateUserDuplicate(t *testing.T) {
	s := testStore(t)

	_, err := s.CreateUser("patient", "other@example.com", "P", "J", "", "password1", RolePatient)
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestSlots(t *testing.T) {
	s := testStore(t)

	slots, err := s.Slots(1)
	require.NoError(t, err)
	require.NotEmpty(t, slots)
	// working window 09:00-17:00 in 30 min steps, 7 days
	assert.Len(t, slots, 16*7)
	assert.Equal(t, "2024-09-02 09:00", slots[0])

	// booking a slot removes it
	_, err = s.CreateAppointment(1, 3, "2024-09-02", "09:00", "Checkup")
	require.NoError(t, err)
	slots, err = s.Slots(1)
	require.NoError(t, err)
	assert.NotContains(t, slots, "2024-09-02 09:00")
}

func TestSlotsUnavailableDoctor(t *testing.T) {
	s := testStore(t)

	slots, err := s.Slots(2)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestCreateAppointmentSlotTaken(t *testing.T) {
	s := testStore(t)

	_, err := s.CreateAppointment(1, 3, "2024-09-02", "09:00", "Checkup")
	require.NoError(t, err)

	_, err = s.CreateAppointment(1, 3, "2024-09-02", "09:00", "Checkup")
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestStatusTransitions(t *testing.T) {
	s := testStore(t)

	a, err := s.CreateAppointment(1, 3, "2024-09-02", "09:00", "Checkup")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, a.Status)

	a, err = s.SetAppointmentStatus(a.ID, StatusPaid)
	require.NoError(t, err)
	assert.Equal(t, StatusPaid, a.Status)

	// paid cannot go back to pending
	_, err = s.SetAppointmentStatus(a.ID, StatusPending)
	assert.ErrorIs(t, err, ErrBadTransition)

	a, err = s.SetAppointmentStatus(a.ID, StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, a.Status)

	// completed is terminal
	_, err = s.SetAppointmentStatus(a.ID, StatusCancelled)
	assert.ErrorIs(t, err, ErrBadTransition)
}

func TestAppointmentsForVisibility(t *testing.T) {
	s := testStore(t)

	patient, err := s.Authenticate("patient", "patient123")
	require.NoError(t, err)
	doctor, err := s.Authenticate("drsmith", "doctor123")
	require.NoError(t, err)

	_, err = s.CreateAppointment(1, patient.ID, "2024-09-02", "09:00", "Checkup")
	require.NoError(t, err)
	_, err = s.CreateAppointment(2, patient.ID, "2024-09-02", "10:00", "Rash")
	require.NoError(t, err)

	assert.Len(t, s.AppointmentsFor(patient), 2)

	// drsmith is doctor 1 and only sees their own schedule
	forDoctor := s.AppointmentsFor(doctor)
	require.Len(t, forDoctor, 1)
	assert.Equal(t, 1, forDoctor[0].DoctorID)
}
