package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carebook/carebook/internal/client/models"
)

func TestAppointmentsScreen(t *testing.T) {
	app, out := newTestApp("")
	app.appointments.(*fakeAppointments).list = []models.Appointment{
		{
			ID: 3, Doctor: 5, Date: "2024-09-02", Time: "14:30",
			Reason: "Checkup", Status: models.AppointmentConfirmed,
			DoctorRef: &models.Doctor{User: models.DoctorUser{FirstName: "Jane", LastName: "Smith"}},
		},
		{ID: 4, Doctor: 7, Date: "2024-09-10", Time: "09:00", Reason: "Follow-up", Status: models.AppointmentPending},
	}

	require.NoError(t, app.Appointments(context.Background()))

	assert.Contains(t, out.String(), "[3] 2024-09-02 at 14:30 with Dr. Jane Smith — Checkup (confirmed)")
	assert.Contains(t, out.String(), "[4] 2024-09-10 at 09:00 with doctor #7 — Follow-up (pending)")
}

func TestAppointmentsScreenEmpty(t *testing.T) {
	app, out := newTestApp("")
	require.NoError(t, app.Appointments(context.Background()))
	assert.Contains(t, out.String(), "no appointments yet")
}

func TestCancelScreen(t *testing.T) {
	app, out := newTestApp("3\ny\n")

	require.NoError(t, app.Cancel(context.Background()))
	assert.Equal(t, []int{3}, app.appointments.(*fakeAppointments).cancelled)
	assert.Contains(t, out.String(), "Appointment #3 cancelled")
}

func TestCancelScreenDeclined(t *testing.T) {
	app, out := newTestApp("3\nn\n")

	require.NoError(t, app.Cancel(context.Background()))
	assert.Empty(t, app.appointments.(*fakeAppointments).cancelled)
	assert.Contains(t, out.String(), "Kept.")
}
