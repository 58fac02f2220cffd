package cli

import (
	"context"
	"fmt"

	"github.com/carebook/carebook/internal/client/models"
)

// Appointments lists the caller's appointments, newest first as the backend
// orders them.
func (a *App) Appointments(ctx context.Context) error {
	appointments, err := a.appointments.List(ctx)
	if err != nil {
		a.handleServiceError(ctx, err)
		return nil
	}
	if len(appointments) == 0 {
		fmt.Fprintln(a.out, "You have no appointments yet.")
		return nil
	}

	for _, appt := range appointments {
		doctor := fmt.Sprintf("doctor #%d", appt.Doctor)
		if appt.DoctorRef != nil {
			doctor = appt.DoctorRef.DisplayName()
		}
		fmt.Fprintf(a.out, "[%d] %s at %s with %s — %s (%s)\n",
			appt.ID, appt.Date, appt.Time, doctor, appt.Reason, appt.Status)
	}
	return nil
}

// Cancel asks for an appointment id, confirms, and flips its status.
func (a *App) Cancel(ctx context.Context) error {
	id, err := GetInt(a.reader, "Appointment id to cancel", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return nil
	}

	answer, err := getSimpleText(a.reader, "Cancel this appointment? (y/n)", a.out)
	if err != nil {
		return err
	}
	if answer != "y" && answer != "yes" {
		fmt.Fprintln(a.out, "Kept.")
		return nil
	}

	if err := a.appointments.Cancel(ctx, id); err != nil {
		a.handleServiceError(ctx, err)
		return nil
	}
	fmt.Fprintf(a.out, "Appointment #%d %s.\n", id, models.AppointmentCancelled)
	return nil
}
