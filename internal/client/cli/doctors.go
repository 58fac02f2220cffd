package cli

import (
	"context"
	"fmt"
)

// Doctors renders the practitioner catalog.
func (a *App) Doctors(ctx context.Context) error {
	doctors, err := a.doctors.List(ctx)
	if err != nil {
		a.handleServiceError(ctx, err)
		return nil
	}
	if len(doctors) == 0 {
		fmt.Fprintln(a.out, "No doctors available right now.")
		return nil
	}

	for _, d := range doctors {
		fmt.Fprintf(a.out, "[%d] %s — %s, %d yrs experience, fee %s\n",
			d.ID, d.DisplayName(), d.Specialization, d.Experience, d.ConsultationFee)
	}
	return nil
}

// DoctorDetail prompts for an ID and renders one practitioner.
func (a *App) DoctorDetail(ctx context.Context) error {
	id, err := GetInt(a.reader, "Doctor id", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return nil
	}

	d, err := a.doctors.Get(ctx, id)
	if err != nil {
		a.handleServiceError(ctx, err)
		return nil
	}

	fmt.Fprintf(a.out, "%s\n  specialization: %s\n  experience: %d years\n  fee: %s\n",
		d.DisplayName(), d.Specialization, d.Experience, d.ConsultationFee)
	if d.Bio != "" {
		fmt.Fprintf(a.out, "  bio: %s\n", d.Bio)
	}
	if d.AvailableDays != "" {
		fmt.Fprintf(a.out, "  available: %s %s–%s\n", d.AvailableDays, d.AvailableTimeStart, d.AvailableTimeEnd)
	}
	return nil
}
