package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/carebook/carebook/internal/client/models"
)

// Book runs the booking flow: availability check, slot fetch, interactive
// slot pick, then the creation call. Each step is a single request; the
// first failure surfaces and aborts the flow. The only double-submit guard
// is the in-flight flag, mirroring the mobile app's disabled button.
func (a *App) Book(ctx context.Context) error {
	if a.booking {
		fmt.Fprintln(a.out, "A booking is already in progress.")
		return nil
	}

	doctorID, err := GetInt(a.reader, "Doctor id", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return nil
	}

	availability, err := a.doctors.Availability(ctx, doctorID)
	if err != nil {
		a.handleServiceError(ctx, err)
		return nil
	}
	if !availability.Available {
		msg := availability.Message
		if msg == "" {
			msg = "This doctor is not taking appointments right now."
		}
		fmt.Fprintln(a.out, msg)
		return nil
	}

	slots, err := a.doctors.Slots(ctx, doctorID)
	if err != nil {
		a.handleServiceError(ctx, err)
		return nil
	}
	if len(slots) == 0 {
		fmt.Fprintln(a.out, "No available slots found.")
		return nil
	}

	fmt.Fprintln(a.out, "Available slots:")
	for i, slot := range slots {
		fmt.Fprintf(a.out, "  [%d] %s\n", i+1, slot)
	}

	choice, err := GetInt(a.reader, "Select a slot", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return nil
	}
	if choice < 1 || choice > len(slots) {
		fmt.Fprintln(a.out, "Please select a listed slot.")
		return nil
	}

	date, timeOfDay, ok := splitSlot(slots[choice-1])
	if !ok {
		fmt.Fprintln(a.out, "Malformed slot, try another one.")
		return nil
	}

	reason, err := getSimpleText(a.reader, "Reason for the visit", a.out)
	if err != nil {
		return err
	}
	if reason == "" {
		reason = "Checkup"
	}

	a.booking = true
	appt, err := a.appointments.Book(ctx, models.BookingRequest{
		Doctor: doctorID,
		Date:   date,
		Time:   timeOfDay,
		Reason: reason,
	})
	a.booking = false
	if err != nil {
		a.handleServiceError(ctx, err)
		return nil
	}

	fmt.Fprintf(a.out, "Your appointment has been booked! (#%d on %s at %s)\n", appt.ID, appt.Date, appt.Time)
	// land on the appointments list, like the mobile app navigates there
	return a.Appointments(ctx)
}

// splitSlot splits a "YYYY-MM-DD HH:MM" slot into its date and time parts.
func splitSlot(slot string) (date, timeOfDay string, ok bool) {
	parts := strings.SplitN(slot, " ", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
