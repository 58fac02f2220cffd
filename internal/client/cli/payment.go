package cli

import (
	"context"
	"fmt"
	"math/rand"
)

// generateOTP produces the 6-digit demo code. Seam for tests.
var generateOTP = func() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

// Pay runs the demo payment for an appointment: a locally generated one-time
// code the user has to type back, then the pay call. The code never leaves
// the process; there is no real payment gateway behind this screen.
func (a *App) Pay(ctx context.Context) error {
	id, err := GetInt(a.reader, "Appointment id to pay", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return nil
	}

	code := generateOTP()
	fmt.Fprintf(a.out, "Demo payment: your verification code is %s\n", code)

	entered, err := getSimpleText(a.reader, "Enter the verification code", a.out)
	if err != nil {
		return err
	}
	if entered != code {
		fmt.Fprintln(a.out, "Verification code does not match. Payment aborted.")
		return nil
	}

	if err := a.appointments.Pay(ctx, id); err != nil {
		a.handleServiceError(ctx, err)
		return nil
	}
	fmt.Fprintf(a.out, "Payment recorded for appointment #%d.\n", id)
	return nil
}
