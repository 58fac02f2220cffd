package cli

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubOTP(t *testing.T, code string) {
	t.Helper()
	orig := generateOTP
	t.Cleanup(func() { generateOTP = orig })
	generateOTP = func() string { return code }
}

func TestPayScreen(t *testing.T) {
	app, out := newTestApp("3\n482913\n")
	stubOTP(t, "482913")

	require.NoError(t, app.Pay(context.Background()))
	assert.Equal(t, []int{3}, app.appointments.(*fakeAppointments).paid)
	assert.Contains(t, out.String(), "Payment recorded for appointment #3")
}

func TestPayScreenWrongCode(t *testing.T) {
	app, out := newTestApp("3\n000000\n")
	stubOTP(t, "482913")

	require.NoError(t, app.Pay(context.Background()))
	assert.Empty(t, app.appointments.(*fakeAppointments).paid)
	assert.Contains(t, out.String(), "Payment aborted")
}

func TestGenerateOTPFormat(t *testing.T) {
	for i := 0; i < 20; i++ {
		assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), generateOTP())
	}
}
