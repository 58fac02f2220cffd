package api

import "fmt"

// Backend route catalog, relative to the configured base URL.
const (
	PathLogin         = "/api/auth/jwt/create/"
	PathRegister      = "/api/auth/users/"
	PathProfile       = "/api/auth/users/me/"
	PathPasswordReset = "/api/auth/users/reset_password/"

	PathDoctors      = "/api/doctors/"
	PathAppointments = "/api/appointments/"
)

func PathDoctor(id int) string {
	return fmt.Sprintf("/api/doctors/%d/", id)
}

func PathDoctorAvailability(id int) string {
	return fmt.Sprintf("/api/doctors/%d/availability/", id)
}

func PathDoctorSlots(id int) string {
	return fmt.Sprintf("/api/doctors/%d/slots/", id)
}

func PathAppointment(id int) string {
	return fmt.Sprintf("/api/appointments/%d/", id)
}

func PathAppointmentMarkPaid(id int) string {
	return fmt.Sprintf("/api/appointments/%d/mark_paid/", id)
}

func PathVideoCallRoom(appointmentID int) string {
	return fmt.Sprintf("/api/video-call/daily-room/%d/", appointmentID)
}

func PathVideoCallToken(appointmentID int) string {
	return fmt.Sprintf("/api/video-call/daily-token/%d/", appointmentID)
}

func PathVideoCallStart(appointmentID int) string {
	return fmt.Sprintf("/api/video-call/start-call/%d/", appointmentID)
}

func PathVideoCallEnd(appointmentID int) string {
	return fmt.Sprintf("/api/video-call/end-call/%d/", appointmentID)
}
