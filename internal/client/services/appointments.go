package services

import (
	"context"

	"github.com/carebook/carebook/internal/client/api"
	"github.com/carebook/carebook/internal/client/models"
	"github.com/carebook/carebook/internal/logging"
)

// AppointmentService owns the appointment lifecycle visible to the patient:
// list, book, cancel, pay.
type AppointmentService interface {
	List(ctx context.Context) ([]models.Appointment, error)
	Book(ctx context.Context, req models.BookingRequest) (*models.Appointment, error)
	Cancel(ctx context.Context, id int) error
	Pay(ctx context.Context, id int) error
}

type appointmentService struct {
	api API
	log logging.Logger
}

func NewAppointmentService(apiClient API, log logging.Logger) AppointmentService {
	return &appointmentService{api: apiClient, log: log}
}

func (s *appointmentService) List(ctx context.Context) ([]models.Appointment, error) {
	resp := s.api.Get(ctx, api.PathAppointments)
	if !resp.OK() {
		return nil, apiErr(resp)
	}

	var appointments []models.Appointment
	if err := resp.Unmarshal(&appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

// Book submits the creation payload exactly as entered: doctor id, date,
// time, reason. There are no retries and no idempotency key; the only guard
// against double submission is the screen disabling its trigger while the
// call is in flight.
func (s *appointmentService) Book(ctx context.Context, req models.BookingRequest) (*models.Appointment, error) {
	resp := s.api.Post(ctx, api.PathAppointments, req)
	if !resp.OK() {
		return nil, apiErr(resp)
	}

	var appt models.Appointment
	if err := resp.Unmarshal(&appt); err != nil {
		return nil, err
	}
	return &appt, nil
}

func (s *appointmentService) Cancel(ctx context.Context, id int) error {
	resp := s.api.Patch(ctx, api.PathAppointment(id), map[string]string{"status": models.AppointmentCancelled})
	if !resp.OK() {
		return apiErr(resp)
	}
	return nil
}

// Pay marks the appointment as paid. The primary route is a status PATCH;
// backends that reject it get the dedicated mark_paid endpoint instead,
// mirroring the mobile app's fallback.
func (s *appointmentService) Pay(ctx context.Context, id int) error {
	resp := s.api.Patch(ctx, api.PathAppointment(id), map[string]string{"status": models.AppointmentPaid})
	if resp.OK() {
		return nil
	}
	if resp.Unauthorized() {
		return apiErr(resp)
	}

	s.log.Debug(ctx, "status patch rejected, trying mark_paid", "appointment_id", id, "status", resp.Status)

	fallback := s.api.Post(ctx, api.PathAppointmentMarkPaid(id), struct{}{})
	if !fallback.OK() {
		return apiErr(fallback)
	}
	return nil
}
