package services

import (
	"context"

	"github.com/carebook/carebook/internal/client/api"
	"github.com/carebook/carebook/internal/client/models"
)

// DoctorService reads the practitioner catalog.
type DoctorService interface {
	List(ctx context.Context) ([]models.Doctor, error)
	Get(ctx context.Context, id int) (*models.Doctor, error)
	Availability(ctx context.Context, id int) (*models.Availability, error)
	Slots(ctx context.Context, id int) ([]string, error)
}

type doctorService struct {
	api API
}

func NewDoctorService(apiClient API) DoctorService {
	return &doctorService{api: apiClient}
}

func (s *doctorService) List(ctx context.Context) ([]models.Doctor, error) {
	resp := s.api.Get(ctx, api.PathDoctors)
	if !resp.OK() {
		return nil, apiErr(resp)
	}

	var doctors []models.Doctor
	if err := resp.Unmarshal(&doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

func (s *doctorService) Get(ctx context.Context, id int) (*models.Doctor, error) {
	resp := s.api.Get(ctx, api.PathDoctor(id))
	if !resp.OK() {
		return nil, apiErr(resp)
	}

	var doctor models.Doctor
	if err := resp.Unmarshal(&doctor); err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (s *doctorService) Availability(ctx context.Context, id int) (*models.Availability, error) {
	resp := s.api.Get(ctx, api.PathDoctorAvailability(id))
	if !resp.OK() {
		return nil, apiErr(resp)
	}

	var availability models.Availability
	if err := resp.Unmarshal(&availability); err != nil {
		return nil, err
	}
	return &availability, nil
}

func (s *doctorService) Slots(ctx context.Context, id int) ([]string, error) {
	resp := s.api.Get(ctx, api.PathDoctorSlots(id))
	if !resp.OK() {
		return nil, apiErr(resp)
	}

	var list models.SlotList
	if err := resp.Unmarshal(&list); err != nil {
		return nil, err
	}
	return list.Slots, nil
}
