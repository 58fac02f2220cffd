package services

import (
	"context"

	"github.com/carebook/carebook/internal/client/api"
	"github.com/carebook/carebook/internal/client/models"
)

// VideoCallService prepares the hand-off to the conferencing provider for a
// paid appointment. The provider SDK itself is outside this client; the
// service only collects the room URL and meeting token and reports call
// start/end to the backend.
type VideoCallService interface {
	// Handoff creates (or fetches) the room and a meeting token.
	Handoff(ctx context.Context, appointmentID int) (*models.VideoCallHandoff, error)
	StartCall(ctx context.Context, appointmentID int) error
	EndCall(ctx context.Context, appointmentID int) error
}

type videoCallService struct {
	api API
}

func NewVideoCallService(apiClient API) VideoCallService {
	return &videoCallService{api: apiClient}
}

func (s *videoCallService) Handoff(ctx context.Context, appointmentID int) (*models.VideoCallHandoff, error) {
	roomResp := s.api.Post(ctx, api.PathVideoCallRoom(appointmentID), struct{}{})
	if !roomResp.OK() {
		return nil, apiErr(roomResp)
	}

	var handoff models.VideoCallHandoff
	if err := roomResp.Unmarshal(&handoff); err != nil {
		return nil, err
	}

	tokenResp := s.api.Get(ctx, api.PathVideoCallToken(appointmentID))
	if !tokenResp.OK() {
		return nil, apiErr(tokenResp)
	}

	var tok struct {
		Token string `json:"token"`
	}
	if err := tokenResp.Unmarshal(&tok); err != nil {
		return nil, err
	}
	handoff.Token = tok.Token
	return &handoff, nil
}

func (s *videoCallService) StartCall(ctx context.Context, appointmentID int) error {
	resp := s.api.Post(ctx, api.PathVideoCallStart(appointmentID), struct{}{})
	if !resp.OK() {
		return apiErr(resp)
	}
	return nil
}

func (s *videoCallService) EndCall(ctx context.Context, appointmentID int) error {
	resp := s.api.Post(ctx, api.PathVideoCallEnd(appointmentID), struct{}{})
	if !resp.OK() {
		return apiErr(resp)
	}
	return nil
}
