// Package services contains the application services of the Carebook CLI.
// Each service owns one domain's call chains against the API access layer,
// so screens stay thin: prompt, call, render.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/carebook/carebook/internal/client/api"
)

// API is the slice of the access layer the services consume. *api.Client
// satisfies it; tests provide fakes.
type API interface {
	Get(ctx context.Context, path string, opts ...api.CallOption) *api.Response
	Post(ctx context.Context, path string, body any, opts ...api.CallOption) *api.Response
	Put(ctx context.Context, path string, body any, opts ...api.CallOption) *api.Response
	Patch(ctx context.Context, path string, body any, opts ...api.CallOption) *api.Response
	Delete(ctx context.Context, path string, opts ...api.CallOption) *api.Response
}

// ErrSessionExpired marks a 401 from the backend. Screens answering it must
// force a logout and return to the login entry point.
var ErrSessionExpired = errors.New("session expired")

// ValidationError carries per-field messages from a rejected form submission.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// apiErr converts a failed Response into an error for service callers.
func apiErr(resp *api.Response) error {
	if resp.Unauthorized() {
		return fmt.Errorf("%w: %s", ErrSessionExpired, resp.Error)
	}
	if resp.Error != "" {
		return errors.New(resp.Error)
	}
	return errors.New("request failed")
}
