package cli

import (
	"context"
	"fmt"
)

// Call joins the video consultation of a paid appointment. The CLI cannot
// render the call itself, so it prints the join hand-off (room URL and
// meeting token), reports the call as started, and reports it ended when the
// user comes back.
func (a *App) Call(ctx context.Context) error {
	id, err := GetInt(a.reader, "Appointment id to call", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return nil
	}

	handoff, err := a.video.Handoff(ctx, id)
	if err != nil {
		a.handleServiceError(ctx, err)
		return nil
	}

	if err := a.video.StartCall(ctx, id); err != nil {
		a.handleServiceError(ctx, err)
		return nil
	}

	fmt.Fprintf(a.out, "Join your consultation:\n  room:  %s\n  token: %s\n", handoff.RoomURL, handoff.Token)

	if _, err := getSimpleText(a.reader, "Press Enter when the call is over", a.out); err != nil {
		return err
	}

	if err := a.video.EndCall(ctx, id); err != nil {
		a.handleServiceError(ctx, err)
		return nil
	}
	fmt.Fprintln(a.out, "Call ended.")
	return nil
}
