package api

import (
	"context"

	"github.com/nikmy/meetslot/internal/finder"
	"github.com/nikmy/meetslot/internal/meeting"
)

type Server interface {
	Serve(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

type resolver interface {
	Resolve(ctx context.Context, events []meeting.Event, req meeting.Request) (finder.Result, error)
}
