package port

import (
	"context"

	"github.com/openex/ordergate/internal/core/domain"
)

//go:generate mockgen -source=channel.go -destination=mock/channel.go -package=mock

// CommandChannel is the asynchronous, at-least-once transport for engine
// commands. Enqueue waits for broker acknowledgment; EnqueueTransient is
// fire-and-forget at the transport level and is used for commands the
// downstream engine can reconcile from persisted state.
type CommandChannel interface {
	Enqueue(ctx context.Context, queue string, cmd domain.Command) error
	EnqueueTransient(ctx context.Context, queue string, cmd domain.Command) error
	Publish(ctx context.Context, driver string, cmd domain.EngineCommand) error
}
