package domain

import "time"

// Command is the envelope for the internal engine queues.
type Command struct {
	Action string         `json:"action"`
	Order  map[string]any `json:"order"`
}

const (
	CommandActionSubmit = "submit"
	CommandActionCancel = "cancel"
)

// EngineCommandType multiplexes command kinds over a single third-party
// engine channel. The codes are part of the wire contract with the engines.
type EngineCommandType int

const (
	EngineCancelOrder EngineCommandType = 3
	EngineCancelBulk  EngineCommandType = 4
)

// EngineCommand is the typed envelope for third-party engine channels.
type EngineCommand struct {
	Data any               `json:"data"`
	Type EngineCommandType `json:"type"`
}

// OutboxCommand is a submit command that was committed with the order but
// failed to publish. The reconciler drains these.
type OutboxCommand struct {
	ID          uint64
	Queue       string
	Payload     []byte
	CreatedAt   time.Time
	DeliveredAt *time.Time
}
