package domain

// Engine identifies the execution venue for a market. Driver is a free-form
// identifier; anything other than the configured internal driver routes to the
// third-party command channel.
type Engine struct {
	Driver string
}

type Market struct {
	ID        string
	BaseUnit  string
	QuoteUnit string
	Engine    Engine
}
