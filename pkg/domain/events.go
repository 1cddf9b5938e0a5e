package domain

// FlagEvent describes a flag whose marshaller stored a value.
type FlagEvent struct {
	ID    rune
	Kind  Kind
	Value any
}

// ParseHooks defines callbacks for parser observability.
// Nil fields are skipped.
type ParseHooks struct {
	OnFlag       func(*FlagEvent)
	OnUnexpected func(id rune)
	OnError      func(*ArgsError)
	OnComplete   func(valid bool)
}
