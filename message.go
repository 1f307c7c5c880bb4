package mantle

// BaseMessage is a helper struct that can be embedded in message types to
// satisfy the Message interface's unexported marker method. Actors that
// want to receive a family of message types define their own sealed
// interface embedding Message and give every member a BaseMessage field (or
// embed it directly).
type BaseMessage struct{}

// messageMarker implements the unexported method of Message, allowing any
// type that embeds BaseMessage to satisfy it.
func (BaseMessage) messageMarker() {}

// Message is a sealed interface for values that can be sent to an actor.
// It is sealed by the unexported messageMarker method so that only types
// embedding BaseMessage (or defined in this package) can implement it; this
// keeps an actor's message family closed and lets Address[M] reject, at
// compile time, anything that wasn't meant to be sent to it.
type Message interface {
	messageMarker()
}
