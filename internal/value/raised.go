package value

// Raised is the payload of a raised-kind item: an exception name and
// message, with the condition under which it propagates recorded in the
// owning Item rather than here (mirrors the evaluator never needing to
// ask "raised under what" independent of the item that carries it).
type Raised struct {
	Exception string
	Message   string
}

func NewRaised(exception, message string) *Raised {
	return &Raised{Exception: exception, Message: message}
}
