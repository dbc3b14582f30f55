package command

// Reason explains a failed check. An empty User suppresses the channel
// reply; an empty Log suppresses logging. Both may be set.
type Reason struct {
	User string
	Log  string
}

// Check gates command execution. Evaluate returns nil to pass.
type Check interface {
	Evaluate(ctx *Context) *Reason
}

// CheckFunc adapts a function to the Check interface.
type CheckFunc func(ctx *Context) *Reason

func (f CheckFunc) Evaluate(ctx *Context) *Reason { return f(ctx) }
