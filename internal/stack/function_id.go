package stack

// Caller names the place a traced call was made from.
type Caller interface {
	FunctionID() string
	String() string
}

var _ Caller = functionID("")

type functionID string

func (id functionID) FunctionID() string {
	return string(id)
}

func (id functionID) String() string {
	return string(id)
}

// FunctionID returns a fixed identifier when id is set, the caller's location otherwise.
func FunctionID(id string) Caller {
	if id != "" {
		return functionID(id)
	}

	return Call(1)
}
