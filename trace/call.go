package trace

type call interface {
	FunctionID() string
	String() string
}
