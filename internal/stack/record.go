package stack

import (
	"runtime"
	"strconv"
	"strings"

	"github.com/tsquery-platform/tsquery-go-sdk/internal/xstring"
)

type recordOptions struct {
	packagePath  bool
	functionName bool
	lambdas      bool
	fileName     bool
	line         bool
}

type recordOption func(opts *recordOptions)

func PackagePath(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.packagePath = b
	}
}

func FunctionName(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.functionName = b
	}
}

func Lambda(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.lambdas = b
	}
}

func FileName(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.fileName = b
	}
}

func Line(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.line = b
	}
}

var _ Caller = call{}

type call struct {
	function uintptr
	file     string
	line     int
}

func Call(depth int) (c call) {
	c.function, c.file, c.line, _ = runtime.Caller(depth + 1)

	return c
}

func (c call) String() string {
	return c.Record()
}

func (c call) FunctionID() string {
	return c.Record(Lambda(false), FileName(false))
}

// Record formats the call site as `pkg/path.Type.func(file.go:line)`.
func (c call) Record(opts ...recordOption) string {
	options := recordOptions{
		packagePath:  true,
		functionName: true,
		lambdas:      true,
		fileName:     true,
		line:         true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}

	name := strings.ReplaceAll(runtime.FuncForPC(c.function).Name(), "[...]", "")
	pkgPath := ""
	if i := strings.LastIndex(name, "/"); i > -1 {
		pkgPath, name = name[:i+1], name[i+1:]
	}
	parts := strings.Split(name, ".")
	if !options.lambdas {
		for len(parts) > 1 && strings.HasPrefix(parts[len(parts)-1], "func") {
			parts = parts[:len(parts)-1]
		}
	}

	b := xstring.Buffer()
	defer b.Free()
	if options.packagePath {
		b.WriteString(pkgPath)
	}
	if options.functionName {
		b.WriteString(strings.Join(parts, "."))
	} else if len(parts) > 0 {
		b.WriteString(parts[0])
	}
	if options.fileName {
		file := c.file
		if i := strings.LastIndex(file, "/"); i > -1 {
			file = file[i+1:]
		}
		b.WriteByte('(')
		b.WriteString(file)
		if options.line {
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(c.line))
		}
		b.WriteByte(')')
	}

	return b.String()
}

func Record(depth int, opts ...recordOption) string {
	return Call(depth + 1).Record(opts...)
}
