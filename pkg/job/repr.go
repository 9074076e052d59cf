package job

import (
	"fmt"
	"strings"
)

// ReprMode controls how a setter call is recorded in a job's representation.
type ReprMode int

const (
	// ReprAppend records every call.
	ReprAppend ReprMode = iota
	// ReprOverwrite keeps only the latest call of a given method.
	ReprOverwrite
)

type reprCall struct {
	method string
	args   string
}

// repr is an ordered log of setter calls that can be replayed as a chained
// construction of the job.
type repr struct {
	constructor string
	calls       []reprCall
}

func (r *repr) record(mode ReprMode, method string, args ...interface{}) {
	formatted := make([]string, len(args))
	for i, arg := range args {
		formatted[i] = formatReprArg(arg)
	}
	call := reprCall{
		method: method,
		args:   strings.Join(formatted, ", "),
	}
	if mode == ReprOverwrite {
		for i, existing := range r.calls {
			if existing.method == method {
				r.calls[i] = call
				return
			}
		}
	}
	r.calls = append(r.calls, call)
}

func (r *repr) String() string {
	var sb strings.Builder
	sb.WriteString(r.constructor)
	sb.WriteString("()")
	for _, call := range r.calls {
		fmt.Fprintf(&sb, " \\\n    .%s(%s)", call.method, call.args)
	}
	return sb.String()
}

func formatReprArg(arg interface{}) string {
	switch v := arg.(type) {
	case string:
		return fmt.Sprintf("%q", v)
	case fmt.Stringer:
		return fmt.Sprintf("%q", v.String())
	}
	return fmt.Sprintf("%v", arg)
}
