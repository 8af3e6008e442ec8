// Package executor dispatches raw console input against the binding
// registry. It owns the tokenize, resolve, convert, invoke/assign pipeline
// and converts every failure into a single-line diagnostic on the Result
// channel; no failure escapes Execute to the caller.
package executor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"devconsole/internal/convert"
	"devconsole/internal/fuzzy"
	"devconsole/internal/logger"
	"devconsole/internal/output"
	"devconsole/internal/parser"
	"devconsole/internal/registry"
	"devconsole/pkg/contypes"
)

// Executor is the top-level console entry point. One instance serves one
// single-threaded input loop; calls never overlap.
type Executor struct {
	registry   *registry.Registry
	converters *convert.Registry
	out        *output.Broker
	log        *log.Logger
}

// New creates an executor over the given registry, conversion registry, and
// output broker.
func New(reg *registry.Registry, conv *convert.Registry, out *output.Broker) *Executor {
	return &Executor{
		registry:   reg,
		converters: conv,
		out:        out,
		log:        logger.NewStyledLogger("Executor"),
	}
}

// Execute runs one raw command line. Results and diagnostics arrive on the
// broker's Result channel; Execute itself never fails.
func (e *Executor) Execute(raw string) {
	target, rawArgs := parser.SplitCommand(strings.TrimSpace(raw))
	logger.CommandExecution(target, rawArgs)

	binding, ok := e.registry.Lookup(target)
	if !ok {
		e.out.Result(fmt.Sprintf("unknown target %q", target))
		return
	}

	switch {
	case binding.Variable != nil:
		e.executeVariable(binding.Variable, rawArgs)
	case binding.Function != nil:
		e.executeFunction(binding.Function, rawArgs)
	}
}

// executeVariable reads the variable when no argument text was supplied, or
// assigns it from the whole rawArgs string otherwise. The emitted value is
// always the post-assignment read-back, not the raw input.
func (e *Executor) executeVariable(v *contypes.Variable, rawArgs string) {
	conv, ok := e.converters.For(v.Type)
	if !ok {
		e.out.Result(fmt.Sprintf("no converter registered for type %s", v.Type))
		return
	}

	if rawArgs == "" {
		e.out.Result(conv.ToString(v.Get()))
		return
	}

	value, err := conv.FromString(rawArgs)
	if err != nil {
		e.out.Result(firstLine(err.Error()))
		return
	}
	v.Set(value)
	e.out.Result(conv.ToString(v.Get()))
}

// executeFunction tokenizes rawArgs, converts each token by the matching
// parameter's type, fills trailing optionals from their defaults, and
// invokes. Any conversion failure aborts before invocation with no partial
// effects.
func (e *Executor) executeFunction(f *contypes.Function, rawArgs string) {
	tokens := parser.SplitArguments(rawArgs)
	total := len(f.Params)

	// Fires even when every parameter is optional, as long as at least one
	// parameter exists and nothing at all was typed.
	if total > 0 && rawArgs == "" {
		e.out.Result(argCountDiagnostic(f, 0))
		return
	}
	if len(tokens) > total {
		e.out.Result(argCountDiagnostic(f, len(tokens)))
		return
	}

	args := make([]any, 0, total)
	for i, token := range tokens {
		param := f.Params[i]
		conv, ok := e.converters.For(param.Type)
		if !ok {
			e.out.Result(fmt.Sprintf("no converter registered for type %s", param.Type))
			return
		}
		value, err := conv.FromString(token)
		if err != nil {
			e.out.Result(firstLine(err.Error()))
			return
		}
		args = append(args, value)
	}

	for i := len(tokens); i < total; i++ {
		param := f.Params[i]
		if !param.Optional {
			e.out.Result(argCountDiagnostic(f, len(tokens)))
			return
		}
		args = append(args, param.Default)
	}

	ret, err := e.invoke(f, args)
	if err != nil {
		e.out.Result(firstLine(err.Error()))
		return
	}
	if f.ReturnType != contypes.TypeVoid && ret != nil {
		e.out.Result(e.stringify(f.ReturnType, ret))
	}
}

// invoke calls the bound closure, converting a panic inside the function
// body into an ordinary invocation failure.
func (e *Executor) invoke(f *contypes.Function, args []any) (ret any, err error) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("invocation panicked", "target", f.Name, "error", r)
			err = fmt.Errorf("%s failed: %v", f.Name, r)
		}
	}()
	return f.Invoke(args)
}

func (e *Executor) stringify(tag contypes.TypeTag, v any) string {
	if conv, ok := e.converters.For(tag); ok {
		return conv.ToString(v)
	}
	return fmt.Sprintf("%v", v)
}

// argCountDiagnostic states the expected argument count for f given the
// number actually supplied.
func argCountDiagnostic(f *contypes.Function, got int) string {
	required := f.RequiredParams()
	total := len(f.Params)
	if required == total {
		return fmt.Sprintf("%s expects %d argument(s), got %d", f.Name, total, got)
	}
	return fmt.Sprintf("%s expects %d to %d arguments, got %d", f.Name, required, total, got)
}

// firstLine truncates multi-line failure detail so diagnostics stay a
// single line in the UI.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// Completions returns the full ranked list of registered names matching
// prefix. The caller truncates to its display count.
func (e *Executor) Completions(prefix string) []string {
	return fuzzy.Rank(prefix, e.registry.Names())
}

// Describe renders a human-readable signature for a registered name:
// "<type> <name> = <value>" for variables, or
// "<returnType> <name>( p1: type, p2: type = default )" for functions.
// Unknown names yield an empty string.
func (e *Executor) Describe(name string) string {
	binding, ok := e.registry.Lookup(name)
	if !ok {
		return ""
	}

	switch {
	case binding.Variable != nil:
		v := binding.Variable
		return fmt.Sprintf("%s %s = %s", v.Type, v.Name, e.stringify(v.Type, v.Get()))
	case binding.Function != nil:
		f := binding.Function
		if len(f.Params) == 0 {
			return fmt.Sprintf("%s %s()", f.ReturnType, f.Name)
		}
		parts := make([]string, len(f.Params))
		for i, p := range f.Params {
			parts[i] = fmt.Sprintf("%s: %s", p.Name, p.Type)
			if p.Optional {
				parts[i] += fmt.Sprintf(" = %s", e.stringify(p.Type, p.Default))
			}
		}
		return fmt.Sprintf("%s %s( %s )", f.ReturnType, f.Name, strings.Join(parts, ", "))
	}
	return ""
}
