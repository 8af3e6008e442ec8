// Package contypes defines the binding system types for devconsole.
// This file contains the core types describing registered console entries:
// typed variables, invocable functions, and their parameter lists.
package contypes

import "fmt"

// TypeTag identifies the semantic type of a console value. Converters are
// registered per tag, so hosts may introduce their own tags alongside the
// built-in ones.
type TypeTag string

const (
	// TypeString is plain text.
	TypeString TypeTag = "string"
	// TypeInt is a signed integer.
	TypeInt TypeTag = "int"
	// TypeFloat is a 64-bit floating point number.
	TypeFloat TypeTag = "float"
	// TypeBool is a boolean.
	TypeBool TypeTag = "bool"
	// TypeVec3 is a 3-component vector literal such as "(1, 2, 3)".
	TypeVec3 TypeTag = "vec3"
	// TypeVoid marks a function that returns nothing.
	TypeVoid TypeTag = "void"
)

// Parameter describes one formal parameter of a function binding.
// Optional parameters carry the value used when the caller omits them.
type Parameter struct {
	Name     string
	Type     TypeTag
	Optional bool
	Default  any
}

// Variable is a named, readable, writable console value. Get and Set are
// supplied by the host at registration time and close over the real storage.
type Variable struct {
	Name string
	Type TypeTag
	Get  func() any
	Set  func(any)
}

// Function is a named invocable console entry. Invoke receives arguments
// in declaration order, already converted to their native types.
type Function struct {
	Name       string
	ReturnType TypeTag
	Params     []Parameter
	Invoke     func(args []any) (any, error)
}

// RequiredParams returns the number of leading non-optional parameters.
func (f *Function) RequiredParams() int {
	n := 0
	for _, p := range f.Params {
		if p.Optional {
			break
		}
		n++
	}
	return n
}

// Binding is a tagged union over the two console entry kinds. Exactly one
// of Variable and Function is non-nil.
type Binding struct {
	Variable *Variable
	Function *Function
}

// Name returns the registered name of whichever entry the binding holds.
func (b Binding) Name() string {
	switch {
	case b.Variable != nil:
		return b.Variable.Name
	case b.Function != nil:
		return b.Function.Name
	}
	return ""
}

// Vec3 is the built-in 3-component vector value type.
type Vec3 struct {
	X, Y, Z float64
}

// String renders the vector in its literal form, e.g. "(1, 2.5, 3)".
func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
