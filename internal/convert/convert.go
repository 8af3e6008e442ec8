// Package convert provides string-to-value conversion per semantic type.
// Each registered TypeTag maps to a bidirectional Converter. Primitive and
// enum converters fail hard on malformed input; structured literal
// converters (vec3) are lenient and fall back to a zero value, reporting
// the problem on the Text channel instead of aborting the command.
package convert

import (
	"fmt"
	"strconv"
	"strings"

	"devconsole/pkg/contypes"
	"devconsole/pkg/stringprocessing"
)

// ConversionError reports a malformed literal for a strict type.
type ConversionError struct {
	Type   contypes.TypeTag
	Text   string
	Detail string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot parse %q as %s: %s", e.Text, e.Type, e.Detail)
}

// Converter transforms between the textual and native form of one type.
type Converter interface {
	// ToString renders a native value as console text.
	ToString(v any) string
	// FromString parses console text into a native value. Strict types
	// return a *ConversionError on malformed input; lenient structured
	// types report the problem out of band and return a zero value.
	FromString(text string) (any, error)
}

// Registry maps type tags to converters.
type Registry struct {
	converters map[contypes.TypeTag]Converter
}

// NewRegistry creates a registry preloaded with the built-in converters.
// diag receives malformed-literal diagnostics from lenient converters; a
// nil diag discards them.
func NewRegistry(diag func(string)) *Registry {
	if diag == nil {
		diag = func(string) {}
	}
	r := &Registry{converters: make(map[contypes.TypeTag]Converter)}
	r.Register(contypes.TypeString, stringConverter{})
	r.Register(contypes.TypeInt, intConverter{})
	r.Register(contypes.TypeFloat, floatConverter{})
	r.Register(contypes.TypeBool, boolConverter{})
	r.Register(contypes.TypeVec3, vec3Converter{diag: diag})
	return r
}

// Register adds or replaces the converter for a type tag.
func (r *Registry) Register(tag contypes.TypeTag, c Converter) {
	r.converters[tag] = c
}

// For returns the converter for a type tag, if one is registered.
func (r *Registry) For(tag contypes.TypeTag) (Converter, bool) {
	c, ok := r.converters[tag]
	return c, ok
}

type stringConverter struct{}

func (stringConverter) ToString(v any) string { return fmt.Sprintf("%v", v) }

func (stringConverter) FromString(text string) (any, error) { return text, nil }

type intConverter struct{}

func (intConverter) ToString(v any) string { return fmt.Sprintf("%v", v) }

func (intConverter) FromString(text string) (any, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return nil, &ConversionError{Type: contypes.TypeInt, Text: text, Detail: "not an integer"}
	}
	return n, nil
}

type floatConverter struct{}

func (floatConverter) ToString(v any) string { return fmt.Sprintf("%g", v) }

func (floatConverter) FromString(text string) (any, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return nil, &ConversionError{Type: contypes.TypeFloat, Text: text, Detail: "not a number"}
	}
	return f, nil
}

type boolConverter struct{}

func (boolConverter) ToString(v any) string { return fmt.Sprintf("%v", v) }

func (boolConverter) FromString(text string) (any, error) {
	value, ok := stringprocessing.ParseBool(text)
	if !ok {
		return nil, &ConversionError{Type: contypes.TypeBool, Text: text, Detail: "not a boolean"}
	}
	return value, nil
}

// vec3Converter is the lenient structured-literal converter. Malformed
// input yields the zero vector plus a diagnostic, never an error, so the
// surrounding command keeps executing.
type vec3Converter struct {
	diag func(string)
}

func (vec3Converter) ToString(v any) string {
	if vec, ok := v.(contypes.Vec3); ok {
		return vec.String()
	}
	return fmt.Sprintf("%v", v)
}

func (c vec3Converter) FromString(text string) (any, error) {
	body := strings.TrimSpace(text)
	body = strings.TrimPrefix(body, "(")
	body = strings.TrimSuffix(body, ")")

	fields := strings.Split(body, ",")
	if len(fields) != 3 {
		c.diag(fmt.Sprintf("malformed vec3 literal %q: want 3 comma-separated components, got %d", text, len(fields)))
		return contypes.Vec3{}, nil
	}

	var components [3]float64
	for i, field := range fields {
		f, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			c.diag(fmt.Sprintf("malformed vec3 literal %q: component %d is not a number", text, i+1))
			return contypes.Vec3{}, nil
		}
		components[i] = f
	}
	return contypes.Vec3{X: components[0], Y: components[1], Z: components[2]}, nil
}

// Enum returns a strict converter for a named enumeration. Values are
// represented natively as int indexes into names. FromString accepts a
// name (case-insensitive) or a numeric index within range.
func Enum(tag contypes.TypeTag, names []string) Converter {
	return enumConverter{tag: tag, names: names}
}

type enumConverter struct {
	tag   contypes.TypeTag
	names []string
}

func (c enumConverter) ToString(v any) string {
	if i, ok := v.(int); ok && i >= 0 && i < len(c.names) {
		return c.names[i]
	}
	return fmt.Sprintf("%v", v)
}

func (c enumConverter) FromString(text string) (any, error) {
	trimmed := strings.TrimSpace(text)
	for i, name := range c.names {
		if strings.EqualFold(name, trimmed) {
			return i, nil
		}
	}
	if i, err := strconv.Atoi(trimmed); err == nil && i >= 0 && i < len(c.names) {
		return i, nil
	}
	return nil, &ConversionError{
		Type:   c.tag,
		Text:   text,
		Detail: fmt.Sprintf("want one of: %s", strings.Join(c.names, ", ")),
	}
}
