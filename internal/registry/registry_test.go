package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devconsole/pkg/contypes"
)

func testVariable(name string) *contypes.Variable {
	value := 0
	return &contypes.Variable{
		Name: name,
		Type: contypes.TypeInt,
		Get:  func() any { return value },
		Set:  func(v any) { value = v.(int) },
	}
}

func testFunction(name string, params ...contypes.Parameter) *contypes.Function {
	return &contypes.Function{
		Name:       name,
		ReturnType: contypes.TypeVoid,
		Params:     params,
		Invoke:     func(_ []any) (any, error) { return nil, nil },
	}
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	reg := New()

	require.NoError(t, reg.RegisterVariable(testVariable("health")))
	require.NoError(t, reg.RegisterFunction(testFunction("quit")))

	b, ok := reg.Lookup("health")
	assert.True(t, ok)
	assert.NotNil(t, b.Variable)
	assert.Nil(t, b.Function)

	b, ok = reg.Lookup("quit")
	assert.True(t, ok)
	assert.NotNil(t, b.Function)

	assert.Equal(t, 2, reg.Len())
}

func TestRegistry_DuplicateNamesRejectedAcrossKinds(t *testing.T) {
	reg := New()
	require.NoError(t, reg.RegisterVariable(testVariable("health")))

	err := reg.RegisterVariable(testVariable("health"))
	assert.ErrorContains(t, err, "already registered")

	// Names are unique across the combined variable and function sets.
	err = reg.RegisterFunction(testFunction("health"))
	assert.ErrorContains(t, err, "already registered")
}

func TestRegistry_EmptyNameRejected(t *testing.T) {
	reg := New()
	assert.Error(t, reg.RegisterVariable(testVariable("")))
	assert.Error(t, reg.RegisterVariable(nil))
}

func TestRegistry_LookupIsExactAndCaseSensitive(t *testing.T) {
	reg := New()
	require.NoError(t, reg.RegisterVariable(testVariable("Health")))

	_, ok := reg.Lookup("health")
	assert.False(t, ok)

	_, ok = reg.Lookup("Heal")
	assert.False(t, ok)

	_, ok = reg.Lookup("Health")
	assert.True(t, ok)
}

func TestRegistry_NamesKeepRegistrationOrder(t *testing.T) {
	reg := New()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, reg.RegisterVariable(testVariable(name)))
	}

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, reg.Names())

	// The returned slice is a copy; mutating it must not affect the registry.
	names := reg.Names()
	names[0] = "mutated"
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, reg.Names())
}

func TestRegistry_OptionalParamsMustBeContiguousSuffix(t *testing.T) {
	reg := New()

	err := reg.RegisterFunction(testFunction("bad",
		contypes.Parameter{Name: "a", Type: contypes.TypeInt, Optional: true, Default: 1},
		contypes.Parameter{Name: "b", Type: contypes.TypeInt},
	))
	assert.ErrorContains(t, err, "follows an optional parameter")

	err = reg.RegisterFunction(testFunction("good",
		contypes.Parameter{Name: "a", Type: contypes.TypeInt},
		contypes.Parameter{Name: "b", Type: contypes.TypeInt, Optional: true, Default: 1},
	))
	assert.NoError(t, err)
}
