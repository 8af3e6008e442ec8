// Package testutils provides shared helpers for devconsole tests.
package testutils

import (
	"devconsole/internal/convert"
	"devconsole/internal/executor"
	"devconsole/internal/output"
	"devconsole/internal/registry"
)

// Console bundles the pieces an executor test needs: an empty registry, the
// built-in converters, a broker with a capture attached, and an executor
// wired over all three. Tests register their own bindings.
type Console struct {
	Registry   *registry.Registry
	Converters *convert.Registry
	Broker     *output.Broker
	Capture    *output.Capture
	Executor   *executor.Executor
}

// NewConsole creates a fully wired console fixture.
func NewConsole() *Console {
	broker := output.NewBroker()
	capture := output.NewCapture(broker)
	conv := convert.NewRegistry(broker.Text)
	reg := registry.New()
	return &Console{
		Registry:   reg,
		Converters: conv,
		Broker:     broker,
		Capture:    capture,
		Executor:   executor.New(reg, conv, broker),
	}
}

// Run resets the capture, executes one raw command, and returns the Result
// fragments it produced.
func (c *Console) Run(raw string) []string {
	c.Capture.Reset()
	c.Executor.Execute(raw)
	return c.Capture.Results()
}
