package main

import (
	"fmt"
	"sort"

	"devconsole/internal/convert"
	"devconsole/internal/executor"
	"devconsole/internal/output"
	"devconsole/internal/registry"
	"devconsole/pkg/contypes"
)

// typeDifficulty is a host-defined enum tag with its own converter.
const typeDifficulty = contypes.TypeTag("difficulty")

// demoWorld is the host-side state the demo bindings close over. In a real
// embedding this would be the program's own data.
type demoWorld struct {
	health     int
	volume     float64
	godMode    bool
	playerName string
	spawnPoint contypes.Vec3
	difficulty int
	quit       bool
}

func newDemoWorld() *demoWorld {
	return &demoWorld{
		health:     100,
		volume:     0.8,
		playerName: "player1",
		spawnPoint: contypes.Vec3{X: 0, Y: 1, Z: 0},
		difficulty: 1,
	}
}

// register installs the demo binding set and the host-defined enum
// converter. Registration happens once, before the input loop starts.
func (w *demoWorld) register(reg *registry.Registry, conv *convert.Registry, exec *executor.Executor, out *output.Broker) error {
	conv.Register(typeDifficulty, convert.Enum(typeDifficulty, []string{"easy", "normal", "hard"}))

	variables := []*contypes.Variable{
		{
			Name: "health",
			Type: contypes.TypeInt,
			Get:  func() any { return w.health },
			Set:  func(v any) { w.health = v.(int) },
		},
		{
			Name: "volume",
			Type: contypes.TypeFloat,
			Get:  func() any { return w.volume },
			Set:  func(v any) { w.volume = v.(float64) },
		},
		{
			Name: "god_mode",
			Type: contypes.TypeBool,
			Get:  func() any { return w.godMode },
			Set:  func(v any) { w.godMode = v.(bool) },
		},
		{
			Name: "player_name",
			Type: contypes.TypeString,
			Get:  func() any { return w.playerName },
			Set:  func(v any) { w.playerName = v.(string) },
		},
		{
			Name: "spawn_point",
			Type: contypes.TypeVec3,
			Get:  func() any { return w.spawnPoint },
			Set:  func(v any) { w.spawnPoint = v.(contypes.Vec3) },
		},
		{
			Name: "difficulty",
			Type: typeDifficulty,
			Get:  func() any { return w.difficulty },
			Set:  func(v any) { w.difficulty = v.(int) },
		},
	}
	for _, v := range variables {
		if err := reg.RegisterVariable(v); err != nil {
			return err
		}
	}

	functions := []*contypes.Function{
		{
			Name:       "AddInt",
			ReturnType: contypes.TypeInt,
			Params: []contypes.Parameter{
				{Name: "a", Type: contypes.TypeInt},
				{Name: "b", Type: contypes.TypeInt},
			},
			Invoke: func(args []any) (any, error) {
				return args[0].(int) + args[1].(int), nil
			},
		},
		{
			Name:       "Echo",
			ReturnType: contypes.TypeString,
			Params: []contypes.Parameter{
				{Name: "text", Type: contypes.TypeString},
			},
			Invoke: func(args []any) (any, error) {
				return args[0].(string), nil
			},
		},
		{
			Name:       "Teleport",
			ReturnType: contypes.TypeVoid,
			Params: []contypes.Parameter{
				{Name: "pos", Type: contypes.TypeVec3},
			},
			Invoke: func(args []any) (any, error) {
				w.spawnPoint = args[0].(contypes.Vec3)
				out.Text(fmt.Sprintf("teleported to %s", w.spawnPoint))
				return nil, nil
			},
		},
		{
			Name:       "OptionalArgTest",
			ReturnType: contypes.TypeVoid,
			Params: []contypes.Parameter{
				{Name: "msg", Type: contypes.TypeString},
				{Name: "times", Type: contypes.TypeInt, Optional: true, Default: 2},
			},
			Invoke: func(args []any) (any, error) {
				msg := args[0].(string)
				for i := 0; i < args[1].(int); i++ {
					out.Result(msg)
				}
				return nil, nil
			},
		},
		{
			Name:       "help",
			ReturnType: contypes.TypeVoid,
			Invoke: func(_ []any) (any, error) {
				names := reg.Names()
				sort.Strings(names)
				for _, name := range names {
					out.Result(exec.Describe(name))
				}
				return nil, nil
			},
		},
		{
			Name:       "quit",
			ReturnType: contypes.TypeVoid,
			Invoke: func(_ []any) (any, error) {
				w.quit = true
				return nil, nil
			},
		},
	}
	for _, f := range functions {
		if err := reg.RegisterFunction(f); err != nil {
			return err
		}
	}
	return nil
}
