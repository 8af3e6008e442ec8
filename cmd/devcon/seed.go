package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"devconsole/internal/convert"
	"devconsole/internal/logger"
	"devconsole/internal/registry"
)

// seedSpec is the schema for --seed files:
//
//	variables:
//	  health: "250"
//	  spawn_point: "(10, 0, 10)"
type seedSpec struct {
	Variables map[string]string `yaml:"variables"`
}

// applySeed assigns initial variable values from a YAML file. Each literal
// goes through the variable's normal converter, so a seed file cannot put a
// variable into a state the console itself could not. Bad entries are
// logged and skipped rather than aborting startup.
func applySeed(path string, reg *registry.Registry, conv *convert.Registry) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var spec seedSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	for name, literal := range spec.Variables {
		binding, ok := reg.Lookup(name)
		if !ok || binding.Variable == nil {
			logger.Warn("seed entry is not a registered variable", "name", name)
			continue
		}
		converter, ok := conv.For(binding.Variable.Type)
		if !ok {
			logger.Warn("seed entry has no converter", "name", name, "type", binding.Variable.Type)
			continue
		}
		value, err := converter.FromString(literal)
		if err != nil {
			logger.Warn("seed value rejected", "name", name, "value", literal, "error", err)
			continue
		}
		binding.Variable.Set(value)
	}
	return nil
}
