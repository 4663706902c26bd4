package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ConfigurationError reports a request configuration that is internally
// inconsistent, such as a GPU count that contradicts the machine type name.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

// ValidationError collects multiple validation errors.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: %s", strings.Join(e.Errors, "; "))
}

func (e *ValidationError) Add(msg string) {
	e.Errors = append(e.Errors, msg)
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Errors) > 0
}

// FamilyRule checks a machine type name against the requested GPU count.
// Rules are keyed by machine family prefix so new families can add their own
// naming conventions without touching the pipeline.
type FamilyRule func(machineType string, numberOfGPUs int) error

var familyRules = map[string]FamilyRule{
	"a2": a2HighGPURule,
}

// RegisterFamilyRule installs a validation rule for machine types starting
// with the given family prefix, replacing any existing rule for that prefix.
func RegisterFamilyRule(prefix string, rule FamilyRule) {
	familyRules[prefix] = rule
}

// a2HighGPURule enforces the A2 naming convention: a2-highgpu-<n>g encodes
// the number of attached GPUs, and the declared count must match.
func a2HighGPURule(machineType string, numberOfGPUs int) error {
	idx := strings.Index(machineType, "highgpu-")
	if idx < 0 {
		// Other a2 shapes (ultragpu, megagpu) don't encode a count this way.
		return nil
	}
	start := idx + len("highgpu-")
	if start >= len(machineType)-1 {
		return &ConfigurationError{Reason: fmt.Sprintf("machine type %q does not encode a GPU count", machineType)}
	}
	encoded := machineType[start : len(machineType)-1]
	gpusInMachineType, err := strconv.Atoi(encoded)
	if err != nil {
		return &ConfigurationError{Reason: fmt.Sprintf("machine type %q does not encode a GPU count", machineType)}
	}
	if gpusInMachineType != numberOfGPUs {
		return &ConfigurationError{Reason: fmt.Sprintf(
			"machine type %s provides %d GPUs but %d were requested; please match the number of GPUs with the machine type",
			machineType, gpusInMachineType, numberOfGPUs)}
	}
	return nil
}

// Validate checks the configuration for completeness and runs the family
// naming rule for the requested machine type. It is a pure check and must be
// called before any catalog requests are issued.
func (c *Config) Validate() error {
	ve := &ValidationError{}

	if c.ProjectID == "" {
		ve.Add("project_id is required")
	}
	if c.Instance.MachineType == "" {
		ve.Add("instance_config.machine_type is required")
	}
	if c.Instance.GPUType == "" {
		ve.Add("instance_config.gpu_type is required")
	}
	if c.Instance.NumberOfGPUs < 1 {
		ve.Add("instance_config.number_of_gpus must be >= 1")
	}
	if ve.HasErrors() {
		return ve
	}

	for prefix, rule := range familyRules {
		if strings.HasPrefix(c.Instance.MachineType, prefix) {
			if err := rule(c.Instance.MachineType, c.Instance.NumberOfGPUs); err != nil {
				return err
			}
		}
	}
	return nil
}
