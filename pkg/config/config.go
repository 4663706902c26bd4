package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// Config is the request configuration for a discovery run. Field names match
// the gpu-config file format.
type Config struct {
	ProjectID string         `yaml:"project_id"`
	Instance  InstanceConfig `yaml:"instance_config"`
}

// InstanceConfig describes the machine and accelerator combination to search
// for. Zones optionally restricts the search to a subset of zone names.
type InstanceConfig struct {
	MachineType  string   `yaml:"machine_type"`
	GPUType      string   `yaml:"gpu_type"`
	NumberOfGPUs int      `yaml:"number_of_gpus"`
	Zones        []string `yaml:"zone,omitempty"`
}

// New returns a Config for the given project and instance shape.
func New(projectID, machineType, gpuType string, numberOfGPUs int) *Config {
	return &Config{
		ProjectID: projectID,
		Instance: InstanceConfig{
			MachineType:  machineType,
			GPUType:      gpuType,
			NumberOfGPUs: numberOfGPUs,
		},
	}
}

// Parse loads a Config from a YAML file.
func Parse(filePath string) (*Config, error) {
	configFile, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	config := &Config{}
	err = yaml.Unmarshal(configFile, config)
	return config, err
}
