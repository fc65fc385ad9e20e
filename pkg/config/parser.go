package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads and parses the configuration file. Task sets may be
// given as YAML or, when the file has a .json extension, as JSON.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config *Config
	if strings.EqualFold(filepath.Ext(filename), ".json") {
		config, err = parseJSON(data)
	} else {
		config = &Config{}
		err = yaml.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if config.MaxJobs == 0 {
		config.MaxJobs = DefaultMaxJobs
	}

	// Validate configuration
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// parseJSON extracts a Config from a JSON document.
func parseJSON(data []byte) (*Config, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("not valid JSON")
	}
	root := gjson.ParseBytes(data)

	config := &Config{}
	root.Get("tasks").ForEach(func(_, t gjson.Result) bool {
		config.Tasks = append(config.Tasks, Task{
			Name:          t.Get("name").String(),
			ExecutionTime: int(t.Get("executionTime").Int()),
			Period:        int(t.Get("period").Int()),
		})
		return true
	})
	for _, r := range root.Get("relaxTasks").Array() {
		config.RelaxTasks = append(config.RelaxTasks, r.String())
	}
	config.RunRelaxed = root.Get("runRelaxed").Bool()
	config.MaxJobs = int(root.Get("maxJobs").Int())
	config.Workers = int(root.Get("workers").Int())

	return config, nil
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	if len(config.Tasks) == 0 {
		return fmt.Errorf("at least one task must be defined")
	}

	seen := make(map[string]bool, len(config.Tasks))
	for i, task := range config.Tasks {
		if task.Name == "" {
			return fmt.Errorf("task %d: name is required", i)
		}

		if seen[task.Name] {
			return fmt.Errorf("task %s: name is not unique", task.Name)
		}
		seen[task.Name] = true

		if task.ExecutionTime <= 0 {
			return fmt.Errorf("task %s: executionTime must be greater than 0", task.Name)
		}

		if task.Period <= 0 {
			return fmt.Errorf("task %s: period must be greater than 0", task.Name)
		}

		// A job that runs longer than its period misses its own
		// deadline even alone on an idle processor.
		if task.ExecutionTime > task.Period {
			return fmt.Errorf("task %s: executionTime %d exceeds period %d", task.Name, task.ExecutionTime, task.Period)
		}
	}

	if config.RunRelaxed && len(config.RelaxTasks) == 0 {
		return fmt.Errorf("runRelaxed requires at least one entry in relaxTasks")
	}

	for _, name := range config.RelaxTasks {
		if !seen[name] {
			return fmt.Errorf("relaxTasks: %s does not name a task", name)
		}
	}

	if config.MaxJobs < 0 {
		return fmt.Errorf("maxJobs must not be negative")
	}

	if config.Workers < 0 {
		return fmt.Errorf("workers must not be negative")
	}

	return nil
}
