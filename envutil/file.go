package envutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFileType is returned when the file extension is not recognized.
var ErrUnknownFileType = errors.New("env file doesn't have a known file suffix")

// LoadEnvFile reads variables from a file, picking the format from its name:
//   - .env files hold KEY=VALUE lines (comments, quotes and export allowed)
//   - .json files hold {"env": {"KEY": "VALUE"}}
//   - .yml and .yaml files hold an env: mapping
func LoadEnvFile(path string) (map[string]string, error) {
	name := strings.ToLower(filepath.Base(path))

	switch {
	case strings.HasSuffix(name, ".env"):
		return godotenv.Read(path)
	case strings.HasSuffix(name, ".json"):
		return loadStructured(path, json.Unmarshal)
	case strings.HasSuffix(name, ".yml"), strings.HasSuffix(name, ".yaml"):
		return loadStructured(path, yaml.Unmarshal)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFileType, filepath.Base(path))
	}
}

type envFile struct {
	Env map[string]string `json:"env" yaml:"env"`
}

func loadStructured(path string, unmarshal func([]byte, any) error) (map[string]string, error) {
	bts, err := os.ReadFile(path) // #nosec G304 -- path is the intended file to load
	if err != nil {
		return nil, err
	}

	var out envFile
	if err := unmarshal(bts, &out); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if out.Env == nil {
		out.Env = map[string]string{}
	}

	return out.Env, nil
}

// Load reads path with LoadEnvFile and exports its variables into the process
// environment. Variables that are already set win over the file. It returns
// how many variables were exported.
func Load(path string) (int, error) {
	vars, err := LoadEnvFile(path)
	if err != nil {
		return 0, err
	}

	count := 0

	for key, value := range vars {
		if _, exists := lookupEnv(key); exists {
			continue
		}

		if err := os.Setenv(key, value); err != nil {
			return count, fmt.Errorf("setting %s: %w", key, err)
		}

		count++
	}

	return count, nil
}
