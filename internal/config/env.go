package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/joho/godotenv"
)

// envVarPattern matches ${VAR_NAME} patterns in TOML values
var envVarPattern = regexp.MustCompile(`^\$\{([A-Za-z_][A-Za-z0-9_]*)\}$`)

// DetectEnvVar checks if a raw TOML value is a simple ${VAR_NAME} reference.
// Returns the variable name and true if the value is a pure env var reference.
func DetectEnvVar(rawValue string) (string, bool) {
	matches := envVarPattern.FindStringSubmatch(rawValue)
	if len(matches) == 2 {
		return matches[1], true
	}
	return "", false
}

// LoadDotEnv loads .env then .env.local from dir. Variables already present
// in the environment are not overridden.
func LoadDotEnv(dir string) {
	envFiles := []string{
		filepath.Join(dir, ".env"),
		filepath.Join(dir, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}
}

// expandRequired expands ${VAR} references and reports a pure reference to
// an unset variable
func expandRequired(field, raw string) (string, error) {
	if name, ok := DetectEnvVar(raw); ok {
		if _, set := os.LookupEnv(name); !set {
			return "", fmt.Errorf("%s references ${%s} which is not set", field, name)
		}
	}
	return os.ExpandEnv(raw), nil
}
