package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Gateway type names accepted in the configuration.
const (
	GatewayCLI    = "cli"    // shell out to the git binary
	GatewayNative = "native" // read the repository in-process via go-git
)

// Settings is the top-level configuration for releaseforge.
type Settings struct {
	Gateway GatewaySettings `yaml:"gateway"`
	Output  OutputSettings  `yaml:"output"`
}

// GatewaySettings selects and configures the source control gateway.
type GatewaySettings struct {
	Type    string `yaml:"type"`     // "cli" or "native"
	RepoDir string `yaml:"repo_dir"` // repository to read
}

// OutputSettings locates the output sink files. Paths support ${ENV_VAR}
// references; unresolved or empty paths fall back to the console.
type OutputSettings struct {
	ValuesPath string `yaml:"values_path"` // name=value file, GITHUB_OUTPUT style
	ReportPath string `yaml:"report_path"` // markdown report file, GITHUB_STEP_SUMMARY style
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewSettings reads and parses a configuration file, expanding environment
// variable references in paths.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := DefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.Gateway.RepoDir = resolveEnvRef(settings.Gateway.RepoDir)
	settings.Output.ValuesPath = resolveEnvRef(settings.Output.ValuesPath)
	settings.Output.ReportPath = resolveEnvRef(settings.Output.ReportPath)

	if validateErr := validate(settings); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// DefaultSettings returns the configuration used when no file exists: the
// git binary reading the current directory, with sink files taken from the
// conventional workflow variables when those are set.
func DefaultSettings() *Settings {
	return &Settings{
		Gateway: GatewaySettings{
			Type:    GatewayCLI,
			RepoDir: ".",
		},
		Output: OutputSettings{
			ValuesPath: resolveEnvRef("${GITHUB_OUTPUT}"),
			ReportPath: resolveEnvRef("${GITHUB_STEP_SUMMARY}"),
		},
	}
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".releaseforge.yaml",
		".releaseforge.yml",
		"releaseforge.yaml",
		"releaseforge.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// resolveEnvRef expands environment variable references (${VAR}) in a
// configured value. Unset variables resolve to the empty string.
func resolveEnvRef(raw string) string {
	if raw == "" {
		return raw
	}

	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Debugf("Environment variable %q is not set", varName)
		return ""
	})
}

// validate checks for supported configuration values.
func validate(settings *Settings) error {
	switch settings.Gateway.Type {
	case GatewayCLI, GatewayNative:
	default:
		return fmt.Errorf(
			"gateway.type %q is not supported (expected %q or %q)",
			settings.Gateway.Type, GatewayCLI, GatewayNative,
		)
	}

	if settings.Gateway.RepoDir == "" {
		return errors.New("gateway.repo_dir must not be empty")
	}

	return nil
}
