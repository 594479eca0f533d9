package vars

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/unkn0wn-root/restcurl/internal/errdef"
)

// EnvironmentSet maps environment name to its variable values, as loaded
// from a profile file next to the request file.
type EnvironmentSet map[string]map[string]string

// Provider wraps one named environment for the resolver. A missing name
// yields an empty provider rather than an error; selection problems are the
// caller's to report.
func (s EnvironmentSet) Provider(name string) *MapProvider {
	return NewMapProvider("env", s[name])
}

func (s EnvironmentSet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var environmentFileNames = []string{
	"http-client.env.json",
	"http-client.env.yaml",
	"http-client.env.yml",
	".env",
}

// LoadEnvironmentFile reads a profile file, picking the format from its
// name: JSON and YAML files hold a full environment set, anything else is
// parsed as dotenv and becomes a single environment.
func LoadEnvironmentFile(path string) (EnvironmentSet, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return loadJSONEnvironment(path)
	case ".yaml", ".yml":
		return loadYAMLEnvironment(path)
	default:
		return loadDotEnvEnvironment(path)
	}
}

// ResolveEnvironment probes each search directory for a known profile file
// name, first hit wins.
func ResolveEnvironment(searchPaths []string) (EnvironmentSet, string, error) {
	for _, dir := range searchPaths {
		if dir == "" {
			continue
		}
		for _, name := range environmentFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err != nil {
				continue
			}
			envs, err := LoadEnvironmentFile(candidate)
			if err != nil {
				return nil, "", err
			}
			return envs, candidate, nil
		}
	}
	return nil, "", errdef.New(errdef.CodeConfig, "no environment file found")
}

func loadJSONEnvironment(path string) (EnvironmentSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errdef.Wrap(errdef.CodeFilesystem, err, "read env file %s", path)
	}
	var raw map[string]map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errdef.Wrap(errdef.CodeParse, err, "parse env file %s", path)
	}
	return coerceEnvironmentSet(raw), nil
}

func loadYAMLEnvironment(path string) (EnvironmentSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errdef.Wrap(errdef.CodeFilesystem, err, "read env file %s", path)
	}
	var raw map[string]map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errdef.Wrap(errdef.CodeParse, err, "parse env file %s", path)
	}
	return coerceEnvironmentSet(raw), nil
}

// Profile files may carry numbers or booleans; everything becomes a string
// because template substitution only splices strings.
func coerceEnvironmentSet(raw map[string]map[string]any) EnvironmentSet {
	envs := make(EnvironmentSet, len(raw))
	for envName, values := range raw {
		env := make(map[string]string, len(values))
		for key, value := range values {
			env[key] = stringifyEnvValue(value)
		}
		envs[envName] = env
	}
	return envs
}

func stringifyEnvValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return strings.Trim(string(data), `"`)
	}
}
