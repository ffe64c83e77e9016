package config

import (
	"log"
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Load loads the configuration from the directory.
func Load(path string) (*Configuration, error) {
	return loadFs(afero.NewOsFs(), path)
}

func loadFs(fs afero.Fs, path string) (*Configuration, error) {
	// If given the path to a config.yaml file, move back up a level.
	if filepath.Base(path) == ConfigurationName {
		path = filepath.Dir(path)
	}

	configContents, err := afero.ReadFile(fs, filepath.Join(path, ConfigurationName))
	if err != nil {
		return nil, err
	}
	var out Configuration
	if err := yaml.UnmarshalStrict(configContents, &out); err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	out.configFs = afero.NewBasePathFs(fs, path)
	return &out, nil
}

// Initialize writes the default configuration into the directory,
// leaving an existing config untouched.
func Initialize(path string, logger *log.Logger) (*Configuration, error) {
	return initializeFs(afero.NewOsFs(), path, logger)
}

func initializeFs(fs afero.Fs, path string, logger *log.Logger) (*Configuration, error) {
	configPath := filepath.Join(path, ConfigurationName)

	exists, err := afero.Exists(fs, configPath)
	switch {
	case err != nil:
		return nil, err
	case exists:
		logger.Printf("Found existing %s, leaving it as-is.", ConfigurationName)
	default:
		logger.Printf("Writing default %s.", ConfigurationName)
		if err := afero.WriteFile(fs, configPath, defaultConfigData, 0600); err != nil {
			return nil, err
		}
	}

	return loadFs(fs, path)
}

// defaultConfig parses the embedded default configuration. It panics on
// failure because that should never happen at runtime.
func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
