package cmd

import (
	"errors"
	"os"
	"path"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/vippsas/htmlcode/htmlparser"
)

type Config struct {
	// Ignore lists parse error codes (e.g. "duplicate-attribute") that
	// the check command should tolerate.
	Ignore []string `yaml:"ignore"`
}

func LoadConfig(fs afero.Fs) (Config, error) {
	var result Config

	configFilename := path.Join(directory, "htmlcode.yaml")
	if _, err := fs.Stat(configFilename); os.IsNotExist(err) {
		// no config file means nothing is ignored
		return Config{}, nil
	}
	yamlFile, err := afero.ReadFile(fs, configFilename)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(yamlFile, &result); err != nil {
		return Config{}, err
	}
	return result, nil
}

// IgnoredKinds resolves the configured codes to error kinds; unknown
// codes are an error so typos do not silently ignore nothing.
func (c Config) IgnoredKinds() (map[htmlparser.ErrorKind]bool, error) {
	result := make(map[htmlparser.ErrorKind]bool)
	for _, code := range c.Ignore {
		kind, ok := htmlparser.KindFromCode(code)
		if !ok {
			return nil, errors.New("unknown parse error code in htmlcode.yaml: " + code)
		}
		result[kind] = true
	}
	return result, nil
}
