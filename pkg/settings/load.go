package settings

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the configuration file probed in the working
// directory when no --config flag is given.
const DefaultConfigFile = ".pig.yaml"

// LoadOptions reads options from a YAML configuration file. Unknown keys
// are rejected; absent keys leave the corresponding Options fields nil.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return parseOptions(data, path)
}

func parseOptions(data []byte, path string) (Options, error) {
	var opts Options
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && err != io.EOF {
		return Options{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return opts, nil
}
