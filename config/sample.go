package config

import (
	"encoding/json"
	"os"

	"github.com/cockroachdb/errors"
)

// CreateSample creates a sample configuration file.
func CreateSample(path string) error {
	sample := Default()
	sample.Cases = Cases()
	sample.Dimension = 1_000
	sample.Seed = 42
	sample.Iterations = 5
	sample.Progress = true
	sample.LogLevel = LogLevelInfo
	raw, err := json.MarshalIndent(sample, "", "    ")
	if err != nil {
		return errors.Wrap(err, "could not marshal sample config")
	}
	err = os.WriteFile(path, raw, 0600)
	if err != nil {
		return errors.Wrap(err, "could not write sample config file")
	}
	return nil
}
