package config

import (
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"
)

// ParseConfig parses the raw JSON configuration on top of the defaults.
func ParseConfig(raw []byte) (config Config, err error) {
	config = Default()
	err = json.Unmarshal(raw, &config)
	if err != nil {
		return config, errors.Wrap(err, "unmarshal config")
	}
	if err = config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

type Config struct {
	// Dimension is the length of the random vector and the order of the random square matrix.
	Dimension int `json:"dimension"`
	// Seed of the random source, 0 draws one from the operating system.
	Seed uint64 `json:"seed"`
	// Iterations is how often each case is timed.
	Iterations int      `json:"iterations"`
	Cases      []Case   `json:"cases"`
	Backend    string   `json:"backend"`
	Trace      bool     `json:"trace"`
	Progress   bool     `json:"progress"`
	LogLevel   LogLevel `json:"log_level"`
}

// Default returns the configuration of a plain run without flags.
func Default() Config {
	return Config{
		Dimension:  DEFAULT_DIMENSION,
		Iterations: DEFAULT_ITERATIONS,
		Cases:      DefaultCases(),
		Backend:    DEFAULT_BACKEND,
		LogLevel:   LogLevelWarn,
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Dimension <= 0 {
		return errors.Newf("dimension must be positive, got %d", c.Dimension)
	}
	if c.Iterations <= 0 {
		return errors.Newf("iterations must be positive, got %d", c.Iterations)
	}
	if len(c.Cases) == 0 {
		return errors.New("no benchmark cases configured")
	}
	for _, benchCase := range c.Cases {
		if !benchCase.Valid() {
			return errors.Newf("unknown benchmark case %q", benchCase)
		}
	}
	if strings.TrimSpace(c.Backend) == "" {
		return errors.New("backend must not be empty")
	}
	if !c.LogLevel.Valid() {
		return errors.Newf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// ParseCases splits a comma separated case list.
func ParseCases(list string) (cases []Case, err error) {
	for _, name := range strings.Split(list, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		benchCase := Case(name)
		if !benchCase.Valid() {
			return nil, errors.Newf("unknown benchmark case %q", name)
		}
		cases = append(cases, benchCase)
	}
	if len(cases) == 0 {
		return nil, errors.New("no benchmark cases configured")
	}
	return cases, nil
}
