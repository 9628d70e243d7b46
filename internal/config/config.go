// Package config holds the settings of the ullman command line tool. Values
// come from an optional YAML file and are overridden by flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ullman/builder"
)

// ErrInvalid is wrapped by Validate and Load when a value is out of range.
var ErrInvalid = errors.New("config: invalid")

// Config is the root of the YAML document.
type Config struct {
	Log         Log    `yaml:"log"`
	Match       Match  `yaml:"match"`
	Gen         Gen    `yaml:"gen"`
	MetricsFile string `yaml:"metrics_file"`
}

// Log selects level and handler of the process logger.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json auto"`
}

// Match holds defaults for the match command.
type Match struct {
	Induced   bool          `yaml:"induced"`
	All       bool          `yaml:"all"`
	Limit     int           `yaml:"limit" validate:"gte=0"`
	MaxStates int           `yaml:"max_states" validate:"gte=0"`
	Timeout   time.Duration `yaml:"timeout" validate:"gte=0"`
	Jobs      int           `yaml:"jobs" validate:"gte=1,lte=256"`
}

// Gen holds defaults for the gen command.
type Gen struct {
	Seed     int64  `yaml:"seed"`
	IDScheme string `yaml:"id_scheme" validate:"idscheme"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("idscheme", func(fl validator.FieldLevel) bool {
		_, err := builder.IDSchemeByName(fl.Field().String())
		return err == nil
	})
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log:   Log{Level: "info", Format: "auto"},
		Match: Match{Jobs: 1},
		Gen:   Gen{Seed: 1, IDScheme: "decimal"},
	}
}

// Validate checks every field against its constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			f := verrs[0]
			return fmt.Errorf("%w: %s fails %q (value %v)", ErrInvalid, f.Namespace(), f.Tag(), f.Value())
		}

		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// Load reads the YAML file at path on top of Default. Unknown keys are
// rejected. An empty path returns Default unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses YAML from r on top of Default and validates the result.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	raw, err := io.ReadAll(r)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil {
		return Default(), fmt.Errorf("config: %w", err)
	}
	if err = cfg.Validate(); err != nil {
		return Default(), err
	}

	return cfg, nil
}
