package project

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"

	"github.com/musicalloto/lotopack/internal/target"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(validateConfig, Config{})
	return v
}

// Cross-field rules that tags cannot express.
func validateConfig(sl validator.StructLevel) {
	cfg := sl.Current().Interface().(Config)
	if cfg.Provision && len(cfg.Dependencies) == 0 {
		sl.ReportError(cfg.Dependencies, "dependencies", "Dependencies", "provisiondeps", "provisioning requires at least one dependency")
	}
	if cfg.Clean && len(cfg.CleanTargets) == 0 {
		sl.ReportError(cfg.CleanTargets, "cleanTargets", "CleanTargets", "cleantargets", "cleaning requires at least one target")
	}
}

// Loads the configuration for the project rooted at root.
//
// Starts from [Defaults] for the platform and overlays [ConfigFile] if the
// root contains one. Keys absent from the file keep their default; unknown
// keys are rejected. The merged configuration is validated.
func Load(root string, p target.Platform) (Config, error) {
	cfg := Defaults(p)

	f, err := os.Open(filepath.Join(root, ConfigFile))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return cfg, Validate(cfg)
	case err != nil:
		return Config{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	defer f.Close()

	if err := decode(f, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrConfig, ConfigFile, err)
	}

	return cfg, Validate(cfg)
}

// Decodes YAML from r into cfg, tolerating UTF-8 and UTF-16 byte order marks.
func decode(r io.Reader, cfg *Config) error {
	r = transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	d := yaml.NewDecoder(r)
	d.KnownFields(true)

	if err := d.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Checks a configuration against its validation rules.
func Validate(cfg Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return nil
}
