package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/crcf-labs/crcf/internal/branding"
	"github.com/crcf-labs/crcf/internal/component"
	cerrors "github.com/crcf-labs/crcf/internal/errors"
	"github.com/crcf-labs/crcf/internal/output"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Option keys, shared by flags, files and environment variables.
const (
	KeyTypeScript    = "typescript"
	KeyNative        = "reactnative"
	KeyNoTest        = "notest"
	KeyNoStyle       = "nocss"
	KeyPropTypes     = "proptypes"
	KeyUppercase     = "uppercase"
	KeyLess          = "less"
	KeySCSS          = "scss"
	KeySass          = "sass"
	KeyStyle         = "style"
	KeyNoUpdateCheck = "no-update-check"
)

var boolKeys = []string{
	KeyTypeScript, KeyNative, KeyNoTest, KeyNoStyle, KeyPropTypes,
	KeyUppercase, KeyLess, KeySCSS, KeySass, KeyNoUpdateCheck,
}

// Dir returns the path to the config directory (~/.crcf/). CRCF_HOME
// overrides it.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the user config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Loader layers configuration sources for one invocation.
type Loader struct {
	v       *viper.Viper
	workDir string
}

// New creates a Loader whose project file is looked up in workDir.
func New(workDir string) *Loader {
	v := viper.New()
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, k := range boolKeys {
		v.SetDefault(k, false)
	}
	v.SetDefault(KeyStyle, string(component.StyleCSS))

	return &Loader{v: v, workDir: workDir}
}

// RCPath returns the project file path.
func (l *Loader) RCPath() string {
	return filepath.Join(l.workDir, branding.RCFile())
}

// Load merges the user file and then the project file. Missing files are
// skipped. An invalid project file fails with ErrValidation.
func (l *Loader) Load() error {
	if err := l.merge(FilePath(), false); err != nil {
		return err
	}
	return l.merge(l.RCPath(), true)
}

func (l *Loader) merge(path string, validate bool) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	if validate {
		result, err := Validate(data)
		if err != nil {
			return cerrors.NewValidationError(err.Error(), path, "")
		}
		if !result.Valid {
			return cerrors.NewValidationError(result.String(), path, "see the allowed keys in the README")
		}
	}

	if err := l.v.MergeConfig(bytes.NewReader(data)); err != nil {
		return cerrors.NewValidationError(fmt.Sprintf("parsing config: %v", err), path, "")
	}
	output.Debug("merged config", "path", path)
	return nil
}

// BindFlags makes changed flags override every other source. Flags are
// matched to keys by name; unknown flags are ignored.
func (l *Loader) BindFlags(flags *pflag.FlagSet) error {
	var bindErr error
	flags.VisitAll(func(f *pflag.Flag) {
		if bindErr != nil || !isKey(f.Name) {
			return
		}
		bindErr = l.v.BindPFlag(f.Name, f)
	})
	return bindErr
}

// Bool returns a resolved boolean option.
func (l *Loader) Bool(key string) bool {
	return l.v.GetBool(key)
}

// Resolve returns the component options.
func (l *Loader) Resolve() (component.Config, error) {
	style, err := l.style()
	if err != nil {
		return component.Config{}, err
	}

	return component.Config{
		TypeScript: l.v.GetBool(KeyTypeScript),
		Native:     l.v.GetBool(KeyNative),
		NoTest:     l.v.GetBool(KeyNoTest),
		NoStyle:    l.v.GetBool(KeyNoStyle),
		PropTypes:  l.v.GetBool(KeyPropTypes),
		Uppercase:  l.v.GetBool(KeyUppercase),
		Style:      style,
	}, nil
}

// style resolves the style switches. The boolean switches win over the
// "style" key; --less together with --scss is a usage error.
func (l *Loader) style() (component.Style, error) {
	less := l.v.GetBool(KeyLess)
	sass := l.v.GetBool(KeySCSS) || l.v.GetBool(KeySass)

	switch {
	case less && sass:
		return "", cerrors.NewValidationError("--less and --scss are mutually exclusive", "", "pick one style variant")
	case less:
		return component.StyleLess, nil
	case sass:
		return component.StyleSass, nil
	default:
		return component.ParseStyle(l.v.GetString(KeyStyle))
	}
}

func isKey(name string) bool {
	if name == KeyStyle {
		return true
	}
	for _, k := range boolKeys {
		if k == name {
			return true
		}
	}
	return false
}

// Get returns a value from the user config file. Returns an empty string if
// the key is not set.
func Get(key string) (string, error) {
	v := viper.New()
	v.SetConfigFile(FilePath())
	v.SetConfigType(fileType)
	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(FilePath()); os.IsNotExist(statErr) {
			return "", nil
		}
		return "", fmt.Errorf("reading config file: %w", err)
	}
	return v.GetString(key), nil
}

// Set writes a key-value pair to the user config file. Only option keys are
// accepted and values are checked against the key's type.
func Set(key, value string) error {
	if !isKey(key) {
		return cerrors.NewValidationError(fmt.Sprintf("unknown config key %q", key), FilePath(), "")
	}

	var typed interface{} = value
	if key == KeyStyle {
		if _, err := component.ParseStyle(value); err != nil {
			return err
		}
	} else {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return cerrors.NewValidationError(fmt.Sprintf("%s expects true or false, got %q", key, value), FilePath(), "")
		}
		typed = b
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	v := viper.New()
	configFile := FilePath()
	v.SetConfigFile(configFile)
	v.SetConfigType(fileType)

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	v.Set(key, typed)
	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
