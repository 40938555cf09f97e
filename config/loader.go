package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/kbukum/reddish/errors"
	"github.com/kbukum/reddish/logger"
)

// EnvPrefix marks environment variables that override configuration.
const EnvPrefix = "REDDISH_"

// FileSystem abstracts the file operations the loader needs.
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
	UserConfigDir() (string, error)
}

// RealFileSystem implements FileSystem on the local disk.
type RealFileSystem struct{}

func (rfs *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (rfs *RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

func (rfs *RealFileSystem) UserConfigDir() (string, error) {
	return os.UserConfigDir()
}

// Resolver finds config and env files for a program name.
type Resolver struct {
	FileSystem FileSystem
}

// ResolvedFiles contains the resolved config and env file paths. Empty
// paths mean nothing was found.
type ResolvedFiles struct {
	ConfigFile string
	EnvFile    string
}

// ResolveFiles returns explicit paths from opts when set and searches the
// standard locations otherwise.
func (r *Resolver) ResolveFiles(name string, opts LoaderConfig) ResolvedFiles {
	resolved := ResolvedFiles{
		ConfigFile: opts.ConfigFile,
		EnvFile:    opts.EnvFile,
	}
	if resolved.ConfigFile == "" {
		resolved.ConfigFile = r.first(r.configSearchPaths(name))
	}
	if resolved.EnvFile == "" {
		resolved.EnvFile = r.first(envSearchPaths(name))
	}
	return resolved
}

func (r *Resolver) configSearchPaths(name string) []string {
	paths := []string{
		filepath.Join("cmd", name, "config.yml"),
		filepath.Join("config", "config.yml"),
		"config.yml",
	}
	if dir, err := r.FileSystem.UserConfigDir(); err == nil && dir != "" {
		paths = append(paths, filepath.Join(dir, name, "config.yml"))
	}
	return paths
}

func envSearchPaths(name string) []string {
	var paths []string
	for _, file := range []string{".env." + name, ".env"} {
		paths = append(paths, file, filepath.Join("cmd", name, file))
	}
	return paths
}

func (r *Resolver) first(paths []string) string {
	found, _ := lo.Find(paths, r.FileSystem.Exists)
	return found
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string
	EnvFile    string
}

// LoaderOption is a functional option for LoadConfig.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// LoadConfig reads the resolved config file, applies the .env file and
// REDDISH_ environment overrides, and unmarshals into cfg. A missing config
// file is not an error; a malformed one is.
func LoadConfig(name string, cfg any, opts ...LoaderOption) error {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = &RealFileSystem{}
	}

	resolver := &Resolver{FileSystem: lc.FileSystem}
	return load(cfg, resolver.ResolveFiles(name, lc), lc.FileSystem)
}

func load(cfg any, files ResolvedFiles, fs FileSystem) error {
	log := logger.Get("config")
	v := viper.New()

	if files.ConfigFile != "" && fs.Exists(files.ConfigFile) {
		v.SetConfigFile(files.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return errors.InvalidFormat("config", "YAML").
				WithCause(err).
				WithDetail("file", files.ConfigFile)
		}
		log.Debug("loaded config file", logger.Fields(logger.FieldConfig, files.ConfigFile))
	}

	if files.EnvFile != "" && fs.Exists(files.EnvFile) {
		if err := fs.LoadEnv(files.EnvFile); err != nil {
			log.Warn("skipping env file", logger.MergeWithError(logger.Fields(logger.FieldConfig, files.EnvFile), err))
		}
	}

	bindEnvVars(v, os.Environ())

	if err := v.Unmarshal(cfg); err != nil {
		return errors.Internal(err).WithDetail("file", files.ConfigFile)
	}
	return nil
}

// bindEnvVars sets every nesting variant of each REDDISH_ variable.
func bindEnvVars(v *viper.Viper, environ []string) {
	for _, env := range environ {
		key, value, ok := strings.Cut(env, "=")
		if !ok {
			continue
		}
		key, ok = strings.CutPrefix(key, EnvPrefix)
		if !ok || key == "" {
			continue
		}
		for _, variant := range envKeyVariants(key) {
			v.Set(variant, value)
		}
	}
}

// envKeyVariants lists the config keys an environment name may address.
//
//	LOGGING_NO_COLOR -> [logging_no_color, logging.no.color, logging.no_color, logging_no.color]
func envKeyVariants(envKey string) []string {
	lowerKey := strings.ToLower(envKey)
	parts := strings.Split(lowerKey, "_")
	if len(parts) <= 1 {
		return []string{lowerKey}
	}

	variants := []string{
		lowerKey,
		strings.ReplaceAll(lowerKey, "_", "."),
	}
	for i := 1; i < len(parts); i++ {
		variants = append(variants,
			strings.Join(parts[:i], ".")+"."+strings.Join(parts[i:], "_"),
			strings.Join(parts[:i], "_")+"."+strings.Join(parts[i:], "."),
		)
	}
	return lo.Uniq(variants)
}
