package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ytget/yt-downloader/internal/youtube"
)

// AppName names the config directory and env prefix.
const AppName = "yt-downloader"

// Viper keys
const (
	KeyTimeout   = "timeout"
	KeyRetries   = "retries"
	KeyUserAgent = "user_agent"
	KeyReuse     = "reuse_media"
	KeyVerbose   = "verbose"
	EnvPrefix    = "YTDL"
	configName   = "config"
)

// Options are runtime settings shared by the window and the CLI.
type Options struct {
	Timeout    time.Duration
	Retries    int
	UserAgent  string
	ReuseMedia bool
	Verbose    bool
}

// DefaultOptions returns the built-in defaults
func DefaultOptions() Options {
	return Options{
		Timeout:    youtube.DefaultTimeout,
		Retries:    youtube.DefaultRetries,
		ReuseMedia: true,
	}
}

// ClientConfig returns the resolver HTTP settings
func (o Options) ClientConfig() youtube.Config {
	return youtube.Config{
		Timeout:   o.Timeout,
		Retries:   o.Retries,
		UserAgent: o.UserAgent,
	}
}

// ConfigDir returns the directory searched for config.{yaml,json,toml}.
func ConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName), nil
}

// Init wires v with the config path, env and flags.
// A missing config file is not an error.
func Init(flags *pflag.FlagSet, v *viper.Viper) error {
	d := DefaultOptions()
	v.SetDefault(KeyTimeout, d.Timeout)
	v.SetDefault(KeyRetries, d.Retries)
	v.SetDefault(KeyUserAgent, d.UserAgent)
	v.SetDefault(KeyReuse, d.ReuseMedia)
	v.SetDefault(KeyVerbose, d.Verbose)

	if cfgDir, err := ConfigDir(); err == nil {
		v.AddConfigPath(cfgDir)
	}
	v.SetConfigName(configName)

	// YTDL_TIMEOUT, YTDL_USER_AGENT, ...
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		_ = v.BindPFlag(KeyTimeout, flags.Lookup("timeout"))
		_ = v.BindPFlag(KeyRetries, flags.Lookup("retries"))
		_ = v.BindPFlag(KeyUserAgent, flags.Lookup("user-agent"))
		_ = v.BindPFlag(KeyReuse, flags.Lookup("reuse-media"))
		_ = v.BindPFlag(KeyVerbose, flags.Lookup("verbose"))
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}
	return nil
}

// Load reads Options from v, falling back to defaults for invalid values.
func Load(v *viper.Viper) Options {
	o := Options{
		Timeout:    v.GetDuration(KeyTimeout),
		Retries:    v.GetInt(KeyRetries),
		UserAgent:  v.GetString(KeyUserAgent),
		ReuseMedia: v.GetBool(KeyReuse),
		Verbose:    v.GetBool(KeyVerbose),
	}
	d := DefaultOptions()
	if o.Timeout <= 0 {
		o.Timeout = d.Timeout
	}
	if o.Retries < 0 {
		o.Retries = d.Retries
	}
	o.UserAgent = strings.TrimSpace(o.UserAgent)
	return o
}
