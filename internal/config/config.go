package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/viper"
)

// ErrProfileNotFound marks a lookup of a profile name the file does not
// define.
var ErrProfileNotFound = errors.New("config: profile not found")

// DefaultPort is assumed when a profile omits the port.
const DefaultPort = 3306

// Profile is one named connection entry from the profile file.
type Profile struct {
	Name     string `mapstructure:"name"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
}

// Config is the parsed profile file.
type Config struct {
	Profiles []Profile `mapstructure:"profiles"`
}

// Load reads the profile file at path. An empty path falls back to a file
// named .qlens (any extension viper understands) in the home directory or
// the working directory.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".qlens")
		v.AddConfigPath("$HOME")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Profile returns the first entry named name.
func (c *Config) Profile(name string) (Profile, error) {
	for _, p := range c.Profiles {
		if p.Name == name {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("%w: %q", ErrProfileNotFound, name)
}

// Addr returns the host:port endpoint of the profile with the default port
// applied.
func (p Profile) Addr() string {
	port := p.Port
	if port == 0 {
		port = DefaultPort
	}
	return net.JoinHostPort(p.Host, strconv.Itoa(port))
}
