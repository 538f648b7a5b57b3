package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	ManifestPath     string        `envconfig:"RELEASES_MANIFEST" default:"releases.yaml"`
	JarsRepository   string        `envconfig:"LAVALINK_JARS_REPOSITORY" default:"https://github.com/Cog-Creators/Lavalink-Jars"`
	PluginRepository string        `envconfig:"LAVALINK_PLUGIN_REPOSITORY" default:"https://maven.lavalink.dev/releases"`
	HTTPTimeout      time.Duration `envconfig:"HTTP_TIMEOUT" default:"1m"`
}

func NewConfigFromEnv() (*Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
