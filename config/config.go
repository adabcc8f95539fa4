package config

import (
	"github.com/jinzhu/configor"
)

type Config struct {
	AppConfig     AppConfig     `env:"APPCONFIG"`
	GameConfig    GameConfig    `env:"GAMECONFIG"`
	CatalogConfig CatalogConfig `env:"CATALOGCONFIG"`
}

type AppConfig struct {
	APPName string `default:"yoriai"`
	Version string `default:"x.x.x" env:"VERSION"`
	Port    int    `default:"8080" env:"APP_PORT"`
}

type GameConfig struct {
	InitialCollaborationPoints int `default:"10" env:"INITIAL_COLLAB_POINTS"`
	// Seconds between day-rollover checks when the watch loop is on.
	ResetCheckSeconds int `default:"60" env:"RESET_CHECK_SECONDS"`
}

type CatalogConfig struct {
	// Optional YAML file overriding the built-in catalog tables.
	Path string `env:"CATALOG_PATH"`
}

func LoadConfigOrPanic() Config {
	var config = Config{}
	configor.Load(&config, "config/config.dev.json")

	return config
}
