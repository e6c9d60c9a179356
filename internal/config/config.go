package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port string `yaml:"port"`
}

type JWTConfig struct {
	Secret string `yaml:"secret"`
}

type CORSConfig struct {
	Origin string `yaml:"origin"`
}

type StoreConfig struct {
	TasksFile string `yaml:"tasks_file"`
	UsersFile string `yaml:"users_file"`
}

// Config is the explicit configuration injected at startup. Nothing in the
// server reads the environment directly.
type Config struct {
	Server ServerConfig `yaml:"server"`
	JWT    JWTConfig    `yaml:"jwt"`
	CORS   CORSConfig   `yaml:"cors"`
	Store  StoreConfig  `yaml:"store"`
}

// Load reads the yaml config file and applies environment overrides. A
// missing file is not an error; defaults plus the environment apply.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{Port: "5000"},
		CORS:   CORSConfig{Origin: "http://localhost:3000"},
		Store: StoreConfig{
			TasksFile: "data/tasks.json",
			UsersFile: "data/users.json",
		},
	}

	f, err := os.Open(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	} else {
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
			return nil, err
		}
	}

	overrideFromEnv(cfg)
	return cfg, nil
}

func overrideFromEnv(cfg *Config) {
	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Port = port
	}
	if origin := os.Getenv("CORS_ORIGIN"); origin != "" {
		cfg.CORS.Origin = origin
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.JWT.Secret = secret
	}
	if path := os.Getenv("TASKS_FILE"); path != "" {
		cfg.Store.TasksFile = path
	}
	if path := os.Getenv("USERS_FILE"); path != "" {
		cfg.Store.UsersFile = path
	}
}
