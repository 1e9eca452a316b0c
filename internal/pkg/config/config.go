package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DBUsername string `yaml:"db_username"`
	DBPassword string `yaml:"db_password"`
	DBHost     string `yaml:"db_host"`
	DBPort     string `yaml:"db_port"`
	DBName     string `yaml:"db_name"`
	DisableTLS bool   `yaml:"disable_tls"`

	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`

	BaseUrl        string   `yaml:"base_url"`
	PrivateKeyFile string   `yaml:"private_key_file"`
	AllowedOrigins []string `yaml:"allowed_origins"`

	// Geofence for clock actions.
	OfficeLatitude  float64 `yaml:"office_latitude"`
	OfficeLongitude float64 `yaml:"office_longitude"`
	OfficeRadius    float64 `yaml:"office_radius"`
}

func NewConfig() (*Config, error) {
	var c Config

	yamlFile, err := os.ReadFile("config.yaml")
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(yamlFile, &c)
	if err != nil {
		return nil, err
	}

	if c.DBUsername == "" || c.DBPassword == "" || c.DBHost == "" || c.DBName == "" {
		return nil, errors.New("missing required database configuration")
	}
	if c.PrivateKeyFile == "" {
		c.PrivateKeyFile = "./private.pem"
	}
	if c.RedisAddr == "" {
		c.RedisAddr = "localhost:6379"
	}
	if c.OfficeRadius == 0 {
		c.OfficeRadius = 200
	}

	return &c, nil
}
