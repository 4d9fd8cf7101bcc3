package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Store    StoreConfig
	AWS      AWSConfig
	DynamoDB DynamoDBConfig
	Redis    RedisConfig
	NATS     NATSConfig
	Server   ServerConfig
}

type StoreConfig struct {
	// Backend selects the record store implementation:
	// "memory", "redis" or "dynamodb".
	Backend string
}

type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
}

type DynamoDBConfig struct {
	TableName        string
	MaxRetries       int
	UseLocalEndpoint bool
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type NATSConfig struct {
	URL                  string
	MaxReconnect         int
	ReconnectWaitSeconds int
	TimeoutSeconds       int
}

type ServerConfig struct {
	Environment string
	LogLevel    string
}

func Load(configPath string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath(configPath)

	viper.AutomaticEnv()
	viper.SetEnvPrefix("MATCHDAY")

	viper.SetDefault("store.backend", "memory")
	viper.SetDefault("server.environment", "development")
	viper.SetDefault("server.loglevel", "debug")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
