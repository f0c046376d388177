package config

import (
	"github.com/caarlos0/env/v6"
)

type Config struct {
	IsTestMode bool `env:"TEST_MODE" envDefault:"false"`
	Port       int  `env:"PORT" envDefault:"9090"`

	Secret           string `env:"SECRET,required"`
	BcryptHasherCost int    `env:"BCRYPT_HASHER_COST" envDefault:"10"`

	PostgresqlURL string `env:"POSTGRESQL_URL,required"`
	RedisURL      string `env:"REDIS_URL,required"`
	RabbitmqURL   string `env:"RABBITMQ_URL,required"`

	RabbitmqAnnouncementExchange string `env:"RABBITMQ_ANNOUNCEMENT_EXCHANGE" envDefault:"announcements"`
	RabbitmqAnnouncementQueue    string `env:"RABBITMQ_ANNOUNCEMENT_QUEUE" envDefault:"announcement-created"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	AwsRegion           string `env:"AWS_REGION" envDefault:"us-east-1"`
	AwsAccessKey        string `env:"AWS_ACCESS_KEY"`
	AwsSecretKey        string `env:"AWS_SECRET_KEY"`
	AwsEmailSender      string `env:"AWS_EMAIL_SENDER"`
	AwsEmailOTPTemplate string `env:"AWS_EMAIL_OTP_TEMPLATE" envDefault:"one-time-password"`
}

func Load() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, err
	}
	return config, nil
}
