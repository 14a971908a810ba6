package config

import "github.com/dmitrymomot/buildlocale/pkg/file"

// Env holds runtime settings read from the environment.
type Env struct {
	Environment string `env:"ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL"`
	LogFormat   string `env:"LOG_FORMAT"`
	S3          S3     `envPrefix:"S3_"`
}

// S3 holds credentials for publishing bundles to a bucket.
type S3 struct {
	Bucket         string `env:"BUCKET"`
	Region         string `env:"REGION" envDefault:"us-east-1"`
	AccessKeyID    string `env:"ACCESS_KEY_ID"`
	SecretKey      string `env:"SECRET_KEY"`
	Endpoint       string `env:"ENDPOINT"`
	Prefix         string `env:"PREFIX"`
	ForcePathStyle bool   `env:"FORCE_PATH_STYLE" envDefault:"false"`
}

// StorageConfig converts the settings into a file.S3Config.
func (s S3) StorageConfig() file.S3Config {
	return file.S3Config{
		Bucket:         s.Bucket,
		Region:         s.Region,
		AccessKeyID:    s.AccessKeyID,
		SecretKey:      s.SecretKey,
		Endpoint:       s.Endpoint,
		Prefix:         s.Prefix,
		ForcePathStyle: s.ForcePathStyle,
	}
}
