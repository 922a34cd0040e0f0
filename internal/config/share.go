package config

type Share struct {
	TokenRetries int `env:"TOKEN_RETRIES,expand" envDefault:"3"`
}
