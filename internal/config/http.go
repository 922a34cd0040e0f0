package config

type HTTP struct {
	BaseURL string `env:"BASE_URL,expand" envDefault:"http://localhost:3003"`
	Address string `env:"ADDRESS,expand" envDefault:":3003"`
	CORS    CORS   `envPrefix:"CORS_"`
}

type CORS struct {
	AllowedOrigins []string `env:"ALLOWED_ORIGINS,expand" envDefault:"*"`
}
