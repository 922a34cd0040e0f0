package config

type SMTP struct {
	Enabled  bool   `env:"ENABLED,expand" envDefault:"false"`
	Host     string `env:"HOST,expand" envDefault:"localhost"`
	Port     int    `env:"PORT,expand" envDefault:"587"`
	Username string `env:"USERNAME,expand"`
	Password string `env:"PASSWORD,expand"`
	From     string `env:"FROM,expand" envDefault:"no-reply@localhost"`
}
