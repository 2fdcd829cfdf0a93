package config

import (
	"github.com/kelseyhightower/envconfig"
)

// App holds every environment-provided setting the server needs.
type App struct {
	// DB
	MongoURI string `envconfig:"MONGOURI" required:"true"`
	// Auth
	AccessTokenSecret string `envconfig:"ACCESS_TOKEN_SECRET" required:"true"`
	// Payment processor
	PaymentSecretKey string `envconfig:"PAYMENT_SECRET_KEY" required:"true"`
	// Email provider
	EmailPrivateKey string `envconfig:"EMAIL_PRIVATE_KEY"`
	EmailDomain     string `envconfig:"EMAIL_DOMAIN"`
	EmailSender     string `envconfig:"EMAIL_SENDER" default:"billalcoom@gmail.com"`
	// Network
	Port string `envconfig:"PORT" default:"5000"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
