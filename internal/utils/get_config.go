package utils

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server configuration
	Port           string `yaml:"PORT"`
	PrometheusPort string `yaml:"PROMETHEUS_PORT"`
	AppEnv         string `yaml:"APP_ENV"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// JWT key
	JWTSecret string `yaml:"JWT_SECRET"`

	// Mailing configuration
	AppURL           string `yaml:"APP_URL"`
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// Freshness detection service
	DetectionAPIURL string `yaml:"DETECTION_API_URL"`
}

var config Config

func LoadConfig() {
	// config.yaml wins when present, .env fills the gaps
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %s\n", err)
	}

	file, err := os.ReadFile("config.yaml")
	if err == nil {
		if err := yaml.Unmarshal(file, &config); err != nil {
			log.Printf("Error parsing YAML file: %s\n", err)
		}
	}
}

func GetConfig(key string) string {
	var value string
	switch key {
	case "PORT":
		value = config.Port
	case "PROMETHEUS_PORT":
		value = config.PrometheusPort
	case "APP_ENV":
		value = config.AppEnv
	case "DB_USER":
		value = config.DBUser
	case "DB_NAME":
		value = config.DBName
	case "DB_PASSWORD":
		value = config.DBPassword
	case "DB_PORT":
		value = config.DBPort
	case "DB_HOST":
		value = config.DBHost
	case "JWT_SECRET":
		value = config.JWTSecret
	case "APP_URL":
		value = config.AppURL
	case "SMTP_HOST":
		value = config.SMTPHost
	case "SMTP_PORT":
		value = config.SMTPPort
	case "SMTP_SENDER_NAME":
		value = config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		value = config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		value = config.SMTPAuthPassword
	case "DETECTION_API_URL":
		value = config.DetectionAPIURL
	}
	if value == "" {
		value = os.Getenv(key)
	}
	return value
}
