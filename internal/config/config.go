package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config содержит конфигурацию сервиса
type Config struct {
	Host             string
	Port             int
	Locale           string
	CurrencySymbol   string
	MaxInitialAmount float64
	MaxContribution  float64
	MaxMonths        int
	MaxRate          float64
	OTELEndpoint     string
	OTELServiceName  string
	LogLevel         string
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() (*Config, error) {
	// Загружаем .env файл, если он существует (игнорируем ошибку)
	_ = godotenv.Load()

	cfg := &Config{
		Host:             getEnvString("HOST", ""),
		Port:             getEnvInt("PORT", 8000),
		Locale:           getEnvString("LOCALE", "ko"),
		CurrencySymbol:   getEnvString("CURRENCY_SYMBOL", "원"),
		MaxInitialAmount: getEnvFloat("MAX_INITIAL_AMOUNT", 1e12),
		MaxContribution:  getEnvFloat("MAX_CONTRIBUTION", 1e10),
		MaxMonths:        getEnvInt("MAX_MONTHS", 1200),
		MaxRate:          getEnvFloat("MAX_RATE", 1000),
		OTELEndpoint:     getEnvString("OTEL_ENDPOINT", ""),
		OTELServiceName:  getEnvString("OTEL_SERVICE_NAME", "savings-calc"),
		LogLevel:         getEnvString("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
