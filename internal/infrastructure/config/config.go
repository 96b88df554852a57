package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort        = "8080"
	defaultEnv         = "production"
	defaultAcquirerID  = "464748"
	defaultHTTPTimeout = 60 * time.Second
)

// Config is read from the environment (a .env file is loaded by godotenv/autoload
// in cmd/api).
//
// Supported env vars:
//   - PORT (default: 8080)
//   - APP_ENV (default: production; "development" switches to a console logger)
//   - FAC_MERCHANT_ID, FAC_PASSWORD: processor credentials
//   - FAC_ACQUIRER_ID (default: 464748)
//   - FAC_LIVE (default: false, i.e. sandbox)
//   - FAC_HTTP_TIMEOUT (default: 60s)
//   - PAYMENT_GATEWAY_MOCK / FAC_MOCK (default: off): approve charges locally instead of calling FAC
type Config struct {
	Port string
	Env  string
	FAC  FACConfig
}

type FACConfig struct {
	MerchantID  string
	Password    string
	AcquirerID  string
	Live        bool
	HTTPTimeout time.Duration
	Mock        bool
}

func Load() Config {
	return Config{
		Port: getenvDefault("PORT", defaultPort),
		Env:  getenvDefault("APP_ENV", defaultEnv),
		FAC: FACConfig{
			MerchantID:  os.Getenv("FAC_MERCHANT_ID"),
			Password:    os.Getenv("FAC_PASSWORD"),
			AcquirerID:  getenvDefault("FAC_ACQUIRER_ID", defaultAcquirerID),
			Live:        getenvBool("FAC_LIVE", false),
			HTTPTimeout: getenvDuration("FAC_HTTP_TIMEOUT", defaultHTTPTimeout),
			Mock:        isPaymentGatewayMockEnabled(),
		},
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "FAC_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
