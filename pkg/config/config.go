package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa a configuração da aplicação (leitura via Viper de env e opcionalmente arquivo).
type Config struct {
	App  AppConfig
	API  APIConfig
	Stub StubConfig
}

// AppConfig configuração geral.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// APIConfig acesso à API EcoGest.
type APIConfig struct {
	BaseURL  string // ex: https://api.ecogest.example.com
	Timeout  int    // segundos; timeout do cliente HTTP (sem retries)
	Username string // credenciais do POST /login (opcional; a CLI também aceita flags)
	Password string
}

// StubConfig configuração do servidor stub local (desenvolvimento e testes de integração).
type StubConfig struct {
	Host          string
	Port          int
	JWTSecret     string
	JWTExpiration int // minutos
	JWTIssuer     string
}

// Addr devolve o endereço de escuta do stub (host:port).
func (c StubConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lê a configuração de variáveis de ambiente (e opcionalmente de arquivo).
// As env vars têm prioridade. Nomes esperados: APP_ENV, API_BASE_URL, STUB_PORT, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: arquivo de configuração (.env ou config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos erro se não existir

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos erro se não existir

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "ecogest"),
		},
		API: APIConfig{
			BaseURL:  getString(v, "API_BASE_URL", "http://localhost:8787"),
			Timeout:  getInt(v, "API_TIMEOUT", 30),
			Username: getString(v, "API_USERNAME", ""),
			Password: getString(v, "API_PASSWORD", ""),
		},
		Stub: StubConfig{
			Host:          getString(v, "STUB_HOST", "0.0.0.0"),
			Port:          getInt(v, "STUB_PORT", 8787),
			JWTSecret:     getString(v, "STUB_JWT_SECRET", "ecogest-dev-secret"),
			JWTExpiration: getInt(v, "STUB_JWT_EXPIRATION", 480),
			JWTIssuer:     getString(v, "STUB_JWT_ISSUER", "ecogest-stub"),
		},
	}

	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("config: API_BASE_URL vazio")
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "ecogest")
	v.SetDefault("API_TIMEOUT", 30)
	v.SetDefault("STUB_PORT", 8787)
}

func getString(v *viper.Viper, key, fallback string) string {
	if s := v.GetString(key); s != "" {
		return s
	}
	return fallback
}

func getInt(v *viper.Viper, key string, fallback int) int {
	if n := v.GetInt(key); n != 0 {
		return n
	}
	return fallback
}
