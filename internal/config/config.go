package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
	Analytics     Analytics     `mapstructure:",squash"`
	GeneralReport GeneralReport `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	Secret  string `mapstructure:"auth_secret"`
	Enabled bool   `mapstructure:"auth_enabled"`
}

// Analytics são os filtros usados quando a requisição não informa status ou moeda
type Analytics struct {
	DefaultCurrencyCode  string   `mapstructure:"analytics_default_currency_code"`
	DefaultOrderStatuses []string `mapstructure:"analytics_default_order_statuses"`
}

type GeneralReport struct {
	CronSchedule  string   `mapstructure:"general_report_cron"`
	Enabled       bool     `mapstructure:"general_report_enabled"`
	DateLasts     string   `mapstructure:"general_report_date_lasts"`
	CurrencyCode  string   `mapstructure:"general_report_currency_code"`
	OrderStatuses []string `mapstructure:"general_report_order_statuses"`
	TopLimit      int      `mapstructure:"general_report_top_limit"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:9000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/analytics?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_ENABLED", true)

	viper.SetDefault("ANALYTICS_DEFAULT_CURRENCY_CODE", "usd")
	viper.SetDefault("ANALYTICS_DEFAULT_ORDER_STATUSES", "pending,completed")

	// Relatório geral: toda segunda-feira às 7h da manhã, desabilitado por padrão
	viper.SetDefault("GENERAL_REPORT_CRON", "0 7 * * 1")
	viper.SetDefault("GENERAL_REPORT_ENABLED", false)
	viper.SetDefault("GENERAL_REPORT_DATE_LASTS", "last-week")
	viper.SetDefault("GENERAL_REPORT_CURRENCY_CODE", "usd")
	viper.SetDefault("GENERAL_REPORT_ORDER_STATUSES", "pending,completed")
	viper.SetDefault("GENERAL_REPORT_TOP_LIMIT", 5)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
