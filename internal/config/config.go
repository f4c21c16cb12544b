package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

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
	Redis         Redis         `mapstructure:",squash"`
	Metrics       Metrics       `mapstructure:",squash"`
	SnapshotPrune SnapshotPrune `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	Password        string        `mapstructure:"database_password"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret   string        `mapstructure:"auth_secret"`
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

// Redis é opcional. Quando Addr está vazio a limpeza usa apenas a trava local do processo.
type Redis struct {
	Addr     string `mapstructure:"redis_addr"`
	Password string `mapstructure:"redis_password"`
	DB       int    `mapstructure:"redis_db"`
}

type Metrics struct {
	QueryTimeout       time.Duration `mapstructure:"metrics_query_timeout"`
	PruneOnRead        bool          `mapstructure:"metrics_prune_on_read"`
	PruneOnReadTimeout time.Duration `mapstructure:"metrics_prune_on_read_timeout"`
}

type SnapshotPrune struct {
	CronSchedule   string        `mapstructure:"prune_cron"`
	Enabled        bool          `mapstructure:"prune_enabled"`
	RetentionCount int           `mapstructure:"prune_retention_count"`
	MinInterval    time.Duration `mapstructure:"prune_min_interval"`
	BatchSize      int           `mapstructure:"prune_batch_size"`
	BatchPause     time.Duration `mapstructure:"prune_batch_pause"`
	LockTTL        time.Duration `mapstructure:"prune_lock_ttl"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/campaign_metrics?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 20)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("AUTH_SECRET", "your_secret_key") // ONLY LOCAL
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("METRICS_QUERY_TIMEOUT", "15s")
	viper.SetDefault("METRICS_PRUNE_ON_READ", false)
	viper.SetDefault("METRICS_PRUNE_ON_READ_TIMEOUT", "30s")

	// Defaults para limpeza de snapshots substituídos
	viper.SetDefault("PRUNE_CRON", "*/30 * * * *")   // A cada 30 minutos
	viper.SetDefault("PRUNE_ENABLED", false)         // Habilitar limpeza agendada
	viper.SetDefault("PRUNE_RETENTION_COUNT", 2)     // Mantém os 2 últimos snapshots por conta/dia
	viper.SetDefault("PRUNE_MIN_INTERVAL", "5m")     // Intervalo mínimo entre execuções não forçadas
	viper.SetDefault("PRUNE_BATCH_SIZE", 100)        // IDs por DELETE
	viper.SetDefault("PRUNE_BATCH_PAUSE", "100ms")   // Pausa entre lotes
	viper.SetDefault("PRUNE_LOCK_TTL", "10m")        // Validade da trava distribuída

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
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

	if err := config.Validate(); err != nil {
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

// Validate verifica combinações de configuração que quebrariam a limpeza ou as consultas
func (c *Config) Validate() error {
	if c.SnapshotPrune.RetentionCount < 1 {
		return fmt.Errorf("PRUNE_RETENTION_COUNT deve ser maior ou igual a 1, recebido %d", c.SnapshotPrune.RetentionCount)
	}

	if c.SnapshotPrune.BatchSize < 1 {
		return fmt.Errorf("PRUNE_BATCH_SIZE deve ser maior ou igual a 1, recebido %d", c.SnapshotPrune.BatchSize)
	}

	if c.Metrics.QueryTimeout <= 0 {
		return fmt.Errorf("METRICS_QUERY_TIMEOUT deve ser positivo")
	}

	return nil
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
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
