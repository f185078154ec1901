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

const (
	DatasetSourcePostgres = "postgres"
	DatasetSourceFile     = "file"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Redis        Redis        `mapstructure:",squash"`
	Dataset      Dataset      `mapstructure:",squash"`
	Analytics    Analytics    `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	SnapshotSync SnapshotSync `mapstructure:",squash"`
	SecretKey    string       `mapstructure:"secret_key"`
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

type Redis struct {
	Enabled  bool          `mapstructure:"redis_enabled"`
	Addr     string        `mapstructure:"redis_addr"`
	Password string        `mapstructure:"redis_password"`
	DB       int           `mapstructure:"redis_db"`
	CacheTTL time.Duration `mapstructure:"redis_cache_ttl"`
}

// Dataset define de onde o conjunto de linhas é carregado
type Dataset struct {
	Source          string `mapstructure:"dataset_source"` // postgres ou file
	Path            string `mapstructure:"dataset_path"`
	ImportBatchSize int    `mapstructure:"dataset_import_batch_size"`
}

type Analytics struct {
	DominanceThreshold float64 `mapstructure:"analytics_dominance_threshold"`
	TopDecileFraction  float64 `mapstructure:"analytics_top_decile_fraction"`
	ParallelReducers   bool    `mapstructure:"analytics_parallel_reducers"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Auth guarda os hashes bcrypt dos códigos de acesso e a validade do token emitido
type Auth struct {
	ViewerAccessCodeHash string        `mapstructure:"auth_viewer_access_code_hash"`
	AdminAccessCodeHash  string        `mapstructure:"auth_admin_access_code_hash"`
	TokenTTL             time.Duration `mapstructure:"auth_token_ttl"`
}

type SnapshotSync struct {
	CronSchedule      string `mapstructure:"snapshot_sync_cron"`
	MaxConcurrentJobs int    `mapstructure:"snapshot_sync_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"snapshot_sync_enabled"`
	MonthLookBack     int    `mapstructure:"snapshot_sync_month_lookback"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/market_intelligence?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("REDIS_ENABLED", false)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_CACHE_TTL", "15m")

	viper.SetDefault("DATASET_SOURCE", DatasetSourcePostgres)
	viper.SetDefault("DATASET_PATH", "data/dataset.json")
	viper.SetDefault("DATASET_IMPORT_BATCH_SIZE", 500)

	// Limites do motor de análise
	viper.SetDefault("ANALYTICS_DOMINANCE_THRESHOLD", 0.5) // Marca com mais de 50% dos serviços do salão
	viper.SetDefault("ANALYTICS_TOP_DECILE_FRACTION", 0.1) // 10% melhores salões de cada porte
	viper.SetDefault("ANALYTICS_PARALLEL_REDUCERS", false) // Redutores em goroutines

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_VIEWER_ACCESS_CODE_HASH", "")
	viper.SetDefault("AUTH_ADMIN_ACCESS_CODE_HASH", "")
	viper.SetDefault("AUTH_TOKEN_TTL", "12h")

	// Defaults para reconstrução dos snapshots mensais
	viper.SetDefault("SNAPSHOT_SYNC_CRON", "0 5 1 * *")      // No primeiro dia de cada mês às 5h da manhã
	viper.SetDefault("SNAPSHOT_SYNC_MAX_CONCURRENT_JOBS", 3) // 3 meses reconstruídos em paralelo
	viper.SetDefault("SNAPSHOT_SYNC_ENABLED", false)
	viper.SetDefault("SNAPSHOT_SYNC_MONTH_LOOKBACK", 0) // 0 = todos os meses

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

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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

// Validate verifica combinações de configuração que impediriam o serviço de subir
func (c *Config) Validate() error {
	switch c.Dataset.Source {
	case DatasetSourcePostgres:
	case DatasetSourceFile:
		if c.Dataset.Path == "" {
			return fmt.Errorf("DATASET_PATH é obrigatório quando DATASET_SOURCE=%s", DatasetSourceFile)
		}
	default:
		return fmt.Errorf("DATASET_SOURCE inválido: %q", c.Dataset.Source)
	}

	if c.Analytics.DominanceThreshold <= 0 || c.Analytics.DominanceThreshold > 1 {
		return fmt.Errorf("ANALYTICS_DOMINANCE_THRESHOLD deve estar entre 0 e 1: %v", c.Analytics.DominanceThreshold)
	}

	if c.Analytics.TopDecileFraction <= 0 || c.Analytics.TopDecileFraction > 1 {
		return fmt.Errorf("ANALYTICS_TOP_DECILE_FRACTION deve estar entre 0 e 1: %v", c.Analytics.TopDecileFraction)
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

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
