package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Dataset       Dataset       `mapstructure:",squash"`
	Report        Report        `mapstructure:",squash"`
	DatasetReload DatasetReload `mapstructure:",squash"`
	Cors          Cors          `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Dataset aponta para as duas fontes tabulares carregadas na inicialização
type Dataset struct {
	ProductsFile string `mapstructure:"products_file"`
	SalesFile    string `mapstructure:"sales_file"`
	Delimiter    string `mapstructure:"dataset_delimiter"`
	Sheet        string `mapstructure:"dataset_sheet"`
	DateFormat   string `mapstructure:"dataset_date_format"`
}

// Report contém os parâmetros dos agregados do painel
type Report struct {
	Title               string  `mapstructure:"dashboard_title"`
	TopSellersLimit     int     `mapstructure:"top_sellers_limit"`
	PriceHistogramStart float64 `mapstructure:"price_histogram_start"`
	PriceHistogramEnd   float64 `mapstructure:"price_histogram_end"`
	PriceBinWidth       float64 `mapstructure:"price_histogram_bin_width"`
	BubbleMaxMarkerSize float64 `mapstructure:"bubble_max_marker_size"`
}

type DatasetReload struct {
	CronSchedule string `mapstructure:"dataset_reload_cron"`
	Enabled      bool   `mapstructure:"dataset_reload_enabled"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8051)

	viper.SetDefault("PRODUCTS_FILE", "Products.csv")
	viper.SetDefault("SALES_FILE", "Sales.csv")
	viper.SetDefault("DATASET_DELIMITER", ",")
	viper.SetDefault("DATASET_SHEET", "")                 // Vazio = primeira planilha do .xlsx
	viper.SetDefault("DATASET_DATE_FORMAT", "2/1/2006") // dia/mês/ano

	viper.SetDefault("DASHBOARD_TITLE", "Walmart Sales Dashboard")
	viper.SetDefault("TOP_SELLERS_LIMIT", 5)
	viper.SetDefault("PRICE_HISTOGRAM_START", 0)
	viper.SetDefault("PRICE_HISTOGRAM_END", 25)
	viper.SetDefault("PRICE_HISTOGRAM_BIN_WIDTH", 0.5)
	viper.SetDefault("BUBBLE_MAX_MARKER_SIZE", 100)

	viper.SetDefault("DATASET_RELOAD_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("DATASET_RELOAD_ENABLED", false)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8051")

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis de ambiente e valores padrão (viper não conseguiu ler .env):", err)
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

	config.normalize()

	return config, nil
}

// normalize corrige valores que o viper entrega vazios ou inválidos
func (c *Config) normalize() {
	if c.Dataset.Delimiter == "" {
		c.Dataset.Delimiter = ","
	}
	if c.Dataset.DateFormat == "" {
		c.Dataset.DateFormat = "2/1/2006"
	}
	if c.Report.TopSellersLimit <= 0 {
		c.Report.TopSellersLimit = 5
	}
	if c.Report.PriceBinWidth <= 0 {
		c.Report.PriceBinWidth = 0.5
	}
	if c.Report.PriceHistogramEnd <= c.Report.PriceHistogramStart {
		c.Report.PriceHistogramEnd = c.Report.PriceHistogramStart + 25
	}
	if c.Report.BubbleMaxMarkerSize <= 0 {
		c.Report.BubbleMaxMarkerSize = 100
	}

	origins := make([]string, 0, len(c.Cors.AllowedOrigins))
	for _, origin := range c.Cors.AllowedOrigins {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	c.Cors.AllowedOrigins = origins
}

// IsDevelopment indica se a aplicação roda em ambiente local
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "" || c.App.Env == "development" || c.App.Env == "dev"
}

// loadEnvFile carrega o .env do diretório atual ou de um diretório acima
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

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
