package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/degenerous-dao/potentials-staking/internal/domain"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug       bool   `mapstructure:"debug"`
	SentryDSN   string `mapstructure:"sentry_dsn" validate:"omitempty,url"`
	Environment string `mapstructure:"environment"`
}

// ChainConfig holds the RPC endpoint and contract addresses
type ChainConfig struct {
	RPCURL            string `mapstructure:"rpc_url" validate:"required,url"`
	ChainID           int64  `mapstructure:"chain_id" validate:"gt=0"`
	PotentialsAddress string `mapstructure:"potentials_address" validate:"required,eth_addr"`
	StakingAddress    string `mapstructure:"staking_address" validate:"required,eth_addr"`
	MulticallAddress  string `mapstructure:"multicall_address" validate:"required,eth_addr"`
}

// Chain returns the CAIP-2 identifier of the configured chain
func (c ChainConfig) Chain() domain.Chain {
	return domain.ChainFromID(c.ChainID)
}

// IndexerConfig holds HyperIndex configuration
type IndexerConfig struct {
	GraphQLEndpoint string        `mapstructure:"graphql_endpoint" validate:"required,url"`
	HTTPTimeout     time.Duration `mapstructure:"http_timeout" validate:"gte=0"`
}

// PointsConfig holds the points emission settings
type PointsConfig struct {
	WeeklyEmission float64 `mapstructure:"weekly_emission" validate:"gte=0"`
}

// ScanConfig holds ownership discovery settings
type ScanConfig struct {
	TotalSupply int           `mapstructure:"total_supply" validate:"gte=0"`
	BatchSize   int           `mapstructure:"batch_size" validate:"gt=0"`
	BatchDelay  time.Duration `mapstructure:"batch_delay" validate:"gte=0"`
}

// TransactionConfig holds receipt polling settings
type TransactionConfig struct {
	PollInterval   time.Duration `mapstructure:"poll_interval" validate:"gt=0"`
	ConfirmTimeout time.Duration `mapstructure:"confirm_timeout" validate:"gte=0"`
}

// CacheConfig holds read cache settings
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl" validate:"gte=0"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string          `mapstructure:"host"`
	Port         int             `mapstructure:"port" validate:"gt=0,lte=65535"`
	ReadTimeout  int             `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int             `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int             `mapstructure:"idle_timeout"`  // in seconds
	CORSOrigins  []string        `mapstructure:"cors_origins"`
	RateLimit    RateLimitConfig `mapstructure:"rate_limit"`
}

// RateLimitConfig throttles API requests per client IP. Zero requests_per_second disables it.
type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second" validate:"gte=0"`
	Burst             int     `mapstructure:"burst" validate:"gte=0"`
}

// WalletConfig selects the signer used by the CLI. A private key wins over a keystore.
type WalletConfig struct {
	PrivateKey         string `mapstructure:"private_key"`
	KeystoreDir        string `mapstructure:"keystore_dir"`
	KeystoreAddress    string `mapstructure:"keystore_address" validate:"omitempty,eth_addr"`
	KeystorePassphrase string `mapstructure:"keystore_passphrase"`
}

// PortalConfig holds what every entry point needs to reach the chain and the indexer
type PortalConfig struct {
	BaseConfig  `mapstructure:",squash"`
	Chain       ChainConfig       `mapstructure:"chain"`
	Indexer     IndexerConfig     `mapstructure:"indexer"`
	Points      PointsConfig      `mapstructure:"points"`
	Scan        ScanConfig        `mapstructure:"scan"`
	Transaction TransactionConfig `mapstructure:"transaction"`
	Cache       CacheConfig       `mapstructure:"cache"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	PortalConfig `mapstructure:",squash"`
	Server       ServerConfig `mapstructure:"server"`
}

// CLIConfig holds configuration for stakectl
type CLIConfig struct {
	PortalConfig `mapstructure:",squash"`
	Wallet       WalletConfig `mapstructure:"wallet"`
}

// legacyEnvVars maps config keys to the environment names the web build used
var legacyEnvVars = map[string]string{
	"chain.rpc_url":            "PUBLIC_RPC_URL",
	"chain.chain_id":           "PUBLIC_CHAIN_ID",
	"chain.potentials_address": "PUBLIC_POTENTIALS_ADDRESS",
	"chain.staking_address":    "PUBLIC_STAKING_ADDRESS",
	"indexer.graphql_endpoint": "PUBLIC_GRAPHQL_ENDPOINT",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their config key
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("mapstructure"), ",")
		if name == "" || name == "-" {
			return ""
		}
		return name
	})
	return v
}

// LoadAPIConfig loads and validates configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("staking-api", configFile, envPath)
	setPortalDefaults(v)

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("server.rate_limit.requests_per_second", 10)
	v.SetDefault("server.rate_limit.burst", 20)

	var config APIConfig
	if err := load(v, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadCLIConfig loads and validates configuration for stakectl
func LoadCLIConfig(configFile string, envPath string) (*CLIConfig, error) {
	v := configureViper("stakectl", configFile, envPath)
	setPortalDefaults(v)

	var config CLIConfig
	if err := load(v, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func setPortalDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("environment", "development")
	v.SetDefault("chain.multicall_address", domain.MULTICALL3_ADDRESS)
	v.SetDefault("indexer.http_timeout", "15s")
	v.SetDefault("points.weekly_emission", domain.DEFAULT_WEEKLY_POINTS)
	v.SetDefault("scan.total_supply", domain.DEFAULT_TOTAL_SUPPLY)
	v.SetDefault("scan.batch_size", domain.DEFAULT_BATCH_SIZE)
	v.SetDefault("scan.batch_delay", domain.DEFAULT_BATCH_DELAY.String())
	v.SetDefault("transaction.poll_interval", "2s")
	v.SetDefault("transaction.confirm_timeout", "5m")
	v.SetDefault("cache.ttl", "15s")
}

// load reads the optional config file, unmarshals into config and validates it
func load(v *viper.Viper, config any) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, use environment variables
	}

	if err := v.Unmarshal(config); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return Validate(config)
}

// Validate checks config against its validate tags and reports every failing key
func Validate(config any) error {
	err := validate.Struct(config)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	problems := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		problems = append(problems, fmt.Sprintf("%s: %s", configKey(fe.Namespace()), describe(fe)))
	}
	return fmt.Errorf("%w: invalid configuration: %s", domain.ErrInvalidArgument, strings.Join(problems, "; "))
}

// configKey turns a validator namespace such as "APIConfig.PortalConfig.chain.rpc_url" into "chain.rpc_url".
// Type and squashed struct names are the only segments that start upper case.
func configKey(namespace string) string {
	var parts []string
	for _, part := range strings.Split(namespace, ".") {
		if part == "" || unicode.IsUpper([]rune(part)[0]) {
			continue
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, ".")
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "url":
		return "must be a URL"
	case "eth_addr":
		return "must be a 0x-prefixed 20 byte hex address"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	default:
		return "failed " + fe.Tag()
	}
}

func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix("STAKING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		"environment",
		// Chain
		"chain.rpc_url",
		"chain.chain_id",
		"chain.potentials_address",
		"chain.staking_address",
		"chain.multicall_address",
		// Indexer
		"indexer.graphql_endpoint",
		"indexer.http_timeout",
		// Points
		"points.weekly_emission",
		// Ownership scan
		"scan.total_supply",
		"scan.batch_size",
		"scan.batch_delay",
		// Transactions
		"transaction.poll_interval",
		"transaction.confirm_timeout",
		// Cache
		"cache.ttl",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.cors_origins",
		"server.rate_limit.requests_per_second",
		"server.rate_limit.burst",
		// Wallet
		"wallet.private_key",
		"wallet.keystore_dir",
		"wallet.keystore_address",
		"wallet.keystore_passphrase",
	}

	for _, key := range keys {
		envName := "STAKING_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if legacy, ok := legacyEnvVars[key]; ok {
			// the prefixed name wins when both are set
			_ = v.BindEnv(key, envName, legacy)
			continue
		}
		_ = v.BindEnv(key, envName)
	}
}

func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot moves to the nearest ancestor holding a config/ directory so
// the default search paths resolve when a binary runs from a subdirectory
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}
