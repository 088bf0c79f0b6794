package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database"`
	Store    StoreConfig    `mapstructure:"store"    validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	Files    FilesConfig    `mapstructure:"files"    validate:"required"`
	Client   ClientConfig   `mapstructure:"client"   validate:"required"`
	Demo     DemoConfig     `mapstructure:"demo"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// PublicBaseURL prefixes the URLs of uploaded files, e.g. "http://localhost:8000/".
	PublicBaseURL string `mapstructure:"public_base_url" validate:"required,url"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	// URL is required when Store.Driver is "postgres"; Load enforces that.
	URL string `mapstructure:"url" validate:"omitempty,url"`
}

// StoreConfig selects the persistence backend.
type StoreConfig struct {
	Driver string `mapstructure:"driver" validate:"required,oneof=postgres memory"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret                   string `mapstructure:"jwt_secret"                     validate:"required,min=32"`
	TokenLifetimeMinutes        int    `mapstructure:"token_lifetime_minutes"         validate:"required,gt=0"`
	RefreshTokenLifetimeMinutes int    `mapstructure:"refresh_token_lifetime_minutes" validate:"required,gtfield=TokenLifetimeMinutes"`
	BcryptCost                  int    `mapstructure:"bcrypt_cost"                    validate:"required,gte=4,lte=31"`
}

// FilesConfig controls where uploaded files are kept.
type FilesConfig struct {
	Root string `mapstructure:"root" validate:"required"`
	// FS is "os" for the real filesystem or "memory" for an in-process one.
	FS string `mapstructure:"fs" validate:"required,oneof=os memory"`
}

// ClientConfig configures the API clients used by coursectl and the fixtures.
type ClientConfig struct {
	BaseURL        string `mapstructure:"base_url"        validate:"required,url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"required,gt=0"`
	// CoverageService is the key under which request coverage is recorded.
	CoverageService string `mapstructure:"coverage_service" validate:"required"`
}

// DemoConfig holds the listen addresses of the protocol demo servers.
type DemoConfig struct {
	TCPAddr  string `mapstructure:"tcp_addr"  validate:"required,hostname_port"`
	WSAddr   string `mapstructure:"ws_addr"   validate:"required,hostname_port"`
	GRPCAddr string `mapstructure:"grpc_addr" validate:"required"`
}
