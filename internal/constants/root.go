package constants

const (
	AppName            = "momentum"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/momentum/momentum.db"
	Version            = "v0.1.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// KeyringConfigValue selects the connection string stored in the OS keyring
	KeyringConfigValue = "keyring"

	// EnvDBConnection overrides the keyring lookup when set
	EnvDBConnection = "MOMENTUM_DB_CONNECTION"

	LogDirName  = "logs"
	LogFileName = "momentum.log"

	// AnalyticsWorkers bounds concurrent per-habit reads
	AnalyticsWorkers = 8
)
