package config

// Default locations
const (
	// DefaultDatabasePath is the default path for the catalog database
	DefaultDatabasePath = "./catalog.db"

	// DefaultAPIPrefix is where the JSON API is mounted
	DefaultAPIPrefix = "/api"

	// DefaultEnvFile is loaded, when present, before reading the environment
	DefaultEnvFile = ".env"

	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)
