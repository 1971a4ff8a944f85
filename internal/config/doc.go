// Package config manages application configuration for the Jobly API.
//
// Configuration is read from environment variables. An optional .env file is
// loaded first (github.com/joho/godotenv); variables already present in the
// environment win over the file.
//
//	cfg, err := config.Load()
//	if err == nil {
//	    err = cfg.Validate()
//	}
//
// # Configuration Groups
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS, log level)
//   - DatabaseConfig: PostgreSQL URL, pool bounds, migrate-on-start
//   - JWTConfig: key paths, issuer and token lifetime
//
// # Environment Variables
//
//	SERVER_PORT            - HTTP server port (default: 8080)
//	SERVER_ENV             - development | production | test
//	LOG_LEVEL              - debug | info | warn | error
//	DATABASE_URL           - PostgreSQL connection URL
//	DB_MAX_CONNS           - pool size (default: 10)
//	DB_MIGRATE_ON_START    - apply embedded migrations at boot (default: true)
//	JWT_PUBLIC_KEY_PATH    - PEM public key used to verify tokens
//	JWT_PRIVATE_KEY_PATH   - PEM private key, only needed by cmd/admin-token
//
// Validate reports every problem at once, joined with errors.Join.
package config
