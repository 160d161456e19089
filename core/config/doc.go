// Package config provides configuration management for the ledger reconciler.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Log: Logging level and format (LOG_LEVEL, LOG_FORMAT)
//   - Storage: S3/MinIO credentials used by s3:// locations (STORAGE_ENDPOINT, ...)
//   - Database: SQL connection used by db:// locations (DATABASE_DRIVER, DATABASE_NAME, ...)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Log.Level)
package config
