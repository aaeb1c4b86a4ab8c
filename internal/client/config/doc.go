// Package config loads runtime configuration for the GEVP console and web
// dashboard.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c / -config or $GEVP_CONFIG
//     (see parseFile). Files ending in .yaml or .yml are read as YAML,
//     everything else as JSON.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   backend API base URL
//	-d string   path of the local SQLite database
//	-w string   listen address of the web dashboard
//	-l string   log level (debug, info, warn, error)
//
// # File schema
//
//	{
//	  "api_base_url": "http://localhost:8000",
//	  "database_path": "gevp.db",
//	  "web_addr": "127.0.0.1:8080",
//	  "log_level": "info"
//	}
//
// The YAML form uses the same keys. Keys missing from the file keep their
// default values.
package config
