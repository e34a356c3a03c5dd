// Package config loads runtime configuration for the linkdash client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. LINKDASH_* environment variables.
//  4. Command-line flags, which override everything above.
//
// Supported flags
//
//	-a string   API base URL (default http://localhost:5000/api)
//	-d string   session database path
//	-i int      health check interval (seconds)
//	-t int      request timeout (seconds)
//	-l string   log level
//	-f string   log format
//
// # JSON schema
//
//	{
//	  "api_base_url": "http://localhost:5000/api",
//	  "session_db_path": "session.db",
//	  "health_check_interval": "3s",
//	  "request_timeout": "10s",
//	  "log_level": "info",
//	  "log_format": "text"
//	}
//
// # Environment
//
//	LINKDASH_API_URL, LINKDASH_SESSION_DB, LINKDASH_HEALTH_INTERVAL,
//	LINKDASH_REQUEST_TIMEOUT, LINKDASH_LOG_LEVEL, LINKDASH_LOG_FORMAT
package config
