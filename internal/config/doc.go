// Package config provides configuration management for the opensync CLI.
//
// This package handles loading and validating opensync's own configuration
// file. It is distinct from the tool configs the sync engine reads and
// writes; those are described by the target catalog.
//
// # Configuration File
//
// The default configuration file location is ~/.config/opensync/config.yaml.
// The configuration file uses YAML format with the following structure:
//
//	version: 1
//	default_scope: global
//	registry_url: https://registry.modelcontextprotocol.io/v0.1
//	backup:
//	  enabled: true
//	  retention: 10
//	disabled_targets:
//	  - antigravity_global
//	target_paths:
//	  cursor_global: ~/work/.cursor/mcp.json
//
// # Loading Configuration
//
// Call [Init] once at startup, then [Load] with an optional explicit path:
//
//	config.Init()
//	cfg, err := config.Load("")
//
// An implicit load with no config file present returns defaults; an
// explicit path that does not exist is an error.
//
// Environment variables with the OPENSYNC_ prefix override file values,
// e.g. OPENSYNC_DEFAULT_SCOPE=project.
package config
