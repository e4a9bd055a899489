// Package config manages user-level settings stored at ~/.ytplugin/config.yaml.
// Settings can be overridden with YTPLUGIN_-prefixed environment variables;
// the automation endpoint and key also honor NOVFLUX_API_BASE and
// NOVFLUX_API_KEY.
package config
