// Package config loads runtime settings for the imgurshot client.
//
// Sources are layered: built-in defaults, then an optional JSON file
// (-c/-config), then command-line flags. Later sources override earlier ones.
package config
