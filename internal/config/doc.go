// Package config loads the tool configuration from environment variables
// (prefix DQ) merged with an optional YAML file, and resolves the filesystem
// paths used for data and logs.
package config
