// Package config provides configuration loading, merging, and validation
// facilities for the notes server and client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON config file
//  3. Environment variables
//  4. Command-line flags
//
// The main entry points are [GetServerConfig] for the server and
// [GetClientConfig] for client-specific configuration.
package config
