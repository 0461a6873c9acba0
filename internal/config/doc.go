// Package config loads and merges the application configuration for the
// logilink client and its dev stub server.
//
// Configuration is assembled from three sources, in priority order
// (first non-zero value wins): environment variables, command-line flags,
// and an optional JSON file whose path comes from the first two sources.
// The merged [StructuredConfig] is then projected into per-binary views:
// [ClientConfig] for the interactive client and [DevServerConfig] for the
// stub server. Each view applies its own defaults and validation.
package config
