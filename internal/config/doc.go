// Package config provides configuration loading, merging, and validation
// facilities for the outreach client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. A .env file (loaded into the process environment)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// Zero values left after merging are filled from [Defaults]. The main entry
// point is [GetClientConfig].
package config
