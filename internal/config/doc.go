// Package config manages user-level settings stored at ~/.libscout/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the extra search directories consulted by library lookups.
package config
