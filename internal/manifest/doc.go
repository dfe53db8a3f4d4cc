// Package manifest handles parsing and validation of library manifests:
// YAML files declaring the shared libraries a deployment expects to find
// on its search path, with optional version constraints. Manifests are
// validated against the embedded JSON Schema before use.
package manifest
