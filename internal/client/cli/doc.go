// Package cli implements the interactive terminal client for the
// homeboard backend: a read-eval-print loop over the gateway, the local
// organization store, the file browser and the profile service.
package cli
