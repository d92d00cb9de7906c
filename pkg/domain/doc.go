// Package domain holds the result types produced by the toolkit operations
// and the identifiers shared across packages. The types carry no
// infrastructure concerns so the API, the CLI and tests can all render them.
package domain
