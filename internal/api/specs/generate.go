// Package specs holds the OpenAPI documents of the API and the servers
// generated from them.
package specs

//go:generate go run github.com/ogen-go/ogen/cmd/ogen@v1.14.0 --target v1specs --package v1specs --config ogen.yml --clean v1.yaml
