// Package containers starts throwaway Postgres servers for integration tests with testcontainers-go.
//
// Tests using this package carry the "integration" build tag:
//
//	go test -tags=integration ./...
package containers
