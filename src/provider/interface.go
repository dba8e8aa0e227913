package provider

import (
	"context"
)

// Provider defines the interface for CI server integrations
type Provider interface {
	// Name returns the provider name (e.g., "jenkins")
	Name() string

	// FetchBuild retrieves a build record and extracts its summary fields
	FetchBuild(ctx context.Context, ref JobRef) (*Build, error)
}
