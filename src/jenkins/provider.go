package jenkins

import (
	"context"
	"time"

	"jobdetails/src/logger"
	"jobdetails/src/provider"
)

// Provider implements provider.Provider for Jenkins
type Provider struct {
	client *Client
	log    logger.Logger
}

// NewProvider creates a Jenkins provider whose single request times out after timeout
func NewProvider(timeout time.Duration, log logger.Logger) *Provider {
	if log == nil {
		log = logger.NewSilentLogger()
	}
	return &Provider{
		client: NewClient(timeout),
		log:    log,
	}
}

// Name returns "jenkins"
func (p *Provider) Name() string {
	return "jenkins"
}

// FetchBuild retrieves the build record and extracts the report fields
func (p *Provider) FetchBuild(ctx context.Context, ref provider.JobRef) (*provider.Build, error) {
	p.log.Debug("GET %s", BuildURL(ref.ServerURL, ref.JobName, ref.BuildID))

	rec, err := p.client.GetBuild(ctx, ref.ServerURL, ref.JobName, ref.BuildID)
	if err != nil {
		return nil, err
	}

	p.log.Debug("decoded build record with %d keys", len(rec))

	return rec.Summary(), nil
}
