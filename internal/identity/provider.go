package identity

import (
	"context"
	"fmt"
)

const ProviderMock = "mock"

// Session is the handle an identity provider returns for a verification
// attempt.
type Session struct {
	ID     string
	URL    string
	Status string
	Mock   bool
}

// Provider starts identity verification for a client. clientID is the
// registry id, usable as the provider's reference. A real provider replaces
// the mock without touching the workflow.
type Provider interface {
	Name() string

	CreateSession(
		ctx context.Context,
		clientID uint,
		email string,
		name string,
	) (*Session, error)
}

func NewProvider(name string) (Provider, error) {
	switch name {
	case ProviderMock:
		return MockProvider{}, nil
	default:
		return nil, fmt.Errorf("unknown verification provider %q", name)
	}
}

// MockProvider never leaves the process. Sessions are completed through the
// complete-mock endpoint.
type MockProvider struct{}

func (MockProvider) Name() string {
	return ProviderMock
}

func (MockProvider) CreateSession(
	ctx context.Context,
	clientID uint,
	_ string,
	_ string,
) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &Session{
		ID:     fmt.Sprintf("vs_mock_%d", clientID),
		URL:    "javascript:void(0)",
		Status: "created",
		Mock:   true,
	}, nil
}

var _ Provider = MockProvider{}
