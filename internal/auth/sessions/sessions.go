// Package sessions serves the fixed sample session records shown on the
// security dashboard. Sessions are not tracked live; the provider returns
// deterministic data keyed by account so repeated calls stay stable.
package sessions

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/manas360online-source/authentication-system/internal/auth/domain"
)

type Provider interface {
	ListByAccount(ctx context.Context, accountID string) ([]domain.SessionRecord, error)
}

type SampleProvider struct {
	// MockIP generates the synthetic origin addresses.
	MockIP func() string
}

// NewSampleProvider builds a provider; a nil mockIP falls back to random
// synthetic addresses.
func NewSampleProvider(mockIP func() string) *SampleProvider {
	if mockIP == nil {
		mockIP = func() string {
			return fmt.Sprintf("%d.%d.%d.1", rand.Intn(255), rand.Intn(255), rand.Intn(255))
		}
	}
	return &SampleProvider{MockIP: mockIP}
}

func (p *SampleProvider) ListByAccount(ctx context.Context, accountID string) ([]domain.SessionRecord, error) {
	return []domain.SessionRecord{
		{
			ID:         "sess_1",
			AccountID:  accountID,
			Device:     "Chrome / Windows 11",
			IPAddress:  p.MockIP(),
			Location:   "New York, US",
			LastActive: "Just now",
			Current:    true,
		},
		{
			ID:         "sess_2",
			AccountID:  accountID,
			Device:     "Safari / iPhone 13",
			IPAddress:  p.MockIP(),
			Location:   "New Jersey, US",
			LastActive: "2 days ago",
			Current:    false,
		},
	}, nil
}
