package sessions_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manas360online-source/authentication-system/internal/auth/sessions"
)

func TestSampleProvider_ListByAccount(t *testing.T) {
	provider := sessions.NewSampleProvider(func() string { return "203.0.113.1" })

	records, err := provider.ListByAccount(context.Background(), "acct-1")
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "sess_1", records[0].ID)
	assert.Equal(t, "acct-1", records[0].AccountID)
	assert.True(t, records[0].Current)
	assert.Equal(t, "203.0.113.1", records[0].IPAddress)

	assert.Equal(t, "sess_2", records[1].ID)
	assert.Equal(t, "acct-1", records[1].AccountID)
	assert.False(t, records[1].Current)

	// Repeated calls return the same fixed records for the account.
	again, err := provider.ListByAccount(context.Background(), "acct-1")
	require.NoError(t, err)
	assert.Equal(t, records, again)
}

func TestNewSampleProviderDefaultMockIP(t *testing.T) {
	provider := sessions.NewSampleProvider(nil)

	records, err := provider.ListByAccount(context.Background(), "acct-1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.NotEmpty(t, records[0].IPAddress)
}
