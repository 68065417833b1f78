package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akashnaireruvattu0611/springer-capital-data-engineer-test/pkg/schema"
)

func tp(t *testing.T, s string) *time.Time {
	t.Helper()
	v, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	u := v.UTC()
	return &u
}

func TestLatestUserSnapshots(t *testing.T) {
	t.Run("highest row id wins per user", func(t *testing.T) {
		name1, name2 := "old name", "new name"
		rows := []schema.UserSnapshot{
			{ID: 5, UserID: "U1", Name: &name2},
			{ID: 1, UserID: "U1", Name: &name1},
			{ID: 2, UserID: "U2"},
		}
		latest := LatestUserSnapshots(rows)
		require.Len(t, latest, 2)
		assert.Equal(t, int64(5), latest["U1"].ID)
		assert.Equal(t, "new name", *latest["U1"].Name)
	})

	t.Run("absent key produces no row", func(t *testing.T) {
		latest := LatestUserSnapshots([]schema.UserSnapshot{{ID: 1, UserID: "U1"}})
		_, ok := latest["U9"]
		assert.False(t, ok)
	})
}

func TestLatestReferralLogs(t *testing.T) {
	t.Run("ordered by creation instant then row id", func(t *testing.T) {
		rows := []schema.ReferralLogEntry{
			{ID: 3, UserReferralID: "R1", CreatedAt: tp(t, "2024-03-01T00:00:00Z")},
			{ID: 1, UserReferralID: "R1", CreatedAt: tp(t, "2024-03-02T00:00:00Z")},
			{ID: 2, UserReferralID: "R1", CreatedAt: tp(t, "2024-03-02T00:00:00Z")},
		}
		latest := LatestReferralLogs(rows)
		require.Len(t, latest, 1)
		assert.Equal(t, int64(2), latest["R1"].ID)
	})

	t.Run("later input row wins an exact tie", func(t *testing.T) {
		at := tp(t, "2024-03-01T00:00:00Z")
		rows := []schema.ReferralLogEntry{
			{ID: 7, UserReferralID: "R1", CreatedAt: at, SourceTransactionID: nil},
			{ID: 7, UserReferralID: "R1", CreatedAt: at, SourceTransactionID: sp("T1")},
		}
		latest := LatestReferralLogs(rows)
		require.NotNil(t, latest["R1"].SourceTransactionID)
		assert.Equal(t, "T1", *latest["R1"].SourceTransactionID)
	})

	t.Run("missing creation instant sorts last", func(t *testing.T) {
		rows := []schema.ReferralLogEntry{
			{ID: 1, UserReferralID: "R1", CreatedAt: nil},
			{ID: 2, UserReferralID: "R1", CreatedAt: tp(t, "2024-03-02T00:00:00Z")},
		}
		latest := LatestReferralLogs(rows)
		assert.Equal(t, int64(1), latest["R1"].ID)
	})
}

func TestRewardGrantAggregates(t *testing.T) {
	rows := []schema.ReferralLogEntry{
		{ID: 1, UserReferralID: "R1", CreatedAt: tp(t, "2024-03-03T00:00:00Z"), IsRewardGranted: true},
		{ID: 2, UserReferralID: "R1", CreatedAt: tp(t, "2024-03-01T00:00:00Z"), IsRewardGranted: true},
		{ID: 3, UserReferralID: "R1", CreatedAt: tp(t, "2024-03-05T00:00:00Z"), IsRewardGranted: false},
		{ID: 4, UserReferralID: "R2", CreatedAt: tp(t, "2024-03-04T00:00:00Z"), IsRewardGranted: false},
	}

	t.Run("earliest granted instant per key", func(t *testing.T) {
		times := RewardGrantTimes(rows)
		require.Contains(t, times, "R1")
		assert.Equal(t, *tp(t, "2024-03-01T00:00:00Z"), times["R1"])
		assert.NotContains(t, times, "R2")
	})

	t.Run("ever-granted is an OR over all rows, not just the latest", func(t *testing.T) {
		ever := EverGranted(rows)
		// The latest R1 row is not granted, but an earlier one is.
		assert.True(t, ever["R1"])
		assert.False(t, ever["R2"])
		assert.False(t, ever["R9"])
	})
}

func TestResolveLatestDeterminism(t *testing.T) {
	// Same input in any order resolves to the same survivor.
	rows := []schema.LeadLogEntry{
		{ID: 1, LeadID: "L1", CreatedAt: tp(t, "2024-01-01T00:00:00Z")},
		{ID: 2, LeadID: "L1", CreatedAt: tp(t, "2024-01-03T00:00:00Z")},
		{ID: 3, LeadID: "L1", CreatedAt: tp(t, "2024-01-02T00:00:00Z")},
	}
	forward := LatestLeadLogs(rows)
	reversed := LatestLeadLogs([]schema.LeadLogEntry{rows[2], rows[1], rows[0]})
	assert.Equal(t, forward["L1"].ID, reversed["L1"].ID)
	assert.Equal(t, int64(2), forward["L1"].ID)
}
