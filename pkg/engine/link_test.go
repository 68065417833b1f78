package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akashnaireruvattu0611/springer-capital-data-engineer-test/pkg/schema"
)

func TestLink(t *testing.T) {
	t.Run("left joins preserve the event row count", func(t *testing.T) {
		in := LinkInputs{
			Referrals: []schema.ReferralEvent{
				{ReferralID: "R1", ReferrerID: "U1", RefereeID: "U2"},
				{ReferralID: "R2", ReferrerID: "U3", RefereeID: "U4"},
			},
		}
		records, err := Link(in)
		require.NoError(t, err)
		require.Len(t, records, 2)
		// No matches anywhere: all joined fields stay nil.
		assert.Nil(t, records[0].ReferralDetailsID)
		assert.Nil(t, records[0].ReferralStatus)
		assert.Nil(t, records[0].TransactionIDFinal)
		assert.False(t, records[0].IsRewardGrantedAny)
	})

	t.Run("duplicate referral_id is a defect, not a silent merge", func(t *testing.T) {
		in := LinkInputs{
			Referrals: []schema.ReferralEvent{
				{ReferralID: "R1"},
				{ReferralID: "R1"},
			},
		}
		_, err := Link(in)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate referral_id")
	})

	t.Run("latest log carries details id and transaction fallback", func(t *testing.T) {
		at := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
		in := LinkInputs{
			Referrals: []schema.ReferralEvent{
				{ReferralID: "R1"}, // no transaction id of its own
			},
			LatestLogs: map[string]schema.ReferralLogEntry{
				"R1": {ID: 42, UserReferralID: "R1", CreatedAt: &at, SourceTransactionID: sp("T9")},
			},
			Transactions: []schema.Transaction{
				{TransactionID: "T9", Status: sp("paid")},
			},
		}
		records, err := Link(in)
		require.NoError(t, err)
		rec := records[0]
		require.NotNil(t, rec.ReferralDetailsID)
		assert.Equal(t, int64(42), *rec.ReferralDetailsID)
		require.NotNil(t, rec.TransactionIDFinal)
		assert.Equal(t, "T9", *rec.TransactionIDFinal)
		require.NotNil(t, rec.TransactionStatus)
		assert.Equal(t, "paid", *rec.TransactionStatus)
	})

	t.Run("event's own transaction id wins over the log's", func(t *testing.T) {
		in := LinkInputs{
			Referrals: []schema.ReferralEvent{
				{ReferralID: "R1", TransactionID: sp("T1")},
			},
			LatestLogs: map[string]schema.ReferralLogEntry{
				"R1": {ID: 1, UserReferralID: "R1", SourceTransactionID: sp("T9")},
			},
		}
		records, err := Link(in)
		require.NoError(t, err)
		assert.Equal(t, "T1", *records[0].TransactionIDFinal)
	})

	t.Run("referee snapshot fills gaps but never overwrites", func(t *testing.T) {
		in := LinkInputs{
			Referrals: []schema.ReferralEvent{
				{ReferralID: "R1", RefereeID: "U2", RefereeName: sp("from event"), RefereePhone: nil},
			},
			LatestUsers: map[string]schema.UserSnapshot{
				"U2": {UserID: "U2", Name: sp("from snapshot"), PhoneNumber: sp("0813")},
			},
		}
		records, err := Link(in)
		require.NoError(t, err)
		rec := records[0]
		assert.Equal(t, "from event", *rec.RefereeName)
		require.NotNil(t, rec.RefereePhone)
		assert.Equal(t, "0813", *rec.RefereePhone)
	})

	t.Run("reward definition contributes value and day count", func(t *testing.T) {
		in := LinkInputs{
			Referrals: []schema.ReferralEvent{
				{ReferralID: "R1", RewardID: sp("W1")},
				{ReferralID: "R2", RewardID: sp("W2")},
			},
			Rewards: []schema.RewardDefinition{
				{ID: "W1", RewardValue: sp("30 hari")},
				{ID: "W2", RewardValue: sp("no reward")},
			},
		}
		records, err := Link(in)
		require.NoError(t, err)
		require.NotNil(t, records[0].NumRewardDays)
		assert.Equal(t, 30, *records[0].NumRewardDays)
		assert.Nil(t, records[1].NumRewardDays)
		assert.Equal(t, "no reward", *records[1].RewardValue)
	})
}
