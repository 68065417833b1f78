package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akashnaireruvattu0611/springer-capital-data-engineer-test/pkg/engine"
)

func sp(s string) *string { return &s }

func sampleRecord() *engine.JoinedReferralRecord {
	refAt := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)
	txAt := time.Date(2024, 3, 11, 10, 0, 0, 0, time.UTC)
	days := 30
	detailsID := int64(42)
	return &engine.JoinedReferralRecord{
		ReferralID:           "R1",
		ReferralDetailsID:    &detailsID,
		ReferralSource:       sp("User Sign Up"),
		ReferrerID:           "U1",
		RefereeID:            "U2",
		ReferralStatus:       sp("Berhasil"),
		NumRewardDays:        &days,
		TransactionIDFinal:   sp("T1"),
		ReferralAtLocal:      &refAt,
		TransactionAtLocal:   &txAt,
		IsBusinessLogicValid: true,
	}
}

func TestBuildRows(t *testing.T) {
	t.Run("formats local timestamps as naive wall clocks", func(t *testing.T) {
		rows := BuildRows([]*engine.JoinedReferralRecord{sampleRecord()})
		require.Len(t, rows, 1)
		require.NotNil(t, rows[0].ReferralAt)
		assert.Equal(t, "2024-03-10 15:00:00", *rows[0].ReferralAt)
		require.NotNil(t, rows[0].TransactionAt)
		assert.Equal(t, "2024-03-11 10:00:00", *rows[0].TransactionAt)
	})

	t.Run("null fields serialize as empty cells", func(t *testing.T) {
		rec := &engine.JoinedReferralRecord{ReferralID: "R9", ReferrerID: "U1", RefereeID: "U2"}
		rows := BuildRows([]*engine.JoinedReferralRecord{rec})
		cells := rows[0].cells()
		require.Len(t, cells, len(Header))
		assert.Equal(t, "", cells[0])  // referral_details_id
		assert.Equal(t, "R9", cells[1])
		assert.Equal(t, "", cells[13]) // num_reward_days: empty, never zero
		assert.Equal(t, "false", cells[21])
	})
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "referral_validation_report.csv")
	rows := BuildRows([]*engine.JoinedReferralRecord{sampleRecord()})
	require.NoError(t, WriteCSV(path, rows))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	all, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, Header, all[0])
	assert.Equal(t, "42", all[1][0])
	assert.Equal(t, "R1", all[1][1])
	assert.Equal(t, "30", all[1][13])
	assert.Equal(t, "true", all[1][21])
}

func TestWriteParquet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "referral_validation_report.parquet")
	rows := BuildRows([]*engine.JoinedReferralRecord{sampleRecord()})
	require.NoError(t, WriteParquet(path, rows))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
