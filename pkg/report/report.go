// Package report serializes pipeline results: the validation report (CSV or
// parquet), the column-level profiling summary, and the data dictionary.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/Akashnaireruvattu0611/springer-capital-data-engineer-test/pkg/engine"
)

// Header is the fixed column set of the validation report, in output order.
var Header = []string{
	"referral_details_id",
	"referral_id",
	"referral_source",
	"referral_source_category",
	"referral_at",
	"referrer_id",
	"referrer_name",
	"referrer_phone_number",
	"referrer_homeclub",
	"referee_id",
	"referee_name",
	"referee_phone",
	"referral_status",
	"num_reward_days",
	"transaction_id",
	"transaction_status",
	"transaction_at",
	"transaction_location",
	"transaction_type",
	"updated_at",
	"reward_granted_at",
	"is_business_logic_valid",
}

// Row is one serialized report row. Timestamps are local wall-clock values
// already stripped of their offsets, so they serialize as plain text.
type Row struct {
	ReferralDetailsID      *int64  `parquet:"referral_details_id,optional"`
	ReferralID             string  `parquet:"referral_id"`
	ReferralSource         *string `parquet:"referral_source,optional"`
	ReferralSourceCategory *string `parquet:"referral_source_category,optional"`
	ReferralAt             *string `parquet:"referral_at,optional"`
	ReferrerID             string  `parquet:"referrer_id"`
	ReferrerName           *string `parquet:"referrer_name,optional"`
	ReferrerPhoneNumber    *string `parquet:"referrer_phone_number,optional"`
	ReferrerHomeclub       *string `parquet:"referrer_homeclub,optional"`
	RefereeID              string  `parquet:"referee_id"`
	RefereeName            *string `parquet:"referee_name,optional"`
	RefereePhone           *string `parquet:"referee_phone,optional"`
	ReferralStatus         *string `parquet:"referral_status,optional"`
	NumRewardDays          *int64  `parquet:"num_reward_days,optional"`
	TransactionID          *string `parquet:"transaction_id,optional"`
	TransactionStatus      *string `parquet:"transaction_status,optional"`
	TransactionAt          *string `parquet:"transaction_at,optional"`
	TransactionLocation    *string `parquet:"transaction_location,optional"`
	TransactionType        *string `parquet:"transaction_type,optional"`
	UpdatedAt              *string `parquet:"updated_at,optional"`
	RewardGrantedAt        *string `parquet:"reward_granted_at,optional"`
	IsBusinessLogicValid   bool    `parquet:"is_business_logic_valid"`
}

const wallClockLayout = "2006-01-02 15:04:05"

func fmtInstant(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(wallClockLayout)
	return &s
}

// BuildRows converts classified records into report rows, one per referral.
func BuildRows(records []*engine.JoinedReferralRecord) []Row {
	rows := make([]Row, 0, len(records))
	for _, r := range records {
		var days *int64
		if r.NumRewardDays != nil {
			d := int64(*r.NumRewardDays)
			days = &d
		}
		rows = append(rows, Row{
			ReferralDetailsID:      r.ReferralDetailsID,
			ReferralID:             r.ReferralID,
			ReferralSource:         r.ReferralSource,
			ReferralSourceCategory: r.ReferralSourceCategory,
			ReferralAt:             fmtInstant(r.ReferralAtLocal),
			ReferrerID:             r.ReferrerID,
			ReferrerName:           r.ReferrerName,
			ReferrerPhoneNumber:    r.ReferrerPhoneNumber,
			ReferrerHomeclub:       r.ReferrerHomeclub,
			RefereeID:              r.RefereeID,
			RefereeName:            r.RefereeName,
			RefereePhone:           r.RefereePhone,
			ReferralStatus:         r.ReferralStatus,
			NumRewardDays:          days,
			TransactionID:          r.TransactionIDFinal,
			TransactionStatus:      r.TransactionStatus,
			TransactionAt:          fmtInstant(r.TransactionAtLocal),
			TransactionLocation:    r.TransactionLocation,
			TransactionType:        r.TransactionType,
			UpdatedAt:              fmtInstant(r.UpdatedAtLocal),
			RewardGrantedAt:        fmtInstant(r.RewardGrantedAtLocal),
			IsBusinessLogicValid:   r.IsBusinessLogicValid,
		})
	}
	return rows
}

func cell(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func cellInt(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func (r Row) cells() []string {
	return []string{
		cellInt(r.ReferralDetailsID),
		r.ReferralID,
		cell(r.ReferralSource),
		cell(r.ReferralSourceCategory),
		cell(r.ReferralAt),
		r.ReferrerID,
		cell(r.ReferrerName),
		cell(r.ReferrerPhoneNumber),
		cell(r.ReferrerHomeclub),
		r.RefereeID,
		cell(r.RefereeName),
		cell(r.RefereePhone),
		cell(r.ReferralStatus),
		cellInt(r.NumRewardDays),
		cell(r.TransactionID),
		cell(r.TransactionStatus),
		cell(r.TransactionAt),
		cell(r.TransactionLocation),
		cell(r.TransactionType),
		cell(r.UpdatedAt),
		cell(r.RewardGrantedAt),
		strconv.FormatBool(r.IsBusinessLogicValid),
	}
}

// WriteCSV writes the validation report to path, creating parent directories.
func WriteCSV(path string, rows []Row) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		return fmt.Errorf("writing report header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row.cells()); err != nil {
			return fmt.Errorf("writing report row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing report: %w", err)
	}
	return f.Close()
}

// WriteParquet writes the same rows as a parquet file.
func WriteParquet(path string, rows []Row) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating parquet file: %w", err)
	}
	defer f.Close()

	w := parquet.NewGenericWriter[Row](f)
	if _, err := w.Write(rows); err != nil {
		return fmt.Errorf("writing parquet rows: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing parquet writer: %w", err)
	}
	return f.Close()
}
