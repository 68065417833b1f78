package schema

import (
	"strconv"
	"strings"
	"time"

	"github.com/Akashnaireruvattu0611/springer-capital-data-engineer-test/pkg/parser"
	"github.com/Akashnaireruvattu0611/springer-capital-data-engineer-test/pkg/temporal"
)

// optString returns a trimmed cell value, nil for empty.
func optString(row map[string]string, col string) *string {
	v := strings.TrimSpace(row[col])
	if v == "" {
		return nil
	}
	return &v
}

// reqString returns a trimmed cell value, empty string for missing.
func reqString(row map[string]string, col string) string {
	return strings.TrimSpace(row[col])
}

// optBool decodes the boolean spellings that occur in the exports.
// Anything unrecognized decodes to nil.
func optBool(row map[string]string, col string) *bool {
	v := strings.ToLower(strings.TrimSpace(row[col]))
	switch v {
	case "true", "t", "1", "yes":
		b := true
		return &b
	case "false", "f", "0", "no":
		b := false
		return &b
	}
	return nil
}

// rowID decodes an integer row id. Rows without a usable id decode to 0,
// which sorts before every real id in the resolver orderings.
func rowID(row map[string]string, col string) int64 {
	v := strings.TrimSpace(row[col])
	if v == "" {
		return 0
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		// Some exports render ids as floats ("12.0").
		f, ferr := strconv.ParseFloat(v, 64)
		if ferr != nil {
			return 0
		}
		return int64(f)
	}
	return n
}

func optInstant(row map[string]string, col string) *time.Time {
	return temporal.ParseInstant(row[col])
}

// DecodeReferralEvents decodes the user_referrals table.
func DecodeReferralEvents(t *parser.Table) []ReferralEvent {
	out := make([]ReferralEvent, 0, len(t.Rows))
	for _, row := range t.Rows {
		out = append(out, ReferralEvent{
			ReferralID:     reqString(row, "referral_id"),
			ReferralSource: optString(row, "referral_source"),
			ReferralAt:     optInstant(row, "referral_at"),
			ReferrerID:     reqString(row, "referrer_id"),
			RefereeID:      reqString(row, "referee_id"),
			RefereeName:    optString(row, "referee_name"),
			RefereePhone:   optString(row, "referee_phone"),
			StatusID:       optString(row, "user_referral_status_id"),
			RewardID:       optString(row, "referral_reward_id"),
			TransactionID:  optString(row, "transaction_id"),
			UpdatedAt:      optInstant(row, "updated_at"),
		})
	}
	return out
}

// DecodeReferralLogs decodes the user_referral_logs table.
func DecodeReferralLogs(t *parser.Table) []ReferralLogEntry {
	out := make([]ReferralLogEntry, 0, len(t.Rows))
	for _, row := range t.Rows {
		granted := optBool(row, "is_reward_granted")
		out = append(out, ReferralLogEntry{
			ID:                  rowID(row, "id"),
			UserReferralID:      reqString(row, "user_referral_id"),
			CreatedAt:           optInstant(row, "created_at"),
			IsRewardGranted:     granted != nil && *granted,
			SourceTransactionID: optString(row, "source_transaction_id"),
		})
	}
	return out
}

// DecodeUserSnapshots decodes the user_logs table.
func DecodeUserSnapshots(t *parser.Table) []UserSnapshot {
	out := make([]UserSnapshot, 0, len(t.Rows))
	for _, row := range t.Rows {
		out = append(out, UserSnapshot{
			ID:                    rowID(row, "id"),
			UserID:                reqString(row, "user_id"),
			Name:                  optString(row, "name"),
			PhoneNumber:           optString(row, "phone_number"),
			Homeclub:              optString(row, "homeclub"),
			Timezone:              optString(row, "timezone_homeclub"),
			MembershipExpiredDate: temporal.ParseDate(row["membership_expired_date"]),
			IsDeleted:             optBool(row, "is_deleted"),
		})
	}
	return out
}

// DecodeRewardDefinitions decodes the referral_rewards table.
func DecodeRewardDefinitions(t *parser.Table) []RewardDefinition {
	out := make([]RewardDefinition, 0, len(t.Rows))
	for _, row := range t.Rows {
		out = append(out, RewardDefinition{
			ID:          reqString(row, "id"),
			RewardValue: optString(row, "reward_value"),
			CreatedAt:   optInstant(row, "created_at"),
		})
	}
	return out
}

// DecodeTransactions decodes the paid_transactions table.
func DecodeTransactions(t *parser.Table) []Transaction {
	out := make([]Transaction, 0, len(t.Rows))
	for _, row := range t.Rows {
		out = append(out, Transaction{
			TransactionID: reqString(row, "transaction_id"),
			Status:        optString(row, "transaction_status"),
			Type:          optString(row, "transaction_type"),
			Location:      optString(row, "transaction_location"),
			Timezone:      optString(row, "timezone_transaction"),
			TransactionAt: optInstant(row, "transaction_at"),
		})
	}
	return out
}

// DecodeLeadLogs decodes the lead_logs table.
func DecodeLeadLogs(t *parser.Table) []LeadLogEntry {
	out := make([]LeadLogEntry, 0, len(t.Rows))
	for _, row := range t.Rows {
		out = append(out, LeadLogEntry{
			ID:               rowID(row, "id"),
			LeadID:           reqString(row, "lead_id"),
			CreatedAt:        optInstant(row, "created_at"),
			SourceCategory:   optString(row, "source_category"),
			TimezoneLocation: optString(row, "timezone_location"),
		})
	}
	return out
}

// DecodeReferralStatuses decodes the user_referral_statuses table.
func DecodeReferralStatuses(t *parser.Table) []ReferralStatus {
	out := make([]ReferralStatus, 0, len(t.Rows))
	for _, row := range t.Rows {
		out = append(out, ReferralStatus{
			ID:          reqString(row, "id"),
			Description: optString(row, "description"),
			CreatedAt:   optInstant(row, "created_at"),
		})
	}
	return out
}
