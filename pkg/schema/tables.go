// Package schema defines typed records for the seven snapshot tables and
// decodes the parser's raw rows into them. Optional columns are pointers;
// an empty cell decodes to nil, never to a zero value.
package schema

import "time"

// ReferralEvent is one row of user_referrals: a single referral attempt.
// ReferralID is the unique key of the whole pipeline.
type ReferralEvent struct {
	ReferralID     string
	ReferralSource *string
	ReferralAt     *time.Time
	ReferrerID     string
	RefereeID      string
	RefereeName    *string
	RefereePhone   *string
	StatusID       *string
	RewardID       *string
	TransactionID  *string
	UpdatedAt      *time.Time
}

// ReferralLogEntry is one row of user_referral_logs, the append-only audit
// trail. Several rows may share UserReferralID.
type ReferralLogEntry struct {
	ID                  int64
	UserReferralID      string
	CreatedAt           *time.Time
	IsRewardGranted     bool
	SourceTransactionID *string
}

// UserSnapshot is one row of user_logs, a periodic profile snapshot.
// Several rows may share UserID; the highest row id is authoritative.
type UserSnapshot struct {
	ID                    int64
	UserID                string
	Name                  *string
	PhoneNumber           *string
	Homeclub              *string
	Timezone              *string
	MembershipExpiredDate *time.Time
	IsDeleted             *bool
}

// RewardDefinition is one row of referral_rewards. RewardValue is free text
// that encodes a day count ("30 hari", "30 days").
type RewardDefinition struct {
	ID          string
	RewardValue *string
	CreatedAt   *time.Time
}

// Transaction is one row of paid_transactions.
type Transaction struct {
	TransactionID string
	Status        *string
	Type          *string
	Location      *string
	Timezone      *string
	TransactionAt *time.Time
}

// LeadLogEntry is one row of lead_logs. Several rows may share LeadID.
type LeadLogEntry struct {
	ID               int64
	LeadID           string
	CreatedAt        *time.Time
	SourceCategory   *string
	TimezoneLocation *string
}

// ReferralStatus is one row of user_referral_statuses, the status lookup.
type ReferralStatus struct {
	ID          string
	Description *string
	CreatedAt   *time.Time
}
