package engine

import "time"

// JoinedReferralRecord is the canonical denormalized record: one per
// referral_id, carrying fields from all seven tables plus derived fields.
// It is created fresh each run and never mutated after classification.
type JoinedReferralRecord struct {
	// user_referrals
	ReferralID     string
	ReferralSource *string
	ReferralAt     *time.Time
	UpdatedAt      *time.Time
	ReferrerID     string
	RefereeID      string
	RefereeName    *string
	RefereePhone   *string

	// latest user_referral_logs row
	ReferralDetailsID   *int64
	SourceTransactionID *string
	LatestReferralLogAt *time.Time
	LatestLogGranted    *bool

	// reward-grant aggregates
	RewardGrantedAt    *time.Time
	IsRewardGrantedAny bool

	// lookups
	ReferralStatus *string
	RewardValue    *string
	NumRewardDays  *int

	// transaction, resolved through TransactionIDFinal
	TransactionIDFinal  *string
	TransactionStatus   *string
	TransactionType     *string
	TransactionLocation *string
	TransactionTimezone *string
	TransactionAt       *time.Time

	// latest lead_logs row for the referee
	SourceCategory   *string
	TimezoneLocation *string

	// latest user_logs snapshots
	ReferrerName                  *string
	ReferrerPhoneNumber           *string
	ReferrerHomeclub              *string
	ReferrerTimezone              *string
	ReferrerMembershipExpiredDate *time.Time
	ReferrerIsDeleted             *bool
	RefereeTimezone               *string

	// derived
	ReferralSourceCategory *string
	ReferralAtLocal        *time.Time
	UpdatedAtLocal         *time.Time
	TransactionAtLocal     *time.Time
	RewardGrantedAtLocal   *time.Time

	IsBusinessLogicValid bool
}
