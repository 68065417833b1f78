package engine

import (
	"fmt"
	"time"

	"github.com/Akashnaireruvattu0611/springer-capital-data-engineer-test/pkg/schema"
)

// LinkInputs carries the resolved and lookup-side tables the linkage builder
// joins against the referral events.
type LinkInputs struct {
	Referrals    []schema.ReferralEvent
	LatestLogs   map[string]schema.ReferralLogEntry
	GrantTimes   map[string]time.Time
	EverGranted  map[string]bool
	Statuses     []schema.ReferralStatus
	Rewards      []schema.RewardDefinition
	Transactions []schema.Transaction
	LatestLeads  map[string]schema.LeadLogEntry
	LatestUsers  map[string]schema.UserSnapshot
}

// Link assembles one JoinedReferralRecord per referral event through the
// ordered left-join sequence. Every join preserves the left side: a missing
// match leaves the corresponding fields nil, and a lookup table can never
// duplicate an event because each is indexed to at most one row per key.
//
// The post-condition is checked explicitly: the output has exactly one record
// per input event and referral_id stays unique. A violation is a defect in
// the inputs, surfaced as an error rather than silently tolerated.
func Link(in LinkInputs) ([]*JoinedReferralRecord, error) {
	statusByID := make(map[string]schema.ReferralStatus, len(in.Statuses))
	for _, s := range in.Statuses {
		if _, ok := statusByID[s.ID]; !ok && s.ID != "" {
			statusByID[s.ID] = s
		}
	}
	rewardByID := make(map[string]schema.RewardDefinition, len(in.Rewards))
	for _, r := range in.Rewards {
		if _, ok := rewardByID[r.ID]; !ok && r.ID != "" {
			rewardByID[r.ID] = r
		}
	}
	txByID := make(map[string]schema.Transaction, len(in.Transactions))
	for _, t := range in.Transactions {
		if _, ok := txByID[t.TransactionID]; !ok && t.TransactionID != "" {
			txByID[t.TransactionID] = t
		}
	}

	seen := make(map[string]bool, len(in.Referrals))
	out := make([]*JoinedReferralRecord, 0, len(in.Referrals))

	for _, e := range in.Referrals {
		if seen[e.ReferralID] {
			return nil, fmt.Errorf("duplicate referral_id %q in user_referrals", e.ReferralID)
		}
		seen[e.ReferralID] = true

		rec := &JoinedReferralRecord{
			ReferralID:     e.ReferralID,
			ReferralSource: e.ReferralSource,
			ReferralAt:     e.ReferralAt,
			UpdatedAt:      e.UpdatedAt,
			ReferrerID:     e.ReferrerID,
			RefereeID:      e.RefereeID,
			RefereeName:    e.RefereeName,
			RefereePhone:   e.RefereePhone,
		}

		// 1. Latest referral log entry.
		if l, ok := in.LatestLogs[e.ReferralID]; ok {
			id := l.ID
			granted := l.IsRewardGranted
			rec.ReferralDetailsID = &id
			rec.SourceTransactionID = l.SourceTransactionID
			rec.LatestReferralLogAt = l.CreatedAt
			rec.LatestLogGranted = &granted
		}

		// 2. Earliest grant instant, 3. ever-granted flag.
		if t, ok := in.GrantTimes[e.ReferralID]; ok {
			tt := t
			rec.RewardGrantedAt = &tt
		}
		rec.IsRewardGrantedAny = in.EverGranted[e.ReferralID]

		// 4. Status description.
		if e.StatusID != nil {
			if s, ok := statusByID[*e.StatusID]; ok {
				rec.ReferralStatus = s.Description
			}
		}

		// 5. Reward definition and day count.
		if e.RewardID != nil {
			if r, ok := rewardByID[*e.RewardID]; ok {
				rec.RewardValue = r.RewardValue
				rec.NumRewardDays = ExtractRewardDays(r.RewardValue)
			}
		}

		// 6. Transaction via the event's own id, falling back to the log's.
		txID := e.TransactionID
		if txID == nil {
			txID = rec.SourceTransactionID
		}
		rec.TransactionIDFinal = txID
		if txID != nil {
			if t, ok := txByID[*txID]; ok {
				rec.TransactionStatus = t.Status
				rec.TransactionType = t.Type
				rec.TransactionLocation = t.Location
				rec.TransactionTimezone = t.Timezone
				rec.TransactionAt = t.TransactionAt
			}
		}

		// 7. Latest lead log for the referee.
		if l, ok := in.LatestLeads[e.RefereeID]; ok {
			rec.SourceCategory = l.SourceCategory
			rec.TimezoneLocation = l.TimezoneLocation
		}

		// 8. Latest user snapshots: referrer fields, then referee fields.
		// Referee name/phone only fill gaps; the event's own values win.
		if u, ok := in.LatestUsers[e.ReferrerID]; ok {
			rec.ReferrerName = u.Name
			rec.ReferrerPhoneNumber = u.PhoneNumber
			rec.ReferrerHomeclub = u.Homeclub
			rec.ReferrerTimezone = u.Timezone
			rec.ReferrerMembershipExpiredDate = u.MembershipExpiredDate
			rec.ReferrerIsDeleted = u.IsDeleted
		}
		if u, ok := in.LatestUsers[e.RefereeID]; ok {
			if rec.RefereeName == nil {
				rec.RefereeName = u.Name
			}
			if rec.RefereePhone == nil {
				rec.RefereePhone = u.PhoneNumber
			}
			rec.RefereeTimezone = u.Timezone
		}

		out = append(out, rec)
	}

	if len(out) != len(in.Referrals) {
		return nil, fmt.Errorf("linkage changed row count: %d events in, %d records out", len(in.Referrals), len(out))
	}
	return out, nil
}
