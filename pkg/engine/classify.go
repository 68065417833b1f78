package engine

import "time"

// Referral status descriptions the rules key on, post title-casing.
const (
	statusSucceeded = "Berhasil"
	statusPending   = "Menunggu"
	statusFailed    = "Tidak Berhasil"
)

// Each predicate is a pure function of the joined record so the rule set
// stays auditable term by term. Null handling is explicit: a predicate over
// a missing field is false unless stated otherwise.

func hasRewardValue(r *JoinedReferralRecord) bool {
	return r.NumRewardDays != nil && *r.NumRewardDays > 0
}

func statusOK(r *JoinedReferralRecord) bool {
	return r.ReferralStatus != nil && *r.ReferralStatus == statusSucceeded
}

func statusPendingFailed(r *JoinedReferralRecord) bool {
	if r.ReferralStatus == nil {
		return false
	}
	return *r.ReferralStatus == statusPending || *r.ReferralStatus == statusFailed
}

func hasTxID(r *JoinedReferralRecord) bool {
	return r.TransactionIDFinal != nil
}

func txPaid(r *JoinedReferralRecord) bool {
	return r.TransactionStatus != nil && *r.TransactionStatus == "Paid"
}

func txNew(r *JoinedReferralRecord) bool {
	return r.TransactionType != nil && *r.TransactionType == "New"
}

func txAfterRef(r *JoinedReferralRecord) bool {
	return r.TransactionAtLocal != nil && r.ReferralAtLocal != nil &&
		r.TransactionAtLocal.After(*r.ReferralAtLocal)
}

func txBeforeRef(r *JoinedReferralRecord) bool {
	return r.TransactionAtLocal != nil && r.ReferralAtLocal != nil &&
		r.TransactionAtLocal.Before(*r.ReferralAtLocal)
}

func sameMonth(r *JoinedReferralRecord) bool {
	if r.TransactionAtLocal == nil || r.ReferralAtLocal == nil {
		return false
	}
	return r.TransactionAtLocal.Year() == r.ReferralAtLocal.Year() &&
		r.TransactionAtLocal.Month() == r.ReferralAtLocal.Month()
}

func membershipOK(r *JoinedReferralRecord) bool {
	if r.ReferrerMembershipExpiredDate == nil || r.ReferralAtLocal == nil {
		return false
	}
	ref := *r.ReferralAtLocal
	refDate := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	return !r.ReferrerMembershipExpiredDate.Before(refDate)
}

func notDeleted(r *JoinedReferralRecord) bool {
	// Null deletion flag is treated as not deleted.
	return r.ReferrerIsDeleted == nil || !*r.ReferrerIsDeleted
}

func rewardGranted(r *JoinedReferralRecord) bool {
	return r.IsRewardGrantedAny
}

// positive is the candidate-valid rule: a fully consistent rewarded referral,
// or a pending/failed referral that correctly carries no reward.
func positive(r *JoinedReferralRecord) bool {
	rewarded := hasRewardValue(r) && statusOK(r) && hasTxID(r) && txPaid(r) && txNew(r) &&
		txAfterRef(r) && sameMonth(r) && membershipOK(r) && notDeleted(r) && rewardGranted(r)
	pending := statusPendingFailed(r) && !hasRewardValue(r)
	return rewarded || pending
}

// negative flags the record invalid, overriding the positive rule. The third
// clause intentionally has no status term: a non-rewarded referral with a
// paid later transaction is flagged regardless of status.
func negative(r *JoinedReferralRecord) bool {
	switch {
	case hasRewardValue(r) && !statusOK(r):
		return true
	case hasRewardValue(r) && !hasTxID(r):
		return true
	case !hasRewardValue(r) && hasTxID(r) && txPaid(r) && txAfterRef(r):
		return true
	case statusOK(r) && !hasRewardValue(r):
		return true
	case txBeforeRef(r):
		return true
	}
	return false
}

// Classify evaluates the rule sets over a record and stores the verdict.
// Invalidity always wins on overlap; a record matching neither rule is
// invalid, since the verdict is boolean rather than tri-state.
func Classify(r *JoinedReferralRecord) bool {
	r.IsBusinessLogicValid = positive(r) && !negative(r)
	return r.IsBusinessLogicValid
}
