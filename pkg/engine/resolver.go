// Package engine reconstructs one canonical record per referral from the
// snapshot tables and classifies it against the program's business rules.
package engine

import (
	"time"

	"github.com/Akashnaireruvattu0611/springer-capital-data-engineer-test/pkg/schema"
)

// ResolveLatest collapses an append-only table to one authoritative row per
// key: the row that sorts last under less, with later input rows winning
// ties. Rows with an empty key are dropped. Keys absent from the input are
// simply absent from the result; downstream joins treat that as a miss.
func ResolveLatest[T any](rows []T, key func(T) string, less func(a, b T) bool) map[string]T {
	out := make(map[string]T, len(rows))
	for _, r := range rows {
		k := key(r)
		if k == "" {
			continue
		}
		cur, ok := out[k]
		if !ok || !less(r, cur) {
			out[k] = r
		}
	}
	return out
}

// compareInstants orders optional instants with nil sorting after every real
// timestamp, matching the resolver's "missing creation time is newest"
// tie-break convention.
func compareInstants(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return a.Compare(*b)
	}
}

// LatestUserSnapshots resolves user_logs to the latest snapshot per user,
// ordered by row id.
func LatestUserSnapshots(rows []schema.UserSnapshot) map[string]schema.UserSnapshot {
	return ResolveLatest(rows,
		func(u schema.UserSnapshot) string { return u.UserID },
		func(a, b schema.UserSnapshot) bool { return a.ID < b.ID })
}

// LatestReferralLogs resolves user_referral_logs to the latest entry per
// referral, ordered by (created_at, row id).
func LatestReferralLogs(rows []schema.ReferralLogEntry) map[string]schema.ReferralLogEntry {
	return ResolveLatest(rows,
		func(l schema.ReferralLogEntry) string { return l.UserReferralID },
		func(a, b schema.ReferralLogEntry) bool {
			if c := compareInstants(a.CreatedAt, b.CreatedAt); c != 0 {
				return c < 0
			}
			return a.ID < b.ID
		})
}

// LatestLeadLogs resolves lead_logs to the latest entry per lead, ordered by
// (created_at, row id).
func LatestLeadLogs(rows []schema.LeadLogEntry) map[string]schema.LeadLogEntry {
	return ResolveLatest(rows,
		func(l schema.LeadLogEntry) string { return l.LeadID },
		func(a, b schema.LeadLogEntry) bool {
			if c := compareInstants(a.CreatedAt, b.CreatedAt); c != 0 {
				return c < 0
			}
			return a.ID < b.ID
		})
}

// RewardGrantTimes returns, per referral key, the earliest creation instant
// among log rows flagged reward-granted. This is independent of the latest
// row: the first grant may predate later log entries.
func RewardGrantTimes(rows []schema.ReferralLogEntry) map[string]time.Time {
	out := make(map[string]time.Time)
	for _, r := range rows {
		if !r.IsRewardGranted || r.CreatedAt == nil || r.UserReferralID == "" {
			continue
		}
		if cur, ok := out[r.UserReferralID]; !ok || r.CreatedAt.Before(cur) {
			out[r.UserReferralID] = *r.CreatedAt
		}
	}
	return out
}

// EverGranted ORs the reward-granted flag across all log rows per referral
// key, not just the surviving latest row.
func EverGranted(rows []schema.ReferralLogEntry) map[string]bool {
	out := make(map[string]bool)
	for _, r := range rows {
		if r.UserReferralID == "" {
			continue
		}
		out[r.UserReferralID] = out[r.UserReferralID] || r.IsRewardGranted
	}
	return out
}
