package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Akashnaireruvattu0611/springer-capital-data-engineer-test/pkg/parser"
	"github.com/Akashnaireruvattu0611/springer-capital-data-engineer-test/pkg/schema"
)

// Run executes the full pipeline over a loaded table set: decode, snapshot
// resolution, linkage, field derivation, and classification. The returned
// records are final; the only step left to a caller is serialization.
func Run(ts *parser.TableSet, defaultTZ string, logger *zap.Logger) ([]*JoinedReferralRecord, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	for _, name := range parser.TableNames {
		if ts.Get(name) == nil {
			return nil, fmt.Errorf("table %s not loaded", name)
		}
	}

	referrals := schema.DecodeReferralEvents(ts.Get(parser.TableUserReferrals))
	logs := schema.DecodeReferralLogs(ts.Get(parser.TableUserReferralLogs))
	users := schema.DecodeUserSnapshots(ts.Get(parser.TableUserLogs))
	rewards := schema.DecodeRewardDefinitions(ts.Get(parser.TableReferralRewards))
	transactions := schema.DecodeTransactions(ts.Get(parser.TablePaidTransactions))
	leads := schema.DecodeLeadLogs(ts.Get(parser.TableLeadLogs))
	statuses := schema.DecodeReferralStatuses(ts.Get(parser.TableUserReferralStatuses))

	logger.Info("decoded snapshot tables",
		zap.Int("user_referrals", len(referrals)),
		zap.Int("user_referral_logs", len(logs)),
		zap.Int("user_logs", len(users)),
		zap.Int("referral_rewards", len(rewards)),
		zap.Int("paid_transactions", len(transactions)),
		zap.Int("lead_logs", len(leads)),
		zap.Int("user_referral_statuses", len(statuses)))

	in := LinkInputs{
		Referrals:    referrals,
		LatestLogs:   LatestReferralLogs(logs),
		GrantTimes:   RewardGrantTimes(logs),
		EverGranted:  EverGranted(logs),
		Statuses:     statuses,
		Rewards:      rewards,
		Transactions: transactions,
		LatestLeads:  LatestLeadLogs(leads),
		LatestUsers:  LatestUserSnapshots(users),
	}

	records, err := Link(in)
	if err != nil {
		return nil, fmt.Errorf("linking referrals: %w", err)
	}
	logger.Info("linked referral records", zap.Int("records", len(records)))

	// Derivation and classification are pure per-record functions; record
	// order carries no meaning.
	valid := 0
	for _, rec := range records {
		Derive(rec, defaultTZ)
		if Classify(rec) {
			valid++
		}
	}
	logger.Info("classified referrals",
		zap.Int("records", len(records)),
		zap.Int("valid", valid),
		zap.Int("invalid", len(records)-valid))

	return records, nil
}
