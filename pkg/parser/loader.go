package parser

import (
	"fmt"
	"os"
	"path/filepath"
)

// Snapshot table names, in load order. Every file must be present.
const (
	TableLeadLogs             = "lead_logs"
	TablePaidTransactions     = "paid_transactions"
	TableReferralRewards      = "referral_rewards"
	TableUserLogs             = "user_logs"
	TableUserReferralLogs     = "user_referral_logs"
	TableUserReferralStatuses = "user_referral_statuses"
	TableUserReferrals        = "user_referrals"
)

// TableNames lists the required snapshot tables in canonical order.
var TableNames = []string{
	TableLeadLogs,
	TablePaidTransactions,
	TableReferralRewards,
	TableUserLogs,
	TableUserReferralLogs,
	TableUserReferralStatuses,
	TableUserReferrals,
}

// TableSet holds the seven loaded snapshot tables in canonical order.
type TableSet struct {
	Tables []*Table
	byName map[string]*Table
}

// NewTableSet builds a TableSet from parsed tables.
func NewTableSet(tables []*Table) *TableSet {
	ts := &TableSet{
		Tables: tables,
		byName: make(map[string]*Table, len(tables)),
	}
	for _, t := range tables {
		ts.byName[t.Name] = t
	}
	return ts
}

// Get returns the named table, or nil if it was not loaded.
func (ts *TableSet) Get(name string) *Table {
	return ts.byName[name]
}

// LoadTables reads all required snapshot tables from dataDir. A missing file
// is a fatal error: the pipeline either runs over a complete snapshot or not
// at all.
func LoadTables(dataDir string) (*TableSet, error) {
	tables := make([]*Table, 0, len(TableNames))
	for _, name := range TableNames {
		path := filepath.Join(dataDir, name+".csv")
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("missing required table file: %s", path)
			}
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		table, err := ParseTable(name, data)
		if err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}
	return NewTableSet(tables), nil
}
