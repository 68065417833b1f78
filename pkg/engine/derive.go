package engine

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Akashnaireruvattu0611/springer-capital-data-engineer-test/pkg/temporal"
)

var digitRunRe = regexp.MustCompile(`\d+`)

// ExtractRewardDays pulls the first contiguous digit run out of the free-text
// reward value ("30 hari" -> 30). Absent or non-numeric text yields nil,
// never a default zero.
func ExtractRewardDays(v *string) *int {
	if v == nil {
		return nil
	}
	m := digitRunRe.FindString(*v)
	if m == "" {
		return nil
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return nil
	}
	return &n
}

// titleCase capitalizes each word, lowercasing the rest, leaving nil as nil.
func titleCase(v *string) *string {
	if v == nil {
		return nil
	}
	s := cases.Title(language.English).String(strings.ToLower(*v))
	return &s
}

// deref is a nil-safe pointer read with "" for nil.
func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

// Derive computes the derived fields on a joined record: the source
// category, the four zone-local timestamps, and title casing. Business-rule
// comparisons operate on local wall clocks, so every timestamp the
// classifier reads goes through temporal.ToLocal here first.
//
// Home-club names are deliberately not title-cased.
func Derive(rec *JoinedReferralRecord, defaultTZ string) {
	// Source category, from the raw (pre-casing) source value.
	switch deref(rec.ReferralSource) {
	case "User Sign Up":
		online := "Online"
		rec.ReferralSourceCategory = &online
	case "Draft Transaction":
		offline := "Offline"
		rec.ReferralSourceCategory = &offline
	case "Lead":
		rec.ReferralSourceCategory = rec.SourceCategory
	}

	rec.ReferralAtLocal = temporal.ToLocal(rec.ReferralAt, deref(rec.ReferrerTimezone), defaultTZ)
	rec.UpdatedAtLocal = temporal.ToLocal(rec.UpdatedAt, deref(rec.ReferrerTimezone), defaultTZ)
	rec.TransactionAtLocal = temporal.ToLocal(rec.TransactionAt, deref(rec.TransactionTimezone), defaultTZ)
	rec.RewardGrantedAtLocal = temporal.ToLocal(rec.RewardGrantedAt, deref(rec.ReferrerTimezone), defaultTZ)

	rec.ReferralSource = titleCase(rec.ReferralSource)
	rec.ReferralSourceCategory = titleCase(rec.ReferralSourceCategory)
	rec.ReferralStatus = titleCase(rec.ReferralStatus)
	rec.TransactionStatus = titleCase(rec.TransactionStatus)
	rec.TransactionType = titleCase(rec.TransactionType)
	rec.TransactionLocation = titleCase(rec.TransactionLocation)
	rec.ReferrerName = titleCase(rec.ReferrerName)
	rec.RefereeName = titleCase(rec.RefereeName)
}
