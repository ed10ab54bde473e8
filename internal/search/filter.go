package search

import (
	"strings"

	"github.com/dlima/coursehub/internal/model"
)

// locationFilter narrows pricing rows by institution brand, state and city.
// Empty fields are not applied.
type locationFilter struct {
	Institution string
	State       string
	City        string
}

func (f locationFilter) empty() bool {
	return f.Institution == "" && f.State == "" && f.City == ""
}

func (f locationFilter) matches(r model.RawOfferingRecord) bool {
	if f.Institution != "" && !strings.EqualFold(f.Institution, r.Brand) {
		return false
	}
	if f.State != "" && !strings.EqualFold(f.State, r.UnitState) {
		return false
	}
	if f.City != "" && !strings.EqualFold(f.City, r.UnitCity) {
		return false
	}
	return true
}

// applyLocationFilter applies the filter with the fallback-to-unfiltered
// policy: when the filter would empty the result entirely, the unfiltered
// rows are returned instead, so an over-specific location never produces an
// empty page. The second return value reports whether the filter actually
// took effect; callers log when the fallback triggers, because returning
// unrelated results on a miss is deliberate but worth seeing in production.
func applyLocationFilter(rows []model.RawOfferingRecord, f locationFilter) ([]model.RawOfferingRecord, bool) {
	if f.empty() {
		return rows, false
	}

	var out []model.RawOfferingRecord
	for _, r := range rows {
		if f.matches(r) {
			out = append(out, r)
		}
	}

	if len(out) == 0 {
		return rows, false
	}
	return out, true
}
