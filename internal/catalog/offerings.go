package catalog

import (
	"strconv"

	"github.com/dlima/coursehub/internal/canonical"
	"github.com/dlima/coursehub/internal/ident"
	"github.com/dlima/coursehub/internal/model"
)

// BuildOfferings expands pricing rows into the unit × modality × shift
// offering list, plus the deduplicated unit list the offerings reference.
//
// One offering is emitted per input row, deliberately without deduplication:
// two rows for the same combination are genuinely different payment
// arrangements and both must surface in the enrollment view. Units are
// deduplicated by the partner's unit identifier, not by the synthesized ID.
func BuildOfferings(records []model.RawOfferingRecord) ([]model.Offering, []model.Unit) {
	offerings := make([]model.Offering, 0, len(records))
	unitSeen := make(map[string]bool)
	var units []model.Unit

	for _, r := range records {
		unitKey := ident.NewKey(r.UnitID, r.UnitName)
		if !unitSeen[r.UnitID] {
			unitSeen[r.UnitID] = true
			units = append(units, model.Unit{
				ID:    ident.Synthesize(unitKey),
				Name:  r.UnitName,
				City:  r.UnitCity,
				State: r.UnitState,
			})
		}

		modalitySlug := canonical.Modality(r.Modality)
		shiftKey := ident.NewKey(r.ShiftID, r.ShiftName)

		offerings = append(offerings, model.Offering{
			ID:     ident.Synthesize(ident.NewKey(r.UnitID+":"+r.ShiftID+":"+modalitySlug, r.UnitName+r.ShiftName)),
			UnitID: ident.Synthesize(unitKey),
			Modality: model.ModalityRef{
				ID:   ident.Synthesize(ident.NewKey(modalitySlug, r.Modality)),
				Name: r.Modality,
				Slug: modalitySlug,
			},
			Shift: model.ShiftRef{
				ID:   ident.Synthesize(shiftKey),
				Name: r.ShiftName,
				Slug: canonical.Shift(r.ShiftName),
			},
			Price:       parsePrice(r.MonthlyPrice),
			Duration:    durationText(r.DurationMonths),
			CheckoutURL: r.CheckoutURL,
		})
	}

	return offerings, units
}

func durationText(months int) string {
	if months <= 0 {
		return ""
	}
	if months == 1 {
		return "1 mês"
	}
	return strconv.Itoa(months) + " meses"
}
