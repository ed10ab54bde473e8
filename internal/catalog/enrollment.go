package catalog

import (
	"strings"

	"github.com/dlima/coursehub/internal/ident"
	"github.com/dlima/coursehub/internal/model"
)

// The feed only models installment billing, so every payment option hangs
// off this one synthesized payment type.
const (
	installmentCode = "parcela"
	installmentName = "Parcela"
)

// BuildEnrollmentTree groups pricing rows into the shift → admission form →
// payment type → payment option hierarchy used by the checkout UI.
//
// Shift nodes are keyed by the composite of raw shift identifier and name,
// folded case-insensitively, so the same shift spelled with different casing
// lands in one node. A (shift, admission-form code) pair groups at most one
// admission-form node; duplicate rows for the same node update scalar fields
// in place (last write wins) and never duplicate children.
func BuildEnrollmentTree(records []model.RawOfferingRecord) model.Enrollment {
	var tree model.Enrollment
	shiftIdx := make(map[string]int)

	for _, r := range records {
		shiftKey := ident.NewKey(r.ShiftID, r.ShiftName)

		si, ok := shiftIdx[shiftKey.Fold()]
		if !ok {
			tree.Shifts = append(tree.Shifts, model.EnrollmentShift{
				ID:      ident.Synthesize(shiftKey),
				ShiftID: r.ShiftID,
				Name:    r.ShiftName,
			})
			si = len(tree.Shifts) - 1
			shiftIdx[shiftKey.Fold()] = si
		}
		shift := &tree.Shifts[si]
		shift.Name = r.ShiftName

		code := AdmissionCodeFromURL(r.CheckoutURL)
		form := findOrAddForm(shift, code)
		form.FormID = r.AdmissionFormID
		form.Name = r.AdmissionFormName

		ptype := findOrAddPaymentType(form)
		ptype.Options = append(ptype.Options, model.PaymentOption{
			ID: ident.Synthesize(ident.NewKey(
				r.UnitID+":"+r.ShiftID+":"+r.AdmissionFormID+":"+r.PaymentTypeID,
				r.MonthlyPrice,
			)),
			Label:            r.PaymentTypeName,
			BasePrice:        parsePrice(r.BasePrice),
			MonthlyPrice:     parsePrice(r.MonthlyPrice),
			BasePriceText:    r.BasePrice,
			MonthlyPriceText: r.MonthlyPrice,
			EntryFeeText:     r.EntryFeeText,
			CheckoutURL:      r.CheckoutURL,
		})
	}

	return tree
}

func findOrAddForm(shift *model.EnrollmentShift, code string) *model.AdmissionForm {
	for i := range shift.AdmissionForms {
		if shift.AdmissionForms[i].Code == code {
			return &shift.AdmissionForms[i]
		}
	}
	shift.AdmissionForms = append(shift.AdmissionForms, model.AdmissionForm{Code: code})
	return &shift.AdmissionForms[len(shift.AdmissionForms)-1]
}

func findOrAddPaymentType(form *model.AdmissionForm) *model.PaymentType {
	for i := range form.PaymentTypes {
		if form.PaymentTypes[i].Code == installmentCode {
			return &form.PaymentTypes[i]
		}
	}
	form.PaymentTypes = append(form.PaymentTypes, model.PaymentType{
		Code: installmentCode,
		Name: installmentName,
	})
	return &form.PaymentTypes[len(form.PaymentTypes)-1]
}

// AdmissionCodeFromURL extracts the admission-form code from a checkout URL:
// the second-to-last "/"-delimited segment. The code appears nowhere else on
// the record, so this parsing contract is part of the feed interface. A
// malformed URL (no "/") yields an empty code, which downstream code treats
// as a valid unlabeled admission form.
func AdmissionCodeFromURL(raw string) string {
	parts := strings.Split(raw, "/")
	if len(parts) < 2 {
		return ""
	}
	return parts[len(parts)-2]
}
