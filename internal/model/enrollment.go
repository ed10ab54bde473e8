package model

// Enrollment is the four-level hierarchy the enrollment/checkout UI walks:
// shift → admission form → payment type → payment option.
type Enrollment struct {
	Shifts []EnrollmentShift `json:"shifts"`
}

// EnrollmentShift groups admission forms under one schedule track. Nodes are
// keyed by the partner's shift identifier plus display name, compared
// case-insensitively, so casing differences in the feed fold into one node.
type EnrollmentShift struct {
	ID             uint32          `json:"id"`
	ShiftID        string          `json:"shiftId"`
	Name           string          `json:"name"`
	AdmissionForms []AdmissionForm `json:"admissionForms"`
}

// AdmissionForm is an enrollment pathway (exam score, transfer, prior
// degree). Code is extracted from the checkout URL; an empty code is a
// valid, unlabeled form.
type AdmissionForm struct {
	FormID       string        `json:"formId"`
	Code         string        `json:"code"`
	Name         string        `json:"name"`
	PaymentTypes []PaymentType `json:"paymentTypes"`
}

// PaymentType is a billing plan. The feed only ever carries installment
// billing, so a single "Parcela" type holds every option.
type PaymentType struct {
	Code    string          `json:"code"`
	Name    string          `json:"name"`
	Options []PaymentOption `json:"options"`
}

// PaymentOption is one priced instance of a payment type. Numeric prices are
// nil when the feed value does not parse; the original strings are always
// kept.
type PaymentOption struct {
	ID               uint32   `json:"id"`
	Label            string   `json:"label"`
	BasePrice        *float64 `json:"basePrice"`
	MonthlyPrice     *float64 `json:"monthlyPrice"`
	BasePriceText    string   `json:"basePriceText"`
	MonthlyPriceText string   `json:"monthlyPriceText"`
	EntryFeeText     string   `json:"entryFee"`
	CheckoutURL      string   `json:"checkoutUrl"`
}
