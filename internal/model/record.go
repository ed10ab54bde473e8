package model

// RawOfferingRecord is one row of the partner pricing feed: a fully
// specified price point for a course at a unit, in a shift, under one
// admission form and payment type. The feed is denormalized, so the same
// course/unit/shift fields repeat across rows. Records are read-only after
// fetch.
type RawOfferingRecord struct {
	Brand string `json:"brand"`

	UnitID    string `json:"unitId"`
	UnitName  string `json:"unitName"`
	UnitCity  string `json:"unitCity"`
	UnitState string `json:"unitState"`

	CourseID   string `json:"courseId"`
	CourseName string `json:"courseName"`

	Modality string `json:"modality"`
	Level    string `json:"level"`

	ShiftID   string `json:"shiftId"`
	ShiftName string `json:"shiftName"`

	DurationMonths int `json:"durationMonths"`

	AdmissionFormID   string `json:"admissionFormId"`
	AdmissionFormName string `json:"admissionFormName"`

	PaymentTypeID   string `json:"paymentTypeId"`
	PaymentTypeName string `json:"paymentTypeName"`
	PaymentTypeCode string `json:"paymentTypeCode"`

	CheckoutURL string `json:"checkoutUrl"`

	// Prices arrive as display strings ("1.234,56"); numeric values are
	// parsed downstream and kept alongside the originals.
	BasePrice    string `json:"basePrice"`
	MonthlyPrice string `json:"monthlyPrice"`
	EntryFeeText string `json:"entryFee"`

	ValidFrom string `json:"validFrom"`
	ValidTo   string `json:"validTo"`

	// CoveragePriority ranks overlapping validity windows; lower wins.
	CoveragePriority int `json:"coveragePriority"`
}
