package model

// AggregatedCourse is the course-level summary built by folding every
// pricing row that shares a course identifier.
type AggregatedCourse struct {
	CourseID   string   `json:"courseId"`
	Name       string   `json:"name"`
	Level      string   `json:"level"`
	Modalities []string `json:"modalities"`
	Shifts     []string `json:"shifts"`

	DurationMonths int      `json:"durationMonths"`
	MinPrice       *float64 `json:"minPrice"`

	// Brand and Campus come from the first record seen for the course and
	// are display hints, not authoritative location data.
	Brand  string `json:"brand"`
	Campus string `json:"campus"`
}

// Unit is a physical campus, deduplicated by the partner's unit identifier.
// ID is synthesized from that identifier plus the display name.
type Unit struct {
	ID    uint32 `json:"id"`
	Name  string `json:"name"`
	City  string `json:"city"`
	State string `json:"state"`
}

// ModalityRef identifies a modality inside an offering.
type ModalityRef struct {
	ID   uint32 `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ShiftRef identifies a shift inside an offering.
type ShiftRef struct {
	ID   uint32 `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Offering is one concrete unit × modality × shift combination with its own
// price and checkout link. Offerings are never fabricated: each one maps
// back to a row of the pricing feed.
type Offering struct {
	ID          uint32      `json:"id"`
	UnitID      uint32      `json:"unitId"`
	Modality    ModalityRef `json:"modality"`
	Shift       ShiftRef    `json:"shift"`
	Price       *float64    `json:"price"`
	Duration    string      `json:"duration"`
	CheckoutURL string      `json:"checkoutUrl"`
}
