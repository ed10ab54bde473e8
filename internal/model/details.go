package model

// EditorialCourse is the CMS side of a course: long-form copy maintained by
// the content team. CourseID links it to the partner pricing feed.
type EditorialCourse struct {
	Slug            string   `json:"slug"`
	CourseID        string   `json:"courseId"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Methodology     string   `json:"methodology"`
	CertificateText string   `json:"certificateText"`
	Coordinator     string   `json:"coordinator"`
	Teachers        []string `json:"teachers"`
}

// CourseDetails is the merged entity exposed to the front end. Editorial
// fields come from the CMS; transactional fields come from the pricing feed
// and always win when both sources are available. Built fresh per request,
// never persisted.
type CourseDetails struct {
	Slug       string   `json:"slug"`
	CourseID   string   `json:"courseId"`
	Name       string   `json:"name"`
	Level      string   `json:"level"`
	Modalities []string `json:"modalities"`
	MinPrice   *float64 `json:"minPrice"`

	Description     string   `json:"description"`
	Methodology     string   `json:"methodology"`
	CertificateText string   `json:"certificateText"`
	Coordinator     string   `json:"coordinator"`
	Teachers        []string `json:"teachers"`

	Units      []Unit     `json:"units"`
	Offerings  []Offering `json:"offerings"`
	Enrollment Enrollment `json:"enrollment"`
}
