package catalog

import (
	"github.com/dlima/coursehub/internal/canonical"
	"github.com/dlima/coursehub/internal/model"
)

// AggregateCourses groups pricing rows by course identifier into per-course
// summaries. Grouping is by identifier, never by name: names repeat across
// unrelated courses. Output order is first-appearance order of each course
// in the input; callers that need a specific order sort explicitly.
func AggregateCourses(records []model.RawOfferingRecord) []model.AggregatedCourse {
	byID := make(map[string]*model.AggregatedCourse)
	var order []string

	for _, r := range records {
		course, ok := byID[r.CourseID]
		if !ok {
			course = &model.AggregatedCourse{
				CourseID:       r.CourseID,
				Name:           r.CourseName,
				Level:          canonical.Level(r.Level),
				DurationMonths: r.DurationMonths,
				Brand:          r.Brand,
				Campus:         r.UnitName,
			}
			byID[r.CourseID] = course
			order = append(order, r.CourseID)
		}

		course.Modalities = appendUnique(course.Modalities, canonical.Modality(r.Modality))
		course.Shifts = appendUnique(course.Shifts, canonical.Shift(r.ShiftName))

		if p := parsePrice(r.MonthlyPrice); p != nil {
			if course.MinPrice == nil || *p < *course.MinPrice {
				course.MinPrice = p
			}
		}
	}

	out := make([]model.AggregatedCourse, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}
	return out
}

// appendUnique inserts a label only if it is not already present, keeping
// first-insertion order. This is the set-union container the summaries rely
// on: membership is checked before every insert, so sets never shrink and
// never duplicate.
func appendUnique(labels []string, label string) []string {
	for _, l := range labels {
		if l == label {
			return labels
		}
	}
	return append(labels, label)
}
