// Package search combines editorial content and partner pricing data into
// the merged course model, applies filters and paginates results.
package search

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/dlima/coursehub/internal/apperr"
	"github.com/dlima/coursehub/internal/catalog"
	"github.com/dlima/coursehub/internal/model"
	"github.com/dlima/coursehub/internal/partner"
)

// EditorialSource provides CMS course content.
type EditorialSource interface {
	CourseBySlug(ctx context.Context, slug string) (*model.EditorialCourse, error)
}

// PricingSource provides the partner's transactional feeds.
type PricingSource interface {
	CoursePrices(ctx context.Context, courseID string) ([]model.RawOfferingRecord, error)
	UnitCourses(ctx context.Context, unitID string) ([]model.RawOfferingRecord, error)
	Units(ctx context.Context, institution, state, city string) ([]partner.Unit, error)
	EnrollmentDetail(ctx context.Context, query partner.EnrollmentQuery) ([]model.RawOfferingRecord, error)
}

// Orchestrator runs the per-request merge pipeline. It owns no state beyond
// its collaborators; every request works on request-scoped collections.
type Orchestrator struct {
	editorial EditorialSource
	pricing   PricingSource
	perPage   int
}

// NewOrchestrator creates an Orchestrator. defaultPerPage bounds result
// pages when the request does not specify a size.
func NewOrchestrator(editorial EditorialSource, pricing PricingSource, defaultPerPage int) *Orchestrator {
	if defaultPerPage <= 0 {
		defaultPerPage = 12
	}
	return &Orchestrator{
		editorial: editorial,
		pricing:   pricing,
		perPage:   defaultPerPage,
	}
}

// DetailsRequest identifies a course plus the caller's location context.
// Institution/State/City/UnitID are optional; when all four are present the
// enrollment tree is enriched with the per-unit detail feed.
type DetailsRequest struct {
	Slug        string
	Institution string
	State       string
	City        string
	UnitID      string
}

// CourseDetails builds the merged course entity for one request.
//
// The editorial fetch is best-effort: a course missing from the CMS (or a
// CMS outage) degrades to transactional data only. The pricing fetch is
// mandatory and its failure fails the request.
func (o *Orchestrator) CourseDetails(ctx context.Context, req DetailsRequest) (*model.CourseDetails, error) {
	editorial, err := o.editorial.CourseBySlug(ctx, req.Slug)
	if err != nil {
		log.Warn().Err(err).Str("slug", req.Slug).Msg("editorial fetch failed, proceeding without cms data")
		editorial = nil
	}

	courseID := req.Slug
	if editorial != nil && editorial.CourseID != "" {
		courseID = editorial.CourseID
	}

	rows, err := o.pricing.CoursePrices(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("pricing fetch for course %s: %w", courseID, err)
	}

	if len(rows) == 0 && editorial == nil {
		return nil, apperr.NotFound("course", req.Slug)
	}

	rows, filtered := applyLocationFilter(rows, locationFilter{
		Institution: req.Institution,
		State:       req.State,
		City:        req.City,
	})
	if !filtered && (req.Institution != "" || req.State != "" || req.City != "") {
		log.Warn().
			Str("course_id", courseID).
			Str("state", req.State).
			Str("city", req.City).
			Msg("location filter matched nothing, returning unfiltered offers")
	}

	details := mergeDetails(req.Slug, courseID, editorial, rows)

	if req.Institution != "" && req.State != "" && req.City != "" && req.UnitID != "" {
		detailRows, err := o.pricing.EnrollmentDetail(ctx, partner.EnrollmentQuery{
			CourseID:    courseID,
			Institution: req.Institution,
			State:       req.State,
			City:        req.City,
			UnitID:      req.UnitID,
		})
		if err != nil {
			log.Warn().Err(err).
				Str("course_id", courseID).
				Str("unit_id", req.UnitID).
				Msg("enrollment detail fetch failed, keeping feed-level enrollment")
		} else {
			details.Enrollment = catalog.BuildEnrollmentTree(detailRows)
		}
	}

	return details, nil
}

// mergeDetails combines the two sources with transactional precedence:
// fields derived from the pricing feed always win when rows exist; editorial
// fields only ever fill gaps.
func mergeDetails(slug, courseID string, editorial *model.EditorialCourse, rows []model.RawOfferingRecord) *model.CourseDetails {
	details := &model.CourseDetails{
		Slug:     slug,
		CourseID: courseID,
	}

	if editorial != nil {
		details.Name = editorial.Name
		details.Description = editorial.Description
		details.Methodology = editorial.Methodology
		details.CertificateText = editorial.CertificateText
		details.Coordinator = editorial.Coordinator
		details.Teachers = editorial.Teachers
	}

	if len(rows) > 0 {
		courses := catalog.AggregateCourses(rows)
		summary := courses[0]

		details.Name = summary.Name
		details.Level = summary.Level
		details.Modalities = summary.Modalities
		details.MinPrice = summary.MinPrice

		details.Offerings, details.Units = catalog.BuildOfferings(rows)
		details.Enrollment = catalog.BuildEnrollmentTree(rows)
	}

	return details
}

// SearchRequest describes a course search. Institution is required by the
// handler layer; the rest is optional.
type SearchRequest struct {
	Institution string
	State       string
	City        string
	Page        int
	PerPage     int
}

// Search lists courses available at the units matching the request's
// location, paginated in memory. Unit course fetches run concurrently and a
// failed unit contributes an empty course list rather than failing the
// request.
func (o *Orchestrator) Search(ctx context.Context, req SearchRequest) (*model.SearchResult, error) {
	units, err := o.pricing.Units(ctx, req.Institution, req.State, req.City)
	if err != nil {
		return nil, fmt.Errorf("unit lookup for %s: %w", req.Institution, err)
	}

	rowsPerUnit := make([][]model.RawOfferingRecord, len(units))
	var wg sync.WaitGroup
	for i, unit := range units {
		wg.Add(1)
		go func(i int, unit partner.Unit) {
			defer wg.Done()
			rows, err := o.pricing.UnitCourses(ctx, unit.ID)
			if err != nil {
				log.Warn().Err(err).
					Str("unit_id", unit.ID).
					Str("unit", unit.Name).
					Msg("unit course fetch failed, contributing empty list")
				return
			}
			rowsPerUnit[i] = rows
		}(i, unit)
	}
	wg.Wait()

	var rows []model.RawOfferingRecord
	for _, unitRows := range rowsPerUnit {
		rows = append(rows, unitRows...)
	}

	rows, filtered := applyLocationFilter(rows, locationFilter{
		Institution: req.Institution,
		State:       req.State,
		City:        req.City,
	})
	if !filtered && len(rows) > 0 {
		log.Warn().
			Str("institution", req.Institution).
			Str("state", req.State).
			Str("city", req.City).
			Msg("location filter matched nothing, returning unfiltered courses")
	}

	courses := catalog.AggregateCourses(rows)
	return paginate(courses, req.Page, o.resolvePerPage(req.PerPage)), nil
}

func (o *Orchestrator) resolvePerPage(perPage int) int {
	if perPage <= 0 {
		return o.perPage
	}
	return perPage
}

// paginate slices the aggregated course list in memory and attaches the
// pre-pagination facet counts.
func paginate(courses []model.AggregatedCourse, page, perPage int) *model.SearchResult {
	if page <= 0 {
		page = 1
	}

	total := len(courses)
	totalPages := (total + perPage - 1) / perPage

	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}

	result := &model.SearchResult{
		Courses:        courses[start:end],
		Total:          total,
		CurrentPage:    page,
		TotalPages:     totalPages,
		PerPage:        perPage,
		ModalityCounts: make(map[string]int),
		ShiftCounts:    make(map[string]int),
	}

	for _, c := range courses {
		for _, m := range c.Modalities {
			result.ModalityCounts[m]++
		}
		for _, s := range c.Shifts {
			result.ShiftCounts[s]++
		}
	}

	return result
}
