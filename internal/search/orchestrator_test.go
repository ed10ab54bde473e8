package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlima/coursehub/internal/apperr"
	"github.com/dlima/coursehub/internal/model"
	"github.com/dlima/coursehub/internal/partner"
)

type fakeEditorial struct {
	course *model.EditorialCourse
	err    error
}

func (f *fakeEditorial) CourseBySlug(ctx context.Context, slug string) (*model.EditorialCourse, error) {
	return f.course, f.err
}

type fakePricing struct {
	prices     []model.RawOfferingRecord
	pricesErr  error
	units      []partner.Unit
	unitsErr   error
	unitRows   map[string][]model.RawOfferingRecord
	unitErrs   map[string]error
	detail     []model.RawOfferingRecord
	detailErr  error
	detailSeen *partner.EnrollmentQuery
}

func (f *fakePricing) CoursePrices(ctx context.Context, courseID string) ([]model.RawOfferingRecord, error) {
	return f.prices, f.pricesErr
}

func (f *fakePricing) UnitCourses(ctx context.Context, unitID string) ([]model.RawOfferingRecord, error) {
	if err, ok := f.unitErrs[unitID]; ok {
		return nil, err
	}
	return f.unitRows[unitID], nil
}

func (f *fakePricing) Units(ctx context.Context, institution, state, city string) ([]partner.Unit, error) {
	return f.units, f.unitsErr
}

func (f *fakePricing) EnrollmentDetail(ctx context.Context, query partner.EnrollmentQuery) ([]model.RawOfferingRecord, error) {
	f.detailSeen = &query
	return f.detail, f.detailErr
}

func row(courseID, brand, state, city string) model.RawOfferingRecord {
	return model.RawOfferingRecord{
		Brand:        brand,
		UnitID:       "U-" + city,
		UnitName:     "Campus " + city,
		UnitCity:     city,
		UnitState:    state,
		CourseID:     courseID,
		CourseName:   "Curso " + courseID,
		Modality:     "Presencial",
		Level:        "Graduação",
		ShiftID:      "T1",
		ShiftName:    "Manhã",
		MonthlyPrice: "500,00",
		CheckoutURL:  "https://x.com/p/a/ENE/P",
	}
}

func editorial() *model.EditorialCourse {
	return &model.EditorialCourse{
		Slug:        "administracao",
		CourseID:    "C1",
		Name:        "Administração (editorial)",
		Description: "Longa descrição editorial",
		Methodology: "Metodologia ativa",
		Coordinator: "Profa. Ana",
		Teachers:    []string{"Prof. Bruno"},
	}
}

func TestCourseDetailsMergePrecedence(t *testing.T) {
	pricing := &fakePricing{prices: []model.RawOfferingRecord{
		row("C1", "UniTest", "SP", "São Paulo"),
	}}
	orch := NewOrchestrator(&fakeEditorial{course: editorial()}, pricing, 12)

	details, err := orch.CourseDetails(context.Background(), DetailsRequest{Slug: "administracao"})
	require.NoError(t, err)

	// Transactional fields win over editorial ones.
	assert.Equal(t, "Curso C1", details.Name)
	assert.Equal(t, []string{"presencial"}, details.Modalities)
	require.Len(t, details.Offerings, 1)
	require.Len(t, details.Units, 1)
	require.Len(t, details.Enrollment.Shifts, 1)
	require.NotNil(t, details.MinPrice)
	assert.Equal(t, 500.0, *details.MinPrice)

	// Editorial fields fill the gaps the feed cannot.
	assert.Equal(t, "Longa descrição editorial", details.Description)
	assert.Equal(t, "Metodologia ativa", details.Methodology)
	assert.Equal(t, "Profa. Ana", details.Coordinator)
}

func TestCourseDetailsToleratesMissingEditorial(t *testing.T) {
	pricing := &fakePricing{prices: []model.RawOfferingRecord{
		row("C1", "UniTest", "SP", "São Paulo"),
	}}
	orch := NewOrchestrator(&fakeEditorial{err: apperr.NotFound("editorial course", "x")}, pricing, 12)

	details, err := orch.CourseDetails(context.Background(), DetailsRequest{Slug: "C1"})
	require.NoError(t, err)
	assert.Equal(t, "Curso C1", details.Name)
	assert.Empty(t, details.Description)
}

func TestCourseDetailsPricingFailureIsFatal(t *testing.T) {
	pricing := &fakePricing{pricesErr: apperr.Upstream("partner feed", 502)}
	orch := NewOrchestrator(&fakeEditorial{course: editorial()}, pricing, 12)

	_, err := orch.CourseDetails(context.Background(), DetailsRequest{Slug: "administracao"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrUpstream))
}

func TestCourseDetailsNotFoundWhenBothSourcesEmpty(t *testing.T) {
	orch := NewOrchestrator(&fakeEditorial{err: apperr.NotFound("editorial course", "x")}, &fakePricing{}, 12)

	_, err := orch.CourseDetails(context.Background(), DetailsRequest{Slug: "nope"})
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestCourseDetailsLocationFilterAndFallback(t *testing.T) {
	pricing := &fakePricing{prices: []model.RawOfferingRecord{
		row("C1", "UniTest", "SP", "São Paulo"),
		row("C1", "UniTest", "SP", "Campinas"),
	}}
	orch := NewOrchestrator(&fakeEditorial{err: apperr.NotFound("editorial course", "x")}, pricing, 12)

	// Exact match narrows the offer list.
	details, err := orch.CourseDetails(context.Background(), DetailsRequest{Slug: "C1", City: "campinas"})
	require.NoError(t, err)
	require.Len(t, details.Offerings, 1)
	assert.Equal(t, "Campinas", details.Units[0].City)

	// A city with no offers falls back to the unfiltered set.
	details, err = orch.CourseDetails(context.Background(), DetailsRequest{Slug: "C1", City: "Manaus"})
	require.NoError(t, err)
	assert.Len(t, details.Offerings, 2)
}

func TestCourseDetailsEnrichmentRequiresFullContext(t *testing.T) {
	pricing := &fakePricing{
		prices: []model.RawOfferingRecord{row("C1", "UniTest", "SP", "São Paulo")},
		detail: []model.RawOfferingRecord{
			row("C1", "UniTest", "SP", "São Paulo"),
			func() model.RawOfferingRecord {
				r := row("C1", "UniTest", "SP", "São Paulo")
				r.ShiftID = "T2"
				r.ShiftName = "Noite"
				return r
			}(),
		},
	}
	orch := NewOrchestrator(&fakeEditorial{err: apperr.NotFound("editorial course", "x")}, pricing, 12)

	// Partial context: no enrichment call.
	_, err := orch.CourseDetails(context.Background(), DetailsRequest{Slug: "C1", State: "SP"})
	require.NoError(t, err)
	assert.Nil(t, pricing.detailSeen)

	// Full context: enrollment tree comes from the detail feed.
	details, err := orch.CourseDetails(context.Background(), DetailsRequest{
		Slug: "C1", Institution: "UniTest", State: "SP", City: "São Paulo", UnitID: "U-São Paulo",
	})
	require.NoError(t, err)
	require.NotNil(t, pricing.detailSeen)
	assert.Equal(t, "C1", pricing.detailSeen.CourseID)
	assert.Len(t, details.Enrollment.Shifts, 2)
}

func TestCourseDetailsEnrichmentFailureKeepsBaseTree(t *testing.T) {
	pricing := &fakePricing{
		prices:    []model.RawOfferingRecord{row("C1", "UniTest", "SP", "São Paulo")},
		detailErr: apperr.Timeout("partner feed"),
	}
	orch := NewOrchestrator(&fakeEditorial{err: apperr.NotFound("editorial course", "x")}, pricing, 12)

	details, err := orch.CourseDetails(context.Background(), DetailsRequest{
		Slug: "C1", Institution: "UniTest", State: "SP", City: "São Paulo", UnitID: "U-São Paulo",
	})
	require.NoError(t, err)
	assert.Len(t, details.Enrollment.Shifts, 1)
}

func searchRows() map[string][]model.RawOfferingRecord {
	rows := make(map[string][]model.RawOfferingRecord)
	// 10 courses spread over two units; 3 in Campinas.
	for i := 0; i < 7; i++ {
		r := row(courseID(i), "UniTest", "SP", "São Paulo")
		rows["U1"] = append(rows["U1"], r)
	}
	for i := 7; i < 10; i++ {
		r := row(courseID(i), "UniTest", "SP", "Campinas")
		r.UnitID = "U2"
		rows["U2"] = append(rows["U2"], r)
	}
	return rows
}

func courseID(i int) string {
	return string(rune('A' + i))
}

func searchUnits() []partner.Unit {
	return []partner.Unit{
		{ID: "U1", Name: "Campus São Paulo", City: "São Paulo", State: "SP"},
		{ID: "U2", Name: "Campus Campinas", City: "Campinas", State: "SP"},
	}
}

func TestSearchFiltersAndPaginates(t *testing.T) {
	pricing := &fakePricing{units: searchUnits(), unitRows: searchRows()}
	orch := NewOrchestrator(&fakeEditorial{}, pricing, 12)

	page1, err := orch.Search(context.Background(), SearchRequest{
		Institution: "UniTest", City: "Campinas", Page: 1, PerPage: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, page1.Total)
	assert.Equal(t, 2, page1.TotalPages)
	assert.Equal(t, 1, page1.CurrentPage)
	assert.Equal(t, 2, page1.PerPage)
	assert.Len(t, page1.Courses, 2)

	page2, err := orch.Search(context.Background(), SearchRequest{
		Institution: "UniTest", City: "Campinas", Page: 2, PerPage: 2,
	})
	require.NoError(t, err)
	assert.Len(t, page2.Courses, 1)
}

func TestSearchEmptyFilterFallsBackToAll(t *testing.T) {
	pricing := &fakePricing{units: searchUnits(), unitRows: searchRows()}
	orch := NewOrchestrator(&fakeEditorial{}, pricing, 12)

	result, err := orch.Search(context.Background(), SearchRequest{
		Institution: "UniTest", City: "Manaus", PerPage: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, result.Total)
	assert.Len(t, result.Courses, 10)
}

func TestSearchIsolatesUnitFailures(t *testing.T) {
	pricing := &fakePricing{
		units:    searchUnits(),
		unitRows: searchRows(),
		unitErrs: map[string]error{"U1": apperr.Timeout("partner feed")},
	}
	orch := NewOrchestrator(&fakeEditorial{}, pricing, 12)

	result, err := orch.Search(context.Background(), SearchRequest{Institution: "UniTest", PerPage: 20})
	require.NoError(t, err)
	// U1's failure contributes nothing; U2's three courses survive.
	assert.Equal(t, 3, result.Total)
}

func TestSearchUnitLookupFailureIsFatal(t *testing.T) {
	pricing := &fakePricing{unitsErr: apperr.Upstream("partner feed", 503)}
	orch := NewOrchestrator(&fakeEditorial{}, pricing, 12)

	_, err := orch.Search(context.Background(), SearchRequest{Institution: "UniTest"})
	assert.True(t, errors.Is(err, apperr.ErrUpstream))
}

func TestSearchFacetCountsCoverWholeResultSet(t *testing.T) {
	pricing := &fakePricing{units: searchUnits(), unitRows: searchRows()}
	orch := NewOrchestrator(&fakeEditorial{}, pricing, 12)

	result, err := orch.Search(context.Background(), SearchRequest{Institution: "UniTest", PerPage: 2})
	require.NoError(t, err)
	assert.Len(t, result.Courses, 2)
	// Counts are computed before pagination.
	assert.Equal(t, 10, result.ModalityCounts["presencial"])
	assert.Equal(t, 10, result.ShiftCounts["morning"])
}
