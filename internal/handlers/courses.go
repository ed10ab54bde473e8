// Package handlers exposes the engine over HTTP. Handlers validate query
// parameters, run the orchestrator and map error kinds to status codes; they
// own the response envelope and caching headers, nothing else.
package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/dlima/coursehub/internal/apperr"
	"github.com/dlima/coursehub/internal/geo"
	"github.com/dlima/coursehub/internal/model"
	"github.com/dlima/coursehub/internal/search"
)

// CourseService is the orchestrator surface the handlers consume.
type CourseService interface {
	CourseDetails(ctx context.Context, req search.DetailsRequest) (*model.CourseDetails, error)
	Search(ctx context.Context, req search.SearchRequest) (*model.SearchResult, error)
}

// CampusProvider serves the cached campus reference dataset.
type CampusProvider interface {
	Get(ctx context.Context) ([]geo.Campus, error)
}

const cacheHeader = "public, max-age=300"

func CourseDetailsHandler(svc CourseService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := context.Background()

		slug := c.Params("slug")
		if slug == "" {
			return errorResponse(c, apperr.Validation("slug"))
		}

		details, err := svc.CourseDetails(ctx, search.DetailsRequest{
			Slug:        slug,
			Institution: c.Query("institution"),
			State:       c.Query("state"),
			City:        c.Query("city"),
			UnitID:      c.Query("unit"),
		})
		if err != nil {
			log.Error().Err(err).Str("slug", slug).Msg("course details failed")
			return errorResponse(c, err)
		}

		c.Set(fiber.HeaderCacheControl, cacheHeader)
		return c.JSON(details)
	}
}

func SearchCoursesHandler(svc CourseService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := context.Background()

		institution := c.Query("institution")
		if institution == "" {
			return errorResponse(c, apperr.Validation("institution"))
		}

		result, err := svc.Search(ctx, search.SearchRequest{
			Institution: institution,
			State:       c.Query("state"),
			City:        c.Query("city"),
			Page:        c.QueryInt("page", 1),
			PerPage:     c.QueryInt("perPage", 0),
		})
		if err != nil {
			log.Error().Err(err).Str("institution", institution).Msg("course search failed")
			return errorResponse(c, err)
		}

		c.Set(fiber.HeaderCacheControl, cacheHeader)
		return c.JSON(result)
	}
}

func CampusesHandler(campuses CampusProvider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := context.Background()

		entries, err := campuses.Get(ctx)
		if err != nil {
			log.Error().Err(err).Msg("campus lookup failed")
			return errorResponse(c, err)
		}

		c.Set(fiber.HeaderCacheControl, cacheHeader)
		return c.JSON(entries)
	}
}

func HealthHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	}
}

// errorResponse maps the engine's error taxonomy onto HTTP statuses:
// validation → 400, not-found → 404, timeout → 503 (service unavailable,
// not missing), any other upstream failure → 502.
func errorResponse(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, apperr.ErrValidation):
		status = fiber.StatusBadRequest
	case errors.Is(err, apperr.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, apperr.ErrTimeout):
		status = fiber.StatusServiceUnavailable
	case errors.Is(err, apperr.ErrUpstream):
		status = fiber.StatusBadGateway
	}

	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
