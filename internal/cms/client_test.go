package cms

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlima/coursehub/internal/apperr"
)

const courseJSON = `{
	"data": [{
		"id": 7,
		"attributes": {
			"slug": "administracao",
			"courseId": "C1",
			"name": "Administração",
			"description": "Descrição longa",
			"methodology": "Metodologia ativa",
			"certificateText": "Diploma reconhecido",
			"coordinator": {"name": "Profa. Ana"},
			"teachers": [{"name": "Prof. Bruno"}, {"name": "Profa. Carla"}]
		}
	}],
	"meta": {"pagination": {"page": 1, "pageSize": 1, "pageCount": 1, "total": 1}}
}`

func TestCourseBySlug(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		assert.Equal(t, "/api/courses", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.Write([]byte(courseJSON))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret", 2*time.Second)
	course, err := client.CourseBySlug(context.Background(), "administracao")
	require.NoError(t, err)

	assert.Equal(t, "C1", course.CourseID)
	assert.Equal(t, "Administração", course.Name)
	assert.Equal(t, "Profa. Ana", course.Coordinator)
	assert.Equal(t, []string{"Prof. Bruno", "Profa. Carla"}, course.Teachers)
	assert.Contains(t, gotQuery, "administracao")
}

func TestCourseBySlugEmptyDataIsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [], "meta": {"pagination": {"total": 0}}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", 2*time.Second)
	_, err := client.CourseBySlug(context.Background(), "missing")
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestCourseBySlugUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", 2*time.Second)
	_, err := client.CourseBySlug(context.Background(), "administracao")
	assert.True(t, errors.Is(err, apperr.ErrUpstream))
}

func TestCourseBySlugTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", 20*time.Millisecond)
	_, err := client.CourseBySlug(context.Background(), "administracao")
	assert.True(t, errors.Is(err, apperr.ErrTimeout))
}
