package main

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgo/jobly/internal/model"
	"github.com/forgo/jobly/internal/testing/fixtures"
	"github.com/forgo/jobly/internal/testing/helpers"
	"github.com/forgo/jobly/internal/testing/testdb"
)

/*
FEATURE: Jobs API
DOMAIN: Jobs

These run the fully wired handler against PostgreSQL and are skipped
unless TEST_DATABASE_URL is set.

  - anonymous callers can list, logged-in users can read, admins can write
  - create then get returns the created record
  - update then get reflects exactly the updated fields
  - get/update/delete of an unknown id answer 404
  - minSalary < 0 answers 400; listing without filters is ordered by title
*/

type apiFixture struct {
	h     http.Handler
	tdb   *testdb.TestDB
	seed  []*model.Job
	admin string
	user  string
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	tdb := testdb.New(t)
	t.Cleanup(tdb.Close)

	jh := helpers.NewJWTHelper(t)
	return &apiFixture{
		h:     newHandler(tdb.DB, jh.Service, []string{"http://localhost:3000"}),
		tdb:   tdb,
		seed:  fixtures.New(tdb.DB).SeedJobs(t),
		admin: jh.AdminToken(),
		user:  jh.UserToken(),
	}
}

func TestAPI_Health(t *testing.T) {
	api := newAPIFixture(t)

	rec := helpers.NewRequest(t, http.MethodGet, "/health").Do(api.h)
	helpers.AssertStatus(t, rec, http.StatusOK)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestAPI_CreateThenGet(t *testing.T) {
	api := newAPIFixture(t)

	rec := helpers.NewRequest(t, http.MethodPost, "/jobs").
		WithToken(api.admin).
		WithRawBody(`{"title":"new","salary":10,"equity":"0.2","company_handle":"c1"}`).
		Do(api.h)
	helpers.AssertStatus(t, rec, http.StatusCreated)
	created := helpers.DecodeJob(t, rec)
	require.NotZero(t, created.ID)

	rec = helpers.NewRequest(t, http.MethodGet, "/jobs/"+strconv.Itoa(created.ID)).
		WithToken(api.user).
		Do(api.h)
	helpers.AssertStatus(t, rec, http.StatusOK)
	assert.Equal(t, created, helpers.DecodeJob(t, rec))
	assert.Equal(t, 5, api.tdb.Count("jobs"))
}

func TestAPI_CreateUnknownCompany(t *testing.T) {
	api := newAPIFixture(t)

	rec := helpers.NewRequest(t, http.MethodPost, "/jobs").
		WithToken(api.admin).
		WithBody(map[string]any{"title": "new", "company_handle": "nope"}).
		Do(api.h)
	helpers.AssertProblemDetails(t, rec, http.StatusInternalServerError, model.ErrCodeInternal)
}

func TestAPI_UpdateThenGet(t *testing.T) {
	api := newAPIFixture(t)
	j1 := api.seed[0]

	rec := helpers.NewRequest(t, http.MethodPatch, "/jobs/"+strconv.Itoa(j1.ID)).
		WithToken(api.admin).
		WithBody(map[string]any{"title": "j1-new", "salary": 100}).
		Do(api.h)
	helpers.AssertStatus(t, rec, http.StatusOK)

	rec = helpers.NewRequest(t, http.MethodGet, "/jobs/"+strconv.Itoa(j1.ID)).
		WithToken(api.user).
		Do(api.h)
	got := helpers.DecodeJob(t, rec)

	want := *j1
	want.Title = "j1-new"
	want.Salary = helpers.IntPtr(100)
	assert.Equal(t, want, got)
}

func TestAPI_UpdateEmptyBody(t *testing.T) {
	api := newAPIFixture(t)

	rec := helpers.NewRequest(t, http.MethodPatch, "/jobs/"+strconv.Itoa(api.seed[0].ID)).
		WithToken(api.admin).
		WithRawBody(`{}`).
		Do(api.h)
	helpers.AssertProblemDetails(t, rec, http.StatusBadRequest, model.ErrCodeInvalidInput)
}

func TestAPI_UnknownID(t *testing.T) {
	api := newAPIFixture(t)

	tests := []struct {
		method string
		token  string
		body   any
	}{
		{http.MethodGet, api.user, nil},
		{http.MethodPatch, api.admin, map[string]any{"title": "x"}},
		{http.MethodDelete, api.admin, nil},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			rb := helpers.NewRequest(t, tt.method, "/jobs/0").WithToken(tt.token)
			if tt.body != nil {
				rb = rb.WithBody(tt.body)
			}
			helpers.AssertProblemDetails(t, rb.Do(api.h), http.StatusNotFound, model.ErrCodeNotFound)
		})
	}
}

func TestAPI_Delete(t *testing.T) {
	api := newAPIFixture(t)
	id := strconv.Itoa(api.seed[0].ID)

	rec := helpers.NewRequest(t, http.MethodDelete, "/jobs/"+id).WithToken(api.admin).Do(api.h)
	helpers.AssertStatus(t, rec, http.StatusOK)
	assert.JSONEq(t, `{"deleted":"job id: `+id+`"}`, rec.Body.String())

	rec = helpers.NewRequest(t, http.MethodGet, "/jobs/"+id).WithToken(api.user).Do(api.h)
	helpers.AssertStatus(t, rec, http.StatusNotFound)
}

func TestAPI_List(t *testing.T) {
	api := newAPIFixture(t)

	titles := func(jobs []model.Job) []string {
		out := make([]string, len(jobs))
		for i, j := range jobs {
			out[i] = j.Title
		}
		return out
	}

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"j1", "j2", "j3", "j4"}},
		{"?hasEquity=true", []string{"j1", "j2"}},
		{"?minSalary=0", []string{"j1", "j2", "j3"}},
		{"?minSalary=2&title=J", []string{"j2", "j3"}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			rec := helpers.NewRequest(t, http.MethodGet, "/jobs"+tt.query).Do(api.h)
			helpers.AssertStatus(t, rec, http.StatusOK)
			assert.Equal(t, tt.want, titles(helpers.DecodeJobs(t, rec)))
		})
	}

	rec := helpers.NewRequest(t, http.MethodGet, "/jobs?minSalary=-1").Do(api.h)
	helpers.AssertProblemDetails(t, rec, http.StatusBadRequest, model.ErrCodeInvalidInput)
}

func TestAPI_Authorization(t *testing.T) {
	api := newAPIFixture(t)
	id := strconv.Itoa(api.seed[0].ID)

	rec := helpers.NewRequest(t, http.MethodGet, "/jobs/"+id).Do(api.h)
	helpers.AssertStatus(t, rec, http.StatusUnauthorized)

	rec = helpers.NewRequest(t, http.MethodDelete, "/jobs/"+id).WithToken(api.user).Do(api.h)
	helpers.AssertStatus(t, rec, http.StatusUnauthorized)
	assert.Equal(t, 4, api.tdb.Count("jobs"))
}
