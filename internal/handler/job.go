package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/forgo/jobly/internal/middleware"
	"github.com/forgo/jobly/internal/model"
)

// JobService is the business logic the job handler delegates to
type JobService interface {
	CreateJob(ctx context.Context, req model.CreateJobRequest) (*model.Job, error)
	ListJobs(ctx context.Context, filter model.JobFilter) ([]*model.Job, error)
	GetJob(ctx context.Context, id int) (*model.Job, error)
	UpdateJob(ctx context.Context, id int, req model.UpdateJobRequest) (*model.Job, error)
	DeleteJob(ctx context.Context, id int) error
}

// JobHandler handles job HTTP requests
type JobHandler struct {
	svc       JobService
	validator *Validator
}

// JobHandlerConfig holds the dependencies of the job handler
type JobHandlerConfig struct {
	JobService JobService
	Validator  *Validator
}

// NewJobHandler creates a new job handler
func NewJobHandler(cfg JobHandlerConfig) *JobHandler {
	v := cfg.Validator
	if v == nil {
		v = NewValidator()
	}
	return &JobHandler{svc: cfg.JobService, validator: v}
}

// RegisterRoutes mounts the job endpoints on mux. auth guards routes for
// logged-in users and admin guards the mutating ones.
func (h *JobHandler) RegisterRoutes(mux *http.ServeMux, auth, admin middleware.Middleware) {
	mux.Handle("POST /jobs", admin(http.HandlerFunc(h.Create)))
	mux.HandleFunc("GET /jobs", h.List)
	mux.Handle("GET /jobs/{id}", auth(http.HandlerFunc(h.Get)))
	mux.Handle("PATCH /jobs/{id}", admin(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /jobs/{id}", admin(http.HandlerFunc(h.Delete)))
}

// Create handles POST /jobs - create a new job
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateJobRequest
	if err := DecodeJSON(w, r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body: "+err.Error()))
		return
	}
	if errs := h.validator.Struct(&req); errs != nil {
		WriteError(w, model.NewValidationError(errs))
		return
	}

	job, err := h.svc.CreateJob(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "create job")
		return
	}

	WriteJSON(w, http.StatusCreated, JobResponse{Job: job})
}

// List handles GET /jobs - list jobs, optionally filtered by
// ?title=, ?minSalary= and ?hasEquity=
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, pd := parseJobFilter(r)
	if pd != nil {
		WriteError(w, pd)
		return
	}

	jobs, err := h.svc.ListJobs(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err, "list jobs")
		return
	}

	WriteJSON(w, http.StatusOK, JobsResponse{Jobs: jobs})
}

// Get handles GET /jobs/{id} - get job details
func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, pd := jobID(r)
	if pd != nil {
		WriteError(w, pd)
		return
	}

	job, err := h.svc.GetJob(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "get job")
		return
	}

	WriteJSON(w, http.StatusOK, JobResponse{Job: job})
}

// Update handles PATCH /jobs/{id} - update some fields of a job
func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, pd := jobID(r)
	if pd != nil {
		WriteError(w, pd)
		return
	}

	var req model.UpdateJobRequest
	if err := DecodeJSON(w, r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body: "+err.Error()))
		return
	}
	if errs := h.validator.Struct(&req); errs != nil {
		WriteError(w, model.NewValidationError(errs))
		return
	}

	job, err := h.svc.UpdateJob(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, r, err, "update job")
		return
	}

	WriteJSON(w, http.StatusOK, JobResponse{Job: job})
}

// Delete handles DELETE /jobs/{id} - delete a job
func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, pd := jobID(r)
	if pd != nil {
		WriteError(w, pd)
		return
	}

	if err := h.svc.DeleteJob(r.Context(), id); err != nil {
		writeServiceError(w, r, err, "delete job")
		return
	}

	WriteJSON(w, http.StatusOK, DeletedResponse{Deleted: fmt.Sprintf("job id: %d", id)})
}

func jobID(r *http.Request) (int, *model.ProblemDetails) {
	raw := r.PathValue("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, model.NewBadRequestError(fmt.Sprintf("invalid job id %q", raw))
	}
	return id, nil
}

// parseJobFilter reads the listing filters from the query string.
// An absent parameter adds no constraint; hasEquity only counts when true.
func parseJobFilter(r *http.Request) (model.JobFilter, *model.ProblemDetails) {
	q := r.URL.Query()
	var filter model.JobFilter

	if q.Has("minSalary") {
		n, err := strconv.Atoi(q.Get("minSalary"))
		if err != nil {
			return filter, model.NewValidationError([]model.FieldError{{Field: "minSalary", Message: "must be an integer"}})
		}
		filter.MinSalary = &n
	}

	if q.Has("title") {
		title := q.Get("title")
		filter.Title = &title
	}

	if b, err := strconv.ParseBool(q.Get("hasEquity")); err == nil && b {
		filter.HasEquity = true
	}

	return filter, nil
}
