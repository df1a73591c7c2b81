// Package handler exposes the civic record service over HTTP.
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"statehouse/internal/civic/models"
	"statehouse/internal/civic/service"
	"statehouse/internal/pagination"
	dErrors "statehouse/pkg/domain-errors"
	"statehouse/pkg/platform/httputil"
	"statehouse/pkg/requestcontext"
)

// Service is the read API the handlers serve.
type Service interface {
	ListJurisdictions(ctx context.Context, f service.JurisdictionFilter, p service.ListParams) (*pagination.Page[models.Jurisdiction], error)
	GetJurisdiction(ctx context.Context, token string, include []string) (*models.Jurisdiction, error)
	ListPeople(ctx context.Context, f service.PeopleFilter, p service.ListParams) (*pagination.Page[models.Person], error)
	ListPeopleByLocation(ctx context.Context, lat, lng float64, p service.ListParams) (*pagination.Page[models.Person], error)
	ListBills(ctx context.Context, f service.BillFilter, p service.ListParams) (*pagination.Page[models.Bill], error)
	GetBillByID(ctx context.Context, id string, include []string) (*models.Bill, error)
	GetBill(ctx context.Context, jurisdiction, session, identifier string, include []string) (*models.Bill, error)
	ListCommittees(ctx context.Context, f service.CommitteeFilter, p service.ListParams) (*pagination.Page[models.Committee], error)
	GetCommittee(ctx context.Context, id string, include []string) (*models.Committee, error)
	ListEvents(ctx context.Context, f service.EventFilter, p service.ListParams) (*pagination.Page[models.Event], error)
	GetEvent(ctx context.Context, id string, include []string) (*models.Event, error)
}

// Handler serves the civic record endpoints.
type Handler struct {
	civic  Service
	logger *slog.Logger
}

// New creates a new civic Handler.
func New(civic Service, logger *slog.Logger) *Handler {
	return &Handler{civic: civic, logger: logger}
}

// Register registers the civic routes with the chi router. Detail routes for
// ocd ids use a wildcard because the ids contain slashes.
func (h *Handler) Register(r chi.Router) {
	r.Get("/jurisdictions", h.handleListJurisdictions)
	r.Get("/jurisdictions/*", h.handleGetJurisdiction)

	r.Get("/people", h.handleListPeople)
	r.Get("/people.geo", h.handleListPeopleByLocation)

	r.Get("/bills", h.handleListBills)
	r.Get("/bills/ocd-bill/{id}", h.handleGetBillByID)
	r.Get("/bills/{jurisdiction}/{session}/{identifier}", h.handleGetBill)

	r.Get("/committees", h.handleListCommittees)
	r.Get("/committees/*", h.handleGetCommittee)

	r.Get("/events", h.handleListEvents)
	r.Get("/events/*", h.handleGetEvent)
}

func (h *Handler) handleListJurisdictions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p, err := listParams(q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	page, err := h.civic.ListJurisdictions(r.Context(), service.JurisdictionFilter{
		Classification: q.Get("classification"),
	}, p)
	h.respond(w, r, page, err)
}

func (h *Handler) handleGetJurisdiction(w http.ResponseWriter, r *http.Request) {
	j, err := h.civic.GetJurisdiction(r.Context(), chi.URLParam(r, "*"), r.URL.Query()["include"])
	h.respond(w, r, j, err)
}

func (h *Handler) handleListPeople(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p, err := listParams(q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	page, err := h.civic.ListPeople(r.Context(), service.PeopleFilter{
		Jurisdiction:      q.Get("jurisdiction"),
		Name:              q.Get("name"),
		IDs:               q["id"],
		OrgClassification: q.Get("org_classification"),
		District:          q.Get("district"),
	}, p)
	h.respond(w, r, page, err)
}

func (h *Handler) handleListPeopleByLocation(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p, err := listParams(q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	lat, err := floatParam(q, "lat")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	lng, err := floatParam(q, "lng")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	page, err := h.civic.ListPeopleByLocation(r.Context(), lat, lng, p)
	h.respond(w, r, page, err)
}

func (h *Handler) handleListBills(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p, err := listParams(q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	page, err := h.civic.ListBills(r.Context(), service.BillFilter{
		Jurisdiction:   q.Get("jurisdiction"),
		Session:        q.Get("session"),
		Chamber:        q.Get("chamber"),
		Classification: q.Get("classification"),
		Subject:        q["subject"],
		UpdatedSince:   q.Get("updated_since"),
		CreatedSince:   q.Get("created_since"),
		ActionSince:    q.Get("action_since"),
		Sponsor:        q.Get("sponsor"),
		Q:              q.Get("q"),
		Sort:           q.Get("sort"),
	}, p)
	h.respond(w, r, page, err)
}

func (h *Handler) handleGetBillByID(w http.ResponseWriter, r *http.Request) {
	b, err := h.civic.GetBillByID(r.Context(), chi.URLParam(r, "id"), r.URL.Query()["include"])
	h.respond(w, r, b, err)
}

func (h *Handler) handleGetBill(w http.ResponseWriter, r *http.Request) {
	b, err := h.civic.GetBill(r.Context(),
		chi.URLParam(r, "jurisdiction"),
		chi.URLParam(r, "session"),
		chi.URLParam(r, "identifier"),
		r.URL.Query()["include"],
	)
	h.respond(w, r, b, err)
}

func (h *Handler) handleListCommittees(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p, err := listParams(q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	page, err := h.civic.ListCommittees(r.Context(), service.CommitteeFilter{
		Jurisdiction:   q.Get("jurisdiction"),
		Classification: q.Get("classification"),
		Parent:         q.Get("parent"),
		Chamber:        q.Get("chamber"),
	}, p)
	h.respond(w, r, page, err)
}

func (h *Handler) handleGetCommittee(w http.ResponseWriter, r *http.Request) {
	c, err := h.civic.GetCommittee(r.Context(), chi.URLParam(r, "*"), r.URL.Query()["include"])
	h.respond(w, r, c, err)
}

func (h *Handler) handleListEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p, err := listParams(q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	deleted, err := boolParam(q, "deleted")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	requireBills, err := boolParam(q, "require_bills")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	page, err := h.civic.ListEvents(r.Context(), service.EventFilter{
		Jurisdiction: q.Get("jurisdiction"),
		Deleted:      deleted,
		Before:       q.Get("before"),
		After:        q.Get("after"),
		RequireBills: requireBills,
	}, p)
	h.respond(w, r, page, err)
}

func (h *Handler) handleGetEvent(w http.ResponseWriter, r *http.Request) {
	e, err := h.civic.GetEvent(r.Context(), chi.URLParam(r, "*"), r.URL.Query()["include"])
	h.respond(w, r, e, err)
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, v any, err error) {
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, v)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if dErrors.HasCode(err, dErrors.CodeBadRequest) || dErrors.HasCode(err, dErrors.CodeNotFound) {
		h.logger.InfoContext(r.Context(), "request rejected",
			"request_id", requestcontext.RequestID(r.Context()),
			"path", r.URL.Path,
			"error", err,
		)
	}
	httputil.WriteError(w, err)
}

// listParams reads page, per_page and the repeatable include parameter.
func listParams(q url.Values) (service.ListParams, error) {
	p := service.ListParams{Page: 1, Include: q["include"]}
	if raw := q.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return p, invalidParam("page", raw, "an integer")
		}
		p.Page = n
	}
	if raw := q.Get("per_page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return p, invalidParam("per_page", raw, "an integer")
		}
		p.PerPage = &n
	}
	return p, nil
}

func floatParam(q url.Values, name string) (float64, error) {
	raw := q.Get(name)
	if raw == "" {
		return 0, dErrors.New(dErrors.CodeBadRequest, fmt.Sprintf("'%s' is required", name))
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, invalidParam(name, raw, "a number")
	}
	return f, nil
}

func boolParam(q url.Values, name string) (bool, error) {
	raw := q.Get(name)
	if raw == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, invalidParam(name, raw, "a boolean")
	}
	return b, nil
}

func invalidParam(name, raw, want string) error {
	return dErrors.New(dErrors.CodeBadRequest, fmt.Sprintf("invalid %s '%s', must be %s", name, raw, want))
}
