// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package profiles

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/freight-hierarchy-service/internal/authorization"
	httptypes "github.com/canonical/freight-hierarchy-service/internal/http/types"
	"github.com/canonical/freight-hierarchy-service/internal/identity"
	"github.com/canonical/freight-hierarchy-service/internal/logging"
	"github.com/canonical/freight-hierarchy-service/internal/monitoring"
	"github.com/canonical/freight-hierarchy-service/internal/storage"
	"github.com/canonical/freight-hierarchy-service/internal/tracing"
	"github.com/canonical/freight-hierarchy-service/internal/types"
)

type ReassignRequest struct {
	IdentityID string `json:"identity_id" validate:"required"`
	Role       string `json:"role" validate:"required"`
	CompanyID  string `json:"company_id"`
	CustomerID string `json:"customer_id"`
}

type AddCompanyStaffRequest struct {
	IdentityID string `json:"identity_id" validate:"required"`
}

type AddCustomerStaffRequest struct {
	IdentityID string `json:"identity_id" validate:"required"`
	Role       string `json:"role" validate:"required"`
}

type API struct {
	service    ServiceInterface
	authorizer AuthorizerInterface
	validate   *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, authorizer AuthorizerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.authorizer = authorizer
	a.validate = validator.New(validator.WithRequiredStructEnabled())

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/me", a.handleMe)
	mux.Post("/api/v0/staff", a.handleReassign)
	mux.Delete("/api/v0/staff/{identity_id}", a.handleRemoveStaff)
	mux.Get("/api/v0/companies/{id}/staff", a.handleListCompanyStaff)
	mux.Post("/api/v0/companies/{id}/staff", a.handleAddCompanyStaff)
	mux.Get("/api/v0/customers/{id}/staff", a.handleListCustomerStaff)
	mux.Post("/api/v0/customers/{id}/staff", a.handleAddCustomerStaff)
}

func (a *API) handleMe(w http.ResponseWriter, r *http.Request) {
	authzCtx, ok := a.buildContext(w, r)
	if !ok {
		return
	}

	profile, err := a.service.Profile(r.Context(), authzCtx)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, profile, "")
}

func (a *API) handleReassign(w http.ResponseWriter, r *http.Request) {
	authzCtx, ok := a.buildContext(w, r)
	if !ok {
		return
	}

	var req ReassignRequest
	if !a.decode(w, r, &req) {
		return
	}

	assignment, err := a.service.Reassign(r.Context(), authzCtx, req.IdentityID, types.Role(req.Role), req.CompanyID, req.CustomerID)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, assignment, "role assigned")
}

func (a *API) handleRemoveStaff(w http.ResponseWriter, r *http.Request) {
	authzCtx, ok := a.buildContext(w, r)
	if !ok {
		return
	}

	identityID := chi.URLParam(r, "identity_id")
	if err := a.service.RemoveStaff(r.Context(), authzCtx, identityID); err != nil {
		a.writeServiceError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, nil, "staff removed")
}

func (a *API) handleAddCompanyStaff(w http.ResponseWriter, r *http.Request) {
	authzCtx, ok := a.buildContext(w, r)
	if !ok {
		return
	}

	var req AddCompanyStaffRequest
	if !a.decode(w, r, &req) {
		return
	}

	assignment, err := a.service.AddCompanyStaff(r.Context(), authzCtx, chi.URLParam(r, "id"), req.IdentityID)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusCreated, assignment, "staff added")
}

func (a *API) handleAddCustomerStaff(w http.ResponseWriter, r *http.Request) {
	authzCtx, ok := a.buildContext(w, r)
	if !ok {
		return
	}

	var req AddCustomerStaffRequest
	if !a.decode(w, r, &req) {
		return
	}

	assignment, err := a.service.AddCustomerStaff(r.Context(), authzCtx, chi.URLParam(r, "id"), req.IdentityID, types.Role(req.Role))
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusCreated, assignment, "staff added")
}

func (a *API) handleListCompanyStaff(w http.ResponseWriter, r *http.Request) {
	authzCtx, ok := a.buildContext(w, r)
	if !ok {
		return
	}

	staff, err := a.service.ListCompanyStaff(r.Context(), authzCtx, chi.URLParam(r, "id"))
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, staff, "")
}

func (a *API) handleListCustomerStaff(w http.ResponseWriter, r *http.Request) {
	authzCtx, ok := a.buildContext(w, r)
	if !ok {
		return
	}

	staff, err := a.service.ListCustomerStaff(r.Context(), authzCtx, chi.URLParam(r, "id"))
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, staff, "")
}

func (a *API) buildContext(w http.ResponseWriter, r *http.Request) (*authorization.Context, bool) {
	authzCtx, err := a.authorizer.BuildContext(r.Context(), identity.IdentityID(r.Context()))
	if err != nil {
		a.logger.Errorf("failed to build authorization context: %s", err)
		httptypes.WriteErrorResponse(w, http.StatusInternalServerError, "failed to resolve caller")
		return nil, false
	}
	return authzCtx, true
}

func (a *API) decode(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		httptypes.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func (a *API) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, authorization.ErrUnauthorized):
		httptypes.WriteErrorResponse(w, http.StatusForbidden, "not authorized")
	case errors.Is(err, ErrInvalidRoleLinkage):
		httptypes.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrNotFound):
		httptypes.WriteErrorResponse(w, http.StatusNotFound, "not found")
	case errors.Is(err, storage.ErrDuplicateKey):
		httptypes.WriteErrorResponse(w, http.StatusConflict, "already exists")
	default:
		a.logger.Errorf("profiles request failed: %s", err)
		httptypes.WriteErrorResponse(w, http.StatusInternalServerError, "internal server error")
	}
}
