// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

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
	"github.com/canonical/freight-hierarchy-service/pkg/profiles"
)

type IssueRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Role       string `json:"role" validate:"required"`
	CompanyID  string `json:"company_id"`
	CustomerID string `json:"customer_id"`
}

type AcceptRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// InvitationResponse omits the token except on issuance, where the caller
// may need it for out-of-band delivery.
type InvitationResponse struct {
	ID         string     `json:"id"`
	Email      string     `json:"email"`
	Role       types.Role `json:"role"`
	CompanyID  string     `json:"company_id,omitempty"`
	CustomerID string     `json:"customer_id,omitempty"`
	ExpiresAt  string     `json:"expires_at"`
	Accepted   bool       `json:"accepted"`
	Token      string     `json:"token,omitempty"`
}

func newInvitationResponse(inv *types.Invitation, includeToken bool) *InvitationResponse {
	resp := &InvitationResponse{
		ID:         inv.ID,
		Email:      inv.Email,
		Role:       inv.Role,
		CompanyID:  inv.CompanyID,
		CustomerID: inv.CustomerID,
		ExpiresAt:  inv.ExpiresAt.Format("2006-01-02T15:04:05Z07:00"),
		Accepted:   inv.Accepted,
	}
	if includeToken {
		resp.Token = inv.Token
	}
	return resp
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
	mux.Post("/api/v0/invitations", a.handleIssue)
	mux.Get("/api/v0/invitations", a.handleList)
	mux.Get("/api/v0/invitations/{token}", a.handleGet)
	mux.Post("/api/v0/invitations/{token}/accept", a.handleAccept)
}

func (a *API) handleIssue(w http.ResponseWriter, r *http.Request) {
	authzCtx, err := a.authorizer.BuildContext(r.Context(), identity.IdentityID(r.Context()))
	if err != nil {
		a.logger.Errorf("failed to build authorization context: %s", err)
		httptypes.WriteErrorResponse(w, http.StatusInternalServerError, "failed to resolve caller")
		return
	}

	var req IssueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	invitation, err := a.service.Issue(r.Context(), authzCtx, req.Email, types.Role(req.Role), req.CompanyID, req.CustomerID)
	if errors.Is(err, ErrDeliveryFailure) {
		// The invitation is recorded and stays valid; only delivery failed.
		httptypes.WriteResponse(w, http.StatusBadGateway, newInvitationResponse(invitation, true), err.Error())
		return
	}
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusCreated, newInvitationResponse(invitation, true), "invitation issued")
}

func (a *API) handleList(w http.ResponseWriter, r *http.Request) {
	authzCtx, err := a.authorizer.BuildContext(r.Context(), identity.IdentityID(r.Context()))
	if err != nil {
		a.logger.Errorf("failed to build authorization context: %s", err)
		httptypes.WriteErrorResponse(w, http.StatusInternalServerError, "failed to resolve caller")
		return
	}

	invitations, err := a.service.List(r.Context(), authzCtx)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	resp := make([]*InvitationResponse, 0, len(invitations))
	for _, inv := range invitations {
		resp = append(resp, newInvitationResponse(inv, false))
	}

	httptypes.WriteResponse(w, http.StatusOK, resp, "")
}

func (a *API) handleGet(w http.ResponseWriter, r *http.Request) {
	invitation, err := a.service.Get(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, newInvitationResponse(invitation, false), "")
}

func (a *API) handleAccept(w http.ResponseWriter, r *http.Request) {
	var req AcceptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	assignment, err := a.service.Accept(r.Context(), chi.URLParam(r, "token"), req.Username, req.Password)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, assignment, "invitation accepted")
}

func (a *API) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, authorization.ErrUnauthorized):
		httptypes.WriteErrorResponse(w, http.StatusForbidden, "not authorized")
	case errors.Is(err, profiles.ErrInvalidRoleLinkage):
		httptypes.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrExpired):
		httptypes.WriteErrorResponse(w, http.StatusGone, err.Error())
	case errors.Is(err, ErrAlreadyAccepted):
		httptypes.WriteErrorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, storage.ErrNotFound):
		httptypes.WriteErrorResponse(w, http.StatusNotFound, "invitation not found")
	default:
		a.logger.Errorf("invitations request failed: %s", err)
		httptypes.WriteErrorResponse(w, http.StatusInternalServerError, "internal server error")
	}
}
