// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package hierarchy

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

type RegisterCompanyRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type RegisterCustomerRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type SetCompaniesRequest struct {
	CompanyIDs []string `json:"company_ids" validate:"required"`
}

type CreateShipmentRequest struct {
	Reference   string `json:"reference" validate:"required"`
	Origin      string `json:"origin" validate:"required"`
	Destination string `json:"destination" validate:"required"`
	Status      string `json:"status"`
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
	mux.Post("/api/v0/companies", a.handleRegisterCompany)
	mux.Get("/api/v0/companies", a.handleListCompanies)
	mux.Get("/api/v0/companies/{id}/customers", a.handleListLinkedCustomers)
	mux.Post("/api/v0/companies/{id}/customers/{customer_id}", a.handleLink)
	mux.Delete("/api/v0/companies/{id}/customers/{customer_id}", a.handleUnlink)
	mux.Post("/api/v0/customers", a.handleRegisterCustomer)
	mux.Get("/api/v0/customers", a.handleListCustomers)
	mux.Get("/api/v0/customers/{id}/companies", a.handleListLinkedCompanies)
	mux.Put("/api/v0/customers/{id}/companies", a.handleSetCompanies)
	mux.Post("/api/v0/shipments", a.handleCreateShipment)
	mux.Get("/api/v0/shipments", a.handleListShipments)
	mux.Delete("/api/v0/shipments/{id}", a.handleDeleteShipment)
}

func (a *API) handleRegisterCompany(w http.ResponseWriter, r *http.Request) {
	authzCtx, ok := a.buildContext(w, r)
	if !ok {
		return
	}

	var req RegisterCompanyRequest
	if !a.decode(w, r, &req) {
		return
	}

	company, err := a.service.RegisterFreightCompany(r.Context(), authzCtx, &types.FreightCompany{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusCreated, company, "company registered")
}

func (a *API) handleListCompanies(w http.ResponseWriter, r *http.Request) {
	authzCtx, ok := a.buildContext(w, r)
	if !ok {
		return
	}

	companies, err := a.service.ListFreightCompanies(r.Context(), authzCtx)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, companies, "")
}

func (a *API) handleRegisterCustomer(w http.ResponseWriter, r *http.Request) {
	authzCtx, ok := a.buildContext(w, r)
	if !ok {
		return
	}

	var req RegisterCustomerRequest
	if !a.decode(w, r, &req) {
		return
	}

	customer, err := a.service.RegisterEndCustomer(r.Context(), authzCtx, &types.EndCustomer{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusCreated, customer, "customer registered")
}

func (a *API) handleListCustomers(w http.ResponseWriter, r *http.Request) {
	authzCtx, ok := a.buildContext(w, r)
	if !ok {
		return
	}

	customers, err := a.service.ListEndCustomers(r.Context(), authzCtx)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, customers, "")
}

func (a *API) handleLink(w http.ResponseWriter, r *http.Request) {
	authzCtx, ok := a.buildContext(w, r)
	if !ok {
		return
	}

	err := a.service.LinkEndCustomer(r.Context(), authzCtx, chi.URLParam(r, "id"), chi.URLParam(r, "customer_id"))
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusCreated, nil, "customer linked")
}

func (a *API) handleUnlink(w http.ResponseWriter, r *http.Request) {
	authzCtx, ok := a.buildContext(w, r)
	if !ok {
		return
	}

	err := a.service.UnlinkEndCustomer(r.Context(), authzCtx, chi.URLParam(r, "id"), chi.URLParam(r, "customer_id"))
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, nil, "customer unlinked")
}

func (a *API) handleListLinkedCustomers(w http.ResponseWriter, r *http.Request) {
	authzCtx, ok := a.buildContext(w, r)
	if !ok {
		return
	}

	customers, err := a.service.ListLinkedCustomers(r.Context(), authzCtx, chi.URLParam(r, "id"))
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, customers, "")
}

func (a *API) handleListLinkedCompanies(w http.ResponseWriter, r *http.Request) {
	authzCtx, ok := a.buildContext(w, r)
	if !ok {
		return
	}

	companies, err := a.service.ListLinkedCompanies(r.Context(), authzCtx, chi.URLParam(r, "id"))
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, companies, "")
}

func (a *API) handleSetCompanies(w http.ResponseWriter, r *http.Request) {
	authzCtx, ok := a.buildContext(w, r)
	if !ok {
		return
	}

	var req SetCompaniesRequest
	if !a.decode(w, r, &req) {
		return
	}

	err := a.service.SetCustomerCompanies(r.Context(), authzCtx, chi.URLParam(r, "id"), req.CompanyIDs)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, nil, "company links replaced")
}

func (a *API) handleCreateShipment(w http.ResponseWriter, r *http.Request) {
	authzCtx, ok := a.buildContext(w, r)
	if !ok {
		return
	}

	var req CreateShipmentRequest
	if !a.decode(w, r, &req) {
		return
	}

	status := req.Status
	if status == "" {
		status = "pending"
	}

	shipment, err := a.service.CreateShipment(r.Context(), authzCtx, &types.Shipment{
		Reference:   req.Reference,
		Origin:      req.Origin,
		Destination: req.Destination,
		Status:      status,
	})
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusCreated, shipment, "shipment created")
}

func (a *API) handleListShipments(w http.ResponseWriter, r *http.Request) {
	authzCtx, ok := a.buildContext(w, r)
	if !ok {
		return
	}

	shipments, err := a.service.ListShipments(r.Context(), authzCtx)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, shipments, "")
}

func (a *API) handleDeleteShipment(w http.ResponseWriter, r *http.Request) {
	authzCtx, ok := a.buildContext(w, r)
	if !ok {
		return
	}

	if err := a.service.DeleteShipment(r.Context(), authzCtx, chi.URLParam(r, "id")); err != nil {
		a.writeServiceError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, nil, "shipment deleted")
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
	case errors.Is(err, storage.ErrNotFound):
		httptypes.WriteErrorResponse(w, http.StatusNotFound, "not found")
	case errors.Is(err, storage.ErrDuplicateKey):
		httptypes.WriteErrorResponse(w, http.StatusConflict, "already exists")
	case errors.Is(err, storage.ErrForeignKeyViolation):
		httptypes.WriteErrorResponse(w, http.StatusBadRequest, "referenced record does not exist")
	default:
		a.logger.Errorf("hierarchy request failed: %s", err)
		httptypes.WriteErrorResponse(w, http.StatusInternalServerError, "internal server error")
	}
}
