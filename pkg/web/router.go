// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/freight-hierarchy-service/internal/authorization"
	"github.com/canonical/freight-hierarchy-service/internal/db"
	"github.com/canonical/freight-hierarchy-service/internal/identity"
	"github.com/canonical/freight-hierarchy-service/internal/kratos"
	"github.com/canonical/freight-hierarchy-service/internal/logging"
	"github.com/canonical/freight-hierarchy-service/internal/mail"
	"github.com/canonical/freight-hierarchy-service/internal/monitoring"
	"github.com/canonical/freight-hierarchy-service/internal/scoped"
	"github.com/canonical/freight-hierarchy-service/internal/storage"
	"github.com/canonical/freight-hierarchy-service/internal/tracing"
	"github.com/canonical/freight-hierarchy-service/internal/types"
	"github.com/canonical/freight-hierarchy-service/pkg/hierarchy"
	"github.com/canonical/freight-hierarchy-service/pkg/invitations"
	"github.com/canonical/freight-hierarchy-service/pkg/metrics"
	"github.com/canonical/freight-hierarchy-service/pkg/profiles"
	"github.com/canonical/freight-hierarchy-service/pkg/status"
)

// Config carries the policy knobs the APIs need from the environment.
type Config struct {
	Invitations invitations.Config
}

func NewRouter(
	config Config,
	store *storage.Storage,
	dbClient db.DBClientInterface,
	kratosClient kratos.ClientInterface,
	notifier mail.NotifierInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
		identity.NewMiddleware(tracer, monitor, logger).HTTPMiddleware,
	)

	router.Use(middlewares...)

	authorizer := authorization.NewAuthorizer(store, tracer, monitor, logger)

	companies := scoped.NewRepository[*types.FreightCompany](
		types.RecordTypeFreightCompany, storage.FreightCompanyStore{Storage: store}, store, tracer, monitor, logger)
	customers := scoped.NewRepository[*types.EndCustomer](
		types.RecordTypeEndCustomer, storage.EndCustomerStore{Storage: store}, store, tracer, monitor, logger)
	shipments := scoped.NewRepository[*types.Shipment](
		types.RecordTypeShipment, storage.ShipmentStore{Storage: store}, store, tracer, monitor, logger)

	hierarchyService := hierarchy.NewService(store, companies, customers, shipments, tracer, monitor, logger)
	profilesService := profiles.NewService(store, kratosClient, tracer, monitor, logger)
	invitationsService := invitations.NewService(config.Invitations, store, dbClient, kratosClient, notifier, tracer, monitor, logger)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)
	hierarchy.NewAPI(hierarchyService, authorizer, tracer, monitor, logger).RegisterEndpoints(router)
	profiles.NewAPI(profilesService, authorizer, tracer, monitor, logger).RegisterEndpoints(router)
	invitations.NewAPI(invitationsService, authorizer, tracer, monitor, logger).RegisterEndpoints(router)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
