// Code generated by MockGen. DO NOT EDIT.
// Source: ./interfaces.go
//
// Generated by this command:
//
//	mockgen -build_flags=--mod=mod -package hierarchy -destination ./mock_interfaces.go -source=./interfaces.go
//

// Package hierarchy is a generated GoMock package.
package hierarchy

import (
	context "context"
	reflect "reflect"

	authorization "github.com/canonical/freight-hierarchy-service/internal/authorization"
	scoped "github.com/canonical/freight-hierarchy-service/internal/scoped"
	types "github.com/canonical/freight-hierarchy-service/internal/types"
	gomock "go.uber.org/mock/gomock"
)

// MockStorageInterface is a mock of StorageInterface interface.
type MockStorageInterface struct {
	ctrl     *gomock.Controller
	recorder *MockStorageInterfaceMockRecorder
	isgomock struct{}
}

// MockStorageInterfaceMockRecorder is the mock recorder for MockStorageInterface.
type MockStorageInterfaceMockRecorder struct {
	mock *MockStorageInterface
}

// NewMockStorageInterface creates a new mock instance.
func NewMockStorageInterface(ctrl *gomock.Controller) *MockStorageInterface {
	mock := &MockStorageInterface{ctrl: ctrl}
	mock.recorder = &MockStorageInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockStorageInterface) EXPECT() *MockStorageInterfaceMockRecorder {
	return m.recorder
}

// CreateProvider mocks base method.
func (m *MockStorageInterface) CreateProvider(ctx context.Context, p *types.Provider) (*types.Provider, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateProvider", ctx, p)
	ret0, _ := ret[0].(*types.Provider)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateProvider indicates an expected call of CreateProvider.
func (mr *MockStorageInterfaceMockRecorder) CreateProvider(ctx, p any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateProvider", reflect.TypeOf((*MockStorageInterface)(nil).CreateProvider), ctx, p)
}

// DeleteShipment mocks base method.
func (m *MockStorageInterface) DeleteShipment(ctx context.Context, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteShipment", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteShipment indicates an expected call of DeleteShipment.
func (mr *MockStorageInterfaceMockRecorder) DeleteShipment(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteShipment", reflect.TypeOf((*MockStorageInterface)(nil).DeleteShipment), ctx, id)
}

// GetEndCustomerByID mocks base method.
func (m *MockStorageInterface) GetEndCustomerByID(ctx context.Context, id string) (*types.EndCustomer, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetEndCustomerByID", ctx, id)
	ret0, _ := ret[0].(*types.EndCustomer)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetEndCustomerByID indicates an expected call of GetEndCustomerByID.
func (mr *MockStorageInterfaceMockRecorder) GetEndCustomerByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetEndCustomerByID", reflect.TypeOf((*MockStorageInterface)(nil).GetEndCustomerByID), ctx, id)
}

// GetFreightCompanyByID mocks base method.
func (m *MockStorageInterface) GetFreightCompanyByID(ctx context.Context, id string) (*types.FreightCompany, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetFreightCompanyByID", ctx, id)
	ret0, _ := ret[0].(*types.FreightCompany)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetFreightCompanyByID indicates an expected call of GetFreightCompanyByID.
func (mr *MockStorageInterfaceMockRecorder) GetFreightCompanyByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetFreightCompanyByID", reflect.TypeOf((*MockStorageInterface)(nil).GetFreightCompanyByID), ctx, id)
}

// GetProvider mocks base method.
func (m *MockStorageInterface) GetProvider(ctx context.Context) (*types.Provider, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetProvider", ctx)
	ret0, _ := ret[0].(*types.Provider)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetProvider indicates an expected call of GetProvider.
func (mr *MockStorageInterfaceMockRecorder) GetProvider(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetProvider", reflect.TypeOf((*MockStorageInterface)(nil).GetProvider), ctx)
}

// InsertEndCustomer mocks base method.
func (m *MockStorageInterface) InsertEndCustomer(ctx context.Context, c *types.EndCustomer) (*types.EndCustomer, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InsertEndCustomer", ctx, c)
	ret0, _ := ret[0].(*types.EndCustomer)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// InsertEndCustomer indicates an expected call of InsertEndCustomer.
func (mr *MockStorageInterfaceMockRecorder) InsertEndCustomer(ctx, c any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InsertEndCustomer", reflect.TypeOf((*MockStorageInterface)(nil).InsertEndCustomer), ctx, c)
}

// InsertFreightCompany mocks base method.
func (m *MockStorageInterface) InsertFreightCompany(ctx context.Context, c *types.FreightCompany) (*types.FreightCompany, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InsertFreightCompany", ctx, c)
	ret0, _ := ret[0].(*types.FreightCompany)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// InsertFreightCompany indicates an expected call of InsertFreightCompany.
func (mr *MockStorageInterfaceMockRecorder) InsertFreightCompany(ctx, c any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InsertFreightCompany", reflect.TypeOf((*MockStorageInterface)(nil).InsertFreightCompany), ctx, c)
}

// LinkCustomerToCompany mocks base method.
func (m *MockStorageInterface) LinkCustomerToCompany(ctx context.Context, companyID, customerID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LinkCustomerToCompany", ctx, companyID, customerID)
	ret0, _ := ret[0].(error)
	return ret0
}

// LinkCustomerToCompany indicates an expected call of LinkCustomerToCompany.
func (mr *MockStorageInterfaceMockRecorder) LinkCustomerToCompany(ctx, companyID, customerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LinkCustomerToCompany", reflect.TypeOf((*MockStorageInterface)(nil).LinkCustomerToCompany), ctx, companyID, customerID)
}

// ListCompaniesByCustomerID mocks base method.
func (m *MockStorageInterface) ListCompaniesByCustomerID(ctx context.Context, customerID string) ([]*types.FreightCompany, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListCompaniesByCustomerID", ctx, customerID)
	ret0, _ := ret[0].([]*types.FreightCompany)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListCompaniesByCustomerID indicates an expected call of ListCompaniesByCustomerID.
func (mr *MockStorageInterfaceMockRecorder) ListCompaniesByCustomerID(ctx, customerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListCompaniesByCustomerID", reflect.TypeOf((*MockStorageInterface)(nil).ListCompaniesByCustomerID), ctx, customerID)
}

// ListCustomerIDsByCompanyID mocks base method.
func (m *MockStorageInterface) ListCustomerIDsByCompanyID(ctx context.Context, companyID string) ([]string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListCustomerIDsByCompanyID", ctx, companyID)
	ret0, _ := ret[0].([]string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListCustomerIDsByCompanyID indicates an expected call of ListCustomerIDsByCompanyID.
func (mr *MockStorageInterfaceMockRecorder) ListCustomerIDsByCompanyID(ctx, companyID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListCustomerIDsByCompanyID", reflect.TypeOf((*MockStorageInterface)(nil).ListCustomerIDsByCompanyID), ctx, companyID)
}

// SelectEndCustomersByIDs mocks base method.
func (m *MockStorageInterface) SelectEndCustomersByIDs(ctx context.Context, ids []string) ([]*types.EndCustomer, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SelectEndCustomersByIDs", ctx, ids)
	ret0, _ := ret[0].([]*types.EndCustomer)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SelectEndCustomersByIDs indicates an expected call of SelectEndCustomersByIDs.
func (mr *MockStorageInterfaceMockRecorder) SelectEndCustomersByIDs(ctx, ids any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SelectEndCustomersByIDs", reflect.TypeOf((*MockStorageInterface)(nil).SelectEndCustomersByIDs), ctx, ids)
}

// SetCustomerCompanies mocks base method.
func (m *MockStorageInterface) SetCustomerCompanies(ctx context.Context, customerID string, companyIDs []string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetCustomerCompanies", ctx, customerID, companyIDs)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetCustomerCompanies indicates an expected call of SetCustomerCompanies.
func (mr *MockStorageInterfaceMockRecorder) SetCustomerCompanies(ctx, customerID, companyIDs any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetCustomerCompanies", reflect.TypeOf((*MockStorageInterface)(nil).SetCustomerCompanies), ctx, customerID, companyIDs)
}

// TagRecord mocks base method.
func (m *MockStorageInterface) TagRecord(ctx context.Context, recordType types.RecordType, recordID string, owner types.ScopeOwner) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "TagRecord", ctx, recordType, recordID, owner)
	ret0, _ := ret[0].(error)
	return ret0
}

// TagRecord indicates an expected call of TagRecord.
func (mr *MockStorageInterfaceMockRecorder) TagRecord(ctx, recordType, recordID, owner any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TagRecord", reflect.TypeOf((*MockStorageInterface)(nil).TagRecord), ctx, recordType, recordID, owner)
}

// UnlinkCustomerFromCompany mocks base method.
func (m *MockStorageInterface) UnlinkCustomerFromCompany(ctx context.Context, companyID, customerID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UnlinkCustomerFromCompany", ctx, companyID, customerID)
	ret0, _ := ret[0].(error)
	return ret0
}

// UnlinkCustomerFromCompany indicates an expected call of UnlinkCustomerFromCompany.
func (mr *MockStorageInterfaceMockRecorder) UnlinkCustomerFromCompany(ctx, companyID, customerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UnlinkCustomerFromCompany", reflect.TypeOf((*MockStorageInterface)(nil).UnlinkCustomerFromCompany), ctx, companyID, customerID)
}

// MockRepositoryInterface is a mock of RepositoryInterface interface.
type MockRepositoryInterface[T scoped.Record] struct {
	ctrl     *gomock.Controller
	recorder *MockRepositoryInterfaceMockRecorder[T]
	isgomock struct{}
}

// MockRepositoryInterfaceMockRecorder is the mock recorder for MockRepositoryInterface.
type MockRepositoryInterfaceMockRecorder[T scoped.Record] struct {
	mock *MockRepositoryInterface[T]
}

// NewMockRepositoryInterface creates a new mock instance.
func NewMockRepositoryInterface[T scoped.Record](ctrl *gomock.Controller) *MockRepositoryInterface[T] {
	mock := &MockRepositoryInterface[T]{ctrl: ctrl}
	mock.recorder = &MockRepositoryInterfaceMockRecorder[T]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRepositoryInterface[T]) EXPECT() *MockRepositoryInterfaceMockRecorder[T] {
	return m.recorder
}

// Create mocks base method.
func (m *MockRepositoryInterface[T]) Create(ctx context.Context, record T, owner types.ScopeOwner) (T, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, record, owner)
	ret0, _ := ret[0].(T)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockRepositoryInterfaceMockRecorder[T]) Create(ctx, record, owner any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockRepositoryInterface[T])(nil).Create), ctx, record, owner)
}

// List mocks base method.
func (m *MockRepositoryInterface[T]) List(ctx context.Context, filter types.ScopeFilter) ([]T, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, filter)
	ret0, _ := ret[0].([]T)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockRepositoryInterfaceMockRecorder[T]) List(ctx, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockRepositoryInterface[T])(nil).List), ctx, filter)
}

// Visible mocks base method.
func (m *MockRepositoryInterface[T]) Visible(ctx context.Context, filter types.ScopeFilter, recordID string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Visible", ctx, filter, recordID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Visible indicates an expected call of Visible.
func (mr *MockRepositoryInterfaceMockRecorder[T]) Visible(ctx, filter, recordID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Visible", reflect.TypeOf((*MockRepositoryInterface[T])(nil).Visible), ctx, filter, recordID)
}

// MockAuthorizerInterface is a mock of AuthorizerInterface interface.
type MockAuthorizerInterface struct {
	ctrl     *gomock.Controller
	recorder *MockAuthorizerInterfaceMockRecorder
	isgomock struct{}
}

// MockAuthorizerInterfaceMockRecorder is the mock recorder for MockAuthorizerInterface.
type MockAuthorizerInterfaceMockRecorder struct {
	mock *MockAuthorizerInterface
}

// NewMockAuthorizerInterface creates a new mock instance.
func NewMockAuthorizerInterface(ctrl *gomock.Controller) *MockAuthorizerInterface {
	mock := &MockAuthorizerInterface{ctrl: ctrl}
	mock.recorder = &MockAuthorizerInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAuthorizerInterface) EXPECT() *MockAuthorizerInterfaceMockRecorder {
	return m.recorder
}

// BuildContext mocks base method.
func (m *MockAuthorizerInterface) BuildContext(ctx context.Context, identityID string) (*authorization.Context, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BuildContext", ctx, identityID)
	ret0, _ := ret[0].(*authorization.Context)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// BuildContext indicates an expected call of BuildContext.
func (mr *MockAuthorizerInterfaceMockRecorder) BuildContext(ctx, identityID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BuildContext", reflect.TypeOf((*MockAuthorizerInterface)(nil).BuildContext), ctx, identityID)
}

// MockServiceInterface is a mock of ServiceInterface interface.
type MockServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockServiceInterfaceMockRecorder
	isgomock struct{}
}

// MockServiceInterfaceMockRecorder is the mock recorder for MockServiceInterface.
type MockServiceInterfaceMockRecorder struct {
	mock *MockServiceInterface
}

// NewMockServiceInterface creates a new mock instance.
func NewMockServiceInterface(ctrl *gomock.Controller) *MockServiceInterface {
	mock := &MockServiceInterface{ctrl: ctrl}
	mock.recorder = &MockServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockServiceInterface) EXPECT() *MockServiceInterfaceMockRecorder {
	return m.recorder
}

// CreateShipment mocks base method.
func (m *MockServiceInterface) CreateShipment(ctx context.Context, authzCtx *authorization.Context, shipment *types.Shipment) (*types.Shipment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateShipment", ctx, authzCtx, shipment)
	ret0, _ := ret[0].(*types.Shipment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateShipment indicates an expected call of CreateShipment.
func (mr *MockServiceInterfaceMockRecorder) CreateShipment(ctx, authzCtx, shipment any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateShipment", reflect.TypeOf((*MockServiceInterface)(nil).CreateShipment), ctx, authzCtx, shipment)
}

// DeleteShipment mocks base method.
func (m *MockServiceInterface) DeleteShipment(ctx context.Context, authzCtx *authorization.Context, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteShipment", ctx, authzCtx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteShipment indicates an expected call of DeleteShipment.
func (mr *MockServiceInterfaceMockRecorder) DeleteShipment(ctx, authzCtx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteShipment", reflect.TypeOf((*MockServiceInterface)(nil).DeleteShipment), ctx, authzCtx, id)
}

// LinkEndCustomer mocks base method.
func (m *MockServiceInterface) LinkEndCustomer(ctx context.Context, authzCtx *authorization.Context, companyID, customerID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LinkEndCustomer", ctx, authzCtx, companyID, customerID)
	ret0, _ := ret[0].(error)
	return ret0
}

// LinkEndCustomer indicates an expected call of LinkEndCustomer.
func (mr *MockServiceInterfaceMockRecorder) LinkEndCustomer(ctx, authzCtx, companyID, customerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LinkEndCustomer", reflect.TypeOf((*MockServiceInterface)(nil).LinkEndCustomer), ctx, authzCtx, companyID, customerID)
}

// ListEndCustomers mocks base method.
func (m *MockServiceInterface) ListEndCustomers(ctx context.Context, authzCtx *authorization.Context) ([]*types.EndCustomer, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListEndCustomers", ctx, authzCtx)
	ret0, _ := ret[0].([]*types.EndCustomer)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListEndCustomers indicates an expected call of ListEndCustomers.
func (mr *MockServiceInterfaceMockRecorder) ListEndCustomers(ctx, authzCtx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListEndCustomers", reflect.TypeOf((*MockServiceInterface)(nil).ListEndCustomers), ctx, authzCtx)
}

// ListFreightCompanies mocks base method.
func (m *MockServiceInterface) ListFreightCompanies(ctx context.Context, authzCtx *authorization.Context) ([]*types.FreightCompany, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListFreightCompanies", ctx, authzCtx)
	ret0, _ := ret[0].([]*types.FreightCompany)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListFreightCompanies indicates an expected call of ListFreightCompanies.
func (mr *MockServiceInterfaceMockRecorder) ListFreightCompanies(ctx, authzCtx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListFreightCompanies", reflect.TypeOf((*MockServiceInterface)(nil).ListFreightCompanies), ctx, authzCtx)
}

// ListLinkedCompanies mocks base method.
func (m *MockServiceInterface) ListLinkedCompanies(ctx context.Context, authzCtx *authorization.Context, customerID string) ([]*types.FreightCompany, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListLinkedCompanies", ctx, authzCtx, customerID)
	ret0, _ := ret[0].([]*types.FreightCompany)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListLinkedCompanies indicates an expected call of ListLinkedCompanies.
func (mr *MockServiceInterfaceMockRecorder) ListLinkedCompanies(ctx, authzCtx, customerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListLinkedCompanies", reflect.TypeOf((*MockServiceInterface)(nil).ListLinkedCompanies), ctx, authzCtx, customerID)
}

// ListLinkedCustomers mocks base method.
func (m *MockServiceInterface) ListLinkedCustomers(ctx context.Context, authzCtx *authorization.Context, companyID string) ([]*types.EndCustomer, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListLinkedCustomers", ctx, authzCtx, companyID)
	ret0, _ := ret[0].([]*types.EndCustomer)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListLinkedCustomers indicates an expected call of ListLinkedCustomers.
func (mr *MockServiceInterfaceMockRecorder) ListLinkedCustomers(ctx, authzCtx, companyID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListLinkedCustomers", reflect.TypeOf((*MockServiceInterface)(nil).ListLinkedCustomers), ctx, authzCtx, companyID)
}

// ListShipments mocks base method.
func (m *MockServiceInterface) ListShipments(ctx context.Context, authzCtx *authorization.Context) ([]*types.Shipment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListShipments", ctx, authzCtx)
	ret0, _ := ret[0].([]*types.Shipment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListShipments indicates an expected call of ListShipments.
func (mr *MockServiceInterfaceMockRecorder) ListShipments(ctx, authzCtx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListShipments", reflect.TypeOf((*MockServiceInterface)(nil).ListShipments), ctx, authzCtx)
}

// RegisterEndCustomer mocks base method.
func (m *MockServiceInterface) RegisterEndCustomer(ctx context.Context, authzCtx *authorization.Context, customer *types.EndCustomer) (*types.EndCustomer, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RegisterEndCustomer", ctx, authzCtx, customer)
	ret0, _ := ret[0].(*types.EndCustomer)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RegisterEndCustomer indicates an expected call of RegisterEndCustomer.
func (mr *MockServiceInterfaceMockRecorder) RegisterEndCustomer(ctx, authzCtx, customer any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RegisterEndCustomer", reflect.TypeOf((*MockServiceInterface)(nil).RegisterEndCustomer), ctx, authzCtx, customer)
}

// RegisterFreightCompany mocks base method.
func (m *MockServiceInterface) RegisterFreightCompany(ctx context.Context, authzCtx *authorization.Context, company *types.FreightCompany) (*types.FreightCompany, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RegisterFreightCompany", ctx, authzCtx, company)
	ret0, _ := ret[0].(*types.FreightCompany)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RegisterFreightCompany indicates an expected call of RegisterFreightCompany.
func (mr *MockServiceInterfaceMockRecorder) RegisterFreightCompany(ctx, authzCtx, company any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RegisterFreightCompany", reflect.TypeOf((*MockServiceInterface)(nil).RegisterFreightCompany), ctx, authzCtx, company)
}

// SetCustomerCompanies mocks base method.
func (m *MockServiceInterface) SetCustomerCompanies(ctx context.Context, authzCtx *authorization.Context, customerID string, companyIDs []string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetCustomerCompanies", ctx, authzCtx, customerID, companyIDs)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetCustomerCompanies indicates an expected call of SetCustomerCompanies.
func (mr *MockServiceInterfaceMockRecorder) SetCustomerCompanies(ctx, authzCtx, customerID, companyIDs any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetCustomerCompanies", reflect.TypeOf((*MockServiceInterface)(nil).SetCustomerCompanies), ctx, authzCtx, customerID, companyIDs)
}

// UnlinkEndCustomer mocks base method.
func (m *MockServiceInterface) UnlinkEndCustomer(ctx context.Context, authzCtx *authorization.Context, companyID, customerID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UnlinkEndCustomer", ctx, authzCtx, companyID, customerID)
	ret0, _ := ret[0].(error)
	return ret0
}

// UnlinkEndCustomer indicates an expected call of UnlinkEndCustomer.
func (mr *MockServiceInterfaceMockRecorder) UnlinkEndCustomer(ctx, authzCtx, companyID, customerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UnlinkEndCustomer", reflect.TypeOf((*MockServiceInterface)(nil).UnlinkEndCustomer), ctx, authzCtx, companyID, customerID)
}
