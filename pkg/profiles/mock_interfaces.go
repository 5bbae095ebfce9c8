// Code generated by MockGen. DO NOT EDIT.
// Source: ./interfaces.go
//
// Generated by this command:
//
//	mockgen -build_flags=--mod=mod -package profiles -destination ./mock_interfaces.go -source=./interfaces.go
//

// Package profiles is a generated GoMock package.
package profiles

import (
	context "context"
	reflect "reflect"

	authorization "github.com/canonical/freight-hierarchy-service/internal/authorization"
	types "github.com/canonical/freight-hierarchy-service/internal/types"
	client "github.com/ory/client-go"
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

// DeleteRoleAssignment mocks base method.
func (m *MockStorageInterface) DeleteRoleAssignment(ctx context.Context, identityID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteRoleAssignment", ctx, identityID)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteRoleAssignment indicates an expected call of DeleteRoleAssignment.
func (mr *MockStorageInterfaceMockRecorder) DeleteRoleAssignment(ctx, identityID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteRoleAssignment", reflect.TypeOf((*MockStorageInterface)(nil).DeleteRoleAssignment), ctx, identityID)
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

// GetRoleAssignmentByIdentityID mocks base method.
func (m *MockStorageInterface) GetRoleAssignmentByIdentityID(ctx context.Context, identityID string) (*types.RoleAssignment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetRoleAssignmentByIdentityID", ctx, identityID)
	ret0, _ := ret[0].(*types.RoleAssignment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetRoleAssignmentByIdentityID indicates an expected call of GetRoleAssignmentByIdentityID.
func (mr *MockStorageInterfaceMockRecorder) GetRoleAssignmentByIdentityID(ctx, identityID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetRoleAssignmentByIdentityID", reflect.TypeOf((*MockStorageInterface)(nil).GetRoleAssignmentByIdentityID), ctx, identityID)
}

// InsertRoleAssignment mocks base method.
func (m *MockStorageInterface) InsertRoleAssignment(ctx context.Context, a *types.RoleAssignment) (*types.RoleAssignment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InsertRoleAssignment", ctx, a)
	ret0, _ := ret[0].(*types.RoleAssignment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// InsertRoleAssignment indicates an expected call of InsertRoleAssignment.
func (mr *MockStorageInterfaceMockRecorder) InsertRoleAssignment(ctx, a any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InsertRoleAssignment", reflect.TypeOf((*MockStorageInterface)(nil).InsertRoleAssignment), ctx, a)
}

// ListRoleAssignments mocks base method.
func (m *MockStorageInterface) ListRoleAssignments(ctx context.Context, role types.Role, companyID, customerID string) ([]*types.RoleAssignment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListRoleAssignments", ctx, role, companyID, customerID)
	ret0, _ := ret[0].([]*types.RoleAssignment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListRoleAssignments indicates an expected call of ListRoleAssignments.
func (mr *MockStorageInterfaceMockRecorder) ListRoleAssignments(ctx, role, companyID, customerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListRoleAssignments", reflect.TypeOf((*MockStorageInterface)(nil).ListRoleAssignments), ctx, role, companyID, customerID)
}

// UpdateRoleAssignment mocks base method.
func (m *MockStorageInterface) UpdateRoleAssignment(ctx context.Context, a *types.RoleAssignment) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateRoleAssignment", ctx, a)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateRoleAssignment indicates an expected call of UpdateRoleAssignment.
func (mr *MockStorageInterfaceMockRecorder) UpdateRoleAssignment(ctx, a any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateRoleAssignment", reflect.TypeOf((*MockStorageInterface)(nil).UpdateRoleAssignment), ctx, a)
}

// MockKratosClientInterface is a mock of KratosClientInterface interface.
type MockKratosClientInterface struct {
	ctrl     *gomock.Controller
	recorder *MockKratosClientInterfaceMockRecorder
	isgomock struct{}
}

// MockKratosClientInterfaceMockRecorder is the mock recorder for MockKratosClientInterface.
type MockKratosClientInterfaceMockRecorder struct {
	mock *MockKratosClientInterface
}

// NewMockKratosClientInterface creates a new mock instance.
func NewMockKratosClientInterface(ctrl *gomock.Controller) *MockKratosClientInterface {
	mock := &MockKratosClientInterface{ctrl: ctrl}
	mock.recorder = &MockKratosClientInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockKratosClientInterface) EXPECT() *MockKratosClientInterfaceMockRecorder {
	return m.recorder
}

// GetIdentity mocks base method.
func (m *MockKratosClientInterface) GetIdentity(ctx context.Context, id string) (*client.Identity, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetIdentity", ctx, id)
	ret0, _ := ret[0].(*client.Identity)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetIdentity indicates an expected call of GetIdentity.
func (mr *MockKratosClientInterfaceMockRecorder) GetIdentity(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetIdentity", reflect.TypeOf((*MockKratosClientInterface)(nil).GetIdentity), ctx, id)
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

// AddCompanyStaff mocks base method.
func (m *MockServiceInterface) AddCompanyStaff(ctx context.Context, authzCtx *authorization.Context, companyID, identityID string) (*types.RoleAssignment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddCompanyStaff", ctx, authzCtx, companyID, identityID)
	ret0, _ := ret[0].(*types.RoleAssignment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AddCompanyStaff indicates an expected call of AddCompanyStaff.
func (mr *MockServiceInterfaceMockRecorder) AddCompanyStaff(ctx, authzCtx, companyID, identityID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddCompanyStaff", reflect.TypeOf((*MockServiceInterface)(nil).AddCompanyStaff), ctx, authzCtx, companyID, identityID)
}

// AddCustomerStaff mocks base method.
func (m *MockServiceInterface) AddCustomerStaff(ctx context.Context, authzCtx *authorization.Context, customerID, identityID string, role types.Role) (*types.RoleAssignment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddCustomerStaff", ctx, authzCtx, customerID, identityID, role)
	ret0, _ := ret[0].(*types.RoleAssignment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AddCustomerStaff indicates an expected call of AddCustomerStaff.
func (mr *MockServiceInterfaceMockRecorder) AddCustomerStaff(ctx, authzCtx, customerID, identityID, role any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddCustomerStaff", reflect.TypeOf((*MockServiceInterface)(nil).AddCustomerStaff), ctx, authzCtx, customerID, identityID, role)
}

// ListCompanyStaff mocks base method.
func (m *MockServiceInterface) ListCompanyStaff(ctx context.Context, authzCtx *authorization.Context, companyID string) ([]*types.StaffMember, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListCompanyStaff", ctx, authzCtx, companyID)
	ret0, _ := ret[0].([]*types.StaffMember)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListCompanyStaff indicates an expected call of ListCompanyStaff.
func (mr *MockServiceInterfaceMockRecorder) ListCompanyStaff(ctx, authzCtx, companyID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListCompanyStaff", reflect.TypeOf((*MockServiceInterface)(nil).ListCompanyStaff), ctx, authzCtx, companyID)
}

// ListCustomerStaff mocks base method.
func (m *MockServiceInterface) ListCustomerStaff(ctx context.Context, authzCtx *authorization.Context, customerID string) ([]*types.StaffMember, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListCustomerStaff", ctx, authzCtx, customerID)
	ret0, _ := ret[0].([]*types.StaffMember)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListCustomerStaff indicates an expected call of ListCustomerStaff.
func (mr *MockServiceInterfaceMockRecorder) ListCustomerStaff(ctx, authzCtx, customerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListCustomerStaff", reflect.TypeOf((*MockServiceInterface)(nil).ListCustomerStaff), ctx, authzCtx, customerID)
}

// Profile mocks base method.
func (m *MockServiceInterface) Profile(ctx context.Context, authzCtx *authorization.Context) (*Profile, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Profile", ctx, authzCtx)
	ret0, _ := ret[0].(*Profile)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Profile indicates an expected call of Profile.
func (mr *MockServiceInterfaceMockRecorder) Profile(ctx, authzCtx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Profile", reflect.TypeOf((*MockServiceInterface)(nil).Profile), ctx, authzCtx)
}

// Reassign mocks base method.
func (m *MockServiceInterface) Reassign(ctx context.Context, authzCtx *authorization.Context, identityID string, role types.Role, companyID, customerID string) (*types.RoleAssignment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Reassign", ctx, authzCtx, identityID, role, companyID, customerID)
	ret0, _ := ret[0].(*types.RoleAssignment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Reassign indicates an expected call of Reassign.
func (mr *MockServiceInterfaceMockRecorder) Reassign(ctx, authzCtx, identityID, role, companyID, customerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Reassign", reflect.TypeOf((*MockServiceInterface)(nil).Reassign), ctx, authzCtx, identityID, role, companyID, customerID)
}

// RemoveStaff mocks base method.
func (m *MockServiceInterface) RemoveStaff(ctx context.Context, authzCtx *authorization.Context, identityID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RemoveStaff", ctx, authzCtx, identityID)
	ret0, _ := ret[0].(error)
	return ret0
}

// RemoveStaff indicates an expected call of RemoveStaff.
func (mr *MockServiceInterfaceMockRecorder) RemoveStaff(ctx, authzCtx, identityID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RemoveStaff", reflect.TypeOf((*MockServiceInterface)(nil).RemoveStaff), ctx, authzCtx, identityID)
}
