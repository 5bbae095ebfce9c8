// Code generated by MockGen. DO NOT EDIT.
// Source: ./interfaces.go
//
// Generated by this command:
//
//	mockgen -build_flags=--mod=mod -package invitations -destination ./mock_interfaces.go -source=./interfaces.go
//

// Package invitations is a generated GoMock package.
package invitations

import (
	context "context"
	reflect "reflect"
	time "time"

	authorization "github.com/canonical/freight-hierarchy-service/internal/authorization"
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

// GetInvitationByToken mocks base method.
func (m *MockStorageInterface) GetInvitationByToken(ctx context.Context, token string) (*types.Invitation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetInvitationByToken", ctx, token)
	ret0, _ := ret[0].(*types.Invitation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetInvitationByToken indicates an expected call of GetInvitationByToken.
func (mr *MockStorageInterfaceMockRecorder) GetInvitationByToken(ctx, token any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetInvitationByToken", reflect.TypeOf((*MockStorageInterface)(nil).GetInvitationByToken), ctx, token)
}

// InsertInvitation mocks base method.
func (m *MockStorageInterface) InsertInvitation(ctx context.Context, inv *types.Invitation) (*types.Invitation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InsertInvitation", ctx, inv)
	ret0, _ := ret[0].(*types.Invitation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// InsertInvitation indicates an expected call of InsertInvitation.
func (mr *MockStorageInterfaceMockRecorder) InsertInvitation(ctx, inv any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InsertInvitation", reflect.TypeOf((*MockStorageInterface)(nil).InsertInvitation), ctx, inv)
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

// ListInvitations mocks base method.
func (m *MockStorageInterface) ListInvitations(ctx context.Context, companyID, customerID string) ([]*types.Invitation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListInvitations", ctx, companyID, customerID)
	ret0, _ := ret[0].([]*types.Invitation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListInvitations indicates an expected call of ListInvitations.
func (mr *MockStorageInterfaceMockRecorder) ListInvitations(ctx, companyID, customerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListInvitations", reflect.TypeOf((*MockStorageInterface)(nil).ListInvitations), ctx, companyID, customerID)
}

// MarkInvitationAccepted mocks base method.
func (m *MockStorageInterface) MarkInvitationAccepted(ctx context.Context, id string, acceptedAt time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkInvitationAccepted", ctx, id, acceptedAt)
	ret0, _ := ret[0].(error)
	return ret0
}

// MarkInvitationAccepted indicates an expected call of MarkInvitationAccepted.
func (mr *MockStorageInterfaceMockRecorder) MarkInvitationAccepted(ctx, id, acceptedAt any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkInvitationAccepted", reflect.TypeOf((*MockStorageInterface)(nil).MarkInvitationAccepted), ctx, id, acceptedAt)
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

// CreateIdentityWithCredentials mocks base method.
func (m *MockKratosClientInterface) CreateIdentityWithCredentials(ctx context.Context, email, username, password string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateIdentityWithCredentials", ctx, email, username, password)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateIdentityWithCredentials indicates an expected call of CreateIdentityWithCredentials.
func (mr *MockKratosClientInterfaceMockRecorder) CreateIdentityWithCredentials(ctx, email, username, password any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateIdentityWithCredentials", reflect.TypeOf((*MockKratosClientInterface)(nil).CreateIdentityWithCredentials), ctx, email, username, password)
}

// GetIdentityIDByEmail mocks base method.
func (m *MockKratosClientInterface) GetIdentityIDByEmail(ctx context.Context, email string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetIdentityIDByEmail", ctx, email)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetIdentityIDByEmail indicates an expected call of GetIdentityIDByEmail.
func (mr *MockKratosClientInterfaceMockRecorder) GetIdentityIDByEmail(ctx, email any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetIdentityIDByEmail", reflect.TypeOf((*MockKratosClientInterface)(nil).GetIdentityIDByEmail), ctx, email)
}

// MockDBClientInterface is a mock of DBClientInterface interface.
type MockDBClientInterface struct {
	ctrl     *gomock.Controller
	recorder *MockDBClientInterfaceMockRecorder
	isgomock struct{}
}

// MockDBClientInterfaceMockRecorder is the mock recorder for MockDBClientInterface.
type MockDBClientInterfaceMockRecorder struct {
	mock *MockDBClientInterface
}

// NewMockDBClientInterface creates a new mock instance.
func NewMockDBClientInterface(ctrl *gomock.Controller) *MockDBClientInterface {
	mock := &MockDBClientInterface{ctrl: ctrl}
	mock.recorder = &MockDBClientInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockDBClientInterface) EXPECT() *MockDBClientInterfaceMockRecorder {
	return m.recorder
}

// WithTx mocks base method.
func (m *MockDBClientInterface) WithTx(ctx context.Context, fn func(context.Context) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WithTx", ctx, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// WithTx indicates an expected call of WithTx.
func (mr *MockDBClientInterfaceMockRecorder) WithTx(ctx, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WithTx", reflect.TypeOf((*MockDBClientInterface)(nil).WithTx), ctx, fn)
}

// MockMailInterface is a mock of MailInterface interface.
type MockMailInterface struct {
	ctrl     *gomock.Controller
	recorder *MockMailInterfaceMockRecorder
	isgomock struct{}
}

// MockMailInterfaceMockRecorder is the mock recorder for MockMailInterface.
type MockMailInterfaceMockRecorder struct {
	mock *MockMailInterface
}

// NewMockMailInterface creates a new mock instance.
func NewMockMailInterface(ctrl *gomock.Controller) *MockMailInterface {
	mock := &MockMailInterface{ctrl: ctrl}
	mock.recorder = &MockMailInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockMailInterface) EXPECT() *MockMailInterfaceMockRecorder {
	return m.recorder
}

// Send mocks base method.
func (m *MockMailInterface) Send(ctx context.Context, recipient, subject, body string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Send", ctx, recipient, subject, body)
	ret0, _ := ret[0].(error)
	return ret0
}

// Send indicates an expected call of Send.
func (mr *MockMailInterfaceMockRecorder) Send(ctx, recipient, subject, body any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Send", reflect.TypeOf((*MockMailInterface)(nil).Send), ctx, recipient, subject, body)
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

// Accept mocks base method.
func (m *MockServiceInterface) Accept(ctx context.Context, token, username, password string) (*types.RoleAssignment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Accept", ctx, token, username, password)
	ret0, _ := ret[0].(*types.RoleAssignment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Accept indicates an expected call of Accept.
func (mr *MockServiceInterfaceMockRecorder) Accept(ctx, token, username, password any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Accept", reflect.TypeOf((*MockServiceInterface)(nil).Accept), ctx, token, username, password)
}

// Get mocks base method.
func (m *MockServiceInterface) Get(ctx context.Context, token string) (*types.Invitation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, token)
	ret0, _ := ret[0].(*types.Invitation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockServiceInterfaceMockRecorder) Get(ctx, token any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockServiceInterface)(nil).Get), ctx, token)
}

// Issue mocks base method.
func (m *MockServiceInterface) Issue(ctx context.Context, authzCtx *authorization.Context, email string, role types.Role, companyID, customerID string) (*types.Invitation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Issue", ctx, authzCtx, email, role, companyID, customerID)
	ret0, _ := ret[0].(*types.Invitation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Issue indicates an expected call of Issue.
func (mr *MockServiceInterfaceMockRecorder) Issue(ctx, authzCtx, email, role, companyID, customerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Issue", reflect.TypeOf((*MockServiceInterface)(nil).Issue), ctx, authzCtx, email, role, companyID, customerID)
}

// List mocks base method.
func (m *MockServiceInterface) List(ctx context.Context, authzCtx *authorization.Context) ([]*types.Invitation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, authzCtx)
	ret0, _ := ret[0].([]*types.Invitation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockServiceInterfaceMockRecorder) List(ctx, authzCtx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockServiceInterface)(nil).List), ctx, authzCtx)
}
