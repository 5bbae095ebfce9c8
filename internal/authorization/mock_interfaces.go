// Code generated by MockGen. DO NOT EDIT.
// Source: ./interfaces.go
//
// Generated by this command:
//
//	mockgen -build_flags=--mod=mod -package authorization -destination ./mock_interfaces.go -source=./interfaces.go
//

// Package authorization is a generated GoMock package.
package authorization

import (
	context "context"
	reflect "reflect"

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
