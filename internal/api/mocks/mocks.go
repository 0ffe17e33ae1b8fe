// Code generated by MockGen. DO NOT EDIT.
// Source: interfaces.go
//
// Generated by this command:
//
//	mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	domain "newsletter_pipeline/internal/domain"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockJobStarter is a mock of JobStarter interface.
type MockJobStarter struct {
	ctrl     *gomock.Controller
	recorder *MockJobStarterMockRecorder
	isgomock struct{}
}

// MockJobStarterMockRecorder is the mock recorder for MockJobStarter.
type MockJobStarterMockRecorder struct {
	mock *MockJobStarter
}

// NewMockJobStarter creates a new mock instance.
func NewMockJobStarter(ctrl *gomock.Controller) *MockJobStarter {
	mock := &MockJobStarter{ctrl: ctrl}
	mock.recorder = &MockJobStarterMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockJobStarter) EXPECT() *MockJobStarterMockRecorder {
	return m.recorder
}

// Start mocks base method.
func (m *MockJobStarter) Start(params domain.FetchParams, userRef *string) domain.ExtractionJob {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Start", params, userRef)
	ret0, _ := ret[0].(domain.ExtractionJob)
	return ret0
}

// Start indicates an expected call of Start.
func (mr *MockJobStarterMockRecorder) Start(params, userRef any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Start", reflect.TypeOf((*MockJobStarter)(nil).Start), params, userRef)
}

// MockJobRegistry is a mock of JobRegistry interface.
type MockJobRegistry struct {
	ctrl     *gomock.Controller
	recorder *MockJobRegistryMockRecorder
	isgomock struct{}
}

// MockJobRegistryMockRecorder is the mock recorder for MockJobRegistry.
type MockJobRegistryMockRecorder struct {
	mock *MockJobRegistry
}

// NewMockJobRegistry creates a new mock instance.
func NewMockJobRegistry(ctrl *gomock.Controller) *MockJobRegistry {
	mock := &MockJobRegistry{ctrl: ctrl}
	mock.recorder = &MockJobRegistryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockJobRegistry) EXPECT() *MockJobRegistryMockRecorder {
	return m.recorder
}

// Get mocks base method.
func (m *MockJobRegistry) Get(id string) (domain.ExtractionJob, bool) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", id)
	ret0, _ := ret[0].(domain.ExtractionJob)
	ret1, _ := ret[1].(bool)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockJobRegistryMockRecorder) Get(id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockJobRegistry)(nil).Get), id)
}

// List mocks base method.
func (m *MockJobRegistry) List() []domain.ExtractionJob {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List")
	ret0, _ := ret[0].([]domain.ExtractionJob)
	return ret0
}

// List indicates an expected call of List.
func (mr *MockJobRegistryMockRecorder) List() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockJobRegistry)(nil).List))
}

// MockExtractionReader is a mock of ExtractionReader interface.
type MockExtractionReader struct {
	ctrl     *gomock.Controller
	recorder *MockExtractionReaderMockRecorder
	isgomock struct{}
}

// MockExtractionReaderMockRecorder is the mock recorder for MockExtractionReader.
type MockExtractionReaderMockRecorder struct {
	mock *MockExtractionReader
}

// NewMockExtractionReader creates a new mock instance.
func NewMockExtractionReader(ctrl *gomock.Controller) *MockExtractionReader {
	mock := &MockExtractionReader{ctrl: ctrl}
	mock.recorder = &MockExtractionReaderMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockExtractionReader) EXPECT() *MockExtractionReaderMockRecorder {
	return m.recorder
}

// GetExtraction mocks base method.
func (m *MockExtractionReader) GetExtraction(ctx context.Context, id string) (*domain.Extraction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetExtraction", ctx, id)
	ret0, _ := ret[0].(*domain.Extraction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetExtraction indicates an expected call of GetExtraction.
func (mr *MockExtractionReaderMockRecorder) GetExtraction(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetExtraction", reflect.TypeOf((*MockExtractionReader)(nil).GetExtraction), ctx, id)
}

// ListExtractions mocks base method.
func (m *MockExtractionReader) ListExtractions(ctx context.Context, limit int) ([]domain.Extraction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListExtractions", ctx, limit)
	ret0, _ := ret[0].([]domain.Extraction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListExtractions indicates an expected call of ListExtractions.
func (mr *MockExtractionReaderMockRecorder) ListExtractions(ctx, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListExtractions", reflect.TypeOf((*MockExtractionReader)(nil).ListExtractions), ctx, limit)
}

// MockFilterConfigStore is a mock of FilterConfigStore interface.
type MockFilterConfigStore struct {
	ctrl     *gomock.Controller
	recorder *MockFilterConfigStoreMockRecorder
	isgomock struct{}
}

// MockFilterConfigStoreMockRecorder is the mock recorder for MockFilterConfigStore.
type MockFilterConfigStoreMockRecorder struct {
	mock *MockFilterConfigStore
}

// NewMockFilterConfigStore creates a new mock instance.
func NewMockFilterConfigStore(ctrl *gomock.Controller) *MockFilterConfigStore {
	mock := &MockFilterConfigStore{ctrl: ctrl}
	mock.recorder = &MockFilterConfigStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockFilterConfigStore) EXPECT() *MockFilterConfigStoreMockRecorder {
	return m.recorder
}

// GetFilterConfig mocks base method.
func (m *MockFilterConfigStore) GetFilterConfig(ctx context.Context) (domain.FilterConfig, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetFilterConfig", ctx)
	ret0, _ := ret[0].(domain.FilterConfig)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetFilterConfig indicates an expected call of GetFilterConfig.
func (mr *MockFilterConfigStoreMockRecorder) GetFilterConfig(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetFilterConfig", reflect.TypeOf((*MockFilterConfigStore)(nil).GetFilterConfig), ctx)
}

// SaveFilterConfig mocks base method.
func (m *MockFilterConfigStore) SaveFilterConfig(ctx context.Context, cfg domain.FilterConfig) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SaveFilterConfig", ctx, cfg)
	ret0, _ := ret[0].(error)
	return ret0
}

// SaveFilterConfig indicates an expected call of SaveFilterConfig.
func (mr *MockFilterConfigStoreMockRecorder) SaveFilterConfig(ctx, cfg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SaveFilterConfig", reflect.TypeOf((*MockFilterConfigStore)(nil).SaveFilterConfig), ctx, cfg)
}
