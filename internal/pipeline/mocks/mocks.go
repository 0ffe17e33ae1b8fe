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

// MockSource is a mock of Source interface.
type MockSource struct {
	ctrl     *gomock.Controller
	recorder *MockSourceMockRecorder
	isgomock struct{}
}

// MockSourceMockRecorder is the mock recorder for MockSource.
type MockSourceMockRecorder struct {
	mock *MockSource
}

// NewMockSource creates a new mock instance.
func NewMockSource(ctrl *gomock.Controller) *MockSource {
	mock := &MockSource{ctrl: ctrl}
	mock.recorder = &MockSourceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSource) EXPECT() *MockSourceMockRecorder {
	return m.recorder
}

// FetchNewsletters mocks base method.
func (m *MockSource) FetchNewsletters(ctx context.Context, params domain.FetchParams) ([]domain.NewsletterRecord, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FetchNewsletters", ctx, params)
	ret0, _ := ret[0].([]domain.NewsletterRecord)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FetchNewsletters indicates an expected call of FetchNewsletters.
func (mr *MockSourceMockRecorder) FetchNewsletters(ctx, params any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FetchNewsletters", reflect.TypeOf((*MockSource)(nil).FetchNewsletters), ctx, params)
}

// ID mocks base method.
func (m *MockSource) ID() string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ID")
	ret0, _ := ret[0].(string)
	return ret0
}

// ID indicates an expected call of ID.
func (mr *MockSourceMockRecorder) ID() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ID", reflect.TypeOf((*MockSource)(nil).ID))
}

// Name mocks base method.
func (m *MockSource) Name() string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Name")
	ret0, _ := ret[0].(string)
	return ret0
}

// Name indicates an expected call of Name.
func (mr *MockSourceMockRecorder) Name() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Name", reflect.TypeOf((*MockSource)(nil).Name))
}

// MockLinkExtractor is a mock of LinkExtractor interface.
type MockLinkExtractor struct {
	ctrl     *gomock.Controller
	recorder *MockLinkExtractorMockRecorder
	isgomock struct{}
}

// MockLinkExtractorMockRecorder is the mock recorder for MockLinkExtractor.
type MockLinkExtractorMockRecorder struct {
	mock *MockLinkExtractor
}

// NewMockLinkExtractor creates a new mock instance.
func NewMockLinkExtractor(ctrl *gomock.Controller) *MockLinkExtractor {
	mock := &MockLinkExtractor{ctrl: ctrl}
	mock.recorder = &MockLinkExtractorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockLinkExtractor) EXPECT() *MockLinkExtractorMockRecorder {
	return m.recorder
}

// Extract mocks base method.
func (m *MockLinkExtractor) Extract(rawHTML string) []domain.ExtractedLink {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Extract", rawHTML)
	ret0, _ := ret[0].([]domain.ExtractedLink)
	return ret0
}

// Extract indicates an expected call of Extract.
func (mr *MockLinkExtractorMockRecorder) Extract(rawHTML any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Extract", reflect.TypeOf((*MockLinkExtractor)(nil).Extract), rawHTML)
}

// MockLinkResolver is a mock of LinkResolver interface.
type MockLinkResolver struct {
	ctrl     *gomock.Controller
	recorder *MockLinkResolverMockRecorder
	isgomock struct{}
}

// MockLinkResolverMockRecorder is the mock recorder for MockLinkResolver.
type MockLinkResolverMockRecorder struct {
	mock *MockLinkResolver
}

// NewMockLinkResolver creates a new mock instance.
func NewMockLinkResolver(ctrl *gomock.Controller) *MockLinkResolver {
	mock := &MockLinkResolver{ctrl: ctrl}
	mock.recorder = &MockLinkResolverMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockLinkResolver) EXPECT() *MockLinkResolverMockRecorder {
	return m.recorder
}

// Resolve mocks base method.
func (m *MockLinkResolver) Resolve(ctx context.Context, rawURL string) domain.ResolvedLink {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Resolve", ctx, rawURL)
	ret0, _ := ret[0].(domain.ResolvedLink)
	return ret0
}

// Resolve indicates an expected call of Resolve.
func (mr *MockLinkResolverMockRecorder) Resolve(ctx, rawURL any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Resolve", reflect.TypeOf((*MockLinkResolver)(nil).Resolve), ctx, rawURL)
}

// MockExtractionStore is a mock of ExtractionStore interface.
type MockExtractionStore struct {
	ctrl     *gomock.Controller
	recorder *MockExtractionStoreMockRecorder
	isgomock struct{}
}

// MockExtractionStoreMockRecorder is the mock recorder for MockExtractionStore.
type MockExtractionStoreMockRecorder struct {
	mock *MockExtractionStore
}

// NewMockExtractionStore creates a new mock instance.
func NewMockExtractionStore(ctrl *gomock.Controller) *MockExtractionStore {
	mock := &MockExtractionStore{ctrl: ctrl}
	mock.recorder = &MockExtractionStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockExtractionStore) EXPECT() *MockExtractionStoreMockRecorder {
	return m.recorder
}

// SaveExtraction mocks base method.
func (m *MockExtractionStore) SaveExtraction(ctx context.Context, extraction *domain.Extraction) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SaveExtraction", ctx, extraction)
	ret0, _ := ret[0].(error)
	return ret0
}

// SaveExtraction indicates an expected call of SaveExtraction.
func (mr *MockExtractionStoreMockRecorder) SaveExtraction(ctx, extraction any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SaveExtraction", reflect.TypeOf((*MockExtractionStore)(nil).SaveExtraction), ctx, extraction)
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
