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
	pipeline "newsletter_pipeline/internal/pipeline"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockPipeline is a mock of Pipeline interface.
type MockPipeline struct {
	ctrl     *gomock.Controller
	recorder *MockPipelineMockRecorder
	isgomock struct{}
}

// MockPipelineMockRecorder is the mock recorder for MockPipeline.
type MockPipelineMockRecorder struct {
	mock *MockPipeline
}

// NewMockPipeline creates a new mock instance.
func NewMockPipeline(ctrl *gomock.Controller) *MockPipeline {
	mock := &MockPipeline{ctrl: ctrl}
	mock.recorder = &MockPipelineMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPipeline) EXPECT() *MockPipelineMockRecorder {
	return m.recorder
}

// Run mocks base method.
func (m *MockPipeline) Run(ctx context.Context, params domain.FetchParams, report pipeline.ProgressFunc) (*domain.Extraction, *domain.RunStats, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Run", ctx, params, report)
	ret0, _ := ret[0].(*domain.Extraction)
	ret1, _ := ret[1].(*domain.RunStats)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// Run indicates an expected call of Run.
func (mr *MockPipelineMockRecorder) Run(ctx, params, report any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Run", reflect.TypeOf((*MockPipeline)(nil).Run), ctx, params, report)
}

// MockPublisher is a mock of Publisher interface.
type MockPublisher struct {
	ctrl     *gomock.Controller
	recorder *MockPublisherMockRecorder
	isgomock struct{}
}

// MockPublisherMockRecorder is the mock recorder for MockPublisher.
type MockPublisherMockRecorder struct {
	mock *MockPublisher
}

// NewMockPublisher creates a new mock instance.
func NewMockPublisher(ctrl *gomock.Controller) *MockPublisher {
	mock := &MockPublisher{ctrl: ctrl}
	mock.recorder = &MockPublisherMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPublisher) EXPECT() *MockPublisherMockRecorder {
	return m.recorder
}

// Close mocks base method.
func (m *MockPublisher) Close() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Close")
	ret0, _ := ret[0].(error)
	return ret0
}

// Close indicates an expected call of Close.
func (mr *MockPublisherMockRecorder) Close() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Close", reflect.TypeOf((*MockPublisher)(nil).Close))
}

// PublishExtraction mocks base method.
func (m *MockPublisher) PublishExtraction(ctx context.Context, job *domain.ExtractionJob) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PublishExtraction", ctx, job)
	ret0, _ := ret[0].(error)
	return ret0
}

// PublishExtraction indicates an expected call of PublishExtraction.
func (mr *MockPublisherMockRecorder) PublishExtraction(ctx, job any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PublishExtraction", reflect.TypeOf((*MockPublisher)(nil).PublishExtraction), ctx, job)
}
