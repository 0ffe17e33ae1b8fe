package job

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"newsletter_pipeline/internal/domain"
	"newsletter_pipeline/internal/job/mocks"
	"newsletter_pipeline/internal/pipeline"
)

type RunnerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	pipeline  *mocks.MockPipeline
	publisher *mocks.MockPublisher

	tracker *Tracker
	runner  *Runner
}

func (s *RunnerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.pipeline = mocks.NewMockPipeline(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.tracker = NewTracker(testLogger())
	s.runner = NewRunner(s.tracker, s.pipeline, s.publisher, testLogger())
}

func (s *RunnerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestRunnerTestSuite(t *testing.T) {
	suite.Run(t, new(RunnerTestSuite))
}

func (s *RunnerTestSuite) waitForTerminal(id string) domain.ExtractionJob {
	var job domain.ExtractionJob
	s.Require().Eventually(func() bool {
		got, ok := s.tracker.Get(id)
		if !ok || !got.Status.Terminal() {
			return false
		}
		job = got
		return true
	}, 2*time.Second, 5*time.Millisecond)
	return job
}

func (s *RunnerTestSuite) TestStart_CompletesJob() {
	params := domain.FetchParams{DaysBack: 7, MaxResults: 50}

	extraction := &domain.Extraction{
		ID:      "run-1",
		Results: []domain.NewsletterResult{{Subject: "Weekly"}},
	}
	stats := &domain.RunStats{Newsletters: 1, Accepted: 3}

	s.pipeline.EXPECT().Run(gomock.Any(), params, gomock.Any()).DoAndReturn(
		func(ctx context.Context, p domain.FetchParams, report pipeline.ProgressFunc) (*domain.Extraction, *domain.RunStats, error) {
			report(10, "fetching newsletters")
			report(90, "saving results")
			return extraction, stats, nil
		},
	)
	s.publisher.EXPECT().PublishExtraction(gomock.Any(), gomock.Any()).Return(nil)

	created := s.runner.Start(params, nil)
	s.Equal(domain.JobPending, created.Status)

	job := s.waitForTerminal(created.ID)
	s.Equal(domain.JobCompleted, job.Status)
	s.Equal(100, job.Progress)
	s.Require().Len(job.Results, 1)
	s.Equal("Weekly", job.Results[0].Subject)
	s.Equal(3, job.Stats.Accepted)
	s.Nil(job.ErrorMessage)
}

func (s *RunnerTestSuite) TestStart_FailsJob() {
	params := domain.FetchParams{}

	s.pipeline.EXPECT().Run(gomock.Any(), params, gomock.Any()).
		Return(nil, nil, errors.New("fetch newsletters: imap down"))
	s.publisher.EXPECT().PublishExtraction(gomock.Any(), gomock.Any()).Return(nil)

	created := s.runner.Start(params, nil)

	job := s.waitForTerminal(created.ID)
	s.Equal(domain.JobFailed, job.Status)
	s.Require().NotNil(job.ErrorMessage)
	s.Contains(*job.ErrorMessage, "imap down")
	s.Empty(job.Results)
}

func (s *RunnerTestSuite) TestStart_PublisherNil() {
	runner := NewRunner(s.tracker, s.pipeline, nil, testLogger())

	s.pipeline.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.Extraction{}, &domain.RunStats{}, nil)

	created := runner.Start(domain.FetchParams{}, nil)

	job := s.waitForTerminal(created.ID)
	s.Equal(domain.JobCompleted, job.Status)
}

func (s *RunnerTestSuite) TestStart_PublishErrorDoesNotFailJob() {
	s.pipeline.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.Extraction{}, &domain.RunStats{}, nil)
	s.publisher.EXPECT().PublishExtraction(gomock.Any(), gomock.Any()).
		Return(errors.New("broker down"))

	created := s.runner.Start(domain.FetchParams{}, nil)

	job := s.waitForTerminal(created.ID)
	s.Equal(domain.JobCompleted, job.Status)
}
