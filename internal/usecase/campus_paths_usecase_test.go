package usecase_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/campus-maps/internal/domain"
	"github.com/campus-maps/internal/pkg/errors"
	"github.com/campus-maps/internal/repository/memory"
	"github.com/campus-maps/internal/usecase"
)

// MockPathFinderRepository is a mock of PathFinderRepository
type MockPathFinderRepository struct {
	mock.Mock
}

func (m *MockPathFinderRepository) ListBuildings(ctx context.Context) ([]domain.Building, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Building), args.Error(1)
}

func (m *MockPathFinderRepository) FindPath(ctx context.Context, start, end string) (*domain.Path, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Path), args.Error(1)
}

var testBuildings = []domain.Building{
	{Key: "MGH", Name: "Mary Gates Hall"},
	{Key: "CSE", Name: "Paul G. Allen Center"},
}

type CampusPathsUseCaseSuite struct {
	suite.Suite
	pathFinder *MockPathFinderRepository
	uc         *usecase.CampusPathsUseCase
	ctx        context.Context
}

func (s *CampusPathsUseCaseSuite) SetupTest() {
	s.pathFinder = &MockPathFinderRepository{}
	s.uc = usecase.NewCampusPathsUseCase(s.pathFinder, memory.NewSessionRepository(), zap.NewNop())
	s.ctx = context.Background()
}

func (s *CampusPathsUseCaseSuite) TearDownTest() {
	s.pathFinder.AssertExpectations(s.T())
}

func (s *CampusPathsUseCaseSuite) loadedState() domain.CampusPathsState {
	return domain.NewCampusPathsState(testBuildings)
}

func (s *CampusPathsUseCaseSuite) TestInit() {
	s.pathFinder.On("ListBuildings", s.ctx).Return(testBuildings, nil).Once()

	state, notice := s.uc.Init(s.ctx)

	s.Nil(notice)
	s.Equal(testBuildings, state.Buildings)
	s.Equal(domain.PhaseEmpty, state.Phase)
	s.Equal(domain.NoBuilding, state.Start)
}

func (s *CampusPathsUseCaseSuite) TestInit_BuildingsFailure() {
	s.pathFinder.On("ListBuildings", s.ctx).Return(nil, stderrors.New("connection refused")).Once()

	state, notice := s.uc.Init(s.ctx)

	s.Require().NotNil(notice)
	s.Equal("Error! Cannot find list of buildings.", notice.Message)
	s.NotNil(state.Buildings)
	s.Empty(state.Buildings)
}

func (s *CampusPathsUseCaseSuite) TestFindRoute_Unselected() {
	for _, tc := range []struct{ start, end string }{
		{domain.NoBuilding, domain.NoBuilding},
		{"CSE", domain.NoBuilding},
		{domain.NoBuilding, "MGH"},
	} {
		state := s.loadedState()
		state.Start, state.End = tc.start, tc.end

		next, notice, err := s.uc.Reduce(s.ctx, state, domain.FindRoute())

		s.NoError(err)
		s.Require().NotNil(notice)
		s.Equal("Please choose 2 valid buildings.", notice.Message)
		s.Equal(state, next)
	}
	s.pathFinder.AssertNotCalled(s.T(), "FindPath", mock.Anything, mock.Anything, mock.Anything)
}

func (s *CampusPathsUseCaseSuite) TestFindRoute_SameBuilding() {
	state := s.loadedState()
	state, _, _ = s.uc.Reduce(s.ctx, state, domain.StartSelected("CSE"))
	state, _, _ = s.uc.Reduce(s.ctx, state, domain.EndSelected("CSE"))

	next, notice, err := s.uc.Reduce(s.ctx, state, domain.FindRoute())

	s.NoError(err)
	s.Require().NotNil(notice)
	s.Equal("Please choose 2 different buildings.", notice.Message)
	s.Equal(state, next)
	s.pathFinder.AssertNotCalled(s.T(), "FindPath", mock.Anything, mock.Anything, mock.Anything)
}

func (s *CampusPathsUseCaseSuite) TestFindRoute_Success() {
	path := &domain.Path{
		Cost: 120,
		Segments: []domain.PathSegment{
			{Cost: 120, Start: domain.Point{X: 0, Y: 0}, End: domain.Point{X: 10, Y: 10}},
		},
	}
	s.pathFinder.On("FindPath", s.ctx, "CSE", "MGH").Return(path, nil).Once()

	state := s.loadedState()
	state.Start, state.End = "CSE", "MGH"

	next, notice, err := s.uc.Reduce(s.ctx, state, domain.FindRoute())

	s.NoError(err)
	s.Nil(notice)
	s.Equal(domain.PhasePopulated, next.Phase)
	s.Equal(120.0, next.TotalDistance)
	s.Equal([]domain.Segment{{X1: 0, Y1: 0, X2: 10, Y2: 10, Color: "purple"}}, next.Segments)
}

func (s *CampusPathsUseCaseSuite) TestFindRoute_FailureKeepsPreviousState() {
	s.pathFinder.On("FindPath", s.ctx, "CSE", "MGH").Return(nil, stderrors.New("status 500")).Once()

	state := s.loadedState()
	state.Start, state.End = "CSE", "MGH"
	state.Phase = domain.PhasePopulated
	state.Segments = []domain.Segment{{X1: 1, Y1: 1, X2: 2, Y2: 2, Color: "purple"}}
	state.TotalDistance = 42

	next, notice, err := s.uc.Reduce(s.ctx, state, domain.FindRoute())

	s.NoError(err)
	s.Require().NotNil(notice)
	s.Equal("Error fetching request.", notice.Message)
	s.Equal(state, next)
}

func (s *CampusPathsUseCaseSuite) TestReset() {
	state := s.loadedState()
	state.Start, state.End = "CSE", "MGH"
	state.Phase = domain.PhasePopulated
	state.Segments = []domain.Segment{{X1: 1, Y1: 1, X2: 2, Y2: 2, Color: "purple"}}
	state.TotalDistance = 42

	next, notice, err := s.uc.Reduce(s.ctx, state, domain.Reset())

	s.NoError(err)
	s.Nil(notice)
	s.Equal(domain.NewCampusPathsState(testBuildings), next)
}

func (s *CampusPathsUseCaseSuite) TestUnknownEvent() {
	_, _, err := s.uc.Reduce(s.ctx, s.loadedState(), domain.Draw())
	s.True(stderrors.Is(err, errors.ErrUnknownEvent))
}

func (s *CampusPathsUseCaseSuite) TestDispatch_MountsOnceAndPersists() {
	s.pathFinder.On("ListBuildings", s.ctx).Return(testBuildings, nil).Once()
	s.pathFinder.On("FindPath", s.ctx, "CSE", "MGH").Return(&domain.Path{Cost: 7}, nil).Once()

	resp, err := s.uc.Dispatch(s.ctx, "s1", domain.StartSelected("CSE"), domain.EndSelected("MGH"))
	s.Require().NoError(err)
	s.Nil(resp.Notice)

	resp, err = s.uc.Dispatch(s.ctx, "s1", domain.FindRoute())
	s.Require().NoError(err)
	s.Nil(resp.Notice)
	s.Equal(7.0, resp.State.TotalDistance)
	s.Equal(testBuildings, resp.State.Buildings)

	resp, err = s.uc.State(s.ctx, "s1")
	s.Require().NoError(err)
	s.Equal("CSE", resp.State.Start)
	s.Equal(domain.PhasePopulated, resp.State.Phase)
}

func (s *CampusPathsUseCaseSuite) TestDispatch_ReportsBuildingsNoticeOnMount() {
	s.pathFinder.On("ListBuildings", s.ctx).Return(nil, stderrors.New("down")).Once()

	resp, err := s.uc.State(s.ctx, "s1")
	s.Require().NoError(err)
	s.Require().NotNil(resp.Notice)
	s.Equal(errors.ErrBuildingsUnavailable.Code, resp.Notice.Code)
	s.Empty(resp.State.Buildings)

	// Not retried for the same mount.
	resp, err = s.uc.State(s.ctx, "s1")
	s.Require().NoError(err)
	s.Nil(resp.Notice)
}

func TestCampusPathsUseCaseSuite(t *testing.T) {
	suite.Run(t, new(CampusPathsUseCaseSuite))
}

func TestCampusPathsUseCase_MountRefetchesBuildings(t *testing.T) {
	pathFinder := &MockPathFinderRepository{}
	pathFinder.On("ListBuildings", mock.Anything).Return(testBuildings, nil).Twice()
	uc := usecase.NewCampusPathsUseCase(pathFinder, memory.NewSessionRepository(), zap.NewNop())
	ctx := context.Background()

	_, err := uc.Mount(ctx, "s1")
	require.NoError(t, err)
	_, err = uc.Dispatch(ctx, "s1", domain.StartSelected("CSE"))
	require.NoError(t, err)

	resp, err := uc.Mount(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.NoBuilding, resp.State.Start)
	pathFinder.AssertExpectations(t)
}
