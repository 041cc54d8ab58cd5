package usecase_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campus-maps/internal/domain"
	"github.com/campus-maps/internal/pkg/errors"
	"github.com/campus-maps/internal/repository/memory"
	"github.com/campus-maps/internal/usecase"
)

func newLineMapperUseCase() *usecase.LineMapperUseCase {
	return usecase.NewLineMapperUseCase(memory.NewSessionRepository(), usecase.ParseStrict, zap.NewNop())
}

func TestLineMapperUseCase_Reduce(t *testing.T) {
	uc := newLineMapperUseCase()

	t.Run("text change keeps segments", func(t *testing.T) {
		state := uc.Init()
		state, err := uc.Reduce(state, domain.TextChanged("0 0 10 10 red"))
		require.NoError(t, err)

		assert.Equal(t, "0 0 10 10 red", state.Text)
		assert.Empty(t, state.Segments)
		assert.Equal(t, domain.PhaseEmpty, state.Phase)
	})

	t.Run("draw replaces segments", func(t *testing.T) {
		state := uc.Init()
		state, _ = uc.Reduce(state, domain.TextChanged("0 0 10 10 red\n1 1 2\n5 5 6 6 blue"))
		state, err := uc.Reduce(state, domain.Draw())
		require.NoError(t, err)

		assert.Equal(t, domain.PhasePopulated, state.Phase)
		assert.Len(t, state.Segments, 2)

		state, _ = uc.Reduce(state, domain.TextChanged("1 1 2 2 green"))
		state, err = uc.Reduce(state, domain.Draw())
		require.NoError(t, err)
		assert.Equal(t, []domain.Segment{{X1: 1, Y1: 1, X2: 2, Y2: 2, Color: "green"}}, state.Segments)
	})

	t.Run("draw with nothing valid is empty", func(t *testing.T) {
		state, _ := uc.Reduce(uc.Init(), domain.TextChanged("nothing here"))
		state, err := uc.Reduce(state, domain.Draw())
		require.NoError(t, err)

		assert.Equal(t, domain.PhaseEmpty, state.Phase)
		assert.Empty(t, state.Segments)
	})

	t.Run("clear from populated", func(t *testing.T) {
		state, _ := uc.Reduce(uc.Init(), domain.TextChanged("0 0 10 10 red"))
		state, _ = uc.Reduce(state, domain.Draw())
		state, err := uc.Reduce(state, domain.Clear())
		require.NoError(t, err)

		assert.Equal(t, uc.Init(), state)
	})

	t.Run("unknown event", func(t *testing.T) {
		state := uc.Init()
		next, err := uc.Reduce(state, domain.FindRoute())

		assert.True(t, stderrors.Is(err, errors.ErrUnknownEvent))
		assert.Equal(t, state, next)
	})
}

func TestLineMapperUseCase_Dispatch(t *testing.T) {
	uc := newLineMapperUseCase()
	ctx := context.Background()

	resp, err := uc.Dispatch(ctx, "s1", domain.TextChanged("0 0 10 10 red"), domain.Draw())
	require.NoError(t, err)
	assert.Len(t, resp.State.Segments, 1)

	// State persists per session.
	resp, err = uc.State(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "0 0 10 10 red", resp.State.Text)
	assert.Len(t, resp.State.Segments, 1)

	other, err := uc.State(ctx, "s2")
	require.NoError(t, err)
	assert.Empty(t, other.State.Segments)

	// Repeated draw on the same text gives the same list.
	again, err := uc.Dispatch(ctx, "s1", domain.Draw())
	require.NoError(t, err)
	assert.Equal(t, resp.State.Segments, again.State.Segments)

	resp, err = uc.Dispatch(ctx, "s1", domain.Clear())
	require.NoError(t, err)
	assert.Equal(t, "", resp.State.Text)
	assert.Empty(t, resp.State.Segments)

	resp, err = uc.Mount(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseEmpty, resp.State.Phase)
}

func TestLineMapperUseCase_DispatchUnknownEventDoesNotSave(t *testing.T) {
	uc := newLineMapperUseCase()
	ctx := context.Background()

	_, err := uc.Dispatch(ctx, "s1", domain.TextChanged("0 0 1 1 red"), domain.Reset())
	assert.Error(t, err)

	resp, err := uc.State(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "", resp.State.Text)
}
