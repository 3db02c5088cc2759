package hr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zenith-hr/internal/store"
)

func newTestBoard(t *testing.T) *Board {
	t.Helper()
	c, err := LoadCollection(store.NewMemory(), "candidates", SeedCandidates)
	require.NoError(t, err)
	return NewBoard(c)
}

func TestGroupByStage(t *testing.T) {
	board := newTestBoard(t)
	columns := board.GroupByStage()

	t.Run("every stage key is present", func(t *testing.T) {
		require.Len(t, columns, len(StageOrder))
		for _, stage := range StageOrder {
			_, ok := columns[stage]
			assert.True(t, ok, "missing column for stage %s", stage)
		}
		// Screening has one candidate in the seed; Offer exactly one too.
		assert.NotNil(t, columns[StageScreening])
	})

	t.Run("union of columns equals the collection", func(t *testing.T) {
		seen := make(map[string]int)
		total := 0
		for _, stage := range StageOrder {
			for _, candidate := range columns[stage] {
				assert.Equal(t, stage, candidate.Stage)
				seen[candidate.ID]++
				total++
			}
		}
		assert.Len(t, seen, len(SeedCandidates), "no candidate lost")
		assert.Equal(t, len(SeedCandidates), total, "no candidate duplicated")
	})

	t.Run("relative order preserved within a column", func(t *testing.T) {
		applied := columns[StageApplied]
		require.Len(t, applied, 2)
		assert.Equal(t, "can-2", applied[0].ID)
		assert.Equal(t, "can-6", applied[1].ID)
	})

	t.Run("empty columns stay present", func(t *testing.T) {
		board := newTestBoard(t)
		_, err := board.MoveToStage("can-5", StageOffer)
		require.NoError(t, err)

		columns := board.GroupByStage()
		require.Contains(t, columns, StageHired)
		assert.Empty(t, columns[StageHired])
	})
}

func TestMoveToStage(t *testing.T) {
	t.Run("any stage is reachable from any stage", func(t *testing.T) {
		board := newTestBoard(t)

		snapshot, err := board.MoveToStage("can-2", StageHired) // Applied -> Hired directly
		require.NoError(t, err)
		assert.Equal(t, StageHired, stageOf(t, snapshot, "can-2"))

		snapshot, err = board.MoveToStage("can-2", StageApplied) // and back
		require.NoError(t, err)
		assert.Equal(t, StageApplied, stageOf(t, snapshot, "can-2"))
	})

	t.Run("idempotent", func(t *testing.T) {
		board := newTestBoard(t)

		first, err := board.MoveToStage("can-1", StageOffer)
		require.NoError(t, err)
		second, err := board.MoveToStage("can-1", StageOffer)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, StageOffer, stageOf(t, second, "can-1"))
		assert.Len(t, second, len(SeedCandidates))
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		board := newTestBoard(t)
		before := board.Candidates().Items()

		snapshot, err := board.MoveToStage("can-404", StageHired)
		require.NoError(t, err)
		assert.Equal(t, before, snapshot)
	})
}

func stageOf(t *testing.T, candidates []Candidate, id string) Stage {
	t.Helper()
	for _, c := range candidates {
		if c.ID == id {
			return c.Stage
		}
	}
	t.Fatalf("candidate %s not found", id)
	return ""
}
