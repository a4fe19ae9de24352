package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccumulatorResetsOnImprovement(t *testing.T) {
	a := newAccumulator(10)
	a.emit([]int{1, 2})
	a.emit([]int{3, 4})
	a.emit([]int{5, 6, 7}) // longer: discards the two length-2 chains

	snap := a.snapshot()
	assert.Equal(t, 3, snap.MaxLength)
	assert.Equal(t, [][]int{{5, 6, 7}}, snap.Chains)
}

func TestAccumulatorDiscardsShorterChain(t *testing.T) {
	a := newAccumulator(10)
	a.emit([]int{1, 2, 3})
	a.emit([]int{4, 5}) // shorter: discarded

	snap := a.snapshot()
	assert.Equal(t, 3, snap.MaxLength)
	assert.Equal(t, [][]int{{1, 2, 3}}, snap.Chains)
}

func TestAccumulatorCapsChainsSilently(t *testing.T) {
	a := newAccumulator(2)
	a.emit([]int{1})
	a.emit([]int{2})
	a.emit([]int{3}) // past cap: dropped silently

	snap := a.snapshot()
	assert.Len(t, snap.Chains, 2)
}

func TestAccumulatorEmitCopiesPathIndependently(t *testing.T) {
	a := newAccumulator(10)
	path := []int{1, 2, 3}
	a.emit(path)
	path[0] = 99 // mutate caller's buffer after emit

	snap := a.snapshot()
	assert.Equal(t, 1, snap.Chains[0][0])
}

func TestAccumulatorEmptySnapshotInitially(t *testing.T) {
	a := newAccumulator(10)
	snap := a.snapshot()
	assert.Equal(t, 0, snap.MaxLength)
	assert.Empty(t, snap.Chains)
}
