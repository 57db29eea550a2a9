package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankCandidates(t *testing.T) {
	names := []string{"list_head", "hlist_head", "hlist_node", "task_struct", "ListHead"}

	ranked := RankCandidates("list_heda", names)
	require.Len(t, ranked, len(names))

	best := ranked.Best()
	require.NotNil(t, best)

	// list_head and ListHead normalize identically; the tie breaks by name.
	assert.Equal(t, "ListHead", ranked[0].Name)
	assert.Equal(t, "list_head", ranked[1].Name)
	assert.Equal(t, ranked[0].Score, ranked[1].Score)
	assert.Equal(t, "listheda", best.NormalizedTarget)
	assert.Equal(t, "task_struct", ranked[len(ranked)-1].Name)

	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
}

func TestRankCandidates_SkipsTarget(t *testing.T) {
	ranked := RankCandidates("size_t", []string{"size_t", "ssize_t"})
	require.Len(t, ranked, 1)
	assert.Equal(t, "ssize_t", ranked[0].Name)
}

func TestRankCandidates_SuffixStrip(t *testing.T) {
	ranked := RankCandidates("pid", []string{"pid_t", "uid_t"})
	require.Len(t, ranked, 2)
	assert.Equal(t, "pid_t", ranked[0].Name)
	assert.InDelta(t, 1.0, ranked[0].Score, 0.001)
}

func TestSuggest(t *testing.T) {
	names := []string{"list_head", "hlist_head", "hlist_node", "task_struct", "inode"}

	assert.Equal(t, []string{"list_head", "hlist_head"}, Suggest("list_hed", names, 2, DefaultMinScore))
	assert.Equal(t, []string{"list_head"}, Suggest("list_hed", names, 1, DefaultMinScore))
	assert.Nil(t, Suggest("zzzzzz", names, DefaultMaxSuggestions, DefaultMinScore))
	assert.Nil(t, Suggest("list_hed", nil, DefaultMaxSuggestions, DefaultMinScore))
}

func TestCandidateList_Helpers(t *testing.T) {
	list := CandidateList{
		{Name: "a", Score: 0.9},
		{Name: "b", Score: 0.6},
		{Name: "c", Score: 0.2},
	}

	assert.Len(t, list.Top(2), 2)
	assert.Len(t, list.Top(10), 3)
	assert.Len(t, list.Top(-1), 3)
	assert.Len(t, list.AboveThreshold(0.5), 2)
	assert.Empty(t, list.AboveThreshold(0.95))
	assert.Nil(t, CandidateList{}.Best())
}
