package fuzzy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRank_OrdersByDescendingScore(t *testing.T) {
	ranked := Rank("he", []string{"cache", "health", "help"})

	assert.Equal(t, []string{"help", "health", "cache"}, ranked)
}

func TestRank_ExcludesNonMatches(t *testing.T) {
	ranked := Rank("gm", []string{"god_mode", "health", "volume"})

	assert.Equal(t, []string{"god_mode"}, ranked)
}

func TestRank_ExcludesNegativeScores(t *testing.T) {
	// A match buried at the end of a long candidate scores below zero and
	// must be dropped rather than ranked with a sentinel.
	buried := strings.Repeat("a", 90) + "z"
	ranked := Rank("z", []string{buried, "zoom"})

	assert.Equal(t, []string{"zoom"}, ranked)
}

func TestRank_StableForEqualScores(t *testing.T) {
	// "bar" and "baz" score identically for "a"; original relative order
	// must be preserved.
	assert.Equal(t, []string{"bar", "baz"}, Rank("a", []string{"bar", "baz"}))
	assert.Equal(t, []string{"baz", "bar"}, Rank("a", []string{"baz", "bar"}))
}

func TestRank_ScoresAreNonIncreasing(t *testing.T) {
	candidates := []string{"spawn_point", "player_name", "help", "health", "AddInt", "god_mode"}
	ranked := Rank("p", candidates)

	prev := int(^uint(0) >> 1)
	for _, name := range ranked {
		matched, score := Match("p", name)
		assert.True(t, matched)
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, prev)
		prev = score
	}
}

func TestRank_EmptyQueryReturnsNothing(t *testing.T) {
	assert.Empty(t, Rank("", []string{"health", "help"}))
}
