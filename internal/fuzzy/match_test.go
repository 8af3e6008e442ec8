package fuzzy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch_EmptyInputsNeverMatch(t *testing.T) {
	matched, _ := Match("", "anything")
	assert.False(t, matched)

	matched, _ = Match("anything", "")
	assert.False(t, matched)

	matched, _ = Match("", "")
	assert.False(t, matched)
}

func TestMatch_CaseInsensitive(t *testing.T) {
	matched, _ := Match("HEALTH", "health")
	assert.True(t, matched)

	matched, _ = Match("hp", "HelpPage")
	assert.True(t, matched)
}

func TestMatch_RequiresAllPatternRunesInOrder(t *testing.T) {
	matched, _ := Match("xyz", "save")
	assert.False(t, matched)

	// Runes present but out of order do not match.
	matched, _ = Match("ba", "abc")
	assert.False(t, matched)
}

func TestMatch_CamelBonusBeatsPlainAlignment(t *testing.T) {
	_, camelScore := Match("gc", "GetComponent")
	_, plainScore := Match("gc", "gcollect")

	assert.Greater(t, camelScore, plainScore,
		"camelCase hump alignment should outrank a plain consecutive match on a longer unmatched tail")
}

func TestMatch_SequentialBonus(t *testing.T) {
	_, consecutive := Match("he", "help")
	_, scattered := Match("hp", "help")

	assert.Greater(t, consecutive, scattered)
}

func TestMatch_SeparatorBonus(t *testing.T) {
	// 'm' right after '_' earns the separator bonus.
	_, separated := Match("gm", "god_mode")
	_, embedded := Match("gm", "godmmode")

	assert.Greater(t, separated, embedded)
}

func TestMatch_LeadingLetterPenaltyIsCapped(t *testing.T) {
	// First match at index 2 costs 10; at index 9 the penalty caps at 15
	// rather than 45, so the scores differ by exactly the extra unmatched
	// letters, not by an unbounded leading penalty.
	_, near := Match("z", "aaz")
	_, far := Match("z", "aaaaaaaaaz")

	assert.Equal(t, 100-10-2, near)
	assert.Equal(t, 100-15-9, far)
}

func TestMatch_BacktrackingFindsBetterLaterAlignment(t *testing.T) {
	matched, score := Match("re", "rare_earth")
	assert.True(t, matched)

	// The naive alignment takes the 'e' at index 3 and scores 107; the
	// backtracking search lands on the 'e' after the underscore instead
	// and collects the separator bonus.
	assert.Equal(t, 137, score)
	assert.Greater(t, score, scoreAlignment([]rune("rare_earth"), []int{0, 3}))
}

func TestMatch_RecursionBudgetIsBounded(t *testing.T) {
	// Pathological input: every rune of the pattern matches at many
	// candidate positions, exploding the backtracking space.
	pattern := []rune(strings.Repeat("a", 8))
	candidate := []rune(strings.Repeat("a", 64))

	recursions := 0
	matchRecursive(pattern, candidate, 0, 0, nil, &recursions)

	assert.LessOrEqual(t, recursions, recursionLimit,
		"the backtracking search must never exceed its fixed call budget")
}

func TestMatch_BudgetExhaustionCanMissTrueMatches(t *testing.T) {
	// Documented cost-bound limitation: once the budget is spent, branches
	// are forced to non-matches, so an adversarial input may fail to match
	// even though a valid alignment exists. The call must still terminate
	// and report cleanly either way.
	assert.NotPanics(t, func() {
		Match(strings.Repeat("ab", 12), strings.Repeat("ab", 12))
	})
}

func TestScoreAlignment_FirstLetterBonus(t *testing.T) {
	withFirst := scoreAlignment([]rune("save"), []int{0})
	without := scoreAlignment([]rune("asave"), []int{1})

	// 100 + 15 first-letter - 3 unmatched.
	assert.Equal(t, 112, withFirst)
	// 100 - 5 leading - 4 unmatched, no bonus at position 1 after 'a'.
	assert.Equal(t, 91, without)
}

func TestScoreAlignment_DigitActsAsSeparator(t *testing.T) {
	// 'x' after a digit earns the separator bonus.
	after := scoreAlignment([]rune("p2x"), []int{2})
	plain := scoreAlignment([]rune("pax"), []int{2})

	assert.Equal(t, plain+separatorBonus, after)
}
