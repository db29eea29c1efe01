package hangman

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderGallows_StageCounts(t *testing.T) {
	assert.Equal(t, 10, StageCount(DifficultyEasy))
	assert.Equal(t, 7, StageCount(DifficultyMedium))
	assert.Equal(t, 4, StageCount(DifficultyHard))
	assert.Equal(t, 7, StageCount(Difficulty("nightmare")))
}

func TestRenderGallows_LastStageIsDead(t *testing.T) {
	for _, d := range []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard} {
		last := StageCount(d) - 1
		assert.True(t, strings.HasSuffix(RenderGallows(last, d), "You are dead!"), d)
		for stage := 0; stage < last; stage++ {
			assert.NotContains(t, RenderGallows(stage, d), "You are dead!", "%s stage %d", d, stage)
		}
	}
}

func TestRenderGallows_StagesGrow(t *testing.T) {
	for _, d := range []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard} {
		for stage := 1; stage < StageCount(d); stage++ {
			assert.NotEqual(t, RenderGallows(stage-1, d), RenderGallows(stage, d), "%s stage %d", d, stage)
		}
	}
}

func TestRenderGallows_Clamps(t *testing.T) {
	assert.Equal(t, RenderGallows(3, DifficultyHard), RenderGallows(4, DifficultyHard))
	assert.Equal(t, RenderGallows(3, DifficultyHard), RenderGallows(1000, DifficultyHard))
	assert.Equal(t, RenderGallows(9, DifficultyEasy), RenderGallows(42, DifficultyEasy))
	assert.Equal(t, RenderGallows(0, DifficultyMedium), RenderGallows(-5, DifficultyMedium))
}

func TestRenderGallows_UnknownTierUsesMedium(t *testing.T) {
	for stage := 0; stage < 10; stage++ {
		assert.Equal(t, RenderGallows(stage, DifficultyMedium), RenderGallows(stage, Difficulty("")))
	}
}

func TestParseDifficulty(t *testing.T) {
	cases := []struct {
		input    string
		expected Difficulty
		ok       bool
	}{
		{"easy", DifficultyEasy, true},
		{"  HARD\n", DifficultyHard, true},
		{"Medium", DifficultyMedium, true},
		{"impossible", DifficultyMedium, false},
		{"", DifficultyMedium, false},
	}
	for _, tc := range cases {
		d, ok := ParseDifficulty(tc.input)
		assert.Equal(t, tc.expected, d, tc.input)
		assert.Equal(t, tc.ok, ok, tc.input)
	}
}
