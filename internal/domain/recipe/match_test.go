package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func corpusFixture() []PublicRecipe {
	return []PublicRecipe{
		{ID: "1", Name: "김치찌개", Ingredients: "돼지고기 300g, 김치 1/4포기, 두부 1모, 대파"},
		{ID: "2", Name: "된장찌개", Ingredients: "두부 1모, 애호박 1/2개, 감자 1개, 된장"},
		{ID: "3", Name: "계란말이", Ingredients: "계란 4개, 대파, 당근 약간"},
		{ID: "4", Name: "두부조림", Ingredients: "두부 1모, 간장, 고춧가루, 대파"},
	}
}

func TestMatchByIngredients(t *testing.T) {
	corpus := corpusFixture()

	matches := MatchByIngredients(corpus, []string{"두부", "대파"})

	// 1: 김치찌개 (두부+대파=2), 2: 된장찌개 (두부=1), 3: 계란말이 (대파=1), 4: 두부조림 (두부+대파=2)
	assert.Len(t, matches, 4)
	assert.Equal(t, 2, matches[0].Count)
	assert.Equal(t, 2, matches[1].Count)
	// Ties keep corpus order
	assert.Equal(t, "1", matches[0].Recipe.ID)
	assert.Equal(t, "4", matches[1].Recipe.ID)
}

func TestMatchByIngredientsExcludesZeroMatches(t *testing.T) {
	matches := MatchByIngredients(corpusFixture(), []string{"연어"})
	assert.Empty(t, matches)
}

func TestMatchByIngredientsSubstringContainment(t *testing.T) {
	corpus := []PublicRecipe{
		{ID: "1", Name: "제육볶음", Ingredients: "돼지고기 앞다리살 400g, 양파 1개"},
	}

	// "돼지고기" matches the longer "돼지고기 앞다리살" text
	matches := MatchByIngredients(corpus, []string{"돼지고기"})
	assert.Len(t, matches, 1)
	assert.Equal(t, 1, matches[0].Count)
}

func TestMatchByIngredientsEmptyInputs(t *testing.T) {
	assert.Empty(t, MatchByIngredients(nil, []string{"두부"}))
	assert.Empty(t, MatchByIngredients(corpusFixture(), nil))
}

func TestTopMatches(t *testing.T) {
	corpus := corpusFixture()

	top := TopMatches(corpus, []string{"두부", "대파"}, 2)
	assert.Len(t, top, 2)
	assert.Equal(t, "1", top[0].Recipe.ID)
	assert.Equal(t, "4", top[1].Recipe.ID)

	all := TopMatches(corpus, []string{"두부", "대파"}, 10)
	assert.Len(t, all, 4, "limit above match count returns everything")
}
