package recommend

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fridgewise/v1/internal/domain/recipe"
	"github.com/fridgewise/v1/internal/ports/inbound"
	apperrors "github.com/fridgewise/v1/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeChat struct {
	prompts      []string
	imagePrompts []string
	responses    []string
	err          error
	lastImage    []byte
	lastMimeType string
}

func (f *fakeChat) Complete(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	resp := f.responses[0]
	if len(f.responses) > 1 {
		f.responses = f.responses[1:]
	}
	return resp, nil
}

func (f *fakeChat) CompleteWithImage(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	f.imagePrompts = append(f.imagePrompts, prompt)
	f.lastImage = image
	f.lastMimeType = mimeType
	if f.err != nil {
		return "", f.err
	}
	resp := f.responses[0]
	if len(f.responses) > 1 {
		f.responses = f.responses[1:]
	}
	return resp, nil
}

type fakeCorpus struct {
	recipes []recipe.PublicRecipe
	err     error
}

func (f *fakeCorpus) Snapshot(ctx context.Context) ([]recipe.PublicRecipe, error) {
	return f.recipes, f.err
}

func (f *fakeCorpus) Invalidate() {}

func intPtr(v int) *int { return &v }

const validRecipeJSON = `[{"title":"김치찌개","time":"20분","difficulty":"쉬움",` +
	`"ingredients":[{"name":"김치","quantity":"1/4포기","have":true}],` +
	`"steps":["끓인다"],"tip":"팁","source":"ai_generated"}]`

func TestRecommendRequiresIngredients(t *testing.T) {
	chat := &fakeChat{}
	svc := NewService(chat, &fakeCorpus{}, zap.NewNop())

	_, err := svc.Recommend(context.Background(), inbound.RecommendCommand{Mode: inbound.ModeGeneral})

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeValidationFailed))
	assert.Empty(t, chat.prompts, "no model call before validation passes")
}

func TestRecommendBuildsUrgentPrompt(t *testing.T) {
	chat := &fakeChat{responses: []string{validRecipeJSON}}
	svc := NewService(chat, &fakeCorpus{}, zap.NewNop())

	result, err := svc.Recommend(context.Background(), inbound.RecommendCommand{
		Mode: inbound.ModeUrgent,
		Ingredients: []inbound.RecommendIngredient{
			{Name: "우유", Quantity: 1, Unit: "팩", DDay: intPtr(1)},
			{Name: "감자", Quantity: 3, Unit: "개", DDay: intPtr(14)},
		},
	})

	require.NoError(t, err)
	require.Len(t, result.Recipes, 1)
	require.Len(t, chat.prompts, 1)

	prompt := chat.prompts[0]
	assert.Contains(t, prompt, "유통기한이 임박한 재료를 우선적으로")
	assert.Contains(t, prompt, "우유 (1팩) ⚠️ 유통기한 D-1")
	assert.NotContains(t, prompt, "감자 (3개) ⚠️", "items outside the urgent window carry no flag")
}

func TestRecommendIncludesThemeAndMustUse(t *testing.T) {
	chat := &fakeChat{responses: []string{validRecipeJSON}}
	svc := NewService(chat, &fakeCorpus{}, zap.NewNop())

	_, err := svc.Recommend(context.Background(), inbound.RecommendCommand{
		Mode:        inbound.ModeGeneral,
		Theme:       "한식",
		MustUse:     []string{"두부"},
		Ingredients: []inbound.RecommendIngredient{{Name: "두부"}},
	})

	require.NoError(t, err)
	prompt := chat.prompts[0]
	assert.Contains(t, prompt, "요리 스타일: 한식")
	assert.Contains(t, prompt, "반드시 두부를 사용해주세요")
}

func TestRecommendEmbedsMatchedReferences(t *testing.T) {
	corpus := &fakeCorpus{recipes: []recipe.PublicRecipe{
		{ID: "28", Name: "두부조림", Ingredients: "두부 1모, 간장", Steps: []recipe.Step{{Text: "조린다"}}},
		{ID: "77", Name: "연어스테이크", Ingredients: "연어 200g"},
	}}
	chat := &fakeChat{responses: []string{
		`[{"title":"두부조림","source":"public_db","sourceId":"28"}]`,
	}}
	svc := NewService(chat, corpus, zap.NewNop())

	result, err := svc.Recommend(context.Background(), inbound.RecommendCommand{
		Mode:        inbound.ModeGeneral,
		Ingredients: []inbound.RecommendIngredient{{Name: "두부"}},
	})

	require.NoError(t, err)
	assert.Contains(t, chat.prompts[0], "id: 28 / 이름: 두부조림")
	assert.NotContains(t, chat.prompts[0], "연어스테이크", "unmatched corpus entries stay out of the prompt")

	assert.Equal(t, 1, result.MatchedPublicRecipes)
	assert.Equal(t, 2, result.TotalPublicRecipes)
	require.Contains(t, result.PublicRecipes, "28")
	assert.Equal(t, "두부조림", result.PublicRecipes["28"].Name)
}

func TestRecommendNormalizesProvenance(t *testing.T) {
	corpus := &fakeCorpus{recipes: []recipe.PublicRecipe{
		{ID: "28", Name: "두부조림", Ingredients: "두부 1모"},
	}}
	chat := &fakeChat{responses: []string{
		`[{"title":"두부조림","source":"public_db","sourceId":"28"},` +
			`{"title":"상상요리","source":"public_db","sourceId":"999"},` +
			`{"title":"새요리"}]`,
	}}
	svc := NewService(chat, corpus, zap.NewNop())

	result, err := svc.Recommend(context.Background(), inbound.RecommendCommand{
		Ingredients: []inbound.RecommendIngredient{{Name: "두부"}},
	})

	require.NoError(t, err)
	require.Len(t, result.Recipes, 3)
	assert.Equal(t, recipe.ProvenancePublicDB, result.Recipes[0].Source)
	assert.Equal(t, "28", result.Recipes[0].SourceID)
	// A citation of an unknown id is rewritten as freshly generated
	assert.Equal(t, recipe.ProvenanceAIGenerated, result.Recipes[1].Source)
	assert.Empty(t, result.Recipes[1].SourceID)
	assert.Equal(t, recipe.ProvenanceAIGenerated, result.Recipes[2].Source)
}

func TestRecommendSurvivesCorpusFailure(t *testing.T) {
	corpus := &fakeCorpus{err: errors.New("data.go.kr unreachable")}
	chat := &fakeChat{responses: []string{validRecipeJSON}}
	svc := NewService(chat, corpus, zap.NewNop())

	result, err := svc.Recommend(context.Background(), inbound.RecommendCommand{
		Ingredients: []inbound.RecommendIngredient{{Name: "김치"}},
	})

	require.NoError(t, err)
	assert.Equal(t, 0, result.TotalPublicRecipes)
	require.Len(t, result.Recipes, 1)
}

func TestRecommendRetriesMalformedOutputOnce(t *testing.T) {
	chat := &fakeChat{responses: []string{
		"죄송합니다, JSON으로 드릴게요... 아 깜빡했네요.",
		validRecipeJSON,
	}}
	svc := NewService(chat, &fakeCorpus{}, zap.NewNop())

	result, err := svc.Recommend(context.Background(), inbound.RecommendCommand{
		Ingredients: []inbound.RecommendIngredient{{Name: "김치"}},
	})

	require.NoError(t, err)
	require.Len(t, chat.prompts, 2)
	assert.True(t, strings.HasSuffix(chat.prompts[1], strictOutputReminder),
		"retry appends the strict output reminder")
	require.Len(t, result.Recipes, 1)
}

func TestRecommendGivesUpAfterSecondMalformedOutput(t *testing.T) {
	chat := &fakeChat{responses: []string{"말로만 추천 1", "말로만 추천 2"}}
	svc := NewService(chat, &fakeCorpus{}, zap.NewNop())

	_, err := svc.Recommend(context.Background(), inbound.RecommendCommand{
		Ingredients: []inbound.RecommendIngredient{{Name: "김치"}},
	})

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeAIMalformedOutput))
	assert.Len(t, chat.prompts, 2)
}

func TestRecommendPropagatesChatErrors(t *testing.T) {
	rateLimited := apperrors.NewAIRateLimitedError(errors.New("429"))
	chat := &fakeChat{err: rateLimited}
	svc := NewService(chat, &fakeCorpus{}, zap.NewNop())

	_, err := svc.Recommend(context.Background(), inbound.RecommendCommand{
		Ingredients: []inbound.RecommendIngredient{{Name: "김치"}},
	})

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeAIRateLimited))
	assert.Len(t, chat.prompts, 1, "rate limiting is not retried at this layer")
}

func TestScanReceiptRequiresImage(t *testing.T) {
	svc := NewService(&fakeChat{}, &fakeCorpus{}, zap.NewNop())

	_, err := svc.ScanReceipt(context.Background(), nil, "image/jpeg")

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeValidationFailed))
}

func TestScanReceiptCoercesEnumerations(t *testing.T) {
	chat := &fakeChat{responses: []string{
		`[{"name":"삼겹살","category":"정육코너","quantity":0,"unit":"근","price":12900},` +
			`{"name":"우유","category":"유제품","quantity":2,"unit":"팩","price":5400}]`,
	}}
	svc := NewService(chat, &fakeCorpus{}, zap.NewNop())

	items, err := svc.ScanReceipt(context.Background(), []byte("fake-jpeg"), "image/jpeg")

	require.NoError(t, err)
	require.Len(t, items, 2)
	// Unknown category and unit collapse to the catch-all values
	assert.Equal(t, "기타", items[0].Category)
	assert.Equal(t, "개", items[0].Unit)
	assert.Equal(t, float64(1), items[0].Quantity, "non-positive quantity defaults to 1")
	assert.Equal(t, "유제품", items[1].Category)
	assert.Equal(t, "팩", items[1].Unit)
	assert.Equal(t, float64(2), items[1].Quantity)
}

func TestSuggestDailyPlanValidatesDate(t *testing.T) {
	svc := NewService(&fakeChat{}, &fakeCorpus{}, zap.NewNop())

	_, err := svc.SuggestDailyPlan(context.Background(), inbound.SuggestPlanCommand{Date: "내일"})

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeValidationFailed))
}

func TestSuggestDailyPlanUsesHoldings(t *testing.T) {
	chat := &fakeChat{responses: []string{
		`[{"mealType":"breakfast","title":"계란말이","ingredients":[{"name":"계란","quantity":"3개"}]},` +
			`{"mealType":"lunch","title":"김치볶음밥","ingredients":[]},` +
			`{"mealType":"dinner","title":"된장찌개","ingredients":[]}]`,
	}}
	svc := NewService(chat, &fakeCorpus{}, zap.NewNop())

	meals, err := svc.SuggestDailyPlan(context.Background(), inbound.SuggestPlanCommand{
		Date: "2025-03-10",
		Ingredients: []inbound.RecommendIngredient{
			{Name: "계란", Quantity: 6, Unit: "개"},
		},
	})

	require.NoError(t, err)
	require.Len(t, meals, 3)
	assert.Equal(t, "breakfast", meals[0].MealType)
	assert.Contains(t, chat.prompts[0], "2025-03-10")
	assert.Contains(t, chat.prompts[0], "계란(6개)")
}
