package ai

import (
	"testing"

	apperrors "github.com/fridgewise/v1/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type titled struct {
	Title string `json:"title"`
}

func TestExtractJSONArrayDirect(t *testing.T) {
	var out []titled
	err := ExtractJSONArray(`[{"title":"김치찌개"},{"title":"된장찌개"}]`, &out)

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "김치찌개", out[0].Title)
}

func TestExtractJSONArrayFencedBlock(t *testing.T) {
	text := "레시피를 추천해드릴게요!\n```json\n[{\"title\":\"계란말이\"}]\n```\n맛있게 드세요."

	var out []titled
	require.NoError(t, ExtractJSONArray(text, &out))
	require.Len(t, out, 1)
	assert.Equal(t, "계란말이", out[0].Title)
}

func TestExtractJSONArrayProseWrapped(t *testing.T) {
	text := `물론입니다! 추천 레시피는 다음과 같습니다: [{"title":"두부조림"}] 도움이 되셨길 바랍니다.`

	var out []titled
	require.NoError(t, ExtractJSONArray(text, &out))
	require.Len(t, out, 1)
	assert.Equal(t, "두부조림", out[0].Title)
}

func TestExtractJSONArrayNestedArrays(t *testing.T) {
	text := `결과: [{"title":"비빔밥","steps":["밥 짓기","나물 [선택] 준비"]}]`

	var out []struct {
		Title string   `json:"title"`
		Steps []string `json:"steps"`
	}
	require.NoError(t, ExtractJSONArray(text, &out))
	require.Len(t, out, 1)
	// Brackets inside JSON strings must not break the scan
	assert.Equal(t, "나물 [선택] 준비", out[0].Steps[1])
}

func TestExtractJSONArrayFailures(t *testing.T) {
	var out []titled

	err := ExtractJSONArray("", &out)
	assert.True(t, apperrors.Is(err, apperrors.CodeAIMalformedOutput))

	err = ExtractJSONArray("죄송합니다, 추천할 수 없습니다.", &out)
	assert.True(t, apperrors.Is(err, apperrors.CodeAIMalformedOutput))

	err = ExtractJSONArray(`앞부분 [ 깨진 json`, &out)
	assert.True(t, apperrors.Is(err, apperrors.CodeAIMalformedOutput))
}
