// Prompt building for the recommendation flows. Instructions are
// written in Korean to match the app's audience; every prompt pins the
// exact JSON array shape expected back.
package recommend

import (
	"fmt"
	"strings"

	"github.com/fridgewise/v1/internal/domain/inventory"
	"github.com/fridgewise/v1/internal/domain/recipe"
	"github.com/fridgewise/v1/internal/ports/inbound"
)

// strictOutputReminder is appended on the single malformed-output retry
const strictOutputReminder = "\n\n중요: 반드시 JSON 배열만 출력하세요. 설명, 인사말, 마크다운 등 다른 텍스트를 절대 포함하지 마세요."

// formatIngredientLine renders one owned ingredient, flagging items at
// or inside the urgent expiry window.
func formatIngredientLine(ing inbound.RecommendIngredient) string {
	text := ing.Name
	if ing.Quantity > 0 && ing.Unit != "" {
		text += fmt.Sprintf(" (%g%s)", ing.Quantity, ing.Unit)
	}
	if ing.DDay != nil && *ing.DDay <= inventory.UrgentWithinDays {
		if *ing.DDay <= 0 {
			text += " ⚠️ 유통기한 만료"
		} else {
			text += fmt.Sprintf(" ⚠️ 유통기한 D-%d", *ing.DDay)
		}
	}
	return text
}

// buildRecommendPrompt assembles the recommendation instruction:
// mode/theme statement, owned ingredients with expiry flags, matched
// public recipes as reference material, the must-use constraint, and
// the structured output contract.
func buildRecommendPrompt(cmd inbound.RecommendCommand, references []recipe.Match) string {
	lines := make([]string, 0, len(cmd.Ingredients))
	for _, ing := range cmd.Ingredients {
		lines = append(lines, formatIngredientLine(ing))
	}
	ingredientList := strings.Join(lines, ", ")

	var prompt strings.Builder

	if cmd.Mode == inbound.ModeUrgent {
		prompt.WriteString("다음은 냉장고에 있는 재료 목록입니다. ⚠️ 표시된 재료는 유통기한이 임박합니다.\n\n")
		prompt.WriteString(fmt.Sprintf("재료: %s\n\n", ingredientList))
		prompt.WriteString("유통기한이 임박한 재료를 우선적으로 활용하는 레시피 3개를 추천해주세요.")
	} else {
		prompt.WriteString("다음은 냉장고에 있는 재료 목록입니다.\n\n")
		prompt.WriteString(fmt.Sprintf("재료: %s\n\n", ingredientList))
		prompt.WriteString("이 재료들을 활용해서 만들 수 있는 레시피 3개를 추천해주세요.")
	}

	if cmd.Theme != "" {
		prompt.WriteString(fmt.Sprintf("\n요리 스타일: %s 위주로 추천해주세요.", cmd.Theme))
	}

	if len(cmd.MustUse) > 0 {
		prompt.WriteString(fmt.Sprintf("\n필수 재료: 모든 레시피에 반드시 %s를 사용해주세요.", strings.Join(cmd.MustUse, ", ")))
	}

	if len(references) > 0 {
		prompt.WriteString("\n\n참고할 수 있는 공공 레시피 데이터입니다. 재료가 잘 맞으면 이 레시피를 바탕으로 추천해도 좋습니다:\n")
		for _, m := range references {
			prompt.WriteString(formatReference(m.Recipe))
		}
		prompt.WriteString("\n참고 레시피를 바탕으로 한 경우 source를 \"public_db\"로, sourceId에 해당 레시피의 id를 넣어주세요. 새로 만든 레시피는 source를 \"ai_generated\"로 표시하세요.")
	}

	prompt.WriteString(`

각 레시피는 다음 JSON 형식으로 응답해주세요. JSON 배열만 출력하고 다른 텍스트는 포함하지 마세요:
[
  {
    "title": "요리 이름",
    "time": "조리 시간 (예: 20분)",
    "difficulty": "쉬움/보통/어려움",
    "ingredients": [{"name": "재료명", "quantity": "양", "have": true/false}],
    "steps": ["조리 단계 1", "조리 단계 2", ...],
    "tip": "요리 팁 (한 줄)",
    "source": "public_db 또는 ai_generated",
    "sourceId": "참고한 공공 레시피 id (없으면 생략)"
  }
]

have는 위 재료 목록에 있으면 true, 추가로 필요하면 false로 표시해주세요.
한국 가정에서 흔히 있는 기본 양념(소금, 설탕, 식용유, 참기름, 간장 등)은 있다고 가정해도 됩니다.`)

	return prompt.String()
}

// formatReference renders one public recipe as reference material
func formatReference(r recipe.PublicRecipe) string {
	steps := make([]string, 0, len(r.Steps))
	for _, s := range r.Steps {
		steps = append(steps, s.Text)
	}
	return fmt.Sprintf("- id: %s / 이름: %s / 분류: %s / 조리법: %s\n  재료: %s\n  조리 순서: %s\n",
		r.ID, r.Name, r.Category, r.Method, r.Ingredients, strings.Join(steps, " → "))
}

// receiptScanPrompt extracts fridge-worthy ingredients from a receipt image
const receiptScanPrompt = `이 마트/편의점 영수증 이미지에서 식재료 항목만 추출해주세요.
가공식품, 생활용품 등은 제외하고 냉장고에 넣을 수 있는 식재료만 골라주세요.

JSON 배열로만 응답해주세요:
[
  {
    "name": "재료명 (간결하게, 예: 삼겹살, 우유, 양파)",
    "category": "카테고리 (육류/해산물/채소/과일/유제품/냉동식품/음료/양념/곡류/기타 중 하나)",
    "quantity": 수량(숫자),
    "unit": "단위 (g/kg/ml/L/개/팩/병/봉 중 하나)",
    "price": 가격(숫자, 없으면 0)
  }
]

영수증에서 식재료를 찾을 수 없으면 빈 배열 []을 반환하세요.
제품명이 길면 핵심 재료명만 간결하게 정리해주세요. (예: "풀무원 국산콩두부 300g" → "두부")`

// buildPlanPrompt assembles the daily planner instruction
func buildPlanPrompt(cmd inbound.SuggestPlanCommand) string {
	var prompt strings.Builder
	prompt.WriteString(fmt.Sprintf("%s 날짜의 하루 식단을 추천해주세요.\n", cmd.Date))

	if len(cmd.Ingredients) > 0 {
		lines := make([]string, 0, len(cmd.Ingredients))
		for _, ing := range cmd.Ingredients {
			if ing.Quantity > 0 && ing.Unit != "" {
				lines = append(lines, fmt.Sprintf("%s(%g%s)", ing.Name, ing.Quantity, ing.Unit))
			} else {
				lines = append(lines, ing.Name)
			}
		}
		prompt.WriteString(fmt.Sprintf("\n현재 냉장고 재료: %s\n가능하면 이 재료를 활용해주세요.\n", strings.Join(lines, ", ")))
	}

	prompt.WriteString(`
아침, 점심, 저녁 3끼를 추천해주세요.
JSON 배열만 출력하세요:
[
  {"mealType": "breakfast", "title": "메뉴이름", "ingredients": [{"name": "재료", "quantity": "양"}]},
  {"mealType": "lunch", "title": "메뉴이름", "ingredients": [{"name": "재료", "quantity": "양"}]},
  {"mealType": "dinner", "title": "메뉴이름", "ingredients": [{"name": "재료", "quantity": "양"}]}
]
한국 가정식 위주로, 간단하고 현실적인 메뉴로 추천해주세요.`)

	return prompt.String()
}
