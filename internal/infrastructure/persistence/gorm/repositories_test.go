package gorm_test

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/fridgewise/v1/internal/domain/inventory"
	"github.com/fridgewise/v1/internal/domain/mealplan"
	"github.com/fridgewise/v1/internal/domain/recipe"
	"github.com/fridgewise/v1/internal/domain/shopping"
	gormrepo "github.com/fridgewise/v1/internal/infrastructure/persistence/gorm"
	"github.com/fridgewise/v1/internal/infrastructure/persistence/sqlite"
	"github.com/fridgewise/v1/internal/ports/outbound"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// RepositoryTestSuite runs every repository against a fresh in-memory
// SQLite database per test.
type RepositoryTestSuite struct {
	suite.Suite
	ctx         context.Context
	db          *gorm.DB
	fridges     outbound.FridgeRepository
	ingredients outbound.IngredientRepository
	shopping    outbound.ShoppingRepository
	mealPlans   outbound.MealPlanRepository
	saved       outbound.SavedRecipeRepository
	userID      uuid.UUID
	otherUserID uuid.UUID
}

func (s *RepositoryTestSuite) SetupTest() {
	db, err := sqlite.SetupDatabase("", logger.Silent)
	s.Require().NoError(err)

	s.ctx = context.Background()
	s.db = db
	s.fridges = gormrepo.NewFridgeRepository(db)
	s.ingredients = gormrepo.NewIngredientRepository(db)
	s.shopping = gormrepo.NewShoppingRepository(db)
	s.mealPlans = gormrepo.NewMealPlanRepository(db)
	s.saved = gormrepo.NewSavedRecipeRepository(db)
	s.userID = uuid.New()
	s.otherUserID = uuid.New()
}

func (s *RepositoryTestSuite) createFridge(userID uuid.UUID) *inventory.Fridge {
	fridge, err := inventory.NewFridge(userID, gofakeit.Word()+" 냉장고", inventory.FridgeKindRefrigerator)
	s.Require().NoError(err)
	s.Require().NoError(s.fridges.Create(s.ctx, fridge))
	return fridge
}

func (s *RepositoryTestSuite) createIngredient(fridgeID uuid.UUID, name string, daysOut int) *inventory.Ingredient {
	now := time.Now()
	ing, err := inventory.NewIngredient(fridgeID, name, inventory.CategoryVegetable,
		gofakeit.Float64Range(1, 5), inventory.UnitPiece, now, now.AddDate(0, 0, daysOut))
	s.Require().NoError(err)
	s.Require().NoError(s.ingredients.Create(s.ctx, ing))
	return ing
}

// Fridge repository

func (s *RepositoryTestSuite) TestFridgeCreateAndFind() {
	fridge := s.createFridge(s.userID)

	found, err := s.fridges.FindByID(s.ctx, s.userID, fridge.ID())
	s.Require().NoError(err)
	s.Equal(fridge.ID(), found.ID())
	s.Equal(fridge.Name(), found.Name())
	s.Equal(inventory.FridgeKindRefrigerator, found.Kind())
}

func (s *RepositoryTestSuite) TestFridgeFindScopedToOwner() {
	fridge := s.createFridge(s.userID)

	_, err := s.fridges.FindByID(s.ctx, s.otherUserID, fridge.ID())
	s.ErrorIs(err, inventory.ErrFridgeNotFound)
}

func (s *RepositoryTestSuite) TestFridgeFindByUserIDOrdersByCreation() {
	first := s.createFridge(s.userID)
	second := s.createFridge(s.userID)
	s.createFridge(s.otherUserID)

	fridges, err := s.fridges.FindByUserID(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Require().Len(fridges, 2)
	s.Equal(first.ID(), fridges[0].ID())
	s.Equal(second.ID(), fridges[1].ID())
}

func (s *RepositoryTestSuite) TestFridgeRename() {
	fridge := s.createFridge(s.userID)

	s.Require().NoError(s.fridges.Rename(s.ctx, s.userID, fridge.ID(), "김치냉장고"))

	found, err := s.fridges.FindByID(s.ctx, s.userID, fridge.ID())
	s.Require().NoError(err)
	s.Equal("김치냉장고", found.Name())

	s.ErrorIs(s.fridges.Rename(s.ctx, s.otherUserID, fridge.ID(), "탈취"), inventory.ErrFridgeNotFound)
}

func (s *RepositoryTestSuite) TestFridgeDelete() {
	fridge := s.createFridge(s.userID)

	s.ErrorIs(s.fridges.Delete(s.ctx, s.otherUserID, fridge.ID()), inventory.ErrFridgeNotFound)
	s.Require().NoError(s.fridges.Delete(s.ctx, s.userID, fridge.ID()))

	_, err := s.fridges.FindByID(s.ctx, s.userID, fridge.ID())
	s.ErrorIs(err, inventory.ErrFridgeNotFound)
}

// Ingredient repository

func (s *RepositoryTestSuite) TestIngredientRoundTrip() {
	fridge := s.createFridge(s.userID)
	ing := s.createIngredient(fridge.ID(), "애호박", 5)

	found, err := s.ingredients.FindByID(s.ctx, s.userID, ing.ID())
	s.Require().NoError(err)
	s.Equal("애호박", found.Name())
	s.Equal(fridge.ID(), found.FridgeID())
}

func (s *RepositoryTestSuite) TestIngredientOwnershipThroughFridge() {
	fridge := s.createFridge(s.userID)
	ing := s.createIngredient(fridge.ID(), "양파", 5)

	_, err := s.ingredients.FindByID(s.ctx, s.otherUserID, ing.ID())
	s.ErrorIs(err, inventory.ErrIngredientNotFound)

	s.ErrorIs(s.ingredients.Delete(s.ctx, s.otherUserID, ing.ID()), inventory.ErrIngredientNotFound)
	s.Require().NoError(s.ingredients.Delete(s.ctx, s.userID, ing.ID()))
}

func (s *RepositoryTestSuite) TestIngredientFindByUserIDAcrossFridges() {
	main := s.createFridge(s.userID)
	freezer := s.createFridge(s.userID)
	other := s.createFridge(s.otherUserID)

	s.createIngredient(main.ID(), "우유", 10)
	s.createIngredient(freezer.ID(), "만두", 2)
	s.createIngredient(other.ID(), "남의 계란", 5)

	all, err := s.ingredients.FindByUserID(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	// Ordered by expiry date ascending
	s.Equal("만두", all[0].Name())
	s.Equal("우유", all[1].Name())

	onlyMain, err := s.ingredients.FindByFridgeID(s.ctx, s.userID, main.ID())
	s.Require().NoError(err)
	s.Require().Len(onlyMain, 1)
	s.Equal("우유", onlyMain[0].Name())
}

func (s *RepositoryTestSuite) TestIngredientUpdate() {
	fridge := s.createFridge(s.userID)
	ing := s.createIngredient(fridge.ID(), "두부", 3)

	newExpiry := time.Now().AddDate(0, 0, 6)
	s.Require().NoError(ing.UpdateDetails("순두부", inventory.CategoryOther, 2, inventory.UnitPack, newExpiry))
	s.Require().NoError(s.ingredients.Update(s.ctx, ing))

	found, err := s.ingredients.FindByID(s.ctx, s.userID, ing.ID())
	s.Require().NoError(err)
	s.Equal("순두부", found.Name())
	s.Equal(inventory.CategoryOther, found.Category())
	s.Equal(inventory.UnitPack, found.Unit())
	s.InDelta(2, found.Quantity(), 0.001)
}

func (s *RepositoryTestSuite) TestDeleteExpired() {
	fridge := s.createFridge(s.userID)
	otherFridge := s.createFridge(s.otherUserID)

	s.createIngredient(fridge.ID(), "상한 우유", -3)
	s.createIngredient(fridge.ID(), "시든 상추", -1)
	s.createIngredient(fridge.ID(), "멀쩡한 계란", 7)
	s.createIngredient(otherFridge.ID(), "남의 상한 우유", -3)

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	deleted, err := s.ingredients.DeleteExpired(s.ctx, s.userID, midnight)
	s.Require().NoError(err)
	s.Equal(int64(2), deleted)

	remaining, err := s.ingredients.FindByUserID(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Require().Len(remaining, 1)
	s.Equal("멀쩡한 계란", remaining[0].Name())

	// The other user's expired items are untouched
	theirs, err := s.ingredients.FindByUserID(s.ctx, s.otherUserID)
	s.Require().NoError(err)
	s.Len(theirs, 1)
}

// Shopping repository

func (s *RepositoryTestSuite) newShoppingItem(name string) *shopping.Item {
	item, err := shopping.NewItem(s.userID, name, 1, inventory.UnitPiece, nil)
	s.Require().NoError(err)
	return item
}

func (s *RepositoryTestSuite) TestShoppingBulkCreateAndList() {
	items := []*shopping.Item{
		s.newShoppingItem("대파"),
		s.newShoppingItem("고추장"),
	}
	s.Require().NoError(s.shopping.BulkCreate(s.ctx, items))
	s.Require().NoError(s.shopping.BulkCreate(s.ctx, nil))

	list, err := s.shopping.FindByUserID(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Len(list, 2)
}

func (s *RepositoryTestSuite) TestShoppingCheckedOrdering() {
	bought := s.newShoppingItem("산 것")
	pending := s.newShoppingItem("살 것")
	s.Require().NoError(s.shopping.BulkCreate(s.ctx, []*shopping.Item{bought, pending}))

	s.Require().NoError(s.shopping.SetChecked(s.ctx, s.userID, bought.ID(), true))

	list, err := s.shopping.FindByUserID(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	// Unchecked first
	s.Equal("살 것", list[0].Name())
	s.False(list[0].Checked())
	s.Equal("산 것", list[1].Name())
	s.True(list[1].Checked())
}

func (s *RepositoryTestSuite) TestShoppingSetCheckedScopedToOwner() {
	item := s.newShoppingItem("버터")
	s.Require().NoError(s.shopping.Create(s.ctx, item))

	err := s.shopping.SetChecked(s.ctx, s.otherUserID, item.ID(), true)
	s.ErrorIs(err, shopping.ErrItemNotFound)
}

func (s *RepositoryTestSuite) TestShoppingDeleteChecked() {
	a := s.newShoppingItem("a")
	b := s.newShoppingItem("b")
	c := s.newShoppingItem("c")
	s.Require().NoError(s.shopping.BulkCreate(s.ctx, []*shopping.Item{a, b, c}))
	s.Require().NoError(s.shopping.SetChecked(s.ctx, s.userID, a.ID(), true))
	s.Require().NoError(s.shopping.SetChecked(s.ctx, s.userID, b.ID(), true))

	deleted, err := s.shopping.DeleteChecked(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Equal(int64(2), deleted)

	list, err := s.shopping.FindByUserID(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal("c", list[0].Name())
}

// Meal plan repository

func (s *RepositoryTestSuite) newMealPlan(date time.Time, slot mealplan.MealSlot, title string) *mealplan.MealPlan {
	plan, err := mealplan.NewMealPlan(s.userID, date, slot, title,
		[]mealplan.IngredientHint{{Name: "계란", Quantity: "2개"}}, "")
	s.Require().NoError(err)
	return plan
}

func (s *RepositoryTestSuite) TestMealPlanUpsertReplacesSameSlot() {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	original := s.newMealPlan(date, mealplan.SlotDinner, "김치찌개")
	s.Require().NoError(s.mealPlans.Upsert(s.ctx, original))

	replacement := s.newMealPlan(date, mealplan.SlotDinner, "된장찌개")
	s.Require().NoError(s.mealPlans.Upsert(s.ctx, replacement))

	plans, err := s.mealPlans.FindByDateRange(s.ctx, s.userID, date, date.AddDate(0, 0, 1))
	s.Require().NoError(err)
	s.Require().Len(plans, 1, "same slot holds at most one meal")
	s.Equal("된장찌개", plans[0].Title())
	s.Equal(original.ID(), plans[0].ID(), "the existing row is updated in place")
}

func (s *RepositoryTestSuite) TestMealPlanDateRange() {
	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	s.Require().NoError(s.mealPlans.Upsert(s.ctx, s.newMealPlan(monday, mealplan.SlotBreakfast, "토스트")))
	s.Require().NoError(s.mealPlans.Upsert(s.ctx, s.newMealPlan(monday.AddDate(0, 0, 3), mealplan.SlotLunch, "비빔밥")))
	s.Require().NoError(s.mealPlans.Upsert(s.ctx, s.newMealPlan(monday.AddDate(0, 0, 7), mealplan.SlotDinner, "다음주 저녁")))

	week, err := s.mealPlans.FindByDateRange(s.ctx, s.userID, monday, monday.AddDate(0, 0, 7))
	s.Require().NoError(err)
	s.Require().Len(week, 2, "the range end is exclusive")
	s.Equal("토스트", week[0].Title())
	s.Equal("비빔밥", week[1].Title())
	s.Require().Len(week[0].Ingredients(), 1)
	s.Equal("계란", week[0].Ingredients()[0].Name)
}

func (s *RepositoryTestSuite) TestMealPlanDelete() {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	plan := s.newMealPlan(date, mealplan.SlotLunch, "볶음밥")
	s.Require().NoError(s.mealPlans.Upsert(s.ctx, plan))

	s.ErrorIs(s.mealPlans.Delete(s.ctx, s.otherUserID, plan.ID()), mealplan.ErrMealPlanNotFound)
	s.Require().NoError(s.mealPlans.Delete(s.ctx, s.userID, plan.ID()))
	s.ErrorIs(s.mealPlans.Delete(s.ctx, s.userID, plan.ID()), mealplan.ErrMealPlanNotFound)
}

// Saved recipe repository

func (s *RepositoryTestSuite) TestSavedRecipeRoundTrip() {
	content := recipe.SavedContent{
		Ingredients: []recipe.SavedIngredient{{Name: "두부", Quantity: "1모"}},
		Steps:       []string{"두부를 썬다", "조린다"},
		Time:        "15분",
		Difficulty:  "쉬움",
	}
	saved, err := recipe.NewSavedRecipe(s.userID, "두부조림", recipe.SavedSourceAI, "", content)
	s.Require().NoError(err)
	s.Require().NoError(s.saved.Create(s.ctx, saved))

	list, err := s.saved.FindByUserID(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal("두부조림", list[0].Title())
	s.Equal(recipe.SavedSourceAI, list[0].Source())
	s.Require().Len(list[0].Content().Ingredients, 1)
	s.Equal("두부", list[0].Content().Ingredients[0].Name)
	s.Equal([]string{"두부를 썬다", "조린다"}, list[0].Content().Steps)
}

func (s *RepositoryTestSuite) TestSavedRecipeDeleteScopedToOwner() {
	saved, err := recipe.NewSavedRecipe(s.userID, gofakeit.Dinner(), recipe.SavedSourceManual, "", recipe.SavedContent{})
	s.Require().NoError(err)
	s.Require().NoError(s.saved.Create(s.ctx, saved))

	s.ErrorIs(s.saved.Delete(s.ctx, s.otherUserID, saved.ID()), recipe.ErrRecipeNotFound)
	s.Require().NoError(s.saved.Delete(s.ctx, s.userID, saved.ID()))

	list, err := s.saved.FindByUserID(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Empty(list)
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}
