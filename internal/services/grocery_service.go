package services

import (
	"errors"
	"fmt"
	"math"

	"ricettario/internal/models"
	"ricettario/internal/repository"
)

// DefaultUnit is used for ingredient lines and manual items that carry no
// explicit unit.
const DefaultUnit = "g"

var (
	ErrNoIngredients    = errors.New("recipe has no ingredient lines")
	ErrQuantityTooSmall = errors.New("quantity must be at least 1")
	ErrEmptyGroup       = errors.New("no grocery items for this recipe")
)

// GroceryService owns the quantity-aggregation and portion-scaling logic of
// the grocery list. Quantities stored on the list are accumulators: adding
// the same recipe twice doubles its contribution.
type GroceryService struct {
	groceryRepo repository.GroceryRepository
	recipeRepo  repository.RecipeRepository
}

func NewGroceryService(groceryRepo repository.GroceryRepository, recipeRepo repository.RecipeRepository) *GroceryService {
	return &GroceryService{
		groceryRepo: groceryRepo,
		recipeRepo:  recipeRepo,
	}
}

// baseServings normalizes a recipe's stored serving count, defaulting to 1
// when the stored value is zero or negative.
func baseServings(recipe *models.Recipe) int {
	if recipe.Servings > 0 {
		return recipe.Servings
	}
	return 1
}

// AddRecipeToList scales every ingredient line of the recipe to the requested
// portion count and accumulates the results into the caller's list, keyed on
// (user, ingredient, recipe).
//
// requestedPortions <= 0 means "as stated", i.e. multiplier 1. Each line
// contributes round(quantity × requestedPortions / baseServings). Calling
// this twice with the same arguments doubles the stored quantities; that
// accumulation is the contract, not an accident.
//
// The per-line upserts are sequential and individually atomic: if one fails,
// lines already upserted in the same call stay committed.
func (gs *GroceryService) AddRecipeToList(userID, recipeID uint, requestedPortions float64) error {
	recipe, err := gs.recipeRepo.FindByID(recipeID)
	if err != nil {
		return err
	}

	lines, err := gs.recipeRepo.IngredientLines(recipeID)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return ErrNoIngredients
	}

	multiplier := 1.0
	if requestedPortions > 0 {
		multiplier = requestedPortions / float64(baseServings(recipe))
	}

	for _, line := range lines {
		delta := int(math.Round(line.Quantity * multiplier))
		unit := line.Unit
		if unit == "" {
			unit = DefaultUnit
		}

		item := models.GroceryItem{
			UserID:     userID,
			Ingredient: line.Name,
			RecipeID:   recipeID,
			Quantity:   delta,
			Unit:       unit,
		}
		if err := gs.groceryRepo.Accumulate(&item); err != nil {
			return fmt.Errorf("failed to accumulate %q: %w", line.Name, err)
		}
	}
	return nil
}

// AddManualItem puts a hand-typed ingredient on the list under the manual
// sentinel recipe reference. Re-adding the same ingredient accumulates.
func (gs *GroceryService) AddManualItem(userID uint, ingredient string, quantity int, unit string) error {
	if quantity < 1 {
		return ErrQuantityTooSmall
	}
	if unit == "" {
		unit = DefaultUnit
	}
	item := models.GroceryItem{
		UserID:     userID,
		Ingredient: ingredient,
		RecipeID:   models.ManualGroceryRecipeID,
		Quantity:   quantity,
		Unit:       unit,
	}
	return gs.groceryRepo.Accumulate(&item)
}

// RescalePortions shifts the list's contribution for one recipe by delta
// portions. There is no stored portion count: the current effective count is
// reconstructed from the stored quantities, per item, as
// stored / (originalQuantity / baseServings), then averaged and rounded
// across items. Every row is then rewritten to
// max(1, round(stored × newPortions / impliedPortions)).
//
// Both the reconstruction and the rewrite round, so the operation is lossy:
// a +1 followed by a -1 does not necessarily restore the original
// quantities.
func (gs *GroceryService) RescalePortions(userID, recipeID uint, delta int) (int, error) {
	recipe, err := gs.recipeRepo.FindByID(recipeID)
	if err != nil {
		return 0, err
	}

	items, err := gs.groceryRepo.ListForUserAndRecipe(userID, recipeID)
	if err != nil {
		return 0, err
	}
	if len(items) == 0 {
		return 0, ErrEmptyGroup
	}

	lines, err := gs.recipeRepo.IngredientLines(recipeID)
	if err != nil {
		return 0, err
	}
	perServing := make(map[string]float64, len(lines))
	base := float64(baseServings(recipe))
	for _, line := range lines {
		if line.Quantity > 0 {
			perServing[line.Name] = line.Quantity / base
		}
	}

	var sum float64
	var counted int
	for _, item := range items {
		per, ok := perServing[item.Ingredient]
		if !ok || per <= 0 {
			continue
		}
		sum += float64(item.Quantity) / per
		counted++
	}
	if counted == 0 {
		return 0, ErrEmptyGroup
	}

	implied := int(math.Round(sum / float64(counted)))
	if implied < 1 {
		implied = 1
	}

	newPortions := implied + delta
	if newPortions < 1 {
		newPortions = 1
	}

	ratio := float64(newPortions) / float64(implied)
	for _, item := range items {
		quantity := int(math.Round(float64(item.Quantity) * ratio))
		if quantity < 1 {
			quantity = 1
		}
		if err := gs.groceryRepo.SetQuantity(userID, item.Ingredient, item.RecipeID, quantity); err != nil {
			return 0, fmt.Errorf("failed to rescale %q: %w", item.Ingredient, err)
		}
	}
	return newPortions, nil
}

// EditQuantity overwrites a single item's quantity. Values below 1 are
// rejected; removal goes through RemoveIngredient instead.
func (gs *GroceryService) EditQuantity(userID uint, ingredient string, recipeID uint, quantity int) error {
	if quantity < 1 {
		return ErrQuantityTooSmall
	}
	return gs.groceryRepo.SetQuantity(userID, ingredient, recipeID, quantity)
}

func (gs *GroceryService) RemoveIngredient(userID uint, ingredient string, recipeID uint) (bool, error) {
	return gs.groceryRepo.DeleteItem(userID, ingredient, recipeID)
}

func (gs *GroceryService) RemoveRecipeGroup(userID, recipeID uint) (bool, error) {
	return gs.groceryRepo.DeleteRecipeGroup(userID, recipeID)
}

func (gs *GroceryService) ClearList(userID uint) error {
	return gs.groceryRepo.Clear(userID)
}

func (gs *GroceryService) List(userID uint) ([]models.GroceryItem, error) {
	return gs.groceryRepo.ListForUser(userID)
}
