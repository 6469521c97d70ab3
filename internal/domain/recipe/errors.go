package recipe

import "errors"

// Domain errors for recipe operations

var (
	ErrTitleRequired  = errors.New("recipe title is required")
	ErrInvalidSource  = errors.New("recipe source must be api, ai, or manual")
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrNotRecipeOwner = errors.New("only the recipe owner can perform this action")
)
