// Package recipe contains the recipe domain: the cached public recipe
// corpus, AI-generated recipe structures, and the ingredient matcher
// that ranks public recipes against a user's holdings.
package recipe

import (
	"time"

	"github.com/google/uuid"
)

// PublicRecipe is one entry of the external public recipe dataset.
// The corpus is read-only; entries are cached process-wide.
type PublicRecipe struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Method      string `json:"method"`
	Ingredients string `json:"ingredients"` // raw ingredient text blob
	Steps       []Step `json:"steps"`
	Image       string `json:"image,omitempty"`
	Tip         string `json:"tip,omitempty"`
	Calories    string `json:"calories,omitempty"`
}

// Step is one instruction step of a public recipe
type Step struct {
	Text  string `json:"text"`
	Image string `json:"image,omitempty"`
}

// Provenance marks whether an AI recipe was adapted from the public
// dataset or generated from scratch
type Provenance string

const (
	ProvenancePublicDB    Provenance = "public_db"
	ProvenanceAIGenerated Provenance = "ai_generated"
)

// AIRecipe is a generated recipe suggestion. It is transient: the
// recommendation flow returns it to the caller without persisting it.
type AIRecipe struct {
	Title       string             `json:"title"`
	Time        string             `json:"time"`
	Difficulty  string             `json:"difficulty"`
	Ingredients []RecipeIngredient `json:"ingredients"`
	Steps       []string           `json:"steps"`
	Tip         string             `json:"tip"`
	Source      Provenance         `json:"source,omitempty"`
	SourceID    string             `json:"sourceId,omitempty"`
}

// RecipeIngredient is one ingredient line of an AI recipe. Have reports
// whether the user already owns it.
type RecipeIngredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Have     bool   `json:"have"`
}

// SavedSource identifies where a saved recipe came from
type SavedSource string

const (
	SavedSourceAPI    SavedSource = "api"
	SavedSourceAI     SavedSource = "ai"
	SavedSourceManual SavedSource = "manual"
)

// SavedRecipe is a recipe a user chose to keep
type SavedRecipe struct {
	id        uuid.UUID
	userID    uuid.UUID
	title     string
	source    SavedSource
	sourceID  string
	content   SavedContent
	createdAt time.Time
}

// SavedContent is the stored body of a saved recipe
type SavedContent struct {
	Ingredients []SavedIngredient `json:"ingredients"`
	Steps       []string          `json:"steps"`
	Time        string            `json:"time,omitempty"`
	Difficulty  string            `json:"difficulty,omitempty"`
	Tip         string            `json:"tip,omitempty"`
	Image       string            `json:"image,omitempty"`
}

// SavedIngredient is one ingredient line of a saved recipe
type SavedIngredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

// NewSavedRecipe creates a saved recipe with validation
func NewSavedRecipe(userID uuid.UUID, title string, source SavedSource, sourceID string, content SavedContent) (*SavedRecipe, error) {
	if title == "" {
		return nil, ErrTitleRequired
	}
	switch source {
	case SavedSourceAPI, SavedSourceAI, SavedSourceManual:
	default:
		return nil, ErrInvalidSource
	}

	return &SavedRecipe{
		id:        uuid.New(),
		userID:    userID,
		title:     title,
		source:    source,
		sourceID:  sourceID,
		content:   content,
		createdAt: time.Now(),
	}, nil
}

// ReconstructSavedRecipe rebuilds a SavedRecipe from persisted state
func ReconstructSavedRecipe(id, userID uuid.UUID, title string, source SavedSource, sourceID string, content SavedContent, createdAt time.Time) *SavedRecipe {
	return &SavedRecipe{
		id:        id,
		userID:    userID,
		title:     title,
		source:    source,
		sourceID:  sourceID,
		content:   content,
		createdAt: createdAt,
	}
}

func (r *SavedRecipe) ID() uuid.UUID        { return r.id }
func (r *SavedRecipe) UserID() uuid.UUID    { return r.userID }
func (r *SavedRecipe) Title() string        { return r.title }
func (r *SavedRecipe) Source() SavedSource  { return r.source }
func (r *SavedRecipe) SourceID() string     { return r.sourceID }
func (r *SavedRecipe) Content() SavedContent { return r.content }
func (r *SavedRecipe) CreatedAt() time.Time { return r.createdAt }
