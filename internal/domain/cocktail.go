package domain

import "time"

type Ingredient struct {
	Name    string `json:"name"`
	Measure string `json:"measure,omitempty"`
}

// Cocktail is an immutable catalog record. Optional attributes are empty
// strings when the upstream API does not provide them.
type Cocktail struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Category     string       `json:"category,omitempty"`
	Glass        string       `json:"glass,omitempty"`
	Alcoholic    string       `json:"alcoholic,omitempty"`
	Instructions string       `json:"instructions,omitempty"`
	ImageURL     string       `json:"image_url,omitempty"`
	Ingredients  []Ingredient `json:"ingredients,omitempty"`
	Price        float64      `json:"price"`
	Stock        int          `json:"stock"`
	Rating       float64      `json:"rating"`
	Popularity   int          `json:"popularity"`
	CreatedAt    time.Time    `json:"created_at"`
}

// PrimaryIngredient returns the first listed ingredient name or "".
func (c Cocktail) PrimaryIngredient() string {
	if len(c.Ingredients) == 0 {
		return ""
	}
	return c.Ingredients[0].Name
}

const (
	Alcoholic         = "Alcoholic"
	NonAlcoholic      = "Non alcoholic"
	OptionalAlcoholic = "Optional alcohol"
)
