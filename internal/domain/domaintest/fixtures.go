// Package domaintest builds randomized domain fixtures for tests.
package domaintest

import (
	"strconv"
	"time"

	"github.com/jaswdr/faker"

	"github.com/TemirB/cocktail-shop/internal/domain"
)

var categories = []string{"Cocktail", "Ordinary Drink", "Shot", "Punch / Party Drink", "Coffee / Tea"}

// Cocktail returns a cocktail with the given id and random attributes.
func Cocktail(fake faker.Faker, id string) domain.Cocktail {
	ingredients := make([]domain.Ingredient, fake.IntBetween(1, 4))
	for i := range ingredients {
		ingredients[i] = domain.Ingredient{
			Name:    fake.Lorem().Word(),
			Measure: strconv.Itoa(fake.IntBetween(1, 6)) + " oz",
		}
	}
	alcoholic := domain.Alcoholic
	if fake.Bool() {
		alcoholic = domain.NonAlcoholic
	}
	return domain.Cocktail{
		ID:           id,
		Name:         fake.Lorem().Word(),
		Category:     categories[fake.IntBetween(0, len(categories)-1)],
		Glass:        fake.Lorem().Word(),
		Alcoholic:    alcoholic,
		Instructions: fake.Lorem().Sentence(6),
		Ingredients:  ingredients,
		Price:        fake.Float64(2, 5, 50),
		Stock:        fake.IntBetween(0, 100),
		Rating:       fake.Float64(1, 1, 5),
		Popularity:   fake.IntBetween(0, 1000),
		CreatedAt:    time.Date(2024, 3, fake.IntBetween(1, 28), 12, 0, 0, 0, time.UTC),
	}
}

// Cocktails returns n cocktails with ids "1".."n".
func Cocktails(fake faker.Faker, n int) []domain.Cocktail {
	out := make([]domain.Cocktail, n)
	for i := range out {
		out[i] = Cocktail(fake, strconv.Itoa(i+1))
	}
	return out
}
