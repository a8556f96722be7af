package cocktailapi

import (
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/shopspring/decimal"

	"github.com/TemirB/cocktail-shop/internal/domain"
)

const maxIngredients = 15

// drink is one element of the "drinks" array. Every field is a nullable string.
type drink map[string]*string

func (d drink) str(key string) string {
	if v := d[key]; v != nil {
		return strings.TrimSpace(*v)
	}
	return ""
}

func (d drink) cocktail() domain.Cocktail {
	id := d.str("idDrink")
	c := domain.Cocktail{
		ID:           id,
		Name:         d.str("strDrink"),
		Category:     d.str("strCategory"),
		Glass:        d.str("strGlass"),
		Alcoholic:    d.str("strAlcoholic"),
		Instructions: d.str("strInstructions"),
		ImageURL:     d.str("strDrinkThumb"),
	}
	for i := 1; i <= maxIngredients; i++ {
		name := d.str("strIngredient" + strconv.Itoa(i))
		if name == "" {
			continue
		}
		c.Ingredients = append(c.Ingredients, domain.Ingredient{
			Name:    name,
			Measure: d.str("strMeasure" + strconv.Itoa(i)),
		})
	}
	if t, err := time.Parse(time.DateTime, d.str("strDateModified")); err == nil {
		c.CreatedAt = t.UTC()
	}
	withShopFields(&c)
	return c
}

// withShopFields fills in the attributes the public API has no notion of.
// They are derived from the id so the same drink always gets the same values.
func withShopFields(c *domain.Cocktail) {
	h := xxhash.Sum64String(c.ID)
	c.Price = decimal.New(int64(500+h%2000), -2).InexactFloat64()
	c.Stock = int((h >> 11) % 50)
	c.Rating = decimal.New(int64(30+(h>>17)%21), -1).InexactFloat64()
	c.Popularity = int((h >> 23) % 1000)
}
