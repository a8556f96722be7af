// Package cocktailapi is a client for the public TheCocktailDB v1 JSON API.
package cocktailapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	json "github.com/goccy/go-json"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/TemirB/cocktail-shop/internal/config"
	"github.com/TemirB/cocktail-shop/internal/domain"
	"github.com/TemirB/cocktail-shop/internal/pkg/circuit"
	"github.com/TemirB/cocktail-shop/internal/pkg/retry"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *circuit.Breaker
	retry      config.Retry
	logger     *zap.Logger
}

func New(cfg config.API, breaker *circuit.Breaker, retryPolicy config.Retry, logger *zap.Logger) *Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = 4

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(transport),
			Timeout:   cfg.Timeout,
		},
		breaker: breaker,
		retry:   retryPolicy,
		logger:  logger,
	}
}

type drinksResponse struct {
	Drinks json.RawMessage `json:"drinks"`
}

// drinks decodes the "drinks" field. The API answers with null or a string
// such as "no data found" instead of an empty array.
func (r drinksResponse) drinks() ([]drink, error) {
	raw := strings.TrimSpace(string(r.Drinks))
	if raw == "" || raw[0] != '[' {
		return nil, nil
	}
	var out []drink
	if err := json.Unmarshal(r.Drinks, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Search(ctx context.Context, name string) ([]domain.Cocktail, error) {
	return c.list(ctx, "search", "search.php", url.Values{"s": {name}}, nil)
}

// Lookup fetches the full record of one cocktail.
// An unknown id yields an *Error wrapping domain.ErrNotFound.
func (c *Client) Lookup(ctx context.Context, id string) (*domain.Cocktail, error) {
	return c.one(ctx, "lookup", "lookup.php", url.Values{"i": {id}})
}

func (c *Client) Random(ctx context.Context) (*domain.Cocktail, error) {
	return c.one(ctx, "random", "random.php", nil)
}

// ByCategory and the other filters return partial records: id, name and
// image only, plus the attribute that was filtered on.
func (c *Client) ByCategory(ctx context.Context, category string) ([]domain.Cocktail, error) {
	return c.list(ctx, "filter category", "filter.php", url.Values{"c": {category}},
		func(cocktail *domain.Cocktail) { cocktail.Category = category })
}

func (c *Client) ByIngredient(ctx context.Context, ingredient string) ([]domain.Cocktail, error) {
	return c.list(ctx, "filter ingredient", "filter.php", url.Values{"i": {ingredient}},
		func(cocktail *domain.Cocktail) {
			cocktail.Ingredients = []domain.Ingredient{{Name: ingredient}}
		})
}

func (c *Client) ByAlcoholic(ctx context.Context, alcoholic string) ([]domain.Cocktail, error) {
	return c.list(ctx, "filter alcoholic", "filter.php", url.Values{"a": {alcoholic}},
		func(cocktail *domain.Cocktail) { cocktail.Alcoholic = alcoholic })
}

func (c *Client) Categories(ctx context.Context) ([]string, error) {
	return c.names(ctx, "list categories", "c", "strCategory")
}

func (c *Client) Ingredients(ctx context.Context) ([]string, error) {
	return c.names(ctx, "list ingredients", "i", "strIngredient1")
}

func (c *Client) Glasses(ctx context.Context) ([]string, error) {
	return c.names(ctx, "list glasses", "g", "strGlass")
}

func (c *Client) AlcoholicFilters(ctx context.Context) ([]string, error) {
	return c.names(ctx, "list alcoholic", "a", "strAlcoholic")
}

func (c *Client) one(ctx context.Context, op, path string, q url.Values) (*domain.Cocktail, error) {
	drinks, err := c.fetchDrinks(ctx, op, path, q)
	if err != nil {
		return nil, err
	}
	if len(drinks) == 0 {
		return nil, &Error{Op: op, Message: "cocktail not found", Err: domain.ErrNotFound}
	}
	cocktail := drinks[0].cocktail()
	return &cocktail, nil
}

func (c *Client) list(ctx context.Context, op, path string, q url.Values, fill func(*domain.Cocktail)) ([]domain.Cocktail, error) {
	drinks, err := c.fetchDrinks(ctx, op, path, q)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Cocktail, 0, len(drinks))
	for _, d := range drinks {
		cocktail := d.cocktail()
		if cocktail.ID == "" {
			continue
		}
		if fill != nil {
			fill(&cocktail)
		}
		out = append(out, cocktail)
	}
	return out, nil
}

func (c *Client) names(ctx context.Context, op, param, field string) ([]string, error) {
	drinks, err := c.fetchDrinks(ctx, op, "list.php", url.Values{param: {"list"}})
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(drinks))
	for _, d := range drinks {
		if v := d.str(field); v != "" {
			out = append(out, v)
		}
	}
	return out, nil
}

func (c *Client) fetchDrinks(ctx context.Context, op, path string, q url.Values) ([]drink, error) {
	var resp drinksResponse
	err := retry.Do(ctx, c.retry, func() error {
		err := c.breaker.Do(func() error { return c.get(ctx, op, path, q, &resp) }, clientSide)
		if errors.Is(err, circuit.ErrOpen) || clientSide(err) {
			return retry.Permanent(err)
		}
		return err
	})
	if err != nil {
		return nil, c.fail(op, err)
	}

	drinks, err := resp.drinks()
	if err != nil {
		return nil, c.fail(op, fmt.Errorf("decode drinks: %w", err))
	}
	return drinks, nil
}

func (c *Client) fail(op string, err error) error {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		msg := "cocktail service is unavailable"
		if errors.Is(err, circuit.ErrOpen) {
			msg = "cocktail service is temporarily disabled after repeated failures"
		}
		apiErr = &Error{Op: op, Message: msg, Err: err}
	}
	c.logger.Warn("Cocktail API call failed", zap.String("op", op), zap.Error(err))
	return apiErr
}

func (c *Client) get(ctx context.Context, op, path string, q url.Values, out any) error {
	u := c.baseURL + "/" + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &Error{Op: op, Message: "bad request", Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &Error{Op: op, Status: resp.StatusCode, Message: "unexpected response from cocktail service"}
	}
	// an empty body is how the API answers some unknown lookups
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return &Error{Op: op, Message: "malformed response from cocktail service", Err: err}
	}
	return nil
}
