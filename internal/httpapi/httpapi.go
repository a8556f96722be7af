// Package httpapi serves the shop on localhost as a small JSON API.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	json "github.com/goccy/go-json"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/TemirB/cocktail-shop/internal/application/service"
	"github.com/TemirB/cocktail-shop/internal/catalog"
	"github.com/TemirB/cocktail-shop/internal/cocktailapi"
	"github.com/TemirB/cocktail-shop/internal/domain"
	"github.com/TemirB/cocktail-shop/internal/observability"
	"github.com/TemirB/cocktail-shop/internal/pkg/circuit"
)

//go:generate mockgen -source internal/httpapi/httpapi.go -destination=internal/httpapi/httpapi_mock_test.go -package=httpapi

type Shop interface {
	CocktailWithStats(ctx context.Context, id string) (*domain.Cocktail, catalog.LookupStats, error)
	Search(ctx context.Context, name string) ([]domain.Cocktail, error)
	RecentlyViewed(ctx context.Context) []domain.Cocktail
	Recommendations(ctx context.Context, id string, limit int) ([]domain.Cocktail, error)
	Favorites(ctx context.Context) []domain.Cocktail
	ToggleFavorite(ctx context.Context, id string) (bool, error)
	Cart(ctx context.Context) service.CartView
	AddToCart(ctx context.Context, id string, quantity int) (service.CartView, error)
	SetCartQuantity(ctx context.Context, id string, quantity int) service.CartView
	RemoveFromCart(ctx context.Context, id string) service.CartView
	ClearCart(ctx context.Context)
	CartUpdates(ctx context.Context) <-chan []domain.CartItem
	Checkout(ctx context.Context) (domain.Order, error)
	Orders() []domain.Order
	Order(id string) (domain.Order, error)
	CancelOrder(ctx context.Context, id string) (domain.Order, error)
	CacheStats(ctx context.Context) service.CacheStats
	ClearCache(ctx context.Context)
}

type Server struct {
	shop    Shop
	router  chi.Router
	breaker *circuit.Breaker
	logger  *zap.Logger
	metrics observability.Metrics
}

// New builds the router. breaker may be nil; it only feeds /debug/breaker.
func New(shop Shop, breaker *circuit.Breaker, logger *zap.Logger, metrics observability.Metrics) *Server {
	s := &Server{
		shop:    shop,
		router:  chi.NewRouter(),
		breaker: breaker,
		logger:  logger,
		metrics: metrics,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.router
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(ServerTimingApp(s.metrics))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/cocktails", func(r chi.Router) {
		r.Get("/", s.searchCocktails)
		r.Get("/recent", s.recentCocktails)
		r.Get("/{id}", s.getCocktail)
		r.Get("/{id}/recommendations", s.recommendations)
	})

	r.Get("/favorites", s.listFavorites)
	r.Post("/favorites/{id}", s.toggleFavorite)

	r.Route("/cart", func(r chi.Router) {
		r.Get("/", s.getCart)
		r.Post("/", s.addToCart)
		r.Delete("/", s.clearCart)
		r.Get("/stream", s.streamCart)
		r.Patch("/{id}", s.setQuantity)
		r.Delete("/{id}", s.removeFromCart)
	})

	r.Post("/checkout", s.checkout)

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", s.listOrders)
		r.Get("/{id}", s.getOrder)
		r.Post("/{id}/cancel", s.cancelOrder)
	})

	r.Get("/cache", s.cacheStats)
	r.Delete("/cache", s.clearCache)
	r.Get("/debug/breaker", s.breakerStats)
	r.Get("/debug/metrics", s.metricsStats)
}

func (s *Server) getCocktail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	cocktail, st, err := s.shop.CocktailWithStats(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}

	observability.AppendServerTiming(w, "cache", st.CacheMs, "")
	observability.AppendServerTiming(w, "api", st.APIMs, "")
	observability.AppendServerTiming(w, "source", 0, string(st.Source))
	w.Header().Set("X-Source", string(st.Source))
	observability.SetIfPos(w, "X-Cache-Time", st.CacheMs)
	observability.SetIfPos(w, "X-API-Time", st.APIMs)

	writeJSON(w, http.StatusOK, cocktail)
}

func (s *Server) searchCocktails(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("search"))
	if q == "" {
		http.Error(w, "search query required", http.StatusBadRequest)
		return
	}
	found, err := s.shop.Search(r.Context(), q)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, found)
}

func (s *Server) recentCocktails(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.shop.RecentlyViewed(r.Context()))
}

func (s *Server) recommendations(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "limit must be a number", http.StatusBadRequest)
			return
		}
		limit = n
	}
	found, err := s.shop.Recommendations(r.Context(), chi.URLParam(r, "id"), limit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, found)
}

func (s *Server) listFavorites(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.shop.Favorites(r.Context()))
}

func (s *Server) toggleFavorite(w http.ResponseWriter, r *http.Request) {
	on, err := s.shop.ToggleFavorite(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"favorite": on})
}

type cartRequest struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

func (s *Server) getCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.shop.Cart(r.Context()))
}

func (s *Server) addToCart(w http.ResponseWriter, r *http.Request) {
	var req cartRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.ID == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	view, err := s.shop.AddToCart(r.Context(), req.ID, req.Quantity)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) setQuantity(w http.ResponseWriter, r *http.Request) {
	var req cartRequest
	if !s.decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, s.shop.SetCartQuantity(r.Context(), chi.URLParam(r, "id"), req.Quantity))
}

func (s *Server) removeFromCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.shop.RemoveFromCart(r.Context(), chi.URLParam(r, "id")))
}

func (s *Server) clearCart(w http.ResponseWriter, r *http.Request) {
	s.shop.ClearCart(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// streamCart sends the cart as server-sent events: the current contents
// first, then every change until the client goes away.
func (s *Server) streamCart(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	for items := range s.shop.CartUpdates(r.Context()) {
		data, err := json.Marshal(service.NewCartView(items))
		if err != nil {
			s.logger.Error("Can't encode cart event", zap.Error(err))
			return
		}
		if _, err := w.Write([]byte("event: cart\ndata: " + string(data) + "\n\n")); err != nil {
			return
		}
		flusher.Flush()
	}
}

func (s *Server) checkout(w http.ResponseWriter, r *http.Request) {
	order, err := s.shop.Checkout(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (s *Server) listOrders(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.shop.Orders())
}

func (s *Server) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := s.shop.Order(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (s *Server) cancelOrder(w http.ResponseWriter, r *http.Request) {
	order, err := s.shop.CancelOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (s *Server) cacheStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.shop.CacheStats(r.Context()))
}

func (s *Server) clearCache(w http.ResponseWriter, r *http.Request) {
	s.shop.ClearCache(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) breakerStats(w http.ResponseWriter, r *http.Request) {
	if s.breaker == nil {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, s.breaker.Stats())
}

type metricsSnapshot interface {
	Totals() observability.Totals
	Last() []observability.Observation
}

// metricsStats is served only when the configured Metrics keep observations.
func (s *Server) metricsStats(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.metrics.(metricsSnapshot)
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Totals observability.Totals        `json:"totals"`
		Last   []observability.Observation `json:"last"`
	}{snap.Totals(), snap.Last()})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	ct := r.Header.Get("Content-Type")
	if !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return false
	}
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		s.logger.Debug("Error while decoding JSON", zap.Error(err))
		http.Error(w, "bad json", http.StatusBadRequest)
		return false
	}
	return true
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	var apiErr *cocktailapi.Error
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrOrderNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrCancelNotAllowed), errors.Is(err, domain.ErrEmptyCart),
		errors.Is(err, domain.ErrDuplicateOrder):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, domain.ErrInvalidStatus):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &apiErr):
		http.Error(w, apiErr.Message, http.StatusBadGateway)
	default:
		s.logger.Error("Request failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

// Handler is the router with tracing around it.
func (s *Server) Handler() http.Handler {
	return otelhttp.NewHandler(s.router, "cocktail-shop")
}

func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info("Listening", zap.String("addr", "http://"+addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
