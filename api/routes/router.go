package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bloomstitch/storefront-backend/api/controllers"
	"github.com/bloomstitch/storefront-backend/api/middleware"
	checkoutsvc "github.com/bloomstitch/storefront-backend/internal/checkout"
	"github.com/bloomstitch/storefront-backend/internal/orders"
	"github.com/bloomstitch/storefront-backend/internal/session"
	"github.com/bloomstitch/storefront-backend/pkg/config"
	"github.com/bloomstitch/storefront-backend/pkg/db"
	"github.com/bloomstitch/storefront-backend/pkg/logger"
	"github.com/bloomstitch/storefront-backend/pkg/metrics"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Config   *config.Config
	Logger   *logger.Logger
	DB       db.Pinger
	Sessions session.Store
	Checkout *checkoutsvc.Service
	Orders   orders.Service
	Metrics  *metrics.HTTPMetrics
	Registry *prometheus.Registry
}

func NewRouter(d Deps) http.Handler {
	cfg := d.Config
	logg := d.Logger
	shipping := cfg.Shipping

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(d.Metrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, d.DB, logg))
	})

	if d.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/", controllers.ListCatalog(logg))
			r.Get("/categories", controllers.ListCategories())
			r.Get("/{itemID}", controllers.GetCatalogItem(logg))
		})

		r.Get("/track", controllers.TrackOrders(d.Orders, logg))

		// Everything below is session-scoped.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Session(logg, cfg.Cart.SessionTTL))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.GetCart(d.Sessions, shipping, logg))
				r.Delete("/", controllers.ClearCart(d.Sessions, shipping, logg))
				r.Post("/items", controllers.AddCartItem(d.Sessions, shipping, logg))
				r.Patch("/items", controllers.UpdateCartItem(d.Sessions, shipping, logg))
				r.Delete("/items/{itemID}", controllers.RemoveCartItem(d.Sessions, shipping, logg))
			})

			r.Route("/bouquet", func(r chi.Router) {
				r.Get("/", controllers.GetBouquet(d.Sessions, logg))
				r.Post("/flowers", controllers.AdjustBouquetFlower(d.Sessions, logg))
				r.Put("/flowers/color", controllers.SetBouquetFlowerColor(d.Sessions, logg))
				r.Post("/leaves", controllers.AdjustBouquetLeaf(d.Sessions, logg))
				r.Post("/commit", controllers.CommitBouquet(d.Sessions, shipping, logg))
			})

			r.Route("/checkout", func(r chi.Router) {
				r.Get("/", controllers.GetCheckoutSummary(d.Checkout, logg))
				r.Post("/", controllers.SubmitCheckout(d.Checkout, d.Metrics, logg))
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.AdminAuth(cfg.Admin.Key, logg))

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", controllers.AdminListOrders(d.Orders, logg))
				r.Get("/{orderID}", controllers.AdminGetOrder(d.Orders, logg))
				r.Put("/{orderID}/status", controllers.AdminUpdateOrderStatus(d.Orders, logg))
				r.Patch("/{orderID}", controllers.AdminUpdateOrder(d.Orders, logg))
				r.Delete("/{orderID}", controllers.AdminDeleteOrder(d.Orders, logg))
			})
		})
	})

	return r
}
