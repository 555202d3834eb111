package router

import (
	"github.com/denmor86/ya-stitchmate/internal/config"
	"github.com/denmor86/ya-stitchmate/internal/export"
	"github.com/denmor86/ya-stitchmate/internal/network/handlers"
	"github.com/denmor86/ya-stitchmate/internal/network/middleware"
	"github.com/denmor86/ya-stitchmate/internal/services"
	"github.com/denmor86/ya-stitchmate/internal/storage"
	"github.com/go-chi/chi/v5"
)

type Router struct {
	Config   config.Config
	Orders   services.OrdersService
	Profiles services.ProfilesService
	Renderer export.DocumentRenderer
}

func NewRouter(config config.Config, storage storage.IStorage) *Router {
	return &Router{
		Config:   config,
		Orders:   services.NewOrders(storage),
		Profiles: services.NewProfiles(storage),
		Renderer: export.NewGuardedRenderer(export.NewPDFRenderer(config.ShopName)),
	}
}

func (router *Router) HandleRouter() chi.Router {
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.LogHandle)
		r.Route("/orders", func(r chi.Router) {
			r.Get("/", handlers.GetOrdersHandler(router.Orders))
			r.Post("/", handlers.CreateOrderHandler(router.Orders, router.Profiles))
			r.Post("/prefill", handlers.PrefillOrderHandler(router.Profiles))
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", handlers.GetOrderHandler(router.Orders))
				r.Delete("/", handlers.DeleteOrderHandler(router.Orders))
				r.Post("/paid", handlers.MarkPaidHandler(router.Orders))
				r.Get("/receipt", handlers.ReceiptHandler(router.Orders, router.Config.ShopName))
				r.Get("/receipt.pdf", handlers.ReceiptPDFHandler(router.Orders, router.Renderer))
			})
		})
		r.Get("/profiles", handlers.GetProfileHandler(router.Profiles))
		r.Get("/templates", handlers.TemplatesHandler())
		r.Get("/templates/{type}", handlers.TemplateHandler())
		r.Get("/remaining", handlers.RemainingHandler())
		r.Route("/export", func(r chi.Router) {
			r.Get("/csv", handlers.ExportCSVHandler(router.Orders))
			r.Get("/backup", handlers.BackupHandler(router.Orders, router.Profiles))
		})
	})
	return r
}
