package transport

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"bananex-be/internal/admin"
	"bananex-be/internal/gallery"
	"bananex-be/internal/inquiry"
	"bananex-be/internal/invoice"
	"bananex-be/internal/middleware"
	"bananex-be/internal/notification"
	"bananex-be/internal/order"
	"bananex-be/internal/price"
	"bananex-be/internal/product"
	"bananex-be/internal/user"
)

// Services bundles everything the HTTP layer depends on.
type Services struct {
	Users         user.Service
	Admins        admin.Service
	Products      product.Service
	Prices        price.Service
	Orders        order.Service
	Invoices      invoice.Service
	Inquiries     inquiry.Service
	Notifications notification.Service
	Gallery       gallery.Service

	UploadDir string
}

func NewRouter(s Services) http.Handler {
	users := &userHandler{svc: s.Users}
	admins := &adminHandler{svc: s.Admins}
	products := &productHandler{svc: s.Products}
	prices := &priceHandler{svc: s.Prices}
	orders := &orderHandler{orders: s.Orders, invoices: s.Invoices}
	inquiries := &inquiryHandler{svc: s.Inquiries}
	notifications := &notificationHandler{svc: s.Notifications}
	galleryH := &galleryHandler{svc: s.Gallery}

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogger)
	r.Use(middleware.Authenticate)
	r.Use(middleware.RateLimit)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]any{"status": "ok"})
	})

	if s.UploadDir != "" {
		fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(s.UploadDir)))
		r.Get("/uploads/*", fs.ServeHTTP)
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/register", users.register)
			r.Post("/login", users.login)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Get("/profile", users.profile)
				r.Put("/profile", users.updateProfile)
				r.Post("/stock-alerts", users.addStockAlert)
			})
		})

		r.Get("/products", products.list)
		r.Get("/products/{id}", products.get)
		r.Get("/prices/products/{productID}", prices.listByProduct)
		r.Get("/gallery", galleryH.list)
		r.Post("/inquiries/public", inquiries.submitPublic)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			r.Route("/orders", func(r chi.Router) {
				r.Post("/", orders.create)
				r.Get("/", orders.listMine)
				r.Get("/{code}", orders.getByCode)
				r.Put("/{code}/cancel", orders.cancel)
			})

			r.Post("/inquiries", inquiries.submit)
			r.Get("/inquiries", inquiries.listMine)

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", notifications.listMine)
				r.Put("/{id}/read", notifications.markRead)
				r.Delete("/{id}", notifications.delete)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", admins.login)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Get("/users", users.listAll)
				r.Put("/users/{id}/status", users.updateStatus)

				r.Route("/orders", func(r chi.Router) {
					r.Get("/", orders.listAll)
					r.Get("/{id}", orders.getByID)
					r.Put("/{id}/status", orders.updateStatus)
					r.Post("/{id}/invoice", orders.createInvoice)
				})

				r.Post("/products", products.create)
				r.Put("/products/{id}", products.update)
				r.Delete("/products/{id}", products.delete)

				r.Post("/prices", prices.add)
				r.Put("/prices/{id}", prices.update)
				r.Delete("/prices/{id}", prices.delete)

				r.Get("/inquiries", inquiries.listAll)
				r.Put("/inquiries/{id}/status", inquiries.updateStatus)

				r.Post("/notifications", notifications.create)

				r.Post("/gallery", galleryH.upload)
				r.Delete("/gallery/{id}", galleryH.delete)
			})
		})
	})

	return r
}
