package main

import (
	"html/template"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"zakat_app_echo/internal/handlers"
	sessionMiddleware "zakat_app_echo/internal/middleware"
	"zakat_app_echo/internal/services"
)

// TemplateRenderer is a custom html/template renderer for Echo
// Uses per-page template cloning to allow each page to define its own blocks
type TemplateRenderer struct {
	templates map[string]*template.Template
}

// NewTemplateRenderer creates a template renderer with per-page cloning
func NewTemplateRenderer() *TemplateRenderer {
	templates := make(map[string]*template.Template)

	// Parse base layout as the foundation
	baseTemplate := template.Must(template.ParseGlob("web/templates/layouts/*.html"))

	// Find all page templates and clone base for each
	pages, err := filepath.Glob("web/templates/pages/*.html")
	if err != nil {
		log.Fatal(err)
	}

	for _, page := range pages {
		pageName := filepath.Base(page)
		// Clone the base template for this page
		pageTemplate := template.Must(baseTemplate.Clone())
		// Parse the page-specific template
		template.Must(pageTemplate.ParseFiles(page))
		templates[pageName] = pageTemplate
	}

	return &TemplateRenderer{templates: templates}
}

// Render renders a template document
func (t *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	tmpl, ok := t.templates[name]
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "Template not found: "+name)
	}
	return tmpl.ExecuteTemplate(w, "base", data)
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	// Session registry; every browser session gets its own in-memory store
	sessionTTL := 24 * time.Hour
	if raw := os.Getenv("SESSION_TTL_HOURS"); raw != "" {
		if hours, err := strconv.Atoi(raw); err == nil && hours > 0 {
			sessionTTL = time.Duration(hours) * time.Hour
		}
	}
	sessions := services.NewSessionManager(sessionTTL)

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(sessionMiddleware.WithSession(sessions))

	// Template renderer with per-page cloning
	e.Renderer = NewTemplateRenderer()

	// Error pages
	e.HTTPErrorHandler = sessionMiddleware.CustomErrorHandler

	// Static file serving
	e.Static("/static", "web/static")

	// Initialize handlers
	dashboardHandler := handlers.NewDashboardHandler()
	paymentHandler := handlers.NewPaymentHandler()
	ricePriceHandler := handlers.NewRicePriceHandler()

	// Dashboard
	e.GET("/dashboard", dashboardHandler.Dashboard)

	// Payment routes
	e.GET("/payments/new", paymentHandler.NewPaymentPage)
	e.POST("/payments", paymentHandler.StorePayment)
	e.GET("/payments", paymentHandler.ListPayments)
	e.GET("/payments/export", paymentHandler.ExportPayments)
	e.GET("/payments/delete-all", paymentHandler.DeleteAllPaymentsPage)
	e.POST("/payments/delete-all", paymentHandler.DeleteAllPayments)
	e.GET("/payments/:id/edit", paymentHandler.EditPaymentPage)
	e.POST("/payments/:id/update", paymentHandler.UpdatePayment)
	e.POST("/payments/:id/delete", paymentHandler.DeletePayment)

	// Rice price routes
	e.GET("/rice-prices", ricePriceHandler.ListRicePrices)
	e.POST("/rice-prices", ricePriceHandler.StoreRicePrice)
	e.POST("/rice-prices/standard", ricePriceHandler.AddStandardPrices)
	e.GET("/rice-prices/delete-all", ricePriceHandler.DeleteAllRicePricesPage)
	e.POST("/rice-prices/delete-all", ricePriceHandler.DeleteAllRicePrices)
	e.POST("/rice-prices/:id/delete", ricePriceHandler.DeleteRicePrice)

	// Redirect root to dashboard
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusTemporaryRedirect, "/dashboard")
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
