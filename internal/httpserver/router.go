package httpserver

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khatkhazana-hub/backend/internal/domain"
	"github.com/khatkhazana-hub/backend/internal/pricing"
	"github.com/khatkhazana-hub/backend/internal/service/category"
	"github.com/khatkhazana-hub/backend/internal/service/checkout"
	"github.com/khatkhazana-hub/backend/internal/service/contact"
	"github.com/khatkhazana-hub/backend/internal/service/product"
	"github.com/khatkhazana-hub/backend/internal/service/submission"
	"github.com/khatkhazana-hub/backend/internal/service/subscription"
)

// CheckoutService is the slice of the checkout service the handlers use.
type CheckoutService interface {
	CreateIntent(ctx context.Context, lines []pricing.CartLine, customer domain.CustomerInfo) (*checkout.CreateIntentOutput, error)
	Confirm(ctx context.Context, intentID, orderID string) (*checkout.ConfirmOutput, error)
}

type ProductService interface {
	List(ctx context.Context, in product.ListInput) ([]domain.Product, error)
	Get(ctx context.Context, key string) (*domain.Product, error)
	Create(ctx context.Context, in product.CreateInput) (*domain.Product, error)
	Update(ctx context.Context, id string, in product.UpdateInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, in category.CreateInput) (*domain.Category, error)
	Update(ctx context.Context, id string, in category.UpdateInput) (*domain.Category, error)
	Reorder(ctx context.Context, ids []string) error
	Delete(ctx context.Context, id string) error
}

type ContactService interface {
	Create(ctx context.Context, in contact.CreateInput) (*domain.Contact, error)
	List(ctx context.Context, in contact.ListInput) (*contact.ListOutput, error)
	Get(ctx context.Context, id string) (*domain.Contact, error)
	Delete(ctx context.Context, id string) error
}

type SubmissionService interface {
	Create(ctx context.Context, in submission.CreateInput) (*domain.Submission, error)
	List(ctx context.Context) ([]domain.Submission, error)
	Get(ctx context.Context, id string) (*domain.Submission, error)
	Approve(ctx context.Context, id string) (*domain.Submission, error)
	Reject(ctx context.Context, id string) (*domain.Submission, error)
	Update(ctx context.Context, id string, in submission.UpdateInput) (*domain.Submission, error)
	Delete(ctx context.Context, id string) error
}

type SubscriptionService interface {
	Create(ctx context.Context, in subscription.CreateInput) (*subscription.CreateOutput, error)
	List(ctx context.Context) ([]domain.Subscription, error)
	Delete(ctx context.Context, id string) error
}

// Deps carries the services the router exposes.
type Deps struct {
	Checkout      CheckoutService
	Products      ProductService
	Categories    CategoryService
	Contacts      ContactService
	Submissions   SubmissionService
	Subscriptions SubscriptionService
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, corsOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery(), requestID())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = corsOrigins
	corsCfg.AllowCredentials = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", "X-Request-Id")
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")

	api.POST("/checkout/create-payment-intent", createPaymentIntentHandler(deps.Checkout))
	api.POST("/checkout/confirm", confirmPaymentHandler(deps.Checkout))

	api.GET("/products", listProductsHandler(deps.Products))
	api.GET("/products/:key", getProductHandler(deps.Products))
	api.POST("/products", createProductHandler(deps.Products))
	api.PUT("/products/:key", updateProductHandler(deps.Products))
	api.DELETE("/products/:key", deleteProductHandler(deps.Products))

	api.GET("/categories", listCategoriesHandler(deps.Categories))
	api.POST("/categories", createCategoryHandler(deps.Categories))
	api.PUT("/categories/reorder", reorderCategoriesHandler(deps.Categories))
	api.PUT("/categories/:id", updateCategoryHandler(deps.Categories))
	api.DELETE("/categories/:id", deleteCategoryHandler(deps.Categories))

	api.POST("/contacts", createContactHandler(deps.Contacts))
	api.GET("/contacts", listContactsHandler(deps.Contacts))
	api.GET("/contacts/:id", getContactHandler(deps.Contacts))
	api.DELETE("/contacts/:id", deleteContactHandler(deps.Contacts))

	api.POST("/submissions", createSubmissionHandler(deps.Submissions))
	api.GET("/submissions", listSubmissionsHandler(deps.Submissions))
	api.GET("/submissions/:id", getSubmissionHandler(deps.Submissions))
	api.PATCH("/submissions/:id", updateSubmissionHandler(deps.Submissions))
	api.PATCH("/submissions/:id/approve", approveSubmissionHandler(deps.Submissions))
	api.PATCH("/submissions/:id/reject", rejectSubmissionHandler(deps.Submissions))
	api.DELETE("/submissions/:id", deleteSubmissionHandler(deps.Submissions))

	api.POST("/subscriptions", createSubscriptionHandler(deps.Subscriptions))
	api.GET("/subscriptions", listSubscriptionsHandler(deps.Subscriptions))
	api.DELETE("/subscriptions/:id", deleteSubscriptionHandler(deps.Subscriptions))

	return router
}
