package routes

import (
	_ "fulfillment_engine/docs" // swagger spec
	"fulfillment_engine/internal/adapter/http/handlers"
	"fulfillment_engine/internal/adapter/http/middleware"
	"fulfillment_engine/internal/logging"
	"fulfillment_engine/internal/usecase"
	"fulfillment_engine/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	PathWorkflows  = "/workflows"
	PathOrders     = "/orders"
	PathOrderItems = "/order-items"
	PathExtensions = "/extension-requests"
	PathInvoices   = "/invoices"
	PathUsers      = "/users"
	PathPayments   = "/payments"
)

const (
	RoleAdmin      = "admin"
	RoleManager    = "manager"
	RoleTechnician = "technician"
	RoleSales      = "sales"
)

// Options configure the HTTP surface. With an empty JWTSecret every route is
// open and no role is enforced.
type Options struct {
	JWTSecret string
	SalesRate float64
	Gateway   interfaces.IPaymentGateway
	Log       zerolog.Logger
}

type routeHandlers struct {
	orders     *handlers.OrderHandler
	items      *handlers.ItemHandler
	extensions *handlers.ExtensionHandler
	invoices   *handlers.InvoiceHandler
	workflows  *handlers.WorkflowHandler
	payments   *handlers.PaymentWebhookHandler
}

// NewRouter wires use cases on top of repos and returns the gin engine.
func NewRouter(repos Repositories, opts Options) *gin.Engine {
	router := gin.New()
	router.Use(logging.GinLogger(opts.Log), logging.GinRecovery(opts.Log))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	h := newRouteHandlers(repos, opts)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	// The provider cannot authenticate, so the webhook stays public.
	addPaymentRoutes(v1, h.payments)

	api := v1.Group("")
	if opts.JWTSecret != "" {
		api.Use(middleware.Authenticate(opts.JWTSecret))
	}
	g := roleGate(opts.JWTSecret != "")
	addWorkflowRoutes(api, h.workflows, g)
	addOrderRoutes(api, h.orders, h.extensions, g)
	addItemRoutes(api, h.items, g)
	addBillingRoutes(api, h.invoices, h.extensions, g)

	return router
}

func newRouteHandlers(repos Repositories, opts Options) routeHandlers {
	log := opts.Log

	lifecycleUC := usecase.NewLifecycleUseCase(repos.Items, repos.Routing, log)
	routingUC := usecase.NewRoutingUseCase(repos.Items, repos.Routing, repos.Workflows, log)
	extensionUC := usecase.NewExtensionUseCase(repos.Orders, repos.Extensions, log)
	commissionUC := usecase.NewCommissionUseCase(repos.Invoices, repos.Orders, repos.Items, repos.Commissions, opts.SalesRate, log)
	orderUC := usecase.NewOrderUseCase(repos.Orders, repos.Items, repos.Invoices, repos.Workflows, log)
	workflowUC := usecase.NewWorkflowUseCase(repos.Workflows)
	paymentUC := usecase.NewPaymentConfirmationUseCase(opts.Gateway, commissionUC, log)

	return routeHandlers{
		orders:     handlers.NewOrderHandler(orderUC, lifecycleUC),
		items:      handlers.NewItemHandler(lifecycleUC, routingUC),
		extensions: handlers.NewExtensionHandler(extensionUC),
		invoices:   handlers.NewInvoiceHandler(orderUC, commissionUC),
		workflows:  handlers.NewWorkflowHandler(workflowUC),
		payments:   handlers.NewPaymentWebhookHandler(paymentUC),
	}
}

// roleGate returns RequireRole when auth is on and a pass-through otherwise.
func roleGate(enabled bool) func(roles ...string) gin.HandlerFunc {
	return func(roles ...string) gin.HandlerFunc {
		if !enabled {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RequireRole(roles...)
	}
}

func addWorkflowRoutes(rg *gin.RouterGroup, h *handlers.WorkflowHandler, gate func(...string) gin.HandlerFunc) {
	workflows := rg.Group(PathWorkflows)
	{
		workflows.POST("", gate(RoleAdmin, RoleManager), h.CreateWorkflow)
		workflows.GET("", h.ListWorkflows)
		workflows.GET("/:id", h.GetWorkflow)
	}
}

func addOrderRoutes(rg *gin.RouterGroup, h *handlers.OrderHandler, ext *handlers.ExtensionHandler, gate func(...string) gin.HandlerFunc) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", gate(RoleAdmin, RoleManager, RoleSales), h.CreateOrder)
		orders.GET("/:id", h.GetOrder)
		orders.GET("/:id/progress", h.GetProgress)
		orders.GET("/:id/items", h.ListItems)
		orders.POST("/:id/invoice", gate(RoleAdmin, RoleManager, RoleSales), h.IssueInvoice)
		orders.POST("/:id/extensions", gate(RoleAdmin, RoleManager, RoleSales, RoleTechnician), ext.RequestExtension)
		orders.GET("/:id/extensions", ext.ListByOrder)
	}
}

func addItemRoutes(rg *gin.RouterGroup, h *handlers.ItemHandler, gate func(...string) gin.HandlerFunc) {
	managers := gate(RoleAdmin, RoleManager)
	workers := gate(RoleAdmin, RoleManager, RoleTechnician)

	items := rg.Group(PathOrderItems)
	{
		items.POST("/complete", workers, h.Complete)
		items.GET("/:id", h.GetItem)
		items.POST("/:id/assign", managers, h.Assign)
		items.POST("/:id/start", workers, h.Start)
		items.POST("/:id/fail", workers, h.Fail)
		items.POST("/:id/skip", managers, h.Skip)
		items.POST("/:id/move", managers, h.Move)
		items.POST("/:id/advance", workers, h.Advance)
		items.POST("/:id/skip-step", managers, h.SkipStep)
		items.GET("/:id/routing", h.ListRouting)
	}
}

func addBillingRoutes(rg *gin.RouterGroup, h *handlers.InvoiceHandler, ext *handlers.ExtensionHandler, gate func(...string) gin.HandlerFunc) {
	managers := gate(RoleAdmin, RoleManager)

	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("/:id", h.GetInvoice)
		invoices.POST("/:id/paid", managers, h.MarkPaid)
		invoices.GET("/:id/commissions", managers, h.ListCommissions)
	}

	rg.GET(PathUsers+"/:id/commissions", h.ListUserCommissions)
	rg.POST(PathExtensions+"/:id/resolve", managers, ext.Resolve)
}

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.PaymentWebhookHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/webhook", h.Receive)
	}
}
