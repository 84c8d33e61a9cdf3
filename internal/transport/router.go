package transport

import (
	"net/http"

	"craftlink-be/internal/middleware"
	"craftlink-be/internal/notification"
	"craftlink-be/internal/order"
	"craftlink-be/internal/product"
	"craftlink-be/internal/user"

	"github.com/gin-gonic/gin"
)

type Services struct {
	Orders        order.Service
	Users         user.Service
	Products      product.Service
	Notifications notification.Service
}

// NewRouter builds the HTTP surface. Auth runs on everything so handlers can
// rely on the identity in the request context.
func NewRouter(s Services) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logging(), middleware.Auth(), middleware.RateLimit())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	orderHandler := NewOrderHandler(s.Orders, s.Users)
	financeHandler := NewFinanceHandler(s.Orders)
	userHandler := NewUserHandler(s.Users)
	productHandler := NewProductHandler(s.Products)
	notificationHandler := NewNotificationHandler(s.Notifications)

	api := r.Group("/api", middleware.RequireAuth())

	orders := api.Group("/orders")
	{
		orders.POST("", orderHandler.Create)
		orders.GET("", middleware.RequireRole("admin", "supervisor", "finance"), orderHandler.List)
		orders.GET("/driver", orderHandler.ListForDriver)
		orders.GET("/drivers/list", orderHandler.ListDrivers)
		orders.GET("/user/:userId", orderHandler.ListByUser)
		orders.GET("/:id", orderHandler.Get)
		orders.PUT("/:id/status", orderHandler.UpdateStatus)
		orders.PUT("/:id/payment-status", orderHandler.UpdatePaymentStatus)
		orders.PUT("/:id/assign-driver", orderHandler.AssignDriver)
		orders.PUT("/:id/mark-delivered", orderHandler.MarkDelivered)
		orders.PUT("/:id/mark-received", orderHandler.MarkReceived)
		orders.PUT("/:id/payment", middleware.StrictRateLimit(), orderHandler.SubmitPayment)
	}

	finance := api.Group("/finance", middleware.StrictRateLimit())
	{
		finance.GET("/report", middleware.RequireRole("finance", "admin"), financeHandler.Report)
		finance.PUT("/orders/:id/approve", financeHandler.Approve)
		finance.PUT("/orders/:id/reject", financeHandler.Reject)
		finance.PUT("/orders/:id/payment", financeHandler.ProcessPayment)
	}

	users := api.Group("/users")
	{
		users.GET("", userHandler.List)
		users.GET("/suppliers", userHandler.ListSuppliers)
		users.GET("/:id", userHandler.Get)
		users.PUT("/:id/status", userHandler.UpdateStatus)
	}

	products := api.Group("/products")
	{
		products.POST("", middleware.RequireRole("admin", "artisan"), productHandler.Create)
		products.GET("", productHandler.List)
		products.GET("/:id", productHandler.Get)
		products.PUT("/:id", middleware.RequireRole("admin", "artisan"), productHandler.Update)
		products.DELETE("/:id", middleware.RequireRole("admin"), productHandler.Delete)
	}

	notifications := api.Group("/notifications")
	{
		notifications.POST("", middleware.RequireRole("admin", "supervisor"), notificationHandler.Send)
		notifications.GET("", notificationHandler.List)
		notifications.GET("/all", notificationHandler.ListAll)
		notifications.PUT("/read-all", notificationHandler.MarkAllRead)
		notifications.PUT("/:id/read", notificationHandler.MarkRead)
	}

	return r
}
