package transport

import (
	"net/http"

	"craftlink-be/internal/order"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FinanceHandler struct {
	orders order.Service
}

func NewFinanceHandler(orders order.Service) *FinanceHandler {
	return &FinanceHandler{orders: orders}
}

func (h *FinanceHandler) Approve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	o, err := h.orders.FinanceApprove(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *FinanceHandler) Reject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	var req financeRejectRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	o, err := h.orders.FinanceReject(c.Request.Context(), id, req.Reason)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *FinanceHandler) ProcessPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	var req financePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	o, err := h.orders.FinanceProcessPayment(c.Request.Context(), id,
		req.Amount, req.PaymentMethod, req.Notes)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

type financeReport struct {
	TotalOrders      int     `json:"totalOrders"`
	InventoryOrders  int     `json:"inventoryOrders"`
	PendingApproval  int     `json:"pendingApproval"`
	Completed        int     `json:"completed"`
	Rejected         int     `json:"rejected"`
	TotalPaid        float64 `json:"totalPaid"`
	TotalOutstanding float64 `json:"totalOutstanding"`
}

// Report summarizes the finance view of the order book.
func (h *FinanceHandler) Report(c *gin.Context) {
	orders, err := h.orders.ListOrders(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	var report financeReport
	report.TotalOrders = len(orders)
	for _, o := range orders {
		if o.OrderType != order.TypeInventory {
			continue
		}
		report.InventoryOrders++

		switch o.OrderStatus {
		case order.StatusCompleted:
			report.Completed++
		case order.StatusRejected:
			report.Rejected++
		}

		switch o.PaymentStatus {
		case order.PaymentPaid:
			report.TotalPaid += o.TotalPrice
		case order.PaymentPending, order.PaymentApproved:
			report.TotalOutstanding += o.TotalPrice
			if o.PaymentStatus == order.PaymentPending {
				report.PendingApproval++
			}
		}
	}

	c.JSON(http.StatusOK, report)
}
