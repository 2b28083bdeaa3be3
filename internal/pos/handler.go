package pos

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /pos/catalog?search=
// --------------------------------------------------
func (h *Handler) GetCatalog(c *gin.Context) {
	view, err := h.service.GetCatalog(
		c.Request.Context(),
		c.GetString("establishmentID"),
		c.Query("search"),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load catalog"})
		return
	}

	c.JSON(http.StatusOK, view)
}

// --------------------------------------------------
// POST /pos/checkout
// --------------------------------------------------
func (h *Handler) Checkout(c *gin.Context) {
	var req struct {
		CustomerName  string         `json:"customer_name"`
		CustomerPhone string         `json:"customer_phone"`
		Delivery      bool           `json:"delivery"`
		Items         []CheckoutItem `json:"items"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	order, err := h.service.Checkout(c.Request.Context(), c.GetString("establishmentID"), CheckoutInput{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Delivery:      req.Delivery,
		Items:         req.Items,
	})
	if err != nil {
		if errors.Is(err, ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, order)
}

// --------------------------------------------------
// GET /pos/orders?limit=
// --------------------------------------------------
func (h *Handler) ListOrders(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	orders, err := h.service.ListOrders(c.Request.Context(), c.GetString("establishmentID"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch orders"})
		return
	}

	c.JSON(http.StatusOK, orders)
}
