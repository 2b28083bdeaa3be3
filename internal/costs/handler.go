package costs

import (
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

type fixedCostRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	StartDate   string `json:"start_date"`
	Recurrence  string `json:"recurrence"`
}

type variableCostRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Quantity     string `json:"quantity"`
	TotalCost    string `json:"total_cost"`
	UnitMeasure  string `json:"unit_measure"`
	Supplier     string `json:"supplier"`
	PurchaseDate string `json:"purchase_date"`
	ExpiryDate   string `json:"expiry_date"`
}

type productIngredientRequest struct {
	ProductID      string `json:"product_id"`
	VariableCostID string `json:"variable_cost_id"`
	QuantityUsed   string `json:"quantity_used"`
	UnitCostAtTime string `json:"unit_cost_at_time"`
}

// --------------------------------------------------
// Fixed costs
// --------------------------------------------------

func (h *Handler) ListFixedCosts(c *gin.Context) {
	fixedCosts, err := h.service.ListFixedCosts(c.Request.Context(), c.GetString("establishmentID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch fixed costs"})
		return
	}
	c.JSON(http.StatusOK, fixedCosts)
}

func (h *Handler) CreateFixedCost(c *gin.Context) {
	var req fixedCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	cost, err := h.service.CreateFixedCost(c.Request.Context(), c.GetString("establishmentID"), FixedCostInput(req))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, cost)
}

func (h *Handler) UpdateFixedCost(c *gin.Context) {
	var req fixedCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	err := h.service.UpdateFixedCost(
		c.Request.Context(),
		c.GetString("establishmentID"),
		c.Param("id"),
		FixedCostInput(req),
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "fixed cost updated"})
}

func (h *Handler) DeleteFixedCost(c *gin.Context) {
	err := h.service.DeleteFixedCost(c.Request.Context(), c.GetString("establishmentID"), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete fixed cost"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "fixed cost deleted"})
}

// --------------------------------------------------
// Variable costs
// --------------------------------------------------

func (h *Handler) ListVariableCosts(c *gin.Context) {
	variableCosts, err := h.service.ListVariableCosts(c.Request.Context(), c.GetString("establishmentID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch variable costs"})
		return
	}
	c.JSON(http.StatusOK, variableCosts)
}

func (h *Handler) CreateVariableCost(c *gin.Context) {
	var req variableCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	cost, err := h.service.CreateVariableCost(c.Request.Context(), c.GetString("establishmentID"), VariableCostInput(req))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, cost)
}

func (h *Handler) UpdateVariableCost(c *gin.Context) {
	var req variableCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	err := h.service.UpdateVariableCost(
		c.Request.Context(),
		c.GetString("establishmentID"),
		c.Param("id"),
		VariableCostInput(req),
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "variable cost updated"})
}

func (h *Handler) DeleteVariableCost(c *gin.Context) {
	err := h.service.DeleteVariableCost(c.Request.Context(), c.GetString("establishmentID"), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete variable cost"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "variable cost deleted"})
}

// --------------------------------------------------
// Product ingredients
// --------------------------------------------------

func (h *Handler) ListProductIngredients(c *gin.Context) {
	links, err := h.service.ListProductIngredients(c.Request.Context(), c.GetString("establishmentID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch product ingredients"})
		return
	}
	c.JSON(http.StatusOK, links)
}

func (h *Handler) CreateProductIngredient(c *gin.Context) {
	var req productIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	link, err := h.service.CreateProductIngredient(
		c.Request.Context(),
		c.GetString("establishmentID"),
		ProductIngredientInput(req),
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, link)
}

func (h *Handler) UpdateProductIngredient(c *gin.Context) {
	var req productIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	err := h.service.UpdateProductIngredient(
		c.Request.Context(),
		c.GetString("establishmentID"),
		c.Param("id"),
		ProductIngredientInput(req),
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "product ingredient updated"})
}

func (h *Handler) DeleteProductIngredient(c *gin.Context) {
	err := h.service.DeleteProductIngredient(c.Request.Context(), c.GetString("establishmentID"), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete product ingredient"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product ingredient deleted"})
}

// --------------------------------------------------
// Reports
// --------------------------------------------------

func (h *Handler) ListCostAnalysis(c *gin.Context) {
	reports, err := h.service.ListCostAnalysis(c.Request.Context(), c.GetString("establishmentID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch cost analysis"})
		return
	}
	c.JSON(http.StatusOK, reports)
}

// GET /costs/summary?margin=30
func (h *Handler) GetSummary(c *gin.Context) {
	margin, _ := strconv.ParseFloat(c.DefaultQuery("margin", "30"), 64)

	summary, err := h.service.GetSummary(c.Request.Context(), c.GetString("establishmentID"), margin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute cost summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
