package establishment

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /settings/establishment
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	est, err := h.service.Get(c.Request.Context(), c.GetString("establishmentID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "establishment not found"})
		return
	}

	c.JSON(http.StatusOK, est)
}

// --------------------------------------------------
// PUT /settings/establishment
// --------------------------------------------------
func (h *Handler) Update(c *gin.Context) {
	var req struct {
		Name     string   `json:"name"`
		Email    string   `json:"email"`
		Phone    string   `json:"phone"`
		Address  string   `json:"address"`
		Settings Settings `json:"settings"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	err := h.service.Update(c.Request.Context(), c.GetString("establishmentID"), UpdateInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Settings: req.Settings,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "establishment updated"})
}

// --------------------------------------------------
// POST /settings/establishment/logo
// --------------------------------------------------
func (h *Handler) UploadLogo(c *gin.Context) {
	file, err := c.FormFile("logo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "logo file is required"})
		return
	}

	url, err := h.service.UploadLogo(c.Request.Context(), c.GetString("establishmentID"), file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload logo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"logo_url": url})
}

// --------------------------------------------------
// GET /settings/profile
// --------------------------------------------------
func (h *Handler) GetProfile(c *gin.Context) {
	profile, err := h.service.GetProfile(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// --------------------------------------------------
// PUT /settings/profile
// --------------------------------------------------
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.service.UpdateProfile(c.Request.Context(), c.GetString("userID"), req.Name, req.Email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "profile updated"})
}
