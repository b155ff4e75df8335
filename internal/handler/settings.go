package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/apierror"
	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/dto"
	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/service"
)

type SettingsHandler struct{ svc service.SettingsService }

func NewSettingsHandler(svc service.SettingsService) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

// Get GET /v1/settings — creates the default row on first call.
func (h *SettingsHandler) Get(c *gin.Context) {
	resp, err := h.svc.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to load settings"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update PUT /v1/settings
func (h *SettingsHandler) Update(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
