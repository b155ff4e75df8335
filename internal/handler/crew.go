package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/apierror"
	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/dto"
	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/service"
)

type CrewHandler struct{ svc service.CrewService }

func NewCrewHandler(svc service.CrewService) *CrewHandler {
	return &CrewHandler{svc: svc}
}

// Create POST /v1/crew
func (h *CrewHandler) Create(c *gin.Context) {
	var req dto.CreateCrewRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List GET /v1/crew?include=all
func (h *CrewHandler) List(c *gin.Context) {
	var filter dto.CrewFilter
	_ = c.ShouldBindQuery(&filter)

	resp, err := h.svc.List(c.Request.Context(), filter.Include == "all")
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list crew"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get GET /v1/crew/:id
func (h *CrewHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	resp, svcErr := h.svc.Get(c.Request.Context(), id)
	if svcErr != nil {
		c.JSON(http.StatusNotFound, apierror.New("crew member not found"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update PUT /v1/crew/:id
func (h *CrewHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	var req dto.UpdateCrewRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, svcErr := h.svc.Update(c.Request.Context(), id, req)
	if svcErr != nil {
		if errors.Is(svcErr, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("crew member not found"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(svcErr.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SetActive PATCH /v1/crew/:id/active
func (h *CrewHandler) SetActive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	var req dto.SetCrewActiveRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, svcErr := h.svc.SetActive(c.Request.Context(), id, *req.IsActive)
	if svcErr != nil {
		c.JSON(http.StatusNotFound, apierror.New("crew member not found"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete DELETE /v1/crew/:id
func (h *CrewHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	if svcErr := h.svc.Delete(c.Request.Context(), id); svcErr != nil {
		c.JSON(http.StatusNotFound, apierror.New("crew member not found"))
		return
	}
	c.JSON(http.StatusNoContent, nil)
}
