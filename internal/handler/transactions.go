package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/apierror"
	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/dto"
	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/service"
)

type TransactionsHandler struct{ svc service.JournalService }

func NewTransactionsHandler(svc service.JournalService) *TransactionsHandler {
	return &TransactionsHandler{svc: svc}
}

// Checkout POST /v1/transactions
func (h *TransactionsHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Checkout(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List GET /v1/transactions — full journal, oldest first.
func (h *TransactionsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list transactions"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Edit PUT /v1/transactions/:id — replaces the item list. Emptying the list
// deletes the transaction (204); an unknown id is 404.
func (h *TransactionsHandler) Edit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	var req dto.EditTransactionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, removed, svcErr := h.svc.ApplyEdit(c.Request.Context(), id, req)
	if svcErr != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(svcErr.Error()))
		return
	}
	if removed {
		c.JSON(http.StatusNoContent, nil)
		return
	}
	if resp == nil {
		c.JSON(http.StatusNotFound, apierror.New("transaction not found"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete DELETE /v1/transactions/:id — idempotent, unknown ids succeed.
func (h *TransactionsHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	if svcErr := h.svc.Remove(c.Request.Context(), id); svcErr != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(svcErr.Error()))
		return
	}
	c.JSON(http.StatusNoContent, nil)
}
