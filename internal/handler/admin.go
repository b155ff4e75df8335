package handler

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/apierror"
	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/dto"
	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/service"
)

// maxRestoreBytes caps backup uploads. Real bundles are well under a
// megabyte; anything bigger is not one of ours.
const maxRestoreBytes = 32 << 20

type AdminHandler struct {
	rollover service.RolloverService
	backup   service.BackupService
}

func NewAdminHandler(rollover service.RolloverService, backup service.BackupService) *AdminHandler {
	return &AdminHandler{rollover: rollover, backup: backup}
}

// CloseMonth POST /v1/admin/close-month — carries stock into the next period,
// clears the journal and drops signed-off crew. Destructive, no undo.
func (h *AdminHandler) CloseMonth(c *gin.Context) {
	var req dto.CloseMonthRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.rollover.CloseMonth(c.Request.Context(), req.NextMonth, req.NextYear)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("month close failed: "+err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HardReset POST /v1/admin/hard-reset?confirm=true — wipes everything. The
// confirm flag is the API-level stand-in for the double confirmation dialog.
func (h *AdminHandler) HardReset(c *gin.Context) {
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, apierror.New("hard reset requires confirm=true"))
		return
	}
	resp, err := h.rollover.HardReset(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("hard reset failed: "+err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Backup GET /v1/admin/backup — downloads the full state bundle.
func (h *AdminHandler) Backup(c *gin.Context) {
	data, err := h.backup.Export(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("backup failed: "+err.Error()))
		return
	}
	filename := "bonded-store-backup-" + time.Now().Format("2006-01-02") + ".json"
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/json", data)
}

// Restore POST /v1/admin/restore — replaces all state with the uploaded
// bundle. The body is the raw JSON document produced by Backup (or by a
// legacy export).
func (h *AdminHandler) Restore(c *gin.Context) {
	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxRestoreBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("failed to read upload"))
		return
	}
	bundle, err := h.backup.Restore(c.Request.Context(), data)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"crew":         len(bundle.Crew),
		"products":     len(bundle.Products),
		"transactions": len(bundle.Transactions),
	})
}
