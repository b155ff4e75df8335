package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/apierror"
	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/dto"
	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/export"
	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/service"
)

const (
	pdfContentType  = "application/pdf"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type ReportsHandler struct{ svc service.ReportService }

func NewReportsHandler(svc service.ReportService) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

func (h *ReportsHandler) servePDF(c *gin.Context, name string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", name))
	c.Data(http.StatusOK, pdfContentType, data)
}

// Payroll GET /v1/reports/payroll[?format=pdf]
func (h *ReportsHandler) Payroll(c *gin.Context) {
	ctx := c.Request.Context()
	resp, err := h.svc.Payroll(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to build payroll report"))
		return
	}
	if c.Query("format") != "pdf" {
		c.JSON(http.StatusOK, resp)
		return
	}
	cfg, err := h.svc.Settings(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to load settings"))
		return
	}
	data, err := export.PayrollPDF(resp, cfg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to render PDF"))
		return
	}
	h.servePDF(c, "crew-deductions-"+cfg.ReportMonth+"-"+cfg.ReportYear, data)
}

// Inventory GET /v1/reports/inventory[?format=pdf]
func (h *ReportsHandler) Inventory(c *gin.Context) {
	ctx := c.Request.Context()
	rows, err := h.svc.Inventory(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to build inventory report"))
		return
	}
	if c.Query("format") != "pdf" {
		c.JSON(http.StatusOK, rows)
		return
	}
	cfg, err := h.svc.Settings(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to load settings"))
		return
	}
	data, err := export.InventoryPDF(rows, cfg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to render PDF"))
		return
	}
	h.servePDF(c, "inventory-"+cfg.ReportMonth+"-"+cfg.ReportYear, data)
}

// Monthly GET /v1/reports/monthly[?format=pdf]
func (h *ReportsHandler) Monthly(c *gin.Context) {
	ctx := c.Request.Context()
	resp, err := h.svc.Monthly(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to build monthly report"))
		return
	}
	if c.Query("format") != "pdf" {
		c.JSON(http.StatusOK, resp)
		return
	}
	cfg, err := h.svc.Settings(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to load settings"))
		return
	}
	data, err := export.MonthlyPDF(resp, cfg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to render PDF"))
		return
	}
	h.servePDF(c, "monthly-report-"+cfg.ReportMonth+"-"+cfg.ReportYear, data)
}

// Representation GET /v1/reports/representation[?format=pdf]
func (h *ReportsHandler) Representation(c *gin.Context) {
	ctx := c.Request.Context()
	resp, err := h.svc.Representation(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to build representation report"))
		return
	}
	if c.Query("format") != "pdf" {
		c.JSON(http.StatusOK, resp)
		return
	}
	cfg, err := h.svc.Settings(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to load settings"))
		return
	}
	data, err := export.RepresentationPDF(resp, cfg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to render PDF"))
		return
	}
	h.servePDF(c, "representation-"+cfg.ReportMonth+"-"+cfg.ReportYear, data)
}

// History GET /v1/reports/history?recipient=ALL|REPRESENTATION|<crewId>[&format=pdf]
func (h *ReportsHandler) History(c *gin.Context) {
	var filter dto.HistoryFilter
	_ = c.ShouldBindQuery(&filter)

	ctx := c.Request.Context()
	resp, err := h.svc.History(ctx, filter.Recipient)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to build history"))
		return
	}
	if c.Query("format") != "pdf" {
		c.JSON(http.StatusOK, resp)
		return
	}
	cfg, err := h.svc.Settings(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to load settings"))
		return
	}
	data, err := export.HistoryPDF(resp, cfg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to render PDF"))
		return
	}
	h.servePDF(c, "history-"+cfg.ReportMonth+"-"+cfg.ReportYear, data)
}

// OrderSheet GET /v1/reports/order-sheet[?format=pdf]
func (h *ReportsHandler) OrderSheet(c *gin.Context) {
	ctx := c.Request.Context()
	sheet, err := h.svc.OrderSheet(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to build order sheet"))
		return
	}
	if c.Query("format") != "pdf" {
		c.JSON(http.StatusOK, sheet)
		return
	}
	cfg, err := h.svc.Settings(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to load settings"))
		return
	}
	data, err := export.OrderSheetPDF(sheet, cfg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to render PDF"))
		return
	}
	h.servePDF(c, "order-sheet-"+sheet.IssueDate.Format("2006-01-02"), data)
}

// Workbook GET /v1/reports/workbook — the combined .xlsx office export.
func (h *ReportsHandler) Workbook(c *gin.Context) {
	ctx := c.Request.Context()
	inv, err := h.svc.Inventory(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to build inventory report"))
		return
	}
	pay, err := h.svc.Payroll(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to build payroll report"))
		return
	}
	monthly, err := h.svc.Monthly(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to build monthly report"))
		return
	}
	cfg, err := h.svc.Settings(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to load settings"))
		return
	}
	data, err := export.Workbook(inv, pay, monthly, cfg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to render workbook"))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=bonded-store-%s-%s.xlsx", cfg.ReportMonth, cfg.ReportYear))
	c.Data(http.StatusOK, xlsxContentType, data)
}

// Dashboard GET /v1/dashboard/stats
func (h *ReportsHandler) Dashboard(c *gin.Context) {
	resp, err := h.svc.Dashboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to build dashboard stats"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
