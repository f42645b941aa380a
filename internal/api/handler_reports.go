package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// DueMaintenanceReport handles GET /reports/due-maintenance?days=N (default 7).
func (h *Handler) DueMaintenanceReport(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid days parameter"})
		return
	}

	items, err := h.store.DueMaintenance(c.Request.Context(), days)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// MonthlyCostReport handles GET /reports/monthly-maintenance-cost.
func (h *Handler) MonthlyCostReport(c *gin.Context) {
	rows, err := h.store.MonthlyMaintenanceCost(c.Request.Context())
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": rows})
}
