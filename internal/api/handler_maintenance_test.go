package api

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"factory-maintenance-backend/internal/model"
)

func seedWorkOrderFixtures(t *testing.T, db *gorm.DB, stock int, unitCost string) (model.Machine, model.Personnel, model.Part) {
	t.Helper()

	machine := model.Machine{MachineName: "CNC Torna", MachineStatus: model.MachineStatusActive}
	require.NoError(t, db.Create(&machine).Error)
	person := model.Personnel{FullName: "Ayşe Yılmaz"}
	require.NoError(t, db.Create(&person).Error)
	part := model.Part{
		PartName:     "Rulman",
		PartNumber:   "PN-001",
		UnitCost:     decimal.RequireFromString(unitCost),
		UnitsInStock: stock,
	}
	require.NoError(t, db.Create(&part).Error)
	return machine, person, part
}

func TestCreateMaintenance_RequiresAuth(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/maintenance", "", map[string]any{})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateMaintenance_SuccessAndStockDepletion(t *testing.T) {
	router, db, _ := newTestRouter(t)
	token := loginToken(t, router)
	machine, person, part := seedWorkOrderFixtures(t, db, 5, "12.50")

	payload := map[string]any{
		"machineID":   machine.ID,
		"personnelID": person.ID,
		"description": "rulman değişimi",
		"startTime":   "2026-08-30T09:00:00Z",
		"parts": []map[string]any{
			{"partID": part.ID, "quantity": 3},
		},
	}

	w := doJSON(t, router, http.MethodPost, "/maintenance", token, payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		MaintenanceID int64 `json:"maintenanceID"`
		Parts         []struct {
			PartID    int64           `json:"partID"`
			Quantity  int             `json:"quantity"`
			UnitCost  decimal.Decimal `json:"unitCost"`
			TotalCost decimal.Decimal `json:"totalCost"`
		} `json:"parts"`
		TotalPartsCost decimal.Decimal `json:"totalPartsCost"`
	}
	decodeBody(t, w, &resp)
	require.NotZero(t, resp.MaintenanceID)
	require.Len(t, resp.Parts, 1)
	assert.Equal(t, part.ID, resp.Parts[0].PartID)
	assert.True(t, resp.Parts[0].UnitCost.Equal(decimal.RequireFromString("12.50")))
	assert.True(t, resp.Parts[0].TotalCost.Equal(decimal.RequireFromString("37.50")))
	assert.True(t, resp.TotalPartsCost.Equal(decimal.RequireFromString("37.50")))

	var reloaded model.Part
	require.NoError(t, db.First(&reloaded, part.ID).Error)
	assert.Equal(t, 2, reloaded.UnitsInStock)

	// Remaining stock cannot cover a second identical order.
	w = doJSON(t, router, http.MethodPost, "/maintenance", token, payload)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var errResp struct {
		Error     string `json:"error"`
		PartName  string `json:"partName"`
		Available int    `json:"available"`
		Requested int    `json:"requested"`
	}
	decodeBody(t, w, &errResp)
	assert.Equal(t, "insufficient_stock", errResp.Error)
	assert.Equal(t, "Rulman", errResp.PartName)
	assert.Equal(t, 2, errResp.Available)
	assert.Equal(t, 3, errResp.Requested)

	require.NoError(t, db.First(&reloaded, part.ID).Error)
	assert.Equal(t, 2, reloaded.UnitsInStock)

	var recordCount int64
	db.Model(&model.MaintenanceRecord{}).Count(&recordCount)
	assert.Equal(t, int64(1), recordCount)
}

func TestCreateMaintenance_ValidationErrors(t *testing.T) {
	router, _, _ := newTestRouter(t)
	token := loginToken(t, router)

	w := doJSON(t, router, http.MethodPost, "/maintenance", token, map[string]any{})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error  string `json:"error"`
		Errors []struct {
			Field string `json:"field"`
		} `json:"errors"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, "validation_error", resp.Error)

	fields := make([]string, 0, len(resp.Errors))
	for _, fe := range resp.Errors {
		fields = append(fields, fe.Field)
	}
	assert.Contains(t, fields, "machineID")
	assert.Contains(t, fields, "personnelID")
	assert.Contains(t, fields, "startTime")
}

func TestCreateMaintenance_UnknownPart(t *testing.T) {
	router, db, _ := newTestRouter(t)
	token := loginToken(t, router)
	machine, person, _ := seedWorkOrderFixtures(t, db, 5, "12.50")

	w := doJSON(t, router, http.MethodPost, "/maintenance", token, map[string]any{
		"machineID":   machine.ID,
		"personnelID": person.ID,
		"startTime":   "2026-08-30T09:00:00Z",
		"parts": []map[string]any{
			{"partID": 9999, "quantity": 1},
		},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error  string `json:"error"`
		PartID int64  `json:"partID"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, "part_not_found", resp.Error)
	assert.Equal(t, int64(9999), resp.PartID)
}
