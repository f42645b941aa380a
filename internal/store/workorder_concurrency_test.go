package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"factory-maintenance-backend/internal/db"
	"factory-maintenance-backend/internal/model"
)

// newFileDB opens a file-backed database so concurrent transactions contend
// through the real locking path instead of a shared in-memory page cache.
func newFileDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", filepath.Join(t.TempDir(), "store.db"))
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB))

	t.Cleanup(func() {
		if sqlDB, err := gormDB.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return gormDB
}

// Concurrent work orders racing for the same part must never overdraw it:
// committed consumption equals the deducted stock exactly, and the counter
// stays non-negative no matter how the orders interleave.
func TestCreateWorkOrder_ConcurrentOrdersCannotOverdrawStock(t *testing.T) {
	gormDB := newFileDB(t)
	s := NewGormStore(gormDB)

	machine := seedMachine(t, gormDB, "Ekstrüder")
	person := seedPersonnel(t, gormDB, "Emre Aydın")
	part := seedPart(t, gormDB, "Nozul", 10, "4.00")

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for attempt := 0; attempt < 50; attempt++ {
				_, err := s.CreateWorkOrder(context.Background(), baseWorkOrder(machine.ID, person.ID,
					WorkOrderLine{PartID: part.ID, Quantity: 3},
				))
				if err == nil {
					mu.Lock()
					succeeded++
					mu.Unlock()
					return
				}
				var stockErr *InsufficientStockError
				if errors.As(err, &stockErr) {
					return
				}
				// SQLITE_BUSY under write contention; back off and retry.
				time.Sleep(5 * time.Millisecond)
			}
			t.Error("worker gave up before reaching a committed outcome")
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, succeeded, "a stock of 10 covers exactly three orders of three")

	var reloaded model.Part
	require.NoError(t, gormDB.First(&reloaded, part.ID).Error)
	assert.GreaterOrEqual(t, reloaded.UnitsInStock, 0, "stock must never be observable below zero")
	assert.Equal(t, 10-3*succeeded, reloaded.UnitsInStock,
		"deducted stock must equal the committed consumption exactly")

	var recordCount, lineCount int64
	gormDB.Model(&model.MaintenanceRecord{}).Count(&recordCount)
	gormDB.Model(&model.MaintenancePart{}).Count(&lineCount)
	assert.Equal(t, int64(succeeded), recordCount, "failed orders must leave no header behind")
	assert.Equal(t, int64(succeeded), lineCount, "failed orders must leave no lines behind")
}
