//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booking-admin-console/internal/config"
	"booking-admin-console/internal/domain"
	"booking-admin-console/internal/notification"
	"booking-admin-console/internal/repository"
	"booking-admin-console/internal/repository/postgres"
	"booking-admin-console/internal/service"
)

var configPath string

func init() {
	flag.StringVar(&configPath, "config", "../../../config/config.test.yaml", "path to config file")
}

func prepareDB(t *testing.T) *sql.DB {
	if !flag.Parsed() {
		flag.Parse()
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config from %s: %v", configPath, err)
	}

	var db *sql.DB
	// Retry connection as DB might still be starting up
	for i := 0; i < 10; i++ {
		db, err = sql.Open("postgres", cfg.GetDatabaseConnectionString())
		if err == nil {
			if err = db.Ping(); err == nil {
				break
			}
		}
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}

	schema, err := os.ReadFile(filepath.Join("..", "..", "..", "migrations", "0001_admin_console.sql"))
	require.NoError(t, err)
	_, err = db.Exec(string(schema))
	require.NoError(t, err)
	return db
}

func TestAdminCodeWorkflow_Postgres(t *testing.T) {
	db := prepareDB(t)
	defer db.Close()

	ctx := context.Background()
	store := postgres.NewStore(db)
	dispatcher := notification.NewDispatcher(notification.NewMockSMSProvider(0, 0), notification.NewMockEmailProvider(0))
	svc := service.NewAdminCodeService(store.AdminCodeRequestRepository, store.AdminCodeRepository, dispatcher, "BookingHub")

	db.Exec("DELETE FROM admin_codes WHERE request_id IN (SELECT id FROM admin_code_requests WHERE email LIKE 'it-admin-code-%')")
	db.Exec("DELETE FROM admin_code_requests WHERE email LIKE 'it-admin-code-%'")

	t.Run("ApproveCreatesCodeOnce", func(t *testing.T) {
		req := &domain.AdminCodeRequest{Name: "Asha Rao", Email: "it-admin-code-1@example.com", PhoneNo: "9876543210"}
		require.NoError(t, store.AdminCodeRequestRepository.Create(ctx, req))

		outcome, err := svc.Approve(ctx, req, domain.AdminIdentity{ID: "A1"})
		require.NoError(t, err)

		code, err := store.AdminCodeRepository.GetByRequestID(ctx, req.ID)
		require.NoError(t, err)
		assert.Equal(t, outcome.Code, code.Code)
		assert.Equal(t, "A1", code.ApprovedBy)

		// A stale pending copy loses the compare-and-swap.
		_, err = svc.Approve(ctx, req, domain.AdminIdentity{ID: "A2"})
		assert.ErrorIs(t, err, service.ErrAlreadyProcessed)
	})

	t.Run("ReconcileRepairsMissingCode", func(t *testing.T) {
		req := &domain.AdminCodeRequest{Name: "Ravi K", Email: "it-admin-code-2@example.com", PhoneNo: "9123456780"}
		require.NoError(t, store.AdminCodeRequestRepository.Create(ctx, req))

		approvedAt := time.Now().UTC().Add(-5 * time.Minute)
		approved := *req
		approved.Status = domain.AdminCodeRequestStatusApproved
		approved.AdminCode = "ADMINITREPAIR01"
		approved.ApprovedBy = "A1"
		approved.ApprovedDate = &approvedAt
		require.NoError(t, store.AdminCodeRequestRepository.Transition(ctx, &approved, domain.AdminCodeRequestStatusPending))

		_, err := store.AdminCodeRepository.GetByRequestID(ctx, req.ID)
		require.ErrorIs(t, err, repository.ErrNotFound)

		fresh := &domain.AdminCodeRequest{Name: "Meera S", Email: "it-admin-code-3@example.com", PhoneNo: "9988776655"}
		require.NoError(t, store.AdminCodeRequestRepository.Create(ctx, fresh))
		justNow := time.Now().UTC()
		inFlight := *fresh
		inFlight.Status = domain.AdminCodeRequestStatusApproved
		inFlight.AdminCode = "ADMINITINFLIGHT1"
		inFlight.ApprovedBy = "A1"
		inFlight.ApprovedDate = &justNow
		require.NoError(t, store.AdminCodeRequestRepository.Transition(ctx, &inFlight, domain.AdminCodeRequestStatusPending))

		repaired, err := svc.ReconcileMissingCodes(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, repaired, 1)

		// Approvals inside the grace window are left to the approving call.
		_, err = store.AdminCodeRepository.GetByRequestID(ctx, fresh.ID)
		assert.ErrorIs(t, err, repository.ErrNotFound)

		code, err := store.AdminCodeRepository.GetByRequestID(ctx, req.ID)
		require.NoError(t, err)
		assert.Equal(t, "ADMINITREPAIR01", code.Code)
	})
}
