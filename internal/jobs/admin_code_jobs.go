package jobs

import (
	"context"
	"fmt"
	"strings"

	"booking-admin-console/internal/domain"
	"booking-admin-console/internal/logger"
)

// ReconcileAdminCodes recreates admin code records lost between the request
// update and the code insert.
func (jr *JobRunner) ReconcileAdminCodes() {
	jr.runWithRecovery("ReconcileAdminCodes", func() {
		ctx := context.Background()

		repaired, err := jr.services.AdminCodes.ReconcileMissingCodes(ctx)
		if err != nil {
			logger.Error("Admin code reconciliation finished with errors", "repaired", repaired, "error", err)
			return
		}
		if repaired > 0 {
			logger.Warn("Repaired approved requests missing an admin code", "count", repaired)
			return
		}
		logger.Debug("No admin codes needed reconciliation")
	})
}

// SendPendingRequestDigest emails the ops mailbox a list of requests still
// waiting for a decision.
func (jr *JobRunner) SendPendingRequestDigest() {
	jr.runWithRecovery("SendPendingRequestDigest", func() {
		ctx := context.Background()

		to := jr.config.Notification.OpsEmail
		if to == "" {
			logger.Debug("No ops email configured, skipping pending request digest")
			return
		}

		pending, err := jr.services.AdminCodes.ListRequests(ctx, domain.AdminCodeRequestStatusPending)
		if err != nil {
			logger.Error("Failed to list pending admin code requests", "error", err)
			return
		}
		if len(pending) == 0 {
			logger.Debug("No pending admin code requests")
			return
		}

		subject := fmt.Sprintf("%d pending admin access request(s)", len(pending))
		result := jr.services.Notifier.SendEmail(ctx, to, subject, digestBody(jr.config.App.SystemName, pending), false)
		if !result.Success {
			logger.Error("Failed to send pending request digest", "to", to, "error", result.Error)
			return
		}
		logger.Info("Sent pending request digest", "to", to, "pending", len(pending))
	})
}

func digestBody(systemName string, pending []domain.AdminCodeRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The following %s admin access requests are awaiting review:\n\n", systemName)
	for _, req := range pending {
		fmt.Fprintf(&b, "- %s <%s>, %s (requested %s)\n",
			req.Name, req.Email, req.Organization, req.RequestDate.UTC().Format("2006-01-02"))
	}
	b.WriteString("\nReview them in the admin console.\n")
	return b.String()
}
