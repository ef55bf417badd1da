package cmd

import (
	"context"
	"fmt"

	"greenmint/internal/core"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func reconcileCommand() *cobra.Command {
	var attestationID string

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Settle outstanding mints against the ledger and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return reconcile(cmd.Context(), attestationID)
		},
	}
	cmd.Flags().StringVar(&attestationID, "attestation", "", "reconcile a single attestation instead of every outstanding mint")

	return cmd
}

func reconcile(ctx context.Context, attestationID string) error {
	var (
		greenmint *core.Greenmint
		logger    *zap.SugaredLogger
	)

	app := fx.New(
		infrastructure,
		fx.Populate(&greenmint, &logger),
	)
	if err := app.Err(); err != nil {
		return fmt.Errorf("build application: %w", err)
	}

	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("start application: %w", err)
	}
	defer func() {
		if err := app.Stop(context.WithoutCancel(ctx)); err != nil {
			logger.Errorw("failed to stop application", "error", err)
		}
	}()

	if attestationID != "" {
		mint, err := greenmint.Reconcile(ctx, attestationID)
		if err != nil {
			logger.Errorw("reconcile failed",
				"error", err,
				"kind", core.KindOf(err),
				"attestation_id", attestationID)
			return err
		}
		logger.Infow("mint reconciled",
			"attestation_id", attestationID,
			"txn_hash", mint.TxnHash,
			"certificate_id", mint.Asset.CertificateID)
		return nil
	}

	report, err := greenmint.ReconcileOutstanding(ctx)
	if err != nil {
		logger.Errorw("reconcile pass failed", "error", err)
		return err
	}

	logger.Infow("reconcile pass finished",
		"checked", report.Checked,
		"confirmed", report.Confirmed,
		"failed", report.Failed,
		"pending", report.Pending,
		"errors", report.Errors)

	if report.Errors > 0 {
		return fmt.Errorf("%d mints could not be reconciled", report.Errors)
	}
	return nil
}
