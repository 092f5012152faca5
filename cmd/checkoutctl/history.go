package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"geds_checkout/internal/config"
	"geds_checkout/internal/domain/pricing"
	"geds_checkout/internal/infrastructure/database"
	"geds_checkout/internal/infrastructure/ledger"
	"geds_checkout/internal/usecase"
	"geds_checkout/internal/usecase/interfaces"

	"github.com/spf13/cobra"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List the payment history ledger stored in Redis",
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			cfg := config.Load()

			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			client, err := database.NewRedisClient(ctx, cfg.Redis, nil)
			if err != nil {
				return fmt.Errorf("connect redis: %w", err)
			}
			defer client.Close()

			h := usecase.NewHistoryLedger(ledger.NewRedisSlot(client, cfg.Ledger.Key), cfg.Ledger.Capacity, cfg.Ledger.Location())
			return runHistory(ctx, cmd.OutOrStdout(), h, limit)
		},
	}

	cmd.Flags().IntP("limit", "n", 0, "Maximum entries (0 = all)")

	return cmd
}

func runHistory(ctx context.Context, w io.Writer, h interfaces.IHistoryLedger, limit int) error {
	recs, err := h.List(ctx)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		fmt.Fprintln(w, "History: (empty)")
		return nil
	}
	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}

	fmt.Fprintf(w, "%-14s %-10s %-5s %-7s %-14s %s\n", "ID", "DATA", "HORA", "METODO", "VALOR", "PLANO")
	fmt.Fprintln(w, strings.Repeat("-", 64))
	for _, r := range recs {
		fmt.Fprintf(w, "%-14d %-10s %-5s %-7s %-14s %s\n", r.ID, r.Date, r.Time, r.Method, pricing.FormatBRL(r.Amount), r.PlanName)
	}
	return nil
}
