package main

import (
	"fmt"
	"io"

	"geds_checkout/internal/config"
	"geds_checkout/internal/domain/artifacts"
	"geds_checkout/internal/domain/pricing"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func quoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a plan and print its PIX payload and boleto line",
		RunE: func(cmd *cobra.Command, args []string) error {
			rawPrice, _ := cmd.Flags().GetString("price")
			voucher, _ := cmd.Flags().GetString("voucher")

			base, err := decimal.NewFromString(rawPrice)
			if err != nil {
				return fmt.Errorf("invalid price %q: %w", rawPrice, err)
			}
			c := config.Load().Checkout
			merchant := artifacts.PixMerchant{Key: c.PixKey, Name: c.PixName, City: c.PixCity}
			return runQuote(cmd.OutOrStdout(), merchant, base, voucher, nil)
		},
	}

	cmd.Flags().StringP("price", "p", "49.99", "Base price of the plan")
	cmd.Flags().StringP("voucher", "v", "", "Voucher code to apply")

	return cmd
}

func runQuote(w io.Writer, merchant artifacts.PixMerchant, base decimal.Decimal, voucher string, intn func(int) int) error {
	if !pricing.ValidAmount(base) {
		return fmt.Errorf("price must be between 0 and %s with at most 2 decimals: %w", pricing.MaxAmount.StringFixed(2), pricing.ErrAmountOutOfRange)
	}
	res := pricing.ComputeDiscount(base, voucher)
	payload, err := artifacts.PixPayload(merchant, res.Payable)
	if err != nil {
		return err
	}
	barcode, err := artifacts.BoletoBarcode(base, intn)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Base:     %s\n", pricing.FormatBRL(base))
	if res.Percent > 0 {
		fmt.Fprintf(w, "Discount: %d%% (-%s)\n", res.Percent, pricing.FormatBRL(base.Sub(res.Payable)))
	} else {
		fmt.Fprintln(w, "Discount: none")
	}
	fmt.Fprintf(w, "Payable:  %s\n", pricing.FormatBRL(res.Payable))
	fmt.Fprintln(w, "\nInstallments:")
	for _, o := range artifacts.InstallmentOptions(res.Payable) {
		fmt.Fprintf(w, "  %s\n", o.Label)
	}
	fmt.Fprintf(w, "\nPIX:      %s\n", payload)
	fmt.Fprintf(w, "QR code:  %s\n", artifacts.PixQRCodeURL(payload))
	fmt.Fprintf(w, "Boleto:   %s\n", barcode)
	return nil
}
