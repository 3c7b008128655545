package main

import (
	"fmt"
	"log"
	"os"

	"storefront/internal/core/logger"
	"storefront/internal/features/checkout/adapters"
	"storefront/internal/features/checkout/domain"
	"storefront/internal/features/checkout/ports"
	"storefront/internal/features/checkout/service"

	"github.com/spf13/cobra"
)

func main() {
	if err := logger.Init("development", os.Getenv("LOG_LEVEL")); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	cmd := newRootCmd(adapters.NewSystemClipboard(), adapters.NewLogNotifier(logger.Named("payqr")))
	if err := cmd.Execute(); err != nil {
		logger.Sync()
		os.Exit(1)
	}
}

func newRootCmd(clipboard ports.Clipboard, notifier ports.Notifier) *cobra.Command {
	var (
		size     int
		template string
		copyURI  bool
	)

	cmd := &cobra.Command{
		Use:   "payqr <payment-uri>",
		Short: "Print the QR image URL for a payment URI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			qr := domain.NewQRCode(template, args[0], size)
			if !qr.Ready() {
				return fmt.Errorf("payment URI must not be empty")
			}

			fmt.Fprintln(cmd.OutOrStdout(), qr.ImageURL())

			if !copyURI {
				return nil
			}

			button := service.NewCopyButton(qr.URI(), clipboard, notifier)
			defer button.Close()

			if err := button.Copy(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", button.Indicator(), qr.URI())
			return nil
		},
	}

	cmd.Flags().IntVarP(&size, "size", "s", domain.DefaultSize, "QR image width and height in pixels")
	cmd.Flags().StringVar(&template, "template", domain.DefaultImageTemplate, "QR image URL template with {size} and {data} placeholders")
	cmd.Flags().BoolVarP(&copyURI, "copy", "c", false, "copy the payment URI to the system clipboard")

	return cmd
}
