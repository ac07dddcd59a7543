package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/portfolio/pkg/qrcode"
	"github.com/dmitrymomot/portfolio/web"
)

var qrCmd = &cobra.Command{
	Use:   "qr",
	Short: "Write a QR code PNG pointing at the portfolio",
	Long:  "Encodes --url, or the portfolio link of the default CV document, into a PNG file.",
	RunE:  runQR,
}

var (
	qrURL  string
	qrOut  string
	qrSize int
)

func init() {
	qrCmd.Flags().StringVarP(&qrURL, "url", "u", "", "URL to encode (default: personal.portfolio)")
	qrCmd.Flags().StringVarP(&qrOut, "out", "o", "portfolio-qr.png", "Output PNG path")
	qrCmd.Flags().IntVarP(&qrSize, "size", "s", qrcode.DefaultSize, "Image edge in pixels")
	rootCmd.AddCommand(qrCmd)
}

func runQR(cmd *cobra.Command, _ []string) error {
	target := qrURL
	if target == "" {
		library, err := web.LoadContent("/")
		if err != nil {
			return err
		}
		target = library.Get("").Personal.Portfolio
	}

	png, err := qrcode.Generate(target, qrSize)
	if err != nil {
		return err
	}
	if err := os.WriteFile(qrOut, png, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", qrOut, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%s)\n", qrOut, target)
	return nil
}
