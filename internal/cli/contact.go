package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"caid/internal/client"
	"caid/internal/content"
	"caid/internal/terminal"
	"caid/internal/ui"
)

func init() {
	rootCmd.AddCommand(contactCmd)
}

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Send an investor inquiry without opening the terminal UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		// nothing could store the inquiry; fail before asking for input
		if flagOffline {
			return fmt.Errorf("contact: %w", client.ErrOffline)
		}
		rec, err := ui.RunContactForm(cmd.Context(), client.New(settings.APIURL))
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(cmd.OutOrStdout(), "cancelled")
			return nil
		}
		if err != nil {
			return err
		}
		printReceipt(cmd.OutOrStdout(), rec)
		return nil
	},
}

func printReceipt(w io.Writer, rec content.InquiryReceipt) {
	for _, ln := range terminal.InquiryReceipt(rec.ID) {
		fmt.Fprintln(w, ln.Text)
	}
}
