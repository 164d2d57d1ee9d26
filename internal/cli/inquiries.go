package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"caid/internal/client"
	"caid/internal/content"
)

func init() {
	rootCmd.AddCommand(inquiriesCmd)
	inquiriesCmd.Flags().Bool("json", false, "print raw JSON")
}

var inquiriesCmd = &cobra.Command{
	Use:   "inquiries",
	Short: "List investor inquiries stored by the backend (newest first)",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()
		list, err := client.New(settings.APIURL).Inquiries(ctx)
		if err != nil {
			return fmt.Errorf("fetch inquiries: %w", err)
		}
		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(list)
		}
		if len(list) == 0 {
			fmt.Println("no inquiries")
			return nil
		}
		fmt.Println(inquiryTable(list))
		return nil
	},
}

func inquiryTable(list []content.Inquiry) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("DATE", "NAME", "EMAIL", "COMPANY", "TYPE", "STATUS")
	for _, in := range list {
		company := in.Company
		if company == "" {
			company = "-"
		}
		t.Row(in.CreatedAt.Local().Format(time.DateOnly), in.Name, in.Email, company, in.InquiryType, in.Status)
	}
	return t.String()
}
