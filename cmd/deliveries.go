package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/checkup/internal/store"
)

var deliveriesCmd = &cobra.Command{
	Use:   "deliveries",
	Short: "List delivery outcomes",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		channel, _ := cmd.Flags().GetString("channel")

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		events, err := e.store.EventRepo().QueryDeliveries(cmd.Context(), store.QueryOpts{Limit: limit, Channel: channel})
		if err != nil {
			return fmt.Errorf("query deliveries: %w", err)
		}

		w := cmd.OutOrStdout()
		if len(events) == 0 {
			fmt.Fprintln(w, "No deliveries recorded.")
			return nil
		}

		fmt.Fprintf(w, "%-5s  %-19s  %-9s  %-8s  %-15s  %-7s  %s\n",
			"ID", "Timestamp", "Channel", "Status", "Reason", "Ms", "Error")
		fmt.Fprintln(w, strings.Repeat("─", 100))
		for _, ev := range events {
			fmt.Fprintf(w, "%-5d  %-19s  %-9s  %-8s  %-15s  %-7d  %s\n",
				ev.ID,
				ev.Timestamp.Local().Format("2006-01-02 15:04:05"),
				ev.Channel,
				ev.Status,
				ev.Reason,
				ev.LatencyMs,
				truncate(ev.ErrorMessage, 40),
			)
		}
		return nil
	},
}

func init() {
	deliveriesCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	deliveriesCmd.Flags().String("channel", "", "Filter by channel (email, webhook, docstore)")
}
