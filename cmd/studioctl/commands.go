package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wavehouse/studio-booking/internal/dto"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status <email>",
		Short: "Show a client's verification status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runCtx, cancel, a, err := ctx.withTimeout(cmd.Context())
			if err != nil {
				return err
			}
			defer cancel()

			out, err := a.CheckClient.Execute(runCtx, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(cmd.OutOrStdout(),
				[]string{"Field", "Value"},
				checkClientRows(out),
				[]columnAlignment{alignLeft, alignRight},
			))
			return nil
		},
	}
}

func checkClientRows(out *dto.CheckClientDTO) [][]string {
	return [][]string{
		{"Exists", strconv.FormatBool(out.ClientExists)},
		{"Status", out.VerificationStatus},
		{"Verified", strconv.FormatBool(out.IsVerified)},
		{"Total bookings", strconv.Itoa(out.TotalBookings)},
		{"First time", strconv.FormatBool(out.IsFirstTime)},
		{"Has verified booking", strconv.FormatBool(out.HasVerifiedBooking)},
	}
}

func newVerifyCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <email>",
		Short: "Mark a client verified and release their pending bookings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runCtx, cancel, a, err := ctx.withTimeout(cmd.Context())
			if err != nil {
				return err
			}
			defer cancel()

			out, err := a.CompleteVerify.Execute(runCtx, args[0], "studioctl")
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s verified, %d booking(s) moved to pending_confirmation\n", args[0], out.UpdatedBookings)
			return nil
		},
	}
}

func newBookingsCommand(ctx *commandContext) *cobra.Command {
	var status, email string
	var limit int

	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "List booking requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			runCtx, cancel, a, err := ctx.withTimeout(cmd.Context())
			if err != nil {
				return err
			}
			defer cancel()

			bookings, err := a.ListBookings.Execute(runCtx, status, email, limit)
			if err != nil {
				return err
			}
			if len(bookings) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No bookings found")
				return nil
			}

			rows := make([][]string, 0, len(bookings))
			for _, b := range bookings {
				rows = append(rows, []string{
					strconv.FormatUint(uint64(b.ID), 10),
					b.Email,
					b.Date,
					b.StartTime + "-" + b.EndTime,
					b.ServiceType,
					b.Status,
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(cmd.OutOrStdout(),
				[]string{"ID", "Email", "Date", "Time", "Service", "Status"},
				rows,
				[]columnAlignment{alignRight},
			))
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by booking status")
	cmd.Flags().StringVar(&email, "email", "", "Filter by client email")
	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum rows to show")

	return cmd
}
