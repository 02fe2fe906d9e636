package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Skufu/medadvisor/internal/lookup"
)

func newMedicationCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "medication <name>",
		Short: "Show reference information for a medication",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) < 1 {
				fmt.Fprintln(out, "Error: Please provide medication name")
				return nil
			}

			info, failure := lookup.Medication(a.store, args[0])
			if failure != nil {
				return printJSON(out, failure)
			}
			return printJSON(out, info)
		},
	}
}

func newFirstAidCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "firstaid <situation>",
		Short: "Show first-aid steps for an emergency situation",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) < 1 {
				fmt.Fprintln(out, "Error: Please provide situation")
				return nil
			}

			advice, failure := lookup.FirstAid(args[0])
			if failure != nil {
				return printJSON(out, failure)
			}
			return printJSON(out, advice)
		},
	}
}

func newChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat <message>",
		Short: "Get a canned assistant reply for a message",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) < 1 {
				fmt.Fprintln(out, "Error: Please provide message")
				return nil
			}
			fmt.Fprintln(out, lookup.ChatReply(args[0]))
			return nil
		},
	}
}

func newKnowledgeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "knowledge",
		Short: "List the symptoms, conditions, medications and situations the advisor knows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd.OutOrStdout(), lookup.NewIndex(a.store))
		},
	}
}
