package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Skufu/medadvisor/internal/advisor"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <symptom1,symptom2,...> [age] [gender]",
		Short: "Analyze a comma-separated list of symptoms",
		Long: `Analyze scores the reported symptoms against the knowledge base and prints
possible conditions, an urgency level, recommendations and warnings as JSON.

Symptoms are split on commas and not trimmed. Unknown symptoms are ignored.

Example:
  medadvisor analyze "chest pain,shortness of breath" 54 male`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) < 1 {
				fmt.Fprintln(out, "Error: Please provide symptoms")
				return nil
			}

			req := advisor.Request{Symptoms: strings.Split(args[0], ",")}
			if len(args) > 1 {
				age, err := strconv.Atoi(args[1])
				if err != nil {
					fmt.Fprintln(out, "Error: age must be an integer")
					return nil
				}
				req.Age = &age
			}
			if len(args) > 2 {
				req.Gender = args[2]
			}

			res := a.analyzer.Analyze(req)
			if res.Failed() {
				return printJSON(out, res.Failure)
			}
			return printJSON(out, res.Result)
		},
	}
}
