package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vango-dev/routegen/internal/errors"
)

func errorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "errors [code]",
		Short: "Explain error codes",
		Long: `List every error code routegen reports, or explain one of them.

Examples:
  routegen errors
  routegen errors E104`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				listErrorCodes(cmd)
				return nil
			}
			return explainErrorCode(cmd, args[0])
		},
	}
}

func listErrorCodes(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	for _, code := range errors.GetAllCodes() {
		tmpl, _ := errors.GetTemplate(code)
		fmt.Fprintf(out, "%s  %-10s %s\n", code, tmpl.Category, tmpl.Message)
	}
}

func explainErrorCode(cmd *cobra.Command, code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	tmpl, ok := errors.GetTemplate(code)
	if !ok {
		return errors.New("E142").
			WithDetail("Unknown error code '" + code + "'.").
			WithSuggestion("Run 'routegen errors' to list all codes")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %s\n\n", code, tmpl.Message)
	fmt.Fprintf(out, "  %s\n\n", tmpl.Detail)
	fmt.Fprintf(out, "  Category:   %s\n", tmpl.Category)
	fmt.Fprintf(out, "  Learn more: %s\n", tmpl.DocURL)
	return nil
}
