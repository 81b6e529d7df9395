package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/elfsternberg/wpslug"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wpslug [title]",
		Short:         "Turn titles into URL-safe slugs",
		Long:          "Turns titles into URL-safe slugs. Arguments form one title; without arguments, each stdin line is slugified separately.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, args, wpslug.Slugify)
		},
	}

	rootCmd.AddCommand(newWordsCommand())

	return rootCmd
}

func newWordsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "words [title]",
		Short: "Print the sanitized words of a title, one per line",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, args, func(title string) string {
				return strings.Join(wpslug.Sanitize(title), "\n")
			})
		},
	}
}

// emit applies fn to the title formed by joining args, or to each stdin line
// when no args are given, writing one result per line.
func emit(cmd *cobra.Command, args []string, fn func(string) string) error {
	if len(args) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), fn(strings.Join(args, " ")))
		return nil
	}
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		fmt.Fprintln(cmd.OutOrStdout(), fn(scanner.Text()))
	}
	return scanner.Err()
}
