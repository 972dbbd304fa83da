// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pddikti/internal/pddikti"
	"github.com/pdiddy/pddikti/internal/runner"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search every record type for a name or keyword",
	Long: `Search queries PDDIKTI for students, lecturers, institutions, and study
programs matching the query and prints the result.

The query is taken from --query or the positional arguments. With neither,
the built-in default name is searched. Use --kind to restrict the search to
one record type, or --fanout to query each record type's endpoint
concurrently instead of the combined endpoint.`,
	Args: cobra.ArbitraryArgs,
	RunE: runSearch,
}

func addSearchFlags(cmd *cobra.Command) {
	cmd.Flags().String("query", "", "search term (default: the built-in name)")
	cmd.Flags().String("kind", string(pddikti.KindAll), "record type: all, mahasiswa, dosen, pt, or prodi")
	cmd.Flags().Bool("fanout", false, "query each record type's endpoint concurrently (kind all only)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := queryFromFlags(cmd, args)
	if query == "" {
		query = runner.DefaultQuery
	}

	kindFlag, _ := cmd.Flags().GetString("kind")
	kind, err := pddikti.ParseKind(kindFlag)
	if err != nil {
		return err
	}
	fanout, _ := cmd.Flags().GetBool("fanout")
	if fanout && kind != pddikti.KindAll {
		return fmt.Errorf("--fanout only applies to --kind all")
	}

	format, err := outputFormat()
	if err != nil {
		return err
	}

	ctx := logger.WithContext(cmd.Context())
	out := cmd.OutOrStdout()

	if kind == pddikti.KindAll && !fanout {
		return runner.Run(ctx, openSearcher, query, format, out)
	}
	return runner.Do(ctx, openSession, kindCall(kind, fanout, query), format, out)
}

// kindCall returns the session call for a kind search.
func kindCall(kind pddikti.Kind, fanout bool, query string) func(context.Context, session) (any, error) {
	return func(ctx context.Context, s session) (any, error) {
		switch kind {
		case pddikti.KindStudent:
			return s.SearchStudents(ctx, query)
		case pddikti.KindLecturer:
			return s.SearchLecturers(ctx, query)
		case pddikti.KindInstitution:
			return s.SearchInstitutions(ctx, query)
		case pddikti.KindProgram:
			return s.SearchPrograms(ctx, query)
		}
		if fanout {
			return s.SearchEach(ctx, query)
		}
		return s.SearchAll(ctx, query)
	}
}

// queryFromFlags returns --query, or the positional arguments joined by
// spaces when --query is unset.
func queryFromFlags(cmd *cobra.Command, args []string) string {
	query, _ := cmd.Flags().GetString("query")
	if query == "" && len(args) > 0 {
		query = strings.Join(args, " ")
	}
	return strings.TrimSpace(query)
}

func init() {
	addSearchFlags(searchCmd)
	rootCmd.AddCommand(searchCmd)
}
