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

// kindCommand builds a command that searches a single record type. Unlike
// search, it requires a query.
func kindCommand(use, short string, aliases []string, kind pddikti.Kind) *cobra.Command {
	return &cobra.Command{
		Use:     use + " <query>",
		Short:   short,
		Aliases: aliases,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.TrimSpace(strings.Join(args, " "))
			if query == "" {
				return pddikti.ErrEmptyQuery
			}
			format, err := outputFormat()
			if err != nil {
				return err
			}
			ctx := logger.WithContext(cmd.Context())
			return runner.Do(ctx, openSession, kindCall(kind, false, query), format, cmd.OutOrStdout())
		},
	}
}

var studentCmd = kindCommand("student", "Search students (mahasiswa) by name or NIM", []string{"mahasiswa", "mhs"}, pddikti.KindStudent)

var studentShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show the full record of a student by id",
	Long: `Show fetches the detail record for a student id taken from a search
result (the "id" field, not the NIM).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := outputFormat()
		if err != nil {
			return err
		}
		id := args[0]
		ctx := logger.WithContext(cmd.Context())
		return runner.Do(ctx, openSession, func(ctx context.Context, s session) (any, error) {
			d, err := s.StudentDetail(ctx, id)
			if err != nil {
				return nil, fmt.Errorf("student %s: %w", id, err)
			}
			return d, nil
		}, format, cmd.OutOrStdout())
	},
}

func init() {
	studentCmd.AddCommand(studentShowCmd)

	rootCmd.AddCommand(studentCmd)
	rootCmd.AddCommand(kindCommand("lecturer", "Search lecturers (dosen) by name or NIDN", []string{"dosen"}, pddikti.KindLecturer))
	rootCmd.AddCommand(kindCommand("institution", "Search institutions (perguruan tinggi) by name", []string{"pt"}, pddikti.KindInstitution))
	rootCmd.AddCommand(kindCommand("program", "Search study programs (prodi) by name", []string{"prodi"}, pddikti.KindProgram))
}
