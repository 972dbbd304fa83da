// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"

	"github.com/pdiddy/pddikti/internal/pddikti"
	"github.com/pdiddy/pddikti/internal/runner"
	"github.com/pdiddy/pddikti/pkg/types"
)

// session is the client surface the commands use.
type session interface {
	runner.Searcher
	SearchEach(ctx context.Context, query string) (types.SearchAllResult, error)
	SearchStudents(ctx context.Context, query string) ([]types.Student, error)
	SearchLecturers(ctx context.Context, query string) ([]types.Lecturer, error)
	SearchInstitutions(ctx context.Context, query string) ([]types.Institution, error)
	SearchPrograms(ctx context.Context, query string) ([]types.StudyProgram, error)
	StudentDetail(ctx context.Context, id string) (types.StudentDetail, error)
}

// openSession opens a client session from the resolved configuration.
// Tests replace it with a stub.
var openSession = func() (session, error) {
	c, err := pddikti.Open(clientConfig(), pddikti.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return c, nil
}

// openSearcher adapts openSession to the runner's default search.
func openSearcher() (runner.Searcher, error) {
	return openSession()
}
