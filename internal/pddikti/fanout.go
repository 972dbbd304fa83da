// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pddikti

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/pddikti/pkg/types"
)

// SearchEach queries the four per-kind endpoints concurrently and merges
// them into one result. It is an alternative to SearchAll for deployments
// where the combined endpoint truncates categories. The first failure
// cancels the remaining requests and is returned.
func (c *Client) SearchEach(ctx context.Context, query string) (types.SearchAllResult, error) {
	var out types.SearchAllResult
	q, err := normalizeQuery(query)
	if err != nil {
		return out, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.Students, err = c.SearchStudents(gctx, q)
		return err
	})
	g.Go(func() (err error) {
		out.Lecturers, err = c.SearchLecturers(gctx, q)
		return err
	})
	g.Go(func() (err error) {
		out.Institutions, err = c.SearchInstitutions(gctx, q)
		return err
	})
	g.Go(func() (err error) {
		out.StudyPrograms, err = c.SearchPrograms(gctx, q)
		return err
	})
	if err := g.Wait(); err != nil {
		return types.SearchAllResult{}, err
	}

	out.Normalize()
	return out, nil
}
