// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package runner

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pddikti/internal/render"
	"github.com/pdiddy/pddikti/pkg/types"
)

// stubSearcher records the query it receives and how often it is closed.
type stubSearcher struct {
	result   types.SearchAllResult
	err      error
	closeErr error
	queries  []string
	closed   int
}

func (s *stubSearcher) SearchAll(_ context.Context, query string) (types.SearchAllResult, error) {
	s.queries = append(s.queries, query)
	return s.result, s.err
}

func (s *stubSearcher) Close() error {
	s.closed++
	return s.closeErr
}

func opener(s *stubSearcher) func() (Searcher, error) {
	return func() (Searcher, error) { return s, nil }
}

func destraResult() types.SearchAllResult {
	return types.SearchAllResult{
		Students: []types.Student{{Name: "Destra Aulia Faza Ananda Putra", NIM: "12345"}},
	}
}

func TestRunPrintsResult(t *testing.T) {
	stub := &stubSearcher{result: destraResult()}
	var out bytes.Buffer

	err := Run(context.Background(), opener(stub), DefaultQuery, render.Pretty, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Destra Aulia Faza Ananda Putra")
	assert.Contains(t, out.String(), "12345")
	assert.Equal(t, []string{DefaultQuery}, stub.queries)
	assert.Equal(t, 1, stub.closed)
}

func TestRunPassesQueryUnchanged(t *testing.T) {
	for _, q := range []string{DefaultQuery, "Ilham Riski Wibowo", "  spaced  "} {
		t.Run(q, func(t *testing.T) {
			stub := &stubSearcher{result: destraResult()}
			var out bytes.Buffer

			require.NoError(t, Run(context.Background(), opener(stub), q, render.Pretty, &out))
			assert.Equal(t, []string{q}, stub.queries)
			assert.Equal(t, 1, stub.closed)
			assert.NotEmpty(t, out.String())
		})
	}
}

func TestRunSearchErrorClosesAndPrintsNothing(t *testing.T) {
	searchErr := errors.New("connection refused")
	stub := &stubSearcher{err: searchErr}
	var out bytes.Buffer

	err := Run(context.Background(), opener(stub), DefaultQuery, render.Pretty, &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, searchErr)
	assert.Equal(t, 1, stub.closed)
	assert.Empty(t, out.String())
}

func TestRunOpenError(t *testing.T) {
	openErr := errors.New("bad config")
	var out bytes.Buffer

	err := Run(context.Background(), func() (Searcher, error) { return nil, openErr }, DefaultQuery, render.Pretty, &out)
	assert.ErrorIs(t, err, openErr)
	assert.Empty(t, out.String())
}

func TestRunCloseErrorIsReported(t *testing.T) {
	closeErr := errors.New("close failed")
	stub := &stubSearcher{result: destraResult(), closeErr: closeErr}
	var out bytes.Buffer

	err := Run(context.Background(), opener(stub), DefaultQuery, render.Pretty, &out)
	assert.ErrorIs(t, err, closeErr)
	assert.Equal(t, 1, stub.closed)
}

func TestRunRenderErrorPrintsNothing(t *testing.T) {
	stub := &stubSearcher{result: destraResult()}
	var out bytes.Buffer

	err := Run(context.Background(), opener(stub), DefaultQuery, render.Format("xml"), &out)
	require.Error(t, err)
	assert.Empty(t, out.String())
	assert.Equal(t, 1, stub.closed)
}

type closerOnly struct{ closed bool }

func (c *closerOnly) Close() error { c.closed = true; return nil }

func TestDoWithCustomCall(t *testing.T) {
	sess := &closerOnly{}
	var out bytes.Buffer

	err := Do(context.Background(),
		func() (*closerOnly, error) { return sess, nil },
		func(_ context.Context, c *closerOnly) (any, error) {
			assert.False(t, c.closed, "session must be open during the call")
			return []types.Institution{{Code: "001001", Name: "UNIVERSITAS INDONESIA"}}, nil
		},
		render.Table, &out)
	require.NoError(t, err)
	assert.True(t, sess.closed)
	assert.Contains(t, out.String(), "UNIVERSITAS INDONESIA")
}
