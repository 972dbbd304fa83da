// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package runner performs one scoped query: open a session, call it, close
// the session on every path, and print the result only if the call
// succeeded.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/pdiddy/pddikti/internal/render"
	"github.com/pdiddy/pddikti/pkg/types"
)

// DefaultQuery is the name searched when none is given.
const DefaultQuery = "Destra aulia faza ananda putra"

// Searcher is the part of a session the default search needs.
type Searcher interface {
	SearchAll(ctx context.Context, query string) (types.SearchAllResult, error)
	io.Closer
}

// Run opens a session, searches all record types for query, and writes the
// result to w in format f.
func Run(ctx context.Context, open func() (Searcher, error), query string, f render.Format, w io.Writer) error {
	return Do(ctx, open, func(ctx context.Context, s Searcher) (any, error) {
		return s.SearchAll(ctx, query)
	}, f, w)
}

// Do opens a session with open, passes it to call, and renders the value
// call returns. The session is closed before Do returns whether or not call
// fails. Nothing is written to w unless call and rendering both succeed.
func Do[S io.Closer](ctx context.Context, open func() (S, error), call func(context.Context, S) (any, error), f render.Format, w io.Writer) (err error) {
	log := zerolog.Ctx(ctx)

	session, err := open()
	if err != nil {
		return fmt.Errorf("opening session: %w", err)
	}
	defer func() {
		if cerr := session.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("closing session")
			err = errors.Join(err, fmt.Errorf("closing session: %w", cerr))
		}
	}()

	v, err := call(ctx, session)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := render.Render(&buf, f, v); err != nil {
		return fmt.Errorf("rendering result: %w", err)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	return nil
}
