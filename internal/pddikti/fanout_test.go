// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pddikti

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func perKindServer(t *testing.T, failKind string) *httptest.Server {
	t.Helper()
	bodies := map[string]string{
		"mhs":   `[{"id":"m1","nama":"BUDI","nim":"001"},{"id":"m2","nama":"BUDIMAN","nim":"002"}]`,
		"dosen": `[{"id":"d1","nama":"BUDI SANTOSO","nidn":"77"}]`,
		"pt":    `[]`,
		"prodi": `null`,
	}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/pencarian/"), "/")
		kind := parts[0]
		if kind == failKind {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		body, ok := bodies[kind]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprint(w, body)
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestSearchEachMerges(t *testing.T) {
	ts := perKindServer(t, "")
	c := openTestClient(t, ts)

	got, err := c.SearchEach(context.Background(), "budi")
	require.NoError(t, err)

	assert.Len(t, got.Students, 2)
	assert.Len(t, got.Lecturers, 1)
	assert.NotNil(t, got.Institutions)
	assert.NotNil(t, got.StudyPrograms)
	assert.Equal(t, 3, got.Len())
}

func TestSearchEachPropagatesFailure(t *testing.T) {
	ts := perKindServer(t, "dosen")
	c := openTestClient(t, ts)

	got, err := c.SearchEach(context.Background(), "budi")
	require.Error(t, err)
	assert.True(t, got.IsEmpty())

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "/pencarian/dosen/budi", apiErr.Endpoint)
}

func TestSearchEachEmptyQuery(t *testing.T) {
	ts := perKindServer(t, "")
	c := openTestClient(t, ts)

	_, err := c.SearchEach(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyQuery)
}
