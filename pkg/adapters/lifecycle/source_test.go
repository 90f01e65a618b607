package lifecycle_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aretw0/introspection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notenik/pkg/adapters/fs"
	nlifecycle "github.com/aretw0/notenik/pkg/adapters/lifecycle"
)

func collect(t *testing.T, src *nlifecycle.ChangeSource) []string {
	t.Helper()
	var got []string
	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-src.Events():
			if !ok {
				return got
			}
			got = append(got, ev.String())
		case <-timeout:
			t.Fatal("events channel not closed")
		}
	}
}

func TestChangeSource_Relays(t *testing.T) {
	changes := make(chan fs.Change, 2)
	changes <- fs.Change{Path: "a.txt", Err: errors.New("gone")}
	changes <- fs.Change{Path: "b.txt", Err: errors.New("still gone")}
	close(changes)

	src := nlifecycle.NewSource(changes, nlifecycle.Options{})
	require.NoError(t, src.Start(context.Background()))

	got := collect(t, src)
	assert.Equal(t, []string{"a.txt: gone", "b.txt: still gone"}, got)

	var intro introspection.Introspectable = src
	assert.Equal(t, nlifecycle.SourceState{Delivered: 2}, intro.State())
	assert.Equal(t, "change-source", src.ComponentType())
}

func TestChangeSource_SkipErrors(t *testing.T) {
	changes := make(chan fs.Change, 1)
	changes <- fs.Change{Path: "a.txt", Err: errors.New("gone")}
	close(changes)

	src := nlifecycle.NewSource(changes, nlifecycle.Options{SkipErrors: true})
	require.NoError(t, src.Start(context.Background()))

	assert.Empty(t, collect(t, src))
	assert.Equal(t, nlifecycle.SourceState{Skipped: 1}, src.State())
}
