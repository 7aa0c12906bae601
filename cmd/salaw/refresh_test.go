package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/mokoena/salaw"
	main "github.com/mokoena/salaw/cmd/salaw"
	"github.com/mokoena/salaw/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("refreshes and prints the summary", func(t *testing.T) {
		t.Parallel()

		catalog := salaw.DefaultCatalog()
		refreshed := false
		store := &mock.DocumentStore{
			RefreshFn: func(ctx context.Context) error {
				refreshed = true
				return nil
			},
			AvailableFn: func() []salaw.Resource { return catalog.All()[:2] },
			StatusesFn: func() []salaw.ResourceStatus {
				out := make([]salaw.ResourceStatus, len(catalog))
				for i, res := range catalog {
					out[i] = salaw.ResourceStatus{Resource: res}
				}
				return out
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Logger: discardLogger(),
			Store:  store,
		}

		cmd := &main.RefreshCmd{}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.True(t, refreshed)
		assert.Contains(t, stdout.String(), "refreshed: 2/17 documents available")
	})

	t.Run("returns error when refresh fails", func(t *testing.T) {
		t.Parallel()

		store := &mock.DocumentStore{
			RefreshFn: func(ctx context.Context) error {
				return salaw.Errorf(salaw.EINTERNAL, "list cached documents: permission denied")
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Logger: discardLogger(),
			Store:  store,
		}

		cmd := &main.RefreshCmd{}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Empty(t, stdout.String())
	})
}
