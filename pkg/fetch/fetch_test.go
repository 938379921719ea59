package fetch

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatest(t *testing.T) {
	t.Run("chamada única é entregue", func(t *testing.T) {
		l := NewLatest[string]()

		var got string
		l.Do(context.Background(), func(ctx context.Context) (string, error) {
			return "resultado", nil
		}, func(v string, err error) {
			require.NoError(t, err)
			got = v
		})

		assert.Equal(t, "resultado", got)
		assert.EqualValues(t, 1, l.Generation())
	})

	t.Run("resposta obsoleta é descartada", func(t *testing.T) {
		l := NewLatest[string]()

		firstStarted := make(chan struct{})
		release := make(chan struct{})

		var mu sync.Mutex
		var delivered []string

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Do(context.Background(), func(ctx context.Context) (string, error) {
				close(firstStarted)
				<-release
				return "antiga", nil
			}, func(v string, err error) {
				mu.Lock()
				delivered = append(delivered, v)
				mu.Unlock()
			})
		}()

		// Segunda busca inicia enquanto a primeira ainda está em voo
		<-firstStarted
		l.Do(context.Background(), func(ctx context.Context) (string, error) {
			return "nova", nil
		}, func(v string, err error) {
			mu.Lock()
			delivered = append(delivered, v)
			mu.Unlock()
		})

		close(release)
		wg.Wait()

		assert.Equal(t, []string{"nova"}, delivered)
		assert.EqualValues(t, 2, l.Generation())
	})

	t.Run("erro de chamada obsoleta também é descartado", func(t *testing.T) {
		l := NewLatest[int]()

		started := make(chan struct{})
		release := make(chan struct{})

		calls := 0
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Do(context.Background(), func(ctx context.Context) (int, error) {
				close(started)
				<-release
				return 0, context.Canceled
			}, func(int, error) {
				calls++
			})
		}()

		<-started
		l.Do(context.Background(), func(ctx context.Context) (int, error) {
			return 42, nil
		}, func(v int, err error) {
			calls++
			require.NoError(t, err)
			assert.Equal(t, 42, v)
		})

		close(release)
		wg.Wait()

		assert.Equal(t, 1, calls)
	})
}
