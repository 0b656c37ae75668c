package auto

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	json4 "github.com/elmcodec/json4"
)

func TestCacheKeyDistinguishesStrategyTypeAndExtras(t *testing.T) {
	a := cacheKey(PascalCase, "Foo", "")
	b := cacheKey(CamelCase, "Foo", "")
	c := cacheKey(PascalCase, "Bar", "")
	d := cacheKey(PascalCase, "Foo", "h1")
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, a, d)
}

func TestGetOrCreateRunsFactoryOnce(t *testing.T) {
	c := newCoderCache()
	calls := 0
	factory := func() CoderPair {
		calls++
		return CoderPair{Encode: func(any) json4.Json { return json4.Null() }}
	}
	c.GetOrCreate("k", factory)
	c.GetOrCreate("k", factory)
	assert.Equal(t, 1, calls)
}

func TestPeekDoesNotTriggerFactory(t *testing.T) {
	c := newCoderCache()
	_, ok := c.peek("missing")
	assert.False(t, ok)

	c.GetOrCreate("present", func() CoderPair {
		return CoderPair{Encode: func(any) json4.Json { return json4.Null() }}
	})
	pair, ok := c.peek("present")
	assert.True(t, ok)
	assert.NotNil(t, pair.Encode)
}

func TestGetOrCreateConcurrentCallersShareOneBuild(t *testing.T) {
	c := newCoderCache()
	var calls int
	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.GetOrCreate("shared", func() CoderPair {
				mu.Lock()
				calls++
				mu.Unlock()
				return CoderPair{Encode: func(any) json4.Json { return json4.Null() }}
			})
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, calls)
}
