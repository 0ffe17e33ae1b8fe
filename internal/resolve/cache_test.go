package resolve

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"newsletter_pipeline/internal/domain"
)

func successResult(url string) domain.ResolvedLink {
	return domain.ResolvedLink{OriginalURL: url, ResolvedURL: &url, Status: domain.ResolveSuccess}
}

func TestCache_RunsOncePerKey(t *testing.T) {
	cache := NewCache()
	var calls int

	for i := 0; i < 3; i++ {
		got := cache.Do("https://example.com/a", func() domain.ResolvedLink {
			calls++
			return successResult("https://example.com/a")
		})
		assert.Equal(t, domain.ResolveSuccess, got.Status)
	}

	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, cache.Size())
	assert.Equal(t, 2, cache.Hits())
}

func TestCache_DistinctKeys(t *testing.T) {
	cache := NewCache()
	var calls int

	cache.Do("a", func() domain.ResolvedLink { calls++; return successResult("a") })
	cache.Do("b", func() domain.ResolvedLink { calls++; return successResult("b") })

	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, cache.Size())
	assert.Equal(t, 0, cache.Hits())
}

func TestCache_CachesFailures(t *testing.T) {
	cache := NewCache()
	var calls int

	for i := 0; i < 2; i++ {
		got := cache.Do("https://dead.example", func() domain.ResolvedLink {
			calls++
			return domain.ResolvedLink{OriginalURL: "https://dead.example", Status: domain.ResolveTimeout}
		})
		assert.Equal(t, domain.ResolveTimeout, got.Status)
	}

	assert.Equal(t, 1, calls)
}

func TestCache_ConcurrentCallersShareOneResolution(t *testing.T) {
	cache := NewCache()
	var calls atomic.Int32

	const (
		keys    = 4
		callers = 25
	)

	var wg sync.WaitGroup
	for k := 0; k < keys; k++ {
		key := fmt.Sprintf("https://example.com/%d", k)
		for c := 0; c < callers; c++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				got := cache.Do(key, func() domain.ResolvedLink {
					calls.Add(1)
					return successResult(key)
				})
				assert.Equal(t, key, got.OriginalURL)
			}()
		}
	}
	wg.Wait()

	assert.Equal(t, int32(keys), calls.Load())
	assert.Equal(t, keys, cache.Size())
	assert.Equal(t, keys*(callers-1), cache.Hits())
}

func TestIsJunk(t *testing.T) {
	junk := []string{
		"https://example.com/unsubscribe?u=1",
		"https://example.com/email_preferences",
		"mailto:editor@example.com",
		"tel:+15551234567",
		"https://cdn.example.com/logo.png",
		"https://example.com/cdn-cgi/l/email-protection",
		"https://example.com/privacy-policy",
	}
	for _, u := range junk {
		assert.True(t, IsJunk(u), u)
	}

	clean := []string{
		"https://example.com/blog/post",
		"https://github.com/golang/go",
		"https://link.example.com/c?id=1",
	}
	for _, u := range clean {
		assert.False(t, IsJunk(u), u)
	}
}

func TestIsTracking(t *testing.T) {
	tracking := []string{
		"https://link.mail.example.com/x/abc",
		"https://example.com/c?id=1",
		"https://example.com/click/9f2",
		"https://t.example.com/redirect/xyz",
	}
	for _, u := range tracking {
		assert.True(t, IsTracking(u), u)
	}

	direct := []string{
		"https://example.com/blog/post",
		"https://github.com/golang/go",
	}
	for _, u := range direct {
		assert.False(t, IsTracking(u), u)
	}
}
