package session

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	kerrors "github.com/PolarWolf314/soundness/internal/errors"
)

// countingPrompt returns the given passwords in order and counts calls.
func countingPrompt(calls *int, passwords ...string) PromptFunc {
	return func() (string, error) {
		pw := passwords[*calls%len(passwords)]
		*calls++
		return pw, nil
	}
}

// cached reports whether the cache answers fingerprint without prompting.
// A miss on a different fingerprint drops the current entry.
func cached(c *Cache, fingerprint string) bool {
	prompted := false
	_, _ = c.GetOrPrompt(fingerprint, func() (string, error) {
		prompted = true
		return "", errors.New("not cached")
	}, func(string) error { return nil })
	return !prompted
}

func acceptOnly(valid string) VerifyFunc {
	return func(password string) error {
		if password != valid {
			return kerrors.ErrAuthentication
		}
		return nil
	}
}

func TestGetOrPromptCachesVerifiedPassword(t *testing.T) {
	cache := New()
	calls := 0
	prompt := countingPrompt(&calls, "correct")

	for i := 0; i < 3; i++ {
		pw, err := cache.GetOrPrompt("fp1", prompt, acceptOnly("correct"))
		if err != nil {
			t.Fatalf("GetOrPrompt failed: %v", err)
		}
		if pw != "correct" {
			t.Errorf("Expected cached password, got %q", pw)
		}
	}
	if calls != 1 {
		t.Errorf("Expected exactly one prompt, got %d", calls)
	}
	if !cached(cache, "fp1") {
		t.Error("Expected cache to be valid for fp1")
	}
}

func TestGetOrPromptRepromptsOnFingerprintChange(t *testing.T) {
	cache := New()
	calls := 0
	prompt := countingPrompt(&calls, "first", "second")

	if _, err := cache.GetOrPrompt("fp1", prompt, func(string) error { return nil }); err != nil {
		t.Fatalf("GetOrPrompt failed: %v", err)
	}

	pw, err := cache.GetOrPrompt("fp2", prompt, func(string) error { return nil })
	if err != nil {
		t.Fatalf("GetOrPrompt failed: %v", err)
	}
	if pw != "second" {
		t.Errorf("Expected a fresh prompt after fingerprint change, got %q", pw)
	}
	if calls != 2 {
		t.Errorf("Expected 2 prompts, got %d", calls)
	}
	if !cached(cache, "fp2") {
		t.Error("New fingerprint should be valid")
	}
	if cached(cache, "fp1") {
		t.Error("Old fingerprint should no longer be valid")
	}
}

func TestGetOrPromptDoesNotCacheFailedVerification(t *testing.T) {
	cache := New()
	calls := 0
	prompt := countingPrompt(&calls, "wrong", "correct")

	_, err := cache.GetOrPrompt("fp1", prompt, acceptOnly("correct"))
	if !errors.Is(err, kerrors.ErrAuthentication) {
		t.Fatalf("Expected ErrAuthentication, got %v", err)
	}
	if cached(cache, "fp1") {
		t.Fatal("Failed password must not be cached")
	}

	pw, err := cache.GetOrPrompt("fp1", prompt, acceptOnly("correct"))
	if err != nil {
		t.Fatalf("GetOrPrompt failed: %v", err)
	}
	if pw != "correct" {
		t.Errorf("Expected correct password, got %q", pw)
	}
}

func TestGetOrPromptWrapsOtherVerifyErrors(t *testing.T) {
	cache := New()
	calls := 0

	_, err := cache.GetOrPrompt("fp", countingPrompt(&calls, "x"), func(string) error {
		return errors.New("cipher exploded")
	})
	if !errors.Is(err, kerrors.ErrAuthentication) {
		t.Errorf("Expected verify failures to surface as ErrAuthentication, got %v", err)
	}
}

func TestGetOrPromptPropagatesPromptError(t *testing.T) {
	cache := New()
	promptErr := errors.New("stdin is not a terminal")
	verified := false

	_, err := cache.GetOrPrompt("fp", func() (string, error) { return "", promptErr }, func(string) error {
		verified = true
		return nil
	})
	if !errors.Is(err, promptErr) {
		t.Errorf("Expected prompt error, got %v", err)
	}
	if verified {
		t.Error("Verify should not run when prompting fails")
	}
}

func TestInvalidateForcesPrompt(t *testing.T) {
	cache := New()
	calls := 0
	prompt := countingPrompt(&calls, "pw")
	accept := func(string) error { return nil }

	_, _ = cache.GetOrPrompt("fp", prompt, accept)
	cache.Invalidate()
	if cached(cache, "fp") {
		t.Fatal("Expected cache to be empty after Invalidate")
	}
	_, _ = cache.GetOrPrompt("fp", prompt, accept)
	if calls != 2 {
		t.Errorf("Expected 2 prompts, got %d", calls)
	}

	// Invalidating an empty cache is a no-op.
	cache.Invalidate()
	cache.Invalidate()
}

func TestGetOrPromptConcurrentCallersPromptOnce(t *testing.T) {
	cache := New()
	var prompts int32
	prompt := func() (string, error) {
		atomic.AddInt32(&prompts, 1)
		return "pw", nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pw, err := cache.GetOrPrompt("fp", prompt, func(string) error { return nil })
			if err != nil || pw != "pw" {
				t.Errorf("Unexpected result %q, %v", pw, err)
			}
		}()
	}
	wg.Wait()

	if got := atomic.LoadInt32(&prompts); got != 1 {
		t.Errorf("Expected a single prompt across concurrent callers, got %d", got)
	}
}

func TestClearDestroysCachedPassword(t *testing.T) {
	cache := New()
	_, _ = cache.GetOrPrompt("fp", func() (string, error) { return "pw", nil }, func(string) error { return nil })

	held := cache.entry.password
	cache.Clear()

	if held.IsAlive() {
		t.Error("Expected the cached password buffer to be destroyed")
	}
	if cached(cache, "fp") {
		t.Error("Expected cache to be empty after Clear")
	}
}

func TestCachedPasswordIsReturnedAsCopy(t *testing.T) {
	cache := New()
	pw, err := cache.GetOrPrompt("fp", func() (string, error) { return "correct horse", nil }, func(string) error { return nil })
	if err != nil {
		t.Fatalf("GetOrPrompt failed: %v", err)
	}

	// The returned string is a copy; later hits must still see the password.
	again, err := cache.GetOrPrompt("fp", func() (string, error) { return "", errors.New("unexpected prompt") }, func(string) error { return nil })
	if err != nil {
		t.Fatalf("Expected a cache hit, got %v", err)
	}
	if again != pw || again != "correct horse" {
		t.Errorf("Cached password = %q, want %q", again, pw)
	}
	if cache.entry.password.IsMutable() {
		t.Error("Cached password buffer should be read-only")
	}
}

func TestEmptyPasswordIsCached(t *testing.T) {
	cache := New()
	calls := 0
	for i := 0; i < 2; i++ {
		pw, err := cache.GetOrPrompt("fp", countingPrompt(&calls, ""), func(string) error { return nil })
		if err != nil || pw != "" {
			t.Fatalf("GetOrPrompt() = %q, %v", pw, err)
		}
	}
	if calls != 1 {
		t.Errorf("Expected the empty password to be cached, got %d prompts", calls)
	}
}
