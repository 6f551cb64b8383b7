package matchstring

import (
	"sync"
)

// GrammarCache provides thread-safe caching of compiled grammars keyed
// by the grammar document text. Compilation of a given document happens
// once, even under concurrent access; later lookups share the compiled
// Grammar.
//
// Sharing a cached Grammar shares its capture destinations, so callers
// that read captures concurrently should compile per goroutine instead
// of going through the cache.
type GrammarCache struct {
	cache sync.Map // map[string]*grammarCacheEntry
}

type grammarCacheEntry struct {
	once    sync.Once
	grammar *Grammar
	err     error
}

// NewGrammarCache creates an empty grammar cache.
func NewGrammarCache() *GrammarCache {
	return &GrammarCache{}
}

// GetOrCompile returns the cached grammar for doc, compiling it against
// vocab on first use. A failed compilation is cached too: retrying the
// same malformed document returns the same error without recompiling.
func (gc *GrammarCache) GetOrCompile(doc string, vocab *Vocabulary) (*Grammar, error) {
	actual, _ := gc.cache.LoadOrStore(doc, &grammarCacheEntry{})
	entry := actual.(*grammarCacheEntry)
	entry.once.Do(func() {
		entry.grammar, entry.err = CompileGrammar(doc, vocab)
	})
	return entry.grammar, entry.err
}

// Get retrieves the cached grammar for doc if it has been compiled.
func (gc *GrammarCache) Get(doc string) (*Grammar, bool) {
	v, ok := gc.cache.Load(doc)
	if !ok {
		return nil, false
	}
	entry := v.(*grammarCacheEntry)
	if entry.grammar == nil {
		return nil, false
	}
	return entry.grammar, true
}

// Delete removes the cache entry for doc.
func (gc *GrammarCache) Delete(doc string) {
	gc.cache.Delete(doc)
}

// Clear removes all cache entries.
func (gc *GrammarCache) Clear() {
	gc.cache = sync.Map{}
}
