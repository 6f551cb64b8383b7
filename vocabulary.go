package matchstring

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

///////////////////////////////////////////////////////////////////////////////
// Errors
///////////////////////////////////////////////////////////////////////////////

var (
	ErrTokenAlreadyRegistered = errors.New("a token with this name is already registered")
	ErrTokenNotRegistered     = errors.New("no token registered under this name")
	ErrEmptyTokenName         = errors.New("token name must not be empty")
)

///////////////////////////////////////////////////////////////////////////////
// Vocabulary
///////////////////////////////////////////////////////////////////////////////

// Vocabulary is a registry of named tokens consumed by the grammar
// front-end: a grammar document refers to tokens by name, and the
// Vocabulary supplies the typed Token value behind each name.
//
// Registration erases the token's output type; the stored entry keeps
// typed constructors for reference, scalar-capture, and
// collection-capture nodes so that grammar captures stay fully typed.
//
// A Vocabulary is safe for concurrent use.
type Vocabulary struct {
	mu      sync.RWMutex
	entries map[string]*vocabEntry
}

// vocabEntry holds the type-erased constructors for one named token.
type vocabEntry struct {
	ref       func() Node
	capScalar func() (Node, destSlot)
	capList   func() (Node, destSlot)
	valType   reflect.Type
}

// NewVocabulary creates an empty vocabulary.
func NewVocabulary() *Vocabulary {
	return &Vocabulary{entries: make(map[string]*vocabEntry)}
}

// RegisterToken registers tok under name. The token is validated up
// front so that grammar compilation can assume every vocabulary entry
// is well formed.
func RegisterToken[T any](v *Vocabulary, name string, tok *Token[T]) error {
	if name == "" {
		return ErrEmptyTokenName
	}
	if err := tok.validate(); err != nil {
		return fmt.Errorf("token %q: %w", name, err)
	}

	entry := &vocabEntry{
		ref: func() Node { return Ref(tok) },
		capScalar: func() (Node, destSlot) {
			d := NewDest[T]()
			return Capture(d, tok), d
		},
		capList: func() (Node, destSlot) {
			l := NewList[T]()
			return CaptureAll(l, tok), l
		},
		valType: reflect.TypeOf((*T)(nil)).Elem(),
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if _, ok := v.entries[name]; ok {
		return fmt.Errorf("%w: %q", ErrTokenAlreadyRegistered, name)
	}
	v.entries[name] = entry
	return nil
}

// lookup returns the entry for name.
func (v *Vocabulary) lookup(name string) (*vocabEntry, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	entry, ok := v.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTokenNotRegistered, name)
	}
	return entry, nil
}

// TokenType returns the output type of the token registered under
// name.
func (v *Vocabulary) TokenType(name string) (reflect.Type, error) {
	entry, err := v.lookup(name)
	if err != nil {
		return nil, err
	}
	return entry.valType, nil
}

// Names returns the registered token names, in no particular order.
func (v *Vocabulary) Names() []string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	names := make([]string, 0, len(v.entries))
	for name := range v.entries {
		names = append(names, name)
	}
	return names
}

// DefaultVocabulary returns a fresh vocabulary preloaded with the
// built-in token library under the conventional names: num, hex, oct,
// bin (uint64 captures) and alpha, alnum, word, ws (string captures).
func DefaultVocabulary() *Vocabulary {
	v := NewVocabulary()
	// The built-ins are statically well formed; registration cannot fail.
	_ = RegisterToken(v, NumTokenName, Num)
	_ = RegisterToken(v, HexTokenName, Hex)
	_ = RegisterToken(v, OctTokenName, Oct)
	_ = RegisterToken(v, BinTokenName, Bin)
	_ = RegisterToken(v, AlphaTokenName, Alpha)
	_ = RegisterToken(v, AlnumTokenName, Alnum)
	_ = RegisterToken(v, WordTokenName, Word)
	_ = RegisterToken(v, WhitespaceTokenName, Whitespace)
	return v
}
