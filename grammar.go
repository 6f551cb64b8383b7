package matchstring

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

///////////////////////////////////////////////////////////////////////////////
// Errors
///////////////////////////////////////////////////////////////////////////////

var (
	ErrInvalidGrammarDoc    = errors.New("grammar document is not valid JSON")
	ErrInvalidGrammarNode   = errors.New("grammar node must be an object with exactly one pattern key")
	ErrUnknownGrammarKey    = errors.New("unknown grammar node key")
	ErrDuplicateCaptureName = errors.New("capture name used more than once in grammar")
	ErrEmptyCaptureName     = errors.New("capture name must not be empty")
	ErrBadRepetitionMin     = errors.New("repetition min must be 0 or 1")
	ErrUnknownCapture       = errors.New("no capture with this name in grammar")
	ErrCaptureTypeMismatch  = errors.New("capture has a different type than requested")
)

///////////////////////////////////////////////////////////////////////////////
// Grammar
///////////////////////////////////////////////////////////////////////////////

// Grammar is a compiled pattern built from a declarative JSON document
// plus its named capture destinations. It is the package's stand-in for
// an inline pattern syntax: the document is compiled once and the
// resulting Grammar is matched against many inputs.
//
// A grammar document is a tree of single-key objects:
//
//	{"lit":"["}                                   literal text
//	{"token":"num"}                               vocabulary token
//	{"cap":{"name":"n","token":"num"}}            capture into slot "n"
//	{"seq":[ ...nodes... ]}                       sequence
//	{"alt":[ ...nodes... ]}                       ordered alternation
//	{"rep":{"of":node,"sep":",","min":0}}         repetition
//
// A capture nested under a repetition collects one value per iteration;
// any other capture binds a single value. Captures are read back by
// name with Uint, Text, Uints, and Texts after a successful Match.
type Grammar struct {
	pattern *Pattern
	slots   map[string]destSlot
}

// CompileGrammar compiles doc against vocab. A nil vocab uses the
// default vocabulary of built-in tokens.
func CompileGrammar(doc string, vocab *Vocabulary) (*Grammar, error) {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	if !gjson.Valid(doc) {
		return nil, ErrInvalidGrammarDoc
	}

	gb := &grammarBuilder{vocab: vocab, slots: make(map[string]destSlot)}
	root, err := gb.build(gjson.Parse(doc), false)
	if err != nil {
		return nil, err
	}

	pattern, err := Compile(root)
	if err != nil {
		return nil, err
	}
	return &Grammar{pattern: pattern, slots: gb.slots}, nil
}

// Match reports whether the grammar's pattern accounts for the entire
// input, binding the named captures on success.
func (g *Grammar) Match(input string) bool {
	return g.pattern.Match(input)
}

// Diagnose matches like Match and reports the furthest position reached.
func (g *Grammar) Diagnose(input string) Diagnosis {
	return g.pattern.Diagnose(input)
}

// Pattern exposes the underlying compiled pattern.
func (g *Grammar) Pattern() *Pattern {
	return g.pattern
}

// CaptureNames returns the capture names declared by the grammar, in no
// particular order.
func (g *Grammar) CaptureNames() []string {
	names := make([]string, 0, len(g.slots))
	for name := range g.slots {
		names = append(names, name)
	}
	return names
}

// Uint reads the scalar uint64 capture bound under name.
func (g *Grammar) Uint(name string) (uint64, error) {
	d, err := grammarSlot[*Dest[uint64]](g, name)
	if err != nil {
		return 0, err
	}
	v, bound := d.Get()
	if !bound {
		return 0, fmt.Errorf("%w: %q", ErrUnboundDestination, name)
	}
	return v, nil
}

// Text reads the scalar string capture bound under name.
func (g *Grammar) Text(name string) (string, error) {
	d, err := grammarSlot[*Dest[string]](g, name)
	if err != nil {
		return "", err
	}
	v, bound := d.Get()
	if !bound {
		return "", fmt.Errorf("%w: %q", ErrUnboundDestination, name)
	}
	return v, nil
}

// Uints reads the uint64 collection capture bound under name.
func (g *Grammar) Uints(name string) ([]uint64, error) {
	l, err := grammarSlot[*List[uint64]](g, name)
	if err != nil {
		return nil, err
	}
	v, bound := l.Get()
	if !bound {
		return nil, fmt.Errorf("%w: %q", ErrUnboundDestination, name)
	}
	return v, nil
}

// Texts reads the string collection capture bound under name.
func (g *Grammar) Texts(name string) ([]string, error) {
	l, err := grammarSlot[*List[string]](g, name)
	if err != nil {
		return nil, err
	}
	v, bound := l.Get()
	if !bound {
		return nil, fmt.Errorf("%w: %q", ErrUnboundDestination, name)
	}
	return v, nil
}

func grammarSlot[S destSlot](g *Grammar, name string) (S, error) {
	var zero S
	s, ok := g.slots[name]
	if !ok {
		return zero, fmt.Errorf("%w: %q", ErrUnknownCapture, name)
	}
	typed, ok := s.(S)
	if !ok {
		return zero, fmt.Errorf("%w: %q", ErrCaptureTypeMismatch, name)
	}
	return typed, nil
}

///////////////////////////////////////////////////////////////////////////////
// Builder
///////////////////////////////////////////////////////////////////////////////

type grammarBuilder struct {
	vocab *Vocabulary
	slots map[string]destSlot
}

func (gb *grammarBuilder) build(res gjson.Result, underRep bool) (Node, error) {
	if !res.IsObject() {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidGrammarNode, res.Type)
	}
	obj := res.Map()
	if len(obj) != 1 {
		return nil, fmt.Errorf("%w: got %d keys", ErrInvalidGrammarNode, len(obj))
	}

	for key, val := range obj {
		switch key {
		case GrammarLiteralKey:
			return Literal(val.String()), nil
		case GrammarTokenKey:
			entry, err := gb.vocab.lookup(val.String())
			if err != nil {
				return nil, err
			}
			return entry.ref(), nil
		case GrammarCaptureKey:
			return gb.buildCapture(val, underRep)
		case GrammarSequenceKey:
			return gb.buildList(val, underRep, Sequence)
		case GrammarAlternationKey:
			return gb.buildList(val, underRep, OneOf)
		case GrammarRepetitionKey:
			return gb.buildRepetition(val)
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownGrammarKey, key)
		}
	}
	return nil, ErrInvalidGrammarNode
}

func (gb *grammarBuilder) buildCapture(val gjson.Result, underRep bool) (Node, error) {
	name := val.Get(GrammarCaptureNameKey).String()
	if name == "" {
		return nil, ErrEmptyCaptureName
	}
	if _, exists := gb.slots[name]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateCaptureName, name)
	}

	entry, err := gb.vocab.lookup(val.Get(GrammarCaptureTokenKey).String())
	if err != nil {
		return nil, fmt.Errorf("capture %q: %w", name, err)
	}

	var node Node
	var slot destSlot
	if underRep {
		node, slot = entry.capList()
	} else {
		node, slot = entry.capScalar()
	}
	gb.slots[name] = slot
	return node, nil
}

func (gb *grammarBuilder) buildList(val gjson.Result, underRep bool, combine func(...Node) Node) (Node, error) {
	if !val.IsArray() {
		return nil, fmt.Errorf("%w: expected array", ErrInvalidGrammarNode)
	}
	var elems []Node
	var err error
	val.ForEach(func(_, child gjson.Result) bool {
		var node Node
		node, err = gb.build(child, underRep)
		if err != nil {
			return false
		}
		elems = append(elems, node)
		return true
	})
	if err != nil {
		return nil, err
	}
	return combine(elems...), nil
}

func (gb *grammarBuilder) buildRepetition(val gjson.Result) (Node, error) {
	inner, err := gb.build(val.Get(GrammarRepetitionOfKey), true)
	if err != nil {
		return nil, err
	}

	min := 0
	if m := val.Get(GrammarRepetitionMinKey); m.Exists() {
		min = int(m.Int())
		if min != 0 && min != 1 {
			return nil, fmt.Errorf("%w: got %d", ErrBadRepetitionMin, min)
		}
	}

	sep := val.Get(GrammarRepetitionSepKey)
	// An explicit "sep" key, even an empty one, counts as configured so
	// that Compile can reject the empty separator.
	return &repetitionNode{
		inner:  inner,
		sep:    []rune(sep.String()),
		sepSet: sep.Exists(),
		min:    min,
	}, nil
}
