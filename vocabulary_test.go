package matchstring

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultVocabularyNames(t *testing.T) {
	v := DefaultVocabulary()

	expected := []string{
		NumTokenName, HexTokenName, OctTokenName, BinTokenName,
		AlphaTokenName, AlnumTokenName, WordTokenName, WhitespaceTokenName,
	}
	assert.ElementsMatch(t, expected, v.Names())
}

func TestRegisterTokenRejectsDuplicates(t *testing.T) {
	v := NewVocabulary()

	require.NoError(t, RegisterToken(v, "digits", Num))
	err := RegisterToken(v, "digits", Hex)
	assert.ErrorIs(t, err, ErrTokenAlreadyRegistered)
}

func TestRegisterTokenRejectsEmptyName(t *testing.T) {
	v := NewVocabulary()
	assert.ErrorIs(t, RegisterToken(v, "", Num), ErrEmptyTokenName)
}

func TestRegisterTokenValidatesUpFront(t *testing.T) {
	v := NewVocabulary()
	broken := &Token[string]{Parse: func(run []rune) string { return string(run) }}

	err := RegisterToken(v, "broken", broken)
	assert.ErrorIs(t, err, ErrTokenNilPredicate)
	assert.Empty(t, v.Names())
}

func TestVocabularyLookupUnknown(t *testing.T) {
	v := NewVocabulary()
	_, err := v.lookup("nope")
	assert.ErrorIs(t, err, ErrTokenNotRegistered)
}

func TestVocabularyTokenType(t *testing.T) {
	v := DefaultVocabulary()

	numType, err := v.TokenType(NumTokenName)
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeOf(uint64(0)), numType)

	alphaType, err := v.TokenType(AlphaTokenName)
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeOf(""), alphaType)

	_, err = v.TokenType("nope")
	assert.ErrorIs(t, err, ErrTokenNotRegistered)
}

func TestCustomTokenInVocabulary(t *testing.T) {
	v := DefaultVocabulary()
	dashed := &Token[string]{
		Predicate: func(r rune) bool { return r == '-' || r == '_' },
		Parse:     func(run []rune) string { return string(run) },
		AtLeast:   1,
	}
	require.NoError(t, RegisterToken(v, "dashes", dashed))

	g, err := CompileGrammar(`{"seq":[{"token":"alpha"},{"token":"dashes"},{"token":"alpha"}]}`, v)
	require.NoError(t, err)
	assert.True(t, g.Match("foo--bar"))
	assert.False(t, g.Match("foobar"))
}
