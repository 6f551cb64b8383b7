package matchstring

// Vocabulary names for the built-in token library.
const (
	NumTokenName        = "num"
	HexTokenName        = "hex"
	OctTokenName        = "oct"
	BinTokenName        = "bin"
	AlphaTokenName      = "alpha"
	AlnumTokenName      = "alnum"
	WordTokenName       = "word"
	WhitespaceTokenName = "ws"
)

// Keys recognized in JSON grammar documents.
const (
	GrammarLiteralKey     = "lit"
	GrammarTokenKey       = "token"
	GrammarCaptureKey     = "cap"
	GrammarSequenceKey    = "seq"
	GrammarAlternationKey = "alt"
	GrammarRepetitionKey  = "rep"
)

// Subkeys of a grammar capture object.
const (
	GrammarCaptureNameKey  = "name"
	GrammarCaptureTokenKey = "token"
)

// Subkeys of a grammar repetition object.
const (
	GrammarRepetitionOfKey  = "of"
	GrammarRepetitionSepKey = "sep"
	GrammarRepetitionMinKey = "min"
)
