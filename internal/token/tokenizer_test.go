package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/jsontree/internal/errors"
)

func TestTokenize_Structural(t *testing.T) {
	cases := []struct {
		input string
		want  []Token
	}{
		{"{", []Token{{Kind: CurlyOpen}}},
		{"}", []Token{{Kind: CurlyClose}}},
		{"{}", []Token{{Kind: CurlyOpen}, {Kind: CurlyClose}}},
		{" \t{\n } ", []Token{{Kind: CurlyOpen}, {Kind: CurlyClose}}},
		{"[", []Token{{Kind: SquareOpen}}},
		{"]", []Token{{Kind: SquareClose}}},
		{"[]", []Token{{Kind: SquareOpen}, {Kind: SquareClose}}},
		{" \t[\n ] ", []Token{{Kind: SquareOpen}, {Kind: SquareClose}}},
		{":", []Token{{Kind: Colon}}},
		{"\n \t \t:  \n", []Token{{Kind: Colon}}},
		{",", []Token{{Kind: Comma}}},
		{"\n \t \t,  \n", []Token{{Kind: Comma}}},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := Tokenize(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTokenize_Strings(t *testing.T) {
	got, err := Tokenize(`"hello world"`)
	require.NoError(t, err)
	assert.Equal(t, []Token{{Kind: String, Text: "hello world"}}, got)

	// An escaped quote does not terminate the literal; the raw escape text
	// is preserved for the value layer to decode.
	got, err = Tokenize(`"hello \" world"`)
	require.NoError(t, err)
	assert.Equal(t, []Token{{Kind: String, Text: `hello \" world`}}, got)

	got, err = Tokenize("\n \t \t\"hello world\"  \n")
	require.NoError(t, err)
	assert.Equal(t, []Token{{Kind: String, Text: "hello world"}}, got)
}

func TestTokenize_EscapedBackslashBeforeQuote(t *testing.T) {
	// `"a\\"` is a complete literal containing an escaped backslash; the
	// closing quote terminates it. A one-character-lookback scan would
	// misread this as an escaped quote.
	got, err := Tokenize(`"a\\"`)
	require.NoError(t, err)
	assert.Equal(t, []Token{{Kind: String, Text: `a\\`}}, got)

	// `"a\""` is an escaped quote followed by the closing quote.
	got, err = Tokenize(`"a\""`)
	require.NoError(t, err)
	assert.Equal(t, []Token{{Kind: String, Text: `a\"`}}, got)
}

func TestTokenize_UnterminatedString(t *testing.T) {
	_, err := Tokenize(`"hello world`)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnterminatedString)

	// A trailing escape consumes the end of input too.
	_, err = Tokenize(`"hello\`)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnterminatedString)
}

func TestTokenize_Numbers(t *testing.T) {
	got, err := Tokenize("0.013e10")
	require.NoError(t, err)
	assert.Equal(t, []Token{{Kind: Number, Text: "0.013e10"}}, got)

	// The tokenizer only delimits the span; grammar checking is deferred.
	got, err = Tokenize("00E.-0+13e10")
	require.NoError(t, err)
	assert.Equal(t, []Token{{Kind: Number, Text: "00E.-0+13e10"}}, got)

	got, err = Tokenize("\n\t0.013 0e10")
	require.NoError(t, err)
	assert.Equal(t, []Token{
		{Kind: Number, Text: "0.013"},
		{Kind: Number, Text: "0e10"},
	}, got)
}

func TestTokenize_NumberDelimiters(t *testing.T) {
	got, err := Tokenize("[1,2]")
	require.NoError(t, err)
	assert.Equal(t, []Token{
		{Kind: SquareOpen},
		{Kind: Number, Text: "1"},
		{Kind: Comma},
		{Kind: Number, Text: "2"},
		{Kind: SquareClose},
	}, got)

	got, err = Tokenize(`{"n":10}`)
	require.NoError(t, err)
	assert.Equal(t, []Token{
		{Kind: CurlyOpen},
		{Kind: String, Text: "n"},
		{Kind: Colon},
		{Kind: Number, Text: "10"},
		{Kind: CurlyClose},
	}, got)
}

func TestTokenize_Keywords(t *testing.T) {
	got, err := Tokenize("true")
	require.NoError(t, err)
	assert.Equal(t, []Token{{Kind: True}}, got)

	got, err = Tokenize("\n \t \tfalse  \n")
	require.NoError(t, err)
	assert.Equal(t, []Token{{Kind: False}}, got)

	got, err = Tokenize("null")
	require.NoError(t, err)
	assert.Equal(t, []Token{{Kind: Null}}, got)
}

func TestTokenize_Document(t *testing.T) {
	got, err := Tokenize("{\n\t\"key\" : [true, 10,10e20]\n}")
	require.NoError(t, err)
	assert.Equal(t, []Token{
		{Kind: CurlyOpen},
		{Kind: String, Text: "key"},
		{Kind: Colon},
		{Kind: SquareOpen},
		{Kind: True},
		{Kind: Comma},
		{Kind: Number, Text: "10"},
		{Kind: Comma},
		{Kind: Number, Text: "10e20"},
		{Kind: SquareClose},
		{Kind: CurlyClose},
	}, got)
}

func TestTokenize_LexicalErrors(t *testing.T) {
	cases := []struct {
		input   string
		message string
	}{
		{"+10", "lexical: invalid character '+' (0x002b) at offset 0"},
		{"1d0", "lexical: invalid character 'd' (0x0064) at offset 1"},
		{"tru ", `lexical: invalid token "tru "`},
		{"nul", `lexical: invalid token "nul"`},
		{"fals!", `lexical: invalid token "fals!"`},
		{"@", "lexical: invalid character '@' (0x0040) at offset 0"},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			_, err := Tokenize(tc.input)
			require.Error(t, err)
			assert.Equal(t, tc.message, err.Error())
			var appErr *errors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, errors.ErrorTypeLexical, appErr.Type)
		})
	}
}

func TestToken_String(t *testing.T) {
	assert.Equal(t, "{", Token{Kind: CurlyOpen}.String())
	assert.Equal(t, "}", Token{Kind: CurlyClose}.String())
	assert.Equal(t, "[", Token{Kind: SquareOpen}.String())
	assert.Equal(t, "]", Token{Kind: SquareClose}.String())
	assert.Equal(t, ":", Token{Kind: Colon}.String())
	assert.Equal(t, ",", Token{Kind: Comma}.String())
	assert.Equal(t, "true", Token{Kind: True}.String())
	assert.Equal(t, "false", Token{Kind: False}.String())
	assert.Equal(t, "null", Token{Kind: Null}.String())
	assert.Equal(t, "10e20", Token{Kind: Number, Text: "10e20"}.String())
	assert.Equal(t, "key", Token{Kind: String, Text: "key"}.String())
}
