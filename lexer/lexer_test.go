/*
File    : mylang/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/mylang/keywords"
)

func allTokens(t *testing.T, src string) []Token {
	t.Helper()
	lex := New(src, "<test>", keywords.Default())
	var tokens []Token
	for {
		tok, err := lex.NextToken()
		require.NoError(t, err)
		if tok.Kind == Eof {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

func TestLexer_SingleCharAndOperatorTokens(t *testing.T) {
	tokens := allTokens(t, `x = 2 + 3 * 4 - 1 / 2;`)
	kinds := make([]Kind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []Kind{
		Identifier, Assign, Number, Plus, Number, Multiply, Number,
		Minus, Number, Divide, Number, Semicolon,
	}, kinds)
}

func TestLexer_ComparisonOperators(t *testing.T) {
	tests := map[string]string{
		"a == b;": "==",
		"a != b;": "!=",
		"a < b;":  "<",
		"a <= b;": "<=",
		"a > b;":  ">",
		"a >= b;": ">=",
	}
	for src, want := range tests {
		tokens := allTokens(t, src)
		require.Len(t, tokens, 4)
		assert.Equal(t, Comparison, tokens[1].Kind)
		assert.Equal(t, want, tokens[1].Lexeme)
	}
}

func TestLexer_BareBangLexesAsComparison(t *testing.T) {
	// Open question (§9): the lexer accepts a bare '!' as a
	// Comparison token; the parser has no production for it.
	tokens := allTokens(t, `!`)
	require.Len(t, tokens, 1)
	assert.Equal(t, Comparison, tokens[0].Kind)
	assert.Equal(t, "!", tokens[0].Lexeme)
}

func TestLexer_IntegerAndFractionLiterals(t *testing.T) {
	tokens := allTokens(t, `1 2.5 300`)
	require.Len(t, tokens, 3)

	assert.False(t, tokens[0].IsFraction)
	assert.Equal(t, int64(1), tokens[0].IntVal)

	assert.True(t, tokens[1].IsFraction)
	assert.Equal(t, 2.5, tokens[1].FracVal)

	assert.False(t, tokens[2].IsFraction)
	assert.Equal(t, int64(300), tokens[2].IntVal)
}

func TestLexer_StringEscapes(t *testing.T) {
	tokens := allTokens(t, `"a\nb\tc\"d\\e"`)
	require.Len(t, tokens, 1)
	assert.Equal(t, String, tokens[0].Kind)
	assert.Equal(t, "a\nb\tc\"d\\e", tokens[0].Lexeme)
}

func TestLexer_UnterminatedStringIsLexError(t *testing.T) {
	lex := New(`"abc`, "<test>", keywords.Default())
	_, err := lex.NextToken()
	require.Error(t, err)
}

func TestLexer_InvalidEscapeIsLexError(t *testing.T) {
	lex := New(`"a\zb"`, "<test>", keywords.Default())
	_, err := lex.NextToken()
	require.Error(t, err)
}

func TestLexer_CommentToEndOfLine(t *testing.T) {
	tokens := allTokens(t, "x = 1; # a comment\ny = 2;")
	kinds := make([]Kind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []Kind{
		Identifier, Assign, Number, Semicolon,
		Identifier, Assign, Number, Semicolon,
	}, kinds)
}

func TestLexer_NativeScriptKeywords(t *testing.T) {
	tokens := allTokens(t, "如果 否则 循环 导入 尝试 捕获 打印")
	kinds := make([]Kind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []Kind{If, Else, While, Import, Try, Catch, Print}, kinds)
}

func TestLexer_LineAndColumnTracking(t *testing.T) {
	tokens := allTokens(t, "x = 1;\ny = 2;")
	// 'y' starts the second line, first column.
	require.Len(t, tokens, 8)
	assert.Equal(t, 2, tokens[4].Line)
	assert.Equal(t, 1, tokens[4].Column)
}

func TestLexer_UnknownCharacterIsLexError(t *testing.T) {
	lex := New("x = 1 @ 2;", "<test>", keywords.Default())
	for i := 0; i < 3; i++ {
		_, err := lex.NextToken()
		require.NoError(t, err)
	}
	_, err := lex.NextToken()
	require.Error(t, err)
}
