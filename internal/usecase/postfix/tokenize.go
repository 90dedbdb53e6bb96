package postfix

import (
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/aalvaropc/rpnsort/internal/domain"
)

// wordLexer splits on runs of whitespace, including Unicode spaces.
var wordLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[\s\v\x{85}\p{Z}]+`},
	{Name: "Word", Pattern: `[^\s\v\x{85}\p{Z}]+`},
})

var whitespaceType = wordLexer.Symbols()["Whitespace"]

// Tokenize splits line into classified tokens, left to right.
// A blank line yields no tokens.
func Tokenize(line string) ([]domain.Token, error) {
	lx, err := wordLexer.LexString("", line)
	if err != nil {
		return nil, err
	}

	var out []domain.Token
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		if tok.EOF() {
			return out, nil
		}
		if tok.Type == whitespaceType || tok.Value == "" {
			continue
		}
		out = append(out, domain.Token{
			Text:   tok.Value,
			Column: tok.Pos.Column,
			Class:  Classify(tok.Value),
		})
	}
}
