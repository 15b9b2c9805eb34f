package query

import (
	"fmt"
	"strings"

	"github.com/xwb1989/sqlparser"
)

type lexeme struct {
	typ  int
	text string
}

func (l lexeme) is(ch byte) bool {
	return l.typ == int(ch)
}

var clauseKeywords = map[string]bool{
	"SELECT": true,
	"FROM":   true,
	"WHERE":  true,
	"GROUP":  true,
	"ORDER":  true,
}

var operatorTexts = map[int]string{
	sqlparser.LE:              "<=",
	sqlparser.GE:              ">=",
	sqlparser.NE:              "!=",
	sqlparser.NULL_SAFE_EQUAL: "<=>",
}

// lexemeText renders a scanned token back to text. Keywords come back
// lower-cased from the scanner and are upper-cased here; identifiers keep
// their case.
func lexemeText(typ int, val []byte) (string, error) {
	if val != nil {
		switch typ {
		case sqlparser.ID, sqlparser.INTEGRAL, sqlparser.FLOAT, sqlparser.STRING:
			return string(val), nil
		default:
			return strings.ToUpper(string(val)), nil
		}
	}

	if text, ok := operatorTexts[typ]; ok {
		return text, nil
	}

	if typ > 0 && typ < 128 {
		return string(rune(typ)), nil
	}

	return "", fmt.Errorf("%w: unsupported token %d", ErrUnexpectedToken, typ)
}

func scan(sql string) ([]lexeme, error) {

	tkn := sqlparser.NewStringTokenizer(sql)
	result := []lexeme{}

	for {
		typ, val := tkn.Scan()

		switch typ {
		case 0:
			return result, nil
		case sqlparser.LEX_ERROR:
			return nil, fmt.Errorf("%w near `%s`", ErrUnexpectedToken, string(val))
		case sqlparser.COMMENT:
			continue
		}

		text, textErr := lexemeText(typ, val)
		if textErr != nil {
			return nil, textErr
		}

		result = append(result, lexeme{typ: typ, text: text})
	}
}

// Tokenize splits a query (without its terminating `;`) into clauses. Every
// clause starts with its keyword: SELECT, FROM, WHERE, GROUP or ORDER.
// Commas are separators only and function calls are glued back into a
// single word, so `SUM( b )` becomes `SUM(b)`.
func Tokenize(sql string) ([][]string, error) {

	lexemes, scanErr := scan(sql)
	if scanErr != nil {
		return nil, scanErr
	}

	clauses := [][]string{}
	var current []string

	for i := 0; i < len(lexemes); i++ {
		lex := lexemes[i]

		switch {
		case lex.is(','):
			continue
		case lex.is(';'):
			return nil, fmt.Errorf("%w `;` before the end of the query", ErrUnexpectedToken)
		case lex.is('(') || lex.is(')'):
			return nil, fmt.Errorf("%w `%s`", ErrUnexpectedToken, lex.text)
		}

		word := lex.text

		if clauseKeywords[word] && lex.typ != sqlparser.ID {
			if current != nil {
				clauses = append(clauses, current)
			}
			current = []string{word}
			continue
		}

		if i+1 < len(lexemes) && lexemes[i+1].is('(') {
			call, consumed, callErr := glueCall(lexemes[i:])
			if callErr != nil {
				return nil, callErr
			}
			word = call
			i += consumed - 1
		}

		current = append(current, word)
	}

	if current != nil {
		clauses = append(clauses, current)
	}

	return clauses, nil
}

// glueCall joins `name ( arg )` into `NAME(arg)` and reports how many
// lexemes it used.
func glueCall(lexemes []lexeme) (string, int, error) {

	var buf strings.Builder
	buf.WriteString(strings.ToUpper(lexemes[0].text))
	buf.WriteByte('(')

	for i := 2; i < len(lexemes); i++ {
		lex := lexemes[i]

		switch {
		case lex.is(')'):
			buf.WriteByte(')')
			return buf.String(), i + 1, nil
		case lex.is('(') || lex.is(';') || lex.is(','):
			return "", 0, fmt.Errorf("%w `%s` inside `%s(`", ErrUnexpectedToken, lex.text, lexemes[0].text)
		}

		buf.WriteString(lex.text)
	}

	return "", 0, fmt.Errorf("%w: unbalanced `(` after `%s`", ErrSyntax, lexemes[0].text)
}
