package lexer

import "strings"

func isDigitASCII(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphanumeric(c byte) bool {
	return isAlpha(c) || isDigitASCII(c) || c == '_'
}

func isNumeric(c byte) bool {
	return isDigitASCII(c)
}

// readNumber scans a run of decimal digits optionally containing one '.'.
// A second '.' inside the same literal is a lex error, not a silent stop:
// Kyaro numbers have no exponent, hex, or octal forms.
func readNumber(lex *Lexer) Token {
	line, column := lex.Line, lex.Column
	start := lex.Position
	seenDot := false
	invalid := false

	for isDigitASCII(lex.Current) || lex.Current == '.' {
		if lex.Current == '.' {
			if seenDot {
				invalid = true
				lex.Advance()
				continue
			}
			seenDot = true
		}
		lex.Advance()
	}

	literal := lex.Src[start:lex.Position]
	if invalid {
		return NewToken(INVALID_TYPE, literal, line, column)
	}
	if seenDot {
		return NewToken(FLOAT_LIT, literal, line, column)
	}
	return NewToken(INT_LIT, literal, line, column)
}

// readIdentifier scans a run starting with a letter or '_', continuing with
// alphanumerics or '_', then classifies it as a keyword or a plain name.
func readIdentifier(lex *Lexer) Token {
	line, column := lex.Line, lex.Column
	start := lex.Position

	for isAlphanumeric(lex.Current) {
		lex.Advance()
	}

	literal := lex.Src[start:lex.Position]
	return NewToken(lookupIdent(literal), literal, line, column)
}

// readStringLiteral scans a string delimited by either a matching pair of
// '"' or '\'' characters. Recognized escapes are \n \t \r \\ and the escaped
// delimiter itself; any other \x passes x through literally rather than
// erroring.
func readStringLiteral(lex *Lexer) Token {
	line, column := lex.Line, lex.Column
	delim := lex.Current
	lex.Advance() // consume opening delimiter

	var sb strings.Builder
	for lex.Current != delim {
		if lex.Current == 0 {
			return NewToken(INVALID_TYPE, sb.String(), line, column)
		}
		if lex.Current == '\n' {
			lex.Line++
			lex.Column = 0
		}
		if lex.Current == '\\' {
			lex.Advance()
			if lex.Current == 0 {
				return NewToken(INVALID_TYPE, sb.String(), line, column)
			}
			sb.WriteByte(escapeChar(lex.Current, delim))
			lex.Advance()
			continue
		}
		sb.WriteByte(lex.Current)
		lex.Advance()
	}
	// lex.Current == delim here; NextToken's caller expects its own trailing
	// lex.Advance() to move past the token, so we consume the closing
	// delimiter ourselves and return directly instead of falling through.
	lex.Advance()
	return NewToken(STRING_LIT, sb.String(), line, column)
}

// escapeChar resolves the character following a backslash inside a string
// literal. Unrecognized escapes degrade to the literal character itself.
func escapeChar(c byte, delim byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case '\\':
		return '\\'
	case delim:
		return delim
	default:
		return c
	}
}
