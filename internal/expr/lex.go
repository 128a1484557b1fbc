package expr

type kind int

const (
	tokEOF kind = iota
	tokNumber
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokLParen
	tokRParen
)

type token struct {
	kind kind
	text string
	off  int
}

var operators = map[byte]kind{
	'+': tokPlus,
	'-': tokMinus,
	'*': tokStar,
	'/': tokSlash,
	'(': tokLParen,
	')': tokRParen,
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isOperator(c byte) bool {
	return c == '+' || c == '-' || c == '*' || c == '/'
}

// screen applies the character allow-list and the repeated-operator check.
func screen(s string) error {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isDigit(c) || c == ' ' || c == '.' {
			continue
		}
		if _, ok := operators[c]; !ok {
			return errAt(i, ErrDisallowedCharacter)
		}
	}
	for i := 1; i < len(s); i++ {
		if isOperator(s[i]) && s[i] == s[i-1] {
			return errAt(i, ErrRepeatedOperator)
		}
	}
	return nil
}

// lex splits a screened expression into tokens, ending with tokEOF.
func lex(s string) ([]token, error) {
	var toks []token
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == ' ':
			i++
		case isDigit(c) || c == '.':
			start := i
			for i < len(s) && isDigit(s[i]) {
				i++
			}
			if i < len(s) && s[i] == '.' {
				i++
				for i < len(s) && isDigit(s[i]) {
					i++
				}
			}
			if i-start == 1 && c == '.' {
				return nil, errAt(start, ErrSyntax)
			}
			toks = append(toks, token{kind: tokNumber, text: s[start:i], off: start})
		default:
			k, ok := operators[c]
			if !ok {
				return nil, errAt(i, ErrDisallowedCharacter)
			}
			toks = append(toks, token{kind: k, text: s[i : i+1], off: i})
			i++
		}
	}
	return append(toks, token{kind: tokEOF, off: len(s)}), nil
}
