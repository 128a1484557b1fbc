package expr

import (
	"errors"
	"math"
	"strconv"
)

// Evaluate screens, parses and evaluates s. On failure the returned value is
// NaN and the error is an *Error.
func Evaluate(s string) (float64, error) {
	if err := screen(s); err != nil {
		return math.NaN(), err
	}
	toks, err := lex(s)
	if err != nil {
		return math.NaN(), err
	}
	if len(toks) == 1 {
		return 0, nil
	}

	p := &parser{toks: toks}
	v, err := p.parseExpr()
	if err != nil {
		return math.NaN(), err
	}
	if t := p.peek(); t.kind != tokEOF {
		return math.NaN(), errAt(t.off, ErrSyntax)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return math.NaN(), errAt(0, ErrNonFinite)
	}
	return v, nil
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) parseExpr() (float64, error) {
	v, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek().kind {
		case tokPlus:
			p.next()
			r, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			v += r
		case tokMinus:
			p.next()
			r, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			v -= r
		default:
			return v, nil
		}
	}
}

func (p *parser) parseTerm() (float64, error) {
	v, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek().kind {
		case tokStar:
			p.next()
			r, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			v *= r
		case tokSlash:
			p.next()
			r, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			v /= r
		default:
			return v, nil
		}
	}
}

func (p *parser) parseUnary() (float64, error) {
	switch p.peek().kind {
	case tokPlus:
		p.next()
		return p.parseUnary()
	case tokMinus:
		p.next()
		v, err := p.parseUnary()
		return -v, err
	}
	return p.parseFactor()
}

func (p *parser) parseFactor() (float64, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		v, err := strconv.ParseFloat(t.text, 64)
		if errors.Is(err, strconv.ErrRange) {
			return 0, errAt(t.off, ErrNonFinite)
		}
		if err != nil {
			return 0, errAt(t.off, ErrSyntax)
		}
		return v, nil
	case tokLParen:
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if c := p.next(); c.kind != tokRParen {
			return 0, errAt(c.off, ErrSyntax)
		}
		return v, nil
	}
	return 0, errAt(t.off, ErrSyntax)
}
