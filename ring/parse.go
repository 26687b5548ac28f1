package ring

import (
	"fmt"
	"strconv"
)

// MaxParseDegree is the largest exponent accepted by [ParsePoly].
const MaxParseDegree = 1 << 20

// ParsePoly parses a polynomial written as a sum of terms, e.g.
//
//	(1.23 + 3.45i)X^2 + (-2 - 1i)X - 1
//
// A term is an optional coefficient followed by an optional monomial X, X^k or Xk
// (x is accepted as well). A coefficient is either a parenthesized sum of real
// and imaginary numbers, or a single real or imaginary number such as 2, -0.5,
// 3i or i. Coefficients of equal powers are summed and the result has
// k+1 coefficients for k the largest exponent that appears.
// The output of [Poly.String] is accepted for finite coefficients.
//
// Returns an error wrapping [ErrSyntax] on malformed input.
func ParsePoly(s string) (*Poly, error) {

	p := &parser{s: s}

	var coeffs []Complex

	neg := false
	switch p.peek() {
	case '-':
		neg = true
		p.pos++
	case '+':
		p.pos++
	}

	for {

		c, power, err := p.term()
		if err != nil {
			return nil, err
		}

		if neg {
			c = c.Neg()
		}

		if power >= len(coeffs) {
			coeffs = append(coeffs, make([]Complex, power+1-len(coeffs))...)
		}

		coeffs[power] = coeffs[power].Add(c)

		switch p.peek() {
		case 0:
			return NewPolyFromSlice(coeffs), nil
		case '+':
			neg = false
		case '-':
			neg = true
		default:
			return nil, p.errorf("unexpected character %q", p.s[p.pos])
		}

		p.pos++
	}
}

type parser struct {
	s   string
	pos int
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: offset %d: %s", ErrSyntax, p.pos, fmt.Sprintf(format, args...))
}

// peek skips the white spaces and returns the next byte, or 0 at the end of the input.
func (p *parser) peek() byte {
	for p.pos < len(p.s) && (p.s[p.pos] == ' ' || p.s[p.pos] == '\t' || p.s[p.pos] == '\n' || p.s[p.pos] == '\r') {
		p.pos++
	}
	if p.pos < len(p.s) {
		return p.s[p.pos]
	}
	return 0
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// term parses [coefficient] [monomial].
func (p *parser) term() (c Complex, power int, err error) {

	c = NewComplex(1, 0)
	hasCoeff := false

	switch b := p.peek(); {
	case b == '(':
		p.pos++
		if c, err = p.sum(); err != nil {
			return
		}
		if p.peek() != ')' {
			return c, 0, p.errorf("expected ')'")
		}
		p.pos++
		hasCoeff = true
	case isDigit(b) || b == '.' || b == 'i':
		if c, err = p.number(); err != nil {
			return
		}
		hasCoeff = true
	}

	star := false
	if hasCoeff && p.peek() == '*' {
		p.pos++
		star = true
	}

	if b := p.peek(); b != 'X' && b != 'x' {
		if !hasCoeff || star {
			return c, 0, p.errorf("expected a term")
		}
		return c, 0, nil
	}

	p.pos++
	power = 1

	if p.peek() == '^' {
		p.pos++
		if !isDigit(p.peek()) {
			return c, 0, p.errorf("expected an exponent")
		}
	}

	start := p.pos
	for p.pos < len(p.s) && isDigit(p.s[p.pos]) {
		p.pos++
	}

	if p.pos > start {
		if power, err = strconv.Atoi(p.s[start:p.pos]); err != nil || power > MaxParseDegree {
			p.pos = start
			return c, 0, p.errorf("exponent %s is larger than %d", p.s[start:], MaxParseDegree)
		}
	}

	return
}

// sum parses [+|-] number {(+|-) number}.
func (p *parser) sum() (c Complex, err error) {

	neg := false
	switch p.peek() {
	case '-':
		neg = true
		p.pos++
	case '+':
		p.pos++
	}

	for {
		var x Complex
		if x, err = p.number(); err != nil {
			return
		}

		if neg {
			c = c.Sub(x)
		} else {
			c = c.Add(x)
		}

		switch p.peek() {
		case '+':
			neg = false
		case '-':
			neg = true
		default:
			return
		}

		p.pos++
	}
}

// number parses a real number, an imaginary number (e.g. 2.5i) or i.
func (p *parser) number() (c Complex, err error) {

	if p.peek() == 'i' {
		p.pos++
		return NewComplex(0, 1), nil
	}

	start := p.pos

	digits := 0
	for p.pos < len(p.s) && isDigit(p.s[p.pos]) {
		p.pos++
		digits++
	}

	if p.pos < len(p.s) && p.s[p.pos] == '.' {
		p.pos++
		for p.pos < len(p.s) && isDigit(p.s[p.pos]) {
			p.pos++
			digits++
		}
	}

	if digits == 0 {
		p.pos = start
		return c, p.errorf("expected a number")
	}

	if p.pos < len(p.s) && (p.s[p.pos] == 'e' || p.s[p.pos] == 'E') {
		end := p.pos + 1
		if end < len(p.s) && (p.s[end] == '+' || p.s[end] == '-') {
			end++
		}
		if end < len(p.s) && isDigit(p.s[end]) {
			for end < len(p.s) && isDigit(p.s[end]) {
				end++
			}
			p.pos = end
		}
	}

	var f float64
	if f, err = strconv.ParseFloat(p.s[start:p.pos], 32); err != nil {
		p.pos = start
		return c, p.errorf("invalid number: %v", err)
	}

	if p.peek() == 'i' {
		p.pos++
		return NewComplex(0, float32(f)), nil
	}

	return NewComplex(float32(f), 0), nil
}
