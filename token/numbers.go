package token

// number returns the length of the maximal numeric literal at the start
// of d: ['-']digit+['.'digit+][('e'|'E')['+'|'-']digit+]['f'|'F'].
// The span is not classified here; integer/float classification happens
// once, on the raw text, in the parser.
func number(d []byte) (int, error) {
	i := 0
	if i < len(d) && d[i] == '-' {
		i++
	}
	digits := asciiDigits(d[i:])
	if digits == 0 {
		return 0, ErrNumber
	}
	i += digits
	i += fract(d[i:])
	i += exp(d[i:])
	if i < len(d) && (d[i] == 'f' || d[i] == 'F') {
		i++
	}
	// a second point after the span means a malformed literal rather
	// than a new token
	if i < len(d) && d[i] == '.' {
		return 0, ErrNumber
	}
	return i, nil
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}

func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return n + i
}

func fract(d []byte) int {
	if len(d) == 0 || d[0] != '.' {
		return 0
	}
	n := asciiDigits(d[1:])
	if n == 0 {
		// . must be followed by 1 or more digits
		return 0
	}
	return n + 1
}
