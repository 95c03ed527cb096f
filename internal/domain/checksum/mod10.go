package checksum

import "fmt"

// esrTransitions is the recursive mod-10 carry table from the ESR/QR
// reference standard, indexed by [carry][digit]. Every row is a rotation
// of the base row; the table is spelled out in full because any silent
// deviation would accept or reject wrong references.
var esrTransitions = [10][10]int{
	{0, 9, 4, 6, 8, 2, 7, 1, 3, 5},
	{9, 4, 6, 8, 2, 7, 1, 3, 5, 0},
	{4, 6, 8, 2, 7, 1, 3, 5, 0, 9},
	{6, 8, 2, 7, 1, 3, 5, 0, 9, 4},
	{8, 2, 7, 1, 3, 5, 0, 9, 4, 6},
	{2, 7, 1, 3, 5, 0, 9, 4, 6, 8},
	{7, 1, 3, 5, 0, 9, 4, 6, 8, 2},
	{1, 3, 5, 0, 9, 4, 6, 8, 2, 7},
	{3, 5, 0, 9, 4, 6, 8, 2, 7, 1},
	{5, 0, 9, 4, 6, 8, 2, 7, 1, 3},
}

// ESRCheckDigit computes the recursive mod-10 check digit over a digit
// string: the carry starts at 0, each digit advances it through the
// transition table, and the check digit is (10 - carry) mod 10.
func ESRCheckDigit(digits string) (int, error) {
	carry := 0
	for _, c := range digits {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: character %q in ESR reference", ErrMalformed, c)
		}
		carry = esrTransitions[carry][c-'0']
	}
	return (10 - carry) % 10, nil
}

// ValidateESR verifies a QR (ESR) reference in electronic format: digits
// only, at most 27 of them, whose last digit is the check digit of the
// preceding ones. Leading zeros are insignificant and stripped first.
func ValidateESR(ref string) error {
	for _, c := range ref {
		if c < '0' || c > '9' {
			return fmt.Errorf("%w: character %q in ESR reference", ErrMalformed, c)
		}
	}
	i := 0
	for i < len(ref)-1 && ref[i] == '0' {
		i++
	}
	ref = ref[i:]
	if len(ref) < 2 || len(ref) > 27 {
		return fmt.Errorf("%w: ESR reference length %d", ErrMalformed, len(ref))
	}
	check, err := ESRCheckDigit(ref[:len(ref)-1])
	if err != nil {
		return err
	}
	if int(ref[len(ref)-1]-'0') != check {
		return fmt.Errorf("%w: ESR reference %s", ErrChecksum, ref)
	}
	return nil
}
