// This file is part of Gopher2A03.
//
// Gopher2A03 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2A03 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2A03.  If not, see <https://www.gnu.org/licenses/>.

package registers

// decimal returns the value of the two hexadecimal digits in v as if they
// were decimal digits. A digit greater than nine is used as is, so 0x1f is
// treated as 1*10+15.
func decimal(v uint8) int {
	return int(v>>4)*10 + int(v&0x0f)
}

// encode packs a value in the range 0 to 99 into two decimal digits.
func encode(v int) uint8 {
	return uint8(v/10)<<4 | uint8(v%10)
}

// AddDecimal adds value to register as if the hexadecimal digits of both
// were decimal digits. Returns the carry, zero, overflow and sign flags.
//
// Overflow is calculated as though the addition was binary.
func (r *Register) AddDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	b := *r
	_, overflow = b.Add(val, carry)

	sum := decimal(r.value) + decimal(val)
	if carry {
		sum++
	}

	rcarry = sum > 99
	r.value = encode(sum % 100)

	return rcarry, r.IsZero(), overflow, r.IsNegative()
}

// SubtractDecimal subtracts value from register as if the hexadecimal digits
// of both were decimal digits. The carry flag is inverted in the manner of
// the 6502. Returns the carry, zero, overflow and sign flags.
func (r *Register) SubtractDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	b := *r
	_, overflow = b.Subtract(val, carry)

	diff := decimal(r.value) - decimal(val)
	if !carry {
		diff--
	}

	rcarry = diff >= 0
	for diff < 0 {
		diff += 100
	}
	r.value = encode(diff % 100)

	return rcarry, r.IsZero(), overflow, r.IsNegative()
}
