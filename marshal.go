// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ps2float

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

const (
	// Size is the number of bytes in the binary form.
	Size = 4
)

// Parse parses a bit pattern written as a Go integer literal, like `0x3f800000`, `0b1`, or `1065353216`.
// Surrounding spaces, quotes, and '_' digit separators are allowed.
func Parse(s string) (Float, error) {
	s = prepareString(s)
	if len(s) == 0 {
		return PosZero, fmt.Errorf("empty input")
	}
	v, err := strconv.ParseUint(s, 0, bitsInNumber)
	if err != nil {
		return PosZero, fmt.Errorf("parsing failed: %w", err)
	}
	return Float(v), nil
}

// MustParse is like Parse, but panics on error.
func MustParse(s string) Float {
	f, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return f
}

func prepareString(s string) string {
	s = strings.TrimFunc(s, unicode.IsSpace)
	if len(s) > 1 && s[0] == '"' && s[len(s)-1] == '"' {
		s = strings.TrimFunc(s[1:len(s)-1], unicode.IsSpace)
	}
	return s
}

// FromBytes returns a float from its big-endian representation.
func FromBytes(b []byte) (Float, error) {
	if len(b) != Size {
		return PosZero, fmt.Errorf("bad length %d, expected %d", len(b), Size)
	}
	return Float(binary.BigEndian.Uint32(b)), nil
}

// AppendBytes appends the big-endian representation of f to b.
func (f Float) AppendBytes(b []byte) []byte {
	var buf [Size]byte
	binary.BigEndian.PutUint32(buf[:], uint32(f))
	return append(b, buf[:]...)
}

// MarshalBinary returns 4 bytes in big-endian order.
func (f Float) MarshalBinary() ([]byte, error) {
	return f.AppendBytes(make([]byte, 0, Size)), nil
}

// UnmarshalBinary unmarshals 4 bytes in big-endian order.
func (f *Float) UnmarshalBinary(data []byte) error {
	value, err := FromBytes(data)
	if err != nil {
		return err
	}
	*f = value
	return nil
}

// MarshalText returns the bit pattern as a hex literal, like `0x3f800000`.
func (f Float) MarshalText() ([]byte, error) {
	return f.appendHex(make([]byte, 0, 2+2*Size)), nil
}

func (f Float) appendHex(b []byte) []byte {
	const digits = "0123456789abcdef"
	b = append(b, '0', 'x')
	for shift := bitsInNumber - 4; shift >= 0; shift -= 4 {
		b = append(b, digits[f>>uint(shift)&0xf])
	}
	return b
}

// UnmarshalText parses the text with Parse.
func (f *Float) UnmarshalText(data []byte) error {
	value, err := Parse(string(data))
	if err != nil {
		return err
	}
	*f = value
	return nil
}

// MarshalJSON marshals f as a quoted hex literal.
func (f Float) MarshalJSON() ([]byte, error) {
	b := make([]byte, 0, 4+2*Size)
	b = append(b, '"')
	b = f.appendHex(b)
	return append(b, '"'), nil
}

// UnmarshalJSON unmarshals a string or a number into f.
func (f *Float) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty json")
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return f.UnmarshalText([]byte(s))
	}
	return f.UnmarshalText(data)
}
