/*
Package crc64iso implements the 64-bit cyclic redundancy check, or
CRC-64, checksum defined by the ISO 3309 generator polynomial
x64 + x4 + x3 + x + 1.

It uses the same polynomial as the ISO table in hash/crc64 but computes
the CRC in a slightly different way: the raw shift register value is
both the initial state and the result, with no inversion applied on
input or output.
*/
package crc64iso

import (
	"fmt"
	"hash"
	crc "hash/crc64"
)

// Size of a CRC-64 checksum in bytes.
const Size = crc.Size

func makeTable(poly uint64) *crc.Table {
	t := new(crc.Table)
	for i := 0; i < 256; i++ {
		crc := uint64(i)
		for j := 0; j < 8; j++ {
			if crc&1 != 0 {
				crc = crc>>1 ^ poly
			} else {
				crc >>= 1
			}
		}
		t[i] = crc
	}
	return t
}

// Bit-reversed form of the generator polynomial.
const polynomial = 0xd800000000000000

var table = makeTable(polynomial)

type digest struct {
	crc uint64
	tab *crc.Table
}

// New creates a new hash.Hash64 computing the CRC-64 checksum. Its Sum
// method will lay the value out in big-endian byte order.
func New() hash.Hash64 {
	return &digest{0, table}
}

// Resume creates a hash.Hash64 that continues a computation from a
// previously returned checksum.
func Resume(crc uint64) hash.Hash64 {
	return &digest{crc, table}
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return 1 }

func (d *digest) Reset() { d.crc = 0 }

func update(crc uint64, tab *crc.Table, p []byte) uint64 {
	for i := range p {
		crc = tab[(crc^uint64(p[i]))&0xff] ^ crc>>8
	}
	return crc
}

// Update returns the result of adding the bytes in p to the crc.
func Update(crc uint64, p []byte) uint64 {
	return update(crc, table, p)
}

func (d *digest) Write(p []byte) (n int, err error) {
	d.crc = update(d.crc, d.tab, p)
	return len(p), nil
}

func (d *digest) Sum64() uint64 { return d.crc }

func (d *digest) Sum(in []byte) []byte {
	s := d.Sum64()
	return append(in, byte(s>>56), byte(s>>48), byte(s>>40), byte(s>>32),
		byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}

// Checksum returns the CRC-64 checksum of data.
func Checksum(data []byte) uint64 { return Update(0, data) }

// Format returns the checksum as a fixed-width lowercase hexadecimal
// string, most significant byte first.
func Format(crc uint64) string {
	return fmt.Sprintf("%.*x", Size<<1, crc)
}
