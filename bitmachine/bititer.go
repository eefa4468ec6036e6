package bitmachine

import "rubin.dev/simplicity/simplicity"

// BitIter is a lazy bit-stream reader over any byte producer. It hands out
// bits MSB-first within each byte, pulling a fresh byte only when the
// current one is exhausted — used by jet decoders walking the program's
// wire encoding.
type BitIter struct {
	next    func() (byte, bool)
	cur     byte
	remain  uint // bits left unread in cur, counted down from 8
	started bool
}

// NewBitIter wraps a byte sequence (as produced by an io.ByteReader-style
// callback) in a BitIter.
func NewBitIter(next func() (byte, bool)) *BitIter {
	return &BitIter{next: next}
}

// NewBitIterFromBytes is a convenience constructor over an in-memory slice.
func NewBitIterFromBytes(data []byte) *BitIter {
	i := 0
	return NewBitIter(func() (byte, bool) {
		if i >= len(data) {
			return 0, false
		}
		b := data[i]
		i++
		return b, true
	})
}

// Next returns the next single bit, or an error on exhaustion.
func (it *BitIter) Next() (bool, error) {
	if it.remain == 0 {
		b, ok := it.next()
		if !ok {
			return false, simplicity.ErrEndOfStream
		}
		it.cur = b
		it.remain = 8
	}
	it.remain--
	bit := it.cur&(1<<it.remain) != 0
	return bit, nil
}

// ReadBitsBE reads n bits (n <= 64) and interprets them big-endian as an
// unsigned integer.
func (it *BitIter) ReadBitsBE(n int) (uint64, error) {
	var v uint64
	for i := 0; i < n; i++ {
		b, err := it.Next()
		if err != nil {
			return 0, err
		}
		v <<= 1
		if b {
			v |= 1
		}
	}
	return v, nil
}
