package bitmachine

import "rubin.dev/simplicity/simplicity"

// Machine is the Bit Machine: a pair of frame stacks, read-only and
// write-only. The top of each stack is the active frame on that side; every
// jet executor operates exclusively through the methods below. Frames are
// sized at combination time from TypeName widths; Machine enforces an
// optional total-live-bits budget across both stacks (spec.md §5),
// surfacing simplicity.ErrExceededBudget when a program would exceed it.
type Machine struct {
	read  []*Frame
	write []*Frame

	liveBits int
	budget   int // 0 = unlimited
}

// New constructs an empty Machine with the given cell budget (0 = unlimited).
func New(budget int) *Machine {
	return &Machine{budget: budget}
}

// NewFrame pushes a fresh write frame of size n bits, cursor 0.
func (m *Machine) NewFrame(n int) error {
	if n < 0 {
		return simplicity.NewError(simplicity.ErrCodeOutOfBounds, "negative frame width")
	}
	if m.budget > 0 && m.liveBits+n > m.budget {
		return simplicity.NewError(simplicity.ErrCodeExceededBudget, "frame allocation would exceed configured cell budget")
	}
	m.write = append(m.write, newFrame(n))
	m.liveBits += n
	return nil
}

// MoveFrame pops the top write frame, resets its cursor to 0, and pushes it
// as the new top read frame. Fails if the write frame was not fully written.
func (m *Machine) MoveFrame() error {
	if len(m.write) == 0 {
		return simplicity.NewError(simplicity.ErrCodeOutOfBounds, "move_frame: no write frame")
	}
	top := m.write[len(m.write)-1]
	if top.cursor != top.n {
		return simplicity.NewError(simplicity.ErrCodeOutOfBounds, "move_frame: write frame not fully written")
	}
	m.write = m.write[:len(m.write)-1]
	top.cursor = 0
	m.read = append(m.read, top)
	return nil
}

// DropFrame pops the top read frame. Fails if any bit remains unread
// (strict exhaustion policy, per spec.md §9).
func (m *Machine) DropFrame() error {
	if len(m.read) == 0 {
		return simplicity.NewError(simplicity.ErrCodeOutOfBounds, "drop_frame: no read frame")
	}
	top := m.read[len(m.read)-1]
	if top.cursor != top.n {
		return simplicity.NewError(simplicity.ErrCodeOutOfBounds, "drop_frame: unread bits remain")
	}
	m.read = m.read[:len(m.read)-1]
	m.liveBits -= top.n
	return nil
}

func (m *Machine) topRead() (*Frame, error) {
	if len(m.read) == 0 {
		return nil, simplicity.NewError(simplicity.ErrCodeOutOfBounds, "no active read frame")
	}
	return m.read[len(m.read)-1], nil
}

func (m *Machine) topWrite() (*Frame, error) {
	if len(m.write) == 0 {
		return nil, simplicity.NewError(simplicity.ErrCodeOutOfBounds, "no active write frame")
	}
	return m.write[len(m.write)-1], nil
}

// ReadBit reads a single bit from the top read frame.
func (m *Machine) ReadBit() (bool, error) {
	f, err := m.topRead()
	if err != nil {
		return false, err
	}
	return f.readBit()
}

func (m *Machine) readUint(n int) (uint64, error) {
	f, err := m.topRead()
	if err != nil {
		return 0, err
	}
	var v uint64
	for i := 0; i < n; i++ {
		b, err := f.readBit()
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

// ReadU8 reads 8 bits big-endian as an unsigned integer.
func (m *Machine) ReadU8() (uint8, error) {
	v, err := m.readUint(8)
	return uint8(v), err
}

// ReadU16 reads 16 bits big-endian as an unsigned integer.
func (m *Machine) ReadU16() (uint16, error) {
	v, err := m.readUint(16)
	return uint16(v), err
}

// ReadU32 reads 32 bits big-endian as an unsigned integer.
func (m *Machine) ReadU32() (uint32, error) {
	v, err := m.readUint(32)
	return uint32(v), err
}

// ReadU64 reads 64 bits big-endian as an unsigned integer.
func (m *Machine) ReadU64() (uint64, error) {
	return m.readUint(64)
}

// Read32Bytes reads 256 bits into a fixed-size array.
func (m *Machine) Read32Bytes() ([32]byte, error) {
	var out [32]byte
	b, err := m.ReadBytes(32)
	if err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}

// ReadBytes reads n bytes MSB-first from the top read frame into a fresh buffer.
func (m *Machine) ReadBytes(n int) ([]byte, error) {
	f, err := m.topRead()
	if err != nil {
		return nil, err
	}
	return f.readBytes(n)
}

// Fwd repositions the top read frame's cursor forward by k bits.
func (m *Machine) Fwd(k int) error {
	f, err := m.topRead()
	if err != nil {
		return err
	}
	return f.fwd(k)
}

// Back repositions the top read frame's cursor backward by k bits.
func (m *Machine) Back(k int) error {
	f, err := m.topRead()
	if err != nil {
		return err
	}
	return f.back(k)
}

// WriteBit writes a single bit at the top write frame's cursor.
func (m *Machine) WriteBit(b bool) error {
	f, err := m.topWrite()
	if err != nil {
		return err
	}
	return f.writeBit(b)
}

func (m *Machine) writeUint(v uint64, n int) error {
	f, err := m.topWrite()
	if err != nil {
		return err
	}
	for i := n - 1; i >= 0; i-- {
		if err := f.writeBit(v&(1<<uint(i)) != 0); err != nil {
			return err
		}
	}
	return nil
}

// WriteU8 writes 8 bits big-endian.
func (m *Machine) WriteU8(v uint8) error { return m.writeUint(uint64(v), 8) }

// WriteU16 writes 16 bits big-endian.
func (m *Machine) WriteU16(v uint16) error { return m.writeUint(uint64(v), 16) }

// WriteU32 writes 32 bits big-endian.
func (m *Machine) WriteU32(v uint32) error { return m.writeUint(uint64(v), 32) }

// WriteU64 writes 64 bits big-endian.
func (m *Machine) WriteU64(v uint64) error { return m.writeUint(v, 64) }

// WriteBytes writes data MSB-first into the top write frame.
func (m *Machine) WriteBytes(data []byte) error {
	f, err := m.topWrite()
	if err != nil {
		return err
	}
	return f.writeBytes(data)
}

// Skip advances the top write frame's cursor by k bits without writing.
func (m *Machine) Skip(k int) error {
	f, err := m.topWrite()
	if err != nil {
		return err
	}
	return f.skip(k)
}

// LiveBits returns the total width, in bits, of every frame currently on
// either stack. Exposed for tests exercising the budget contract.
func (m *Machine) LiveBits() int { return m.liveBits }
