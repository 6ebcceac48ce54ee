package utils

import "encoding/binary"

// OutputBuf accumulates the little-endian wire form of a circuit.
type OutputBuf struct {
	buf []byte
}

func (o *OutputBuf) AppendUint32(x uint32) {
	o.buf = binary.LittleEndian.AppendUint32(o.buf, x)
}

func (o *OutputBuf) AppendUint64(x uint64) {
	o.buf = binary.LittleEndian.AppendUint64(o.buf, x)
}

func (o *OutputBuf) AppendBytes(b []byte) {
	o.AppendUint32(uint32(len(b)))
	o.buf = append(o.buf, b...)
}

func (o *OutputBuf) Bytes() []byte {
	return o.buf
}

// InputBuf reads back what OutputBuf wrote.
type InputBuf struct {
	buf []byte
}

func NewInputBuf(buf []byte) *InputBuf {
	return &InputBuf{buf: buf}
}

func (i *InputBuf) ReadUint32() uint32 {
	x := binary.LittleEndian.Uint32(i.buf[:4])
	i.buf = i.buf[4:]
	return x
}

func (i *InputBuf) ReadUint64() uint64 {
	x := binary.LittleEndian.Uint64(i.buf[:8])
	i.buf = i.buf[8:]
	return x
}

func (i *InputBuf) ReadBytes() []byte {
	n := i.ReadUint32()
	b := i.buf[:n]
	i.buf = i.buf[n:]
	return b
}

func (i *InputBuf) IsEnd() bool {
	return len(i.buf) == 0
}

// Remaining reports the number of unconsumed bytes.
func (i *InputBuf) Remaining() int {
	return len(i.buf)
}
