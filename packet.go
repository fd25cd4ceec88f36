package sndprobe

import (
	"encoding/binary"

	"github.com/valyala/bytebufferpool"
)

var packetPool = &bytebufferpool.Pool{}

// packet is the outgoing datagram. It is allocated once per run and only its
// sequence number prefix changes between sends.
type packet struct {
	buf *bytebufferpool.ByteBuffer
}

func newPacket(size int) *packet {
	buf := packetPool.Get()
	if cap(buf.B) < size {
		buf.B = make([]byte, size)
	} else {
		buf.B = buf.B[:size]
		clear(buf.B)
	}
	return &packet{buf: buf}
}

func (p *packet) setSeq(seq uint32) {
	binary.BigEndian.PutUint32(p.buf.B[:seqLen], seq)
}

func (p *packet) bytes() []byte {
	return p.buf.B
}

func (p *packet) release() {
	if p.buf != nil {
		packetPool.Put(p.buf)
		p.buf = nil
	}
}
