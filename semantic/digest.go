package semantic

import (
	"encoding/binary"
	"hash"
	"math"
	"slices"

	"golang.org/x/crypto/blake2b"
)

// Digest returns the BLAKE2b-256 sum of v's canonical encoding.
//
// The encoding tags every value with its kind and sorts mapping keys, so two
// values that are [Equal] with the same kinds throughout, and whose mappings
// differ only in key order, share a digest. Int(1) and Float(1.0) do not.
func (v Value) Digest() [32]byte {
	// New256 only fails for keys longer than 64 bytes.
	h, _ := blake2b.New256(nil)
	d := digester{h: h}
	d.write(v)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Digest returns the canonical BLAKE2b-256 sum of the mapping.
// Key order does not affect the result.
func (m *Mapping) Digest() [32]byte { return Map(m).Digest() }

// Digest returns the canonical BLAKE2b-256 sum of the sequence.
func (s *Sequence) Digest() [32]byte { return Seq(s).Digest() }

type digester struct {
	h   hash.Hash
	buf []byte
}

func (d *digester) flush() {
	d.h.Write(d.buf)
	d.buf = d.buf[:0]
}

func (d *digester) text(s string) {
	d.buf = binary.AppendUvarint(d.buf, uint64(len(s)))
	d.buf = append(d.buf, s...)
	d.flush()
}

func (d *digester) write(v Value) {
	d.buf = append(d.buf, byte('0'+v.kind))
	switch v.kind {
	case KindBool:
		if v.b {
			d.buf = append(d.buf, 1)
		} else {
			d.buf = append(d.buf, 0)
		}
	case KindInt:
		d.buf = binary.BigEndian.AppendUint64(d.buf, uint64(v.i))
	case KindFloat:
		f := v.f
		switch {
		case math.IsNaN(f):
			f = math.NaN()
		case f == 0:
			f = 0
		}
		d.buf = binary.BigEndian.AppendUint64(d.buf, math.Float64bits(f))
	case KindString:
		d.text(v.s)
		return
	case KindSequence:
		d.buf = binary.AppendUvarint(d.buf, uint64(len(v.seq.items)))
		d.flush()
		for _, item := range v.seq.items {
			d.write(item)
		}
		return
	case KindMapping:
		d.buf = binary.AppendUvarint(d.buf, uint64(len(v.m.keys)))
		d.flush()
		for _, k := range slices.Sorted(slices.Values(v.m.keys)) {
			d.text(k)
			d.write(v.m.entries[k])
		}
		return
	}
	d.flush()
}
