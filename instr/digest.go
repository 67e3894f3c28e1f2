// Package-level note: the Digest category is opaque to this repo except
// for its wire layout (spec.md §4.3.8) — no hash is actually computed;
// exec refuses to run these opcodes, and host extensions can only claim
// opcodes in opcode.HostWindow, not this range.
//
// spec.md's "3 bytes total" undercounts its own field list by one byte
// once SrcOffset/Src/Clear and Dst are packed without splitting a field
// across a cursor byte boundary (5+5+1 and 3+5 bits don't tile into two
// bytes); this repo uses 4, the additive total, like the similar
// correction noted in bytes.go.
package instr

import (
	"github.com/aluvm-go/aluvm/opcode"
	"github.com/aluvm-go/aluvm/reg"
)

// digestArgs is the common argument shape of every Digest variant:
// Src addresses one of the first 32 S-register slots (spec.md names it
// Reg32, narrower than the Bytes category's full 8-bit SIndex), SrcOffset
// an A-family register holding a byte offset into it, Dst the
// destination R register, and Clear whether to clear Src once consumed.
type digestArgs struct {
	SrcOffset reg.Reg32
	Src       reg.Reg32
	Dst       reg.RegR
	Clear     bool
}

func (digestArgs) ByteCount() uint16 { return 4 }

// DigestRipemd computes a RIPEMD-160 digest.
type DigestRipemd struct{ digestArgs }

func (DigestRipemd) Opcode() byte { return opcode.DigestRipemd }

// DigestSha2 computes a SHA-2 digest.
type DigestSha2 struct{ digestArgs }

func (DigestSha2) Opcode() byte { return opcode.DigestSha2 }

// DigestSha3 computes a SHA-3 digest.
type DigestSha3 struct{ digestArgs }

func (DigestSha3) Opcode() byte { return opcode.DigestSha3 }

// DigestBlake3 computes a BLAKE3 digest.
type DigestBlake3 struct{ digestArgs }

func (DigestBlake3) Opcode() byte { return opcode.DigestBlake3 }
