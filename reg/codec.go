package reg

import "github.com/aluvm-go/aluvm/bitcursor"

// WriteRegA packs a RegA as a 3-bit family tag followed by a 5-bit
// index, per spec.md §4.3.2's "3-bit family tag followed by 5-bit
// index" convention shared by Put/Move/Compare/Arithmetic/Bitwise.
func WriteRegA(c *bitcursor.Cursor, r RegA) error {
	if err := c.WriteUN(3, uint8(r.Family)); err != nil {
		return err
	}
	return c.WriteUN(5, uint8(r.Index))
}

// ReadRegA reads a RegA written by WriteRegA.
func ReadRegA(c *bitcursor.Cursor) (RegA, error) {
	fam, err := c.ReadUN(3)
	if err != nil {
		return RegA{}, err
	}
	idx, err := c.ReadUN(5)
	if err != nil {
		return RegA{}, err
	}
	return RegA{Family: AFamily(fam), Index: Reg32(idx)}, nil
}

// WriteRegR packs a RegR the same way as WriteRegA.
func WriteRegR(c *bitcursor.Cursor, r RegR) error {
	if err := c.WriteUN(3, uint8(r.Family)); err != nil {
		return err
	}
	return c.WriteUN(5, uint8(r.Index))
}

// ReadRegR reads a RegR written by WriteRegR.
func ReadRegR(c *bitcursor.Cursor) (RegR, error) {
	fam, err := c.ReadUN(3)
	if err != nil {
		return RegR{}, err
	}
	idx, err := c.ReadUN(5)
	if err != nil {
		return RegR{}, err
	}
	return RegR{Family: RFamily(fam), Index: Reg32(idx)}, nil
}

// WriteReg32 packs a bare 5-bit slot index (used where the family is
// implicit from the instruction variant).
func WriteReg32(c *bitcursor.Cursor, r Reg32) error {
	return c.WriteUN(5, uint8(r))
}

// ReadReg32 reads a bare 5-bit slot index.
func ReadReg32(c *bitcursor.Cursor) (Reg32, error) {
	v, err := c.ReadUN(5)
	if err != nil {
		return 0, err
	}
	return Reg32(v), nil
}

// WriteReg8 packs a bare 3-bit destination index.
func WriteReg8(c *bitcursor.Cursor, r Reg8) error {
	return c.WriteUN(3, uint8(r))
}

// ReadReg8 reads a bare 3-bit destination index.
func ReadReg8(c *bitcursor.Cursor) (Reg8, error) {
	v, err := c.ReadUN(3)
	if err != nil {
		return 0, err
	}
	return Reg8(v), nil
}

// WriteLibSite packs a LibSite as a little-endian u16 offset followed
// by the 32-byte hash, per spec.md §6.
func WriteLibSite(c *bitcursor.Cursor, s LibSite) error {
	if err := c.WriteU16(s.Offset); err != nil {
		return err
	}
	return c.WriteBytes32(s.LibHash)
}

// ReadLibSite reads a LibSite written by WriteLibSite.
func ReadLibSite(c *bitcursor.Cursor) (LibSite, error) {
	offset, err := c.ReadU16()
	if err != nil {
		return LibSite{}, err
	}
	hash, err := c.ReadBytes32()
	if err != nil {
		return LibSite{}, err
	}
	return LibSite{Offset: offset, LibHash: hash}, nil
}

// WriteSIndex packs an 8-bit S-register index.
func WriteSIndex(c *bitcursor.Cursor, s SIndex) error {
	return c.WriteU8(byte(s))
}

// ReadSIndex reads an 8-bit S-register index. Requires byte alignment,
// which every bytes-category instruction maintains by packing SIndex
// fields on whole-byte boundaries (spec.md §4.3.7).
func ReadSIndex(c *bitcursor.Cursor) (SIndex, error) {
	v, err := c.ReadU8()
	if err != nil {
		return 0, err
	}
	return SIndex(v), nil
}
