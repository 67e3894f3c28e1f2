package codec

import (
	"github.com/aluvm-go/aluvm/bitcursor"
	"github.com/aluvm-go/aluvm/reg"
)

// writeAFamilyIndex packs an A-family tag (3 bits) followed by a slot
// index (5 bits) into the current byte, per spec.md §4.3.2's shared
// register-reference convention.
func writeAFamilyIndex(c *bitcursor.Cursor, fam reg.AFamily, idx reg.Reg32) error {
	if err := c.WriteUN(3, uint8(fam)); err != nil {
		return err
	}
	return c.WriteUN(5, uint8(idx))
}

func readAFamilyIndex(c *bitcursor.Cursor) (reg.AFamily, reg.Reg32, error) {
	fam, err := c.ReadUN(3)
	if err != nil {
		return 0, 0, err
	}
	idx, err := c.ReadUN(5)
	if err != nil {
		return 0, 0, err
	}
	return reg.AFamily(fam), reg.Reg32(idx), nil
}

// writeRFamilyIndex packs an R-family tag and slot index the same way.
func writeRFamilyIndex(c *bitcursor.Cursor, fam reg.RFamily, idx reg.Reg32) error {
	if err := c.WriteUN(3, uint8(fam)); err != nil {
		return err
	}
	return c.WriteUN(5, uint8(idx))
}

func readRFamilyIndex(c *bitcursor.Cursor) (reg.RFamily, reg.Reg32, error) {
	fam, err := c.ReadUN(3)
	if err != nil {
		return 0, 0, err
	}
	idx, err := c.ReadUN(5)
	if err != nil {
		return 0, 0, err
	}
	return reg.RFamily(fam), reg.Reg32(idx), nil
}
