package value

import "github.com/aluvm-go/aluvm/bitcursor"

// WriteFixed writes v's active bytes as a widthBits-wide fixed field
// (width/8 bytes, little-endian), per spec.md §4.1's read_value
// "statically known width" branch.
func WriteFixed(c *bitcursor.Cursor, widthBits int, v Value) error {
	return c.WriteBytes(v.Truncated(widthBits).Bytes())
}

// ReadFixed reads a widthBits-wide fixed field into a Value.
func ReadFixed(c *bitcursor.Cursor, widthBits int) (Value, error) {
	b, err := c.ReadBytes(widthBits / 8)
	if err != nil {
		return Value{}, err
	}
	return FromBytes(b), nil
}

// WriteVariable writes v as a u16 length prefix followed by its active
// bytes, per spec.md §4.1's read_value "otherwise" branch (used for
// registers without a single statically known width, and for Blob-
// adjacent values).
func WriteVariable(c *bitcursor.Cursor, v Value) error {
	return c.WriteSlice(v.Bytes())
}

// ReadVariable reads a u16-length-prefixed Value.
func ReadVariable(c *bitcursor.Cursor) (Value, error) {
	b, err := c.ReadSlice()
	if err != nil {
		return Value{}, err
	}
	return FromBytes(b), nil
}

// WriteBlob writes a Blob as a u16 length prefix followed by its bytes.
func WriteBlob(c *bitcursor.Cursor, b Blob) error {
	return c.WriteSlice(b.Bytes)
}

// ReadBlob reads a length-prefixed Blob.
func ReadBlob(c *bitcursor.Cursor) (Blob, error) {
	raw, err := c.ReadSlice()
	if err != nil {
		return Blob{}, err
	}
	return NewBlob(raw), nil
}
