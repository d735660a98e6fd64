package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testFlagTable = FlagTable{
	{Name: "tfNoDirectRipple", Mask: 0x00010000},
	{Name: "tfPartialPayment", Mask: 0x00020000},
	{Name: "tfLimitQuality", Mask: 0x00040000},
}

func TestDecodeFlags(t *testing.T) {
	flags := DecodeFlags(0x00020000|0x80000000, testFlagTable)
	assert.Len(t, flags, 3)
	assert.True(t, flags.Has("tfPartialPayment"))
	assert.False(t, flags.Has("tfNoDirectRipple"))
	assert.False(t, flags.Has("tfUnknown"))
	assert.Equal(t, []string{"tfPartialPayment"}, testFlagTable.Set(flags))
	assert.Equal(t, uint32(0x00020000), testFlagTable.Encode(flags))
}

func TestFlagsCodec(t *testing.T) {
	c := FlagsCodec(testFlagTable)
	flags, err := c.Decode(float64(0x00050000))
	require.NoError(t, err)
	assert.True(t, flags.Has("tfNoDirectRipple"))
	assert.True(t, flags.Has("tfLimitQuality"))
	assert.Equal(t, uint32(0x00050000), c.Encode(flags))

	_, err = c.Decode(-1.0)
	assert.ErrorIs(t, err, ErrInvalidInteger)
}
