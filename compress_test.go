package hufftree

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompress_Reference(t *testing.T) {
	data, err := Compress("STREETTEST")
	require.NoError(t, err)

	assert.Equal(t, MakeBits("1011000"), data.Shape)
	assert.Equal(t, SymbolSeq("TRSE"), data.Leaves)
	assert.Equal(t, MakeBits("1010100111100111010"), data.MessageBits)
}

func TestDecompress_Reference(t *testing.T) {
	data := EncodedData{
		Shape:       MakeBits("1011000"),
		Leaves:      SymbolSeq("TRSE"),
		MessageBits: MakeBits("010011101101"),
	}

	text, err := Decompress(data)
	require.NoError(t, err)
	assert.Equal(t, "TRESS", text)
}

func TestCompress_RoundTrip(t *testing.T) {
	texts := []string{
		"ab",
		"STREETTEST",
		"happy hip hop",
		"aaaaaaaaab",
		"mississippi",
		"the quick brown fox jumps over the lazy dog",
		"Nel mezzo del cammin di nostra vita",
		"ναι και όχι",
		"🙂🙃🙂🙃🙂",
	}
	for _, text := range texts {
		t.Run(strconv.Quote(text), func(t *testing.T) {
			data, err := Compress(text)
			require.NoError(t, err)

			actual, err := Decompress(data)
			require.NoError(t, err)
			assert.Equal(t, text, actual)
		})
	}
}

func TestCompress_InsufficientAlphabet(t *testing.T) {
	for _, text := range []string{"", "A", "AAAA"} {
		t.Run("text "+SymbolSeq(text).String(), func(t *testing.T) {
			data, err := Compress(text)
			require.ErrorIs(t, err, ErrInsufficientAlphabet)
			assert.Zero(t, data)
		})
	}
}

func TestDecompress_Malformed(t *testing.T) {
	_, err := Decompress(EncodedData{
		Shape:  MakeBits("10"),
		Leaves: SymbolSeq("A"),
	})
	require.ErrorIs(t, err, ErrMalformedTree)

	_, err = Decompress(EncodedData{
		Shape:       MakeBits("1011000"),
		Leaves:      SymbolSeq("TRSE"),
		MessageBits: MakeBits("10"),
	})
	require.ErrorIs(t, err, ErrMalformedBitstream)
}

func TestEncodedData_String(t *testing.T) {
	data, err := Compress("STREETTEST")
	require.NoError(t, err)

	expect := "(encoded data with 7 shape bits, 4 leaves, 19 message bits)"
	if actual := data.String(); expect != actual {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
}
