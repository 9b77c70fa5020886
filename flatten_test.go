package hufftree

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten_Reference(t *testing.T) {
	shape, leaves := Flatten(makeReferenceTree())
	assert.Equal(t, MakeBits("1011000"), shape)
	assert.Equal(t, SymbolSeq("TRSE"), leaves)
}

func TestFlatten_Leaf(t *testing.T) {
	shape, leaves := Flatten(NewLeaf('A'))
	assert.Equal(t, MakeBits("0"), shape)
	assert.Equal(t, SymbolSeq("A"), leaves)
}

func TestUnflatten_Reference(t *testing.T) {
	tree, err := Unflatten(MakeBits("1011000"), SymbolSeq("TRSE"))
	require.NoError(t, err)
	if expect := makeReferenceTree(); !Equal(expect, tree) {
		t.Errorf("wrong tree:\n\texpect: %s\n\tactual: %s", expect, tree)
	}
}

func TestUnflatten_Inverse(t *testing.T) {
	texts := []string{
		"STREETTEST",
		"happy hip hop",
		"ab",
		"mississippi",
		"the quick brown fox jumps over the lazy dog",
		"αβγαβ",
	}
	for _, text := range texts {
		t.Run(strconv.Quote(text), func(t *testing.T) {
			tree, err := BuildTree(text)
			require.NoError(t, err)

			shape, leaves := Flatten(tree)
			rebuilt, err := Unflatten(shape, leaves)
			require.NoError(t, err)

			if !Equal(tree, rebuilt) {
				t.Errorf("wrong tree:\n\texpect: %s\n\tactual: %s", tree, rebuilt)
			}
		})
	}
}

func TestUnflatten_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		shape  BitSeq
		leaves SymbolSeq
	}{
		{
			name:   "empty",
			shape:  nil,
			leaves: nil,
		},
		{
			name:   "shape exhausted at zero child",
			shape:  MakeBits("1"),
			leaves: SymbolSeq("AB"),
		},
		{
			name:   "shape exhausted at one child",
			shape:  MakeBits("10"),
			leaves: SymbolSeq("A"),
		},
		{
			name:   "leaves exhausted",
			shape:  MakeBits("100"),
			leaves: SymbolSeq("A"),
		},
		{
			name:   "leftover leaves",
			shape:  MakeBits("0"),
			leaves: SymbolSeq("AB"),
		},
		{
			name:   "leftover shape bits",
			shape:  MakeBits("000"),
			leaves: SymbolSeq("A"),
		},
		{
			name:   "shape bit out of range",
			shape:  BitSeq{One, Bit(3), Zero},
			leaves: SymbolSeq("AB"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := Unflatten(tt.shape, tt.leaves)
			require.ErrorIs(t, err, ErrMalformedTree)
			require.Nil(t, tree)
		})
	}
}
