// Package hufftree implements Huffman coding over explicit encoding trees.
// A tree is built from observed symbol frequencies, serialized to and from a
// compact flattened form, and used to translate between text and prefix-free
// bit sequences.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     <https://ieeexplore.ieee.org/document/4051119>
//
package hufftree
