package hufftree

// Compress encodes text into a single EncodedData record: the encoding tree
// built from the text's symbol frequencies, flattened into Shape and Leaves,
// plus the text encoded against that tree as MessageBits.  Text with fewer
// than two distinct symbols fails with ErrInsufficientAlphabet; no partial
// record is ever returned.
func Compress(text string) (EncodedData, error) {
	root, err := BuildTree(text)
	if err != nil {
		return EncodedData{}, err
	}
	shape, leaves := Flatten(root)
	messageBits, err := EncodeText(root, text)
	if err != nil {
		return EncodedData{}, err
	}
	return EncodedData{Shape: shape, Leaves: leaves, MessageBits: messageBits}, nil
}

// Decompress decodes an EncodedData record produced by Compress, or by an
// equivalent producer, back into its original text.  Malformed records fail
// with ErrMalformedTree or ErrMalformedBitstream.
func Decompress(data EncodedData) (string, error) {
	root, err := Unflatten(data.Shape, data.Leaves)
	if err != nil {
		return "", err
	}
	return DecodeText(root, data.MessageBits)
}
