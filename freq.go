package hufftree

// FrequencyTable maps each Symbol of an alphabet to its occurrence count.
type FrequencyTable map[Symbol]int

// CountSymbols builds the FrequencyTable of the given text.  Each Unicode
// code point in text counts as one Symbol.
func CountSymbols(text string) FrequencyTable {
	table := make(FrequencyTable)
	for _, ch := range text {
		table[Symbol(ch)]++
	}
	return table
}
