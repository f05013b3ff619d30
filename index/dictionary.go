// Package index implements the dictionary prefix structures the solver descends while
// it walks the board. Two interchangeable representations are provided: a plain 26-way
// trie and a path-compressed radix trie.
package index

// Node is a cursor into a dictionary: the position reached after consuming some prefix.
// Implementations are immutable values, safe to share between goroutines once the
// dictionary is built.
type Node interface {
	// Step consumes exactly one dictionary character and returns the cursor after it,
	// or nil if no indexed word continues with that character.
	Step(ch byte) Node
	// IsWordEnd reports whether the prefix consumed so far is itself a dictionary word.
	IsWordEnd() bool
}

// Dictionary is a prefix structure over uppercase words.
// Insert is not safe for concurrent use; after building, any number of readers may
// descend from Root concurrently.
type Dictionary interface {
	// Insert adds a normalized uppercase word. It returns true if the word was not
	// already present. Empty words and words with characters outside A-Z are ignored.
	Insert(word string) bool
	Root() Node
	// Len returns the number of distinct words.
	Len() int
	// NodeCount returns the number of structural nodes, the root excluded.
	NodeCount() int
}

// New returns an empty dictionary in the requested representation.
func New(compressed bool) Dictionary {
	if compressed {
		return NewRadixTrie()
	}
	return NewTrie()
}

// Build creates a dictionary and inserts every word.
func Build(words []string, compressed bool) Dictionary {
	d := New(compressed)
	for _, w := range words {
		d.Insert(w)
	}
	return d
}

// Descend consumes one board letter from n. The 'Q' tile consumes "QU" atomically:
// if the 'U' does not follow the 'Q' the whole tile fails and nil is returned.
func Descend(n Node, letter byte) Node {
	if n == nil {
		return nil
	}
	next := n.Step(letter)
	if next == nil {
		return nil
	}
	if letter == 'Q' {
		return next.Step('U')
	}
	return next
}

// lookup follows s character by character from the root and returns the cursor at its
// end, or nil if s is not a prefix of any word.
func lookup(d Dictionary, s string) Node {
	n := d.Root()
	for i := 0; i < len(s) && n != nil; i++ {
		n = n.Step(s[i])
	}
	return n
}

// Contains reports whether word is a dictionary entry.
func Contains(d Dictionary, word string) bool {
	n := lookup(d, word)
	return n != nil && n.IsWordEnd()
}

// hasPrefix reports whether some dictionary entry starts with prefix.
func hasPrefix(d Dictionary, prefix string) bool {
	return lookup(d, prefix) != nil
}

func validWord(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'A' || word[i] > 'Z' {
			return false
		}
	}
	return true
}
