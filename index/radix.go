package index

// radixNode holds a segment of one or more characters. Only the root has an empty label.
// children is keyed by the first character of each child's label.
type radixNode struct {
	label    string
	children map[byte]*radixNode
	wordEnd  bool
}

func newRadixNode(label string) *radixNode {
	return &radixNode{label: label, children: make(map[byte]*radixNode)}
}

// RadixTrie is the path-compressed representation. Runs of single-child nodes are
// merged into one segment; a segment is split when a new word diverges inside it or
// ends inside it, so a word boundary always sits at the end of a segment.
type RadixTrie struct {
	root  *radixNode
	words int
	nodes int
}

// NewRadixTrie returns an empty radix trie.
func NewRadixTrie() *RadixTrie {
	return &RadixTrie{root: newRadixNode("")}
}

func (t *RadixTrie) Insert(word string) bool {
	if !validWord(word) {
		return false
	}
	node := t.root
	for {
		child, ok := node.children[word[0]]
		if !ok {
			leaf := newRadixNode(word)
			leaf.wordEnd = true
			node.children[word[0]] = leaf
			t.nodes++
			t.words++
			return true
		}

		common := commonPrefixLength(word, child.label)
		if common < len(child.label) {
			t.split(child, common)
		}

		word = word[common:]
		if word == "" {
			if child.wordEnd {
				return false
			}
			child.wordEnd = true
			t.words++
			return true
		}
		node = child
	}
}

// split cuts n's label at offset; the tail keeps n's children and word flag.
func (t *RadixTrie) split(n *radixNode, offset int) {
	tail := &radixNode{
		label:    n.label[offset:],
		children: n.children,
		wordEnd:  n.wordEnd,
	}
	n.label = n.label[:offset]
	n.children = map[byte]*radixNode{tail.label[0]: tail}
	n.wordEnd = false
	t.nodes++
}

func (t *RadixTrie) Root() Node { return radixCursor{node: t.root} }

func (t *RadixTrie) Len() int { return t.words }

func (t *RadixTrie) NodeCount() int { return t.nodes }

func commonPrefixLength(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// radixCursor points inside a segment: offset characters of node.label have been consumed.
// A cursor only reports a word end once its whole segment has been matched, so a partial
// match against a multi-character segment is never mistaken for a word.
type radixCursor struct {
	node   *radixNode
	offset int
}

func (c radixCursor) Step(ch byte) Node {
	if c.offset < len(c.node.label) {
		if c.node.label[c.offset] != ch {
			return nil
		}
		return radixCursor{node: c.node, offset: c.offset + 1}
	}
	child, ok := c.node.children[ch]
	if !ok {
		return nil
	}
	return radixCursor{node: child, offset: 1}
}

func (c radixCursor) IsWordEnd() bool {
	return c.offset == len(c.node.label) && c.node.wordEnd
}
