package index

const alphabetSize = 26

type trieNode struct {
	children [alphabetSize]*trieNode
	wordEnd  bool
}

// Trie is the plain representation: one node per character, children indexed by letter.
type Trie struct {
	root  *trieNode
	words int
	nodes int
}

// NewTrie returns an empty plain trie.
func NewTrie() *Trie {
	return &Trie{root: &trieNode{}}
}

func (t *Trie) Insert(word string) bool {
	if !validWord(word) {
		return false
	}
	current := t.root
	for i := 0; i < len(word); i++ {
		idx := word[i] - 'A'
		if current.children[idx] == nil {
			current.children[idx] = &trieNode{}
			t.nodes++
		}
		current = current.children[idx]
	}
	if current.wordEnd {
		return false
	}
	current.wordEnd = true
	t.words++
	return true
}

func (t *Trie) Root() Node { return trieCursor{t.root} }

func (t *Trie) Len() int { return t.words }

func (t *Trie) NodeCount() int { return t.nodes }

// trieCursor wraps a node so a missing child surfaces as a nil Node interface.
type trieCursor struct {
	node *trieNode
}

func (c trieCursor) Step(ch byte) Node {
	if ch < 'A' || ch > 'Z' {
		return nil
	}
	child := c.node.children[ch-'A']
	if child == nil {
		return nil
	}
	return trieCursor{child}
}

func (c trieCursor) IsWordEnd() bool { return c.node.wordEnd }
