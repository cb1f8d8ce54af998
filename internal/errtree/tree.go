// Package errtree folds flat, path-tagged error records into a tree that
// mirrors the shape of the validated data.
package errtree

// Record is one engine-reported failure: the path segments leading to the
// failing value and a single message.
type Record struct {
	Path    []string
	Message string
}

// Node carries the messages reported for its own path together with the
// child nodes of deeper paths. Both sides are independent; a node may hold
// messages and children at the same time.
//
// A Node is read-only once Build returns.
type Node struct {
	messages []string
	children map[string]*Node
	keys     []string // insertion order of children
}

// Build folds records into a fresh tree, preserving the record order for
// messages that share a path. Duplicates are kept.
func Build(records []Record) *Node {
	root := &Node{}
	for _, r := range records {
		root.insert(r.Path, r.Message)
	}
	return root
}

func (n *Node) insert(path []string, msg string) {
	cur := n
	for _, seg := range path {
		next, ok := cur.children[seg]
		if !ok {
			if cur.children == nil {
				cur.children = map[string]*Node{}
			}
			next = &Node{}
			cur.children[seg] = next
			cur.keys = append(cur.keys, seg)
		}
		cur = next
	}
	cur.messages = append(cur.messages, msg)
}

// Messages returns a copy of the messages reported at this node's own path.
func (n *Node) Messages() []string {
	if len(n.messages) == 0 {
		return nil
	}
	return append([]string(nil), n.messages...)
}

// Child returns the child node for key.
func (n *Node) Child(key string) (*Node, bool) {
	c, ok := n.children[key]
	return c, ok
}

// Keys returns the child keys in first-seen order.
func (n *Node) Keys() []string { return append([]string(nil), n.keys...) }

// HasMessages reports whether the node carries its own messages.
func (n *Node) HasMessages() bool { return len(n.messages) > 0 }

// HasChildren reports whether any deeper path has errors.
func (n *Node) HasChildren() bool { return len(n.keys) > 0 }

// Empty reports whether the node carries no errors at all.
func (n *Node) Empty() bool { return !n.HasMessages() && !n.HasChildren() }

// Count returns the number of messages held by the node and its descendants.
func (n *Node) Count() int {
	total := len(n.messages)
	for _, k := range n.keys {
		total += n.children[k].Count()
	}
	return total
}
