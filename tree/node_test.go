package tree

import (
	"sync"
	"testing"
)

func buildTree() (*Node[string], map[string]*Node[string]) {
	nodes := map[string]*Node[string]{}
	for _, name := range []string{"html", "head", "body", "div", "p", "span"} {
		nodes[name] = NewNode(name)
	}
	nodes["html"].AddChild(nodes["head"]).AddChild(nodes["body"])
	nodes["body"].AddChild(nodes["div"]).AddChild(nodes["p"])
	nodes["div"].AddChild(nodes["span"])
	return nodes["html"], nodes
}

func TestNodeStructure(t *testing.T) {
	root, nodes := buildTree()
	if root.ChildCount() != 2 {
		t.Errorf("expected root to have 2 children, has %d", root.ChildCount())
	}
	if nodes["span"].Parent() != nodes["div"] {
		t.Errorf("expected parent of span to be div, is %v", nodes["span"].Parent())
	}
	if nodes["span"].Root() != root {
		t.Errorf("expected root of span to be html, is %v", nodes["span"].Root())
	}
	if ch, ok := nodes["body"].Child(1); !ok || ch != nodes["p"] {
		t.Errorf("expected 2nd child of body to be p, is %v", ch)
	}
	if _, ok := nodes["body"].Child(2); ok {
		t.Errorf("expected body to have no 3rd child")
	}
	if i := nodes["body"].IndexOfChild(nodes["p"]); i != 1 {
		t.Errorf("expected index of p to be 1, is %d", i)
	}
	if i := nodes["body"].IndexOfChild(nodes["span"]); i != -1 {
		t.Errorf("expected span not to be a child of body, index is %d", i)
	}
	var nilnode *Node[string]
	if nilnode.Parent() != nil || nilnode.Root() != nil {
		t.Errorf("expected nil node to have neither parent nor root")
	}
	if root.AddChild(nil).ChildCount() != 2 {
		t.Errorf("expected nil child to be ignored")
	}
}

func TestNodeWalk(t *testing.T) {
	root, nodes := buildTree()
	var visited []string
	root.Walk(func(n *Node[string]) bool {
		visited = append(visited, n.Payload)
		return n != nodes["head"]
	})
	expected := []string{"html", "head", "body", "div", "span", "p"}
	if len(visited) != len(expected) {
		t.Fatalf("expected walk to visit %v, visited %v", expected, visited)
	}
	for i := range expected {
		if visited[i] != expected[i] {
			t.Errorf("expected node #%d to be %s, is %s", i, expected[i], visited[i])
		}
	}
	visited = visited[:0]
	root.Walk(func(n *Node[string]) bool {
		visited = append(visited, n.Payload)
		return n != nodes["body"]
	})
	if len(visited) != 3 {
		t.Errorf("expected sub-tree of body to be skipped, visited %v", visited)
	}
}

func TestConcurrentAddChild(t *testing.T) {
	root := NewNode(0)
	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			root.AddChild(NewNode(i))
			_ = root.Children()
		}(i)
	}
	wg.Wait()
	if root.ChildCount() != 50 {
		t.Errorf("expected 50 children, have %d", root.ChildCount())
	}
	for _, ch := range root.Children() {
		if ch.Parent() != root {
			t.Errorf("expected parent of %v to be root", ch)
		}
	}
}
