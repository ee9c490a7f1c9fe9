package utils

import (
	"fmt"
	"io"
	"strings"
)

const (
	pipe        = "│   "
	tee         = "├── "
	lasttee     = "└── "
	defaultRoot = "."
)

type Node struct {
	Level    int
	Name     string
	IsBranch bool
	Children []*Node
	Parent   *Node
	Left     *Node
	Right    *Node
}

// ShowTree prints out the contents of the tree, using its prefix to determine the proper indentation and the difference
// between the tee and lasttee characters to denote the beginning or end of a tree branch
func (node *Node) ShowTree(w io.Writer, prefix string) {
	if node.Level == 0 {
		name := node.Name
		if name == "" {
			name = defaultRoot
		}
		fmt.Fprintln(w, name)
	} else {
		subFix := lasttee
		if node.Right != nil {
			subFix = tee
		}
		fmt.Fprintf(w, "%s%s%s\n", prefix, subFix, node.Name)

		if node.Right != nil {
			prefix += pipe
		} else {
			prefix += "    "
		}
	}

	for _, child := range node.Children {
		child.ShowTree(w, prefix)
	}
}

// LTree adds one node per "/"-separated element of each path, sharing common prefixes.
func (node *Node) LTree(paths []string) {
	for _, path := range paths {
		names := strings.Split(path, "/")
		current := node
		for index, name := range names {
			current = current.GetChild(name, index != len(names)-1)
		}
	}
}

func (node *Node) GetChild(name string, isBranch bool) *Node {
	for _, child := range node.Children {
		if child.Name == name {
			return child
		}
	}

	var pre *Node
	if len(node.Children) > 0 {
		pre = node.Children[len(node.Children)-1]
	}

	child := &Node{
		Level:    node.Level + 1,
		Name:     name,
		Parent:   node,
		Left:     pre,
		IsBranch: isBranch,
	}

	if pre != nil {
		pre.Right = child
	}

	node.Children = append(node.Children, child)
	return child
}
