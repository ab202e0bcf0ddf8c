package render

import (
	"sort"
	"strings"
)

type treeNode map[string]treeNode

// TreeString renders the directory tree covering paths (slash-relative),
// one branch per path segment, children sorted lexicographically. The
// first line is the root name with a trailing slash.
func TreeString(paths []string, rootName string) string {
	root := treeNode{}
	for _, p := range paths {
		node := root
		for _, part := range strings.Split(p, "/") {
			if part == "" {
				continue
			}
			child, ok := node[part]
			if !ok {
				child = treeNode{}
				node[part] = child
			}
			node = child
		}
	}

	var b strings.Builder
	b.WriteString(rootName + "/\n")
	writeTree(&b, root, "")
	return b.String()
}

func writeTree(b *strings.Builder, node treeNode, prefix string) {
	keys := make([]string, 0, len(node))
	for k := range node {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for i, key := range keys {
		connector, childPrefix := "├── ", "│   "
		if i == len(keys)-1 {
			connector, childPrefix = "└── ", "    "
		}
		b.WriteString(prefix + connector + key + "\n")
		if len(node[key]) > 0 {
			writeTree(b, node[key], prefix+childPrefix)
		}
	}
}
