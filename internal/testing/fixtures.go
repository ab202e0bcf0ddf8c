package testing

// SampleProject returns a small mixed-language project tree for selection
// and rendering tests: nested packages, a .gitignore, generated noise that
// the ignore rules should drop.
func SampleProject() map[string]string {
	return map[string]string{
		".gitignore": "dist/\n*.log\n",
		"go.mod": `module github.com/example/sample

go 1.22
`,
		"main.go": `package main

import "fmt"

func main() {
	fmt.Println("sample")
}
`,
		"internal/util/strings.go": `package util

// Reverse returns s reversed rune by rune.
func Reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
`,
		"docs/usage.md": `# Usage

Run the binary with no arguments.
`,
		"dist/bundle.js":  "var x=1;\n",
		"build/debug.log": "started\nstopped\n",
	}
}
