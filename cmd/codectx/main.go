// Command codectx indexes codebases into a vector store and reference
// graph, and serves hybrid semantic + lexical search over them.
package main

import "github.com/bojanb98/code-context/internal/cli"

func main() {
	cli.Execute()
}
