package main

import (
	"fmt"
	"os"

	"github.com/pattyshack/wren/analyzer"
	"github.com/pattyshack/wren/parser/lr"
)

// Identifier attributes depend on scoping, so tokens are traced through a
// full analysis session.
func main() {
	table, err := lr.Default()
	if err != nil {
		fmt.Println("Grammar error:", err)
		os.Exit(1)
	}

	for _, fileName := range os.Args[1:] {
		fmt.Println("=====================")
		fmt.Println("File name:", fileName)
		fmt.Println("---------------------")
		content, err := os.ReadFile(fileName)
		if err != nil {
			fmt.Println("ReadFile error:", err)
			continue
		}

		result, err := analyzer.NewSession(fileName, content, table).Run()
		for _, token := range result.Tokens {
			fmt.Printf("%s: %s %q\n", token.Loc(), token, token.Lexeme)
		}

		if err != nil {
			fmt.Println("Analyze error:", err)
		}
	}
}
