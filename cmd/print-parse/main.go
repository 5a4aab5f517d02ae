package main

import (
	"fmt"
	"os"

	"github.com/pattyshack/gt/parseutil"

	"github.com/pattyshack/wren/analyzer"
	"github.com/pattyshack/wren/parser/lr"
)

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

		emitter := &parseutil.Emitter{}
		results := analyzer.Analyze(
			[]analyzer.Source{{FileName: fileName, Content: content}},
			table,
			emitter)

		result := results[0]
		for _, production := range result.Productions {
			rule := table.Rules[production.ReportRule()]
			fmt.Printf("%3d %s: %v\n", int(production), rule.Lhs, rule.Rhs)
		}

		fmt.Println("---------------------")
		fmt.Print(result.SymbolTables)

		errs := emitter.Errors()
		if len(errs) > 0 {
			fmt.Println("---------------------------")
			fmt.Println("Found", len(errs), "errors:")
			fmt.Println("---------------------------")
			for idx, err := range errs {
				fmt.Printf("error %d: %s\n", idx, err)
			}
		}
	}
}
