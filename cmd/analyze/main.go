package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pattyshack/gt/parseutil"

	"github.com/pattyshack/wren/analyzer"
	"github.com/pattyshack/wren/config"
	"github.com/pattyshack/wren/output"
	"github.com/pattyshack/wren/parser/lr"
)

func loadTable(cfg *config.Config) (*lr.Table, error) {
	if cfg.Grammar == "" {
		return lr.Default()
	}
	return lr.LoadFile(cfg.Grammar)
}

func main() {
	configPath := flag.String(
		"config",
		config.DefaultConfigFile,
		"configuration file (optional unless explicitly set)")
	grammar := flag.String("grammar", "", "grammar report (overrides config)")
	outDir := flag.String("out", "", "output directory (overrides config)")
	flag.Parse()

	configRequired := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			configRequired = true
		}
	})

	cfg, err := config.Load(*configPath, configRequired)
	if err != nil {
		fmt.Println("Config error:", err)
		os.Exit(1)
	}

	if *grammar != "" {
		cfg.Grammar = *grammar
	}
	if *outDir != "" {
		cfg.OutputDir = *outDir
	}

	table, err := loadTable(cfg)
	if err != nil {
		fmt.Println("Grammar error:", err)
		os.Exit(1)
	}

	fileNames := flag.Args()
	if len(fileNames) == 0 {
		fileNames = []string{config.DefaultInputFile}
	}

	if len(fileNames) > 1 && !cfg.PerFileDir {
		cfg.PerFileDir = true
	}

	sources := []analyzer.Source{}
	for _, fileName := range fileNames {
		content, err := os.ReadFile(fileName)
		if err != nil {
			fmt.Println("ReadFile error:", err)
			continue
		}

		sources = append(
			sources,
			analyzer.Source{
				FileName: fileName,
				Content:  content,
			})
	}

	emitter := &parseutil.Emitter{}
	results := analyzer.Analyze(sources, table, emitter)

	failed := 0
	for _, result := range results {
		fmt.Println("=====================")
		fmt.Println("File name:", result.FileName)
		fmt.Println("---------------------")

		if result.Err != nil {
			failed++
			fmt.Println("Skipped reports")
			continue
		}

		paths := output.PathsFor(cfg, result.FileName)
		err := output.Write(result, paths)
		if err != nil {
			fmt.Println("Write error:", err)
			failed++
			continue
		}

		fmt.Println("Tokens:", paths.Tokens)
		fmt.Println("Rules:", paths.Rules)
		fmt.Println("Symbol tables:", paths.Symbols)
	}

	errs := emitter.Errors()
	if len(errs) > 0 {
		fmt.Println("---------------------------")
		fmt.Println("Found", len(errs), "errors:")
		fmt.Println("---------------------------")
		for idx, err := range errs {
			fmt.Printf("error %d: %s\n", idx, err)
		}
	}

	if failed > 0 || len(sources) < len(fileNames) {
		os.Exit(1)
	}
}
