package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pattyshack/wren/analyzer"
	"github.com/pattyshack/wren/config"
	"github.com/pattyshack/wren/parser/lr"
)

// Bottom-up parse marker for the rules report.
const bottomUpMarker = "A"

type Paths struct {
	Tokens  string
	Rules   string
	Symbols string
}

func PathsFor(cfg *config.Config, inputName string) Paths {
	dir := cfg.OutputDir
	if cfg.PerFileDir {
		base := filepath.Base(inputName)
		dir = filepath.Join(dir, strings.TrimSuffix(base, filepath.Ext(base)))
	}

	return Paths{
		Tokens:  filepath.Join(dir, cfg.TokensFile),
		Rules:   filepath.Join(dir, cfg.RulesFile),
		Symbols: filepath.Join(dir, cfg.SymbolsFile),
	}
}

type lineWriter struct {
	*bufio.Writer
	err error
}

func (writer *lineWriter) writeln(args ...interface{}) {
	if writer.err != nil {
		return
	}
	_, writer.err = fmt.Fprintln(writer, args...)
}

func (writer *lineWriter) finish() error {
	if writer.err != nil {
		return writer.err
	}
	return writer.Flush()
}

func WriteTokens(output io.Writer, tokens []*lr.Token) error {
	writer := &lineWriter{Writer: bufio.NewWriter(output)}
	for _, token := range tokens {
		writer.writeln(token)
	}
	return writer.finish()
}

func WriteRules(output io.Writer, productions []lr.Production) error {
	writer := &lineWriter{Writer: bufio.NewWriter(output)}
	writer.writeln(bottomUpMarker)
	for _, production := range productions {
		writer.writeln(int(production))
	}
	return writer.finish()
}

func writeFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	err = write(file)
	closeErr := file.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Write persists the result's token, rule, and symbol table reports.
func Write(result *analyzer.Result, paths Paths) error {
	for _, path := range []string{paths.Tokens, paths.Rules, paths.Symbols} {
		err := os.MkdirAll(filepath.Dir(path), 0755)
		if err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", path, err)
		}
	}

	err := writeFile(
		paths.Tokens,
		func(output io.Writer) error {
			return WriteTokens(output, result.Tokens)
		})
	if err != nil {
		return err
	}

	err = writeFile(
		paths.Rules,
		func(output io.Writer) error {
			return WriteRules(output, result.Productions)
		})
	if err != nil {
		return err
	}

	return writeFile(
		paths.Symbols,
		func(output io.Writer) error {
			_, err := io.WriteString(output, result.SymbolTables)
			return err
		})
}
