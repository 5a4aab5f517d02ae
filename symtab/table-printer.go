package symtab

import (
	"bytes"
	"fmt"
	"io"
)

func ScopeString(scope *Scope) string {
	buffer := &bytes.Buffer{}
	_ = PrintScope(buffer, scope)
	return buffer.String()
}

func PrintScope(output io.Writer, scope *Scope) error {
	printer := &tablePrinter{
		writer: output,
	}
	printer.printScope(scope)
	return printer.err
}

type tablePrinter struct {
	writer io.Writer
	err    error
}

func (printer *tablePrinter) write(format string, args ...interface{}) {
	if printer.err != nil {
		return
	}

	if len(args) == 0 {
		_, printer.err = printer.writer.Write([]byte(format))
	} else {
		_, printer.err = fmt.Fprintf(printer.writer, format, args...)
	}
}

func (printer *tablePrinter) printScope(scope *Scope) {
	printer.write("CONTENTS OF TABLE #%d:\n", scope.Id)
	for _, symbol := range scope.Symbols {
		printer.printSymbol(symbol)
	}
	printer.write("\n")
}

func (printer *tablePrinter) printSymbol(symbol *Symbol) {
	printer.write("\n*\tLEXEME\t:\t'%s'\n", symbol.Name)
	printer.write("Attributes:\n")
	printer.write("+ type: '%s'\n", symbol.Type)

	if symbol.Function == nil {
		offset, ok := symbol.Offset()
		if ok {
			printer.write("+ offset: %d\n", offset)
		} else {
			printer.write("+ offset: -\n")
		}
		return
	}

	info := symbol.Function
	printer.write("+ numParam: %d\n", info.NumParameters())
	for idx, param := range info.Parameters {
		printer.write("+ ParamType%d: '%s'\n", idx, param.Type)
		printer.write("+ ParamMode%d: '%s'\n", idx, param.Mode)
	}
	printer.write("+ ReturnType: '%s'\n", info.ReturnType)
	printer.write("+ Label: '%s'\n", info.Label)
}
