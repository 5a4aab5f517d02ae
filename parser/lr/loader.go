package lr

import (
	"bufio"
	"bytes"
	_ "embed"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/pattyshack/gt/parseutil"
	"github.com/pattyshack/gt/stringutil"

	"github.com/pattyshack/wren/diagnostic"
)

//go:embed grammar.output
var defaultReport []byte

const defaultReportName = "grammar.output"

var (
	defaultOnce  sync.Once
	defaultTable *Table
	defaultErr   error
)

// Default returns the table of the embedded grammar report.  The report is
// parsed on first use.
func Default() (*Table, error) {
	defaultOnce.Do(func() {
		defaultTable, defaultErr = Load(
			defaultReportName,
			bytes.NewReader(defaultReport))
	})
	return defaultTable, defaultErr
}

func LoadFile(path string) (*Table, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, diagnostic.Wrap(
			diagnostic.MissingGrammar,
			parseutil.Location{FileName: path},
			err)
	}

	return Load(path, bytes.NewReader(content))
}

// Load parses a bison style state report (as produced by --report=state).
// Only the Grammar section and the State blocks are interpreted; every
// section and block is terminated by a pair of blank lines.
func Load(fileName string, reader io.Reader) (*Table, error) {
	loader := &reportLoader{
		fileName: fileName,
		scanner:  bufio.NewScanner(reader),
		pool:     stringutil.NewInternPool(),
		rules:    map[int]Rule{},
		actions:  map[int]map[string]Action{},
		gotos:    map[int]map[string]int{},
	}

	return loader.load()
}

type reportLine struct {
	number int
	fields []string
}

type reportLoader struct {
	fileName string
	scanner  *bufio.Scanner
	lineNum  int

	pool *stringutil.InternPool

	rules   map[int]Rule
	actions map[int]map[string]Action
	gotos   map[int]map[string]int
}

func (loader *reportLoader) errorf(
	lineNum int,
	format string,
	args ...interface{},
) error {
	return diagnostic.New(
		diagnostic.MalformedGrammar,
		parseutil.Location{
			FileName: loader.fileName,
			Line:     lineNum,
		},
		format,
		args...)
}

func (loader *reportLoader) nextLine() (string, bool) {
	if !loader.scanner.Scan() {
		return "", false
	}
	loader.lineNum++
	return loader.scanner.Text(), true
}

// block returns the non-blank lines up to the terminating blank-line pair
// (or end of input).
func (loader *reportLoader) block() []reportLine {
	result := []reportLine{}
	blanks := 0
	for blanks < 2 {
		line, ok := loader.nextLine()
		if !ok {
			break
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			blanks++
			continue
		}

		blanks = 0
		result = append(result, reportLine{loader.lineNum, fields})
	}
	return result
}

func (loader *reportLoader) load() (*Table, error) {
	for {
		line, ok := loader.nextLine()
		if !ok {
			break
		}

		if strings.Contains(line, "conflicts") ||
			strings.Contains(line, "unused") ||
			strings.Contains(line, "useless") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		var err error
		switch {
		case fields[0] == "Grammar":
			err = loader.parseGrammar(loader.block())
		case strings.HasPrefix(fields[0], "Terminals") ||
			strings.HasPrefix(fields[0], "Nonterminals"):
			loader.block()
		case fields[0] == "State" && len(fields) == 2:
			headerLine := loader.lineNum
			state, convErr := strconv.Atoi(fields[1])
			if convErr != nil {
				return nil, loader.errorf(headerLine, "invalid state %q", fields[1])
			}
			err = loader.parseState(headerLine, state, loader.block())
		}

		if err != nil {
			return nil, err
		}
	}

	err := loader.scanner.Err()
	if err != nil {
		return nil, diagnostic.Wrap(
			diagnostic.MissingGrammar,
			parseutil.Location{FileName: loader.fileName},
			err)
	}

	return loader.finalize()
}

func (loader *reportLoader) parseGrammar(lines []reportLine) error {
	lhs := ""
	for _, line := range lines {
		fields := line.fields
		if len(fields) < 2 {
			return loader.errorf(line.number, "invalid grammar rule")
		}

		ruleNum, err := strconv.Atoi(fields[0])
		if err != nil {
			return loader.errorf(line.number, "invalid rule number %q", fields[0])
		}

		if fields[1] == "|" {
			if lhs == "" {
				return loader.errorf(
					line.number,
					"continuation of rule %d has no left hand side",
					ruleNum)
			}
		} else if strings.HasSuffix(fields[1], ":") {
			lhs = loader.pool.Intern(strings.TrimSuffix(fields[1], ":"))
		} else {
			return loader.errorf(line.number, "invalid rule %d", ruleNum)
		}

		_, ok := loader.rules[ruleNum]
		if ok {
			return loader.errorf(line.number, "duplicate rule %d", ruleNum)
		}

		rhs := []string{}
		for _, symbol := range fields[2:] {
			if symbol == "ε" || symbol == "%empty" {
				continue
			}
			rhs = append(rhs, loader.pool.Intern(symbol))
		}

		loader.rules[ruleNum] = Rule{
			Lhs: lhs,
			Rhs: rhs,
		}
	}

	return nil
}

func (loader *reportLoader) parseState(
	headerLine int,
	state int,
	lines []reportLine,
) error {
	_, ok := loader.actions[state]
	if ok {
		return loader.errorf(headerLine, "duplicate state %d", state)
	}

	actions := map[string]Action{}
	gotos := map[string]int{}
	loader.actions[state] = actions
	loader.gotos[state] = gotos

	for _, line := range lines {
		fields := line.fields
		if len(fields) < 2 {
			continue
		}

		var action Action
		switch fields[1] {
		case "shift,":
			target, err := strconv.Atoi(fields[len(fields)-1])
			if err != nil {
				return loader.errorf(line.number, "invalid shift target")
			}
			action = Shift{State: target}
		case "reduce":
			if len(fields) < 6 {
				return loader.errorf(line.number, "invalid reduce action")
			}

			ruleNum, err := strconv.Atoi(fields[4])
			if err != nil {
				return loader.errorf(line.number, "invalid reduce rule %q", fields[4])
			}

			rule, ok := loader.rules[ruleNum]
			if !ok {
				return loader.errorf(line.number, "reduce using unknown rule %d", ruleNum)
			}
			action = Reduce{Rule: ruleNum, Lhs: rule.Lhs}
		case "accept":
			action = Accept{}
		case "go":
			target, err := strconv.Atoi(fields[len(fields)-1])
			if err != nil {
				return loader.errorf(line.number, "invalid goto target")
			}
			gotos[loader.pool.Intern(fields[0])] = target
			continue
		default: // kernel items, conflict annotations, etc.
			continue
		}

		key := loader.pool.Intern(NormalizeTerminal(fields[0]))
		_, ok := actions[key]
		if ok {
			return loader.errorf(
				line.number,
				"duplicate action for %s in state %d",
				fields[0],
				state)
		}
		actions[key] = action
	}

	return nil
}

func (loader *reportLoader) finalize() (*Table, error) {
	if len(loader.rules) == 0 {
		return nil, loader.errorf(loader.lineNum, "no grammar rules")
	}

	numStates := len(loader.actions)
	if numStates == 0 {
		return nil, loader.errorf(loader.lineNum, "no states")
	}

	table := &Table{
		Rules:   loader.rules,
		Actions: make([]map[string]Action, numStates),
		Gotos:   make([]map[string]int, numStates),
	}

	for state := 0; state < numStates; state++ {
		actions, ok := loader.actions[state]
		if !ok {
			return nil, loader.errorf(loader.lineNum, "state %d not found", state)
		}

		for key, action := range actions {
			shift, ok := action.(Shift)
			if ok && (shift.State < 0 || shift.State >= numStates) {
				return nil, loader.errorf(
					loader.lineNum,
					"state %d shifts %s to unknown state %d",
					state,
					key,
					shift.State)
			}
		}

		for nonterminal, target := range loader.gotos[state] {
			if target < 0 || target >= numStates {
				return nil, loader.errorf(
					loader.lineNum,
					"state %d goes to unknown state %d on %s",
					state,
					target,
					nonterminal)
			}
		}

		table.Actions[state] = actions
		table.Gotos[state] = loader.gotos[state]
	}

	return table, nil
}
