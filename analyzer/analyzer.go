package analyzer

import (
	"github.com/pattyshack/gt/parseutil"

	"github.com/pattyshack/wren/parser/lr"
)

type Source struct {
	FileName string
	Content  []byte
}

type sourceEntry struct {
	Source
	emitter *parseutil.Emitter
	result  *Result
}

// Analyze runs an independent session per source.  Results are returned in
// source order; every error is reported to the emitter in source order.
func Analyze(
	sources []Source,
	table *lr.Table,
	emitter *parseutil.Emitter,
) []*Result {
	entries := make([]*sourceEntry, 0, len(sources))
	for _, source := range sources {
		entries = append(
			entries,
			&sourceEntry{
				Source:  source,
				emitter: &parseutil.Emitter{},
			})
	}

	ParallelProcess(
		entries,
		func(entry *sourceEntry) {
			session := NewSession(entry.FileName, entry.Content, table)

			result, err := session.Run()
			if err != nil {
				entry.emitter.EmitErrors(err)
			}
			entry.result = result
		})

	results := make([]*Result, 0, len(entries))
	for _, entry := range entries {
		emitter.EmitErrors(entry.emitter.Errors()...)
		results = append(results, entry.result)
	}

	return results
}
