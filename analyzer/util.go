package analyzer

import (
	"sync"
)

func ParallelProcess[T any](
	list []T,
	process func(T),
) {
	wg := sync.WaitGroup{}
	wg.Add(len(list))
	for _, item := range list {
		go func(item T) {
			process(item)
			wg.Done()
		}(item)
	}
	wg.Wait()
}
