package kaleido

import "sync"

// task splits data into workersCount contiguous chunks and runs fn on each
// element, passing its index. It returns once every element is processed.
func task[T any](workersCount int, data []T, fn func(i int, data T)) {
	var wg sync.WaitGroup
	workersCount = max(1, workersCount)
	dataSize := len(data)
	chunkSize := (dataSize + workersCount - 1) / workersCount

	for workerID := 0; workerID < workersCount; workerID++ {
		start, end := workerID*chunkSize, min((workerID+1)*chunkSize, dataSize)
		if start >= end {
			break
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i, data[i])
			}
		}(start, end)
	}
	wg.Wait()
}
