package optimization

import "gonum.org/v1/gonum/stat/combin"

// Permute calls visit once for every ordering of buf, rearranging buf in place
// with Heap's algorithm. visit must not retain or modify the slice it receives.
// An empty buf yields a single empty ordering.
func Permute(buf []string, visit func([]string)) {
	heapPermute(buf, len(buf), visit)
}

func heapPermute(buf []string, size int, visit func([]string)) {
	if size <= 1 {
		visit(buf)
		return
	}

	for i := 0; i < size; i++ {
		heapPermute(buf, size-1, visit)

		// Выбор пары для обмена зависит от чётности size
		if size%2 == 1 {
			buf[0], buf[size-1] = buf[size-1], buf[0]
		} else {
			buf[i], buf[size-1] = buf[size-1], buf[i]
		}
	}
}

// CountOrderings returns k!, the number of orderings Permute visits for k items.
func CountOrderings(k int) int {
	return combin.NumPermutations(k, k)
}
