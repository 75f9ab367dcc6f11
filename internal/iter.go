package internal

import (
	"iter"
)

// IterSeqConcat chains sequences end to end. A sequence that never ends
// hides every sequence after it.
func IterSeqConcat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			if seq == nil {
				continue
			}
			for val := range seq {
				if !yield(val) {
					return
				}
			}
		}
	}
}

// IterSeq2Concat chains key/value sequences end to end.
func IterSeq2Concat[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			if seq == nil {
				continue
			}
			for key, val := range seq {
				if !yield(key, val) {
					return
				}
			}
		}
	}
}

// IterSeqLimit collects at most limit values from seq. The second return is
// false when seq had more than limit values.
func IterSeqLimit[T any](seq iter.Seq[T], limit int) (vals []T, ok bool) {
	ok = true
	for val := range seq {
		if len(vals) == limit {
			ok = false
			break
		}
		vals = append(vals, val)
	}
	return
}
