// Package ordered merge-joins sequences whose keys are already sorted.
//
// Two contracts describe the inputs. A SetIterator yields strictly increasing
// keys; a MapIterator yields key/value pairs strictly increasing by key. Both
// are pull iterators: every call to Next produces at most one element and,
// once Next has reported the end of the sequence, it keeps doing so.
//
// The Set and Map handles pair an iterator with the compare.Func its keys are
// sorted by and expose the joins:
//
//	evens := ordered.OrderedSetOf(slices.Values([]int{2, 4, 6, 8, 10, 12}))
//	threes := ordered.OrderedSetOf(slices.Values([]int{3, 6, 9, 12}))
//
//	for k := range evens.InnerJoinSet(threes).All() {
//	    fmt.Println(k) // 6, 12
//	}
//
// Every join walks its inputs once, comparing the current heads and advancing
// the smaller one, and never buffers more than one element per side. The
// result of a join is itself a Set or Map, so joins nest to any depth:
//
//	ordered.Intersect(twos, threes, fives)          // 3-way set intersection
//	ordered.InnerJoinMap(prices, stock)             // Map[K, Tuple2[Price, Stock]]
//	ordered.OuterJoin(before, after)                // Map[K, OuterValue[V, V]]
//	prices.InnerJoinSet(wanted)                     // Map[K, Price] filtered by keys
//
// Sortedness is the caller's responsibility and is not checked here. Unsorted
// or duplicate keys give a meaningless ordering but never a crash.
//
// A join owns its two inputs exclusively: nothing else may advance them once
// the join is built. When a join reaches its end, or the caller invokes Stop,
// both inputs are stopped. Nothing in this package is safe for concurrent use.
package ordered
