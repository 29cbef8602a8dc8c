// Package sources adapts common containers to the ordered sequence contracts.
//
// Every constructor returns an ordered.Set or ordered.Map that walks its
// container with a plain cursor, so none of them start a coroutine and Stop is
// only needed to release the reference. The container must not be modified
// while a sequence over it is being consumed.
package sources
