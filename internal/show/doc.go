// Package show models one broadcast on the TV News Archive and owns its
// in-memory transcript cache.
//
// A Show is loaded by identifier. Metadata lookup failures degrade rather
// than block: a show without metadata keeps working with a fallback duration so
// caption stitching still runs. Transcript results are cached per
// (start, end) range and recomputed only when the requested range changes
// or a refresh is forced; the cache is swapped atomically so concurrent
// readers never observe a document paired with the wrong range.
package show
