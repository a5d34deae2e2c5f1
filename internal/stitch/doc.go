// Package stitch implements the windowed caption fetch and reassembly
// engine.
//
// The TV News Archive only serves closed captions in bounded time windows,
// and every window's cue timings restart at zero. The Fetcher walks the
// windows of a broadcast in order and pulls one raw SRT payload per window;
// Stitch parses each payload, re-bases its timings onto the global timeline
// with a running offset accumulator, renumbers cues contiguously, and emits
// one continuous SRT document plus a speaker-segmented plain-text
// transcript.
//
// Windows must be processed strictly in order: the offset applied to window
// i+1 is the end time of the last cue of window i after its own offset was
// applied. Any fetch or parse failure aborts the run; partial documents are
// never returned.
package stitch
