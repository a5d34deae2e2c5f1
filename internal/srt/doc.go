// Package srt reads and writes the SubRip caption format exchanged with the
// TV News Archive.
//
// The parser is an explicit block tokenizer: cue blocks are separated by
// blank lines, and each block carries a decimal sequence line, a
// "start --> end" timing line, and one or more text lines. Malformed blocks
// produce errors that identify the offending block rather than being papered
// over with string replacements. Timestamp fields are treated as arithmetic
// values, so out-of-range fields seen in real archive payloads (such as
// "00:00:60,101") parse successfully instead of failing the whole document.
package srt
