// Command iatv searches the Internet Archive TV News Archive, fetches show
// metadata, and reassembles windowed closed-caption data into continuous
// SRT documents and plain-text transcripts.
package main
