// Package archive provides the minimal archive.org TV News Archive client
// used for search, show metadata lookup, and caption download URL
// construction.
//
// Responses are strongly typed for the fields iatv consumes. Options allow
// tests to supply custom HTTP clients or point at local servers without
// modifying production code. Station and named-show tables are constant
// data loaded once; nothing mutates them at runtime.
package archive
