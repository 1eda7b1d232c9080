// Package markup defines the boundary to the tolerant markup scanner: the
// ordered event triple {Start, Text, End} and the Scanner contract, plus two
// production scanners.
//
// [NewHTMLScanner] adapts the error-correcting tokenizer from
// golang.org/x/net/html. [NewXMLScanner] adapts encoding/xml running in
// non-strict mode. Both accept an already-decoded reader; neither performs
// any charset work of its own. A scanner's correction heuristics are its own
// business — consumers see only a well-formed, document-ordered event stream
// terminated by io.EOF.
package markup
