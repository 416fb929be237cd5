// Package pipeline converts Markdown input to a standalone HTML page.
//
// Conversion uses Goldmark with GFM, footnotes and Chroma syntax
// highlighting. The page is then rendered by the root html2pdf package like
// any other HTML input.
package pipeline
