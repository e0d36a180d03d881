// Package export models tabular documents produced by the notes export path
// and realizes them as spreadsheet files.
package export

// Sheet is one tab of a tabular document.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]string
}

// Document is a transport-agnostic spreadsheet: the export service fills it,
// the controller decides the on-wire realization.
type Document struct {
	Filename string
	Sheets   []Sheet
}
