// Package report renders a weather lookup as the labeled, optionally colored
// block of lines the CLI prints. Band selection and description highlighting
// are pure functions so they can be checked without a terminal.
package report
