// Package assets loads the stylesheet and body template of the timesheet
// document.
//
// Assets are embedded in the binary. A custom directory laid out as
//
//	styles/<name>.css
//	templates/<name>.html
//
// can override them one file at a time through AssetResolver; anything the
// directory does not provide falls back to the embedded copy.
package assets
