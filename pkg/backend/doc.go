// Package backend provides the output sinks a print job can run against.
//
// The console backend previews a receipt on a terminal, the file backend
// writes it to a text file and the recorder keeps every call in memory.
// None of them speak a printer protocol; barcodes, images, cuts and drawer
// kicks are drawn as bracketed placeholder lines on the page grid.
//
// Backends are created by name through New:
//
//	b, err := backend.New("console", backend.Options{Output: os.Stdout, PageWidth: 32})
package backend
