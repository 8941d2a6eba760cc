// Package textenc handles the fixed-width text encoding of the game
// client's data files.
//
// Client files are UTF-16 with a mandatory byte-order marker. Decoding is
// an explicit step performed before any parsing, so the rest of the
// application only ever sees normal Go strings. Output is always written
// back as UTF-16 little-endian with a BOM, since that is the only form the
// client loads.
package textenc
