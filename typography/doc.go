// Package typography resolves raw justification settings into a normalized
// record and derives CSS for justified paragraphs from it.
//
// Resolution never fails: every invalid or missing value falls back to a
// default which has no visual effect. The worst outcome of a malformed
// setting is that it is ignored.
//
// Base "text-align: justify" rule is only emitted for the frontend scope.
// Block editor ships its own rule for the justify alignment class, so editor
// stylesheet gets enhancement declarations only and nothing at all in
// standard mode.
package typography
