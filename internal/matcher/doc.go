// Package matcher implements per-field query matching with span-accurate
// highlights.
//
// MatchField evaluates one text field against a parsed query and reports a
// partial score plus the highlight spans that produced it. Scoring rules:
//
//   - Exact (quoted) term found: weight x 2.0, one highlight at the first
//     occurrence.
//   - Substring term found: weight x 1.5 when the field starts with the
//     term, weight x 1.0 otherwise, added once per term; a highlight is
//     emitted for every non-overlapping occurrence.
//   - Negated term found anywhere: the field does not match, full stop.
//
// All matching is case-insensitive against a per-rune lowercased working
// copy, so highlight offsets remain valid rune indices into the original
// text.
//
// ExtractContext turns a highlight span into a bounded snippet for display.
package matcher
