// Package wpslug converts arbitrary human-written titles into URL-safe,
// search-engine-friendly slugs, following the sanitization rules of
// WordPress's sanitize_title_with_dashes() while staying correct over the
// full Unicode input space.
//
// Basic usage:
//
//	import "github.com/elfsternberg/wpslug"
//
//	s := wpslug.Slugify("This is a test.")
//	// Output: "this-is-a-test"
//
//	s = wpslug.Slugify("Tom & Jerry")
//	// Output: "tom-and-jerry"
//
//	words := wpslug.Sanitize("Top 10 Café Lists")
//	// Output: ["top", "10", "cafe", "lists"]
//
// Sanitize returns the clean word tokens so callers can post-process them
// (cap slug length, drop stopwords) before joining; Slugify is exactly the
// tokens joined with single hyphens.
//
// # Pipeline
//
// Both functions run one fixed chain of stateless text transforms:
//
//  1. Markup and character references are stripped: tags go away (script and
//     style contents entirely), entities resolve to the characters they stand
//     for, percent-encoded octets are decoded, and whatever cannot be decoded
//     is erased.
//  2. Ampersands become the word "and"; hyphens and dashes become word
//     boundaries.
//  3. Accented Latin letters fold to their plain base letter through a fixed
//     table ("é" -> "e", "ñ" -> "n"), and the text is lowercased with full
//     Unicode case folding.
//  4. Remaining punctuation is deleted and the text splits on whitespace into
//     words.
//
// Every call is pure and deterministic: no configuration, no errors, no
// shared state. Degenerate input (empty, pure markup, pure punctuation)
// yields an empty word list and an empty slug, which are defined results,
// not failures. Both functions are safe for concurrent use.
//
// # Unicode Support
//
// Letters outside the fold table pass through unchanged, so non-Latin
// scripts keep their text instead of being flattened to ASCII:
//
//	wpslug.Slugify("Café Münchner") // "cafe-munchner"
//	wpslug.Slugify("Привет Мир")    // "привет-мир"
//	wpslug.Slugify("日本語 テスト")   // "日本語-テスト"
package wpslug
