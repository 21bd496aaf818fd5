package constants

// KnownChains is the curated theater-chain dictionary used by the fallback
// chain extractor. Entries are matched case-insensitively as substrings of a
// transcript line; longer brand strings come first so they win over their
// shorter prefixes ("AMC Theatres" before "AMC").
//
// This is configuration data, not control flow. Coverage is inherently
// incomplete; extend the list rather than the matching code.
var KnownChains = []string{
	"Alamo Drafthouse",
	"AMC Theatres",
	"B&B Theatres",
	"Harkins Theatres",
	"Landmark Theatres",
	"Marcus Theatres",
	"Regal Cinemas",
	"Showcase Cinemas",
	"AMC",
	"Cinemark",
	"Cineplex",
	"Cinepolis",
	"Odeon",
	"Regal",
}

// BoilerplateKeywords classify short transcript lines as ticket chrome
// (stub headers, barcode captions) rather than content. A line under 30
// characters containing one of these is skipped by dictionary lookups.
// URL-ish lines are classified separately.
var BoilerplateKeywords = []string{
	"ticket",
	"receipt",
	"barcode",
	"scan",
}
