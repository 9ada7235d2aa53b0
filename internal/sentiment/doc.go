// Package sentiment implements the rule-based scoring engines.
//
// The default lexicon scorer is a deterministic stand-in for a real model:
// fixed word lists, no stemming, no negation handling. The VADER engine is an
// optional drop-in that keeps the same result contract.
package sentiment
