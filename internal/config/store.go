package config

import (
	"sort"
	"strings"
)

// Store is the immutable, loaded-once model of the four configuration
// tables. It precomputes the lookup structures the engine scans on every
// conversion: sorted category names, flattened alias maps and
// length-ordered prefix symbol lists. A Store is safe for concurrent use.
type Store struct {
	Conversion ConversionDoc
	Prefixes   PrefixDoc
	Aliases    AliasDoc
	Units      UnitsDoc

	categoryNames []string
	flatAliases   map[string]string
	lowerAliases  map[string]string
	multSymbols   []string
	subSymbols    []string
	prefixFactors map[string]float64
}

// NewStore validates the documents and builds the derived lookup
// structures. The conversion, prefix and alias tables must be non-empty.
func NewStore(conversion ConversionDoc, prefixes PrefixDoc, aliases AliasDoc, units UnitsDoc) (*Store, error) {
	if err := validateConversion(conversion, ""); err != nil {
		return nil, err
	}
	if err := validatePrefix(prefixes, ""); err != nil {
		return nil, err
	}
	if err := validateAliases(aliases, ""); err != nil {
		return nil, err
	}
	if err := validateUnits(units); err != nil {
		return nil, err
	}

	s := &Store{
		Conversion: conversion,
		Prefixes:   prefixes,
		Aliases:    aliases,
		Units:      units,
	}
	s.buildCategoryIndex()
	s.buildAliasIndex()
	s.buildPrefixIndex()
	return s, nil
}

func (s *Store) buildCategoryIndex() {
	s.categoryNames = make([]string, 0, len(s.Conversion.Categories))
	for name := range s.Conversion.Categories {
		s.categoryNames = append(s.categoryNames, name)
	}
	sort.Strings(s.categoryNames)
}

// buildAliasIndex flattens the per-category alias maps. Categories and
// aliases are visited in sorted order so a duplicate alias across
// categories always resolves to the same canonical unit.
func (s *Store) buildAliasIndex() {
	s.flatAliases = make(map[string]string)
	s.lowerAliases = make(map[string]string)

	cats := make([]string, 0, len(s.Aliases.UnitAliases))
	for c := range s.Aliases.UnitAliases {
		cats = append(cats, c)
	}
	sort.Strings(cats)

	for _, c := range cats {
		entries := s.Aliases.UnitAliases[c]
		keys := make([]string, 0, len(entries))
		for a := range entries {
			keys = append(keys, a)
		}
		sort.Strings(keys)
		for _, a := range keys {
			if _, dup := s.flatAliases[a]; !dup {
				s.flatAliases[a] = entries[a]
			}
			lower := strings.ToLower(a)
			if _, dup := s.lowerAliases[lower]; !dup {
				s.lowerAliases[lower] = entries[a]
			}
		}
	}
}

// buildPrefixIndex orders symbols longest-first within each group so the
// greedy prefix scan matches "da" before "d".
func (s *Store) buildPrefixIndex() {
	s.prefixFactors = make(map[string]float64)
	s.multSymbols = collectSymbols(s.Prefixes.Prefix.Multiples, s.prefixFactors)
	s.subSymbols = collectSymbols(s.Prefixes.Prefix.Submultiples, s.prefixFactors)
}

func collectSymbols(entries map[string]PrefixEntry, factors map[string]float64) []string {
	symbols := make([]string, 0, len(entries))
	for _, e := range entries {
		symbols = append(symbols, e.Symbol)
		if _, dup := factors[e.Symbol]; !dup {
			factors[e.Symbol] = e.Factor
		}
	}
	sort.Slice(symbols, func(i, j int) bool {
		if len(symbols[i]) != len(symbols[j]) {
			return len(symbols[i]) > len(symbols[j])
		}
		return symbols[i] < symbols[j]
	})
	return symbols
}

// CategoryNames returns the conversion category names in sorted order, the
// order the resolver scans them in.
func (s *Store) CategoryNames() []string {
	return s.categoryNames
}

// Category returns the named conversion category. A missing category is an
// explicit not-found, never an implicitly empty one.
func (s *Store) Category(name string) (CategorySpec, bool) {
	cat, ok := s.Conversion.Categories[name]
	return cat, ok
}

// CanonicalUnit resolves a (normalized) unit string through the flattened
// alias table, exact match first, then case-insensitive.
func (s *Store) CanonicalUnit(unit string) (string, bool) {
	if canonical, ok := s.flatAliases[unit]; ok {
		return canonical, true
	}
	if canonical, ok := s.lowerAliases[strings.ToLower(unit)]; ok {
		return canonical, true
	}
	return "", false
}

// MultipleSymbols returns the multiple prefix symbols, longest first.
func (s *Store) MultipleSymbols() []string {
	return s.multSymbols
}

// SubmultipleSymbols returns the submultiple prefix symbols, longest first.
func (s *Store) SubmultipleSymbols() []string {
	return s.subSymbols
}

// PrefixFactor returns the factor for a prefix symbol and whether the
// symbol is known.
func (s *Store) PrefixFactor(symbol string) (float64, bool) {
	f, ok := s.prefixFactors[symbol]
	return f, ok
}

// Candidates returns the candidate-unit spec for a category/subcategory
// pair in the units table.
func (s *Store) Candidates(category, subcategory string) (CandidateSpec, bool) {
	subs, ok := s.Units.Categories[category]
	if !ok {
		return CandidateSpec{}, false
	}
	spec, ok := subs[subcategory]
	return spec, ok
}

// UnitCategoryNames returns the units-table category names in sorted
// order, used after the configured priority list is exhausted.
func (s *Store) UnitCategoryNames() []string {
	names := make([]string, 0, len(s.Units.Categories))
	for name := range s.Units.Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ContextMapping returns the [category, subcategory] pair for a conversion
// category and context. It falls back from the requested context to "auto"
// and then to the first context in sorted order.
func (s *Store) ContextMapping(convCategory, context string) (category, subcategory string, ok bool) {
	contexts, found := s.Units.ContextMappings[convCategory]
	if !found || len(contexts) == 0 {
		return "", "", false
	}
	mapping, found := contexts[context]
	if !found {
		mapping, found = contexts["auto"]
	}
	if !found {
		names := make([]string, 0, len(contexts))
		for name := range contexts {
			names = append(names, name)
		}
		sort.Strings(names)
		mapping = contexts[names[0]]
	}
	if len(mapping) < 2 {
		return "", "", false
	}
	return mapping[0], mapping[1], true
}

// Delimiters returns the configured header delimiter pairs.
func (s *Store) Delimiters() map[string][]string {
	return s.Conversion.Delimiters
}
