package config

import (
	"fmt"
	"strings"
)

// ConversionDoc is the parsed conversion table document.
type ConversionDoc struct {
	Categories map[string]CategorySpec `json:"categories" yaml:"categories"`
	Delimiters map[string][]string     `json:"unit_delimiters" yaml:"unit_delimiters"`
}

// CategorySpec describes one family of mutually convertible units. The
// conversions map is sparse and directed: a pair may be defined in only one
// direction. Keys of the form "offset_<unit>" inside an inner map carry the
// affine offset paired with that unit's factor.
type CategorySpec struct {
	Description string                        `json:"description" yaml:"description"`
	Conversions map[string]map[string]float64 `json:"conversions" yaml:"conversions"`
}

// PrefixEntry is a single SI prefix: its symbol and multiplicative factor.
type PrefixEntry struct {
	Symbol string  `json:"symbol" yaml:"symbol" validate:"required"`
	Factor float64 `json:"factor" yaml:"factor" validate:"required,gt=0"`
}

// PrefixDoc is the parsed SI prefix table document.
type PrefixDoc struct {
	Prefix PrefixGroups `json:"prefix" yaml:"prefix"`
}

// PrefixGroups splits prefixes into multiples (k, M, G, ...) and
// submultiples (d, c, m, ...). Multiples are always scanned first.
type PrefixGroups struct {
	Multiples    map[string]PrefixEntry `json:"multiples" yaml:"multiples" validate:"dive"`
	Submultiples map[string]PrefixEntry `json:"submultiples" yaml:"submultiples" validate:"dive"`
}

// AliasDoc is the parsed unit alias table document. Many aliases may map to
// one canonical unit; lookups are case-insensitive.
type AliasDoc struct {
	UnitAliases map[string]map[string]string `json:"unit_aliases" yaml:"unit_aliases"`
}

// CandidateSpec is an ordered candidate-unit list for one subcategory. The
// first unit is the preferred target. Precision is the number of decimal
// places used when formatting converted cells; when omitted it defaults to
// DefaultPrecision.
type CandidateSpec struct {
	Units     []string `json:"units" yaml:"units"`
	Precision *int     `json:"precision,omitempty" yaml:"precision,omitempty"`
}

// DefaultPrecision is the decimal-place count used when a candidate list
// does not configure one.
const DefaultPrecision = 4

// DecimalPlaces returns the configured precision, or DefaultPrecision.
func (c CandidateSpec) DecimalPlaces() int {
	if c.Precision == nil {
		return DefaultPrecision
	}
	return *c.Precision
}

// SelectorSpec configures target-unit selection. Priority is the explicit
// category precedence list consulted when a subcategory name appears in
// more than one category.
type SelectorSpec struct {
	Priority []string `json:"priority" yaml:"priority"`
}

// UnitsDoc is the parsed target-unit table document.
type UnitsDoc struct {
	Categories      map[string]map[string]CandidateSpec `json:"categories" yaml:"categories"`
	Selector        SelectorSpec                        `json:"selector" yaml:"selector"`
	ContextMappings map[string]map[string][]string      `json:"context_mappings" yaml:"context_mappings"`
}

// OffsetKeyPrefix marks affine offset entries inside a conversions map.
const OffsetKeyPrefix = "offset_"

// IsOffsetKey reports whether a conversions-map key is an affine offset
// entry rather than a target unit.
func IsOffsetKey(key string) bool {
	return strings.HasPrefix(key, OffsetKeyPrefix)
}

// validateConversion checks the conversion document beyond what struct tags
// can express: at least one category, and strictly positive factors for
// every non-offset entry.
func validateConversion(doc ConversionDoc, source string) error {
	if len(doc.Categories) == 0 {
		return &MissingTableError{Table: TableConversion, Source: source}
	}
	for name, cat := range doc.Categories {
		for base, targets := range cat.Conversions {
			for target, factor := range targets {
				if IsOffsetKey(target) {
					continue
				}
				if factor <= 0 {
					return fmt.Errorf("category %q: conversion %s -> %s has non-positive factor %g", name, base, target, factor)
				}
			}
		}
	}
	for name, pair := range doc.Delimiters {
		if len(pair) != 2 || pair[0] == "" || pair[1] == "" {
			return fmt.Errorf("unit_delimiters %q: expected [open, close] pair", name)
		}
	}
	return nil
}

// validatePrefix checks the prefix document: at least one entry overall and
// well-formed symbol/factor pairs (delegated to struct tags via the
// validator in the loader).
func validatePrefix(doc PrefixDoc, source string) error {
	if len(doc.Prefix.Multiples)+len(doc.Prefix.Submultiples) == 0 {
		return &MissingTableError{Table: TablePrefix, Source: source}
	}
	return nil
}

// validateAliases checks the alias document is present and non-empty.
func validateAliases(doc AliasDoc, source string) error {
	total := 0
	for _, m := range doc.UnitAliases {
		total += len(m)
	}
	if total == 0 {
		return &MissingTableError{Table: TableAliases, Source: source}
	}
	return nil
}

// validateUnits checks candidate lists that are present are usable.
func validateUnits(doc UnitsDoc) error {
	for cat, subs := range doc.Categories {
		for sub, spec := range subs {
			for _, u := range spec.Units {
				if strings.TrimSpace(u) == "" {
					return fmt.Errorf("units category %q subcategory %q: empty candidate unit", cat, sub)
				}
			}
			if spec.Precision != nil && *spec.Precision < 0 {
				return fmt.Errorf("units category %q subcategory %q: negative precision", cat, sub)
			}
		}
	}
	for convCat, contexts := range doc.ContextMappings {
		for ctx, mapping := range contexts {
			if len(mapping) < 2 {
				return fmt.Errorf("context_mappings %q context %q: expected [category, subcategory]", convCat, ctx)
			}
		}
	}
	return nil
}
