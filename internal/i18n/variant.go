package i18n

import (
	"golang.org/x/text/language"
)

// Variant is a language mode of the report.
type Variant string

const (
	English Variant = "en"
	Korean  Variant = "ko"

	// Default is the variant shown at page load.
	Default = English
)

// Variants lists every variant in build order.
var Variants = []Variant{English, Korean}

// Parse maps a token to a variant. Anything that is not the default token
// selects the alternate variant.
func Parse(s string) Variant {
	if s == string(English) {
		return English
	}
	return Korean
}

// IsKnown reports whether s names a variant exactly.
func IsKnown(s string) bool {
	return s == string(English) || s == string(Korean)
}

// Other returns the variant a language toggle in v's subtree switches to.
func (v Variant) Other() Variant {
	if v == English {
		return Korean
	}
	return English
}

// Prefix is prepended to element ids in this variant's subtree.
func (v Variant) Prefix() string {
	if v == English {
		return ""
	}
	return string(v) + "-"
}

// ID qualifies a mount point or section name for this variant.
func (v Variant) ID(name string) string {
	return v.Prefix() + name
}

// WrapperID is the id of the variant's top-level subtree.
func (v Variant) WrapperID() string {
	return "wrapper-" + string(v)
}

// Tag returns the BCP 47 tag for the variant.
func (v Variant) Tag() language.Tag {
	if v == English {
		return language.English
	}
	return language.Korean
}

var matcher = language.NewMatcher([]language.Tag{language.English, language.Korean})

// Negotiate picks a variant from an Accept-Language header value. An empty
// or unparseable header yields the default variant.
func Negotiate(acceptLanguage string) Variant {
	if acceptLanguage == "" {
		return Default
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default
	}
	return Variants[idx]
}
