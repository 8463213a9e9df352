// Package model defines the core data types shared by the gateway packages.
// Everything here is request-scoped: candidates are decoded from provider JSON,
// ranked, and discarded once the response is written.
package model

import (
	"errors"
	"strings"
)

// MediaKind identifies which upstream catalog namespace an ID belongs to.
// Go doesn't have enums, we use typed string constants.
type MediaKind string

const (
	KindMovie MediaKind = "movie"
	KindTV    MediaKind = "tv"
)

// ErrUnsupportedMediaKind is returned when a caller asks for something other
// than a movie or tv logo. It is raised before any provider is contacted.
var ErrUnsupportedMediaKind = errors.New("unsupported media kind")

// ErrMissingMediaID is returned when the media identifier is blank.
var ErrMissingMediaID = errors.New("missing media id")

// ParseMediaKind converts a path segment like "movie" or "TV" into a MediaKind.
// "series" is accepted as an alias for tv.
func ParseMediaKind(s string) (MediaKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "movie":
		return KindMovie, nil
	case "tv", "series":
		return KindTV, nil
	default:
		return "", ErrUnsupportedMediaKind
	}
}

// LogoCandidate is one logo offered by a provider. LanguageCode is empty when
// the provider reported no language; QualityScore is zero when absent.
type LogoCandidate struct {
	ImagePath    string  `json:"image_path"`
	LanguageCode string  `json:"language_code,omitempty"`
	QualityScore float64 `json:"quality_score"`
}

// Provenance records which provider supplied a resolved logo.
type Provenance string

const (
	ProvenancePrimary   Provenance = "primary"
	ProvenanceSecondary Provenance = "secondary"
	ProvenanceNone      Provenance = "none"
)

// ResolvedAsset is the only output of logo resolution.
// Logo is nil exactly when Provenance is ProvenanceNone.
type ResolvedAsset struct {
	Provenance Provenance `json:"provenance"`
	Logo       *string    `json:"logo"`
}

// NoAsset is the terminal "nothing found" result.
func NoAsset() ResolvedAsset {
	return ResolvedAsset{Provenance: ProvenanceNone}
}

// NewResolvedAsset builds a result for a chosen image path.
func NewResolvedAsset(p Provenance, imagePath string) ResolvedAsset {
	return ResolvedAsset{Provenance: p, Logo: &imagePath}
}

// Found reports whether a logo was resolved.
func (a ResolvedAsset) Found() bool {
	return a.Provenance != ProvenanceNone && a.Logo != nil
}

// LogoSize represents the rendered widths offered by the image endpoint.
type LogoSize string

const (
	SizeXS LogoSize = "xs"
	SizeS  LogoSize = "s"
	SizeM  LogoSize = "m"
	SizeL  LogoSize = "l"
	SizeXL LogoSize = "xl"
)

// SizePixels maps each LogoSize to its rendered width.
var SizePixels = map[LogoSize]int{
	SizeXS: 64,
	SizeS:  128,
	SizeM:  256,
	SizeL:  512,
	SizeXL: 1024,
}

// AllSizes is the ordered list of all sizes for iteration.
var AllSizes = []LogoSize{SizeXS, SizeS, SizeM, SizeL, SizeXL}

// SizeNames returns the size names in ascending order, e.g. "xs, s, m, l, xl".
func SizeNames() string {
	names := make([]string, len(AllSizes))
	for i, size := range AllSizes {
		names[i] = string(size)
	}
	return strings.Join(names, ", ")
}

// ValidSize checks if a string is a valid LogoSize.
func ValidSize(s string) bool {
	_, ok := SizePixels[LogoSize(s)]
	return ok
}
