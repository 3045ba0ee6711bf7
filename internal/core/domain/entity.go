package domain

import "strings"

// Entity is a canonical philosophy.
// Entities are fixed at start-up and never change during a run.
type Entity struct {
	// Name is the human-readable display name, e.g. "Bielsa Intensity".
	Name string

	// Code is the stable machine identifier, e.g. "Philosophy_45_Bielsa_Intensity".
	Code string

	// Seq is the sequence number embedded in Code.
	Seq int
}

// ShortName returns the first whitespace-delimited token of the display name.
func (e Entity) ShortName() string {
	fields := strings.Fields(e.Name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Target returns the (name, code) pair this entity resolves to.
func (e Entity) Target() Target {
	return Target{Name: e.Name, Code: e.Code}
}

// LegacyAlias maps a retired or informal name to a canonical display name
// (or any other canonical surface form such as the code).
type LegacyAlias struct {
	From string
	To   string
}

// Target is the canonical (name, code) pair a surface form resolves to.
type Target struct {
	Name string
	Code string
}

// Labeled renders the target as "Name (Code)".
func (t Target) Labeled() string {
	return t.Name + " (" + t.Code + ")"
}

// Match is the result of a successful Context Matcher lookup.
// It is ephemeral and consumed by the calling rewrite pass.
type Match struct {
	// Surface is the lower-cased alias key that matched.
	Surface string

	// Target is the canonical pair the surface form resolves to.
	Target Target

	// Start and End are byte offsets of Surface within the
	// lower-cased haystack.
	Start int
	End   int
}

// AliasSource describes where a surface form was registered from.
type AliasSource string

// Alias sources in registration order.
const (
	AliasFromName   AliasSource = "name"
	AliasFromShort  AliasSource = "short"
	AliasFromCode   AliasSource = "code"
	AliasFromLegacy AliasSource = "legacy"
)

// AliasEntry is one row of the Alias Index.
type AliasEntry struct {
	Surface string
	Target  Target
	Source  AliasSource
}

// Collision records a surface form whose target was overwritten by a
// later registration.
type Collision struct {
	Surface  string
	Previous Target
	Current  Target
	Source   AliasSource
}

// Vocabulary is the static configuration the canonicalisation engine is
// built from: the canonical table and the legacy alias table.
type Vocabulary struct {
	// Prefix is the code prefix shared by every canonical code.
	Prefix string

	// Entities is the canonical table in declaration order.
	Entities []Entity

	// Legacy maps retired or informal names to canonical names.
	Legacy []LegacyAlias
}
