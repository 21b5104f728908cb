// Package canonical normalizes entity names into graph identity keys and
// validates model-declared identifiers before they reach query text.
package canonical

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/Sanathkumarkunjithaya/CogniGraph/pkg/types"
)

// Name lowercases raw and trims every leading and trailing rune that is
// punctuation, a symbol, or whitespace. It is pure, total and idempotent;
// the result may be empty, which disqualifies the entity from any graph
// write.
func Name(raw string) string {
	return strings.TrimFunc(strings.ToLower(raw), func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r) || unicode.IsSpace(r)
	})
}

var labelSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(types.Labels))
	for _, l := range types.Labels {
		set[string(l)] = struct{}{}
	}
	return set
}()

// ValidLabel reports whether label is a member of the closed entity
// category set. Labels are spliced into Cypher as identifiers, so anything
// outside the set is rejected outright rather than escaped.
func ValidLabel(label string) bool {
	_, ok := labelSet[label]
	return ok
}

// relTypePattern is the token grammar for relationship types: uppercase
// letters, digits and underscores, starting with a letter.
var relTypePattern = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)

// ValidRelationshipType reports whether relType is safe to use as a Cypher
// relationship type identifier. The extraction prompt asks for this shape,
// but model output is never trusted to honor it.
func ValidRelationshipType(relType string) bool {
	return relTypePattern.MatchString(relType)
}
