// Package nlp defines the dependency-parsing capability consumed by the
// grammar reorderer.
//
// Parsing itself is delegated to an external engine; the core only relies on
// the ParsedToken contract so reordering stays testable with synthetic
// fixtures.
package nlp

import "context"

// Universal POS tags the reorderer cares about. The set intentionally covers
// only tags that influence sign ordering; anything else passes through as-is.
const (
	POSAdjective    = "ADJ"
	POSAdposition   = "ADP"
	POSAdverb       = "ADV"
	POSAuxiliary    = "AUX"
	POSCoordConj    = "CCONJ"
	POSDeterminer   = "DET"
	POSNoun         = "NOUN"
	POSParticle     = "PART"
	POSPronoun      = "PRON"
	POSProperNoun   = "PROPN"
	POSPunctuation  = "PUNCT"
	POSSubordConj   = "SCONJ"
	POSVerb         = "VERB"
	POSInterjection = "INTJ"
)

// Dependency labels (ClearNLP/spaCy scheme) used for role assignment.
const (
	DepNominalSubject        = "nsubj"
	DepPassiveNominalSubject = "nsubjpass"
	DepDirectObject          = "dobj"
	DepIndirectObject        = "iobj"
	DepPrepositionalObject   = "pobj"
	DepAttribute             = "attr"
	DepAdjectivalComplement  = "acomp"
	DepNegation              = "neg"
	DepAdverbialClause       = "advcl"
	DepPossessive            = "poss"
	DepCompound              = "compound"
	DepAdjectivalModifier    = "amod"
	DepDeterminer            = "det"
	DepRoot                  = "ROOT"
)

// Entity types marking time expressions.
const (
	EntDate = "DATE"
	EntTime = "TIME"
)

// ParsedToken is one token of a dependency-parsed sentence.
//
// Head is the index of the syntactic head within the same token slice; the
// sentence root points at itself, mirroring how parsers commonly serialize
// dependency trees.
type ParsedToken struct {
	Index   int    `json:"index"`
	Text    string `json:"text"`
	Lemma   string `json:"lemma"`
	POS     string `json:"pos"`
	Dep     string `json:"dep"`
	Head    int    `json:"head"`
	EntType string `json:"ent_type,omitempty"`
}

// Parser is the external dependency-parsing capability.
type Parser interface {
	Parse(ctx context.Context, sentence string) ([]ParsedToken, error)
}
