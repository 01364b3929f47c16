// Package grammar turns dependency-parsed English sentences into ordered
// Indian Sign Language token sequences.
//
// ISL is SOV-dominant: time expressions come first, then subject, then
// objects with their modifiers, then the verb, with negation appended right
// after the verb and question words moved to the very end. Articles,
// auxiliaries and conjunctions carry no sign and are dropped.
package grammar

import (
	"sort"
	"strings"

	"github.com/srinithi0406/ISL/core/nlp"
)

// temporalModifiers are adverbs/adpositions signed as explicit time markers.
var temporalModifiers = map[string]bool{
	"before":      true,
	"after":       true,
	"immediately": true,
	"now":         true,
	"later":       true,
}

var questionWords = map[string]bool{
	"what":  true,
	"where": true,
	"who":   true,
	"whom":  true,
	"whose": true,
	"when":  true,
	"why":   true,
	"how":   true,
	"which": true,
}

// Reorder produces the ISL token sequence for one parsed sentence.
//
// Condition clauses ("if ...", adverbial clauses) are signed before the main
// clause. Within a clause tokens are emitted time -> subject -> object(s) ->
// object modifiers -> verb -> negation, with question words moved to the end
// of the whole sentence. The result is total: a parse without a recognizable
// subject or verb degrades to surface order stripped of articles, never an
// error.
func Reorder(tokens []nlp.ParsedToken) []SignToken {
	if len(tokens) == 0 {
		return nil
	}

	condition, main := splitClauses(tokens)

	out := reorderClause(tokens, condition)
	out = append(out, reorderClause(tokens, main)...)

	// Question words close the sentence regardless of which clause they
	// appeared in.
	var signs, questions []SignToken
	for _, sign := range out {
		if sign.Role == RoleQuestion {
			questions = append(questions, sign)
			continue
		}
		signs = append(signs, sign)
	}
	return append(signs, questions...)
}

// splitClauses peels condition clauses off the sentence so they can be signed
// first. A condition clause is the subtree of an adverbial-clause head or of
// any token governed by "if".
func splitClauses(tokens []nlp.ParsedToken) (condition, main []int) {
	children := make(map[int][]int, len(tokens))
	for _, token := range tokens {
		if token.Head != token.Index {
			children[token.Head] = append(children[token.Head], token.Index)
		}
	}

	inCondition := make(map[int]bool)
	markSubtree := func(root int) {
		stack := []int{root}
		for len(stack) > 0 {
			idx := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if inCondition[idx] {
				continue
			}
			inCondition[idx] = true
			stack = append(stack, children[idx]...)
		}
	}

	for _, token := range tokens {
		if token.Dep == nlp.DepAdverbialClause {
			markSubtree(token.Index)
		}
		if strings.EqualFold(token.Text, "if") {
			markSubtree(token.Head)
		}
	}

	for _, token := range tokens {
		if inCondition[token.Index] {
			condition = append(condition, token.Index)
		} else {
			main = append(main, token.Index)
		}
	}
	sort.Ints(condition)
	sort.Ints(main)
	return condition, main
}

// reorderClause assigns roles to the clause tokens (identified by index into
// tokens) and emits them in ISL order.
func reorderClause(tokens []nlp.ParsedToken, clause []int) []SignToken {
	if len(clause) == 0 {
		return nil
	}

	inClause := make(map[int]bool, len(clause))
	for _, idx := range clause {
		inClause[idx] = true
	}

	byIndex := make(map[int]nlp.ParsedToken, len(tokens))
	children := make(map[int][]int, len(tokens))
	for _, token := range tokens {
		byIndex[token.Index] = token
		if token.Head != token.Index {
			children[token.Head] = append(children[token.Head], token.Index)
		}
	}

	var (
		timeBucket      []SignToken
		modifiers       []SignToken
		subjects        []SignToken
		objects         []SignToken
		objectModifiers []SignToken
		verbs           []SignToken
		negations       []SignToken
		questions       []SignToken
	)

	consumed := make(map[int]bool)
	foundSubject := false
	foundVerb := false

	for _, idx := range clause {
		token := byIndex[idx]
		if consumed[idx] {
			continue
		}

		lower := strings.ToLower(token.Text)
		sign := SignToken{Text: lower, Lemma: strings.ToLower(token.Lemma), Position: idx}

		switch {
		case questionWords[sign.Lemma] || questionWords[lower]:
			// Moved to the end of the sentence, not copied: a question word
			// that is also a nominal child must not be pulled into its
			// head's unit again.
			consumed[idx] = true
			sign.Role = RoleQuestion
			questions = append(questions, sign)

		case token.EntType == nlp.EntDate || token.EntType == nlp.EntTime:
			sign.Role = RoleTime
			timeBucket = append(timeBucket, sign)

		case token.Dep == nlp.DepNegation:
			sign.Text = "not"
			sign.Role = RoleNegation
			negations = append(negations, sign)

		case (token.POS == nlp.POSAdverb || token.POS == nlp.POSAdposition) && temporalModifiers[lower]:
			sign.Role = RoleModifier
			modifiers = append(modifiers, sign)

		case token.Dep == nlp.DepNominalSubject || token.Dep == nlp.DepPassiveNominalSubject:
			if lower == "it" {
				// Expletive subject, carries no sign.
				continue
			}
			foundSubject = true
			sign.Role = RoleSubject
			subjects = append(subjects, withNominalUnit(byIndex, children, inClause, consumed, sign)...)

		case token.POS == nlp.POSVerb:
			foundVerb = true
			sign.Role = RoleVerb
			verbs = append(verbs, sign)

		case isObjectDep(token.Dep):
			sign.Role = RoleObject
			unit, mods := withObjectUnit(byIndex, children, inClause, consumed, sign)
			objects = append(objects, unit...)
			objectModifiers = append(objectModifiers, mods...)

		case token.POS == nlp.POSAdverb:
			sign.Role = RoleObject
			objects = append(objects, sign)
		}
	}

	if !foundSubject && !foundVerb {
		return surfaceFallback(tokens, clause)
	}

	out := make([]SignToken, 0, len(clause))
	out = append(out, timeBucket...)
	out = append(out, modifiers...)
	out = append(out, subjects...)
	out = append(out, objects...)
	out = append(out, objectModifiers...)
	out = append(out, verbs...)
	out = append(out, negations...)
	out = append(out, questions...)
	return out
}

func isObjectDep(dep string) bool {
	switch dep {
	case nlp.DepDirectObject, nlp.DepIndirectObject, nlp.DepPrepositionalObject,
		nlp.DepAttribute, nlp.DepAdjectivalComplement:
		return true
	}
	return false
}

// withNominalUnit keeps a subject head together with its possessive, compound
// and adjectival children, in surface order ("your name" stays a unit).
func withNominalUnit(byIndex map[int]nlp.ParsedToken, children map[int][]int, inClause, consumed map[int]bool, head SignToken) []SignToken {
	unit := []SignToken{head}
	for _, childIdx := range children[head.Position] {
		if !inClause[childIdx] || consumed[childIdx] {
			continue
		}
		child := byIndex[childIdx]
		switch child.Dep {
		case nlp.DepPossessive, nlp.DepCompound, nlp.DepAdjectivalModifier:
			consumed[childIdx] = true
			unit = append(unit, SignToken{
				Text:     strings.ToLower(child.Text),
				Lemma:    strings.ToLower(child.Lemma),
				Role:     head.Role,
				Position: childIdx,
			})
		}
	}
	sort.Slice(unit, func(i, j int) bool { return unit[i].Position < unit[j].Position })
	return unit
}

// withObjectUnit keeps possessive/compound children with the object head and
// peels adjectival modifiers into their own bucket, both in surface order.
func withObjectUnit(byIndex map[int]nlp.ParsedToken, children map[int][]int, inClause, consumed map[int]bool, head SignToken) (unit, modifiers []SignToken) {
	unit = []SignToken{head}
	for _, childIdx := range children[head.Position] {
		if !inClause[childIdx] || consumed[childIdx] {
			continue
		}
		child := byIndex[childIdx]
		sign := SignToken{
			Text:     strings.ToLower(child.Text),
			Lemma:    strings.ToLower(child.Lemma),
			Position: childIdx,
		}
		switch child.Dep {
		case nlp.DepPossessive, nlp.DepCompound:
			consumed[childIdx] = true
			sign.Role = head.Role
			unit = append(unit, sign)
		case nlp.DepAdjectivalModifier:
			consumed[childIdx] = true
			sign.Role = RoleModifier
			modifiers = append(modifiers, sign)
		}
	}
	sort.Slice(unit, func(i, j int) bool { return unit[i].Position < unit[j].Position })
	sort.Slice(modifiers, func(i, j int) bool { return modifiers[i].Position < modifiers[j].Position })
	return unit, modifiers
}

// surfaceFallback emits the clause in surface order stripped of articles and
// punctuation. Used when the parse identifies neither subject nor verb.
func surfaceFallback(tokens []nlp.ParsedToken, clause []int) []SignToken {
	byIndex := make(map[int]nlp.ParsedToken, len(tokens))
	for _, token := range tokens {
		byIndex[token.Index] = token
	}

	out := make([]SignToken, 0, len(clause))
	for _, idx := range clause {
		token := byIndex[idx]
		if token.POS == nlp.POSDeterminer || token.POS == nlp.POSPunctuation {
			continue
		}
		out = append(out, SignToken{
			Text:     strings.ToLower(token.Text),
			Lemma:    strings.ToLower(token.Lemma),
			Role:     RoleUnassigned,
			Position: idx,
		})
	}
	return out
}
