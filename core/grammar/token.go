package grammar

// Role describes the grammatical slot a sign token fills in the reordered
// output.
type Role string

const (
	RoleTime       Role = "time"
	RoleModifier   Role = "modifier"
	RoleSubject    Role = "subject"
	RoleObject     Role = "object"
	RoleVerb       Role = "verb"
	RoleNegation   Role = "negation"
	RoleQuestion   Role = "question"
	RoleUnassigned Role = "unassigned"
)

// SignToken is one unit of the reordered ISL sequence.
//
// Text is the lowercased surface form used as the primary asset lookup key;
// Lemma is carried as a secondary key. Position is the token's index in the
// source sentence. Once a sentence's tokens are emitted their order is final
// and is never rearranged downstream.
type SignToken struct {
	Text     string
	Lemma    string
	Role     Role
	Position int
}
