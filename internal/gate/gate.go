package gate

import "log"

// maxRevealLen caps the revealed text, matching the authoring limit.
const maxRevealLen = 200

// Registry is the read side of the published-post store.
type Registry interface {
	// GetFullText returns the gated text for a post, or found=false when
	// the post is unknown. Absence is expected, not an error.
	GetFullText(messageID int) (fullText string, found bool, err error)
}

type Outcome string

const (
	OutcomeRevealed Outcome = "revealed"
	OutcomeNotFound Outcome = "not_found"
	OutcomeRefused  Outcome = "refused"
)

// Result is what the audience member gets back. Text is set only when
// the outcome is OutcomeRevealed.
type Result struct {
	Outcome Outcome
	Text    string
}

// Gate answers audience reveal clicks. It never surfaces internal errors
// to the requester; every failure degrades to a user-facing outcome.
type Gate struct {
	registry Registry
	verifier *Verifier
}

func NewGate(registry Registry, verifier *Verifier) *Gate {
	return &Gate{registry: registry, verifier: verifier}
}

// Reveal looks up the post and discloses its text only to verified
// members. Fail-closed: an Unknown membership refuses, a transient
// verification failure must not leak gated content.
func (g *Gate) Reveal(messageID int, userID int64) Result {
	text, found, err := g.registry.GetFullText(messageID)
	if err != nil {
		log.Printf("Registry lookup failed for post %d: %v", messageID, err)
		return Result{Outcome: OutcomeNotFound}
	}
	if !found {
		return Result{Outcome: OutcomeNotFound}
	}

	if g.verifier.Check(userID) != Member {
		return Result{Outcome: OutcomeRefused}
	}

	if runes := []rune(text); len(runes) > maxRevealLen {
		text = string(runes[:maxRevealLen])
	}
	return Result{Outcome: OutcomeRevealed, Text: text}
}
