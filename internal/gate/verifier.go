package gate

import "log"

type MembershipStatus string

const (
	Member    MembershipStatus = "member"
	NotMember MembershipStatus = "not_member"
	Unknown   MembershipStatus = "unknown"
)

// MembershipClient reports a user's raw chat-member status string for a
// channel, as the messaging platform defines it.
type MembershipClient interface {
	GetChatMemberStatus(chatID int64, userID int64) (string, error)
}

// Verifier classifies a user's live membership in the gating channel.
// Nothing is cached; every call re-verifies.
type Verifier struct {
	client    MembershipClient
	channelID int64
}

func NewVerifier(client MembershipClient, channelID int64) *Verifier {
	return &Verifier{client: client, channelID: channelID}
}

// Check maps the platform status to the three-way classification.
// Transport failures come back as Unknown, never as a guess either way.
func (v *Verifier) Check(userID int64) MembershipStatus {
	status, err := v.client.GetChatMemberStatus(v.channelID, userID)
	if err != nil {
		log.Printf("Membership check failed for user %d: %v", userID, err)
		return Unknown
	}
	switch status {
	case "member", "administrator", "creator", "owner":
		return Member
	default:
		return NotMember
	}
}
