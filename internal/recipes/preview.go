package recipes

// Action identifies one control on a rendered post. The transport layer
// maps these to its own button/callback representation.
type Action string

const (
	ActionPublish      Action = "publish"
	ActionEditTeaser   Action = "edit_teaser"
	ActionEditFullText Action = "edit_full"
	ActionCancel       Action = "cancel"
)

// Preview is the outbound representation of a draft shown to the
// operator before publishing: the teaser, its media, and the action
// controls laid out in rows.
type Preview struct {
	Teaser  string
	Media   *MediaRef
	Actions [][]Action
}

// Render produces the operator-facing preview for a draft. Pure: no
// transport calls, no draft mutation.
func Render(d *Draft) Preview {
	return Preview{
		Teaser: d.Teaser,
		Media:  d.Media,
		Actions: [][]Action{
			{ActionPublish},
			{ActionEditTeaser, ActionEditFullText},
			{ActionCancel},
		},
	}
}
