package recipes

import "strings"

// MaxTextLen bounds both the teaser and the full recipe text.
const MaxTextLen = 200

type Stage string

const (
	StageAwaitingTeaser       Stage = "awaiting_teaser"
	StageAwaitingFullText     Stage = "awaiting_full_text"
	StageAwaitingConfirmation Stage = "awaiting_confirmation"
)

type MediaKind string

const (
	MediaPhoto MediaKind = "photo"
	MediaVideo MediaKind = "video"
)

// MediaRef points at an already-uploaded Telegram file; the bot never
// re-uploads media, it forwards the file ID it was given.
type MediaRef struct {
	Kind   MediaKind
	FileID string
}

// EditTarget selects which field a confirmation-stage edit re-opens.
type EditTarget string

const (
	EditTeaser   EditTarget = "teaser"
	EditFullText EditTarget = "full_text"
)

// Draft is one in-progress authoring session. FullText is set only once
// the draft has reached the confirmation stage at least once.
type Draft struct {
	Teaser   string
	Media    *MediaRef
	FullText string
	Stage    Stage
}

func NewDraft() *Draft {
	return &Draft{Stage: StageAwaitingTeaser}
}

// SubmitTeaser stores the teaser and optional media and advances to the
// full-text stage. Media replaces any previously captured attachment,
// including clearing it when the re-submitted message has none.
func (d *Draft) SubmitTeaser(text string, media *MediaRef) error {
	if d.Stage != StageAwaitingTeaser {
		return &StateError{Expected: StageAwaitingTeaser, Actual: d.Stage}
	}
	if text == "" {
		return &ValidationError{Field: FieldTeaser, Reason: ReasonEmpty}
	}
	if len([]rune(text)) > MaxTextLen {
		return &ValidationError{Field: FieldTeaser, Reason: ReasonTooLong, Length: len([]rune(text))}
	}
	d.Teaser = text
	d.Media = media
	d.Stage = StageAwaitingFullText
	return nil
}

// SubmitFullText stores the trimmed recipe body and advances to
// confirmation.
func (d *Draft) SubmitFullText(text string) error {
	if d.Stage != StageAwaitingFullText {
		return &StateError{Expected: StageAwaitingFullText, Actual: d.Stage}
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return &ValidationError{Field: FieldFullText, Reason: ReasonEmpty}
	}
	if len([]rune(trimmed)) > MaxTextLen {
		return &ValidationError{Field: FieldFullText, Reason: ReasonTooLong, Length: len([]rune(trimmed))}
	}
	d.FullText = trimmed
	d.Stage = StageAwaitingConfirmation
	return nil
}

// RequestEdit re-opens one field from the confirmation stage. The other
// field keeps its captured value; only the targeted one is overwritten
// by the next submit.
func (d *Draft) RequestEdit(target EditTarget) error {
	if d.Stage != StageAwaitingConfirmation {
		return &StateError{Expected: StageAwaitingConfirmation, Actual: d.Stage}
	}
	switch target {
	case EditTeaser:
		d.Stage = StageAwaitingTeaser
	case EditFullText:
		d.Stage = StageAwaitingFullText
	default:
		return &StateError{Expected: StageAwaitingConfirmation, Actual: d.Stage}
	}
	return nil
}

// Complete reports whether the draft is ready to publish.
func (d *Draft) Complete() bool {
	return d.Stage == StageAwaitingConfirmation && d.Teaser != "" && d.FullText != ""
}
