// Package screen holds the per-role controllers that bind view models and
// repositories together. Each screen exclusively owns the collections it
// displays; no screen mutates another screen's copy. Every mutating call is
// followed by a full list re-fetch, trading efficiency for guaranteed
// agreement with the backend's authoritative state.
package screen

// BannerLevel grades a user-facing message.
type BannerLevel string

const (
	BannerNone    BannerLevel = ""
	BannerSuccess BannerLevel = "success"
	BannerError   BannerLevel = "error"
)

// Banner is the one-line message a screen surfaces after an operation.
// Failures never propagate past the screen as unhandled faults; they land
// here instead.
type Banner struct {
	Level BannerLevel
	Text  string
}

func successBanner(text string) Banner {
	return Banner{Level: BannerSuccess, Text: text}
}

func errorBanner(text string) Banner {
	return Banner{Level: BannerError, Text: text}
}

// Empty reports whether there is nothing to show.
func (b Banner) Empty() bool {
	return b.Level == BannerNone
}
