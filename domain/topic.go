package domain

// Topic is a help-center article. ViewCount and HelpfulCount only ever
// increase, through the store's record operations; ManualOrder ranks
// topics editorially (lower means higher priority).
type Topic struct {
	ID           int64    `db:"id" json:"id"`
	Title        string   `db:"title" json:"title"`
	Body         string   `db:"body" json:"body"`
	Category     string   `db:"category" json:"category"`
	Tags         []string `db:"-" json:"tags,omitempty"`
	ViewCount    int64    `db:"view_count" json:"view_count"`
	HelpfulCount int64    `db:"helpful_count" json:"helpful_count"`
	ManualOrder  int      `db:"manual_order" json:"manual_order"`
}

// SearchFields lists the strings the text filter matches against.
func (t Topic) SearchFields() []string {
	fields := []string{t.Title, t.Body}
	return append(fields, t.Tags...)
}

func (t Topic) CategoryKey() string {
	return t.Category
}

// Popular reports whether the topic crossed the view threshold used
// for the "Popular" badge on the help screen.
func (t Topic) Popular() bool {
	return t.ViewCount > 100
}

// VeryHelpful reports whether the topic crossed the helpful-vote
// threshold used for the "Most helpful" badge.
func (t Topic) VeryHelpful() bool {
	return t.HelpfulCount > 50
}
