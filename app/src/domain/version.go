package domain

// Version is the release identity of the running service: the tag it was
// built from and the timestamp of that release. Load failures are folded into
// the fields as diagnostic text, so a Version is always renderable.
type Version struct {
	TagVersion       string
	ReleaseTimestamp string
}

func (v Version) String() string {
	return v.ReleaseTimestamp + " " + v.TagVersion
}
