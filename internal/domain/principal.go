package domain

// Principal identifies the authenticated admin performing a moderation
// operation. It is passed explicitly; there is no ambient session state.
type Principal struct {
	Name string
}

func (p Principal) Authenticated() bool {
	return p.Name != ""
}
