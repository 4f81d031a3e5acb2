package session

// Kind classifies the effective principal behind a session.
type Kind int

const (
	Anonymous Kind = iota
	RestaurantAdmin
	SuperAdmin
)

// Principal is the authorization view of a session. For a RestaurantAdmin,
// RestaurantID is the owned restaurant; for a SuperAdmin it is the acting
// restaurant and may be empty (unscoped).
type Principal struct {
	Kind         Kind
	AdminID      string
	RestaurantID string
}

// Scoped reports whether the principal has an effective restaurant.
func (p Principal) Scoped() bool { return p.RestaurantID != "" }

// Principal derives the effective principal. A logged-in restaurant admin
// without a restaurant id is a malformed session and counts as anonymous.
func (s Session) Principal() Principal {
	if !s.IsLoggedIn || s.AdminID == "" {
		return Principal{Kind: Anonymous}
	}
	if s.IsSuperAdmin {
		return Principal{Kind: SuperAdmin, AdminID: s.AdminID, RestaurantID: s.RestaurantID}
	}
	if s.RestaurantID == "" {
		return Principal{Kind: Anonymous}
	}
	return Principal{Kind: RestaurantAdmin, AdminID: s.AdminID, RestaurantID: s.RestaurantID}
}
