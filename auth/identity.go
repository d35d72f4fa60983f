package auth

// Identity is the owner key the cart and order engines operate on: either
// an authenticated user id or an anonymous session key, never both. It is
// resolved once per request by the middleware and passed explicitly.
type Identity struct {
	UserID     uint
	SessionKey string
}

func UserIdentity(id uint) Identity       { return Identity{UserID: id} }
func SessionIdentity(key string) Identity { return Identity{SessionKey: key} }

// Authenticated reports whether the identity belongs to a logged-in user.
func (id Identity) Authenticated() bool { return id.UserID != 0 }
