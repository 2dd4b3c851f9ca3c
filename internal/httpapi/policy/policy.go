// Package policy holds the role- and ownership-based access rules.
// Rules are plain predicates over an Actor; composition is OR, so any one
// satisfied rule grants access.
package policy

import "reviewhub/internal/httpapi/models"

// Actor is the caller identity extracted from a verified token.
// The zero value is an anonymous caller.
type Actor struct {
	ID            string
	Role          string
	IsStaff       bool
	Authenticated bool
}

func (a Actor) IsAdmin() bool {
	return a.Authenticated && (a.Role == models.RoleAdmin || a.IsStaff)
}

func (a Actor) IsModerator() bool {
	return a.Authenticated && a.Role == models.RoleModerator
}

// Rule is a single allow predicate.
type Rule func(Actor) bool

// Any combines rules with OR.
func Any(rules ...Rule) Rule {
	return func(a Actor) bool {
		for _, rule := range rules {
			if rule(a) {
				return true
			}
		}
		return false
	}
}

func Admin(a Actor) bool {
	return a.IsAdmin()
}

func Moderator(a Actor) bool {
	return a.IsModerator()
}

// Author allows the owner of an object, identified by its author id.
func Author(ownerID string) Rule {
	return func(a Actor) bool {
		return a.Authenticated && a.ID == ownerID
	}
}

// CanManageCatalog gates writes to categories, genres, titles and the
// admin user resource.
func CanManageCatalog(a Actor) bool {
	return Admin(a)
}

// CanModifyContent gates mutation of a review or comment owned by ownerID.
func CanModifyContent(a Actor, ownerID string) bool {
	return Any(Author(ownerID), Moderator, Admin)(a)
}

// FromUser builds an Actor from a stored user record.
func FromUser(u *models.User) Actor {
	return Actor{
		ID:            u.ID,
		Role:          u.Role,
		IsStaff:       u.IsStaff,
		Authenticated: true,
	}
}
