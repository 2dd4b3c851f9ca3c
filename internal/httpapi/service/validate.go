package service

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"reviewhub/internal/httpapi/apierror"
	"reviewhub/internal/httpapi/models"
)

var (
	usernameRegexp = regexp.MustCompile(`^[\w.@+-]+$`)
	slugRegexp     = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
)

func validateUsername(username string) error {
	if !usernameRegexp.MatchString(username) {
		return apierror.Validation("username",
			"may contain only letters, digits and @/./+/-/_ characters")
	}
	// "me" collides with the self-service endpoint, any casing
	if strings.EqualFold(username, "me") {
		return apierror.Validation("username", `"me" is not a valid username`)
	}
	return nil
}

func validateSlug(slug string) error {
	if !slugRegexp.MatchString(slug) {
		return apierror.Validation("slug",
			"may contain only letters, digits, hyphens and underscores")
	}
	return nil
}

func validateScore(score int) error {
	if score < 1 || score > 10 {
		return apierror.Validation("score", "must be between 1 and 10")
	}
	return nil
}

func validateYear(year int) error {
	if current := time.Now().Year(); year > current {
		return apierror.Validation("year",
			fmt.Sprintf("cannot be later than %d", current))
	}
	return nil
}

func validateRole(role string) error {
	switch role {
	case models.RoleUser, models.RoleModerator, models.RoleAdmin:
		return nil
	}
	return apierror.Validation("role", "must be one of: user, moderator, admin")
}
