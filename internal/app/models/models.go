package models

import "strings"

// Authority is a granted permission level derived from a user's role tags.
type Authority string

const (
	AuthorityStudent  Authority = "ROLE_STUDENT"
	AuthorityLecturer Authority = "ROLE_LECTURER"
	AuthorityTA       Authority = "ROLE_TA"
	AuthorityAdmin    Authority = "ROLE_ADMIN"
)

// roleAuthorities is the total mapping from free-text role tags to the
// fixed authority set. Matching is case-insensitive.
var roleAuthorities = map[string]Authority{
	"student":  AuthorityStudent,
	"lecturer": AuthorityLecturer,
	"ta":       AuthorityTA,
	"admin":    AuthorityAdmin,
}

// AuthorityForRole maps a single role tag to its authority. The second
// return value is false for unrecognized tags.
func AuthorityForRole(role string) (Authority, bool) {
	authority, ok := roleAuthorities[strings.ToLower(strings.TrimSpace(role))]
	return authority, ok
}

// AuthoritiesForRoles maps a set of role tags to authorities. Unrecognized
// tags are dropped, not rejected: an identity with a stray tag still logs in
// with whatever valid roles it holds.
func AuthoritiesForRoles(roles []string) []Authority {
	authorities := make([]Authority, 0, len(roles))
	for _, role := range roles {
		if authority, ok := AuthorityForRole(role); ok {
			authorities = append(authorities, authority)
		}
	}
	return authorities
}

// ApplicationStatus enumerates the lifecycle states of a TA application.
// Pending is the only non-terminal state.
type ApplicationStatus string

const (
	StatusPending   ApplicationStatus = "Pending"
	StatusAccepted  ApplicationStatus = "Accepted"
	StatusRejected  ApplicationStatus = "Rejected"
	StatusWithdrawn ApplicationStatus = "Withdrawn"
)

// IsTerminal reports whether no further transitions are allowed from s.
func (s ApplicationStatus) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected || s == StatusWithdrawn
}

// ValidOutcome reports whether s is a legal decision outcome for a pending
// application. Pending itself is not an outcome.
func ValidOutcome(s ApplicationStatus) bool {
	return s == StatusAccepted || s == StatusRejected || s == StatusWithdrawn
}

// NotificationStatus enumerates inbox item states. The transition is
// monotonic: Pending flips to Completed exactly once, on read.
type NotificationStatus string

const (
	NotificationPending   NotificationStatus = "Pending"
	NotificationCompleted NotificationStatus = "Completed"
)
