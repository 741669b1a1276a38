package domain

// Role is the closed set of privilege levels an account (and therefore an
// invitation) can carry.
type Role string

const (
	RoleStudent      Role = "student"
	RoleCourseLeader Role = "course_leader"
	RoleAdmin        Role = "admin"
)

// ParseRole validates a raw role string against the closed enumeration.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleStudent, RoleCourseLeader, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

func (r Role) String() string { return string(r) }

// CanGrant reports whether an inviter holding role r may issue an invitation
// for the target role. Course leaders may only bring in students; admins may
// grant any role. Students never issue invitations.
func (r Role) CanGrant(target Role) bool {
	switch r {
	case RoleAdmin:
		return true
	case RoleCourseLeader:
		return target == RoleStudent
	default:
		return false
	}
}
