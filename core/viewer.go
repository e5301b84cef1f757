package core

// ViewerProfile is the displayable part of a Viewer. All fields are empty
// for anonymous visitors.
type ViewerProfile struct {
	Name      string
	Username  string
	Email     string
	AvatarURL string
}

// Viewer is a read-only projection of the current session, computed fresh
// per request. It is consumed by the navigation, the dashboard shell and the
// workflow authorization checks.
type Viewer struct {
	LoggedIn           bool
	Role               Role
	CanAccessDashboard bool
	Profile            ViewerProfile
}

// Guest is the logged-out projection.
func Guest() Viewer {
	return Viewer{}
}

// ResolveViewer derives the Viewer for a session user id. Zero means
// anonymous. Lookup failures must never break navigation, so they degrade to
// the guest projection; a missing role defaults to member.
func (c *CoreDB) ResolveViewer(uid int) Viewer {

	if uid == 0 {
		return Guest()
	}

	p, err := c.ProfileDB.GetProfile(uid)
	if err != nil {
		if !c.ProfileDB.IsNotFound(err) {
			c.Log.Warn().Err(err).Int("uid", uid).Msg("viewer lookup failed, degrading to guest")
		}
		return Guest()
	}

	var role = p.Role
	if !role.Valid() {
		role = Member
	}

	var v = Viewer{
		LoggedIn:           true,
		Role:               role,
		CanAccessDashboard: role.CanAccessDashboard(),
		Profile: ViewerProfile{
			Name:     p.Name,
			Username: p.Username,
			Email:    p.Email,
		},
	}

	if p.AvatarRef != "" && c.Uploads != nil {
		v.Profile.AvatarURL = c.Uploads.PublicURL(p.ID, p.AvatarRef)
	}

	return v
}
