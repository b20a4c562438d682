package models

import "time"

// Session is one authenticated caller. The token is the only handle the
// caller ever sees; it carries no structure and means nothing outside the
// session store. Username points at a registry principal, it does not copy it.
type Session struct {
	Token     string
	Username  string
	Role      Role
	CreatedAt time.Time
}
