package model

import (
	"github.com/uptrace/bun"
)

// Session backs the form workflow: the secret travels in a cookie, the
// token is embedded into the edit form as the anti-forgery field.
type Session struct {
	bun.BaseModel `bun:"table:sessions"`

	Secret           string `bun:"secret,pk"`          // required
	Token            string `bun:"token,notnull"`      // required
	CreatedAtUnixUTC int64  `bun:"created_at,notnull"` // required
}
