package models

// User holds a stored credential: Password is the hex digest, never the
// plaintext.
type User struct {
	Username string `db:"username" json:"username"`
	Password string `db:"password" json:"-"`
}
