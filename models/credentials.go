package models

// Credentials are the portal login inputs. They come from the auth file or
// from the interactive prompt; the password is never logged.
type Credentials struct {
	Email    string
	Password string
}

// Complete reports whether both fields are filled in.
func (c Credentials) Complete() bool {
	return c.Email != "" && c.Password != ""
}
