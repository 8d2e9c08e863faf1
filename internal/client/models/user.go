package models

// SessionUser holds the denormalized profile of the signed-in admin. It
// lives in memory only and is owned by the session service: populated on
// login, refreshed by keep-login, dropped on logout or session expiry.
type SessionUser struct {
	Fullname   string `json:"fullname"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Jabatan    string `json:"jabatan"`
	ImgProfile string `json:"imgProfile,omitempty"`
}

// NewAdmin is the payload for registering another admin account. The
// password confirmation is checked client-side and never sent.
type NewAdmin struct {
	Fullname string `json:"fullname"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Jabatan  string `json:"jabatan"`
	Password string `json:"password"`
}
