package model

// Credential: запись хранилища: система, логин и пароль.
type Credential struct {
	ID       int64  `json:"id"`
	System   string `json:"system"`
	Login    string `json:"login"`
	Password string `json:"password"`
}
