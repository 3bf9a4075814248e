package model

type Principal struct {
	UserID string
	Role   string
}

func (p Principal) IsAnonymous() bool {
	return p.UserID == ""
}
