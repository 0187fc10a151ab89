package entity

type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session is what the sign-in stub hands back. The token is not verified
// anywhere.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type BidReceipt struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
