package api

import (
	"net/http"
	"time"
)

// Donation is a contribution record owned by a cooperative tag. A donation may
// stand alone or be referenced by exactly one supporter.
type Donation struct {
	ID        int64     `json:"id"`
	Coins     int64     `json:"coins"`
	DonatedAt time.Time `json:"donated_at"`
	IncomeEUR float64   `json:"income_eur"`
	CoOp      string    `json:"co_op"`
}

// Supporter is a named entity backed by exactly one donation record.
type Supporter struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	DonationID int64  `json:"donation_id"`
}

// DonationPayload is the write shape for donation create and update calls.
type DonationPayload struct {
	Coins     int64   `json:"coins"`
	IncomeEUR float64 `json:"income_eur"`
	CoOp      string  `json:"co_op"`
}

// SupporterPayload is the write shape for supporter create and update calls.
type SupporterPayload struct {
	Name       string `json:"name"`
	DonationID int64  `json:"donation_id"`
}

// Profile is the signed-in user as reported by GET /me.
type Profile struct {
	Email string `json:"email"`
}

// Session carries the caller's backend session cookies. The gateway never
// inspects them; they are forwarded verbatim on every resource call.
type Session struct {
	cookies []*http.Cookie
}

// SessionFromRequest captures the cookies of an incoming browser request.
func SessionFromRequest(r *http.Request) Session {
	return Session{cookies: r.Cookies()}
}

// SessionFromCookies builds a session from explicit cookies, mainly for tests
// and for the post-signin validation round trip.
func SessionFromCookies(cookies []*http.Cookie) Session {
	return Session{cookies: cookies}
}

func (s Session) apply(req *http.Request) {
	for _, c := range s.cookies {
		req.AddCookie(c)
	}
}
