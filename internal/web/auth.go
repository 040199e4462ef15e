package web

import (
	"net/http"
	"strings"

	"coopweb/internal/api"
)

type loginData struct {
	BackendOnline bool
	Next          string
	Email         string
	Status        string
}

// Login renders the signin/signup page.
func (a *App) Login(w http.ResponseWriter, r *http.Request) {
	a.render(w, http.StatusOK, "login.html", loginData{
		BackendOnline: a.status.Online(),
		Next:          safeNext(r.FormValue("next")),
	})
}

// Signup registers the account, then signs straight in, mirroring the hosted
// UI's signup flow.
func (a *App) Signup(w http.ResponseWriter, r *http.Request) {
	creds := api.Credentials{Email: r.FormValue("email"), Password: r.FormValue("password")}
	if err := a.backend.Signup(r.Context(), creds); err != nil {
		a.renderLoginError(w, r, err)
		return
	}
	a.signin(w, r, creds)
}

// Signin opens a backend session and relays its cookies to the browser.
func (a *App) Signin(w http.ResponseWriter, r *http.Request) {
	creds := api.Credentials{Email: r.FormValue("email"), Password: r.FormValue("password")}
	a.signin(w, r, creds)
}

func (a *App) signin(w http.ResponseWriter, r *http.Request, creds api.Credentials) {
	cookies, err := a.backend.Signin(r.Context(), creds)
	if err != nil {
		a.renderLoginError(w, r, err)
		return
	}
	relayCookies(w, cookies)
	http.Redirect(w, r, safeNext(r.FormValue("next")), http.StatusSeeOther)
}

// Signout closes the backend session and relays the expired cookie so the
// browser forgets it too.
func (a *App) Signout(w http.ResponseWriter, r *http.Request) {
	sess := api.SessionFromRequest(r)
	message, cookies, err := a.backend.Signout(r.Context(), sess)
	if err != nil {
		a.logger.Warn().Err(err).Msg("signout failed")
		message = api.Message(err)
	}
	relayCookies(w, cookies)
	a.render(w, http.StatusOK, "login.html", loginData{
		BackendOnline: a.status.Online(),
		Next:          "/",
		Status:        message,
	})
}

func (a *App) renderLoginError(w http.ResponseWriter, r *http.Request, err error) {
	a.render(w, http.StatusOK, "login.html", loginData{
		BackendOnline: a.status.Online(),
		Next:          safeNext(r.FormValue("next")),
		Email:         r.FormValue("email"),
		Status:        api.Message(err),
	})
}

// relayCookies copies the backend's session cookies onto the gateway response,
// rescoped to the gateway's own origin.
func relayCookies(w http.ResponseWriter, cookies []*http.Cookie) {
	for _, c := range cookies {
		relayed := &http.Cookie{
			Name:     c.Name,
			Value:    c.Value,
			Path:     "/",
			MaxAge:   c.MaxAge,
			Expires:  c.Expires,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		}
		http.SetCookie(w, relayed)
	}
}

// safeNext keeps post-signin redirects on this site.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}
