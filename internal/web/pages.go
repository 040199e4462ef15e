package web

import (
	"net/http"
	"net/url"
	"strconv"

	"coopweb/internal/api"
)

type donationFormView struct {
	Editing bool
	ID      int64
	Coins   string
	Income  string
	Heading string
	Submit  string
	Status  string
}

func (v *donationFormView) finalize() {
	if v.Editing {
		v.Heading = "Update a donation"
		v.Submit = "Update Donation"
	} else {
		v.Heading = "Add a new donation"
		v.Submit = "Add Donation"
	}
}

type supporterFormView struct {
	Editing bool
	ID      int64
	Name    string
	Income  string
	Heading string
	Submit  string
	Status  string
}

func (v *supporterFormView) finalize() {
	if v.Editing {
		v.Heading = "Update a supporter"
		v.Submit = "Update Supporter"
	} else {
		v.Heading = "Add a new supporter"
		v.Submit = "Add Supporter"
	}
}

type indexData struct {
	BackendOnline bool
	Email         string
	Donations     DonationsTable
	Supporters    SupportersTable
	DonationForm  donationFormView
	SupporterForm supporterFormView
}

// indexOverrides carries form state that survives a failed submit: the entered
// values plus the error text, so the page re-renders in the same mode.
type indexOverrides struct {
	donation  *donationFormView
	supporter *supporterFormView
}

// Index renders the main page. Logged-out visitors are sent to the login page
// with a return target, the way the hosted UI does.
func (a *App) Index(w http.ResponseWriter, r *http.Request) {
	sess := api.SessionFromRequest(r)
	if err := a.backend.Validate(r.Context(), sess); err != nil {
		http.Redirect(w, r, "/login?next="+url.QueryEscape(r.URL.Path), http.StatusSeeOther)
		return
	}
	a.renderIndex(w, r, http.StatusOK, indexOverrides{})
}

// renderIndex refetches both collections and renders the page. It backs both
// the plain GET and the re-render after a failed mutation; each call is an
// independent refresh, so the last completed render simply wins.
func (a *App) renderIndex(w http.ResponseWriter, r *http.Request, code int, o indexOverrides) {
	ctx := r.Context()
	sess := api.SessionFromRequest(r)

	donations, donationsErr := a.backend.ListDonations(ctx, sess)
	joined, supportersErr := a.ledger.SupporterOverview(ctx, sess)

	data := indexData{
		BackendOnline: a.status.Online(),
		Donations:     donationsTable(donations, donationsErr),
		Supporters:    supportersTable(joined, supportersErr),
	}
	if me, err := a.backend.Me(ctx, sess); err == nil {
		data.Email = me.Email
	}

	if o.donation != nil {
		data.DonationForm = *o.donation
	} else if id, ok := queryID(r, "edit-donation"); ok && donationsErr == nil {
		// Populate from the values just listed, not a fresh fetch.
		for _, d := range donations {
			if d.ID == id {
				data.DonationForm = donationFormView{
					Editing: true,
					ID:      d.ID,
					Coins:   strconv.FormatInt(d.Coins, 10),
					Income:  inputAmount(d.IncomeEUR),
				}
				break
			}
		}
	}
	data.DonationForm.finalize()

	if o.supporter != nil {
		data.SupporterForm = *o.supporter
	} else if id, ok := queryID(r, "edit-supporter"); ok && supportersErr == nil {
		for _, j := range joined {
			if j.Supporter.ID == id {
				data.SupporterForm = supporterFormView{
					Editing: true,
					ID:      j.Supporter.ID,
					Name:    j.Supporter.Name,
				}
				break
			}
		}
	}
	data.SupporterForm.finalize()

	a.render(w, code, "index.html", data)
}

func queryID(r *http.Request, key string) (int64, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
