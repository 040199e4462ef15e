package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"coopweb/internal/api"
	"coopweb/internal/ledger"
)

// SubmitDonation handles the donation form. The hidden id decides between
// create and update; success redirects to a clean page, which both refreshes
// the tables and drops the form back to create mode.
func (a *App) SubmitDonation(w http.ResponseWriter, r *http.Request) {
	sess := api.SessionFromRequest(r)

	form, err := ParseDonationForm(r)
	if err != nil {
		a.renderIndex(w, r, http.StatusOK, indexOverrides{donation: &donationFormView{
			Editing: r.FormValue("id") != "",
			ID:      formValueID(r),
			Coins:   r.FormValue("coins"),
			Income:  r.FormValue("income_eur"),
			Status:  "Failed ❌: " + err.Error(),
		}})
		return
	}

	payload := api.DonationPayload{Coins: form.Coins, IncomeEUR: form.IncomeEUR, CoOp: ledger.CoOpTag}
	if form.Mode() == ModeEdit {
		_, err = a.backend.UpdateDonation(r.Context(), sess, form.ID, payload)
	} else {
		_, err = a.backend.CreateDonation(r.Context(), sess, payload)
	}
	if err != nil {
		a.logger.Warn().Err(err).Int64("id", form.ID).Msg("donation submit failed")
		a.renderIndex(w, r, http.StatusOK, indexOverrides{donation: &donationFormView{
			Editing: form.Mode() == ModeEdit,
			ID:      form.ID,
			Coins:   r.FormValue("coins"),
			Income:  r.FormValue("income_eur"),
			Status:  "Failed ❌: " + api.Message(err),
		}})
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// DeleteDonation removes one donation and refreshes. The table keeps its last
// rendered state on failure; nothing is removed optimistically.
func (a *App) DeleteDonation(w http.ResponseWriter, r *http.Request) {
	sess := api.SessionFromRequest(r)
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := a.backend.DeleteDonation(r.Context(), sess, id); err != nil {
		a.logger.Warn().Err(err).Int64("id", id).Msg("donation delete failed")
		a.renderIndex(w, r, http.StatusOK, indexOverrides{donation: &donationFormView{
			Status: "Failed ❌: " + api.Message(err),
		}})
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func formValueID(r *http.Request) int64 {
	id, err := strconv.ParseInt(r.FormValue("id"), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
