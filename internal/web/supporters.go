package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"coopweb/internal/api"
	"coopweb/internal/ledger"
)

// SubmitSupporter handles the supporter form. Creates go through the ledger's
// two-step donation-then-supporter sequence; edits rename only, with the
// donation linkage fetched and resent unchanged.
func (a *App) SubmitSupporter(w http.ResponseWriter, r *http.Request) {
	sess := api.SessionFromRequest(r)

	form, err := ParseSupporterForm(r)
	if err != nil {
		a.renderIndex(w, r, http.StatusOK, indexOverrides{supporter: &supporterFormView{
			Editing: r.FormValue("id") != "",
			ID:      formValueID(r),
			Name:    r.FormValue("name"),
			Income:  r.FormValue("income_eur"),
			Status:  "Failed ❌: " + err.Error(),
		}})
		return
	}

	if form.Mode() == ModeEdit {
		_, err = a.ledger.UpdateSupporterName(r.Context(), sess, form.ID, form.Name)
	} else {
		_, err = a.ledger.CreateSupporterWithDonation(r.Context(), sess, form.Name, form.IncomeEUR)
	}
	if err != nil {
		a.logger.Warn().Err(err).Int64("id", form.ID).Msg("supporter submit failed")
		a.renderIndex(w, r, http.StatusOK, indexOverrides{supporter: &supporterFormView{
			Editing: form.Mode() == ModeEdit,
			ID:      form.ID,
			Name:    r.FormValue("name"),
			Income:  r.FormValue("income_eur"),
			Status:  "Failed ❌: " + supporterErrorText(err),
		}})
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// supporterErrorText renders a consistency failure distinctly from a plain
// one, so the user knows a donation now exists without its supporter.
func supporterErrorText(err error) string {
	var ce *ledger.ConsistencyError
	if errors.As(err, &ce) {
		return fmt.Sprintf("donation %d was saved but the supporter was not: %s",
			ce.DonationID, api.Message(ce.Err))
	}
	return api.Message(err)
}

// DeleteSupporter removes one supporter. Its donation is left in place.
func (a *App) DeleteSupporter(w http.ResponseWriter, r *http.Request) {
	sess := api.SessionFromRequest(r)
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := a.backend.DeleteSupporter(r.Context(), sess, id); err != nil {
		a.logger.Warn().Err(err).Int64("id", id).Msg("supporter delete failed")
		a.renderIndex(w, r, http.StatusOK, indexOverrides{supporter: &supporterFormView{
			Status: "Failed ❌: " + api.Message(err),
		}})
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
