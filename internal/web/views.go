package web

import (
	"coopweb/internal/api"
	"coopweb/internal/ledger"
)

const unavailable = "data unavailable"

// DonationRow is one rendered donation. ID rides along so the row's edit and
// delete controls address the right backend record.
type DonationRow struct {
	ID      int64
	Coins   int64
	Donated string
	Income  string
	CoOp    string
}

// DonationsTable is the render state of the donations table: rows, an
// empty-state placeholder, or an error placeholder from a failed fetch.
type DonationsTable struct {
	Rows  []DonationRow
	Empty bool
	Error string
}

func donationsTable(donations []api.Donation, err error) DonationsTable {
	if err != nil {
		return DonationsTable{Error: api.Message(err)}
	}
	if len(donations) == 0 {
		return DonationsTable{Empty: true}
	}
	rows := make([]DonationRow, 0, len(donations))
	for _, d := range donations {
		rows = append(rows, DonationRow{
			ID:      d.ID,
			Coins:   d.Coins,
			Donated: formatDate(d.DonatedAt),
			Income:  formatEUR(d.IncomeEUR),
			CoOp:    d.CoOp,
		})
	}
	return DonationsTable{Rows: rows}
}

// SupporterRow is one rendered supporter joined with its donation. A row whose
// donation reference did not resolve shows placeholders in the donation cells.
type SupporterRow struct {
	ID       int64
	Name     string
	Donated  string
	Income   string
	CoOp     string
	Resolved bool
}

// SupportersTable is the render state of the supporters table.
type SupportersTable struct {
	Rows  []SupporterRow
	Empty bool
	Error string
}

func supportersTable(joined []ledger.JoinedSupporter, err error) SupportersTable {
	if err != nil {
		return SupportersTable{Error: api.Message(err)}
	}
	if len(joined) == 0 {
		return SupportersTable{Empty: true}
	}
	rows := make([]SupporterRow, 0, len(joined))
	for _, j := range joined {
		row := SupporterRow{
			ID:       j.Supporter.ID,
			Name:     j.Supporter.Name,
			Resolved: j.Resolved,
		}
		if j.Resolved {
			row.Donated = formatDate(j.Donation.DonatedAt)
			row.Income = formatEUR(j.Donation.IncomeEUR)
			row.CoOp = j.Donation.CoOp
		} else {
			row.Donated = unavailable
			row.Income = unavailable
			row.CoOp = unavailable
		}
		rows = append(rows, row)
	}
	return SupportersTable{Rows: rows}
}
