package web

import (
	"errors"
	"testing"
	"time"

	"coopweb/internal/api"
	"coopweb/internal/ledger"
)

func TestDonationsTableStates(t *testing.T) {
	table := donationsTable(nil, errors.New("dial tcp: connection refused"))
	if table.Error != "Error connecting to backend" {
		t.Fatalf("error state = %q", table.Error)
	}

	table = donationsTable(nil, &api.StatusError{Status: 500, Body: "database is down"})
	if table.Error != "database is down" {
		t.Fatalf("server text not surfaced: %q", table.Error)
	}

	table = donationsTable([]api.Donation{}, nil)
	if !table.Empty || table.Error != "" {
		t.Fatalf("expected empty state, got %+v", table)
	}

	donated := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	table = donationsTable([]api.Donation{
		{ID: 42, Coins: 5, DonatedAt: donated, IncomeEUR: 12.5, CoOp: "STUDIO-MATIC"},
	}, nil)
	if len(table.Rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(table.Rows))
	}
	row := table.Rows[0]
	if row.ID != 42 {
		t.Fatalf("row id = %d, want 42", row.ID)
	}
	if row.Donated != "01 Jun 2025" {
		t.Fatalf("date = %q", row.Donated)
	}
	if row.Income != "12.50" {
		t.Fatalf("income = %q, want 12.50", row.Income)
	}
}

func TestSupportersTableFlagsUnresolvedRows(t *testing.T) {
	joined := ledger.Join(nil, []api.Supporter{{ID: 1, Name: "Ana", DonationID: 9}})
	table := supportersTable(joined, nil)
	if len(table.Rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(table.Rows))
	}
	row := table.Rows[0]
	if row.Resolved {
		t.Fatalf("row must be unresolved")
	}
	if row.Name != "Ana" {
		t.Fatalf("name = %q", row.Name)
	}
	if row.Income != "data unavailable" || row.Donated != "data unavailable" {
		t.Fatalf("unresolved cells must read %q, got %+v", "data unavailable", row)
	}
}

func TestSupportersTableRendersResolvedRows(t *testing.T) {
	donated := time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)
	joined := ledger.Join(
		[]api.Donation{{ID: 9, DonatedAt: donated, IncomeEUR: 20, CoOp: "STUDIO-MATIC"}},
		[]api.Supporter{{ID: 1, Name: "Ana", DonationID: 9}},
	)
	table := supportersTable(joined, nil)
	row := table.Rows[0]
	if !row.Resolved {
		t.Fatalf("row must be resolved")
	}
	if row.Donated != "03 Feb 2025" || row.Income != "20.00" || row.CoOp != "STUDIO-MATIC" {
		t.Fatalf("unexpected joined cells: %+v", row)
	}
}

func TestInputAmountHasNoGrouping(t *testing.T) {
	if got := inputAmount(1234.5); got != "1234.50" {
		t.Fatalf("inputAmount = %q, want 1234.50", got)
	}
}
