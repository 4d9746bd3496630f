package position

import (
	"testing"

	"main/internal/flow"
	"main/internal/model"
	"main/internal/model/enum"
)

func trade(side enum.TradeSide, book string, qty model.Quantity) model.Trade {
	return model.Trade{
		Bond:     model.Bond{CUSIP: "9128283H1"},
		TradeID:  "T000000000001",
		Book:     book,
		Quantity: qty,
		Side:     side,
	}
}

func TestPositionsAggregateAcrossBooks(t *testing.T) {
	s := New()

	if err := s.AddTrade(trade(enum.TradeSideBuy, "TRSY1", 1_000_000)); err != nil {
		t.Fatalf("add trade failed: %+v", err)
	}
	if err := s.AddTrade(trade(enum.TradeSideSell, "TRSY2", 400_000)); err != nil {
		t.Fatalf("add trade failed: %+v", err)
	}

	pos, err := s.Get("9128283H1")
	if err != nil {
		t.Fatalf("get failed: %+v", err)
	}
	if got := pos.Aggregate(); got != 600_000 {
		t.Fatalf("aggregate mismatch! should be 600000 but got %d", got)
	}
	if pos.Books() != 2 {
		t.Fatalf("book count mismatch! should be 2 but got %d", pos.Books())
	}
	if got := pos.Quantity("TRSY1"); got != 1_000_000 {
		t.Fatalf("TRSY1 mismatch! should be 1000000 but got %d", got)
	}
	if got := pos.Quantity("TRSY2"); got != -400_000 {
		t.Fatalf("TRSY2 mismatch! should be -400000 but got %d", got)
	}
}

func TestEveryTradeNotifies(t *testing.T) {
	s := New()

	var notified int
	s.AddListener(flow.ListenerFuncs[*model.Position]{OnAdd: func(*model.Position) error {
		notified++
		return nil
	}})

	if err := s.AddTrade(trade(enum.TradeSideBuy, "TRSY1", 1_000_000)); err != nil {
		t.Fatalf("add trade failed: %+v", err)
	}
	if err := s.AddTrade(trade(enum.TradeSideBuy, "TRSY1", 2_000_000)); err != nil {
		t.Fatalf("add trade failed: %+v", err)
	}
	if notified != 2 {
		t.Fatalf("notification count mismatch! should be 2 but got %d", notified)
	}

	pos, err := s.Get("9128283H1")
	if err != nil {
		t.Fatalf("get failed: %+v", err)
	}
	if got := pos.Quantity("TRSY1"); got != 3_000_000 {
		t.Fatalf("merge mismatch! should be 3000000 but got %d", got)
	}
}
