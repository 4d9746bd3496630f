package hist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"main/internal/model"
	"main/internal/model/enum"
)

func TestFileSinkAppendsLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "risk.txt")
	sink, err := NewFileSink(path, FormatRisk)
	require.NoError(t, err)
	defer sink.Close()

	bond := model.Bond{CUSIP: "9128283H1"}
	require.NoError(t, sink.ProcessAdd(model.PV01{Bond: bond, Value: 0.02, Quantity: 1_000_000}))
	require.NoError(t, sink.ProcessAdd(model.PV01{Bond: bond, Value: 0.02, Quantity: 600_000}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "9128283H1,0.02,1000000", lines[0])
	assert.Equal(t, "9128283H1,0.02,600000", lines[1])
}

func TestFormatPositionSortsBooks(t *testing.T) {
	pos := model.NewPosition(model.Bond{CUSIP: "9128283H1"})
	pos.Add("TRSY3", 500_000)
	pos.Add("TRSY1", 1_000_000)
	pos.Add("TRSY2", -400_000)

	got := FormatPosition(pos)
	assert.Equal(t, "9128283H1,TRSY1:1000000,TRSY2:-400000,TRSY3:500000,AGG:1100000", got)
}

func TestFormatExecution(t *testing.T) {
	o := model.ExecutionOrder{
		Bond:       model.Bond{CUSIP: "9128283H1"},
		Side:       enum.PricingSideBid,
		OrderID:    "A000000000002",
		Type:       enum.OrderTypeIOC,
		Price:      100 * model.PricePoint,
		VisibleQty: 1_000_000,
		HiddenQty:  2_000_000,
	}
	assert.Equal(t, "A000000000002,9128283H1,BID,IOC,100-000,1000000,2000000", FormatExecution(o))
}

func TestFormatStream(t *testing.T) {
	ps := model.PriceStream{
		Bond: model.Bond{CUSIP: "9128283H1"},
		Bid: model.StreamOrder{
			Price: 100*model.PricePoint - model.PriceTick, VisibleQty: 1_000_000, HiddenQty: 2_000_000,
		},
		Offer: model.StreamOrder{
			Price: 100*model.PricePoint + model.PriceTick, VisibleQty: 1_000_000, HiddenQty: 2_000_000,
		},
	}
	assert.Equal(t, "9128283H1,99-317,1000000,2000000,100-001,1000000,2000000", FormatStream(ps))
}

func TestFormatInquiry(t *testing.T) {
	inq := model.Inquiry{
		InquiryID: "INQ1",
		Bond:      model.Bond{CUSIP: "9128283H1"},
		Side:      enum.TradeSideBuy,
		Quantity:  1_000_000,
		Price:     100 * model.PricePoint,
		State:     enum.InquiryDone,
	}
	assert.Equal(t, "INQ1,9128283H1,BUY,1000000,100-000,DONE", FormatInquiry(inq))
}
