package inquiry

import (
	"main/internal/model"
	"main/internal/model/enum"
)

// Quoter is the quoting connector: it answers a RECEIVED inquiry with a
// quote at the client's requested price and feeds it back as QUOTED.
type Quoter struct {
	svc *Service
}

func NewQuoter(svc *Service) *Quoter {
	return &Quoter{svc: svc}
}

// Publish flips a received inquiry to QUOTED and re-ingests it,
// completing the round-trip that drives the negotiation to DONE.
func (q *Quoter) Publish(inq model.Inquiry) error {
	if inq.State != enum.InquiryReceived {
		return nil
	}
	if err := q.svc.SendQuote(inq.InquiryID, inq.Price); err != nil {
		return err
	}
	inq.State = enum.InquiryQuoted
	return q.svc.OnMessage(inq)
}
