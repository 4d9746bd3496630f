package enum

// InquiryState is the negotiation state of a client inquiry.
type InquiryState uint8

const (
	_inquiryState_beg InquiryState = iota
	InquiryReceived
	InquiryQuoted
	InquiryDone
	InquiryRejected
	InquiryCustomerRejected
	_inquiryState_end
)

func (s InquiryState) IsAvailable() bool {
	return s > _inquiryState_beg && s < _inquiryState_end
}

// IsTerminal reports whether no further transition is valid from s.
// CUSTOMER_REJECTED is reachable from any state but is itself final.
func (s InquiryState) IsTerminal() bool {
	switch s {
	case InquiryDone, InquiryRejected, InquiryCustomerRejected:
		return true
	default:
		return false
	}
}

func (s InquiryState) String() string {
	switch s {
	case InquiryReceived:
		return "RECEIVED"
	case InquiryQuoted:
		return "QUOTED"
	case InquiryDone:
		return "DONE"
	case InquiryRejected:
		return "REJECTED"
	case InquiryCustomerRejected:
		return "CUSTOMER_REJECTED"
	default:
		return "UNKNOWN"
	}
}

// ParseInquiryState maps the feed spelling to an InquiryState.
func ParseInquiryState(s string) (InquiryState, bool) {
	switch s {
	case "RECEIVED":
		return InquiryReceived, true
	case "QUOTED":
		return InquiryQuoted, true
	case "DONE":
		return InquiryDone, true
	case "REJECTED":
		return InquiryRejected, true
	case "CUSTOMER_REJECTED":
		return InquiryCustomerRejected, true
	default:
		return _inquiryState_beg, false
	}
}
