package fsm

const (
	PayStateAwaitingAmount = "awaiting_amount"
	PayStateIssuing        = "issuing"
	PayStateIssued         = "issued"
	PayStateSettled        = "settled"
	PayStateRejected       = "rejected"
)

const (
	PayEventAmountChosen = "amount_chosen"
	PayEventIssued       = "issued"
	PayEventIssueFailed  = "issue_failed"
	PayEventSettle       = "settle"
	PayEventReject       = "reject"
)
