package fsm

import (
	"context"
	"sync"

	"github.com/looplab/fsm"
)

// IssuanceStateMachine guards the lifecycle of one LNURL payment method
// record: a request awaits an amount, is issued at most once, and a record
// that failed or expired is rejected.
type IssuanceStateMachine struct {
	fsm *fsm.FSM
	mu  sync.Mutex
}

func NewIssuanceStateMachine() *IssuanceStateMachine {
	ism := &IssuanceStateMachine{}
	ism.fsm = fsm.NewFSM(
		PayStateAwaitingAmount,
		fsm.Events{
			{Name: PayEventAmountChosen, Src: []string{PayStateAwaitingAmount}, Dst: PayStateIssuing},
			{Name: PayEventIssued, Src: []string{PayStateIssuing}, Dst: PayStateIssued},
			{Name: PayEventIssueFailed, Src: []string{PayStateIssuing}, Dst: PayStateAwaitingAmount},
			{Name: PayEventSettle, Src: []string{PayStateIssued}, Dst: PayStateSettled},
			{Name: PayEventReject, Src: []string{PayStateAwaitingAmount, PayStateIssuing, PayStateIssued}, Dst: PayStateRejected},
		},
		fsm.Callbacks{},
	)

	return ism
}

func (ism *IssuanceStateMachine) CanTransition(currentState, event string) bool {
	ism.mu.Lock()
	defer ism.mu.Unlock()
	ism.fsm.SetState(currentState)

	return ism.fsm.Can(event)
}

func (ism *IssuanceStateMachine) Transition(ctx context.Context, currentState, event string) (string, error) {
	ism.mu.Lock()
	defer ism.mu.Unlock()
	ism.fsm.SetState(currentState)

	if err := ism.fsm.Event(ctx, event); err != nil {
		return "", err
	}

	return ism.fsm.Current(), nil
}
