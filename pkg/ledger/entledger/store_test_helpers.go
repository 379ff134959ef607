package entledger

import (
	"time"

	"github.com/wilhg/toolgate/pkg/errmodel"
	"github.com/wilhg/toolgate/pkg/ledger"
)

// okRecord builds a successful record for tests.
func okRecord(callID, caller, tool string) ledger.Record {
	now := time.Now().UTC()
	return ledger.Record{
		CallID:    callID,
		CallerID:  caller,
		Tool:      tool,
		Arguments: map[string]any{"k": "v"},
		Result:    map[string]any{"ok": true},
		StartedAt: now,
		EndedAt:   now,
	}
}

// deniedRecord builds a policy-refused record for tests.
func deniedRecord(callID, caller, tool string) ledger.Record {
	now := time.Now().UTC()
	return ledger.Record{
		CallID:    callID,
		CallerID:  caller,
		Tool:      tool,
		Error:     errmodel.Denied(caller, tool),
		StartedAt: now,
		EndedAt:   now,
	}
}
