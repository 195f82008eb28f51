package supervisor

import (
	"context"

	"github.com/codeready-toolchain/warden/ent"
	"github.com/codeready-toolchain/warden/pkg/models"
)

// Decision is what a policy tells the supervisor to do with a task.
// Inputs feed the decision record so the verdict is replayable.
type Decision struct {
	Action models.PolicyAction
	Reason string
	Inputs map[string]any
}

// Policy evaluates one inbox event. Policies never apply their own
// actions; the supervisor does, atomically with the inbox update.
type Policy interface {
	Name() string
	Evaluate(ctx context.Context, ev *ent.InboxEvent) (*Decision, error)
}

func allow(reason string, inputs map[string]any) *Decision {
	return decide(models.ActionAllow, reason, inputs)
}

func decide(action models.PolicyAction, reason string, inputs map[string]any) *Decision {
	if inputs == nil {
		inputs = map[string]any{}
	}
	inputs["action"] = string(action)
	return &Decision{Action: action, Reason: reason, Inputs: inputs}
}
