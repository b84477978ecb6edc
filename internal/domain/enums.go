package domain

// Record status values. Rows are never hard-deleted: delete transitions
// status to StatusDeleted and is otherwise a normal update.
const (
	StatusDeleted  = 0
	StatusActive   = 1
	StatusDisabled = 2 // qr codes only
)

// BehaviorKind identifies one of the five reusable behavior content types.
// The kinds are opaque and interchangeable from this service's perspective;
// only identity and existence matter.
type BehaviorKind string

const (
	KindAction         BehaviorKind = "action"
	KindDance          BehaviorKind = "dance"
	KindExpression     BehaviorKind = "expression"
	KindSkill          BehaviorKind = "skill"
	KindExtendedAction BehaviorKind = "extended_action"
)

// BehaviorKinds lists all kinds in declaration order.
var BehaviorKinds = []BehaviorKind{
	KindAction,
	KindDance,
	KindExpression,
	KindSkill,
	KindExtendedAction,
}

// Valid reports whether k is one of the five known kinds.
func (k BehaviorKind) Valid() bool {
	switch k {
	case KindAction, KindDance, KindExpression, KindSkill, KindExtendedAction:
		return true
	}
	return false
}

func (k BehaviorKind) String() string { return string(k) }
