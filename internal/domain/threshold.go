package domain

import "fmt"

// ThresholdKind discriminates the workspace approval-threshold variants.
// The stored representation is a nullable integer whose states carry
// different meanings (null: never, 0: always, n: older than n days); the
// tagged form keeps each branch structurally distinct.
type ThresholdKind string

const (
	// ThresholdNoApproval means direct edits are always allowed.
	ThresholdNoApproval ThresholdKind = "no_approval"

	// ThresholdLoading means the workspace setting has not resolved yet.
	// It fails safe: approval is required until the real value is known.
	ThresholdLoading ThresholdKind = "loading"

	// ThresholdImmediate (stored value 0) requires approval for every
	// backdated entry regardless of age.
	ThresholdImmediate ThresholdKind = "immediate"

	// ThresholdAfterDays requires approval only for timestamps older
	// than Days days.
	ThresholdAfterDays ThresholdKind = "after_days"
)

// ThresholdPolicy is the workspace-scoped approval configuration.
type ThresholdPolicy struct {
	Kind ThresholdKind

	// Days is meaningful only when Kind is ThresholdAfterDays.
	Days int
}

func NoApprovalPolicy() ThresholdPolicy {
	return ThresholdPolicy{Kind: ThresholdNoApproval}
}

func LoadingPolicy() ThresholdPolicy {
	return ThresholdPolicy{Kind: ThresholdLoading}
}

func ImmediatePolicy() ThresholdPolicy {
	return ThresholdPolicy{Kind: ThresholdImmediate}
}

func AfterDaysPolicy(days int) ThresholdPolicy {
	return ThresholdPolicy{Kind: ThresholdAfterDays, Days: days}
}

// PolicyFromStored converts the raw stored threshold value into its
// tagged form: nil means no approval, 0 means immediate, a positive
// value means after that many days.
func PolicyFromStored(v *int) (ThresholdPolicy, error) {
	switch {
	case v == nil:
		return NoApprovalPolicy(), nil
	case *v == 0:
		return ImmediatePolicy(), nil
	case *v > 0:
		return AfterDaysPolicy(*v), nil
	default:
		return ThresholdPolicy{}, fmt.Errorf("negative threshold value %d", *v)
	}
}

// StoredValue converts a resolved policy back to its nullable-integer
// storage form. Calling it on a loading policy is a programming error.
func (p ThresholdPolicy) StoredValue() *int {
	switch p.Kind {
	case ThresholdNoApproval:
		return nil
	case ThresholdImmediate:
		zero := 0
		return &zero
	case ThresholdAfterDays:
		d := p.Days
		return &d
	default:
		panic(fmt.Sprintf("threshold policy %q has no stored form", p.Kind))
	}
}
