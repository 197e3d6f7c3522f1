package domain

// OperationKind names a transform applied to an encrypted value.
type OperationKind string

const (
	OpIncrease10Pct OperationKind = "increase_10pct"
	OpDecrease10Pct OperationKind = "decrease_10pct"
	OpDouble        OperationKind = "double"
	OpIdentity      OperationKind = "identity"
)

// operationFactors maps each supported operation to its multiplier.
var operationFactors = map[OperationKind]float64{
	OpIncrease10Pct: 1.1,
	OpDecrease10Pct: 0.9,
	OpDouble:        2,
	OpIdentity:      1,
}

// legacyOperations are the names used by records written before operation
// kinds were normalised.
var legacyOperations = map[string]OperationKind{
	"increase10%": OpIncrease10Pct,
	"decrease10%": OpDecrease10Pct,
}

// ParseOperationKind normalises a raw operation name. Unknown names are
// returned unchanged so the transform engine can reject them.
func ParseOperationKind(raw string) OperationKind {
	if op, ok := legacyOperations[raw]; ok {
		return op
	}
	return OperationKind(raw)
}

// Factor returns the multiplier for op and whether op is supported.
func (op OperationKind) Factor() (float64, bool) {
	f, ok := operationFactors[op]
	return f, ok
}
