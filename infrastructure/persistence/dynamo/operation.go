package dynamo

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// OperationKind enumerates the storage operations a field resolver may
// request. Each resolver produces exactly one operation per invocation.
type OperationKind string

const (
	OpGet           OperationKind = "GetItem"
	OpQuery         OperationKind = "Query"
	OpScan          OperationKind = "Scan"
	OpPut           OperationKind = "PutItem"
	OpTransactWrite OperationKind = "TransactWrite"
	OpDelete        OperationKind = "DeleteItem"
)

// Key addresses a single item
type Key struct {
	PK string
	SK string
}

// KeyCondition expresses a Query key condition: PK equality plus at
// most one sort-key clause.
type KeyCondition struct {
	PK       string
	SKPrefix string // begins_with(SK, ...) when non-empty
	SKAfter  string // SK > ... when non-empty
}

// Filter is one equality clause added to a filter expression. Absent
// optional arguments contribute no clause.
type Filter struct {
	Attribute string
	Value     string
}

// TransactPut is one conditional put inside a transactional write
type TransactPut struct {
	Table     string
	Item      map[string]types.AttributeValue
	Condition string
	// FailureReason labels a conditional failure of this item so the
	// mapper can report which constraint was violated.
	FailureReason string
}

// Operation is the single storage operation descriptor built by a
// field resolver. Only the fields relevant to Kind are set.
type Operation struct {
	Kind  OperationKind
	Table string

	// GetItem / DeleteItem / PutItem
	Key             Key
	Item            map[string]types.AttributeValue
	Condition       string // condition expression for Put/Delete
	ConditionValues map[string]types.AttributeValue

	// Query / Scan
	KeyCondition *KeyCondition
	Filters      []Filter
	Limit        int32
	ScanForward  bool
	NextToken    string

	// TransactWrite
	TransactItems []TransactPut
}

// Result is the typed outcome of executing an Operation. Conditional
// failures surface as data, not as error text to be sniffed.
type Result struct {
	Item      map[string]types.AttributeValue
	Items     []map[string]types.AttributeValue
	NextToken string

	// CondFailed is set when the operation was rejected by a condition
	// expression (including transaction cancellation where at least one
	// item failed its conditional check).
	CondFailed bool

	// FailedReasons carries the FailureReason labels of transact items
	// whose conditional checks failed.
	FailedReasons []string

	// Err is any other upstream storage error, unmodified
	Err error
}

// StringValues builds an expression attribute value map from plain
// strings, the only value type condition expressions here need.
func StringValues(values map[string]string) map[string]types.AttributeValue {
	out := make(map[string]types.AttributeValue, len(values))
	for k, v := range values {
		out[k] = &types.AttributeValueMemberS{Value: v}
	}
	return out
}

// ClampLimit applies the default when the caller omitted a limit and
// the server-side ceiling regardless of what was requested.
func ClampLimit(requested, def, max int32) int32 {
	if requested <= 0 {
		requested = def
	}
	if requested > max {
		return max
	}
	return requested
}
