package dynamo

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"goalsguild-backend/pkg/observability"
)

// Executor translates Operation descriptors into DynamoDB calls and
// returns typed Results. It holds no per-request state; each invocation
// derives everything from the descriptor.
type Executor struct {
	client *dynamodb.Client
	logger *zap.Logger
	tracer *observability.Tracer
}

// NewExecutor creates a new executor
func NewExecutor(client *dynamodb.Client, logger *zap.Logger, tracer *observability.Tracer) *Executor {
	return &Executor{
		client: client,
		logger: logger,
		tracer: tracer,
	}
}

// Execute runs the operation. Conditional-check failures are reported
// on the Result, never as opaque errors; anything else lands in
// Result.Err unmodified for the response mapper to classify.
func (e *Executor) Execute(ctx context.Context, op *Operation) *Result {
	if e.tracer == nil {
		return e.dispatch(ctx, op)
	}

	var res *Result
	_ = e.tracer.TraceFunction(ctx, fmt.Sprintf("dynamodb.%s", op.Kind), func(ctx context.Context) error {
		res = e.dispatch(ctx, op)
		return res.Err
	})
	return res
}

func (e *Executor) dispatch(ctx context.Context, op *Operation) *Result {
	switch op.Kind {
	case OpGet:
		return e.executeGet(ctx, op)
	case OpQuery:
		return e.executeQuery(ctx, op)
	case OpScan:
		return e.executeScan(ctx, op)
	case OpPut:
		return e.executePut(ctx, op)
	case OpDelete:
		return e.executeDelete(ctx, op)
	case OpTransactWrite:
		return e.executeTransactWrite(ctx, op)
	default:
		return &Result{Err: fmt.Errorf("unknown operation kind: %s", op.Kind)}
	}
}

func (e *Executor) executeGet(ctx context.Context, op *Operation) *Result {
	out, err := e.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(op.Table),
		Key:       itemKey(op.Key),
	})
	if err != nil {
		return &Result{Err: err}
	}
	return &Result{Item: out.Item}
}

func (e *Executor) executeQuery(ctx context.Context, op *Operation) *Result {
	input, err := BuildQueryInput(op)
	if err != nil {
		return &Result{Err: err}
	}

	out, err := e.client.Query(ctx, input)
	if err != nil {
		return &Result{Err: err}
	}

	token, err := encodeToken(out.LastEvaluatedKey)
	if err != nil {
		return &Result{Err: err}
	}
	return &Result{Items: out.Items, NextToken: token}
}

func (e *Executor) executeScan(ctx context.Context, op *Operation) *Result {
	input, err := BuildScanInput(op)
	if err != nil {
		return &Result{Err: err}
	}

	out, err := e.client.Scan(ctx, input)
	if err != nil {
		return &Result{Err: err}
	}

	token, err := encodeToken(out.LastEvaluatedKey)
	if err != nil {
		return &Result{Err: err}
	}
	return &Result{Items: out.Items, NextToken: token}
}

func (e *Executor) executePut(ctx context.Context, op *Operation) *Result {
	input := &dynamodb.PutItemInput{
		TableName: aws.String(op.Table),
		Item:      op.Item,
	}
	if op.Condition != "" {
		input.ConditionExpression = aws.String(op.Condition)
		if len(op.ConditionValues) > 0 {
			input.ExpressionAttributeValues = op.ConditionValues
		}
	}

	if _, err := e.client.PutItem(ctx, input); err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			e.logger.Debug("Conditional put rejected",
				zap.String("table", op.Table),
			)
			return &Result{CondFailed: true}
		}
		return &Result{Err: err}
	}
	return &Result{}
}

func (e *Executor) executeDelete(ctx context.Context, op *Operation) *Result {
	input := &dynamodb.DeleteItemInput{
		TableName: aws.String(op.Table),
		Key:       itemKey(op.Key),
	}
	if op.Condition != "" {
		input.ConditionExpression = aws.String(op.Condition)
		if len(op.ConditionValues) > 0 {
			input.ExpressionAttributeValues = op.ConditionValues
		}
	}

	if _, err := e.client.DeleteItem(ctx, input); err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			e.logger.Debug("Conditional delete rejected",
				zap.String("table", op.Table),
				zap.String("pk", op.Key.PK),
			)
			return &Result{CondFailed: true}
		}
		return &Result{Err: err}
	}
	return &Result{}
}

func (e *Executor) executeTransactWrite(ctx context.Context, op *Operation) *Result {
	items := make([]types.TransactWriteItem, 0, len(op.TransactItems))
	for _, ti := range op.TransactItems {
		put := &types.Put{
			TableName: aws.String(ti.Table),
			Item:      ti.Item,
		}
		if ti.Condition != "" {
			put.ConditionExpression = aws.String(ti.Condition)
		}
		items = append(items, types.TransactWriteItem{Put: put})
	}

	_, err := e.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			res := &Result{}
			for i, reason := range tce.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" && i < len(op.TransactItems) {
					res.CondFailed = true
					res.FailedReasons = append(res.FailedReasons, op.TransactItems[i].FailureReason)
				}
			}
			if res.CondFailed {
				e.logger.Debug("Transaction canceled by conditional check",
					zap.Strings("reasons", res.FailedReasons),
				)
				return res
			}
		}
		return &Result{Err: err}
	}
	return &Result{}
}

// BuildQueryInput translates a Query descriptor into SDK input.
// Exported so the translation is testable without a live client.
func BuildQueryInput(op *Operation) (*dynamodb.QueryInput, error) {
	if op.KeyCondition == nil {
		return nil, fmt.Errorf("query requires a key condition")
	}

	keyCond := expression.Key("PK").Equal(expression.Value(op.KeyCondition.PK))
	switch {
	case op.KeyCondition.SKPrefix != "":
		keyCond = keyCond.And(expression.Key("SK").BeginsWith(op.KeyCondition.SKPrefix))
	case op.KeyCondition.SKAfter != "":
		keyCond = keyCond.And(expression.Key("SK").GreaterThan(expression.Value(op.KeyCondition.SKAfter)))
	}

	builder := expression.NewBuilder().WithKeyCondition(keyCond)
	if filter, ok := buildFilter(op.Filters); ok {
		builder = builder.WithFilter(filter)
	}

	expr, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build query expression: %w", err)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(op.Table),
		KeyConditionExpression:    expr.KeyCondition(),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ScanIndexForward:          aws.Bool(op.ScanForward),
	}
	if op.Limit > 0 {
		input.Limit = aws.Int32(op.Limit)
	}
	if op.NextToken != "" {
		startKey, err := decodeToken(op.NextToken)
		if err != nil {
			return nil, err
		}
		input.ExclusiveStartKey = startKey
	}
	return input, nil
}

// BuildScanInput translates a Scan descriptor into SDK input
func BuildScanInput(op *Operation) (*dynamodb.ScanInput, error) {
	filter, ok := buildFilter(op.Filters)
	if !ok {
		return nil, fmt.Errorf("scan requires at least one filter")
	}

	expr, err := expression.NewBuilder().WithFilter(filter).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build scan expression: %w", err)
	}

	input := &dynamodb.ScanInput{
		TableName:                 aws.String(op.Table),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}
	if op.Limit > 0 {
		input.Limit = aws.Int32(op.Limit)
	}
	if op.NextToken != "" {
		startKey, err := decodeToken(op.NextToken)
		if err != nil {
			return nil, err
		}
		input.ExclusiveStartKey = startKey
	}
	return input, nil
}

func buildFilter(filters []Filter) (expression.ConditionBuilder, bool) {
	var cond expression.ConditionBuilder
	for i, f := range filters {
		clause := expression.Name(f.Attribute).Equal(expression.Value(f.Value))
		if i == 0 {
			cond = clause
		} else {
			cond = cond.And(clause)
		}
	}
	return cond, len(filters) > 0
}

func itemKey(key Key) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: key.PK},
		"SK": &types.AttributeValueMemberS{Value: key.SK},
	}
}

// Pagination tokens round-trip the LastEvaluatedKey opaquely; all key
// attributes in this schema are strings.
func encodeToken(lastKey map[string]types.AttributeValue) (string, error) {
	if len(lastKey) == 0 {
		return "", nil
	}
	plain := make(map[string]string, len(lastKey))
	for name, av := range lastKey {
		s, ok := av.(*types.AttributeValueMemberS)
		if !ok {
			return "", fmt.Errorf("unsupported key attribute type for %s", name)
		}
		plain[name] = s.Value
	}
	raw, err := json.Marshal(plain)
	if err != nil {
		return "", fmt.Errorf("failed to encode pagination token: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

func decodeToken(token string) (map[string]types.AttributeValue, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token: %w", err)
	}
	var plain map[string]string
	if err := json.Unmarshal(raw, &plain); err != nil {
		return nil, fmt.Errorf("invalid pagination token: %w", err)
	}
	key := make(map[string]types.AttributeValue, len(plain))
	for name, value := range plain {
		key[name] = &types.AttributeValueMemberS{Value: value}
	}
	return key, nil
}
