package repository

import (
	"context"
	"errors"
	"maps"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const dealIDIndex = "deal_id-index"

func stringKey(name, value string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{name: &types.AttributeValueMemberS{Value: value}}
}

// getItem reads one item by string key. found is false when it does not exist.
func getItem[T any](ctx context.Context, ddb *dynamodb.Client, table, keyName, keyValue string) (it T, found bool, err error) {
	out, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            stringKey(keyName, keyValue),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return it, false, err
	}
	if len(out.Item) == 0 {
		return it, false, nil
	}
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return it, false, err
	}
	return it, true, nil
}

// putItem writes an item. With mustExist the write only replaces an existing
// item; otherwise it only creates one. ok is false when that condition failed.
func putItem(ctx context.Context, ddb *dynamodb.Client, table, keyName string, item any, mustExist bool) (ok bool, err error) {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return false, err
	}
	cond := "attribute_not_exists(#id)"
	if mustExist {
		cond = "attribute_exists(#id)"
	}
	_, err = ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(table),
		Item:                     av,
		ConditionExpression:      aws.String(cond),
		ExpressionAttributeNames: map[string]string{"#id": keyName},
	})
	if isConditionFailed(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// deleteItem removes an item and reports whether it existed.
func deleteItem(ctx context.Context, ddb *dynamodb.Client, table, keyName, keyValue string) (bool, error) {
	out, err := ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(table),
		Key:          stringKey(keyName, keyValue),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

// queryIndex returns every item whose attr equals value on a string-keyed GSI.
func queryIndex[T any](ctx context.Context, ddb *dynamodb.Client, table, index, attr, value string) ([]T, error) {
	p := dynamodb.NewQueryPaginator(ddb, &dynamodb.QueryInput{
		TableName:                aws.String(table),
		IndexName:                aws.String(index),
		KeyConditionExpression:   aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{"#k": attr},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})

	var items []T
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var batch []T
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, err
		}
		items = append(items, batch...)
	}
	return items, nil
}

// scan walks the table page by page until limit matches were collected
// (limit <= 0 means all).
func scan[T any](ctx context.Context, ddb *dynamodb.Client, in *dynamodb.ScanInput, limit int) ([]T, error) {
	p := dynamodb.NewScanPaginator(ddb, in)

	var items []T
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var batch []T
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, err
		}
		items = append(items, batch...)
		if limit > 0 && len(items) >= limit {
			return items[:limit], nil
		}
	}
	return items, nil
}

func scanAll(table string) *dynamodb.ScanInput {
	return &dynamodb.ScanInput{TableName: aws.String(table)}
}

// prefixScan builds a scan matching attributes that begin with the lowered query.
func prefixScan(table string, attrs ...string) func(query string) *dynamodb.ScanInput {
	return func(query string) *dynamodb.ScanInput {
		names := make(map[string]string, len(attrs))
		conds := make([]string, 0, len(attrs))
		for i, a := range attrs {
			alias := "#a" + strconv.Itoa(i)
			names[alias] = a
			conds = append(conds, "begins_with("+alias+", :q)")
		}
		return &dynamodb.ScanInput{
			TableName:                aws.String(table),
			FilterExpression:         aws.String(strings.Join(conds, " OR ")),
			ExpressionAttributeNames: names,
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":q": &types.AttributeValueMemberS{Value: lower(query)},
			},
		}
	}
}

func isConditionFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

func lower(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func mergeNames(a, b map[string]string) map[string]string {
	out := make(map[string]string, len(a)+len(b))
	maps.Copy(out, a)
	maps.Copy(out, b)
	return out
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
