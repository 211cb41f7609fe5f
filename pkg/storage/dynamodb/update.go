package dynamodb

import (
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// updateBuilder assembles an UpdateItem input from the non-nil fields of an
// update-by-key request. Attribute names are always aliased so reserved words
// like "status" and "type" are safe.
type updateBuilder struct {
	sets   []string
	conds  []string
	names  map[string]string
	values map[string]types.AttributeValue
	err    error
}

func newUpdateBuilder() *updateBuilder {
	return &updateBuilder{
		names:  make(map[string]string),
		values: make(map[string]types.AttributeValue),
	}
}

// set adds a SET clause for one attribute.
func (b *updateBuilder) set(attr string, value interface{}) {
	if b.err != nil {
		return
	}
	av, err := attributevalue.Marshal(value)
	if err != nil {
		b.err = fmt.Errorf("failed to marshal %s: %w", attr, err)
		return
	}
	name := fmt.Sprintf("#n%d", len(b.names))
	placeholder := fmt.Sprintf(":v%d", len(b.values))
	b.names[name] = attr
	b.values[placeholder] = av
	b.sets = append(b.sets, fmt.Sprintf("%s = %s", name, placeholder))
}

// expectEquals adds a condition that an attribute still holds a value.
func (b *updateBuilder) expectEquals(attr string, value interface{}) {
	if b.err != nil {
		return
	}
	av, err := attributevalue.Marshal(value)
	if err != nil {
		b.err = fmt.Errorf("failed to marshal expected %s: %w", attr, err)
		return
	}
	name := fmt.Sprintf("#n%d", len(b.names))
	placeholder := fmt.Sprintf(":v%d", len(b.values))
	b.names[name] = attr
	b.values[placeholder] = av
	b.conds = append(b.conds, fmt.Sprintf("%s = %s", name, placeholder))
}

// input finishes the builder into an UpdateItem request for the record with
// the given key. The update never upserts: a condition on the key's existence
// is always included.
func (b *updateBuilder) input(table, keyAttr, keyValue string) (*dynamodb.UpdateItemInput, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.sets) == 0 {
		return nil, fmt.Errorf("update for %s has no fields to set", keyValue)
	}

	conds := append([]string{fmt.Sprintf("attribute_exists(%s)", keyAttr)}, b.conds...)
	return &dynamodb.UpdateItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			keyAttr: &types.AttributeValueMemberS{Value: keyValue},
		},
		UpdateExpression:          aws.String("SET " + strings.Join(b.sets, ", ")),
		ConditionExpression:       aws.String(strings.Join(conds, " AND ")),
		ExpressionAttributeNames:  b.names,
		ExpressionAttributeValues: b.values,
		ReturnValues:              types.ReturnValueAllNew,
	}, nil
}
