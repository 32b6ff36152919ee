package dynamo

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// strKey builds a DynamoDB primary key map with a single string attribute.
func strKey(name, value string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		name: &types.AttributeValueMemberS{Value: value},
	}
}

// compositeKey builds a DynamoDB primary key with two string attributes (PK + SK).
func compositeKey(pkName, pkValue, skName, skValue string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		pkName: &types.AttributeValueMemberS{Value: pkValue},
		skName: &types.AttributeValueMemberS{Value: skValue},
	}
}

// UpdateExpr is a compiled DynamoDB SET expression with its attribute
// name/value substitution maps.
type UpdateExpr struct {
	Expr   string
	Names  map[string]string
	Values map[string]types.AttributeValue
}

// buildUpdateExpr converts a map of field->value into a DynamoDB SET
// expression. Fields are processed in sorted order so the expression is
// deterministic.
func buildUpdateExpr(updates map[string]interface{}) (*UpdateExpr, error) {
	if len(updates) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}
	keys := make([]string, 0, len(updates))
	for k := range updates {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	ue := &UpdateExpr{
		Names:  make(map[string]string, len(keys)),
		Values: make(map[string]types.AttributeValue, len(keys)),
	}
	parts := make([]string, 0, len(keys))
	for i, k := range keys {
		nameKey := fmt.Sprintf("#f%d", i)
		valueKey := fmt.Sprintf(":v%d", i)
		av, err := attributevalue.Marshal(updates[k])
		if err != nil {
			return nil, fmt.Errorf("marshal field %s: %w", k, err)
		}
		ue.Names[nameKey] = k
		ue.Values[valueKey] = av
		parts = append(parts, fmt.Sprintf("%s = %s", nameKey, valueKey))
	}
	ue.Expr = "SET " + strings.Join(parts, ", ")
	return ue, nil
}

// filterExpr accumulates an AND-conjunction of scan filter conditions.
type filterExpr struct {
	conds  []string
	values map[string]types.AttributeValue
}

// equals adds an `attr = :placeholder` condition.
func (f *filterExpr) equals(attr, placeholder string, value interface{}) {
	av, err := attributevalue.Marshal(value)
	if err != nil {
		// All callers pass strings or bools; Marshal cannot fail for those.
		panic(fmt.Sprintf("marshal filter value for %s: %v", attr, err))
	}
	if f.values == nil {
		f.values = make(map[string]types.AttributeValue)
	}
	f.conds = append(f.conds, fmt.Sprintf("%s = %s", attr, placeholder))
	f.values[placeholder] = av
}

// exists adds an attribute_exists / attribute_not_exists condition.
func (f *filterExpr) exists(attr string, present bool) {
	fn := "attribute_exists"
	if !present {
		fn = "attribute_not_exists"
	}
	f.conds = append(f.conds, fmt.Sprintf("%s(%s)", fn, attr))
}

// expression returns the joined FilterExpression, or "" when no condition
// was added.
func (f *filterExpr) expression() string {
	return strings.Join(f.conds, " AND ")
}
