package differ

import (
	"fmt"

	"github.com/erraggy/contractdiff/internal/httputil"
	"github.com/erraggy/contractdiff/internal/maputil"
)

type indexedParameter struct {
	name  string
	in    string
	value map[string]any
}

// indexParameters keys an operation's parameters by "name:in".
// Later duplicates replace earlier ones.
func indexParameters(op map[string]any) map[string]indexedParameter {
	params := make(map[string]indexedParameter)
	for _, raw := range maputil.Slice(op["parameters"]) {
		p := maputil.Map(raw)
		if p == nil {
			continue
		}
		key, name, in := parameterIdentity(p)
		params[key] = indexedParameter{name: name, in: in, value: p}
	}
	return params
}

// diffParameters compares operation parameters by name and location.
// Only presence and the required flag are compared.
func (d *Differ) diffParameters(loc string, oldOp, newOp map[string]any) []ChangeItem {
	oldParams, newParams := indexParameters(oldOp), indexParameters(newOp)
	kd := maputil.DiffKeys(oldParams, newParams)

	var changes []ChangeItem
	for _, key := range kd.Removed {
		p := oldParams[key]
		c := ChangeItem{
			Category: CategoryParameter,
			Location: fmt.Sprintf("%s.parameters[%s]", loc, p.name),
			OldValue: p.value,
		}
		if maputil.Bool(p.value["required"]) {
			c.Type, c.Severity = ChangeTypeBreaking, SeverityHigh
			c.Description = fmt.Sprintf("Required parameter %s was removed from %s", describeParameter(p.name, p.in), loc)
		} else {
			c.Type, c.Severity = ChangeTypeInformational, SeverityMedium
			c.Description = fmt.Sprintf("Optional parameter %s was removed from %s", describeParameter(p.name, p.in), loc)
		}
		changes = append(changes, c)
	}

	for _, key := range kd.Added {
		p := newParams[key]
		c := ChangeItem{
			Category: CategoryParameter,
			Location: fmt.Sprintf("%s.parameters[%s]", loc, p.name),
			NewValue: p.value,
		}
		if maputil.Bool(p.value["required"]) {
			// existing callers do not send it
			c.Type, c.Severity = ChangeTypeBreaking, SeverityMedium
			c.Description = fmt.Sprintf("Required parameter %s was added to %s", describeParameter(p.name, p.in), loc)
		} else {
			c.Type, c.Severity = ChangeTypeAdditive, SeverityLow
			c.Description = fmt.Sprintf("Optional parameter %s was added to %s", describeParameter(p.name, p.in), loc)
		}
		changes = append(changes, c)
	}

	for _, key := range kd.Shared {
		oldP, newP := oldParams[key], newParams[key]
		wasRequired, isRequired := maputil.Bool(oldP.value["required"]), maputil.Bool(newP.value["required"])
		if wasRequired == isRequired {
			continue
		}
		c := ChangeItem{
			Category: CategoryParameter,
			Location: fmt.Sprintf("%s.parameters[%s]", loc, newP.name),
			OldValue: wasRequired,
			NewValue: isRequired,
		}
		if isRequired {
			c.Type, c.Severity = ChangeTypeBreaking, SeverityHigh
			c.Description = fmt.Sprintf("Parameter %s of %s became required", describeParameter(newP.name, newP.in), loc)
		} else {
			c.Type, c.Severity = ChangeTypeAdditive, SeverityLow
			c.Description = fmt.Sprintf("Parameter %s of %s became optional", describeParameter(newP.name, newP.in), loc)
		}
		changes = append(changes, c)
	}

	return changes
}

// diffRequestBody compares request body presence and its required flag.
// A body that becomes optional is not reported.
func (d *Differ) diffRequestBody(loc string, oldOp, newOp map[string]any) []ChangeItem {
	oldBody, newBody := oldOp["requestBody"], newOp["requestBody"]
	bodyLoc := loc + ".requestBody"

	switch {
	case oldBody == nil && newBody == nil:
		return nil

	case oldBody == nil:
		if maputil.Bool(maputil.Map(newBody)["required"]) {
			return []ChangeItem{{
				Type:        ChangeTypeBreaking,
				Category:    CategoryRequestBody,
				Location:    bodyLoc,
				Description: fmt.Sprintf("Required request body was added to %s", loc),
				NewValue:    newBody,
				Severity:    SeverityMedium,
			}}
		}
		return []ChangeItem{{
			Type:        ChangeTypeAdditive,
			Category:    CategoryRequestBody,
			Location:    bodyLoc,
			Description: fmt.Sprintf("Optional request body was added to %s", loc),
			NewValue:    newBody,
			Severity:    SeverityLow,
		}}

	case newBody == nil:
		return []ChangeItem{{
			Type:        ChangeTypeBreaking,
			Category:    CategoryRequestBody,
			Location:    bodyLoc,
			Description: fmt.Sprintf("Request body was removed from %s", loc),
			OldValue:    oldBody,
			Severity:    SeverityHigh,
		}}
	}

	wasRequired := maputil.Bool(maputil.Map(oldBody)["required"])
	isRequired := maputil.Bool(maputil.Map(newBody)["required"])
	if !wasRequired && isRequired {
		return []ChangeItem{{
			Type:        ChangeTypeBreaking,
			Category:    CategoryRequestBody,
			Location:    bodyLoc,
			Description: fmt.Sprintf("Request body of %s became required", loc),
			OldValue:    wasRequired,
			NewValue:    isRequired,
			Severity:    SeverityHigh,
		}}
	}
	return nil
}

// diffResponses compares documented status codes.
func (d *Differ) diffResponses(loc string, oldOp, newOp map[string]any) []ChangeItem {
	oldResp, newResp := maputil.Map(oldOp["responses"]), maputil.Map(newOp["responses"])
	kd := maputil.DiffKeys(oldResp, newResp)

	var changes []ChangeItem
	for _, code := range kd.Removed {
		c := ChangeItem{
			Category: CategoryResponse,
			Location: fmt.Sprintf("%s.responses[%s]", loc, code),
			OldValue: oldResp[code],
		}
		if httputil.IsSuccessCode(code) {
			c.Type, c.Severity = ChangeTypeBreaking, SeverityHigh
			c.Description = fmt.Sprintf("Success response '%s' was removed from %s", code, loc)
		} else {
			c.Type, c.Severity = ChangeTypeInformational, SeverityLow
			c.Description = fmt.Sprintf("Response '%s' was removed from %s", code, loc)
		}
		changes = append(changes, c)
	}
	for _, code := range kd.Added {
		changes = append(changes, ChangeItem{
			Type:        ChangeTypeAdditive,
			Category:    CategoryResponse,
			Location:    fmt.Sprintf("%s.responses[%s]", loc, code),
			Description: fmt.Sprintf("Response '%s' was added to %s", code, loc),
			NewValue:    newResp[code],
			Severity:    SeverityLow,
		})
	}
	return changes
}

// diffOperationID reports a changed operationId. It never affects
// compatibility.
func (d *Differ) diffOperationID(loc string, oldOp, newOp map[string]any) []ChangeItem {
	oldID, newID := oldOp["operationId"], newOp["operationId"]
	if valuesEqual(oldID, newID) {
		return nil
	}
	return []ChangeItem{{
		Type:        ChangeTypeInformational,
		Category:    CategoryOperation,
		Location:    loc + ".operationId",
		Description: fmt.Sprintf("Operation ID of %s changed from %s to %s", loc, quote(oldID), quote(newID)),
		OldValue:    oldID,
		NewValue:    newID,
		Severity:    SeverityLow,
	}}
}

// diffDeprecated reports an operation that is newly marked deprecated.
func (d *Differ) diffDeprecated(loc string, oldOp, newOp map[string]any) []ChangeItem {
	if maputil.Bool(oldOp["deprecated"]) || !maputil.Bool(newOp["deprecated"]) {
		return nil
	}
	return []ChangeItem{{
		Type:        ChangeTypeDeprecated,
		Category:    CategoryOperation,
		Location:    loc + ".deprecated",
		Description: fmt.Sprintf("Operation %s was marked deprecated", loc),
		OldValue:    oldOp["deprecated"],
		NewValue:    true,
		Severity:    SeverityLow,
	}}
}
