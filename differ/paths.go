package differ

import (
	"fmt"

	"github.com/erraggy/contractdiff/internal/maputil"
	"github.com/erraggy/contractdiff/loader"
)

// diffPaths compares the path sets. Removed paths come first, then added
// paths, then method-level changes for each shared path.
func (d *Differ) diffPaths(old, cur loader.Document) []ChangeItem {
	oldPaths, newPaths := old.Paths(), cur.Paths()
	kd := maputil.DiffKeys(oldPaths, newPaths)

	var changes []ChangeItem
	for _, path := range kd.Removed {
		changes = append(changes, ChangeItem{
			Type:        ChangeTypeBreaking,
			Category:    CategoryPath,
			Location:    path,
			Description: fmt.Sprintf("Path '%s' was removed", path),
			OldValue:    oldPaths[path],
			Severity:    SeverityHigh,
		})
	}
	for _, path := range kd.Added {
		changes = append(changes, ChangeItem{
			Type:        ChangeTypeAdditive,
			Category:    CategoryPath,
			Location:    path,
			Description: fmt.Sprintf("Path '%s' was added", path),
			NewValue:    newPaths[path],
			Severity:    SeverityLow,
		})
	}
	for _, path := range kd.Shared {
		changes = append(changes, d.diffPathMethods(path, maputil.Map(oldPaths[path]), maputil.Map(newPaths[path]))...)
	}
	return changes
}

// diffPathMethods compares the HTTP methods of a path present in both contracts.
func (d *Differ) diffPathMethods(path string, oldItem, newItem map[string]any) []ChangeItem {
	oldOps, newOps := operations(oldItem), operations(newItem)
	kd := maputil.DiffKeys(oldOps, newOps)

	var changes []ChangeItem
	for _, method := range kd.Removed {
		loc := operationLocation(method, path)
		changes = append(changes, ChangeItem{
			Type:        ChangeTypeBreaking,
			Category:    CategoryMethod,
			Location:    loc,
			Description: fmt.Sprintf("Method %s was removed", loc),
			OldValue:    oldOps[method],
			Severity:    SeverityHigh,
		})
	}
	for _, method := range kd.Added {
		loc := operationLocation(method, path)
		changes = append(changes, ChangeItem{
			Type:        ChangeTypeAdditive,
			Category:    CategoryMethod,
			Location:    loc,
			Description: fmt.Sprintf("Method %s was added", loc),
			NewValue:    newOps[method],
			Severity:    SeverityLow,
		})
	}
	for _, method := range kd.Shared {
		changes = append(changes, d.diffMethodDetails(path, method, maputil.Map(oldOps[method]), maputil.Map(newOps[method]))...)
	}
	return changes
}

// diffMethodDetails compares one operation present in both contracts.
func (d *Differ) diffMethodDetails(path, method string, oldOp, newOp map[string]any) []ChangeItem {
	loc := operationLocation(method, path)

	var changes []ChangeItem
	changes = append(changes, d.diffParameters(loc, oldOp, newOp)...)
	changes = append(changes, d.diffRequestBody(loc, oldOp, newOp)...)
	changes = append(changes, d.diffResponses(loc, oldOp, newOp)...)
	changes = append(changes, d.diffOperationID(loc, oldOp, newOp)...)
	changes = append(changes, d.diffDeprecated(loc, oldOp, newOp)...)
	return changes
}
