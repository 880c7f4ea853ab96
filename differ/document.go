package differ

import (
	"fmt"

	"github.com/erraggy/contractdiff/internal/maputil"
	"github.com/erraggy/contractdiff/loader"
)

// diffInfo compares info.version and info.title.
func (d *Differ) diffInfo(old, cur loader.Document) []ChangeItem {
	oldInfo, newInfo := old.Info(), cur.Info()

	fields := []struct {
		key      string
		label    string
		category ChangeCategory
	}{
		{"version", "API version", CategoryVersion},
		{"title", "API title", CategoryTitle},
	}

	var changes []ChangeItem
	for _, f := range fields {
		oldV, newV := oldInfo[f.key], newInfo[f.key]
		if valuesEqual(oldV, newV) {
			continue
		}
		changes = append(changes, ChangeItem{
			Type:        ChangeTypeInformational,
			Category:    f.category,
			Location:    "info." + f.key,
			Description: fmt.Sprintf("%s changed from %s to %s", f.label, quote(oldV), quote(newV)),
			OldValue:    oldV,
			NewValue:    newV,
			Severity:    SeverityLow,
		})
	}
	return changes
}

// indexServers keys server objects by url. Entries without a url are skipped.
func indexServers(servers []any) map[string]any {
	byURL := make(map[string]any, len(servers))
	for _, raw := range servers {
		url := maputil.String(maputil.Map(raw)["url"])
		if url == "" {
			continue
		}
		byURL[url] = raw
	}
	return byURL
}

// diffServers compares server entries by url.
func (d *Differ) diffServers(old, cur loader.Document) []ChangeItem {
	oldServers, newServers := indexServers(old.Servers()), indexServers(cur.Servers())
	kd := maputil.DiffKeys(oldServers, newServers)

	var changes []ChangeItem
	for _, url := range kd.Removed {
		// clients may have the host hardcoded
		changes = append(changes, ChangeItem{
			Type:        ChangeTypeBreaking,
			Category:    CategoryServer,
			Location:    fmt.Sprintf("servers[%s]", url),
			Description: fmt.Sprintf("Server '%s' was removed", url),
			OldValue:    oldServers[url],
			Severity:    SeverityMedium,
		})
	}
	for _, url := range kd.Added {
		changes = append(changes, ChangeItem{
			Type:        ChangeTypeAdditive,
			Category:    CategoryServer,
			Location:    fmt.Sprintf("servers[%s]", url),
			Description: fmt.Sprintf("Server '%s' was added", url),
			NewValue:    newServers[url],
			Severity:    SeverityLow,
		})
	}
	return changes
}

// diffComponents compares components.schemas by name. Schema bodies are not
// compared.
func (d *Differ) diffComponents(old, cur loader.Document) []ChangeItem {
	oldSchemas, newSchemas := old.Schemas(), cur.Schemas()
	kd := maputil.DiffKeys(oldSchemas, newSchemas)

	var changes []ChangeItem
	for _, name := range kd.Removed {
		changes = append(changes, ChangeItem{
			Type:        ChangeTypeBreaking,
			Category:    CategorySchema,
			Location:    "components.schemas." + name,
			Description: fmt.Sprintf("Schema '%s' was removed", name),
			OldValue:    oldSchemas[name],
			Severity:    SeverityHigh,
		})
	}
	for _, name := range kd.Added {
		changes = append(changes, ChangeItem{
			Type:        ChangeTypeAdditive,
			Category:    CategorySchema,
			Location:    "components.schemas." + name,
			Description: fmt.Sprintf("Schema '%s' was added", name),
			NewValue:    newSchemas[name],
			Severity:    SeverityLow,
		})
	}
	return changes
}
