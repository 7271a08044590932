package docstore

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/msto63/dsh/internal/namespace"
)

// buildTOML populates the tree from a TOML document. BurntSushi decodes into
// unordered maps, so document order is reconstructed from the metadata key
// list.
func buildTOML(data []byte, t *tree) error {
	var raw map[string]interface{}
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return err
	}

	w := &tomlWalker{tree: t, meta: md, order: make(map[string]int)}
	for i, key := range md.Keys() {
		dotted := key.String()
		if _, ok := w.order[dotted]; !ok {
			w.order[dotted] = i
		}
	}

	w.walkTable(namespace.Root(), nil, raw)
	return nil
}

type tomlWalker struct {
	tree  *tree
	meta  toml.MetaData
	order map[string]int
}

func (w *tomlWalker) walkTable(group namespace.Path, key []string, table map[string]interface{}) {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		oi, oj := w.orderOf(append(key, names[i])), w.orderOf(append(key, names[j]))
		if oi != oj {
			return oi < oj
		}
		return names[i] < names[j]
	})

	for _, name := range names {
		w.addValue(group, append(key, name), name, table[name])
	}
}

// orderOf returns the document position of a dotted key, or a large value
// for keys the metadata does not track (such as array indices).
func (w *tomlWalker) orderOf(key []string) int {
	if pos, ok := w.order[strings.Join(key, ".")]; ok {
		return pos
	}
	return int(^uint(0) >> 1)
}

func (w *tomlWalker) addValue(parent namespace.Path, key []string, name string, value interface{}) {
	switch v := value.(type) {
	case map[string]interface{}:
		p, child := w.tree.insert(parent, name, namespace.Node{Kind: namespace.KindGroup})
		child.attrs = w.tomlAttrs(key)
		w.walkTable(p, key, v)

	case []map[string]interface{}:
		// Array of tables.
		p, child := w.tree.insert(parent, name, namespace.Node{Kind: namespace.KindGroup})
		child.attrs = w.tomlAttrs(key)
		for i, elem := range v {
			ep, echild := w.tree.insert(p, strconv.Itoa(i), namespace.Node{Kind: namespace.KindGroup})
			echild.attrs = []namespace.Attr{{Name: "type", Value: "table"}}
			w.walkTable(ep, key, elem)
		}

	case []interface{}:
		if scalarSlice(v) {
			_, child := w.tree.insert(parent, name, namespace.Node{Kind: namespace.KindDataset})
			child.value = renderSlice(v)
			child.attrs = append(w.tomlAttrs(key),
				namespace.Attr{Name: "length", Value: strconv.Itoa(len(v))})
		} else {
			p, child := w.tree.insert(parent, name, namespace.Node{Kind: namespace.KindGroup})
			child.attrs = w.tomlAttrs(key)
			for i, elem := range v {
				w.addValue(p, key, strconv.Itoa(i), elem)
			}
		}

	default:
		_, child := w.tree.insert(parent, name, namespace.Node{Kind: namespace.KindDataset})
		child.value = fmt.Sprintf("%v", v)
		child.attrs = w.tomlAttrs(key)
	}
}

func (w *tomlWalker) tomlAttrs(key []string) []namespace.Attr {
	if t := w.meta.Type(key...); t != "" {
		return []namespace.Attr{{Name: "type", Value: t}}
	}
	return nil
}

func scalarSlice(values []interface{}) bool {
	for _, v := range values {
		switch v.(type) {
		case map[string]interface{}, []map[string]interface{}, []interface{}:
			return false
		}
	}
	return true
}

func renderSlice(values []interface{}) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%v", v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
