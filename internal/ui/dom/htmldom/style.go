package htmldom

import "strings"

type styleDecl struct {
	prop  string
	value string
}

// style keeps declarations in insertion order so rendered attributes are stable.
type style []styleDecl

func parseStyle(raw string) style {
	var st style
	for _, part := range strings.Split(raw, ";") {
		prop, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		value = strings.TrimSpace(value)
		if prop == "" {
			continue
		}
		st.set(prop, value)
	}
	return st
}

func (st style) get(prop string) string {
	prop = strings.ToLower(strings.TrimSpace(prop))
	for _, d := range st {
		if d.prop == prop {
			return d.value
		}
	}
	return ""
}

// set replaces or appends prop; an empty value removes it.
func (st *style) set(prop, value string) {
	prop = strings.ToLower(strings.TrimSpace(prop))
	value = strings.TrimSpace(value)
	for i, d := range *st {
		if d.prop != prop {
			continue
		}
		if value == "" {
			*st = append((*st)[:i], (*st)[i+1:]...)
		} else {
			(*st)[i].value = value
		}
		return
	}
	if value != "" {
		*st = append(*st, styleDecl{prop: prop, value: value})
	}
}

func (st style) String() string {
	parts := make([]string, 0, len(st))
	for _, d := range st {
		parts = append(parts, d.prop+": "+d.value)
	}
	return strings.Join(parts, "; ")
}
