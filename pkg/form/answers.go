package form

import (
	"bytes"
	"encoding/json"

	"github.com/cbroglie/mustache"
)

// DefaultTemplate renders one "name: value" line per answer.
const DefaultTemplate = `{{#title}}{{{title}}}
{{/title}}{{#answers}}{{{name}}}: {{{value}}}
{{/answers}}`

// Answer is the value read for one question.
type Answer struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// Answers holds a form's answers in question order.
type Answers struct {
	Title string
	List  []Answer
}

func (a *Answers) add(name, typ string, v any) {
	a.List = append(a.List, Answer{Name: name, Type: typ, Value: v})
}

// Get returns the value for name.
func (a *Answers) Get(name string) (any, bool) {
	for _, ans := range a.List {
		if ans.Name == name {
			return ans.Value, true
		}
	}
	return nil, false
}

// Len returns the number of answers.
func (a *Answers) Len() int {
	return len(a.List)
}

// Render executes a mustache template. The context has "title", "answers"
// (a list of name/type/value) and each answer under its own name.
func (a *Answers) Render(tmpl string) (string, error) {
	byName := make(map[string]any, len(a.List))
	list := make([]map[string]any, 0, len(a.List))
	for _, ans := range a.List {
		byName[ans.Name] = ans.Value
		list = append(list, map[string]any{
			"name":  ans.Name,
			"type":  ans.Type,
			"value": ans.Value,
		})
	}

	return mustache.Render(tmpl, map[string]any{
		"title":   a.Title,
		"answers": list,
	}, byName)
}

// MarshalJSON encodes the answers as one object, keys in question order.
func (a *Answers) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, ans := range a.List {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(ans.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(ans.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
