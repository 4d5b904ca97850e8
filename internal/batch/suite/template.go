package suite

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
)

// ExpressionTemplate is an expression with {{name}} placeholders that cases
// fill in through params, e.g. "{{a}}*{{b}}".
type ExpressionTemplate struct {
	ID         string `yaml:"id"`
	Expression string `yaml:"expression"`
}

type TemplateParams map[string]any

var placeholderRegex = regexp.MustCompile(`\{\{(\w+)\}\}`)

func (t *ExpressionTemplate) Render(params TemplateParams) (string, error) {
	result := placeholderRegex.ReplaceAllStringFunc(t.Expression, func(match string) string {
		key := match[2 : len(match)-2]
		if val, ok := params[key]; ok {
			return formatValue(val)
		}
		return match
	})

	if missing := findPlaceholders(result); len(missing) > 0 {
		return "", fmt.Errorf("template %q missing params: %v", t.ID, missing)
	}
	return result, nil
}

func (t *ExpressionTemplate) RequiredParams() []string {
	return findPlaceholders(t.Expression)
}

func (t *ExpressionTemplate) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("template has no id")
	}
	if len(t.RequiredParams()) == 0 {
		return fmt.Errorf("template %q has no placeholders", t.ID)
	}
	return nil
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func findPlaceholders(s string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, m := range placeholderRegex.FindAllStringSubmatch(s, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}

type TemplateRegistry struct {
	templates map[string]*ExpressionTemplate
}

func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]*ExpressionTemplate),
	}
}

func (r *TemplateRegistry) Register(t *ExpressionTemplate) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if _, exists := r.templates[t.ID]; exists {
		return fmt.Errorf("template %q already registered", t.ID)
	}
	r.templates[t.ID] = t
	return nil
}

func (r *TemplateRegistry) Get(id string) (*ExpressionTemplate, bool) {
	t, ok := r.templates[id]
	return t, ok
}

// RenderExpression fills templateID with params. Params the template never
// references are rejected so a typo in a suite file does not go unnoticed.
func (r *TemplateRegistry) RenderExpression(templateID string, params TemplateParams) (string, error) {
	t, ok := r.Get(templateID)
	if !ok {
		return "", fmt.Errorf("template %q not found, known templates: %v", templateID, r.List())
	}

	required := t.RequiredParams()
	for name := range params {
		if !slices.Contains(required, name) {
			return "", fmt.Errorf("template %q has no placeholder %q", templateID, name)
		}
	}
	return t.Render(params)
}

// List returns the registered template ids in sorted order.
func (r *TemplateRegistry) List() []string {
	ids := make([]string, 0, len(r.templates))
	for id := range r.templates {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
