package suite

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func LoadFromFile(path string) (*TestSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*TestSuite, error) {
	var s TestSuite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if len(s.Cases) == 0 {
		return nil, fmt.Errorf("suite has no cases")
	}

	registry := NewTemplateRegistry()
	for i := range s.Templates {
		if err := registry.Register(&s.Templates[i]); err != nil {
			return nil, err
		}
	}

	seen := make(map[string]struct{}, len(s.Cases))
	for i := range s.Cases {
		c := &s.Cases[i]
		if c.ID == "" {
			return nil, fmt.Errorf("case at index %d has no id", i)
		}
		if _, dup := seen[c.ID]; dup {
			return nil, fmt.Errorf("duplicate case id %q", c.ID)
		}
		seen[c.ID] = struct{}{}

		switch {
		case c.Expect == nil && c.ExpectError == "":
			return nil, fmt.Errorf("case %q needs expect or expect_error", c.ID)
		case c.Expect != nil && c.ExpectError != "":
			return nil, fmt.Errorf("case %q sets both expect and expect_error", c.ID)
		case c.ExpectError != "" && !validErrorKind(c.ExpectError):
			return nil, fmt.Errorf("case %q has unknown expect_error %q", c.ID, c.ExpectError)
		}

		if err := renderCase(registry, c); err != nil {
			return nil, err
		}
	}

	return &s, nil
}

func renderCase(registry *TemplateRegistry, c *Case) error {
	switch {
	case c.Template == "" && len(c.Params) > 0:
		return fmt.Errorf("case %q sets params without a template", c.ID)
	case c.Template == "":
		return nil
	case c.Expression != "":
		return fmt.Errorf("case %q sets both expression and template", c.ID)
	}

	expr, err := registry.RenderExpression(c.Template, c.Params)
	if err != nil {
		return fmt.Errorf("case %q: %w", c.ID, err)
	}
	c.Expression = expr
	return nil
}
