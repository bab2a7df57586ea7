package llm

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed prompts.yaml
var promptsYAML []byte

// Catalog holds the predefined prompts in declaration order.
type Catalog struct {
	prompts []Prompt
	byID    map[string]Prompt
}

func NewCatalog() (*Catalog, error) {
	return parseCatalog(promptsYAML)
}

func parseCatalog(data []byte) (*Catalog, error) {
	var prompts []Prompt
	if err := yaml.Unmarshal(data, &prompts); err != nil {
		return nil, fmt.Errorf("failed to parse prompt catalog: %w", err)
	}

	c := &Catalog{
		prompts: prompts,
		byID:    make(map[string]Prompt, len(prompts)),
	}
	for _, p := range prompts {
		if p.ID == "" || p.Template == "" {
			return nil, fmt.Errorf("prompt %q: id and template are required", p.ID)
		}
		if _, ok := c.byID[p.ID]; ok {
			return nil, fmt.Errorf("duplicate prompt %q", p.ID)
		}
		c.byID[p.ID] = p
	}

	return c, nil
}

func (c *Catalog) List() []Prompt {
	return append([]Prompt(nil), c.prompts...)
}

func (c *Catalog) Get(id string) (Prompt, error) {
	p, ok := c.byID[id]
	if !ok {
		return Prompt{}, fmt.Errorf("%w: %s", ErrPromptNotFound, id)
	}
	return p, nil
}
