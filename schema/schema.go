package schema

// Schema is a single table definition as described in the catalog file.
// Column order is significant: data files are decoded positionally.
type Schema struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
}

func (s Schema) HasColumn(name string) bool {
	for _, it := range s.Columns {
		if it == name {
			return true
		}
	}
	return false
}

// Catalog keeps table definitions in the order they were declared.
type Catalog struct {
	order   []string
	schemas map[string]*Schema
}

func NewCatalog() *Catalog {
	return &Catalog{
		order:   []string{},
		schemas: map[string]*Schema{},
	}
}

// Add registers a table. Redeclaring a table replaces its columns but keeps
// its original position.
func (c *Catalog) Add(s Schema) {
	if _, ok := c.schemas[s.Name]; !ok {
		c.order = append(c.order, s.Name)
	}
	copied := s
	copied.Columns = append([]string(nil), s.Columns...)
	c.schemas[s.Name] = &copied
}

func (c *Catalog) Remove(name string) {
	if _, ok := c.schemas[name]; !ok {
		return
	}
	delete(c.schemas, name)

	for idx, it := range c.order {
		if it == name {
			c.order = append(c.order[:idx], c.order[idx+1:]...)
			break
		}
	}
}

func (c *Catalog) Get(name string) (Schema, bool) {
	s, ok := c.schemas[name]
	if !ok {
		return Schema{}, false
	}
	return *s, true
}

func (c *Catalog) Tables() []string {
	return append([]string(nil), c.order...)
}

func (c *Catalog) Len() int {
	return len(c.order)
}
