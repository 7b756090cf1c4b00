package masters

// Commentary is one master's reply to a journal entry.
type Commentary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Content string `json:"content"`
}

func (c Commentary) GetID() string { return c.ID }

func (c Commentary) WithID(id string) Commentary {
	c.ID = id
	return c
}
