package view

import "sync"

// Row is one table row: its cells in column order and an optional status
// selector.
type Row struct {
	Cells    []string
	Selector *Selector
}

// TableBody holds rows that are always replaced as a whole.
type TableBody struct {
	id   RegionID
	mu   sync.RWMutex
	rows []Row
}

func NewTableBody(id RegionID) *TableBody {
	return &TableBody{id: id}
}

func (t *TableBody) ID() RegionID { return t.id }

func (t *TableBody) Replace(rows []Row) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = rows
}

func (t *TableBody) Clear() {
	t.Replace(nil)
}

func (t *TableBody) Rows() []Row {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Row, len(t.rows))
	copy(out, t.rows)
	return out
}

func (t *TableBody) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

// Message is a single line of status text. Watchers see every Set in
// order, including texts later overwritten by a refresh.
type Message struct {
	id       RegionID
	mu       sync.RWMutex
	text     string
	watchers []func(string)
}

func NewMessage(id RegionID) *Message {
	return &Message{id: id}
}

func (m *Message) ID() RegionID { return m.id }

func (m *Message) Set(text string) {
	m.mu.Lock()
	m.text = text
	watchers := m.watchers
	m.mu.Unlock()

	for _, fn := range watchers {
		fn(text)
	}
}

// Watch registers fn to run after every Set.
func (m *Message) Watch(fn func(text string)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.watchers = append(m.watchers, fn)
}

func (m *Message) Text() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.text
}

// Line is one paragraph of a panel. An empty Label renders the value alone.
type Line struct {
	Label string
	Value string
}

// Panel is a block of labelled lines, replaced as a whole.
type Panel struct {
	id    RegionID
	mu    sync.RWMutex
	lines []Line
}

func NewPanel(id RegionID) *Panel {
	return &Panel{id: id}
}

func (p *Panel) ID() RegionID { return p.id }

func (p *Panel) Set(lines ...Line) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lines = lines
}

func (p *Panel) Lines() []Line {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]Line, len(p.lines))
	copy(out, p.lines)
	return out
}

// Form holds the current values of a fixed set of named input fields.
type Form struct {
	id     RegionID
	mu     sync.RWMutex
	names  []string
	values map[string]string
}

func NewForm(id RegionID, fields ...string) *Form {
	f := &Form{id: id, names: fields, values: make(map[string]string, len(fields))}
	for _, name := range fields {
		f.values[name] = ""
	}
	return f
}

func (f *Form) ID() RegionID { return f.id }

func (f *Form) Has(name string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.values[name]
	return ok
}

func (f *Form) Value(name string) string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.values[name]
}

// Fill copies the known fields from values; unknown keys are ignored.
func (f *Form) Fill(values map[string]string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for name, v := range values {
		if _, ok := f.values[name]; ok {
			f.values[name] = v
		}
	}
}

func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for name := range f.values {
		f.values[name] = ""
	}
}

// Values returns a copy of the field values.
func (f *Form) Values() map[string]string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

// Fields returns the field names in declaration order.
func (f *Form) Fields() []string {
	return append([]string(nil), f.names...)
}
