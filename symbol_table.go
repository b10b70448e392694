package lisper

type symbolTable struct {
	n map[string]*Value
}

func newSymbolTable() *symbolTable {
	return &symbolTable{
		n: make(map[string]*Value),
	}
}

func (st *symbolTable) Set(name string, value *Value) {
	st.n[name] = value
}

func (st *symbolTable) Get(name string) (*Value, bool) {
	value, ok := st.n[name]
	return value, ok
}
