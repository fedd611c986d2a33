package predicate

// StringPath - строковая колонка таблицы, например "m.username".
type StringPath struct {
	column string
}

func NewStringPath(column string) StringPath {
	return StringPath{column: column}
}

func (p StringPath) Column() string { return p.column }

func (p StringPath) Eq(value string) Expression {
	return comparison{column: p.column, op: opEq, value: value}
}

func (p StringPath) Ne(value string) Expression {
	return comparison{column: p.column, op: opNe, value: value}
}

// NumberPath - целочисленная колонка таблицы.
type NumberPath struct {
	column string
}

func NewNumberPath(column string) NumberPath {
	return NumberPath{column: column}
}

func (p NumberPath) Column() string { return p.column }

func (p NumberPath) Eq(value int64) Expression {
	return comparison{column: p.column, op: opEq, value: value}
}

func (p NumberPath) Ne(value int64) Expression {
	return comparison{column: p.column, op: opNe, value: value}
}

// Goe - больше или равно (>=).
func (p NumberPath) Goe(value int64) Expression {
	return comparison{column: p.column, op: opGoe, value: value}
}

// Loe - меньше или равно (<=).
func (p NumberPath) Loe(value int64) Expression {
	return comparison{column: p.column, op: opLoe, value: value}
}

func (p NumberPath) Gt(value int64) Expression {
	return comparison{column: p.column, op: opGt, value: value}
}

func (p NumberPath) Lt(value int64) Expression {
	return comparison{column: p.column, op: opLt, value: value}
}

// Between - включительный диапазон [from, to]. Границы не проверяются:
// при from > to условие просто не совпадет ни с одной строкой.
func (p NumberPath) Between(from, to int64) Expression {
	return And(p.Goe(from), p.Loe(to))
}
