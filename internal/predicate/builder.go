package predicate

// Builder накапливает условие по шагам. Пустой Builder дает True.
// Не предназначен для одновременного использования из нескольких горутин.
type Builder struct {
	expr Expression
}

func NewBuilder() *Builder {
	return &Builder{}
}

// And добавляет условие через AND. nil игнорируется.
func (b *Builder) And(e Expression) *Builder {
	if e == nil {
		return b
	}
	if b.expr == nil {
		b.expr = e
		return b
	}
	b.expr = And(b.expr, e)
	return b
}

// Or добавляет условие через OR. nil игнорируется.
func (b *Builder) Or(e Expression) *Builder {
	if e == nil {
		return b
	}
	if b.expr == nil {
		b.expr = e
		return b
	}
	b.expr = Or(b.expr, e)
	return b
}

func (b *Builder) HasValue() bool {
	return b.expr != nil
}

func (b *Builder) Build() Expression {
	if b.expr == nil {
		return True
	}
	return b.expr
}
