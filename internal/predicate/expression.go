// Package predicate содержит типизированные условия для WHERE-части запросов.
//
// Каждое условие умеет отрендерить себя в SQL (через squirrel.Sqlizer) и
// вычислить себя в памяти над строкой результата. Второе нужно для тестов и
// для проверки условий без обращения к базе.
package predicate

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// Row отдает значения колонок по их квалифицированному имени ("m.age").
// Отсутствующее значение ведет себя как NULL: сравнение с ним дает unknown,
// NOT от unknown тоже unknown, и строка в результат не попадает.
type Row interface {
	Value(column string) (any, bool)
}

// Expression - булево условие над строкой выборки.
type Expression interface {
	sq.Sqlizer
	Eval(row Row) bool
}

type truth struct{}

func (truth) ToSql() (string, []any, error) { return "(1=1)", nil, nil }
func (truth) Eval(Row) bool                 { return true }
func (truth) String() string                { return "true" }

// True - условие "всегда истина". Его возвращает And() без операндов.
var True Expression = truth{}

// IsTrue сообщает, что условие ничего не ограничивает.
func IsTrue(e Expression) bool {
	if e == nil {
		return true
	}
	_, ok := e.(truth)
	return ok
}

type operator string

const (
	opEq  operator = "="
	opNe  operator = "<>"
	opGoe operator = ">="
	opLoe operator = "<="
	opGt  operator = ">"
	opLt  operator = "<"
)

type comparison struct {
	column string
	op     operator
	value  any
}

func (c comparison) ToSql() (string, []any, error) {
	switch c.op {
	case opEq:
		return sq.Eq{c.column: c.value}.ToSql()
	case opNe:
		return sq.NotEq{c.column: c.value}.ToSql()
	case opGoe:
		return sq.GtOrEq{c.column: c.value}.ToSql()
	case opLoe:
		return sq.LtOrEq{c.column: c.value}.ToSql()
	case opGt:
		return sq.Gt{c.column: c.value}.ToSql()
	case opLt:
		return sq.Lt{c.column: c.value}.ToSql()
	}
	return "", nil, fmt.Errorf("unknown operator %q", c.op)
}

func (c comparison) Eval(row Row) bool { return c.eval(row) == yes }

func (c comparison) eval(row Row) tristate {
	actual, ok := row.Value(c.column)
	if !ok || actual == nil {
		return unknown
	}
	cmp, ok := compareValues(actual, c.value)
	if !ok {
		return unknown
	}
	switch c.op {
	case opEq:
		return of(cmp == 0)
	case opNe:
		return of(cmp != 0)
	case opGoe:
		return of(cmp >= 0)
	case opLoe:
		return of(cmp <= 0)
	case opGt:
		return of(cmp > 0)
	case opLt:
		return of(cmp < 0)
	}
	return unknown
}

func (c comparison) String() string {
	return fmt.Sprintf("%s %s %v", c.column, c.op, c.value)
}

type junction struct {
	or    bool
	exprs []Expression
}

func (j junction) ToSql() (string, []any, error) {
	parts := make([]sq.Sqlizer, len(j.exprs))
	for i, e := range j.exprs {
		parts[i] = e
	}
	if j.or {
		return sq.Or(parts).ToSql()
	}
	return sq.And(parts).ToSql()
}

func (j junction) Eval(row Row) bool { return j.eval(row) == yes }

// eval: для AND ложь поглощает все, для OR - истина; иначе любой unknown дает unknown.
func (j junction) eval(row Row) tristate {
	absorbing := no
	if j.or {
		absorbing = yes
	}
	result := absorbing.not()
	for _, e := range j.exprs {
		switch evaluate(e, row) {
		case absorbing:
			return absorbing
		case unknown:
			result = unknown
		}
	}
	return result
}

func (j junction) String() string {
	sep := " and "
	if j.or {
		sep = " or "
	}
	parts := make([]string, len(j.exprs))
	for i, e := range j.exprs {
		parts[i] = fmt.Sprint(e)
	}
	return "(" + strings.Join(parts, sep) + ")"
}

type negation struct {
	expr Expression
}

func (n negation) ToSql() (string, []any, error) {
	query, args, err := n.expr.ToSql()
	if err != nil {
		return "", nil, err
	}
	return "NOT (" + query + ")", args, nil
}

func (n negation) Eval(row Row) bool { return n.eval(row) == yes }

// NOT от unknown остается unknown, как NOT NULL в SQL.
func (n negation) eval(row Row) tristate { return evaluate(n.expr, row).not() }

// tristate - результат условия в логике SQL: истина, ложь или NULL.
type tristate int8

const (
	unknown tristate = iota
	yes
	no
)

func of(b bool) tristate {
	if b {
		return yes
	}
	return no
}

func (t tristate) not() tristate {
	switch t {
	case yes:
		return no
	case no:
		return yes
	}
	return unknown
}

// evaluate вычисляет условие с учетом NULL. Для сторонних реализаций Expression
// доступен только Eval, поэтому их false считается ложью.
func evaluate(e Expression, row Row) tristate {
	if t, ok := e.(interface{ eval(Row) tristate }); ok {
		return t.eval(row)
	}
	return of(e.Eval(row))
}

// And объединяет условия через AND. nil-операнды пропускаются, поэтому
// необязательные фильтры можно передавать как есть.
func And(exprs ...Expression) Expression {
	present := compact(exprs)
	switch len(present) {
	case 0:
		return True
	case 1:
		return present[0]
	}
	return junction{exprs: present}
}

// Or объединяет условия через OR. Если хотя бы один операнд - True, результат True.
func Or(exprs ...Expression) Expression {
	present := make([]Expression, 0, len(exprs))
	for _, e := range exprs {
		if e == nil {
			continue
		}
		if IsTrue(e) {
			return True
		}
		present = append(present, e)
	}
	switch len(present) {
	case 0:
		return True
	case 1:
		return present[0]
	}
	return junction{or: true, exprs: present}
}

// Not инвертирует условие. Not(nil) возвращает nil: отсутствующий фильтр остается отсутствующим.
func Not(e Expression) Expression {
	if e == nil {
		return nil
	}
	return negation{expr: e}
}

func compact(exprs []Expression) []Expression {
	present := make([]Expression, 0, len(exprs))
	for _, e := range exprs {
		if IsTrue(e) {
			continue
		}
		if j, ok := e.(junction); ok && !j.or {
			present = append(present, j.exprs...)
			continue
		}
		present = append(present, e)
	}
	return present
}

func compareValues(a, b any) (int, bool) {
	if as, ok := a.(string); ok {
		bs, ok := b.(string)
		if !ok {
			return 0, false
		}
		return strings.Compare(as, bs), true
	}

	af, ok := toFloat(a)
	if !ok {
		return 0, false
	}
	bf, ok := toFloat(b)
	if !ok {
		return 0, false
	}
	switch {
	case af < bf:
		return -1, true
	case af > bf:
		return 1, true
	}
	return 0, true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
