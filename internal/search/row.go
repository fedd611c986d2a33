package search

import (
	"github.com/bagdasarian/member-search/internal/domain"
	"github.com/bagdasarian/member-search/internal/predicate"
)

type memberTeamRow domain.MemberTeamDto

// RowOf позволяет вычислять условия поиска над уже загруженной строкой.
func RowOf(dto domain.MemberTeamDto) predicate.Row {
	return memberTeamRow(dto)
}

func (r memberTeamRow) Value(column string) (any, bool) {
	switch column {
	case Members.ID.Column():
		return r.MemberID, true
	case Members.Username.Column():
		return r.Username, true
	case Members.Age.Column():
		return r.Age, true
	case Members.TeamID.Column(), Teams.ID.Column():
		if r.TeamID == nil {
			return nil, false
		}
		return *r.TeamID, true
	case Teams.Name.Column():
		if r.TeamName == nil {
			return nil, false
		}
		return *r.TeamName, true
	}
	return nil, false
}

// Filter оставляет строки, для которых условие истинно.
func Filter(rows []domain.MemberTeamDto, cond predicate.Expression) []domain.MemberTeamDto {
	if predicate.IsTrue(cond) {
		return rows
	}
	result := make([]domain.MemberTeamDto, 0, len(rows))
	for _, row := range rows {
		if cond.Eval(RowOf(row)) {
			result = append(result, row)
		}
	}
	return result
}
