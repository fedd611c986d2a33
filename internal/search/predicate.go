package search

import (
	"github.com/bagdasarian/member-search/internal/domain"
	"github.com/bagdasarian/member-search/internal/predicate"
)

// BuildPredicate превращает фильтр поиска в одно условие над members/teams.
// Каждый заданный фильтр дает одно сравнение, все сравнения объединяются через AND.
// Если ни один фильтр не задан, возвращается predicate.True.
func BuildPredicate(cond domain.MemberSearchCondition) predicate.Expression {
	return predicate.And(
		usernameEq(cond.Username),
		teamNameEq(cond.TeamName),
		ageGoe(cond.AgeGoe),
		ageLoe(cond.AgeLoe),
	)
}

// BuildWithBuilder собирает то же условие пошагово через predicate.Builder.
func BuildWithBuilder(cond domain.MemberSearchCondition) predicate.Expression {
	builder := predicate.NewBuilder()
	if cond.Username != "" {
		builder.And(Members.Username.Eq(cond.Username))
	}
	if cond.TeamName != "" {
		builder.And(Teams.Name.Eq(cond.TeamName))
	}
	if cond.AgeGoe != nil {
		builder.And(Members.Age.Goe(int64(*cond.AgeGoe)))
	}
	if cond.AgeLoe != nil {
		builder.And(Members.Age.Loe(int64(*cond.AgeLoe)))
	}
	return builder.Build()
}

// AgeBetween - обе границы сразу. Если хотя бы одна не задана, фильтр не применяется.
func AgeBetween(goe, loe *int) predicate.Expression {
	if goe == nil || loe == nil {
		return nil
	}
	return Members.Age.Between(int64(*goe), int64(*loe))
}

func usernameEq(username string) predicate.Expression {
	if username == "" {
		return nil
	}
	return Members.Username.Eq(username)
}

func teamNameEq(teamName string) predicate.Expression {
	if teamName == "" {
		return nil
	}
	return Teams.Name.Eq(teamName)
}

func ageGoe(age *int) predicate.Expression {
	if age == nil {
		return nil
	}
	return Members.Age.Goe(int64(*age))
}

func ageLoe(age *int) predicate.Expression {
	if age == nil {
		return nil
	}
	return Members.Age.Loe(int64(*age))
}
